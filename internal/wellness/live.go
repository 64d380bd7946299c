package wellness

import (
	"math"

	"github.com/blaisecz/wellness-monitor/internal/domain"
)

// Live computes the instant wellness index from a single reading.
func (e *Engine) Live(r domain.Reading) domain.LiveWellness {
	b := domain.LiveBreakdown{
		HeartRateSubscore:   round2(heartRateSubscore(r.HR)),
		TemperatureSubscore: round2(temperatureSubscore(r.Temp)),
		LuxSubscore:         round2(luxSubscore(r.Lux)),
	}
	w := e.th.Live.Weights
	s := unit(b.HeartRateSubscore*w.HeartRate +
		b.TemperatureSubscore*w.Temperature +
		b.LuxSubscore*w.Lux)

	return domain.LiveWellness{Score: round2(s), Status: e.liveStatus(s), Breakdown: b}
}

func (e *Engine) liveStatus(s float64) domain.LiveStatus {
	switch {
	case s >= e.th.Live.ExcellentScore:
		return domain.LiveStatusExcellent
	case s >= e.th.Live.GoodScore:
		return domain.LiveStatusGood
	case s >= e.th.Live.ModerateScore:
		return domain.LiveStatusModerate
	default:
		return domain.LiveStatusPoor
	}
}

// heartRateSubscore loses 2 points per bpm outside 60-100.
func heartRateSubscore(hr float64) float64 {
	switch {
	case hr <= 0:
		return 20
	case hr < 60:
		return math.Max(0, 100-(60-hr)*2)
	case hr > 100:
		return math.Max(0, 100-(hr-100)*2)
	default:
		return 100
	}
}

// temperatureSubscore loses 10 points per degree outside 20-26 °C.
func temperatureSubscore(t float64) float64 {
	switch {
	case t < 20:
		return math.Max(0, 100-(20-t)*10)
	case t > 26:
		return math.Max(0, 100-(t-26)*10)
	default:
		return 100
	}
}

func luxSubscore(lux float64) float64 {
	switch {
	case lux <= 0:
		return 40
	case lux < 100:
		return math.Max(0, 100-(100-lux)*0.2)
	case lux > 1000:
		return math.Max(0, 100-(lux-1000)*0.02)
	default:
		return 100
	}
}

// ReadingState is the coarse per-reading state shown while replaying a recording.
type ReadingState string

const (
	StateSleeping ReadingState = "sleeping"
	StateRelaxing ReadingState = "relaxing"
	StateAwake    ReadingState = "awake"
)

// Classify labels a single reading without any sequence context.
func Classify(r domain.Reading) ReadingState {
	switch {
	case r.IsStill() && r.Lux < 10 && r.HR < 65:
		return StateSleeping
	case r.IsStill() && r.Lux < 100:
		return StateRelaxing
	default:
		return StateAwake
	}
}
