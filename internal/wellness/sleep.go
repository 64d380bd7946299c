package wellness

import (
	"math"

	"github.com/blaisecz/wellness-monitor/internal/domain"
)

const noSleepReason = "No sleep period detected in sensor data"

// sleepMask classifies every index against the sleep predicate. The heart-rate
// baseline is computed over the whole sequence first and then held fixed.
func (e *Engine) sleepMask(readings []domain.Reading) []bool {
	hr := make([]float64, len(readings))
	for i, r := range readings {
		hr[i] = r.HR
	}
	baseline := mean(positives(hr))

	mask := make([]bool, len(readings))
	for i, r := range readings {
		mask[i] = r.IsStill() &&
			r.Lux < e.th.Sleep.MaxLux &&
			(r.HR < baseline*e.th.Sleep.HRFactor || r.HR == 0)
	}
	return mask
}

// SleepPeriods returns every sleep run that meets the minimum length.
func (e *Engine) SleepPeriods(readings []domain.Reading) []domain.Period {
	mask := e.sleepMask(readings)
	return segment(len(readings), e.th.Sleep.MinReadings, func(i int) bool { return mask[i] })
}

// AnalyzeSleep selects the longest sleep run and scores its quality.
func (e *Engine) AnalyzeSleep(readings []domain.Reading) domain.SleepAnalysis {
	if len(readings) == 0 {
		return domain.SleepAnalysis{
			Error:        noSensorData,
			SleepQuality: domain.SleepQualityUnknown,
		}
	}

	period, ok := longest(e.SleepPeriods(readings))
	if !ok {
		s := unit(e.th.Sleep.NoSleepScore)
		return domain.SleepAnalysis{
			SleepScore:     round2(s),
			SleepQuality:   e.sleepQuality(s),
			QualityFactors: &domain.SleepQualityFactors{Reason: noSleepReason},
		}
	}

	window := readings[period.Start : period.End+1]
	hours := float64(len(window)) * MinutesPerReading / 60

	var still int
	lux := make([]float64, len(window))
	rmssd := make([]float64, len(window))
	for i, r := range window {
		if r.IsStill() {
			still++
		}
		lux[i] = r.Lux
		rmssd[i] = r.RMSSD
	}

	factors := domain.SleepQualityFactors{
		DurationScore:    durationScore(hours, e.th.Sleep.DurationHours),
		ConsistencyScore: 100 * float64(still) / float64(len(window)),
		EnvironmentScore: e.darknessScore(mean(lux)),
		HRVRecoveryScore: e.recoveryScore(mean(positives(rmssd))),
	}

	w := e.th.Sleep.Weights
	s := unit(factors.DurationScore*w.Duration +
		factors.ConsistencyScore*w.Consistency +
		factors.EnvironmentScore*w.Environment +
		factors.HRVRecoveryScore*w.HRV)

	factors.DurationScore = score(factors.DurationScore)
	factors.ConsistencyScore = score(factors.ConsistencyScore)
	factors.EnvironmentScore = score(factors.EnvironmentScore)
	factors.HRVRecoveryScore = score(factors.HRVRecoveryScore)

	return domain.SleepAnalysis{
		SleepDetected:      true,
		SleepStart:         timestampOrUnknown(window[0].Timestamp),
		SleepEnd:           timestampOrUnknown(window[len(window)-1].Timestamp),
		Period:             &period,
		TotalDurationHours: round2(hours),
		SleepScore:         round2(s),
		SleepQuality:       e.sleepQuality(s),
		QualityFactors:     &factors,
	}
}

func (e *Engine) sleepQuality(s float64) domain.SleepQuality {
	switch {
	case s >= e.th.Sleep.GoodScore:
		return domain.SleepQualityGood
	case s >= e.th.Sleep.OKScore:
		return domain.SleepQualityOK
	default:
		return domain.SleepQualityPoor
	}
}

// durationScore favours the ideal band, 7 to 9 hours by default.
func durationScore(h float64, b Band) float64 {
	switch {
	case b.ideal(h):
		return 100
	case b.fair(h):
		return 80
	case h < b.FairMin:
		return math.Max(20, 60-(b.FairMin-h)*15)
	default:
		return math.Max(20, 80-(h-b.IdealMax)*10)
	}
}

// darknessScore rewards an average illuminance below DarkLux.
func (e *Engine) darknessScore(avgLux float64) float64 {
	th := e.th.Sleep
	switch {
	case avgLux < th.DarkLux:
		return 100
	case avgLux < th.DimLux:
		return 70
	default:
		return math.Max(30, 70-(avgLux-th.DimLux)*2)
	}
}

// recoveryScore rates the mean overnight RMSSD; 0 means no RMSSD was recorded.
func (e *Engine) recoveryScore(avgRMSSD float64) float64 {
	th := e.th.Sleep
	switch {
	case avgRMSSD > th.RecoveredRMSSD:
		return 100
	case avgRMSSD > th.StrainedRMSSD:
		return 70 + (avgRMSSD-th.RecoveredRMSSD)*1.5
	default:
		return math.Max(30, avgRMSSD*2)
	}
}

func timestampOrUnknown(ts string) string {
	if ts == "" {
		return "Unknown"
	}
	return ts
}
