package wellness

import "github.com/blaisecz/wellness-monitor/internal/domain"

const (
	recommendBreaks = "Take a 5-minute break every hour"
	recommendKeepUp = "Good activity level"
)

// SedentaryPeriods returns every awake low-motion run of at least the minimum
// length. Indices satisfying the sleep predicate break a run and never count.
func (e *Engine) SedentaryPeriods(readings []domain.Reading) []domain.Period {
	sleeping := e.sleepMask(readings)
	return segment(len(readings), e.th.Sedentary.MinReadings, func(i int) bool {
		r := readings[i]
		return !sleeping[i] && r.IsStill() && r.Lux >= e.th.Sedentary.MinLux
	})
}

// DetectSedentary sums all sedentary runs and reports the current status.
func (e *Engine) DetectSedentary(readings []domain.Reading) domain.SedentaryAnalysis {
	if len(readings) == 0 {
		return domain.SedentaryAnalysis{
			Error:           noSensorData,
			SedentaryStatus: domain.SedentaryStatusUnknown,
		}
	}

	periods := e.SedentaryPeriods(readings)
	out := make([]domain.SedentaryPeriod, len(periods))
	var total, longestRun float64
	for i, p := range periods {
		minutes := float64(p.Len()) * MinutesPerReading
		out[i] = domain.SedentaryPeriod{Period: p, DurationMinutes: p.Len()}
		total += minutes
		if minutes > longestRun {
			longestRun = minutes
		}
	}

	recommendation := recommendKeepUp
	if total > e.th.Sedentary.BreakAfterMinutes {
		recommendation = recommendBreaks
	}

	return domain.SedentaryAnalysis{
		SedentaryDurationMinutes:      round2(total),
		SedentaryStatus:               e.currentStatus(readings),
		LongestSedentaryPeriodMinutes: round2(longestRun),
		SedentaryPeriodsCount:         len(periods),
		SedentaryPeriods:              out,
		Recommendation:                recommendation,
	}
}

func (e *Engine) currentStatus(readings []domain.Reading) domain.SedentaryStatus {
	last := len(readings) - 1
	switch {
	case e.sleepMask(readings)[last]:
		return domain.SedentaryStatusSleeping
	case !readings[last].IsStill():
		return domain.SedentaryStatusActive
	default:
		return domain.SedentaryStatusSedentary
	}
}
