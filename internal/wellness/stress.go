package wellness

import (
	"math"

	"github.com/blaisecz/wellness-monitor/internal/domain"
)

const noHeartRate = "No valid heart rate data"

var stressRecommendations = map[domain.Level][]string{
	domain.LevelHigh: {
		"Practice deep breathing exercises (4-7-8 technique)",
		"Take regular breaks throughout the day",
		"Consider meditation or mindfulness practice",
		"Ensure adequate sleep (7-9 hours)",
	},
	domain.LevelMedium: {
		"Maintain regular physical activity",
		"Practice stress management techniques",
		"Monitor your sleep quality",
	},
	domain.LevelLow: {
		"Keep up your healthy habits",
		"Continue regular exercise routine",
		"Maintain good sleep hygiene",
	},
}

// ScoreHRV aggregates heart rate and RMSSD over the whole sequence into an
// HRV score and a stress tier.
func (e *Engine) ScoreHRV(readings []domain.Reading) domain.StressAnalysis {
	if len(readings) == 0 {
		return domain.StressAnalysis{Error: noSensorData, StressLevel: domain.LevelUnknown}
	}

	var hr, rmssd []float64
	for _, r := range readings {
		if r.HR > 0 {
			hr = append(hr, r.HR)
		}
		if r.RMSSD > 0 {
			rmssd = append(rmssd, r.RMSSD)
		}
	}
	if len(hr) == 0 {
		return domain.StressAnalysis{Error: noHeartRate, StressLevel: domain.LevelUnknown}
	}

	avgHR := mean(hr)
	avgRMSSD := mean(rmssd)
	s, level := e.hrvScore(avgRMSSD, avgHR)

	var std float64
	if len(hr) > 1 {
		std = populationStd(hr)
		if std > e.th.Stress.MaxHRStd {
			level = escalate(level)
			s = math.Max(e.th.Stress.ScoreFloor, s-e.th.Stress.StdPenalty)
		}
	}

	out := domain.StressAnalysis{
		HRVScore:                score(s),
		StressLevel:             level,
		AvgHeartRate:            round2(avgHR),
		HeartRateVariabilityStd: round2(std),
		Recommendations:         append([]string(nil), stressRecommendations[level]...),
	}
	if avgRMSSD > 0 {
		v := round2(avgRMSSD)
		out.AvgRMSSD = &v
	}
	return out
}

// hrvScore rates mean RMSSD, falling back to mean heart rate when no RMSSD exists.
func (e *Engine) hrvScore(avgRMSSD, avgHR float64) (float64, domain.Level) {
	th := e.th.Stress
	switch {
	case avgRMSSD >= th.ExcellentRMSSD:
		return 95, domain.LevelLow
	case avgRMSSD >= th.GoodRMSSD:
		return 70 + (avgRMSSD-th.GoodRMSSD)*1.25, domain.LevelLow
	case avgRMSSD >= th.FairRMSSD:
		return 40 + (avgRMSSD-th.FairRMSSD)*1.5, domain.LevelMedium
	case avgRMSSD > 0:
		return 20 + avgRMSSD, domain.LevelHigh
	case avgHR < th.CalmHR:
		return 70, domain.LevelLow
	case avgHR < th.ElevatedHR:
		return 50, domain.LevelMedium
	default:
		return 30, domain.LevelHigh
	}
}

// escalate moves low to medium and anything else to high.
func escalate(l domain.Level) domain.Level {
	if l == domain.LevelLow {
		return domain.LevelMedium
	}
	return domain.LevelHigh
}
