package wellness

import "github.com/blaisecz/wellness-monitor/internal/domain"

const (
	recommendSleep       = "Prioritize sleep: aim for 7-9 hours of quality sleep"
	recommendSedentary   = "Reduce sedentary time: take breaks every 30-60 minutes"
	recommendStress      = "Practice stress management: meditation, deep breathing"
	recommendSupport     = "Consider professional support if stress persists"
	recommendEnvironment = "Optimize your environment: adjust lighting and temperature"
	recommendMaintain    = "Great job! Maintain your healthy habits"
)

// burnoutInputs are the scalars the aggregate is computed from.
type burnoutInputs struct {
	sleepScore       float64
	sedentaryMinutes float64
	hrvScore         float64
	avgLux           float64
	avgTemp          float64
}

// ComputeBurnout combines the sleep, sedentary and stress analyses with an
// environment component into a weighted burnout score (higher is worse).
func (e *Engine) ComputeBurnout(readings []domain.Reading) domain.BurnoutAnalysis {
	if len(readings) == 0 {
		return domain.BurnoutAnalysis{Error: noSensorData, BurnoutLevel: domain.LevelUnknown}
	}

	sleep := e.AnalyzeSleep(readings)
	sedentary := e.DetectSedentary(readings)
	stress := e.ScoreHRV(readings)

	lux := make([]float64, len(readings))
	temp := make([]float64, len(readings))
	for i, r := range readings {
		lux[i] = r.Lux
		temp[i] = r.Temp
	}

	in := burnoutInputs{
		sleepScore:       sleep.SleepScore,
		sedentaryMinutes: sedentary.SedentaryDurationMinutes,
		hrvScore:         stress.HRVScore,
		avgLux:           mean(lux),
		avgTemp:          mean(temp),
	}
	if stress.Error != "" {
		in.hrvScore = e.th.Burnout.DefaultStressScore
	}

	out := e.aggregateBurnout(in)
	out.ContributingFactors.SleepQuality = sleep.SleepQuality
	out.ContributingFactors.StressLevel = stress.StressLevel
	out.ComponentAnalyses = &domain.ComponentAnalyses{
		Sleep:     sleep,
		Sedentary: sedentary,
		StressHRV: stress,
	}
	return out
}

func (e *Engine) aggregateBurnout(in burnoutInputs) domain.BurnoutAnalysis {
	sleepImpact := 100 - in.sleepScore
	sedentaryImpact := sedentaryBurnout(in.sedentaryMinutes, e.th.Burnout.SedentaryMinutes)
	stressImpact := 100 - in.hrvScore
	envImpact := (bandBurnout(in.avgLux, e.th.Burnout.Lux) + bandBurnout(in.avgTemp, e.th.Burnout.Temperature)) / 2

	w := e.th.Burnout.Weights
	s := unit(sleepImpact*w.Sleep +
		sedentaryImpact*w.Sedentary +
		stressImpact*w.Stress +
		envImpact*w.Environment)
	level := e.burnoutLevel(s)

	var recs []string
	above := e.th.Burnout.RecommendAbove
	if sleepImpact > above {
		recs = append(recs, recommendSleep)
	}
	if sedentaryImpact > above {
		recs = append(recs, recommendSedentary)
	}
	if stressImpact > above {
		recs = append(recs, recommendStress, recommendSupport)
	}
	if envImpact > above {
		recs = append(recs, recommendEnvironment)
	}
	if level == domain.LevelLow {
		recs = append(recs, recommendMaintain)
	}

	return domain.BurnoutAnalysis{
		BurnoutScore: round2(s),
		BurnoutLevel: level,
		ContributingFactors: &domain.ContributingFactors{
			SleepImpact:       score(sleepImpact),
			SedentaryImpact:   score(sedentaryImpact),
			StressImpact:      score(stressImpact),
			EnvironmentImpact: score(envImpact),
			SedentaryHours:    round2(in.sedentaryMinutes / 60),
			AvgLux:            round2(in.avgLux),
			AvgTemp:           round2(in.avgTemp),
		},
		Recommendations: recs,
	}
}

func (e *Engine) burnoutLevel(s float64) domain.Level {
	switch {
	case s >= e.th.Burnout.HighScore:
		return domain.LevelHigh
	case s >= e.th.Burnout.MediumScore:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}

func sedentaryBurnout(minutes float64, b SedentaryBands) float64 {
	switch {
	case minutes > b.Severe:
		return 90
	case minutes > b.High:
		return 70
	case minutes > b.Moderate:
		return 50
	case minutes > b.Mild:
		return 30
	default:
		return 10
	}
}

// bandBurnout scores an environment average against its preferred band:
// 200 to 500 lux and 20 to 24 °C by default.
func bandBurnout(avg float64, b Band) float64 {
	switch {
	case b.ideal(avg):
		return 10
	case b.fair(avg):
		return 40
	default:
		return 70
	}
}
