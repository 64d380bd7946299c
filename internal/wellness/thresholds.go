package wellness

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// MinutesPerReading is the fixed sampling interval every duration is derived from.
const MinutesPerReading = 1.0

// Band is an ideal range inside a wider acceptable range. Values between the
// two bounds on either side fall in the fair band.
type Band struct {
	IdealMin float64 `koanf:"ideal_min"`
	IdealMax float64 `koanf:"ideal_max"`
	FairMin  float64 `koanf:"fair_min"`
	FairMax  float64 `koanf:"fair_max"`
}

func (b Band) ideal(v float64) bool {
	return v >= b.IdealMin && v <= b.IdealMax
}

func (b Band) fair(v float64) bool {
	return (v >= b.FairMin && v < b.IdealMin) || (v > b.IdealMax && v <= b.FairMax)
}

func (b Band) ordered() bool {
	return b.FairMin <= b.IdealMin && b.IdealMin <= b.IdealMax && b.IdealMax <= b.FairMax
}

// SleepThresholds calibrates sleep segmentation and scoring.
type SleepThresholds struct {
	MaxLux       float64      `koanf:"max_lux"`
	HRFactor     float64      `koanf:"hr_factor"`
	MinReadings  int          `koanf:"min_readings"`
	GoodScore    float64      `koanf:"good_score"`
	OKScore      float64      `koanf:"ok_score"`
	NoSleepScore float64      `koanf:"no_sleep_score"`
	Weights      SleepWeights `koanf:"weights"`

	// DurationHours is the preferred night length.
	DurationHours Band `koanf:"duration_hours"`
	// DarkLux and DimLux bound the darkness sub-score bands.
	DarkLux float64 `koanf:"dark_lux"`
	DimLux  float64 `koanf:"dim_lux"`
	// RecoveredRMSSD and StrainedRMSSD bound the recovery sub-score bands.
	RecoveredRMSSD float64 `koanf:"recovered_rmssd"`
	StrainedRMSSD  float64 `koanf:"strained_rmssd"`
}

type SleepWeights struct {
	Duration    float64 `koanf:"duration"`
	Consistency float64 `koanf:"consistency"`
	Environment float64 `koanf:"environment"`
	HRV         float64 `koanf:"hrv"`
}

func (w SleepWeights) sum() float64 {
	return w.Duration + w.Consistency + w.Environment + w.HRV
}

// SedentaryThresholds calibrates sedentary segmentation.
type SedentaryThresholds struct {
	MinLux            float64 `koanf:"min_lux"`
	MinReadings       int     `koanf:"min_readings"`
	BreakAfterMinutes float64 `koanf:"break_after_minutes"`
}

// StressThresholds calibrates the HRV score bands and the heart-rate
// variability penalty.
type StressThresholds struct {
	MaxHRStd   float64 `koanf:"max_hr_std"`
	StdPenalty float64 `koanf:"std_penalty"`
	ScoreFloor float64 `koanf:"score_floor"`

	// RMSSD lower bounds of the excellent, good and fair bands.
	ExcellentRMSSD float64 `koanf:"excellent_rmssd"`
	GoodRMSSD      float64 `koanf:"good_rmssd"`
	FairRMSSD      float64 `koanf:"fair_rmssd"`
	// Mean heart rate bands used when no RMSSD was recorded.
	CalmHR     float64 `koanf:"calm_hr"`
	ElevatedHR float64 `koanf:"elevated_hr"`
}

// BurnoutThresholds calibrates the burnout aggregate.
type BurnoutThresholds struct {
	HighScore          float64        `koanf:"high_score"`
	MediumScore        float64        `koanf:"medium_score"`
	RecommendAbove     float64        `koanf:"recommend_above"`
	DefaultStressScore float64        `koanf:"default_stress_score"`
	Weights            BurnoutWeights `koanf:"weights"`

	SedentaryMinutes SedentaryBands `koanf:"sedentary_minutes"`
	Lux              Band           `koanf:"lux"`
	Temperature      Band           `koanf:"temperature"`
}

// SedentaryBands are the exclusive lower bounds of the sedentary burnout ladder.
type SedentaryBands struct {
	Mild     float64 `koanf:"mild"`
	Moderate float64 `koanf:"moderate"`
	High     float64 `koanf:"high"`
	Severe   float64 `koanf:"severe"`
}

type BurnoutWeights struct {
	Sleep       float64 `koanf:"sleep"`
	Sedentary   float64 `koanf:"sedentary"`
	Stress      float64 `koanf:"stress"`
	Environment float64 `koanf:"environment"`
}

func (w BurnoutWeights) sum() float64 {
	return w.Sleep + w.Sedentary + w.Stress + w.Environment
}

// LiveThresholds calibrates the instant wellness index.
type LiveThresholds struct {
	ExcellentScore float64     `koanf:"excellent_score"`
	GoodScore      float64     `koanf:"good_score"`
	ModerateScore  float64     `koanf:"moderate_score"`
	Weights        LiveWeights `koanf:"weights"`
}

type LiveWeights struct {
	HeartRate   float64 `koanf:"heart_rate"`
	Temperature float64 `koanf:"temperature"`
	Lux         float64 `koanf:"lux"`
}

func (w LiveWeights) sum() float64 {
	return w.HeartRate + w.Temperature + w.Lux
}

// Thresholds holds every tunable constant of the engine.
type Thresholds struct {
	Sleep     SleepThresholds     `koanf:"sleep"`
	Sedentary SedentaryThresholds `koanf:"sedentary"`
	Stress    StressThresholds    `koanf:"stress"`
	Burnout   BurnoutThresholds   `koanf:"burnout"`
	Live      LiveThresholds      `koanf:"live"`
}

// DefaultThresholds returns the stock calibration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Sleep: SleepThresholds{
			MaxLux:       10,
			HRFactor:     0.85,
			MinReadings:  3,
			GoodScore:    75,
			OKScore:      50,
			NoSleepScore: 30,
			Weights: SleepWeights{
				Duration:    0.35,
				Consistency: 0.25,
				Environment: 0.20,
				HRV:         0.20,
			},
			DurationHours:  Band{IdealMin: 7, IdealMax: 9, FairMin: 6, FairMax: 10},
			DarkLux:        5,
			DimLux:         20,
			RecoveredRMSSD: 40,
			StrainedRMSSD:  20,
		},
		Sedentary: SedentaryThresholds{
			MinLux:            10,
			MinReadings:       5,
			BreakAfterMinutes: 60,
		},
		Stress: StressThresholds{
			MaxHRStd:   15,
			StdPenalty: 15,
			ScoreFloor: 20,

			ExcellentRMSSD: 60,
			GoodRMSSD:      40,
			FairRMSSD:      20,
			CalmHR:         70,
			ElevatedHR:     85,
		},
		Burnout: BurnoutThresholds{
			HighScore:          70,
			MediumScore:        40,
			RecommendAbove:     50,
			DefaultStressScore: 50,
			Weights: BurnoutWeights{
				Sleep:       0.30,
				Sedentary:   0.25,
				Stress:      0.30,
				Environment: 0.15,
			},
			SedentaryMinutes: SedentaryBands{Mild: 120, Moderate: 240, High: 360, Severe: 480},
			Lux:              Band{IdealMin: 200, IdealMax: 500, FairMin: 100, FairMax: 1000},
			Temperature:      Band{IdealMin: 20, IdealMax: 24, FairMin: 18, FairMax: 26},
		},
		Live: LiveThresholds{
			ExcellentScore: 80,
			GoodScore:      60,
			ModerateScore:  40,
			Weights: LiveWeights{
				HeartRate:   0.40,
				Temperature: 0.40,
				Lux:         0.20,
			},
		},
	}
}

// ErrInvalidThresholds is returned when a calibration cannot be used.
var ErrInvalidThresholds = errors.New("invalid wellness thresholds")

const weightTolerance = 1e-6

// Validate rejects calibrations that would break the scoring invariants.
func (t Thresholds) Validate() error {
	var problems []string

	if t.Sleep.MinReadings < 1 {
		problems = append(problems, "sleep.min_readings must be positive")
	}
	if t.Sedentary.MinReadings < 1 {
		problems = append(problems, "sedentary.min_readings must be positive")
	}
	if t.Sleep.HRFactor <= 0 {
		problems = append(problems, "sleep.hr_factor must be positive")
	}
	if t.Sleep.GoodScore <= t.Sleep.OKScore {
		problems = append(problems, "sleep.good_score must exceed sleep.ok_score")
	}
	if t.Burnout.HighScore <= t.Burnout.MediumScore {
		problems = append(problems, "burnout.high_score must exceed burnout.medium_score")
	}
	if !(t.Live.ExcellentScore > t.Live.GoodScore && t.Live.GoodScore > t.Live.ModerateScore) {
		problems = append(problems, "live tiers must be strictly descending")
	}
	if !t.Sleep.DurationHours.ordered() {
		problems = append(problems, "sleep.duration_hours bands are out of order")
	}
	if t.Sleep.DarkLux >= t.Sleep.DimLux {
		problems = append(problems, "sleep.dark_lux must be below sleep.dim_lux")
	}
	if t.Sleep.StrainedRMSSD >= t.Sleep.RecoveredRMSSD {
		problems = append(problems, "sleep.strained_rmssd must be below sleep.recovered_rmssd")
	}
	if !(t.Stress.FairRMSSD > 0 && t.Stress.FairRMSSD < t.Stress.GoodRMSSD && t.Stress.GoodRMSSD < t.Stress.ExcellentRMSSD) {
		problems = append(problems, "stress rmssd bands must be positive and ascending")
	}
	if t.Stress.CalmHR >= t.Stress.ElevatedHR {
		problems = append(problems, "stress.calm_hr must be below stress.elevated_hr")
	}
	sb := t.Burnout.SedentaryMinutes
	if !(sb.Mild < sb.Moderate && sb.Moderate < sb.High && sb.High < sb.Severe) {
		problems = append(problems, "burnout.sedentary_minutes bands must be ascending")
	}
	if !t.Burnout.Lux.ordered() || !t.Burnout.Temperature.ordered() {
		problems = append(problems, "burnout lux and temperature bands are out of order")
	}
	if math.Abs(t.Sleep.Weights.sum()-1) > weightTolerance {
		problems = append(problems, "sleep.weights must sum to 1")
	}
	if math.Abs(t.Burnout.Weights.sum()-1) > weightTolerance {
		problems = append(problems, "burnout.weights must sum to 1")
	}
	if math.Abs(t.Live.Weights.sum()-1) > weightTolerance {
		problems = append(problems, "live.weights must sum to 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidThresholds, strings.Join(problems, "; "))
	}
	return nil
}

// EnvPrefix is the environment prefix for threshold overrides. Nested keys are
// separated by a double underscore, e.g. WELLNESS_SLEEP__MIN_READINGS=5.
const EnvPrefix = "WELLNESS_"

// LoadThresholds layers defaults, an optional YAML file and WELLNESS_ env vars.
func LoadThresholds(path string) (Thresholds, error) {
	th := DefaultThresholds()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Thresholds{}, fmt.Errorf("load thresholds file: %w", err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Thresholds{}, fmt.Errorf("load thresholds env: %w", err)
	}

	if err := k.UnmarshalWithConf("", &th, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Thresholds{}, fmt.Errorf("decode thresholds: %w", err)
	}
	if err := th.Validate(); err != nil {
		return Thresholds{}, err
	}
	return th, nil
}
