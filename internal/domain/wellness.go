package domain

import "time"

// Level is the tier shared by the stress and burnout scores.
type Level string

const (
	LevelLow     Level = "low"
	LevelMedium  Level = "medium"
	LevelHigh    Level = "high"
	LevelUnknown Level = "unknown"
)

// SleepQuality is the sleep score tier.
type SleepQuality string

const (
	SleepQualityGood    SleepQuality = "Good"
	SleepQualityOK      SleepQuality = "OK"
	SleepQualityPoor    SleepQuality = "Poor"
	SleepQualityUnknown SleepQuality = "Unknown"
)

// SedentaryStatus describes the final reading of a sequence.
type SedentaryStatus string

const (
	SedentaryStatusSleeping  SedentaryStatus = "sleeping"
	SedentaryStatusActive    SedentaryStatus = "active"
	SedentaryStatusSedentary SedentaryStatus = "sedentary"
	SedentaryStatusUnknown   SedentaryStatus = "unknown"
)

// LiveStatus is the tier of the instant wellness index.
type LiveStatus string

const (
	LiveStatusExcellent LiveStatus = "excellent"
	LiveStatusGood      LiveStatus = "good"
	LiveStatusModerate  LiveStatus = "moderate"
	LiveStatusPoor      LiveStatus = "poor"
)

// Period is an inclusive range of sequence indices.
type Period struct {
	Start int `json:"start_idx" example:"120"`
	End   int `json:"end_idx" example:"539"`
}

// Len returns the number of readings in the period.
func (p Period) Len() int {
	return p.End - p.Start + 1
}

// Contains reports whether index i falls inside the period.
func (p Period) Contains(i int) bool {
	return i >= p.Start && i <= p.End
}

// SleepQualityFactors holds the sub-scores behind a sleep score.
type SleepQualityFactors struct {
	DurationScore    float64 `json:"duration_score"`
	ConsistencyScore float64 `json:"consistency_score"`
	EnvironmentScore float64 `json:"environment_score"`
	HRVRecoveryScore float64 `json:"hrv_recovery_score"`
	Reason           string  `json:"reason,omitempty"`
}

// SleepAnalysis is the result of sleep segmentation and scoring.
// @Description Dominant sleep period and its quality score.
type SleepAnalysis struct {
	Error              string               `json:"error,omitempty"`
	SleepDetected      bool                 `json:"sleep_detected"`
	SleepStart         string               `json:"sleep_start,omitempty" example:"2024-01-15 23:10:00"`
	SleepEnd           string               `json:"sleep_end,omitempty" example:"2024-01-16 06:40:00"`
	Period             *Period              `json:"period,omitempty"`
	TotalDurationHours float64              `json:"total_duration_hours" example:"7.5"`
	SleepScore         float64              `json:"sleep_score" example:"88.5"`
	SleepQuality       SleepQuality         `json:"sleep_quality" example:"Good"`
	QualityFactors     *SleepQualityFactors `json:"quality_factors,omitempty"`
}

// SedentaryPeriod is one qualifying sedentary run.
type SedentaryPeriod struct {
	Period
	DurationMinutes int `json:"duration_minutes" example:"45"`
}

// SedentaryAnalysis is the result of sedentary segmentation.
// @Description Awake low-motion time and current activity status.
type SedentaryAnalysis struct {
	Error                         string            `json:"error,omitempty"`
	SedentaryDurationMinutes      float64           `json:"sedentary_duration_minutes" example:"185"`
	SedentaryStatus               SedentaryStatus   `json:"sedentary_status" example:"sedentary"`
	LongestSedentaryPeriodMinutes float64           `json:"longest_sedentary_period_minutes" example:"70"`
	SedentaryPeriodsCount         int               `json:"sedentary_periods_count" example:"4"`
	SedentaryPeriods              []SedentaryPeriod `json:"sedentary_periods,omitempty"`
	Recommendation                string            `json:"recommendation,omitempty" example:"Take a 5-minute break every hour"`
}

// StressAnalysis is the result of the HRV/stress scorer.
// @Description Heart-rate variability score and stress tier.
type StressAnalysis struct {
	Error                   string   `json:"error,omitempty"`
	HRVScore                float64  `json:"hrv_score" example:"76.25"`
	StressLevel             Level    `json:"stress_level" example:"low"`
	AvgHeartRate            float64  `json:"avg_heart_rate" example:"64.3"`
	AvgRMSSD                *float64 `json:"avg_rmssd" example:"45"`
	HeartRateVariabilityStd float64  `json:"heart_rate_variability_std" example:"6.1"`
	Recommendations         []string `json:"recommendations,omitempty"`
}

// ContributingFactors breaks a burnout score down by component.
type ContributingFactors struct {
	SleepImpact       float64      `json:"sleep_impact" example:"50"`
	SedentaryImpact   float64      `json:"sedentary_impact" example:"10"`
	StressImpact      float64      `json:"stress_impact" example:"50"`
	EnvironmentImpact float64      `json:"environment_impact" example:"10"`
	SleepQuality      SleepQuality `json:"sleep_quality" example:"OK"`
	SedentaryHours    float64      `json:"sedentary_hours" example:"0"`
	StressLevel       Level        `json:"stress_level" example:"medium"`
	AvgLux            float64      `json:"avg_lux" example:"300"`
	AvgTemp           float64      `json:"avg_temp" example:"22"`
}

// ComponentAnalyses carries the nested results a burnout score was built from.
type ComponentAnalyses struct {
	Sleep     SleepAnalysis     `json:"sleep"`
	Sedentary SedentaryAnalysis `json:"sedentary"`
	StressHRV StressAnalysis    `json:"stress_hrv"`
}

// BurnoutAnalysis is the aggregate burnout index.
// @Description Weighted burnout score with contributing factors.
type BurnoutAnalysis struct {
	Error               string               `json:"error,omitempty"`
	BurnoutScore        float64              `json:"burnout_score" example:"34"`
	BurnoutLevel        Level                `json:"burnout_level" example:"low"`
	ContributingFactors *ContributingFactors `json:"contributing_factors,omitempty"`
	Recommendations     []string             `json:"recommendations,omitempty"`
	ComponentAnalyses   *ComponentAnalyses   `json:"component_analyses,omitempty"`
}

// LiveBreakdown holds the sub-scores of the instant wellness index.
type LiveBreakdown struct {
	HeartRateSubscore   float64 `json:"heart_rate_subscore" example:"100"`
	TemperatureSubscore float64 `json:"temperature_subscore" example:"100"`
	LuxSubscore         float64 `json:"lux_subscore" example:"100"`
}

// LiveWellness is the instant wellness index computed from a single reading.
// @Description Instant wellness index from the latest reading.
type LiveWellness struct {
	Score     float64       `json:"score" example:"92.5"`
	Status    LiveStatus    `json:"status" example:"excellent"`
	Breakdown LiveBreakdown `json:"breakdown"`
}

// LiveWellnessResponse pairs the latest reading with its wellness index.
// @Description Latest sensors and instant wellness index.
type LiveWellnessResponse struct {
	Sensors  Reading      `json:"sensors"`
	Wellness LiveWellness `json:"wellness"`
}

// WellnessReport bundles all four analyses of one reading sequence.
// @Description Complete wellness report.
type WellnessReport struct {
	Sleep       SleepAnalysis     `json:"sleep"`
	Sedentary   SedentaryAnalysis `json:"sedentary"`
	Stress      StressAnalysis    `json:"stress"`
	Burnout     BurnoutAnalysis   `json:"burnout"`
	ReadingsN   int               `json:"readings_count" example:"1440"`
	GeneratedAt time.Time         `json:"generated_at" example:"2024-01-16T07:05:00Z"`
}

// DemoReport is the file-backed demo response.
// @Description Demo analysis over a pre-recorded day of readings.
type DemoReport struct {
	Message        string            `json:"message" example:"Demo data - simulated 24-hour sleep cycle"`
	DataPoints     int               `json:"data_points" example:"1440"`
	Sleep          SleepAnalysis     `json:"sleep"`
	Sedentary      SedentaryAnalysis `json:"sedentary"`
	Stress         StressAnalysis    `json:"stress"`
	Burnout        BurnoutAnalysis   `json:"burnout"`
	SampleReadings []RawRecord       `json:"sample_readings"`
}

// NoDataResponse is returned with 200 when the selected source holds no readings.
// @Description Empty source marker.
type NoDataResponse struct {
	Error string `json:"error" example:"no sensor data available"`
}

// WellnessWindow selects the readings of a device that an analysis covers.
type WellnessWindow struct {
	Hours int `json:"window_hours" validate:"min=1,max=720"`
}
