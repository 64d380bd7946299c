package wellness

import (
	"testing"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSleep_Empty(t *testing.T) {
	got := NewEngine().AnalyzeSleep(nil)

	assert.Equal(t, "No sensor data available", got.Error)
	assert.Equal(t, 0.0, got.SleepScore)
	assert.Equal(t, domain.SleepQualityUnknown, got.SleepQuality)
	assert.False(t, got.SleepDetected)
}

func TestAnalyzeSleep_MinimumLength(t *testing.T) {
	lightSleeper := domain.Reading{HR: 50, Lux: 2, Motion: domain.MotionStill}
	engine := NewEngine()

	two := concat(repeat(awake(), 4), repeat(lightSleeper, 2), repeat(awake(), 4))
	got := engine.AnalyzeSleep(two)
	assert.False(t, got.SleepDetected)
	assert.Equal(t, 30.0, got.SleepScore)
	assert.Equal(t, domain.SleepQualityPoor, got.SleepQuality)
	require.NotNil(t, got.QualityFactors)
	assert.Equal(t, "No sleep period detected in sensor data", got.QualityFactors.Reason)

	three := concat(repeat(awake(), 4), repeat(lightSleeper, 3), repeat(awake(), 4))
	got = engine.AnalyzeSleep(three)
	assert.True(t, got.SleepDetected)
	require.NotNil(t, got.Period)
	assert.Equal(t, domain.Period{Start: 4, End: 6}, *got.Period)
}

func TestAnalyzeSleep_UniformHeartRateIsNeverBelowBaseline(t *testing.T) {
	resting := domain.Reading{HR: 55, Lux: 1, Motion: domain.MotionStill}

	got := NewEngine().AnalyzeSleep(repeat(resting, 30))

	assert.False(t, got.SleepDetected)
	assert.Equal(t, 30.0, got.SleepScore)
}

func TestAnalyzeSleep_FullNight(t *testing.T) {
	night := repeat(asleep(), 420)
	night[0].Timestamp = "2024-01-15 23:00:00"
	night[419].Timestamp = "2024-01-16 05:59:00"
	readings := concat(repeat(awake(), 60), night, repeat(awake(), 30))

	got := NewEngine().AnalyzeSleep(readings)

	assert.Empty(t, got.Error)
	assert.True(t, got.SleepDetected)
	assert.Equal(t, domain.Period{Start: 60, End: 479}, *got.Period)
	assert.Equal(t, "2024-01-15 23:00:00", got.SleepStart)
	assert.Equal(t, "2024-01-16 05:59:00", got.SleepEnd)
	assert.Equal(t, 7.0, got.TotalDurationHours)
	assert.Equal(t, 100.0, got.SleepScore)
	assert.Equal(t, domain.SleepQualityGood, got.SleepQuality)
	assert.Equal(t, &domain.SleepQualityFactors{
		DurationScore:    100,
		ConsistencyScore: 100,
		EnvironmentScore: 100,
		HRVRecoveryScore: 100,
	}, got.QualityFactors)
}

func TestAnalyzeSleep_ShortDimNight(t *testing.T) {
	dim := domain.Reading{HR: 0, RMSSD: 30, Lux: 8, Motion: domain.MotionStill}

	got := NewEngine().AnalyzeSleep(repeat(dim, 300))

	// duration 45, consistency 100, environment 70, recovery 55
	assert.Equal(t, 65.75, got.SleepScore)
	assert.Equal(t, domain.SleepQualityOK, got.SleepQuality)
	assert.Equal(t, 5.0, got.TotalDurationHours)
	assert.Equal(t, 45.0, got.QualityFactors.DurationScore)
	assert.Equal(t, 70.0, got.QualityFactors.EnvironmentScore)
	assert.Equal(t, 55.0, got.QualityFactors.HRVRecoveryScore)
	assert.Equal(t, "Unknown", got.SleepStart)
	assert.Equal(t, "Unknown", got.SleepEnd)
}

func TestAnalyzeSleep_PicksLongestRun(t *testing.T) {
	readings := concat(
		repeat(asleep(), 5),
		repeat(awake(), 2),
		repeat(asleep(), 8),
		repeat(awake(), 2),
		repeat(asleep(), 8),
	)

	got := NewEngine().AnalyzeSleep(readings)

	assert.Equal(t, domain.Period{Start: 7, End: 14}, *got.Period)
}

func TestSleepQuality_Boundaries(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, domain.SleepQualityGood, e.sleepQuality(75))
	assert.Equal(t, domain.SleepQualityOK, e.sleepQuality(74.99))
	assert.Equal(t, domain.SleepQualityOK, e.sleepQuality(74.996))
	assert.Equal(t, domain.SleepQualityOK, e.sleepQuality(50))
	assert.Equal(t, domain.SleepQualityPoor, e.sleepQuality(49.99))
	assert.Equal(t, domain.SleepQualityPoor, e.sleepQuality(49.999))
}

func TestDurationScore(t *testing.T) {
	tests := []struct {
		hours float64
		want  float64
	}{
		{7, 100},
		{9, 100},
		{6, 80},
		{9.5, 80},
		{10, 80},
		{5, 45},
		{1, 20},
		{11, 60},
		{20, 20},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, durationScore(tt.hours, DefaultThresholds().Sleep.DurationHours), 1e-9, "hours %v", tt.hours)
	}
}

func TestRecoveryScore(t *testing.T) {
	e := NewEngine()

	assert.Equal(t, 100.0, e.recoveryScore(41))
	assert.Equal(t, 70.0, e.recoveryScore(40))
	assert.Equal(t, 55.0, e.recoveryScore(30))
	assert.Equal(t, 40.0, e.recoveryScore(20))
	assert.Equal(t, 30.0, e.recoveryScore(0))
}
