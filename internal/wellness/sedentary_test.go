package wellness

import (
	"testing"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetectSedentary_Empty(t *testing.T) {
	got := NewEngine().DetectSedentary(nil)

	assert.Equal(t, "No sensor data available", got.Error)
	assert.Equal(t, domain.SedentaryStatusUnknown, got.SedentaryStatus)
}

func TestDetectSedentary_SleepBreaksRuns(t *testing.T) {
	readings := concat(repeat(sitting(), 10), repeat(asleep(), 5), repeat(sitting(), 10))

	got := NewEngine().DetectSedentary(readings)

	assert.Equal(t, 20.0, got.SedentaryDurationMinutes)
	assert.Equal(t, 10.0, got.LongestSedentaryPeriodMinutes)
	assert.Equal(t, 2, got.SedentaryPeriodsCount)
	assert.Equal(t, domain.SedentaryStatusSedentary, got.SedentaryStatus)
	assert.Equal(t, "Good activity level", got.Recommendation)
	for _, p := range got.SedentaryPeriods {
		for i := 10; i < 15; i++ {
			assert.False(t, p.Contains(i), "sleeping index %d inside %+v", i, p.Period)
		}
	}
}

func TestDetectSedentary_ShortSleepStillExcluded(t *testing.T) {
	// two sleep-predicate readings are too short for a sleep period but still
	// split the surrounding sedentary time
	readings := concat(repeat(sitting(), 6), repeat(asleep(), 2), repeat(sitting(), 6))

	engine := NewEngine()
	assert.Empty(t, engine.SleepPeriods(readings))

	got := engine.DetectSedentary(readings)
	assert.Equal(t, []domain.SedentaryPeriod{
		{Period: domain.Period{Start: 0, End: 5}, DurationMinutes: 6},
		{Period: domain.Period{Start: 8, End: 13}, DurationMinutes: 6},
	}, got.SedentaryPeriods)
	assert.Equal(t, 12.0, got.SedentaryDurationMinutes)
}

func TestDetectSedentary_MinimumLengthAndDimLight(t *testing.T) {
	dim := domain.Reading{HR: 75, Lux: 5, Motion: domain.MotionStill}
	readings := concat(repeat(sitting(), 4), repeat(awake(), 1), repeat(dim, 10), repeat(sitting(), 5))

	got := NewEngine().DetectSedentary(readings)

	assert.Equal(t, 1, got.SedentaryPeriodsCount)
	assert.Equal(t, 5.0, got.SedentaryDurationMinutes)
}

func TestDetectSedentary_Status(t *testing.T) {
	tests := []struct {
		name     string
		readings []domain.Reading
		want     domain.SedentaryStatus
	}{
		{"moving", concat(repeat(sitting(), 3), repeat(awake(), 1)), domain.SedentaryStatusActive},
		{"sleeping", concat(repeat(awake(), 3), repeat(asleep(), 1)), domain.SedentaryStatusSleeping},
		{"sitting", concat(repeat(awake(), 3), repeat(sitting(), 1)), domain.SedentaryStatusSedentary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewEngine().DetectSedentary(tt.readings).SedentaryStatus)
		})
	}
}

func TestDetectSedentary_BreakRecommendation(t *testing.T) {
	got := NewEngine().DetectSedentary(repeat(sitting(), 61))

	assert.Equal(t, 61.0, got.SedentaryDurationMinutes)
	assert.Equal(t, "Take a 5-minute break every hour", got.Recommendation)

	got = NewEngine().DetectSedentary(repeat(sitting(), 60))
	assert.Equal(t, "Good activity level", got.Recommendation)
}
