package wellness

import (
	"testing"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHR(rmssd float64, hr ...float64) []domain.Reading {
	out := make([]domain.Reading, len(hr))
	for i, h := range hr {
		out[i] = domain.Reading{HR: h, RMSSD: rmssd, Motion: domain.MotionStill}
	}
	return out
}

func TestScoreHRV(t *testing.T) {
	tests := []struct {
		name      string
		readings  []domain.Reading
		wantScore float64
		wantLevel domain.Level
		wantStd   float64
	}{
		{"steady heart rate, good rmssd", withHR(45, 60, 60, 60, 60), 76.25, domain.LevelLow, 0},
		{"excellent rmssd", withHR(70, 58, 62), 95, domain.LevelLow, 2},
		{"moderate rmssd", withHR(30, 70, 72), 55, domain.LevelMedium, 1},
		{"poor rmssd", withHR(10, 80, 82), 30, domain.LevelHigh, 1},
		{"volatile heart rate escalates low to medium", withHR(45, 40, 80), 61.25, domain.LevelMedium, 20},
		{"penalty respects floor", withHR(10, 40, 80), 20, domain.LevelHigh, 20},
		{"heart-rate fallback low", withHR(0, 65, 65), 70, domain.LevelLow, 0},
		{"heart-rate fallback medium", withHR(0, 75), 50, domain.LevelMedium, 0},
		{"heart-rate fallback high", withHR(0, 90, 90), 30, domain.LevelHigh, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewEngine().ScoreHRV(tt.readings)

			assert.Empty(t, got.Error)
			assert.Equal(t, tt.wantScore, got.HRVScore)
			assert.Equal(t, tt.wantLevel, got.StressLevel)
			assert.Equal(t, tt.wantStd, got.HeartRateVariabilityStd)
			assert.Equal(t, stressRecommendations[tt.wantLevel], got.Recommendations)
		})
	}
}

func TestScoreHRV_AverageRMSSD(t *testing.T) {
	got := NewEngine().ScoreHRV(withHR(45, 60, 60))
	require.NotNil(t, got.AvgRMSSD)
	assert.Equal(t, 45.0, *got.AvgRMSSD)
	assert.Equal(t, 60.0, got.AvgHeartRate)

	got = NewEngine().ScoreHRV(withHR(0, 60, 60))
	assert.Nil(t, got.AvgRMSSD)
}

func TestScoreHRV_NoSignal(t *testing.T) {
	got := NewEngine().ScoreHRV(withHR(40, 0, 0, 0))
	assert.Equal(t, "No valid heart rate data", got.Error)
	assert.Equal(t, domain.LevelUnknown, got.StressLevel)

	got = NewEngine().ScoreHRV(nil)
	assert.Equal(t, "No sensor data available", got.Error)
	assert.Equal(t, domain.LevelUnknown, got.StressLevel)
}

func TestEscalate(t *testing.T) {
	assert.Equal(t, domain.LevelMedium, escalate(domain.LevelLow))
	assert.Equal(t, domain.LevelHigh, escalate(domain.LevelMedium))
	assert.Equal(t, domain.LevelHigh, escalate(domain.LevelHigh))
}
