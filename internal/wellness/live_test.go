package wellness

import (
	"testing"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLive(t *testing.T) {
	tests := []struct {
		name       string
		reading    domain.Reading
		wantScore  float64
		wantStatus domain.LiveStatus
	}{
		{"comfortable", domain.Reading{HR: 70, Temp: 22, Lux: 300}, 100, domain.LiveStatusExcellent},
		{"slightly off", domain.Reading{HR: 50, Temp: 28, Lux: 50}, 82, domain.LiveStatusExcellent},
		{"warm and bright", domain.Reading{HR: 110, Temp: 30, Lux: 3000}, 68, domain.LiveStatusGood},
		{"no signal", domain.Reading{}, 16, domain.LiveStatusPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewEngine().Live(tt.reading)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestLiveSubscores(t *testing.T) {
	assert.Equal(t, 20.0, heartRateSubscore(0))
	assert.Equal(t, 100.0, heartRateSubscore(60))
	assert.Equal(t, 100.0, heartRateSubscore(100))
	assert.Equal(t, 0.0, heartRateSubscore(200))

	assert.Equal(t, 100.0, temperatureSubscore(20))
	assert.Equal(t, 100.0, temperatureSubscore(26))
	assert.Equal(t, 0.0, temperatureSubscore(-5))

	assert.Equal(t, 40.0, luxSubscore(0))
	assert.Equal(t, 100.0, luxSubscore(100))
	assert.Equal(t, 100.0, luxSubscore(1000))
	assert.Equal(t, 0.0, luxSubscore(10000))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StateSleeping, Classify(domain.Reading{HR: 55, Lux: 2, Motion: domain.MotionStill}))
	assert.Equal(t, StateRelaxing, Classify(domain.Reading{HR: 70, Lux: 50, Motion: domain.MotionStill}))
	assert.Equal(t, StateAwake, Classify(domain.Reading{HR: 55, Lux: 2, Motion: domain.MotionMoving}))
	assert.Equal(t, StateAwake, Classify(domain.Reading{HR: 70, Lux: 300, Motion: domain.MotionStill}))
}
