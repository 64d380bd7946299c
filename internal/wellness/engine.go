// Package wellness scores sleep, sedentary behaviour, stress and burnout from
// a time-ordered sequence of canonical sensor readings sampled once a minute.
//
// Every analysis is a pure function of its input: the engine holds no state
// besides its calibration and never returns a Go error for degenerate input.
package wellness

import "github.com/blaisecz/wellness-monitor/internal/domain"

const noSensorData = "No sensor data available"

// Engine runs the wellness analyses with a fixed calibration.
type Engine struct {
	th Thresholds
}

// Option customizes an Engine.
type Option func(*Engine)

// WithThresholds replaces the default calibration.
func WithThresholds(th Thresholds) Option {
	return func(e *Engine) {
		e.th = th
	}
}

// NewEngine creates an engine with the default calibration unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{th: DefaultThresholds()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Thresholds returns the engine calibration.
func (e *Engine) Thresholds() Thresholds {
	return e.th
}

// Complete runs all four analyses over the same snapshot.
func (e *Engine) Complete(readings []domain.Reading) domain.WellnessReport {
	return domain.WellnessReport{
		Sleep:     e.AnalyzeSleep(readings),
		Sedentary: e.DetectSedentary(readings),
		Stress:    e.ScoreHRV(readings),
		Burnout:   e.ComputeBurnout(readings),
		ReadingsN: len(readings),
	}
}
