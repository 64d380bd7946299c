package wellness

import "github.com/blaisecz/wellness-monitor/internal/domain"

func asleep() domain.Reading {
	return domain.Reading{HR: 0, RMSSD: 50, Lux: 2, Temp: 21, Motion: domain.MotionStill}
}

func awake() domain.Reading {
	return domain.Reading{HR: 80, RMSSD: 30, Lux: 300, Temp: 22, Motion: domain.MotionMoving}
}

func sitting() domain.Reading {
	return domain.Reading{HR: 70, RMSSD: 35, Lux: 300, Temp: 22, Motion: domain.MotionStill}
}

func repeat(r domain.Reading, n int) []domain.Reading {
	out := make([]domain.Reading, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func concat(parts ...[]domain.Reading) []domain.Reading {
	var out []domain.Reading
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
