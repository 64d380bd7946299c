package wellness

import "math"

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func positives(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			out = append(out, v)
		}
	}
	return out
}

// populationStd is the standard deviation with divisor n.
func populationStd(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	avg := mean(values)
	var sq float64
	for _, v := range values {
		sq += (v - avg) * (v - avg)
	}
	return math.Sqrt(sq / float64(len(values)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// unit clamps a score to [0, 100]. Tiers are assigned from this value.
func unit(v float64) float64 {
	return clamp(v, 0, 100)
}

// score clamps to [0, 100] and rounds for output.
func score(v float64) float64 {
	return round2(unit(v))
}
