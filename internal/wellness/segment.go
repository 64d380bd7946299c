package wellness

import "github.com/blaisecz/wellness-monitor/internal/domain"

// scan is the fold state of a period segmentation: idle, or inside a run
// that opened at start.
type scan struct {
	open    bool
	start   int
	minLen  int
	periods []domain.Period
}

// step consumes index i whose predicate value is in.
func (s scan) step(i int, in bool) scan {
	switch {
	case in && !s.open:
		s.open, s.start = true, i
	case !in && s.open:
		s = s.close(i - 1)
	}
	return s
}

// close ends the open run at end and keeps it when long enough.
func (s scan) close(end int) scan {
	p := domain.Period{Start: s.start, End: end}
	if p.Len() >= s.minLen {
		s.periods = append(s.periods, p)
	}
	s.open = false
	return s
}

// segment folds the predicate over indices [0, n) and returns every maximal
// run of at least minLen indices.
func segment(n, minLen int, pred func(i int) bool) []domain.Period {
	s := scan{minLen: minLen}
	for i := 0; i < n; i++ {
		s = s.step(i, pred(i))
	}
	if s.open {
		s = s.close(n - 1)
	}
	return s.periods
}

// longest returns the period with the most readings; the first wins ties.
func longest(periods []domain.Period) (domain.Period, bool) {
	if len(periods) == 0 {
		return domain.Period{}, false
	}
	best := periods[0]
	for _, p := range periods[1:] {
		if p.Len() > best.Len() {
			best = p
		}
	}
	return best, true
}
