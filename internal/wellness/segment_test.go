package wellness

import (
	"testing"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name   string
		mask   []bool
		minLen int
		want   []domain.Period
	}{
		{
			name:   "empty",
			mask:   nil,
			minLen: 3,
			want:   nil,
		},
		{
			name:   "run shorter than minimum is dropped",
			mask:   []bool{false, true, true, false},
			minLen: 3,
			want:   nil,
		},
		{
			name:   "run exactly at minimum is kept",
			mask:   []bool{false, true, true, true, false},
			minLen: 3,
			want:   []domain.Period{{Start: 1, End: 3}},
		},
		{
			name:   "open run is flushed at the end",
			mask:   []bool{false, true, true, true},
			minLen: 3,
			want:   []domain.Period{{Start: 1, End: 3}},
		},
		{
			name:   "multiple runs",
			mask:   []bool{true, true, false, true, true, true, false, true, true},
			minLen: 2,
			want:   []domain.Period{{Start: 0, End: 1}, {Start: 3, End: 5}, {Start: 7, End: 8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segment(len(tt.mask), tt.minLen, func(i int) bool { return tt.mask[i] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLongest_FirstWinsTies(t *testing.T) {
	periods := []domain.Period{{Start: 0, End: 2}, {Start: 5, End: 9}, {Start: 12, End: 16}}

	got, ok := longest(periods)

	assert.True(t, ok)
	assert.Equal(t, domain.Period{Start: 5, End: 9}, got)

	_, ok = longest(nil)
	assert.False(t, ok)
}
