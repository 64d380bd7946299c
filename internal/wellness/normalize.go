package wellness

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/blaisecz/wellness-monitor/internal/domain"
)

// Accepted spellings per canonical field, in priority order.
var (
	hrKeys        = []string{"HR", "heartRate", "heart_rate", "hr"}
	rmssdKeys     = []string{"RMSSD", "rmssd", "hrv"}
	luxKeys       = []string{"Lux", "lux", "light"}
	tempKeys      = []string{"Temp", "temperature", "temp", "tempC"}
	motionKeys    = []string{"Motion", "motion"}
	timestampKeys = []string{"timestamp", "Timestamp", "ts", "time"}
)

var movingWords = map[string]struct{}{
	"YES":    {},
	"Y":      {},
	"TRUE":   {},
	"1":      {},
	"ON":     {},
	"MOVING": {},
	"MOTION": {},
}

// Normalize maps a raw record onto the canonical reading. It never fails:
// absent or unusable values become 0, still motion and an empty timestamp.
func Normalize(raw domain.RawRecord) domain.Reading {
	r := domain.Reading{
		HR:     toFloat(lookup(raw, hrKeys)),
		RMSSD:  toFloat(lookup(raw, rmssdKeys)),
		Lux:    toFloat(lookup(raw, luxKeys)),
		Temp:   toFloat(lookup(raw, tempKeys)),
		Motion: domain.MotionStill,
	}
	if isMoving(lookup(raw, motionKeys)) {
		r.Motion = domain.MotionMoving
	}
	r.Timestamp = toTimestamp(lookup(raw, timestampKeys))
	return r
}

// NormalizeAll normalizes a sequence, preserving order.
func NormalizeAll(raw []domain.RawRecord) []domain.Reading {
	out := make([]domain.Reading, len(raw))
	for i, rec := range raw {
		out[i] = Normalize(rec)
	}
	return out
}

func lookup(raw domain.RawRecord, keys []string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			return v
		}
	}
	return nil
}

func toFloat(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func isMoving(v any) bool {
	switch m := v.(type) {
	case nil:
		return false
	case bool:
		return m
	case string:
		_, ok := movingWords[strings.ToUpper(strings.TrimSpace(m))]
		return ok
	default:
		return toFloat(v) != 0
	}
}

func toTimestamp(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
