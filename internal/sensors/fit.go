package sensors

import (
	"fmt"
	"io"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
)

// FIT invalid-value sentinels.
const (
	fitInvalidUint8  = 0xFF
	fitInvalidUint16 = 0xFFFF
	fitInvalidSint8  = 0x7F
)

// FITTimestampLayout is how record timestamps are rendered from FIT exports.
const FITTimestampLayout = "2006-01-02 15:04:05"

// DecodeFIT extracts raw records from the record messages of a FIT activity
// or monitoring export. Records are merged into one record per minute: HR and
// temperature are averaged over their valid samples and the minute is moving
// when any sample in it moved. Records without a timestamp stay on their own.
func DecodeFIT(r io.Reader) ([]domain.RawRecord, error) {
	dec := decoder.New(r)

	var buckets []*minuteBucket
	index := map[time.Time]*minuteBucket{}
	for dec.Next() {
		fit, err := dec.Decode()
		if err != nil {
			return nil, fmt.Errorf("%w: decode FIT: %v", domain.ErrUnsupportedFormat, err)
		}
		for i := range fit.Messages {
			if fit.Messages[i].Num != typedef.MesgNumRecord {
				continue
			}
			rec := mesgdef.NewRecord(&fit.Messages[i])
			if rec.Timestamp.IsZero() {
				b := &minuteBucket{}
				b.add(rec)
				buckets = append(buckets, b)
				continue
			}
			minute := rec.Timestamp.UTC().Truncate(time.Minute)
			b, ok := index[minute]
			if !ok {
				b = &minuteBucket{minute: minute}
				index[minute] = b
				buckets = append(buckets, b)
			}
			b.add(rec)
		}
	}

	if len(buckets) == 0 {
		return nil, domain.ErrNoSensorData
	}

	records := make([]domain.RawRecord, len(buckets))
	for i, b := range buckets {
		records[i] = b.raw()
	}
	return records, nil
}

type minuteBucket struct {
	minute  time.Time
	hrSum   float64
	hrN     int
	tempSum float64
	tempN   int
	moving  bool
}

func (b *minuteBucket) add(rec *mesgdef.Record) {
	if rec.HeartRate != fitInvalidUint8 {
		b.hrSum += float64(rec.HeartRate)
		b.hrN++
	}
	if rec.Temperature != fitInvalidSint8 {
		b.tempSum += float64(rec.Temperature)
		b.tempN++
	}
	if (rec.Speed != fitInvalidUint16 && rec.Speed > 0) ||
		(rec.Cadence != fitInvalidUint8 && rec.Cadence > 0) {
		b.moving = true
	}
}

func (b *minuteBucket) raw() domain.RawRecord {
	raw := domain.RawRecord{"motion": b.moving}
	if b.hrN > 0 {
		raw["heart_rate"] = b.hrSum / float64(b.hrN)
	}
	if b.tempN > 0 {
		raw["temperature"] = b.tempSum / float64(b.tempN)
	}
	if !b.minute.IsZero() {
		raw["timestamp"] = b.minute.Format(FITTimestampLayout)
	}
	return raw
}
