package sensors

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	"github.com/tidwall/gjson"
)

const maxLineBytes = 1 << 20

// ParseRecords accepts a JSON array of objects, a single JSON object, or JSON
// lines (one object per non-blank line). Blank input yields no records.
func ParseRecords(data []byte) ([]domain.RawRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if gjson.ValidBytes(data) {
		doc := gjson.ParseBytes(data)
		switch {
		case doc.IsArray():
			var records []domain.RawRecord
			doc.ForEach(func(_, value gjson.Result) bool {
				if rec, ok := toRecord(value); ok {
					records = append(records, rec)
				}
				return true
			})
			return records, nil
		case doc.IsObject():
			rec, _ := toRecord(doc)
			return []domain.RawRecord{rec}, nil
		default:
			return nil, nil
		}
	}

	return parseLines(data)
}

func parseLines(data []byte) ([]domain.RawRecord, error) {
	var records []domain.RawRecord

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		if !gjson.ValidBytes(text) {
			return nil, fmt.Errorf("line %d: %w", line, domain.ErrUnsupportedFormat)
		}
		rec, ok := toRecord(gjson.ParseBytes(text))
		if !ok {
			return nil, fmt.Errorf("line %d is not an object: %w", line, domain.ErrUnsupportedFormat)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan sensor lines: %w", err)
	}
	return records, nil
}

func toRecord(value gjson.Result) (domain.RawRecord, bool) {
	if !value.IsObject() {
		return nil, false
	}
	m, ok := value.Value().(map[string]interface{})
	if !ok {
		return nil, false
	}
	return domain.RawRecord(m), true
}
