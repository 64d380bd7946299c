// Package sensors loads raw sensor records from the places devices leave
// them: JSON files, FIT exports and an MQTT feed.
package sensors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/blaisecz/wellness-monitor/internal/domain"
)

// FileSource reads raw records from a JSON, JSON-array or JSON-lines file.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load returns every record in the file. A missing or blank file holds no records.
func (s *FileSource) Load(ctx context.Context) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sensor file: %w", err)
	}

	records, err := ParseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	return records, nil
}

// Latest returns the last record in the file; ok is false when there is none.
func (s *FileSource) Latest(ctx context.Context) (domain.RawRecord, bool, error) {
	records, err := s.Load(ctx)
	if err != nil || len(records) == 0 {
		return nil, false, err
	}
	return records[len(records)-1], true, nil
}
