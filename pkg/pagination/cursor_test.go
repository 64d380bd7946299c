package pagination

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

func TestCursorEncodeDecode(t *testing.T) {
	cursor := &Cursor{
		ID:         1024,
		RecordedAt: time.Date(2024, 1, 16, 2, 15, 0, 0, time.UTC),
	}

	encoded := cursor.Encode()
	decoded, err := DecodeCursor(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded == nil {
		t.Fatalf("decoded cursor is nil")
	}
	if decoded.ID != cursor.ID || !decoded.RecordedAt.Equal(cursor.RecordedAt) {
		t.Fatalf("decoded cursor mismatch: %+v", decoded)
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	tests := map[string]string{
		"bad base64":   "bad!=base64",
		"not json":     base64.URLEncoding.EncodeToString([]byte("nope")),
		"missing id":   base64.URLEncoding.EncodeToString([]byte(`{"recorded_at":"2024-01-16T02:15:00Z"}`)),
		"missing time": base64.URLEncoding.EncodeToString([]byte(`{"id":5}`)),
	}
	for name, encoded := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeCursor(encoded); !errors.Is(err, ErrInvalidCursor) {
				t.Fatalf("DecodeCursor() error = %v, want ErrInvalidCursor", err)
			}
		})
	}
}

func TestDecodeCursorEmpty(t *testing.T) {
	cursor, err := DecodeCursor("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cursor != nil {
		t.Fatalf("expected nil cursor, got %+v", cursor)
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-10, DefaultLimit},
		{MaxLimit + 1, MaxLimit},
		{250, 250},
	}

	for _, tt := range tests {
		if got := NormalizeLimit(tt.in); got != tt.want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
