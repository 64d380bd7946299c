package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type capture struct {
	mu   sync.Mutex
	auth string
	body map[string]any
}

func newIngestionServer(t *testing.T, status int) (*httptest.Server, *capture) {
	t.Helper()
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if user, pass, ok := r.BasicAuth(); ok {
			c.auth = user + ":" + pass
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &c.body)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func (c *capture) event(t *testing.T) map[string]any {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	batch, ok := c.body["batch"].([]any)
	if !ok || len(batch) != 1 {
		t.Fatalf("expected batch with 1 event, got %v", c.body)
	}
	return batch[0].(map[string]any)
}

func TestNewClient_Disabled(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"empty base URL", Config{PublicKey: "pk", SecretKey: "sk"}},
		{"empty public key", Config{BaseURL: "http://localhost", SecretKey: "sk"}},
		{"empty secret key", Config{BaseURL: "http://localhost", PublicKey: "pk"}},
		{"all empty", Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.config, nil)
			if c.IsEnabled() {
				t.Error("expected client to be disabled")
			}

			traceID, err := c.CreateTrace(context.Background(), TraceInput{Name: "coaching"})
			if err != nil || traceID != "" {
				t.Errorf("disabled CreateTrace = (%q, %v), want empty no-op", traceID, err)
			}
			if err := c.CreateScore(context.Background(), ScoreInput{TraceID: "t", Value: 3}); err != nil {
				t.Errorf("disabled CreateScore returned %v", err)
			}
		})
	}
}

func TestCreateTrace_EnabledClient(t *testing.T) {
	srv, got := newIngestionServer(t, http.StatusOK)

	c := NewClient(Config{BaseURL: srv.URL + "/", PublicKey: "pk-test", SecretKey: "sk-test", Environment: "testing"}, nil)
	if !c.IsEnabled() {
		t.Fatal("expected client to be enabled")
	}

	traceID, err := c.CreateTrace(context.Background(), TraceInput{
		DeviceID: "device-123",
		Name:     "wellness-coaching",
		Input:    map[string]any{"window_hours": 24},
		Output:   map[string]any{"summary": "rest more"},
		Tags:     []string{"wellness"},
		Metadata: map[string]any{"model": "gpt-4o-mini"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if traceID == "" {
		t.Fatal("expected non-empty trace ID")
	}

	if got.auth != "pk-test:sk-test" {
		t.Errorf("expected auth pk-test:sk-test, got %s", got.auth)
	}

	event := got.event(t)
	if event["type"] != "trace-create" {
		t.Errorf("expected type trace-create, got %v", event["type"])
	}
	body := event["body"].(map[string]any)
	if body["id"] != traceID {
		t.Errorf("expected body id %s, got %v", traceID, body["id"])
	}
	if body["userId"] != "device-123" {
		t.Errorf("expected userId device-123, got %v", body["userId"])
	}
	metadata := body["metadata"].(map[string]any)
	if metadata["environment"] != "testing" || metadata["model"] != "gpt-4o-mini" {
		t.Errorf("unexpected metadata %v", metadata)
	}
}

func TestCreateScore_EnabledClient(t *testing.T) {
	srv, got := newIngestionServer(t, http.StatusOK)

	c := NewClient(Config{BaseURL: srv.URL, PublicKey: "pk", SecretKey: "sk"}, nil)
	err := c.CreateScore(context.Background(), ScoreInput{
		TraceID: "trace-abc123",
		Name:    "user_rating",
		Value:   4,
		Comment: "useful",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	event := got.event(t)
	if event["type"] != "score-create" {
		t.Errorf("expected type score-create, got %v", event["type"])
	}
	body := event["body"].(map[string]any)
	if body["traceId"] != "trace-abc123" || body["value"] != 4.0 || body["comment"] != "useful" {
		t.Errorf("unexpected score body %v", body)
	}
}

func TestCreateTrace_ServerError(t *testing.T) {
	srv, _ := newIngestionServer(t, http.StatusInternalServerError)

	c := NewClient(Config{BaseURL: srv.URL, PublicKey: "pk", SecretKey: "sk"}, nil)
	traceID, err := c.CreateTrace(context.Background(), TraceInput{Name: "test"})

	if traceID == "" {
		t.Error("expected trace ID even on error")
	}
	if !errors.Is(err, ErrIngestion) {
		t.Errorf("expected ErrIngestion, got %v", err)
	}
}
