// Package langfuse records coaching traces and user feedback scores through
// the Langfuse HTTP ingestion API. An unconfigured client is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestTimeout = 5 * time.Second

// ErrIngestion is returned when Langfuse rejects or cannot receive an event.
var ErrIngestion = errors.New("langfuse ingestion failed")

// Client is the interface for Langfuse operations.
type Client interface {
	IsEnabled() bool
	// CreateTrace records a trace and returns its ID. The ID is generated
	// locally, so it is returned even when delivery fails.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	CreateScore(ctx context.Context, in ScoreInput) error
}

type TraceInput struct {
	ID       string // generated when empty
	DeviceID string // sent as the Langfuse userId
	Name     string
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any
}

type ScoreInput struct {
	TraceID string
	Name    string
	Value   float64
	Comment string
}

type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

func (c Config) enabled() bool {
	return c.BaseURL != "" && c.PublicKey != "" && c.SecretKey != ""
}

type client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Langfuse client. Missing credentials yield a disabled client.
func NewClient(cfg Config, logger *zap.Logger) Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	if cfg.enabled() {
		logger.Info("langfuse enabled", zap.String("base_url", cfg.BaseURL), zap.String("environment", cfg.Environment))
	} else {
		logger.Info("langfuse disabled", zap.Bool("base_url_set", cfg.BaseURL != ""), zap.Bool("keys_set", cfg.PublicKey != "" && cfg.SecretKey != ""))
	}

	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (c *client) IsEnabled() bool {
	return c.cfg.enabled()
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.IsEnabled() {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.NewString()
	}

	metadata := make(map[string]any, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	if c.cfg.Environment != "" {
		metadata["environment"] = c.cfg.Environment
	}

	err := c.send(ctx, "trace-create", traceBody{
		ID:       traceID,
		Name:     in.Name,
		UserID:   in.DeviceID,
		Input:    in.Input,
		Output:   in.Output,
		Tags:     in.Tags,
		Metadata: metadata,
	})
	return traceID, err
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.IsEnabled() {
		return nil
	}

	return c.send(ctx, "score-create", scoreBody{
		ID:      uuid.NewString(),
		TraceID: in.TraceID,
		Name:    in.Name,
		Value:   in.Value,
		Comment: in.Comment,
	})
}

func (c *client) send(ctx context.Context, eventType string, body any) error {
	payload, err := json.Marshal(batchPayload{Batch: []ingestionEvent{{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}}})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", eventType, err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/public/ingestion", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("langfuse send failed", zap.String("event", eventType), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrIngestion, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("langfuse rejected event", zap.String("event", eventType), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: status %d", ErrIngestion, resp.StatusCode)
	}

	c.logger.Debug("langfuse event sent", zap.String("event", eventType))
	return nil
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
