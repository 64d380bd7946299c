package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// SentryConfig configures error reporting. An empty DSN disables it.
type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
	ServerName  string
}

// InitSentry initializes the global Sentry hub and returns a flush function
// to call on shutdown.
func InitSentry(cfg SentryConfig, logger *zap.Logger) (func(), error) {
	if cfg.DSN == "" {
		logger.Info("sentry DSN not configured, error reporting disabled")
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		ServerName:  cfg.ServerName,
		BeforeSend:  scrubEvent,
	})
	if err != nil {
		return nil, fmt.Errorf("sentry init: %w", err)
	}

	logger.Info("sentry initialized", zap.String("environment", cfg.Environment))
	return func() { sentry.Flush(2 * time.Second) }, nil
}

func scrubEvent(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event.Request != nil && event.Request.Headers != nil {
		for _, h := range []string{"Authorization", "Cookie"} {
			delete(event.Request.Headers, h)
			delete(event.Request.Headers, http.CanonicalHeaderKey(h))
		}
	}
	return event
}

// CapturePanic reports a recovered panic value against the request.
func CapturePanic(r *http.Request, recovered any) {
	hub := sentry.GetHubFromContext(r.Context())
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.Scope().SetRequest(r)
	hub.Recover(recovered)
}
