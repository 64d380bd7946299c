package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts an OpenTelemetry span for each HTTP request and
// propagates the context to downstream handlers and services.
func Tracing(next http.Handler) http.Handler {
	tracer := telemetry.Tracer()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		input := map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
		}
		if r.URL.RawQuery != "" {
			input["query"] = r.URL.RawQuery
		}
		if inJSON, err := json.Marshal(input); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.input", string(inJSON)))
		}

		sw := newStatusWriter(w)
		start := time.Now()

		next.ServeHTTP(sw, r.WithContext(ctx))

		// The route pattern is only known once chi has matched the request.
		if route := routePattern(r); route != "" {
			span.SetName(r.Method + " " + route)
			span.SetAttributes(attribute.String("http.route", route))
		}
		span.SetAttributes(attribute.Int("http.status_code", sw.statusCode))
		if sw.statusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(sw.statusCode))
		}
		output := map[string]any{
			"status_code": sw.statusCode,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if outJSON, err := json.Marshal(output); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.output", string(outJSON)))
		}
	})
}
