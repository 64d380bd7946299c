package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/wellness-monitor/internal/telemetry"
	"github.com/blaisecz/wellness-monitor/pkg/problem"
	"go.uber.org/zap"
)

// Recovery recovers from panics, reports them to Sentry and returns a 500 error
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.Error("panic recovered",
						zap.Any("panic", err),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					telemetry.CapturePanic(r, err)
					problem.InternalError("An unexpected error occurred").Write(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
