package middleware

import (
	"net/http"
	"time"

	"github.com/blaisecz/wellness-monitor/pkg/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request counts and latency per route template. Requests
// that match no route share one label so the series count stays bounded.
func Metrics(m *metrics.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()

			next.ServeHTTP(sw, r)

			route := routePattern(r)
			if route == "" {
				route = unmatchedRoute
			}
			m.RecordHTTPRequest(route, r.Method, sw.statusCode, time.Since(start))
		})
	}
}
