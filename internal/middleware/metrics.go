package middleware

import (
	"net/http"
	"time"

	"github.com/sakif/monkey-intelligence/internal/metrics"
)

// Metrics records a request count and latency per route pattern.
// The pattern is read after the handler runs, once chi has finished routing.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := wrap(w)

		next.ServeHTTP(wrapped, r)

		metrics.ObserveRequest(r.Method, routePattern(r), wrapped.statusCode, time.Since(start))
	})
}
