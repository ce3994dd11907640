package middleware

import (
	"net/http"
	"time"

	"github.com/thanwa-dev/priceboard/internal/metrics"
)

// Metrics records request duration and count for every request.
// Place before the router so even 404s are counted.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrap := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrap, r)
		metrics.RecordRequest(r.Method, r.URL.Path, wrap.status, time.Since(start).Seconds())
	})
}
