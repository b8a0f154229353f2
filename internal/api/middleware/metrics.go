package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests chi could not route, keeping the label
// cardinality bounded regardless of what paths clients probe.
const unmatchedRoute = "unmatched"

// RequestObserver receives one call per completed request.
type RequestObserver func(method, route string, status int, latency time.Duration)

// Instrument reports every request to observe, labelled with the chi
// route pattern rather than the raw path.
func Instrument(observe RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newStatusRecorder(w)

			next.ServeHTTP(wrapped, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			observe(r.Method, route, wrapped.status, time.Since(start))
		})
	}
}
