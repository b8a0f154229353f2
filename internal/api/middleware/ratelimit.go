package middleware

import (
	"net/http"
)

// Allower is satisfied by *ratelimiter.Limiter.
type Allower interface {
	Allow() bool
}

// RateLimit hands the request to reject when limiter has no token left.
func RateLimit(limiter Allower, reject http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				reject(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
