package handler

import (
	"net/http"

	"github.com/wrtactics/wr-tactics-api/internal/domain"
)

// NotFound replaces chi's plain-text 404 with a JSON body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	mapError(w, domain.ErrNotFound)
}

// MethodNotAllowed replaces chi's plain-text 405 with a JSON body.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	mapError(w, domain.ErrMethodNotAllowed)
}

// TooManyRequests is the rejection handler for the rate limit middleware.
func TooManyRequests(w http.ResponseWriter, r *http.Request) {
	mapError(w, domain.ErrRateLimited)
}
