package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wrtactics/wr-tactics-api/internal/api/handler"
)

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestHealthHandler_Health(t *testing.T) {
	w := httptest.NewRecorder()
	handler.NewHealthHandler().Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := decodeJSON(t, w); body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body)
	}
}

func TestErrorHandlers(t *testing.T) {
	tests := []struct {
		name       string
		h          http.HandlerFunc
		wantStatus int
		wantError  string
	}{
		{"not found", handler.NotFound, http.StatusNotFound, "not found"},
		{"method not allowed", handler.MethodNotAllowed, http.StatusMethodNotAllowed, "method not allowed"},
		{"too many requests", handler.TooManyRequests, http.StatusTooManyRequests, "rate limit exceeded, try again later"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tc.h(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected Content-Type application/json, got %q", ct)
			}
			if body := decodeJSON(t, w); body["error"] != tc.wantError {
				t.Fatalf("expected error %q, got %v", tc.wantError, body)
			}
		})
	}
}
