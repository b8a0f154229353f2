package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/wrtactics/wr-tactics-api/internal/domain"
)

func TestNewWelcomeMessage(t *testing.T) {
	t.Run("message is the fixed greeting", func(t *testing.T) {
		m := domain.NewWelcomeMessage()
		if m.Message != "Welcome to WR Tactics API" {
			t.Fatalf("unexpected message %q", m.Message)
		}
	})

	t.Run("every call yields an equal value", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			if domain.NewWelcomeMessage() != domain.NewWelcomeMessage() {
				t.Fatal("expected identical welcome messages")
			}
		}
	})

	t.Run("serializes with a single message key", func(t *testing.T) {
		b, err := json.Marshal(domain.NewWelcomeMessage())
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if got, want := string(b), `{"message":"Welcome to WR Tactics API"}`; got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})
}
