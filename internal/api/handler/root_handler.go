package handler

import (
	"net/http"

	"github.com/wrtactics/wr-tactics-api/internal/domain"
)

// RootHandler serves the API welcome message.
type RootHandler struct {
	onWelcome func()
}

// NewRootHandler returns a RootHandler. onWelcome is called after each
// greeting is written and may be nil.
func NewRootHandler(onWelcome func()) *RootHandler {
	if onWelcome == nil {
		onWelcome = func() {}
	}
	return &RootHandler{onWelcome: onWelcome}
}

// Root handles GET /
//
// @Summary  Welcome message
// @Tags     root
// @Produce  json
// @Success  200  {object}  domain.WelcomeMessage
// @Router   / [get]
func (h *RootHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.NewWelcomeMessage())
	h.onWelcome()
}
