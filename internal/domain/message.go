package domain

// WelcomeText is the fixed greeting returned by the root endpoint.
const WelcomeText = "Welcome to WR Tactics API"

// WelcomeMessage is the response body of GET /.
type WelcomeMessage struct {
	Message string `json:"message"`
}

// NewWelcomeMessage returns a fresh greeting. The value never depends on the
// request, the clock or the environment.
func NewWelcomeMessage() WelcomeMessage {
	return WelcomeMessage{Message: WelcomeText}
}

// HealthStatus is the response body of the liveness probe.
type HealthStatus struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
