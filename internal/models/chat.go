package models

// Answer source constants
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// ChatResponse is the body returned for every accepted chat request.
type ChatResponse struct {
	Response string `json:"response"`
	Source   string `json:"source"`
}

// ErrorResponse is the body returned for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports liveness and whether the AI upstream is configured.
type HealthResponse struct {
	Status       string `json:"status"`
	AIConfigured bool   `json:"ai_configured"`
}
