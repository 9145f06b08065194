package server

import (
	"log/slog"

	"helphood/internal/handlers/api"
	"helphood/internal/metrics"
)

// ChatPath is the single public chat endpoint.
const ChatPath = "/api/chat"

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(svc api.Answerer, logger *slog.Logger) {
	chatHandler := api.NewChatHandler(svc, logger)
	healthHandler := api.NewHealthHandler(svc)

	// Method checks happen in the handler so every verb gets the JSON contract.
	s.App.All(ChatPath, chatHandler.Chat)

	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", metrics.Handler())
}
