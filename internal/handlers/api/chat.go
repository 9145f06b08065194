package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"helphood/internal/assistant"
	"helphood/internal/validation"
)

// Answerer produces chat answers. *assistant.Service implements it.
type Answerer interface {
	Answer(ctx context.Context, message string) assistant.Answer
	Fallback(message string, reason assistant.Reason) assistant.Answer
	AIConfigured() bool
}

// ChatHandler serves the chat endpoint.
type ChatHandler struct {
	svc    Answerer
	logger *slog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(svc Answerer, logger *slog.Logger) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{svc: svc, logger: logger.With("component", "chat")}
}

// Chat answers a {"message": "..."} POST. OPTIONS is answered with an empty
// 200; any other method is rejected. An empty body gets the default fallback
// answer; a body that is not JSON or lacks a valid message is a 400. Past
// validation the reply is always 200 with {"response", "source"}, including
// after a panic.
func (h *ChatHandler) Chat(c fiber.Ctx) (err error) {
	switch c.Method() {
	case fiber.MethodOptions:
		c.Status(fiber.StatusOK)
		return nil
	case fiber.MethodPost:
	default:
		return jsonError(c, fiber.StatusMethodNotAllowed, "Method not allowed")
	}

	requestID := uuid.NewString()
	var message string

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("error processing chat request", "request_id", requestID, "panic", r)
			answer := h.svc.Fallback(message, assistant.ReasonPanic)
			err = c.Status(fiber.StatusOK).JSON(answer.Response())
		}
	}()

	raw := c.Body()
	if len(bytes.TrimSpace(raw)) == 0 {
		// No body to validate: answer like an unmatched question.
		h.logger.Warn("chat request without a body, using fallback response", "request_id", requestID)
		return c.JSON(h.svc.Fallback("", assistant.ReasonEmptyBody).Response())
	}

	var body struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, validation.ErrMessageRequired.Error())
	}

	msg, verr := validation.ValidateMessage(body.Message)
	if verr != nil {
		return jsonError(c, fiber.StatusBadRequest, verr.Error())
	}
	message = msg

	ctx := assistant.WithRequestID(c.Context(), requestID)
	answer := h.svc.Answer(ctx, message)

	h.logger.Debug("chat answered",
		"request_id", requestID,
		"source", answer.Source,
		"category", answer.Category,
		"reason", answer.Reason,
	)

	return c.JSON(answer.Response())
}
