// Package assistant decides how a validated chat message is answered:
// through the AI upstream when one is configured and healthy, otherwise
// through the local fallback classifier.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"helphood/internal/fallback"
	"helphood/internal/gemini"
	"helphood/internal/metrics"
	"helphood/internal/models"
)

// DefaultTimeout is the hard deadline for one upstream call.
const DefaultTimeout = 10 * time.Second

// Reason explains why a fallback answer was served.
type Reason string

const (
	ReasonNone           Reason = ""
	ReasonUnconfigured   Reason = "unconfigured"
	ReasonTimeout        Reason = "timeout"
	ReasonUpstreamStatus Reason = "upstream_status"
	ReasonMalformed      Reason = "malformed_response"
	ReasonNetwork        Reason = "network"
	ReasonCanceled       Reason = "canceled"
	ReasonPanic          Reason = "panic"
	ReasonEmptyBody      Reason = "empty_body"
)

// Generator produces an answer for a full prompt. *gemini.Client implements it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Answer is the outcome of one chat request.
type Answer struct {
	Text     string
	Source   string
	Category string
	Reason   Reason
}

// Response converts the answer to its wire shape.
func (a Answer) Response() models.ChatResponse {
	return models.ChatResponse{Response: a.Text, Source: a.Source}
}

// Options tune a Service. Zero values select the defaults.
type Options struct {
	SystemPrompt string
	Timeout      time.Duration
	Logger       *slog.Logger
}

// Service answers chat messages. It is safe for concurrent use as long as
// the Generator and Classifier are.
type Service struct {
	gen        Generator
	classifier *fallback.Classifier
	prompt     string
	timeout    time.Duration
	logger     *slog.Logger
}

// New creates a Service. A nil gen means no upstream credential is
// configured and every message is answered locally.
func New(gen Generator, classifier *fallback.Classifier, opts Options) *Service {
	if classifier == nil {
		classifier = fallback.New(nil)
	}
	if opts.SystemPrompt == "" {
		opts.SystemPrompt = DefaultSystemPrompt
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{
		gen:        gen,
		classifier: classifier,
		prompt:     opts.SystemPrompt,
		timeout:    opts.Timeout,
		logger:     opts.Logger.With("component", "assistant"),
	}
}

// AIConfigured reports whether messages are sent upstream.
func (s *Service) AIConfigured() bool {
	return s.gen != nil
}

// Answer returns the upstream answer, or a fallback answer on any upstream
// problem. It never fails and returns no later than the configured timeout
// plus local processing.
func (s *Service) Answer(ctx context.Context, message string) Answer {
	logger := s.logger.With("request_id", RequestID(ctx))

	if s.gen == nil {
		logger.Info("no API key configured, using fallback response")
		return s.Fallback(message, ReasonUnconfigured)
	}

	start := time.Now()
	text, err := s.generate(ctx, message)
	reason := reasonFor(err)
	metrics.ObserveUpstream(outcomeLabel(reason), time.Since(start))

	if err != nil {
		logger.Error("gemini call failed, using fallback response", "reason", reason, "error", err)
		return s.Fallback(message, reason)
	}

	category := fallback.Classify(message).Name
	metrics.RecordAnswer(category, models.SourceAI)
	return Answer{
		Text:     text,
		Source:   models.SourceAI,
		Category: category,
	}
}

// Fallback answers message locally and records why.
func (s *Service) Fallback(message string, reason Reason) Answer {
	category, text := s.classifier.Respond(message)
	metrics.RecordAnswer(category, models.SourceFallback)
	if reason != ReasonNone {
		metrics.RecordFallbackReason(string(reason))
	}
	return Answer{
		Text:     text,
		Source:   models.SourceFallback,
		Category: category,
		Reason:   reason,
	}
}

type generateResult struct {
	text string
	err  error
}

// generate runs one upstream call under the deadline. The result channel
// is buffered so the worker goroutine can always finish and exit, even
// after the deadline has already been reported.
func (s *Service) generate(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan generateResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- generateResult{err: fmt.Errorf("%w: %v", errGeneratorPanic, r)}
			}
		}()
		text, err := s.gen.Generate(ctx, BuildPrompt(s.prompt, message))
		if err == nil && text == "" {
			err = gemini.ErrMalformedResponse
		}
		done <- generateResult{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", gemini.ErrTimeout, ctx.Err())
		}
		return "", ctx.Err()
	}
}

var errGeneratorPanic = errors.New("generator panicked")

func reasonFor(err error) Reason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, gemini.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	case errors.Is(err, gemini.ErrUpstreamStatus):
		return ReasonUpstreamStatus
	case errors.Is(err, gemini.ErrMalformedResponse):
		return ReasonMalformed
	case errors.Is(err, errGeneratorPanic):
		return ReasonPanic
	default:
		return ReasonNetwork
	}
}

func outcomeLabel(r Reason) string {
	if r == ReasonNone {
		return "ok"
	}
	return string(r)
}
