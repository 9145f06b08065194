package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"helphood/internal/fallback"
	"helphood/internal/gemini"
	"helphood/internal/models"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(gen Generator, timeout time.Duration) *Service {
	return New(gen, fallback.New(nil), Options{Timeout: timeout, Logger: quietLogger()})
}

func TestAnswer_NoKeyUsesFallback(t *testing.T) {
	svc := newService(nil, 0)

	if svc.AIConfigured() {
		t.Fatal("AIConfigured() = true without a generator")
	}

	got := svc.Answer(context.Background(), "how do I organize an event?")
	if got.Source != models.SourceFallback {
		t.Errorf("source = %s, want fallback", got.Source)
	}
	if got.Reason != ReasonUnconfigured {
		t.Errorf("reason = %s, want %s", got.Reason, ReasonUnconfigured)
	}
	if got.Text == "" {
		t.Error("empty response")
	}
}

func TestAnswer_Success(t *testing.T) {
	var prompt string
	gen := generatorFunc(func(ctx context.Context, p string) (string, error) {
		prompt = p
		return "Try the events tab!", nil
	})
	svc := newService(gen, time.Second)

	got := svc.Answer(context.Background(), "where are the events?")
	if got.Source != models.SourceAI {
		t.Fatalf("source = %s, want ai", got.Source)
	}
	if got.Text != "Try the events tab!" {
		t.Errorf("text = %q", got.Text)
	}
	if got.Category != fallback.CategoryEvents {
		t.Errorf("category = %s, want events", got.Category)
	}
	if !strings.HasPrefix(prompt, DefaultSystemPrompt) {
		t.Error("prompt does not start with the system instruction")
	}
	if !strings.HasSuffix(prompt, "\n\nUser question: where are the events?") {
		t.Errorf("prompt does not end with the user question: %q", prompt[len(prompt)-60:])
	}

	resp := got.Response()
	if resp.Response != got.Text || resp.Source != models.SourceAI {
		t.Errorf("Response() = %+v", resp)
	}
}

func TestAnswer_UpstreamErrorsUseFallback(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		text   string
		reason Reason
	}{
		{"status", fmt.Errorf("%w: status=500", gemini.ErrUpstreamStatus), "", ReasonUpstreamStatus},
		{"malformed", gemini.ErrMalformedResponse, "", ReasonMalformed},
		{"network", fmt.Errorf("%w: connection refused", gemini.ErrUnavailable), "", ReasonNetwork},
		{"timeout from client", fmt.Errorf("%w: deadline", gemini.ErrTimeout), "", ReasonTimeout},
		{"empty text", nil, "", ReasonMalformed},
		{"unknown error", errors.New("boom"), "", ReasonNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := generatorFunc(func(ctx context.Context, p string) (string, error) {
				return tt.text, tt.err
			})
			svc := newService(gen, time.Second)

			got := svc.Answer(context.Background(), "xyz123")
			if got.Source != models.SourceFallback {
				t.Fatalf("source = %s, want fallback", got.Source)
			}
			if got.Reason != tt.reason {
				t.Errorf("reason = %s, want %s", got.Reason, tt.reason)
			}
			if got.Category != fallback.CategoryDefault {
				t.Errorf("category = %s, want default", got.Category)
			}
			if got.Text == "" {
				t.Error("empty response")
			}
		})
	}
}

func TestAnswer_TimeoutCancelsCall(t *testing.T) {
	var cancelled atomic.Bool
	gen := generatorFunc(func(ctx context.Context, p string) (string, error) {
		<-ctx.Done()
		cancelled.Store(true)
		return "", ctx.Err()
	})
	svc := newService(gen, 50*time.Millisecond)

	start := time.Now()
	got := svc.Answer(context.Background(), "hello")
	elapsed := time.Since(start)

	if got.Source != models.SourceFallback || got.Reason != ReasonTimeout {
		t.Fatalf("got source=%s reason=%s, want fallback/timeout", got.Source, got.Reason)
	}
	if elapsed > time.Second {
		t.Errorf("Answer returned after %v, want close to 50ms", elapsed)
	}

	deadline := time.Now().Add(time.Second)
	for !cancelled.Load() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if !cancelled.Load() {
		t.Error("upstream call was not cancelled")
	}
}

func TestAnswer_GeneratorIgnoringContextStillBounded(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	gen := generatorFunc(func(ctx context.Context, p string) (string, error) {
		<-release
		return "too late", nil
	})
	svc := newService(gen, 30*time.Millisecond)

	start := time.Now()
	got := svc.Answer(context.Background(), "hello")
	if got.Source != models.SourceFallback {
		t.Errorf("source = %s, want fallback", got.Source)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Answer returned after %v", elapsed)
	}
}

func TestAnswer_CallerCancelled(t *testing.T) {
	gen := generatorFunc(func(ctx context.Context, p string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	svc := newService(gen, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := svc.Answer(ctx, "hello")
	if got.Source != models.SourceFallback || got.Reason != ReasonCanceled {
		t.Errorf("got source=%s reason=%s, want fallback/canceled", got.Source, got.Reason)
	}
}

func TestAnswer_GeneratorPanic(t *testing.T) {
	gen := generatorFunc(func(ctx context.Context, p string) (string, error) {
		panic("unexpected")
	})
	svc := newService(gen, time.Second)

	got := svc.Answer(context.Background(), "sell my bike")
	if got.Source != models.SourceFallback || got.Reason != ReasonPanic {
		t.Fatalf("got source=%s reason=%s, want fallback/panic", got.Source, got.Reason)
	}
	if got.Category != fallback.CategoryMarketplace {
		t.Errorf("category = %s, want marketplace", got.Category)
	}
}

func TestFallback_EmptyMessage(t *testing.T) {
	svc := newService(nil, 0)

	got := svc.Fallback("", ReasonPanic)
	if got.Category != fallback.CategoryDefault {
		t.Errorf("category = %s, want default", got.Category)
	}

	var defaults []string
	for _, b := range fallback.Buckets() {
		if b.Name == fallback.CategoryDefault {
			defaults = b.Responses
		}
	}
	if !slices.Contains(defaults, got.Text) {
		t.Errorf("response not from the default bucket: %q", got.Text)
	}
}

func TestNew_Defaults(t *testing.T) {
	svc := New(nil, nil, Options{})
	if svc.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", svc.timeout, DefaultTimeout)
	}
	if svc.prompt != DefaultSystemPrompt {
		t.Error("expected the default system prompt")
	}
	if svc.classifier == nil || svc.logger == nil {
		t.Error("expected default classifier and logger")
	}
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	if got := RequestID(ctx); got != "abc" {
		t.Errorf("RequestID() = %q, want abc", got)
	}
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() = %q, want empty", got)
	}
}
