// Package fallback answers platform questions locally when the AI upstream
// is not available. It maps free text to a topic bucket by keyword and
// returns one of that bucket's canned responses.
package fallback

import (
	"math/rand/v2"
	"strings"
)

// RandSource picks an index in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Classifier selects fallback answers. The zero value is not usable; call New.
type Classifier struct {
	rnd RandSource
}

// New creates a classifier. A nil source uses the process-wide generator,
// which is safe for concurrent use. Callers passing their own source are
// responsible for its synchronization.
func New(rnd RandSource) *Classifier {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Classifier{rnd: rnd}
}

// Classify returns the first bucket with a keyword contained in message,
// ignoring case, or the default bucket.
func Classify(message string) Bucket {
	lower := strings.ToLower(message)
	for _, b := range buckets {
		if containsAny(lower, b.Keywords) {
			return b
		}
	}
	return defaultBucket
}

// Respond classifies message and picks one of the bucket's responses.
// It returns the bucket name alongside the text.
func (c *Classifier) Respond(message string) (string, string) {
	b := Classify(message)
	return b.Name, b.Responses[c.rnd.IntN(len(b.Responses))]
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
