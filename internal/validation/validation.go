package validation

import (
	"errors"
	"unicode/utf16"
)

// MaxMessageLength is the longest accepted chat message, in UTF-16 code
// units, the unit browsers use for string length.
const MaxMessageLength = 500

// Client-facing validation errors. Their text is returned verbatim.
var (
	ErrMessageRequired = errors.New("Message is required")
	ErrMessageTooLong  = errors.New("Message too long")
)

// ValidateMessage checks a decoded "message" field. It must be a non-empty
// string of at most MaxMessageLength characters.
func ValidateMessage(v any) (string, error) {
	message, ok := v.(string)
	if !ok || message == "" {
		return "", ErrMessageRequired
	}
	if utf16Len(message) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return message, nil
}

// utf16Len counts UTF-16 code units. Characters outside the Basic
// Multilingual Plane, such as most emoji, count as two.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
