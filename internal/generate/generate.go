// Package generate defines the interface for the text-generation adapter.
//
// A generator is a stateless prompt-in/text-out boundary around an external
// LLM. It performs no retries and no streaming; one call is one request
// against a model identifier fixed for the process lifetime.
package generate

import (
	"context"
	"strings"
)

// Generator is the interface for single-shot text generation.
type Generator interface {
	// Name returns the backend identifier (e.g., "gemini").
	Name() string

	// Generate sends the prompt and returns the raw response text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// IsQuotaExhausted reports whether err represents a provider rate/usage
// limit. Providers surface this only in the error text, so detection is by
// substring: Gemini reports RESOURCE_EXHAUSTED, HTTP-level limits report 429.
func IsQuotaExhausted(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota")
}
