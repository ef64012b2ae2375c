package generate

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsQuotaExhausted(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"gemini resource exhausted", errors.New("rpc error: code = ResourceExhausted desc = RESOURCE_EXHAUSTED"), true},
		{"http 429", errors.New("googleapi: Error 429: rate limit"), true},
		{"quota wording", errors.New("quota exceeded for project"), true},
		{"wrapped quota error", fmt.Errorf("summarize stage: %w", errors.New("RESOURCE_EXHAUSTED")), true},
		{"unrelated failure", errors.New("connection reset by peer"), false},
		{"timeout", errors.New("context deadline exceeded"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsQuotaExhausted(tt.err); got != tt.want {
				t.Errorf("IsQuotaExhausted(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
