package transcribe

import (
	"testing"

	"google.golang.org/genai"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name  string
		state genai.FileState
		want  fileStatus
	}{
		{"active maps to ready", genai.FileStateActive, statusReady},
		{"failed maps to failed", genai.FileStateFailed, statusFailed},
		{"processing maps to pending", genai.FileStateProcessing, statusPending},
		{"unspecified maps to pending", genai.FileStateUnspecified, statusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &genai.File{Name: "files/test", State: tt.state}
			if got := status(file); got != tt.want {
				t.Errorf("status(%v) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}
