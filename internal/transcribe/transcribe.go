// Package transcribe defines the interface for speech-to-text adapters.
//
// A transcriber converts a locally staged audio file into a verbatim
// transcript. Two backends ship with the service: Gemini (remote upload
// with state polling) and Whisper (direct synchronous call). They are
// interchangeable from the orchestrator's point of view; the backend is
// selected once at startup from configuration.
package transcribe

import "context"

// Transcriber converts an audio file into plain transcript text.
type Transcriber interface {
	// Name returns the backend identifier (e.g., "gemini", "whisper").
	Name() string

	// Transcribe reads the audio file at audioPath and returns its
	// best-effort verbatim transcript, with no added commentary.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
