package transcribe

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/config"
)

const transcribePrompt = "Please transcribe this audio exactly as it is spoken. Do not add any commentary."

// fileStatus is the provider-independent processing state of an uploaded
// audio asset. The SDK's own state type is mapped onto it so the polling
// loop does not depend on the provider's object shape.
type fileStatus int

const (
	statusPending fileStatus = iota
	statusReady
	statusFailed
)

// Gemini transcribes audio via the Gemini Files API: upload the file, poll
// until the provider has processed it, then ask the model for a verbatim
// transcript referencing the uploaded asset. The remote copy is deleted
// afterwards on a best-effort basis.
type Gemini struct {
	client       *genai.Client
	model        string
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewGemini creates a Gemini transcriber sharing the given client.
func NewGemini(client *genai.Client, model string, cfg config.TranscriberConfig) *Gemini {
	return &Gemini{
		client:       client,
		model:        model,
		pollInterval: cfg.PollInterval,
		pollTimeout:  cfg.PollTimeout,
	}
}

// Name returns the backend identifier.
func (g *Gemini) Name() string { return "gemini" }

// Transcribe uploads the audio, waits for the provider to process it, and
// returns the transcript text.
func (g *Gemini) Transcribe(ctx context.Context, audioPath string) (string, error) {
	var uploadCfg *genai.UploadFileConfig
	if mimeType := mime.TypeByExtension(filepath.Ext(audioPath)); mimeType != "" {
		uploadCfg = &genai.UploadFileConfig{MIMEType: mimeType}
	}

	file, err := g.client.Files.UploadFromPath(ctx, audioPath, uploadCfg)
	if err != nil {
		return "", fmt.Errorf("uploading audio: %w", err)
	}
	// The remote copy is scratch space: drop it on every exit path.
	defer g.release(file.Name)

	slog.Debug("audio uploaded", "file", file.Name, "mime_type", file.MIMEType)

	file, err = g.waitUntilReady(ctx, file)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(transcribePrompt),
		genai.NewPartFromURI(file.URI, file.MIMEType),
	}, genai.RoleUser)}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}

	text := transcriptText(result)
	if text == "" {
		return "", fmt.Errorf("empty transcript from Gemini")
	}

	slog.Info("transcription complete", "backend", "gemini", "text_length", len(text))
	return text, nil
}

// waitUntilReady polls the uploaded file's processing state until it is
// ready, the provider reports failure, or the timeout elapses.
func (g *Gemini) waitUntilReady(ctx context.Context, file *genai.File) (*genai.File, error) {
	deadline := time.Now().Add(g.pollTimeout)

	for {
		switch status(file) {
		case statusReady:
			return file, nil
		case statusFailed:
			return nil, fmt.Errorf("audio processing failed on provider side: %s", file.Name)
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("audio processing timed out after %s", g.pollTimeout)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(g.pollInterval):
		}

		var err error
		file, err = g.client.Files.Get(ctx, file.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("polling file state: %w", err)
		}
	}
}

// status maps the SDK's file state onto the adapter's processing status.
// Anything unrecognized counts as pending and defers to the poll timeout.
func status(file *genai.File) fileStatus {
	switch file.State {
	case genai.FileStateActive:
		return statusReady
	case genai.FileStateFailed:
		return statusFailed
	default:
		return statusPending
	}
}

// release deletes the remote copy of the audio. Best effort: failure is
// logged and never aborts the transcription.
func (g *Gemini) release(name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := g.client.Files.Delete(ctx, name, nil); err != nil {
		slog.Warn("failed to delete remote audio file", "file", name, "error", err)
	}
}

// transcriptText concatenates the text parts of the first candidate.
func transcriptText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String()
}
