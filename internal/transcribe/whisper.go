package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/config"
)

const defaultTranscriptionURL = "https://api.openai.com/v1/audio/transcriptions"

// Whisper transcribes audio with one synchronous call to the OpenAI
// transcription API: the audio content is submitted inline and the text
// result returned directly. No polling, no remote asset lifecycle.
type Whisper struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewWhisper creates a Whisper transcriber from config.
func NewWhisper(cfg config.OpenAIConfig) *Whisper {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultTranscriptionURL
	}
	model := cfg.TranscriptionModel
	if model == "" {
		model = "whisper-1"
	}
	return &Whisper{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

// Name returns the backend identifier.
func (w *Whisper) Name() string { return "whisper" }

// Transcribe sends the audio file to the transcription endpoint.
func (w *Whisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	audio, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("opening audio: %w", err)
	}
	defer audio.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("writing audio: %w", err)
	}
	_ = writer.WriteField("model", w.model)
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+w.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("transcription failed (status %d): %s", resp.StatusCode, respBody)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding transcription: %w", err)
	}

	return result.Text, nil
}
