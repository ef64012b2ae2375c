package transcribe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/config"
)

func stageAudio(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWhisperTranscribe(t *testing.T) {
	var gotAuth, gotModel, gotFilename string
	var gotAudio []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart form: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotModel = r.FormValue("model")

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("reading file part: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		gotAudio, _ = io.ReadAll(file)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "Hello world. This is a test."}`))
	}))
	defer ts.Close()

	w := NewWhisper(config.OpenAIConfig{APIKey: "sk-test", Endpoint: ts.URL})

	audioPath := stageAudio(t, "lecture.mp3", []byte("fake mp3 bytes"))
	text, err := w.Transcribe(context.Background(), audioPath)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if text != "Hello world. This is a test." {
		t.Errorf("transcript = %q", text)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotModel != "whisper-1" {
		t.Errorf("model field = %q, want default whisper-1", gotModel)
	}
	if gotFilename != "lecture.mp3" {
		t.Errorf("uploaded filename = %q", gotFilename)
	}
	if string(gotAudio) != "fake mp3 bytes" {
		t.Errorf("uploaded audio = %q", gotAudio)
	}
}

func TestWhisperTranscribeModelOverride(t *testing.T) {
	var gotModel string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseMultipartForm(1 << 20)
		gotModel = r.FormValue("model")
		_, _ = w.Write([]byte(`{"text": "ok"}`))
	}))
	defer ts.Close()

	w := NewWhisper(config.OpenAIConfig{
		APIKey:             "sk-test",
		TranscriptionModel: "gpt-4o-transcribe",
		Endpoint:           ts.URL,
	})

	if _, err := w.Transcribe(context.Background(), stageAudio(t, "a.wav", []byte("x"))); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if gotModel != "gpt-4o-transcribe" {
		t.Errorf("model field = %q", gotModel)
	}
}

func TestWhisperTranscribeProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "insufficient_quota"}}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	w := NewWhisper(config.OpenAIConfig{APIKey: "sk-test", Endpoint: ts.URL})

	_, err := w.Transcribe(context.Background(), stageAudio(t, "a.mp3", []byte("x")))
	if err == nil {
		t.Fatal("Transcribe() succeeded, want provider error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error %q does not carry the provider status", err)
	}
}

func TestWhisperTranscribeMissingFile(t *testing.T) {
	w := NewWhisper(config.OpenAIConfig{APIKey: "sk-test"})

	_, err := w.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	if err == nil {
		t.Fatal("Transcribe() succeeded on a missing file")
	}
}
