// Lecturenotes is an HTTP service that turns a lecture recording into study
// material: it transcribes the audio, then derives a bullet-point summary,
// flashcards, and a multiple-choice quiz in the lecture's own language.
//
// Usage:
//
//	lecturenotes [flags]
//	lecturenotes --config /path/to/lecturenotes.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/genai"

	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/config"
	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/generate"
	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/health"
	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/pipeline"
	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/server"
	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/transcribe"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/lecturenotes.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("lecturenotes %s\n", version)
		os.Exit(0)
	}

	// Load configuration. Missing credentials fail here, before anything listens.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("lecturenotes starting", "version", version)

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// One Gemini client serves both generation and (optionally) transcription.
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		slog.Error("failed to create Gemini client", "error", err)
		os.Exit(1)
	}

	generator := generate.NewGemini(client, cfg.Gemini.Model)
	slog.Info("using Gemini generator", "model", cfg.Gemini.Model)

	// Select the transcription backend.
	var transcriber transcribe.Transcriber
	switch cfg.Transcriber.Backend {
	case "gemini":
		transcriber = transcribe.NewGemini(client, cfg.Gemini.Model, cfg.Transcriber)
		slog.Info("using Gemini transcriber",
			"poll_interval", cfg.Transcriber.PollInterval,
			"poll_timeout", cfg.Transcriber.PollTimeout)
	case "whisper":
		transcriber = transcribe.NewWhisper(cfg.OpenAI)
		slog.Info("using Whisper transcriber", "model", cfg.OpenAI.TranscriptionModel)
	default:
		slog.Error("unknown transcriber backend", "backend", cfg.Transcriber.Backend)
		os.Exit(1)
	}

	srv := server.New(cfg.Server, transcriber, pipeline.New(generator))

	// Start health check server.
	healthServer := health.New(cfg.Server.HealthPort)
	go func() {
		if err := healthServer.ListenAndServe(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(ctx)
	}()

	healthServer.SetReady(true)
	slog.Info("lecturenotes ready",
		"port", cfg.Server.Port,
		"health_port", cfg.Server.HealthPort,
		"transcriber", transcriber.Name())

	// Block until shutdown signal or listener failure.
	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining...")
	case err := <-errCh:
		if err != nil {
			slog.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}

	if err := srv.Close(); err != nil {
		slog.Error("server close error", "error", err)
	}

	slog.Info("lecturenotes stopped")
}
