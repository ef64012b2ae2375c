// Package server implements the HTTP interface of the lecturenotes service.
//
// It exposes two endpoints: POST /process_lecture, which accepts an audio
// upload and returns the derived study material, and POST /chat, which
// answers a free-form question grounded in a transcript. The service is
// consumed by a browser frontend, so all responses carry permissive CORS
// headers.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/Aravindhan-loganathan/lecture-to-voice-notes/docs"
	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/config"
	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/generate"
	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/pipeline"
	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/transcribe"
)

// maxUploadBytes caps the in-memory portion of a multipart upload.
const maxUploadBytes = 25 << 20 // 25 MB

const (
	quotaExceededDetail = "AI Quota Exceeded. The free tier limit has been reached. Please wait a minute and try again."
	chatQuotaApology    = "I'm sorry, I've reached my AI limit for the moment. Please wait about 30 seconds before asking another question!"
)

// Server is the HTTP front of the processing pipeline.
type Server struct {
	port        int
	uploadDir   string
	transcriber transcribe.Transcriber
	pipeline    *pipeline.Pipeline
	server      *http.Server
}

// New creates a Server from config and its two collaborators.
func New(cfg config.ServerConfig, transcriber transcribe.Transcriber, p *pipeline.Pipeline) *Server {
	return &Server{
		port:        cfg.Port,
		uploadDir:   cfg.UploadDir,
		transcriber: transcriber,
		pipeline:    p,
	}
}

// Handler builds the route table. Exposed separately from ListenAndServe so
// tests can drive the full request path without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /process_lecture", s.handleProcessLecture)
	mux.HandleFunc("POST /chat", s.handleChat)

	// Swagger UI — serves the generated OpenAPI docs.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return withCORS(mux)
}

// ListenAndServe starts the HTTP server. It blocks until the context is
// cancelled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("http server listening", "port", s.port)

	go func() {
		<-ctx.Done()
		slog.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

// Close gracefully shuts down the HTTP server.
func (s *Server) Close() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// handleProcessLecture runs the full audio → study-material pipeline.
//
// @Summary     Process a lecture recording
// @Description Accepts an audio file, transcribes it, and derives a bullet-point summary,
// @Description flashcards, and a multiple-choice quiz — all in the lecture's own language.
// @Tags        lecture
// @Accept      mpfd
// @Produce     json
// @Param       file  formData  file  true  "Audio recording of the lecture"
// @Success     200  {object}  lecture.Result  "Transcript and derived study material"
// @Failure     400  {object}  errorResponse   "Upload is not an audio file"
// @Failure     429  {object}  errorResponse   "AI provider quota exhausted"
// @Failure     500  {object}  errorResponse   "Transcription or generation failure"
// @Router      /process_lecture [post]
func (s *Server) handleProcessLecture(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid upload: "+err.Error())
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		writeError(w, http.StatusBadRequest, "File must be an audio file")
		return
	}

	audioPath, err := s.stageUpload(file, header.Filename)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// The staged copy goes away on every exit path, success or failure.
	defer func() {
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove staged audio", "path", audioPath, "error", err)
		}
	}()

	logger := slog.With("file", header.Filename, "content_type", contentType)
	logger.Info("processing lecture", "bytes", header.Size, "transcriber", s.transcriber.Name())

	transcript, err := s.transcriber.Transcribe(r.Context(), audioPath)
	if err != nil {
		logger.Error("transcription failed", "error", err)
		writeProcessingError(w, err)
		return
	}

	result, err := s.pipeline.Run(r.Context(), transcript)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		writeProcessingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// stageUpload copies the uploaded audio into the scratch directory under a
// fresh unique name, preserving the original file extension.
func (s *Server) stageUpload(file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(s.uploadDir, uuid.NewString()+filepath.Ext(filename))

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create staged file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write staged file: %w", err)
	}

	return path, nil
}

// chatRequest is the body of POST /chat.
type chatRequest struct {
	Transcript string `json:"transcript"`
	Question   string `json:"question"`
}

// chatResponse is the body returned by POST /chat.
type chatResponse struct {
	Response string `json:"response"`
}

// errorResponse is the error body shape shared by all endpoints.
type errorResponse struct {
	Detail string `json:"detail"`
}

// handleChat answers a question about a previously obtained transcript.
//
// @Summary     Ask a question about a lecture
// @Description Answers a free-form question using only the supplied transcript, in the
// @Description transcript's own language. When the provider quota is exhausted the reply
// @Description is still a 200 with an apologetic message, so chat clients can render it
// @Description as a normal conversational turn.
// @Tags        lecture
// @Accept      json
// @Produce     json
// @Param       request  body      chatRequest  true  "Transcript and question"
// @Success     200  {object}  chatResponse
// @Failure     400  {object}  errorResponse  "Malformed request body"
// @Failure     500  {object}  errorResponse  "Generation failure"
// @Router      /chat [post]
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	answer, err := s.pipeline.Answer(r.Context(), req.Transcript, req.Question)
	if err != nil {
		// Quota exhaustion is a soft failure here: the chat client expects
		// a conversational reply, so apologize instead of erroring.
		if generate.IsQuotaExhausted(err) {
			writeJSON(w, http.StatusOK, chatResponse{Response: chatQuotaApology})
			return
		}
		slog.Error("chat failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: answer})
}

// writeProcessingError maps adapter and pipeline failures onto HTTP statuses.
// Quota exhaustion gets its own status and message; everything else is a 500
// with the error text echoed back.
func writeProcessingError(w http.ResponseWriter, err error) {
	if generate.IsQuotaExhausted(err) {
		writeError(w, http.StatusTooManyRequests, quotaExceededDetail)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// withCORS allows browser clients from any origin and short-circuits
// preflight requests before they reach the method-matched routes.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
