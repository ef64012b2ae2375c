// Package pipeline implements the core lecture processing sequence.
//
// A transcript is pushed through three generation stages in a fixed order —
// summarize, then flashcards, then quiz — each stage reading exactly the
// upstream fields of the shared state it declares and writing exactly one
// field of its own. The stages are inherently sequential: flashcards and
// quiz are derived from the summary, not the transcript. A stage failure
// aborts the run and no partial result is returned.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/generate"
	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/lecture"
	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/parse"
)

// Pipeline derives study material from a lecture transcript.
type Pipeline struct {
	generator generate.Generator
}

// New creates a Pipeline using the given generator for every stage.
func New(generator generate.Generator) *Pipeline {
	return &Pipeline{generator: generator}
}

// stage produces one field of the lecture state from upstream fields.
type stage struct {
	name string
	run  func(ctx context.Context, state *lecture.State) error
}

// Run executes the full summarize → flashcards → quiz sequence over the
// transcript and parses the raw stage outputs into a structured result.
func (p *Pipeline) Run(ctx context.Context, transcript string) (*lecture.Result, error) {
	start := time.Now()
	logger := slog.With("transcript_length", len(transcript))

	state := &lecture.State{Transcript: transcript}

	stages := []stage{
		{"summarize", p.summarize},
		{"flashcards", p.flashcards},
		{"quiz", p.quiz},
	}
	for _, s := range stages {
		if err := s.run(ctx, state); err != nil {
			return nil, fmt.Errorf("%s stage: %w", s.name, err)
		}
		logger.Debug("stage complete", "stage", s.name)
	}

	result := &lecture.Result{
		Transcript: state.Transcript,
		Summary:    parse.Summary(state.Summary),
		Flashcards: parse.Flashcards(state.Flashcards),
		Quiz:       parse.Quiz(state.Quiz),
	}

	logger.Info("pipeline complete",
		"duration", time.Since(start),
		"bullets", len(result.Summary),
		"flashcards", len(result.Flashcards),
		"quiz_questions", len(result.Quiz))

	return result, nil
}

func (p *Pipeline) summarize(ctx context.Context, state *lecture.State) error {
	summary, err := p.generator.Generate(ctx, fmt.Sprintf(summaryPrompt, state.Transcript))
	if err != nil {
		return err
	}
	state.Summary = summary
	return nil
}

func (p *Pipeline) flashcards(ctx context.Context, state *lecture.State) error {
	flashcards, err := p.generator.Generate(ctx, fmt.Sprintf(flashcardsPrompt, state.Summary))
	if err != nil {
		return err
	}
	state.Flashcards = flashcards
	return nil
}

func (p *Pipeline) quiz(ctx context.Context, state *lecture.State) error {
	quiz, err := p.generator.Generate(ctx, fmt.Sprintf(quizPrompt, state.Summary))
	if err != nil {
		return err
	}
	state.Quiz = quiz
	return nil
}

// Answer responds to a free-form question grounded in the given transcript.
// It bypasses the staged pipeline entirely: one generation call with a
// grounding prompt, and the raw model output is returned uninterpreted.
func (p *Pipeline) Answer(ctx context.Context, transcript, question string) (string, error) {
	answer, err := p.generator.Generate(ctx, fmt.Sprintf(chatPrompt, transcript, question))
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return answer, nil
}
