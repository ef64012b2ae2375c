// Package parse extracts structured records from loosely formatted model output.
//
// The generation prompts mandate exact output formats, but models drift.
// Each parser is a best-effort extractor: well-formed items are kept,
// malformed ones are dropped silently rather than failing the request.
// Five well-formed quiz questions are more useful than an error on one
// bad block.
package parse

import (
	"log/slog"
	"strings"

	"github.com/Aravindhan-loganathan/lecture-to-voice-notes/internal/lecture"
)

// Summary splits bullet-formatted text into individual bullet strings.
// Blank lines are discarded and leading "-" markers stripped. The result
// is never nil; blank input yields an empty slice.
func Summary(text string) []string {
	bullets := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, strings.TrimSpace(strings.TrimLeft(line, "- ")))
	}
	return bullets
}

// Flashcards scans Q/A-formatted text for question/answer pairs.
//
// A line starting with "Q" (case-insensitive) opens a pending question; a
// later line starting with "A" closes it into a card. An "A" line with no
// pending question is dropped, and a trailing unanswered question yields
// no card.
func Flashcards(text string) []lecture.Flashcard {
	cards := []lecture.Flashcard{}
	var pending string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "Q"):
			pending = afterLabel(line)
		case strings.HasPrefix(upper, "A") && pending != "":
			cards = append(cards, lecture.Flashcard{Question: pending, Answer: afterLabel(line)})
			pending = ""
		}
	}

	return cards
}

// afterLabel returns the text after the first ':', or after the "Q1"-sized
// label when the colon is missing.
func afterLabel(line string) string {
	if _, rest, ok := strings.Cut(line, ":"); ok {
		return strings.TrimSpace(rest)
	}
	if len(line) > 3 {
		return strings.TrimSpace(line[3:])
	}
	return ""
}

// Quiz splits MCQ-formatted text into blocks on blank lines and extracts a
// question from each. A block needs at least six non-blank lines (question,
// four options, answer); anything malformed is skipped and logged, leaving
// the remaining blocks unaffected.
func Quiz(text string) []lecture.QuizQuestion {
	questions := []lecture.QuizQuestion{}
	for _, block := range strings.Split(strings.TrimSpace(text), "\n\n") {
		question, ok := quizBlock(block)
		if !ok {
			if strings.TrimSpace(block) != "" {
				slog.Debug("skipping malformed quiz block", "block_length", len(block))
			}
			continue
		}
		questions = append(questions, question)
	}
	return questions
}

func quizBlock(block string) (lecture.QuizQuestion, bool) {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 6 {
		return lecture.QuizQuestion{}, false
	}

	options := make([]string, 0, 4)
	for _, line := range lines[1:5] {
		options = append(options, afterDot(line))
	}

	answer, ok := answerIndex(lines[5])
	if !ok {
		return lecture.QuizQuestion{}, false
	}

	return lecture.QuizQuestion{
		Question: afterDot(lines[0]),
		Options:  options,
		Answer:   answer,
	}, true
}

// afterDot returns the text after the line's first '.', so "Q1. text" and
// "1. text" both yield "text". Lines without a dot pass through unchanged.
func afterDot(line string) string {
	if _, rest, ok := strings.Cut(line, "."); ok {
		return strings.TrimSpace(rest)
	}
	return line
}

// answerIndex maps an "Answer: C" line to a 0-based option index. Without a
// colon the line's last character is taken as the letter. Anything outside
// A–D is malformed.
func answerIndex(line string) (int, bool) {
	var letter string
	if _, rest, ok := strings.Cut(line, ":"); ok {
		letter = strings.TrimSpace(rest)
	} else if line != "" {
		letter = line[len(line)-1:]
	}

	letter = strings.ToUpper(letter)
	if len(letter) != 1 {
		return 0, false
	}

	index := int(letter[0] - 'A')
	if index < 0 || index > 3 {
		return 0, false
	}
	return index, true
}
