// Package lecture defines the core data types flowing through the processing pipeline.
package lecture

// State is the shared record threaded through the pipeline stages.
//
// Each stage reads fields populated by earlier stages and writes exactly
// one field of its own: summarize reads Transcript and writes Summary,
// flashcards and quiz both read Summary and write their own field. All
// fields hold raw model output; parsing into structured records happens
// once the last stage has run. A State lives for a single request and is
// never persisted.
type State struct {
	// Transcript is the verbatim text of the lecture audio.
	Transcript string

	// Summary is the raw bullet-point summary produced by the summarize stage.
	Summary string

	// Flashcards is the raw Q/A text produced by the flashcards stage.
	Flashcards string

	// Quiz is the raw multiple-choice text produced by the quiz stage.
	Quiz string
}

// Flashcard is a single question/answer study card.
type Flashcard struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// QuizQuestion is a single multiple-choice question with four options.
// Answer is the 0-based index of the correct option.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// Result is the structured outcome of processing one lecture recording.
// It is the JSON body returned to the caller.
type Result struct {
	// Transcript is the full transcript text.
	Transcript string `json:"transcript"`

	// Summary is the ordered list of bullet points, in the lecture's own language.
	Summary []string `json:"summary"`

	// Flashcards holds up to 5 study cards in generation order.
	Flashcards []Flashcard `json:"flashcards"`

	// Quiz holds up to 5 multiple-choice questions in generation order.
	Quiz []QuizQuestion `json:"quiz"`
}
