// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - Session: state for a single round (root word, accepted words, score).
//   - ErrorKind: the reason a submitted word was rejected.
//   - WordError: a rejection carrying its display title and message.
//   - Result: the outcome of one submission.

package game

import (
	"errors"
	"fmt"
)

// Session holds the state of a single round.
// UsedWords is ordered newest-first and never contains duplicates.
type Session struct {
	ID        string   // Unique session identifier (random hex string).
	RootWord  string   // Lowercase word every candidate is built from.
	UsedWords []string // Accepted words, most recent first.
	Score     int      // Sum of the lengths of all accepted words.
	Date      string   // YYYY-MM-DD for daily rounds; empty for random ones.
}

// ErrNoStartWords is returned when a round cannot begin because the
// candidate root word list is empty.
var ErrNoStartWords = errors.New("game: no start words available")

// ErrorKind identifies which rule rejected a candidate.
type ErrorKind int

const (
	_ ErrorKind = iota
	// DuplicateWord: the word was already accepted this round.
	DuplicateWord
	// InfeasibleWord: the word cannot be spelled from the root word's letters.
	InfeasibleWord
	// TooShort: the word has three letters or fewer.
	TooShort
	// TrivialPrefix: the word equals the root word's prefix of the same length.
	TrivialPrefix
	// UnrecognizedWord: the dictionary does not know the word.
	UnrecognizedWord
)

// String returns a stable identifier for the kind, used on the wire.
func (k ErrorKind) String() string {
	switch k {
	case DuplicateWord:
		return "duplicate_word"
	case InfeasibleWord:
		return "infeasible_word"
	case TooShort:
		return "too_short"
	case TrivialPrefix:
		return "trivial_prefix"
	case UnrecognizedWord:
		return "unrecognized_word"
	}
	return "unknown"
}

// Error lets an ErrorKind be used as an errors.Is target.
func (k ErrorKind) Error() string { return "word rejected: " + k.String() }

// WordError is a user input rejection. It is never fatal: callers display
// Title and Message and discard it.
type WordError struct {
	Kind    ErrorKind
	Word    string
	Title   string
	Message string
}

func (e *WordError) Error() string {
	return fmt.Sprintf("%s: %q: %s", e.Kind, e.Word, e.Title)
}

// Unwrap exposes the kind so errors.Is(err, game.DuplicateWord) works.
func (e *WordError) Unwrap() error { return e.Kind }

// newWordError builds the rejection for kind with its display texts.
func newWordError(kind ErrorKind, word, root string) *WordError {
	e := &WordError{Kind: kind, Word: word}
	switch kind {
	case DuplicateWord:
		e.Title, e.Message = "Word used already", "Be more original"
	case InfeasibleWord:
		e.Title, e.Message = "Word not possible", fmt.Sprintf("You can't spell that word from '%s'!", root)
	case TooShort:
		e.Title, e.Message = "Word is smaller than 3 letters", "Time to expand your vocabulary"
	case TrivialPrefix:
		e.Title, e.Message = "Word chosen uses start letters from root", "Use something that does not start with first three words"
	case UnrecognizedWord:
		e.Title, e.Message = "Word not recognized", "You can't just make them up, you know!"
	}
	return e
}

// Status is the coarse outcome of a submission.
type Status string

const (
	StatusIgnored  Status = "ignored"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Result is the outcome of Validator.Evaluate.
// Err is set only when Status is StatusRejected.
type Result struct {
	Status Status
	Word   string // normalized candidate
	Err    *WordError
}
