// internal/game/session.go
//
// Session lifecycle: a round starts from a root word list (NewRound),
// accumulates accepted words (RecordAcceptance) and can be cleared (Reset).
// Sessions are plain values; every operation returns the updated copy and
// never mutates the slices of the receiver.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"
	"unicode/utf8"
)

// randIndex returns a uniform index in [0, n). Replaced in tests.
var randIndex = func(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// NewRound starts a session with a root word drawn uniformly at random
// from wordList. Blank entries are skipped; if none remain the error is
// ErrNoStartWords.
func NewRound(wordList []string) (Session, error) {
	candidates := usable(wordList)
	if len(candidates) == 0 {
		return Session{}, ErrNoStartWords
	}
	return newSession(candidates[randIndex(len(candidates))]), nil
}

// NewRoundAt starts a session with wordList[idx(len)] as root, for
// deterministic selection such as the daily round. idx receives the number
// of usable entries and must return an index below it.
func NewRoundAt(wordList []string, idx func(n int) int) (Session, error) {
	candidates := usable(wordList)
	if len(candidates) == 0 {
		return Session{}, ErrNoStartWords
	}
	i := idx(len(candidates))
	if i < 0 || i >= len(candidates) {
		i = 0
	}
	return newSession(candidates[i]), nil
}

func newSession(root string) Session {
	return Session{
		ID:        randomID(),
		RootWord:  root,
		UsedWords: []string{},
	}
}

// usable normalizes wordList and drops blank entries.
func usable(wordList []string) []string {
	out := make([]string, 0, len(wordList))
	for _, w := range wordList {
		if w = Normalize(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Reset clears accepted words and score. An empty root keeps the current
// root word; otherwise it replaces it.
func (s Session) Reset(root string) Session {
	if root = Normalize(root); root != "" {
		s.RootWord = root
	}
	s.UsedWords = []string{}
	s.Score = 0
	return s
}

// RecordAcceptance prepends word and adds its length to the score.
// No validation is performed; callers run the Validator first.
func (s Session) RecordAcceptance(word string) Session {
	used := make([]string, 0, len(s.UsedWords)+1)
	used = append(used, word)
	used = append(used, s.UsedWords...)
	s.UsedWords = used
	s.Score += utf8.RuneCountInString(word)
	return s
}

// DisplayScore is the number shown to the player: accepted word count plus
// letter score, two counters summed exactly as the original game showed them.
func (s Session) DisplayScore() int {
	return len(s.UsedWords) + s.Score
}

// Contains reports whether word was already accepted.
func (s Session) Contains(word string) bool {
	for _, w := range s.UsedWords {
		if w == word {
			return true
		}
	}
	return false
}

// Normalize trims surrounding whitespace and lowercases raw input.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
