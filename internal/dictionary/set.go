// Package dictionary provides implementations of game.Dictionary.
//
// Set keeps words in memory per language; SQLite serves them from a
// sqlite database so large word lists need not be held in memory.
package dictionary

import (
	"strings"
	"sync"
)

// Set is an in-memory, per-language word set.
type Set struct {
	mu    sync.RWMutex
	words map[string]map[string]struct{} // language -> word set
}

// NewSet returns a Set holding words for language.
func NewSet(language string, words []string) *Set {
	s := &Set{words: make(map[string]map[string]struct{})}
	s.Add(language, words)
	return s
}

// Add inserts words for language.
func (s *Set) Add(language string, words []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lang := strings.ToLower(language)
	m, ok := s.words[lang]
	if !ok {
		m = make(map[string]struct{}, len(words))
		s.words[lang] = m
	}
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			m[w] = struct{}{}
		}
	}
}

// IsRecognizedWord reports whether word is known for language.
func (s *Set) IsRecognizedWord(word, language string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.words[strings.ToLower(language)][strings.ToLower(word)]
	return ok
}

// Len returns the number of words held for language.
func (s *Set) Len(language string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words[strings.ToLower(language)])
}
