// internal/game/engine.go
//
// Validator decides whether a submitted word is accepted for a Session.
// Rules run in a fixed order and the first failure is reported:
//
//  1. empty after normalization → ignored (no error, no state change)
//  2. already used              → DuplicateWord
//  3. not spellable from root   → InfeasibleWord
//  4. three letters or fewer    → TooShort
//  5. equals root's same-length prefix → TrivialPrefix
//  6. unknown to the dictionary → UnrecognizedWord
//
// The dictionary runs last so the cheap local rules short-circuit before it.

package game

import "unicode/utf8"

// MinWordLength is the shortest word that can be accepted.
const MinWordLength = 4

// Dictionary is the spell-check capability the Validator depends on.
type Dictionary interface {
	IsRecognizedWord(word, language string) bool
}

// DictionaryFunc adapts a plain function to Dictionary.
type DictionaryFunc func(word, language string) bool

func (f DictionaryFunc) IsRecognizedWord(word, language string) bool { return f(word, language) }

// Validator applies the word rules. It holds no session state.
type Validator struct {
	dict     Dictionary
	language string
}

// NewValidator returns a Validator consulting dict for language.
func NewValidator(dict Dictionary, language string) *Validator {
	if language == "" {
		language = "en"
	}
	return &Validator{dict: dict, language: language}
}

// Language reports the dictionary language in use.
func (v *Validator) Language() string { return v.language }

// Evaluate normalizes raw, checks it against s and returns the session to
// keep along with the outcome. The returned session differs from s only
// when the word was accepted.
func (v *Validator) Evaluate(s Session, raw string) (Session, Result) {
	word := Normalize(raw)
	if word == "" {
		return s, Result{Status: StatusIgnored}
	}
	if err := v.Check(s, word); err != nil {
		return s, Result{Status: StatusRejected, Word: word, Err: err}
	}
	return s.RecordAcceptance(word), Result{Status: StatusAccepted, Word: word}
}

// Check runs rules 2 through 6 on an already normalized, non-empty word.
// It returns nil when the word may be recorded.
func (v *Validator) Check(s Session, word string) *WordError {
	switch {
	case s.Contains(word):
		return newWordError(DuplicateWord, word, s.RootWord)
	case !IsFeasible(word, s.RootWord):
		return newWordError(InfeasibleWord, word, s.RootWord)
	case utf8.RuneCountInString(word) < MinWordLength:
		return newWordError(TooShort, word, s.RootWord)
	case IsRootPrefix(word, s.RootWord):
		return newWordError(TrivialPrefix, word, s.RootWord)
	case v.dict == nil || !v.dict.IsRecognizedWord(word, v.language):
		return newWordError(UnrecognizedWord, word, s.RootWord)
	}
	return nil
}

// IsFeasible reports whether word can be spelled using each letter of root
// at most once.
func IsFeasible(word, root string) bool {
	counts := make(map[rune]int, len(root))
	for _, r := range root {
		counts[r]++
	}
	for _, r := range word {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}
	return true
}

// IsRootPrefix reports whether word equals the prefix of root with the same
// number of letters. The whole root counts as its own prefix.
func IsRootPrefix(word, root string) bool {
	n := utf8.RuneCountInString(word)
	rr := []rune(root)
	if n > len(rr) {
		n = len(rr)
	}
	return string(rr[:n]) == word
}
