// internal/words/words.go
//
// Word list provider for the game.
//
// Responsibilities:
//   - Load the root word list and the dictionary word list from files,
//     or fall back to the embedded defaults in the assets package.
//   - Normalize entries: trimmed, lowercased, letters only; blank lines and
//     "#" comments are skipped.
//
// A missing or unreadable file is an error. An empty root word list is
// reported as game.ErrNoStartWords; callers treat both as fatal at startup.

package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/game"
)

// Lists bundles the loaded word lists.
type Lists struct {
	Start      []string // candidate root words
	Dictionary []string // recognized words
}

// Load reads both lists. Empty paths select the embedded defaults.
func Load(startPath, dictionaryPath string) (*Lists, error) {
	start, err := LoadStartWords(startPath)
	if err != nil {
		return nil, err
	}
	dict, err := LoadDictionary(dictionaryPath)
	if err != nil {
		return nil, err
	}
	return &Lists{Start: start, Dictionary: dict}, nil
}

// Stats returns counts of loaded words: (start, dictionary).
func (l *Lists) Stats() (startCount int, dictionaryCount int) {
	return len(l.Start), len(l.Dictionary)
}

// LoadStartWords returns the root word list from path, or the embedded
// start.txt when path is empty.
func LoadStartWords(path string) ([]string, error) {
	var (
		list []string
		err  error
	)
	src := path
	if path == "" {
		src = "embedded start.txt"
		list, err = assets.StartWords()
		list = keepWords(list)
	} else {
		list, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("words: load %s: %w", src, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("words: %s: %w", src, game.ErrNoStartWords)
	}
	return list, nil
}

// LoadDictionary returns the dictionary word list from path, or the
// embedded dictionary.txt when path is empty.
func LoadDictionary(path string) ([]string, error) {
	if path == "" {
		list, err := assets.DictionaryWords()
		if err != nil {
			return nil, fmt.Errorf("words: load embedded dictionary: %w", err)
		}
		return keepWords(list), nil
	}
	list, err := readWordFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: load %s: %w", path, err)
	}
	return list, nil
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only entries made of letters.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if isWord(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// keepWords filters a normalized list down to letter-only entries.
func keepWords(list []string) []string {
	out := list[:0:0]
	for _, w := range list {
		if isWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// isWord reports whether s is non-empty and consists only of letters.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
