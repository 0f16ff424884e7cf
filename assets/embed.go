// assets/embed.go
//
// Embedded default word lists:
//   - start.txt:      candidate root words, one per line.
//   - dictionary.txt: default English dictionary used when no file is configured.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed start.txt dictionary.txt
var FS embed.FS

// readLines returns the non-blank, non-comment lines of an embedded file,
// trimmed and lowercased.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// StartWords returns the embedded root word list.
func StartWords() ([]string, error) {
	return readLines("start.txt")
}

// DictionaryWords returns the embedded English dictionary.
func DictionaryWords() ([]string, error) {
	return readLines("dictionary.txt")
}
