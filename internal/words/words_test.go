package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/game"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStartWords_Embedded(t *testing.T) {
	list, err := LoadStartWords("")
	require.NoError(t, err)
	assert.Contains(t, list, "silkworm")
	for _, w := range list {
		assert.True(t, isWord(w), w)
	}
}

func TestLoadStartWords_File(t *testing.T) {
	path := writeList(t, "# comment\n Silkworm \n\nkangaroo\nnot a word\nx-ray\n")

	list, err := LoadStartWords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"silkworm", "kangaroo"}, list)
}

func TestLoadStartWords_Empty(t *testing.T) {
	path := writeList(t, "# nothing here\n\n   \n")

	_, err := LoadStartWords(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrNoStartWords)
}

func TestLoadStartWords_Missing(t *testing.T) {
	_, err := LoadStartWords(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, game.ErrNoStartWords)
}

func TestLoadDictionary(t *testing.T) {
	embedded, err := LoadDictionary("")
	require.NoError(t, err)
	assert.Contains(t, embedded, "worms")

	path := writeList(t, "Worms\nslow\n")
	list, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"worms", "slow"}, list)

	_, err = LoadDictionary(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	lists, err := Load("", "")
	require.NoError(t, err)
	s, d := lists.Stats()
	assert.Positive(t, s)
	assert.Positive(t, d)
}
