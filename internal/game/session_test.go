package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRound_PicksFromList(t *testing.T) {
	list := []string{"silkworm", "  Kangaroo ", "", "albatross"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		s, err := NewRound(list)
		require.NoError(t, err)
		seen[s.RootWord] = true
		assert.Empty(t, s.UsedWords)
		assert.Zero(t, s.Score)
		assert.Len(t, s.ID, 16)
	}
	assert.Subset(t, []string{"silkworm", "kangaroo", "albatross"}, keys(seen))
	assert.NotContains(t, seen, "")
}

func TestNewRound_UsesRandIndex(t *testing.T) {
	orig := randIndex
	t.Cleanup(func() { randIndex = orig })

	var gotN int
	randIndex = func(n int) int { gotN = n; return n - 1 }

	s, err := NewRound([]string{"alpha", "", "beta", "gamma"})
	require.NoError(t, err)
	assert.Equal(t, 3, gotN)
	assert.Equal(t, "gamma", s.RootWord)
}

func TestNewRound_EmptyList(t *testing.T) {
	for _, list := range [][]string{nil, {}, {"", "  ", "\n"}} {
		_, err := NewRound(list)
		assert.True(t, errors.Is(err, ErrNoStartWords))
	}
}

func TestNewRoundAt(t *testing.T) {
	s, err := NewRoundAt([]string{"alpha", "beta"}, func(n int) int { return 1 })
	require.NoError(t, err)
	assert.Equal(t, "beta", s.RootWord)

	s, err = NewRoundAt([]string{"alpha", "beta"}, func(n int) int { return 7 })
	require.NoError(t, err)
	assert.Equal(t, "alpha", s.RootWord)

	_, err = NewRoundAt(nil, func(n int) int { return 0 })
	assert.ErrorIs(t, err, ErrNoStartWords)
}

func TestRecordAcceptance_DoesNotAlias(t *testing.T) {
	s := Session{RootWord: "silkworm", UsedWords: []string{}}
	a := s.RecordAcceptance("worms")
	b := a.RecordAcceptance("slow")
	c := a.RecordAcceptance("silo")

	assert.Equal(t, []string{"worms"}, a.UsedWords)
	assert.Equal(t, []string{"slow", "worms"}, b.UsedWords)
	assert.Equal(t, []string{"silo", "worms"}, c.UsedWords)
	assert.Equal(t, 9, b.Score)
	assert.Empty(t, s.UsedWords)
}

func TestReset(t *testing.T) {
	s := Session{ID: "x", RootWord: "silkworm", UsedWords: []string{}}.
		RecordAcceptance("worms").
		RecordAcceptance("slow")

	kept := s.Reset("")
	assert.Equal(t, "silkworm", kept.RootWord)
	assert.Empty(t, kept.UsedWords)
	assert.Zero(t, kept.Score)
	assert.Equal(t, "x", kept.ID)

	replaced := s.Reset(" Kangaroo")
	assert.Equal(t, "kangaroo", replaced.RootWord)
	assert.Zero(t, replaced.DisplayScore())

	assert.Len(t, s.UsedWords, 2, "reset must not touch the original")
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
