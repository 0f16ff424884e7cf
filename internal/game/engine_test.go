package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knownWords is a dictionary that recognizes a fixed set of English words.
func knownWords(words ...string) Dictionary {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return DictionaryFunc(func(word, language string) bool {
		return language == "en" && set[word]
	})
}

func silkworm() Session {
	return Session{ID: "test", RootWord: "silkworm", UsedWords: []string{}}
}

func TestEvaluate_AcceptsWord(t *testing.T) {
	v := NewValidator(knownWords("worms"), "en")

	s, res := v.Evaluate(silkworm(), "  Worms\n")

	require.Equal(t, StatusAccepted, res.Status)
	assert.Nil(t, res.Err)
	assert.Equal(t, "worms", res.Word)
	assert.Equal(t, []string{"worms"}, s.UsedWords)
	assert.Equal(t, 5, s.Score)
	assert.Equal(t, 6, s.DisplayScore())
}

func TestEvaluate_Rejections(t *testing.T) {
	v := NewValidator(knownWords("worms", "silk", "milk", "slow"), "en")
	base := silkworm().RecordAcceptance("worms")

	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"duplicate", "worms", DuplicateWord},
		{"duplicate after normalization", " WORMS ", DuplicateWord},
		{"letter missing from root", "milky", InfeasibleWord},
		{"letter used twice", "silks", InfeasibleWord},
		{"three letters", "sik", TooShort},
		{"three letters not in dictionary", "owl", TooShort},
		{"root prefix", "silk", TrivialPrefix},
		{"root itself", "silkworm", TrivialPrefix},
		{"not a word", "work", UnrecognizedWord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, res := v.Evaluate(base, tt.input)

			require.Equal(t, StatusRejected, res.Status)
			require.NotNil(t, res.Err)
			assert.Equal(t, tt.kind, res.Err.Kind)
			assert.True(t, errors.Is(res.Err, tt.kind))
			assert.NotEmpty(t, res.Err.Title)
			assert.NotEmpty(t, res.Err.Message)
			assert.Equal(t, base, s, "rejection must not change the session")
		})
	}
}

func TestEvaluate_CheckOrder(t *testing.T) {
	v := NewValidator(knownWords(), "en")
	s := silkworm().RecordAcceptance("ski")

	// Duplicate wins over every later rule.
	_, res := v.Evaluate(s, "ski")
	require.NotNil(t, res.Err)
	assert.Equal(t, DuplicateWord, res.Err.Kind)

	// Infeasible wins over length.
	_, res = v.Evaluate(s, "zz")
	require.NotNil(t, res.Err)
	assert.Equal(t, InfeasibleWord, res.Err.Kind)

	// Length wins over prefix: "sil" is both short and a root prefix.
	_, res = v.Evaluate(s, "sil")
	require.NotNil(t, res.Err)
	assert.Equal(t, TooShort, res.Err.Kind)
}

func TestEvaluate_DictionaryConsultedLast(t *testing.T) {
	calls := 0
	v := NewValidator(DictionaryFunc(func(word, language string) bool {
		calls++
		return true
	}), "en")

	_, res := v.Evaluate(silkworm(), "sik")
	assert.Equal(t, StatusRejected, res.Status)
	assert.Equal(t, 0, calls)

	_, res = v.Evaluate(silkworm(), "worms")
	assert.Equal(t, StatusAccepted, res.Status)
	assert.Equal(t, 1, calls)
}

func TestEvaluate_IgnoresBlank(t *testing.T) {
	v := NewValidator(knownWords(), "en")
	for _, in := range []string{"", "   ", "\t\n"} {
		s, res := v.Evaluate(silkworm(), in)
		assert.Equal(t, StatusIgnored, res.Status)
		assert.Nil(t, res.Err)
		assert.Equal(t, silkworm(), s)
	}
}

func TestEvaluate_SameWordTwice(t *testing.T) {
	v := NewValidator(knownWords("worms"), "en")

	s, first := v.Evaluate(silkworm(), "worms")
	require.Equal(t, StatusAccepted, first.Status)

	s2, second := v.Evaluate(s, "worms")
	require.Equal(t, StatusRejected, second.Status)
	assert.True(t, errors.Is(second.Err, DuplicateWord))
	assert.Equal(t, s, s2)
}

func TestEvaluate_NilDictionaryRejects(t *testing.T) {
	v := NewValidator(nil, "")
	assert.Equal(t, "en", v.Language())

	_, res := v.Evaluate(silkworm(), "worms")
	require.NotNil(t, res.Err)
	assert.Equal(t, UnrecognizedWord, res.Err.Kind)
}

func TestEvaluate_ScoreIsSumOfLengths(t *testing.T) {
	v := NewValidator(knownWords("worms", "milks", "slow", "risk", "lorikms"), "en")
	s := Session{RootWord: "silkworms", UsedWords: []string{}}

	accepted := []string{"worms", "slow", "risk"}
	want := 0
	for _, w := range accepted {
		var res Result
		s, res = v.Evaluate(s, w)
		require.Equal(t, StatusAccepted, res.Status, w)
		want += len(w)
	}
	assert.Equal(t, want, s.Score)
	assert.Equal(t, []string{"risk", "slow", "worms"}, s.UsedWords)
	assert.Equal(t, len(accepted)+want, s.DisplayScore())
}

func TestInfeasibleMessageNamesRoot(t *testing.T) {
	v := NewValidator(knownWords(), "en")
	_, res := v.Evaluate(silkworm(), "zebra")
	require.NotNil(t, res.Err)
	assert.Equal(t, "Word not possible", res.Err.Title)
	assert.Equal(t, "You can't spell that word from 'silkworm'!", res.Err.Message)
	assert.Contains(t, res.Err.Error(), "infeasible_word")
}

func TestIsFeasible(t *testing.T) {
	assert.True(t, IsFeasible("worms", "silkworm"))
	assert.True(t, IsFeasible("", "silkworm"))
	assert.True(t, IsFeasible("mrowklis", "silkworm"))
	assert.False(t, IsFeasible("worm s", "silkworm"))
	assert.False(t, IsFeasible("mill", "silkworm"))
	assert.True(t, IsFeasible("café", "éfac"))
}

func TestIsRootPrefix(t *testing.T) {
	assert.True(t, IsRootPrefix("silk", "silkworm"))
	assert.True(t, IsRootPrefix("silkw", "silkworm"))
	assert.True(t, IsRootPrefix("silkworm", "silkworm"))
	assert.False(t, IsRootPrefix("silkworms", "silkworm"))
	assert.False(t, IsRootPrefix("worm", "silkworm"))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "duplicate_word", DuplicateWord.String())
	assert.Equal(t, "unrecognized_word", UnrecognizedWord.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}
