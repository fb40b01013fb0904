package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/opener/internal/game"
)

func TestNewPair_Unordered(t *testing.T) {
	assert.Equal(t, NewPair("slate", "crony"), NewPair("crony", "slate"))
	assert.Equal(t, Pair{First: "crony", Second: "slate"}, NewPair("slate", "crony"))
}

func TestTopLetters(t *testing.T) {
	// b and x are in both words; repeats within a word count once and ties
	// fall back to alphabetical order.
	answers := []string{"aabxx", "bcdxx"}
	assert.Equal(t, []byte("bxacd"), TopLetters(answers, 10))
	assert.Equal(t, []byte("bx"), TopLetters(answers, 2))
	assert.Empty(t, TopLetters(nil, 10))
}

func TestCoveragePairs(t *testing.T) {
	answers := []string{"abcde", "fghij"}
	guesses := []string{"abcde", "fghij", "jihgf", "badce", "abcdf", "aabcd", "klmno"}
	a := newTestAnalyzer(guesses, answers, Config{})

	got, err := a.CoveragePairs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{First: "abcde", Second: "fghij"},
		{First: "abcde", Second: "jihgf"},
		{First: "badce", Second: "fghij"},
		{First: "badce", Second: "jihgf"},
	}, got)
}

func TestCoveragePairs_TooFewLetters(t *testing.T) {
	a := newTestAnalyzer([]string{"crane", "moist"}, []string{"crane", "trace"}, Config{})
	got, err := a.CoveragePairs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRankPairs(t *testing.T) {
	answers := []string{"abcde", "fghij"}
	a := newTestAnalyzer(nil, answers, Config{})

	got, err := a.RankPairs(context.Background(), []Pair{
		NewPair("yyyyy", "xxxxx"),
		NewPair("fghij", "badce"),
		NewPair("abcde", "fghij"),
	})
	require.NoError(t, err)
	assert.Equal(t, []RankedPair{
		{Eliminated: 2, Pair: Pair{First: "abcde", Second: "fghij"}},
		{Eliminated: 2, Pair: Pair{First: "badce", Second: "fghij"}},
		{Eliminated: 0, Pair: Pair{First: "xxxxx", Second: "yyyyy"}},
	}, got)
}

func TestRankPairs_InvalidWordFailsRun(t *testing.T) {
	a := newTestAnalyzer(nil, []string{"abcde", "fghij"}, Config{})
	_, err := a.RankPairs(context.Background(), []Pair{NewPair("abcde", "fghij"), NewPair("abc", "fghij")})
	assert.ErrorIs(t, err, game.ErrInvalidInput)
}

func TestRankCoveragePairs(t *testing.T) {
	answers := []string{"abcde", "fghij", "badge", "chief"}
	guesses := []string{"abcde", "fghij", "jihgf", "badce"}
	a := newTestAnalyzer(guesses, answers, Config{})

	got, err := a.RankCoveragePairs(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Eliminated, got[i].Eliminated)
	}
	for _, p := range got {
		// The hidden word itself is never eliminated.
		assert.LessOrEqual(t, p.Eliminated, len(answers)*(len(answers)-1))
	}
}
