package search

import (
	"context"
	"sort"
	"time"

	"github.com/robalobadob/wordle/apps/opener/internal/game"
)

// coverageLetters is how many of the most common answer letters a coverage
// pair must span.
const coverageLetters = 10

// Pair is an unordered pair of guess words, stored with First <= Second.
type Pair struct {
	First, Second string
}

// NewPair orders a and b so that equal pairs compare equal.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{First: a, Second: b}
}

// Guesses returns the pair as a guess sequence.
func (p Pair) Guesses() []string { return []string{p.First, p.Second} }

// RankedPair is a Pair with the number of (hidden, candidate) combinations
// of the answer pool it eliminates.
type RankedPair struct {
	Eliminated int
	Pair
}

// TopLetters returns up to n letters ordered by how many answers contain them,
// most common first. Each answer counts a letter once. Equal counts are
// ordered alphabetically.
func TopLetters(answers []string, n int) []byte {
	var counts [26]int
	for _, w := range answers {
		var seen [26]bool
		for i := 0; i < len(w); i++ {
			c := w[i]
			if c < 'a' || c > 'z' || seen[c-'a'] {
				continue
			}
			seen[c-'a'] = true
			counts[c-'a']++
		}
	}

	letters := make([]byte, 0, 26)
	for i, c := range counts {
		if c > 0 {
			letters = append(letters, byte('a'+i))
		}
	}
	sort.SliceStable(letters, func(i, j int) bool {
		return counts[letters[i]-'a'] > counts[letters[j]-'a']
	})
	if len(letters) > n {
		letters = letters[:n]
	}
	return letters
}

// CoveragePairs finds guess pairs that together use the ten most common
// answer letters once each: both words have five distinct letters, all from
// that set, and share none. Pairs are returned sorted and without duplicates.
// An answer pool with fewer than ten distinct letters yields no pairs.
func (a *Analyzer) CoveragePairs(ctx context.Context) ([]Pair, error) {
	top := TopLetters(a.answers, coverageLetters)
	if len(top) < coverageLetters {
		a.log.Info().Int("letters", len(top)).Msg("too few distinct answer letters for coverage pairs")
		return nil, nil
	}
	var inTop [26]bool
	for _, c := range top {
		inTop[c-'a'] = true
	}

	var words []string
	for _, w := range a.guesses {
		if usesDistinctLetters(w, inTop) {
			words = append(words, w)
		}
	}

	partners, err := mapParallel(ctx, a.cfg.Workers, words, func(w string) ([]Pair, error) {
		var out []Pair
		for _, other := range words {
			if other != w && noLettersInCommon(w, other) {
				out = append(out, NewPair(w, other))
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[Pair]struct{})
	var pairs []Pair
	for _, ps := range partners {
		for _, p := range ps {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			pairs = append(pairs, p)
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairLess(pairs[i], pairs[j]) })

	a.log.Info().
		Str("letters", string(top)).
		Int("words", len(words)).
		Int("pairs", len(pairs)).
		Msg("built coverage pairs")
	return pairs, nil
}

// usesDistinctLetters reports whether w is game.WordLen distinct letters,
// all marked in allowed.
func usesDistinctLetters(w string, allowed [26]bool) bool {
	if len(w) != game.WordLen {
		return false
	}
	var seen [26]bool
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'a' || c > 'z' || !allowed[c-'a'] || seen[c-'a'] {
			return false
		}
		seen[c-'a'] = true
	}
	return true
}

// RankPairs counts, for every pair, the (hidden, candidate) combinations of
// the answer pool in which the pair's feedback eliminates the candidate.
// Pairs are ordered by that count, highest first, then by their words.
func (a *Analyzer) RankPairs(ctx context.Context, pairs []Pair) ([]RankedPair, error) {
	start := time.Now()
	ranked, err := mapParallel(ctx, a.cfg.Workers, pairs, func(p Pair) (RankedPair, error) {
		n, err := countEliminated(a.answers, p.Guesses())
		return RankedPair{Eliminated: n, Pair: p}, err
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Eliminated != ranked[j].Eliminated {
			return ranked[i].Eliminated > ranked[j].Eliminated
		}
		return pairLess(ranked[i].Pair, ranked[j].Pair)
	})

	a.log.Info().
		Int("pairs", len(pairs)).
		Int("answers", len(a.answers)).
		Dur("elapsed", time.Since(start)).
		Msg("ranked pairs")
	return ranked, nil
}

// RankCoveragePairs builds the coverage pairs and ranks them.
func (a *Analyzer) RankCoveragePairs(ctx context.Context) ([]RankedPair, error) {
	pairs, err := a.CoveragePairs(ctx)
	if err != nil {
		return nil, err
	}
	return a.RankPairs(ctx, pairs)
}

// countEliminated is the full hidden × candidate scan for one guess sequence.
func countEliminated(answers, guesses []string) (int, error) {
	n := 0
	for _, hidden := range answers {
		fb, err := game.NewFeedback(hidden, guesses)
		if err != nil {
			return 0, err
		}
		for _, candidate := range answers {
			gone, err := fb.Eliminates(candidate)
			if err != nil {
				return 0, err
			}
			if gone {
				n++
			}
		}
	}
	return n, nil
}

func pairLess(a, b Pair) bool {
	if a.First != b.First {
		return a.First < b.First
	}
	return a.Second < b.Second
}
