// internal/search/search.go
//
// Selection/search driver.
// Responsibilities:
//   - Score every guess word against the answer pool on a bounded worker pool.
//   - Pick the best single opener and the best opener sharing no letters with it.
//   - Build letter-coverage guess pairs and rank them by how many
//     (hidden, candidate) combinations they eliminate (see pairs.go).
//
// Notes:
//   - Word lists are shared read-only by all workers; every task owns its
//     accumulator and results are combined only after the pool has drained.
//   - Any task error fails the whole call.
package search

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/opener/internal/score"
)

// ErrNoGuesses is returned when there is nothing to pick a best guess from.
var ErrNoGuesses = errors.New("search: no guess words")

// Config tunes an Analyzer. Zero values fall back to defaults.
type Config struct {
	Workers int          // pool size; defaults to runtime.NumCPU()
	Policy  score.Policy // ranking of single guesses; defaults to score.TotalMatches
	Scoring score.Options
}

// Analyzer evaluates openers for a fixed pair of word pools.
type Analyzer struct {
	guesses []string
	answers []string
	cfg     Config
	log     zerolog.Logger
}

// New constructs an Analyzer over guess and answer pools.
// The slices are read concurrently and must not be modified afterwards.
func New(guesses, answers []string, cfg Config, log zerolog.Logger) *Analyzer {
	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Policy == nil {
		cfg.Policy = score.TotalMatches
	}
	return &Analyzer{guesses: guesses, answers: answers, cfg: cfg, log: log}
}

// Openers is the outcome of the single-guess analysis.
type Openers struct {
	Best score.WordScore
	// Next is the best guess sharing no letters with Best.
	// Only meaningful when HasNext is true.
	Next    score.WordScore
	HasNext bool
}

// ScoreAll computes a WordScore for every guess word, in guess order.
func (a *Analyzer) ScoreAll(ctx context.Context) ([]score.WordScore, error) {
	start := time.Now()
	scores, err := mapParallel(ctx, a.cfg.Workers, a.guesses, func(guess string) (score.WordScore, error) {
		return score.ScoreGuess(guess, a.answers, a.cfg.Scoring)
	})
	if err != nil {
		return nil, err
	}
	a.log.Info().
		Int("guesses", len(a.guesses)).
		Int("answers", len(a.answers)).
		Int("workers", a.cfg.Workers).
		Dur("elapsed", time.Since(start)).
		Msg("scored guesses")
	return scores, nil
}

// BestOpeners scores all guesses and selects the best opener and its
// letter-disjoint follow-up.
func (a *Analyzer) BestOpeners(ctx context.Context) (Openers, error) {
	scores, err := a.ScoreAll(ctx)
	if err != nil {
		return Openers{}, err
	}
	best, ok := a.Best(scores)
	if !ok {
		return Openers{}, ErrNoGuesses
	}
	out := Openers{Best: best}
	out.Next, out.HasNext = a.BestComplement(scores, best.Word)
	return out, nil
}

// Best returns the highest scoring entry under the policy.
// Ties keep the earliest entry. ok is false when scores is empty.
func (a *Analyzer) Best(scores []score.WordScore) (best score.WordScore, ok bool) {
	return a.argmax(scores, func(score.WordScore) bool { return true })
}

// BestComplement returns the highest scoring entry sharing no letters with
// word. ok is false when no such entry exists.
func (a *Analyzer) BestComplement(scores []score.WordScore, word string) (best score.WordScore, ok bool) {
	return a.argmax(scores, func(s score.WordScore) bool {
		return noLettersInCommon(word, s.Word)
	})
}

func (a *Analyzer) argmax(scores []score.WordScore, keep func(score.WordScore) bool) (best score.WordScore, ok bool) {
	var bestValue float64
	for _, s := range scores {
		if !keep(s) {
			continue
		}
		v := a.cfg.Policy(s)
		if !ok || v > bestValue {
			best, bestValue, ok = s, v, true
		}
	}
	return best, ok
}

// noLettersInCommon reports whether a and b share no letter.
func noLettersInCommon(a, b string) bool {
	return !strings.ContainsAny(a, b)
}
