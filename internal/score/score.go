// internal/score/score.go
//
// Scoring aggregator.
// A WordScore holds, for one guess word, histograms of how many answers
// produced exactly k green and exactly k yellow matches against it.
// ScoreGuess is a pure function of (guess, answers), so scores for different
// guesses can be computed in parallel without locking.
package score

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/opener/internal/game"
)

// Histogram counts answers by number of matches, indexed 0..game.WordLen.
type Histogram [game.WordLen + 1]int

// Total returns Σ k×h[k], the number of matches over all answers.
func (h Histogram) Total() int {
	sum := 0
	for k, n := range h {
		sum += k * n
	}
	return sum
}

// WordScore is the match histogram pair of a single guess word.
type WordScore struct {
	Word   string
	Green  Histogram
	Yellow Histogram
}

// TotalGreen is the number of green matches over all answers scored.
func (s WordScore) TotalGreen() int { return s.Green.Total() }

// TotalYellow is the number of yellow matches over all answers scored.
func (s WordScore) TotalYellow() int { return s.Yellow.Total() }

// Options tune ScoreGuess.
type Options struct {
	// IncludeSelf scores the guess against an identical answer instead of
	// skipping it.
	IncludeSelf bool
}

// ScoreGuess compares guess against every answer and accumulates the
// green/yellow histograms. An answer equal to guess is skipped unless
// opts.IncludeSelf is set.
func ScoreGuess(guess string, answers []string, opts Options) (WordScore, error) {
	s := WordScore{Word: guess}
	if len(guess) != game.WordLen {
		return s, fmt.Errorf("%w: guess %q is not %d letters", game.ErrInvalidInput, guess, game.WordLen)
	}
	for _, answer := range answers {
		if answer == guess && !opts.IncludeSelf {
			continue
		}
		yellow, green, err := game.CountMatches(answer, guess)
		if err != nil {
			return s, err
		}
		s.Green[green]++
		s.Yellow[yellow]++
	}
	return s, nil
}
