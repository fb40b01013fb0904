// internal/game/engine.go
//
// Feedback engine.
// Responsibilities:
//   - CountMatches: aggregate (yellow, green) counts between two words.
//   - ColorWord:    per-position coloring of a guess against a hidden word.
//
// Both use the two-pass algorithm (exact matches first, then misplaced letters
// drawn from a per-letter count of what is still unmatched), which keeps
// repeated letters correct. All functions are pure and safe for concurrent use.
package game

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when compared words differ in length or are
// not lowercase a–z.
var ErrInvalidInput = errors.New("game: invalid input")

// CountMatches compares candidate against hidden and returns how many letters
// are misplaced (yellow) and how many are exact (green).
//
// Pass 1 counts exact matches and tallies the hidden word's unmatched letters.
// Pass 2 walks the candidate's unmatched letters in word order and consumes one
// hidden instance per yellow.
func CountMatches(hidden, candidate string) (yellow, green int, err error) {
	if err := checkPair(hidden, candidate); err != nil {
		return 0, 0, err
	}
	n := len(candidate)

	var unmatched [26]int
	for i := 0; i < n; i++ {
		if candidate[i] == hidden[i] {
			green++
		} else {
			unmatched[idx(hidden[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if candidate[i] == hidden[i] {
			continue
		}
		j := idx(candidate[i])
		if unmatched[j] > 0 {
			yellow++
			unmatched[j]--
		}
	}

	if yellow+green > n {
		panic(fmt.Sprintf("game: %d yellow + %d green exceeds length of %q vs %q", yellow, green, hidden, candidate))
	}
	return yellow, green, nil
}

// ColorWord colors each letter of guess against hidden.
//
// Pass 1: exact matches are green.
// Pass 2: remaining positions, left to right, are yellow while the hidden word
// still has an unmatched instance of that letter, otherwise black.
func ColorWord(hidden, guess string) (Colored, error) {
	if err := checkPair(hidden, guess); err != nil {
		return nil, err
	}
	out := make(Colored, len(guess))
	colorInto(hidden, guess, out)
	return out, nil
}

// colorInto is ColorWord without validation or allocation.
// out must have len(guess) entries.
func colorInto(hidden, guess string, out Colored) {
	n := len(guess)
	var unmatched [26]int
	for i := 0; i < n; i++ {
		out[i] = Tile{Letter: guess[i]}
		if guess[i] == hidden[i] {
			out[i].Color = ColorGreen
		} else {
			unmatched[idx(hidden[i])]++
		}
	}
	for i := 0; i < n; i++ {
		if out[i].Color == ColorGreen {
			continue
		}
		j := idx(guess[i])
		if unmatched[j] > 0 {
			out[i].Color = ColorYellow
			unmatched[j]--
		} else {
			out[i].Color = ColorBlack
		}
	}
}

func checkPair(a, b string) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %q and %q differ in length", ErrInvalidInput, a, b)
	}
	if !isAlpha(a) || !isAlpha(b) {
		return fmt.Errorf("%w: %q and %q must be lowercase a-z", ErrInvalidInput, a, b)
	}
	return nil
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(c byte) int { return int(c - 'a') }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
