package game

import "fmt"

// Eliminated reports whether candidate is ruled out as the hidden word by the
// feedback guess receives against hidden.
//
// The guess is colored against hidden, then checked against candidate:
//   - green:  candidate must have that letter at that position.
//   - yellow: candidate must not have it at that position, and must have an
//     instance not already claimed by a green or an earlier yellow.
//   - black:  candidate must not have it at that position, and must have no
//     instance left unclaimed after all greens and yellows of the guess.
//
// A candidate survives exactly when it would have produced the same colors for
// guess as hidden did, so the true answer is never eliminated.
func Eliminated(hidden, candidate, guess string) (bool, error) {
	if err := checkPair(hidden, guess); err != nil {
		return false, err
	}
	if err := checkPair(hidden, candidate); err != nil {
		return false, err
	}

	var buf [WordLen]Tile
	tiles := Colored(buf[:])
	if len(guess) != WordLen {
		tiles = make(Colored, len(guess))
	}
	colorInto(hidden, guess, tiles)
	return eliminatedBy(candidate, tiles), nil
}

func eliminatedBy(candidate string, tiles Colored) bool {
	var unclaimed [26]int
	for i := range tiles {
		if tiles[i].Color == ColorGreen {
			if candidate[i] != tiles[i].Letter {
				return true
			}
			continue
		}
		unclaimed[idx(candidate[i])]++
	}

	for i, t := range tiles {
		if t.Color != ColorYellow {
			continue
		}
		j := idx(t.Letter)
		if candidate[i] == t.Letter || unclaimed[j] == 0 {
			return true
		}
		unclaimed[j]--
	}

	for i, t := range tiles {
		if t.Color != ColorBlack {
			continue
		}
		if candidate[i] == t.Letter || unclaimed[idx(t.Letter)] > 0 {
			return true
		}
	}
	return false
}

// EliminatedByAny reports whether any of guesses eliminates candidate.
// It stops at the first eliminating guess; the result does not depend on order.
func EliminatedByAny(hidden, candidate string, guesses []string) (bool, error) {
	for _, g := range guesses {
		out, err := Eliminated(hidden, candidate, g)
		if err != nil {
			return false, fmt.Errorf("guess %q: %w", g, err)
		}
		if out {
			return true, nil
		}
	}
	return false, nil
}

// Remaining returns the words of pool still possible after guesses have been
// played against hidden, in pool order.
func Remaining(hidden string, pool, guesses []string) ([]string, error) {
	var out []string
	for _, w := range pool {
		gone, err := EliminatedByAny(hidden, w, guesses)
		if err != nil {
			return nil, err
		}
		if !gone {
			out = append(out, w)
		}
	}
	return out, nil
}

// Feedback is the coloring a sequence of guesses received against one hidden
// word. It lets many candidates be checked without recoloring the guesses.
type Feedback []Colored

// NewFeedback colors every guess against hidden.
func NewFeedback(hidden string, guesses []string) (Feedback, error) {
	fb := make(Feedback, 0, len(guesses))
	for _, g := range guesses {
		c, err := ColorWord(hidden, g)
		if err != nil {
			return nil, fmt.Errorf("guess %q: %w", g, err)
		}
		fb = append(fb, c)
	}
	return fb, nil
}

// Eliminates reports whether any guess in fb rules out candidate.
func (fb Feedback) Eliminates(candidate string) (bool, error) {
	for _, tiles := range fb {
		if len(candidate) != len(tiles) || !isAlpha(candidate) {
			return false, fmt.Errorf("%w: candidate %q does not fit a %d letter guess", ErrInvalidInput, candidate, len(tiles))
		}
		if eliminatedBy(candidate, tiles) {
			return true, nil
		}
	}
	return false, nil
}
