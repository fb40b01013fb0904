// internal/game/types.go
//
// Core type definitions for the feedback engine.
// Defines:
//   - Color: per-letter result of a guess against a hidden word.
//   - Tile:  one (letter, color) pair of a colored guess.

package game

import "strings"

// WordLen is the fixed word length of the game.
const WordLen = 5

// Color represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "green":  letter is in the hidden word at the same position.
//   - "yellow": letter is in the hidden word elsewhere, not yet accounted for.
//   - "black":  letter is not in the hidden word (after accounting).
//
// The zero value is ColorUndefined, meaning the position was never evaluated.
type Color string

const (
	ColorUndefined Color = ""
	ColorGreen     Color = "green"
	ColorYellow    Color = "yellow"
	ColorBlack     Color = "black"
)

// Tile is a single letter of a guess together with its color.
type Tile struct {
	Letter byte
	Color  Color
}

// Colored is a guess colored against a hidden word, one Tile per position.
type Colored []Tile

// String renders the guess as "T:BLACK R:GREEN ...".
func (c Colored) String() string {
	parts := make([]string, len(c))
	for i, t := range c {
		name := strings.ToUpper(string(t.Color))
		if t.Color == ColorUndefined {
			name = "UNDEFINED"
		}
		parts[i] = strings.ToUpper(string(t.Letter)) + ":" + name
	}
	return strings.Join(parts, " ")
}
