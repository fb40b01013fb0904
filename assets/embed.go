// Package assets embeds the default word lists used when no files are
// configured.
package assets

import (
	"embed"
	"io"
)

// Names of the embedded lists.
const (
	GuessesFile = "guesses.txt"
	AnswersFile = "answers.txt"
)

//go:embed guesses.txt answers.txt
var FS embed.FS

// Open returns a reader over an embedded list.
func Open(name string) (io.ReadCloser, error) {
	return FS.Open(name)
}
