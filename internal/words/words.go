// internal/words/words.go
//
// Word sources for the analyzer.
//
// Responsibilities:
//   - Read guess words from raw text (one candidate per line).
//   - Read answer words from index-style text (word is the first field).
//   - Normalize and filter both to 5 lowercase letters.
//   - Load both lists from files, falling back to the embedded defaults.
//
// Word Lists:
//   - "guesses": vocabulary of permissible guesses.
//   - "answers": candidate hidden words.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z) after trimming and lowercasing.
//   • Anything else is dropped silently; file order is preserved.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/opener/assets"
	"github.com/robalobadob/wordle/apps/opener/internal/game"
)

// ErrEmptyPool is returned when a source yields no usable words.
var ErrEmptyPool = errors.New("words: no five-letter words found")

// Lists holds the two word pools.
type Lists struct {
	Guesses []string
	Answers []string
}

// Load reads the guess and answer lists. An empty path selects the embedded
// default for that list. Both lists must end up non-empty.
func Load(guessesPath, answersPath string) (Lists, error) {
	var (
		l   Lists
		err error
	)
	l.Guesses, err = loadList(guessesPath, assets.GuessesFile, ReadGuessWords)
	if err != nil {
		return Lists{}, err
	}
	l.Answers, err = loadList(answersPath, assets.AnswersFile, ReadAnswerWords)
	if err != nil {
		return Lists{}, err
	}
	return l, nil
}

func loadList(path, embedded string, read func(io.Reader) ([]string, error)) ([]string, error) {
	var (
		rc   io.ReadCloser
		err  error
		name = path
	)
	if path == "" {
		name = "embedded " + embedded
		rc, err = assets.Open(embedded)
	} else {
		rc, err = os.Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	list, err := read(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyPool)
	}
	return list, nil
}

// ReadGuessWords treats every line as a candidate word.
func ReadGuessWords(r io.Reader) ([]string, error) {
	return scanWords(r, func(line string) string { return line })
}

// ReadAnswerWords takes the first whitespace-separated field of each line,
// as in a WordNet index file.
func ReadAnswerWords(r io.Reader) ([]string, error) {
	return scanWords(r, func(line string) string {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return ""
		}
		return fields[0]
	})
}

// scanWords extracts one token per line, normalizes it and keeps valid words.
func scanWords(r io.Reader, token func(string) string) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := Normalize(token(sc.Text()))
		if IsWord(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// Normalize trims and lowercases a raw word.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsWord reports whether s is exactly game.WordLen lowercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != game.WordLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
