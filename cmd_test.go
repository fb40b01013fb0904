package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/opener/internal/config"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func writeLists(t *testing.T, guesses, answers string) config.Config {
	t.Helper()
	dir := t.TempDir()
	g := filepath.Join(dir, "guesses.txt")
	a := filepath.Join(dir, "answers.txt")
	require.NoError(t, os.WriteFile(g, []byte(guesses), 0o644))
	require.NoError(t, os.WriteFile(a, []byte(answers), 0o644))
	return config.Config{GuessesFile: g, AnswersFile: a, Workers: 2, TopN: 10, Policy: "total", LogLevel: "info"}
}

func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(cfg)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBestCommand(t *testing.T) {
	cfg := writeLists(t, "abcde\nfghij\n", "abcde n 1\nabcdf n 1\n")
	out, err := run(t, cfg, "best")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"The best word is: abcde",
		"Green match histogram: [0 0 0 0 1 0]",
		"Yellow match histogram: [1 0 0 0 0 0]",
		"The next best word is: fghij",
		"Green match histogram: [2 0 0 0 0 0]",
		"Yellow match histogram: [1 1 0 0 0 0]",
	}, "\n")+"\n", out)
}

func TestBestCommand_NoNextWord(t *testing.T) {
	cfg := writeLists(t, "crane\ntrace\n", "slate n 1\n")
	out, err := run(t, cfg, "best")
	require.NoError(t, err)
	assert.Contains(t, out, "There is no next best word")
}

func TestPairsCommand(t *testing.T) {
	cfg := writeLists(t, "abcde\nfghij\nxxxxx\n", "abcde n 1\nfghij n 1\n")
	out, err := run(t, cfg, "pairs")
	require.NoError(t, err)
	assert.Equal(t, "(2, 'abcde', 'fghij')\n", out)

	cfg = writeLists(t, "crane\n", "crane n 1\n")
	out, err = run(t, cfg, "pairs")
	require.NoError(t, err)
	assert.Equal(t, "No coverage pairs found\n", out)
}

func TestRemainingCommand(t *testing.T) {
	cfg := writeLists(t, "trace\n", "grace n 1\ncrane n 1\ncrate n 1\n")
	out, err := run(t, cfg, "remaining", "CRANE", "trace")
	require.NoError(t, err)
	assert.Equal(t, "T:BLACK R:GREEN A:GREEN C:YELLOW E:GREEN\n1 of 3 answers remain\ncrane\n", out)

	_, err = run(t, cfg, "remaining", "crane", "tra")
	assert.Error(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := writeLists(t, "abcde\n", "abcde n 1\n")
	_, err := run(t, cfg, "--policy", "median", "best")
	assert.Error(t, err)

	_, err = run(t, cfg, "--workers", "0", "best")
	assert.Error(t, err)

	_, err = run(t, cfg, "--answers", filepath.Join(t.TempDir(), "missing"), "best")
	assert.Error(t, err)
}

func TestBestCommand_EmbeddedLists(t *testing.T) {
	out, err := run(t, config.Config{Workers: 2, TopN: 5, Policy: "total"}, "best")
	require.NoError(t, err)
	assert.Contains(t, out, "The best word is: ")
}
