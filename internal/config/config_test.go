package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"WORDS_GUESSES_FILE", "WORDS_ANSWERS_FILE", "ANALYZE_WORKERS", "ANALYZE_TOP_N", "SCORE_POLICY", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Workers:  runtime.NumCPU(),
		TopN:     100,
		Policy:   "total",
		LogLevel: "info",
	}, c)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("WORDS_GUESSES_FILE", "/tmp/g.txt")
	t.Setenv("WORDS_ANSWERS_FILE", "/tmp/a.txt")
	t.Setenv("ANALYZE_WORKERS", "3")
	t.Setenv("ANALYZE_TOP_N", "7")
	t.Setenv("SCORE_POLICY", "green")
	t.Setenv("LOG_LEVEL", "debug")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		GuessesFile: "/tmp/g.txt",
		AnswersFile: "/tmp/a.txt",
		Workers:     3,
		TopN:        7,
		Policy:      "green",
		LogLevel:    "debug",
	}, c)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"non-numeric workers": {"ANALYZE_WORKERS": "many"},
		"zero workers":        {"ANALYZE_WORKERS": "0"},
		"negative top":        {"ANALYZE_TOP_N": "-1"},
		"unknown policy":      {"SCORE_POLICY": "median"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
