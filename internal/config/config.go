// internal/config/config.go
//
// Environment-driven configuration.
//
// Environment variables:
//   WORDS_GUESSES_FILE=/path/to/guesses.txt   (default: embedded list)
//   WORDS_ANSWERS_FILE=/path/to/index.noun    (default: embedded list)
//   ANALYZE_WORKERS=8                          (default: number of CPUs)
//   ANALYZE_TOP_N=100                          (rows of ranked pairs printed)
//   SCORE_POLICY=total|green                   (default: total)
//   LOG_LEVEL=info

package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/robalobadob/wordle/apps/opener/internal/score"
)

// Config is the resolved runtime configuration.
type Config struct {
	GuessesFile string
	AnswersFile string
	Workers     int
	TopN        int
	Policy      string
	LogLevel    string
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	c := Config{
		GuessesFile: os.Getenv("WORDS_GUESSES_FILE"),
		AnswersFile: os.Getenv("WORDS_ANSWERS_FILE"),
		Policy:      getEnv("SCORE_POLICY", "total"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
	var err error
	if c.Workers, err = getInt("ANALYZE_WORKERS", runtime.NumCPU()); err != nil {
		return Config{}, err
	}
	if c.TopN, err = getInt("ANALYZE_TOP_N", 100); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

// Validate checks value ranges and the policy name.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.TopN < 0 {
		return fmt.Errorf("config: top must not be negative, got %d", c.TopN)
	}
	if _, err := score.PolicyByName(c.Policy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}
