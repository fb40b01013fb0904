// cmd.go
//
// Command tree for the opener analyzer.
//   best       best single opener and its letter-disjoint follow-up
//   pairs      coverage pairs ranked by eliminated candidates
//   all        best, then pairs
//   remaining  answers still possible after guesses against a hidden word
//
// Flags override the environment configuration loaded in main.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/opener/internal/config"
	"github.com/robalobadob/wordle/apps/opener/internal/game"
	"github.com/robalobadob/wordle/apps/opener/internal/score"
	"github.com/robalobadob/wordle/apps/opener/internal/search"
	"github.com/robalobadob/wordle/apps/opener/internal/words"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "opener",
		Short:         "Find strong Wordle opening guesses and guess pairs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
	}
	f := root.PersistentFlags()
	f.StringVar(&cfg.GuessesFile, "guesses", cfg.GuessesFile, "guess word list, one word per line (default: embedded)")
	f.StringVar(&cfg.AnswersFile, "answers", cfg.AnswersFile, "answer list, word in the first field (default: embedded)")
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker pool size")
	f.IntVar(&cfg.TopN, "top", cfg.TopN, "ranked pairs to print")
	f.StringVar(&cfg.Policy, "policy", cfg.Policy, "single guess scoring policy: total or green")

	root.AddCommand(
		&cobra.Command{
			Use:   "best",
			Short: "Print the best opener and the best opener sharing no letters with it",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, _, err := newAnalyzer(cfg)
				if err != nil {
					return err
				}
				return runBest(cmd.Context(), cmd.OutOrStdout(), a)
			},
		},
		&cobra.Command{
			Use:   "pairs",
			Short: "Rank letter-coverage guess pairs by eliminated candidates",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, _, err := newAnalyzer(cfg)
				if err != nil {
					return err
				}
				return runPairs(cmd.Context(), cmd.OutOrStdout(), a, cfg.TopN)
			},
		},
		&cobra.Command{
			Use:   "all",
			Short: "Run best, then pairs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, _, err := newAnalyzer(cfg)
				if err != nil {
					return err
				}
				if err := runBest(cmd.Context(), cmd.OutOrStdout(), a); err != nil {
					return err
				}
				return runPairs(cmd.Context(), cmd.OutOrStdout(), a, cfg.TopN)
			},
		},
		&cobra.Command{
			Use:   "remaining <hidden> <guess>...",
			Short: "List answers still possible after guesses against a hidden word",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, lists, err := newAnalyzer(cfg)
				if err != nil {
					return err
				}
				return runRemaining(cmd.OutOrStdout(), lists.Answers, args[0], args[1:])
			},
		},
	)
	return root
}

func newAnalyzer(cfg config.Config) (*search.Analyzer, words.Lists, error) {
	lists, err := words.Load(cfg.GuessesFile, cfg.AnswersFile)
	if err != nil {
		return nil, words.Lists{}, fmt.Errorf("load word lists: %w", err)
	}
	policy, err := score.PolicyByName(cfg.Policy)
	if err != nil {
		return nil, words.Lists{}, err
	}
	log.Debug().
		Int("guesses", len(lists.Guesses)).
		Int("answers", len(lists.Answers)).
		Str("policy", cfg.Policy).
		Msg("loaded word lists")

	a := search.New(lists.Guesses, lists.Answers, search.Config{
		Workers: cfg.Workers,
		Policy:  policy,
	}, log.Logger)
	return a, lists, nil
}

func runBest(ctx context.Context, w io.Writer, a *search.Analyzer) error {
	o, err := a.BestOpeners(ctx)
	if err != nil {
		return err
	}
	printScore(w, "The best word is: ", o.Best)
	if !o.HasNext {
		fmt.Fprintln(w, "There is no next best word")
		return nil
	}
	printScore(w, "The next best word is: ", o.Next)
	return nil
}

func printScore(w io.Writer, title string, s score.WordScore) {
	fmt.Fprintln(w, title+s.Word)
	fmt.Fprintf(w, "Green match histogram: %v\n", s.Green)
	fmt.Fprintf(w, "Yellow match histogram: %v\n", s.Yellow)
}

func runPairs(ctx context.Context, w io.Writer, a *search.Analyzer, top int) error {
	ranked, err := a.RankCoveragePairs(ctx)
	if err != nil {
		return err
	}
	if len(ranked) == 0 {
		fmt.Fprintln(w, "No coverage pairs found")
		return nil
	}
	if len(ranked) > top {
		ranked = ranked[:top]
	}
	for _, r := range ranked {
		fmt.Fprintf(w, "(%d, '%s', '%s')\n", r.Eliminated, r.First, r.Second)
	}
	return nil
}

func runRemaining(w io.Writer, answers []string, hidden string, guesses []string) error {
	hidden = words.Normalize(hidden)
	for i, g := range guesses {
		guesses[i] = words.Normalize(g)
		colored, err := game.ColorWord(hidden, guesses[i])
		if err != nil {
			return err
		}
		fmt.Fprintln(w, colored)
	}
	left, err := game.Remaining(hidden, answers, guesses)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d of %d answers remain\n", len(left), len(answers))
	for _, word := range left {
		fmt.Fprintln(w, word)
	}
	return nil
}
