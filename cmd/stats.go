package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnbot/internal/config"
	"github.com/abhisek/learnbot/internal/history"
	"github.com/abhisek/learnbot/internal/profile"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner and quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return runStats(cmd, cfg)
	},
}

func runStats(cmd *cobra.Command, cfg config.Config) error {
	profiles, err := profile.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open profile store: %w", err)
	}

	ps, err := profiles.Stats()
	if err != nil {
		return fmt.Errorf("profile stats: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Learner storage")
	fmt.Fprintf(out, "  total users:     %d\n", ps.TotalUsers)
	fmt.Fprintf(out, "  enrolled users:  %d\n", ps.EnrolledUsers)
	fmt.Fprintf(out, "  active courses:  %s\n", orNone(strings.Join(ps.ActiveCourses, ", ")))
	fmt.Fprintf(out, "  storage bytes:   %d\n", ps.StorageBytes)

	if cfg.HistoryDBPath == "" {
		fmt.Fprintln(out, "\nHistory store disabled")
		return nil
	}

	events, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer events.Close()

	totals, err := events.Totals(cmd.Context())
	if err != nil {
		return fmt.Errorf("history totals: %w", err)
	}
	llmCount, err := events.LLMRequestCount(cmd.Context())
	if err != nil {
		return fmt.Errorf("llm request count: %w", err)
	}

	fmt.Fprintln(out, "\nQuiz history")
	fmt.Fprintf(out, "  results recorded: %d\n", totals.TotalResults)
	fmt.Fprintf(out, "  correct answers:  %d\n", totals.TotalCorrect)
	fmt.Fprintf(out, "  distinct users:   %d\n", totals.DistinctUsers)
	fmt.Fprintf(out, "  llm requests:     %d\n", llmCount)
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
