package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learnbot",
	Short: "Chat-driven micro-learning quiz bot",
	Long:  "Learnbot — webhook bot that serves adaptive quiz questions, tracks learner progress, and generates questions with an LLM (static bank fallback).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Path to the profile data directory (overrides LEARNBOT_DATA_DIR)")
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite history database (overrides LEARNBOT_HISTORY_DB)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(versionCmd)
}
