package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnbot/internal/course"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the course catalog",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, c := range course.All() {
			levels := make([]string, len(c.Difficulties))
			for i, d := range c.Difficulties {
				levels[i] = string(d)
			}
			fmt.Fprintf(out, "%s — %s\n", c.ID, c.Name)
			fmt.Fprintf(out, "  %s\n", c.Description)
			fmt.Fprintf(out, "  levels: %s\n", strings.Join(levels, ", "))
			fmt.Fprintf(out, "  topics: %s\n\n", strings.Join(c.Topics, "; "))
		}
	},
}
