package cli

import (
	"fmt"

	"edscope/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Classify all three pairs for a set of ratings",
	}
	ratings := ratingFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		scores, err := scoresFromFlags(ratings)
		if err != nil {
			return err
		}

		for _, s := range app.Assessment.Summarize(scores) {
			fmt.Println(formatter.Header(fmt.Sprintf("%s (%s × %s)",
				s.Pair.Title, s.Pair.X.Label(), s.Pair.Y.Label())))
			fmt.Printf("%s  %s=%s  %s=%s\n",
				formatter.GateBadge(s.Gate),
				s.Pair.X.Label(), formatter.Rating(s.X),
				s.Pair.Y.Label(), formatter.Rating(s.Y))
			fmt.Println(formatter.Bold(s.Quadrant.Name))
			fmt.Println(s.DisplayText())
			fmt.Println()
		}
		return nil
	}

	return cmd
}
