package cli

import (
	"fmt"

	"edscope/internal/assess"
	"edscope/internal/cli/formatter"
	"edscope/internal/domain"
	"github.com/spf13/cobra"
)

func newClassifyCmd(app *App) *cobra.Command {
	var pairCode string
	var xVal, yVal, threshold int

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a single pair of ratings",
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := domain.PairByCode(pairCode)
			if err != nil {
				return err
			}
			x, err := domain.ParseRating(xVal)
			if err != nil {
				return fmt.Errorf("invalid -x: %w", err)
			}
			y, err := domain.ParseRating(yVal)
			if err != nil {
				return fmt.Errorf("invalid -y: %w", err)
			}
			th, err := domain.ParseRating(threshold)
			if err != nil {
				return fmt.Errorf("invalid --threshold: %w", err)
			}

			quadrant := assess.Classify(pair.Code, x, y, th)
			gate := assess.GateActive(x, y)

			fmt.Println(formatter.Header(fmt.Sprintf("%s (%s × %s)", pair.Title, pair.X.Label(), pair.Y.Label())))
			fmt.Printf("%s  %s=%s  %s=%s\n\n",
				formatter.GateBadge(gate),
				pair.X.Label(), formatter.Rating(x),
				pair.Y.Label(), formatter.Rating(y))
			fmt.Println(formatter.Bold(quadrant.Name))
			if coaching, ok := assess.EdgeCoaching(pair.Code, x, y, th); ok {
				fmt.Println(coaching)
			} else {
				fmt.Println(quadrant.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pairCode, "pair", "", "Pair code (RAID, EFIM or SUCO)")
	cmd.Flags().IntVarP(&xVal, "x", "x", int(domain.DefaultRating), "X-axis rating (1-5)")
	cmd.Flags().IntVarP(&yVal, "y", "y", int(domain.DefaultRating), "Y-axis rating (1-5)")
	cmd.Flags().IntVar(&threshold, "threshold", assess.HighThreshold, "Rating that counts as high")
	_ = cmd.MarkFlagRequired("pair")

	return cmd
}
