package cli

import (
	"context"
	"fmt"
	"time"

	"edscope/internal/cli/formatter"
	"edscope/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dated assessment report and plots",
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "Output directory")
	ratings := ratingFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		scores, err := scoresFromFlags(ratings)
		if err != nil {
			return err
		}

		col := app.Collection.Load(context.Background())
		res, err := export.WriteReport(outDir, scores, col, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", formatter.Bold(res.ReportPath))
		for _, p := range res.PlotPaths {
			fmt.Printf("Wrote %s\n", p)
		}
		return nil
	}

	return cmd
}
