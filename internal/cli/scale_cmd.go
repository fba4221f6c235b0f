package cli

import (
	"fmt"

	"edscope/internal/catalog"
	"edscope/internal/cli/formatter"
	"edscope/internal/domain"
	"github.com/spf13/cobra"
)

func newScaleCmd(app *App) *cobra.Command {
	var rating int
	var full bool

	cmd := &cobra.Command{
		Use:   "scale <criterion>",
		Short: "Show the scale text for a criterion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			criterion, err := domain.ParseCriterion(args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(criterion.Label()))
			if full {
				fmt.Println(catalog.FullDefinition(criterion))
				fmt.Println()
			}

			if cmd.Flags().Changed("rating") {
				r, err := domain.ParseRating(rating)
				if err != nil {
					return err
				}
				fmt.Printf("%s  %s\n", formatter.Rating(r), catalog.Descriptor(criterion, r))
				return nil
			}

			for r := domain.MinRating; r <= domain.MaxRating; r++ {
				fmt.Printf("%s  %s\n", formatter.Rating(r), catalog.Descriptor(criterion, r))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rating, "rating", int(domain.DefaultRating), "Show only this rating's text")
	cmd.Flags().BoolVar(&full, "full", false, "Include the full criterion definition")

	return cmd
}
