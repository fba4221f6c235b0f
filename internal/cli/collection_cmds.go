package cli

import (
	"context"
	"fmt"
	"strconv"

	"edscope/internal/cli/formatter"
	"edscope/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			col := app.Collection.Load(context.Background())
			if len(col) == 0 {
				fmt.Println(formatter.Dim("No saved resources yet. Use 'edscope save' or press 's' in the TUI."))
				return nil
			}

			headers := []string{"#", "ID", "Name", "Rel", "Ali", "Eff", "Imp", "Sus", "Coh"}
			rows := make([][]string, 0, len(col))
			for i, r := range col {
				row := []string{
					strconv.Itoa(i + 1),
					shortID(r.ID),
					r.Name,
				}
				for _, c := range domain.AllCriteria {
					row = append(row, formatter.RatingColor(r.Scores[c]).Render(strconv.Itoa(int(r.Scores[c]))))
				}
				rows = append(rows, row)
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newSaveCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a rated resource snapshot",
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to \"Resource N\")")
	ratings := ratingFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		scores, err := scoresFromFlags(ratings)
		if err != nil {
			return err
		}

		saved, err := app.Collection.Save(context.Background(), name, scores)
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s [%s]\n", formatter.Bold(saved.Name), shortID(saved.ID))
		return nil
	}

	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveResourceID(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			removed, err := app.Collection.Delete(context.Background(), id)
			if err != nil {
				return err
			}
			if removed {
				fmt.Printf("Deleted %s\n", shortID(id))
			} else {
				fmt.Println(formatter.Dim("Nothing to delete."))
			}
			return nil
		},
	}
}

// resolveResourceID resolves an exact id or unique id prefix against the
// saved collection. Unknown inputs pass through unchanged: delete treats
// a missing id as a no-op.
func resolveResourceID(ctx context.Context, app *App, input string) (string, error) {
	col := app.Collection.Load(ctx)

	if col.IndexOf(input) >= 0 {
		return input, nil
	}

	var matches []string
	for _, r := range col {
		if len(input) > 0 && len(r.ID) >= len(input) && r.ID[:len(input)] == input {
			matches = append(matches, r.ID)
		}
	}
	switch len(matches) {
	case 0:
		return input, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("resource ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// shortID truncates an identifier for display.
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
