package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rate",
		Short: "Rate a resource interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRatingTUI(app)
		},
	}
}

// runRatingTUI starts the full-screen rating interface.
func runRatingTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
