package cli

import (
	"edscope/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Collection service.CollectionService
	Assessment service.AssessmentService

	// IsInteractive reports whether stdin is attached to a terminal,
	// gating the default TUI entrypoint.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "edscope" command and registers all
// subcommands against the provided App. Running the bare command in an
// interactive terminal launches the rating TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "edscope",
		Short: "Self-assessment tool for educational resources",
		Long: "edscope rates an educational resource on six criteria across three\n" +
			"paired axes, classifies each pair into a qualitative quadrant, and\n" +
			"keeps a collection of saved assessments for comparison.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runRatingTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newRateCmd(app),
		newClassifyCmd(app),
		newSummaryCmd(app),
		newScaleCmd(app),
		newListCmd(app),
		newSaveCmd(app),
		newDeleteCmd(app),
		newExportCmd(app),
	)

	return root
}
