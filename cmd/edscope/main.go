package main

import (
	"fmt"
	"os"
	"path/filepath"

	"edscope/internal/cli"
	"edscope/internal/db"
	"edscope/internal/repository"
	"edscope/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.edscope/edscope.db
	dbPath := os.Getenv("EDSCOPE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".edscope", "edscope.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	stateRepo := repository.NewSQLiteStateRepo(database)
	collectionRepo := repository.NewSQLiteCollectionRepo(stateRepo)

	app := &cli.App{
		Collection: service.NewCollectionService(collectionRepo),
		Assessment: service.NewAssessmentService(),
	}

	// Detect interactive terminal for the default TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
