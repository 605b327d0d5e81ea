package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/config"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/db"
)

var runsCommand = &cobra.Command{
	Use:   "runs",
	Short: "List recent advice runs recorded in the database",
	RunE:  runRunsCmd,
}

var (
	runsDatabaseURL string
	runsLimit       int
)

func init() {
	runsCommand.Flags().StringVar(&runsDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	runsCommand.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to list")

	rootCmd.AddCommand(runsCommand)
}

func runRunsCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := runsDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv(config.EnvDatabaseURL)
	}
	if databaseURL == "" {
		return fmt.Errorf("%s environment variable or --db-url flag is required", config.EnvDatabaseURL)
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(ctx, runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	for _, run := range runs {
		completed := "-"
		if run.CompletedAt != nil {
			completed = run.CompletedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("%s  %-10s  %s in %s  (started %s, completed %s)\n",
			run.ID, run.Status, run.Role, run.Location,
			run.CreatedAt.Format("2006-01-02 15:04:05"), completed)
	}
	return nil
}
