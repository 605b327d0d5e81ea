package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/config"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/jobs"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/observability"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

var jobsCommand = &cobra.Command{
	Use:   "jobs",
	Short: "Search live job listings without running the advice pipeline",
	RunE:  runJobsCmd,
}

var (
	jobsRole        string
	jobsLocation    string
	jobsResultCount int
	jobsCountry     string
)

func init() {
	jobsCommand.Flags().StringVarP(&jobsRole, "role", "r", "", "Job role to search for")
	jobsCommand.Flags().StringVarP(&jobsLocation, "location", "l", "", "Location to search in")
	jobsCommand.Flags().IntVarP(&jobsResultCount, "num-results", "n", types.DefaultResultCount, "Number of listings to request")
	jobsCommand.Flags().StringVar(&jobsCountry, "country", "us", "Two-letter country code for the listings API")
	_ = jobsCommand.MarkFlagRequired("role")
	_ = jobsCommand.MarkFlagRequired("location")

	rootCmd.AddCommand(jobsCommand)
}

func runJobsCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Config{Country: jobsCountry}
	cfg.FromEnv()
	// Only the listings credentials are needed here, but the credential check
	// enumerates all of them so a later full run fails the same way.
	if err := cfg.CheckCredentials(); err != nil {
		return err
	}

	client := jobs.NewClient(&cfg)
	query := types.NewJobQuery(jobsRole, jobsLocation, jobsResultCount)

	listings, err := client.Search(ctx, query)
	if err != nil {
		if errors.Is(err, jobs.ErrNoResults) {
			fmt.Println(jobs.ErrNoResults.Error())
			return nil
		}
		return err
	}

	observability.NewPrinter(os.Stdout).PrintListings(listings)
	fmt.Println(jobs.FormatListings(listings))
	return nil
}
