// Package main provides the entry point for the job search agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_agent",
	Short: "Job search and career advice agent",
	Long:  "job_agent searches live job listings and runs a multi-stage agent pipeline that produces personalized skills, interview, and career strategy advice.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
