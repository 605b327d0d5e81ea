package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/observability"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/resume"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

var extractResumeCommand = &cobra.Command{
	Use:   "extract-resume",
	Short: "Extract plain text from a resume PDF and print it",
	RunE:  runExtractResumeCmd,
}

var extractResumePath string

func init() {
	extractResumeCommand.Flags().StringVar(&extractResumePath, "resume", "", "Path to the resume PDF")
	_ = extractResumeCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(extractResumeCommand)
}

func runExtractResumeCmd(_ *cobra.Command, _ []string) error {
	doc := resume.Extract(extractResumePath)

	observability.NewPrinter(os.Stdout).PrintResume(doc)

	switch doc.Status {
	case types.StatusParsed:
		fmt.Println(doc.RawText)
		return nil
	case types.StatusNotFound:
		return fmt.Errorf("resume file not found: %s", extractResumePath)
	default:
		return fmt.Errorf("could not extract text from %s", extractResumePath)
	}
}
