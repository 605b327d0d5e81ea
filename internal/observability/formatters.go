// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxListingsToShow is the default number of listings to display
	maxListingsToShow = 5
	// previewLength is how much of a stage output to show in verbose mode
	previewLength = 400
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintListings outputs a human-readable summary of retrieved job listings.
func (p *Printer) PrintListings(listings []types.JobListing) {
	if len(listings) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(listings), maxListingsToShow)
	for i := 0; i < count; i++ {
		listing := listings[i]
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, listing.Title))
		sb.WriteString(fmt.Sprintf("   %s - %s\n", listing.Company, listing.Location))
		if listing.Salary != types.PlaceholderNoSalary {
			sb.WriteString(fmt.Sprintf("   Salary: %s\n", listing.Salary))
		}
	}
	if len(listings) > maxListingsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(listings)-maxListingsToShow))
	}

	p.printBox(fmt.Sprintf("Job Listings (%d)", len(listings)), strings.TrimRight(sb.String(), "\n"))
}

// PrintResume outputs the extraction status of the candidate's resume.
func (p *Printer) PrintResume(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Path:   %s\n", doc.Path))
	sb.WriteString(fmt.Sprintf("Status: %s", doc.Status))
	if doc.Parsed() {
		sb.WriteString(fmt.Sprintf("\nLength: %d characters", len(doc.RawText)))
	}

	p.printBox("Resume", sb.String())
}

// PrintStageResult outputs a truncated preview of one stage's output.
func (p *Printer) PrintStageResult(result types.StageResult) {
	preview := result.Output
	if runes := []rune(preview); len(runes) > previewLength {
		preview = string(runes[:previewLength]) + "..."
	}

	p.printBox(fmt.Sprintf("%s - %s", result.AgentLabel, result.TaskLabel), preview)
}
