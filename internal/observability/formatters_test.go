package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

func TestPrintListings(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintListings([]types.JobListing{
		{Title: "Data Engineer", Company: "Acme", Location: "Austin", Salary: "120000"},
		{Title: "Platform Engineer", Company: "Globex", Location: "Remote", Salary: types.PlaceholderNoSalary},
	})

	out := buf.String()
	assert.Contains(t, out, "Job Listings (2)")
	assert.Contains(t, out, "Data Engineer")
	assert.Contains(t, out, "Acme - Austin")
	assert.Contains(t, out, "120000")
	// Placeholder salaries are omitted from the summary.
	assert.NotContains(t, out, types.PlaceholderNoSalary)
}

func TestPrintListingsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintListings(nil)
	assert.Empty(t, buf.String())
}

func TestPrintListingsTruncatesLong(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	listings := make([]types.JobListing, 8)
	for i := range listings {
		listings[i] = types.JobListing{Title: "Engineer", Company: "Acme", Location: "Austin", Salary: types.PlaceholderNoSalary}
	}
	printer.PrintListings(listings)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintStageResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintStageResult(types.StageResult{
		Stage:      types.StageSkillsGap,
		AgentLabel: "Skills Development Advisor",
		TaskLabel:  "Skills Gap Analysis",
		Output:     "Learn Spark.",
	})

	out := buf.String()
	assert.Contains(t, out, "Skills Development Advisor - Skills Gap Analysis")
	assert.Contains(t, out, "Learn Spark.")
}

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintResume(&types.ResumeDocument{
		Path:    "resume.pdf",
		RawText: "hello",
		Status:  types.StatusParsed,
	})

	out := buf.String()
	assert.Contains(t, out, "resume.pdf")
	assert.Contains(t, out, "5 characters")
}
