package jobs

import (
	"fmt"
	"strings"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// FormatListings renders listings as the text block consumed by the search
// stage prompt, one section per listing separated by "---".
func FormatListings(listings []types.JobListing) string {
	if len(listings) == 0 {
		return ErrNoResults.Error()
	}

	sections := make([]string, 0, len(listings))
	for _, listing := range listings {
		sections = append(sections, fmt.Sprintf(`
Title: %s
Company: %s
Location: %s
Salary: %s
Description: %s
URL: %s
---`,
			listing.Title,
			listing.Company,
			listing.Location,
			listing.Salary,
			listing.DescriptionExcerpt,
			listing.URL,
		))
	}

	return strings.Join(sections, "\n")
}
