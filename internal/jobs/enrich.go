package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// postingTextLimit caps how much fetched posting text is forwarded to the
// search stage per listing.
const postingTextLimit = 2000

// PostingFetcher retrieves the plain text of a job posting page. The
// production implementation wraps fetch.Posting.
type PostingFetcher func(ctx context.Context, url string) (string, error)

// WithPostingFetcher enables posting enrichment: when set, the tool fetches
// the full posting page for up to maxPostings of the returned listings and
// appends the text after the listings block. Fetch failures are skipped; the
// listings themselves are never withheld because an enrichment fetch failed.
func WithPostingFetcher(fetcher PostingFetcher, maxPostings int) ToolOption {
	return func(t *SearchTool) {
		t.fetcher = fetcher
		t.maxPostings = maxPostings
	}
}

// enrich appends fetched posting text for the leading listings.
func (t *SearchTool) enrich(ctx context.Context, formatted string, listings []types.JobListing) string {
	if t.fetcher == nil || t.maxPostings <= 0 {
		return formatted
	}

	var sb strings.Builder
	sb.WriteString(formatted)

	fetched := 0
	for _, listing := range listings {
		if fetched >= t.maxPostings {
			break
		}
		if listing.URL == "" || listing.URL == types.PlaceholderNA {
			continue
		}
		text, err := t.fetcher(ctx, listing.URL)
		if err != nil {
			continue
		}
		if runes := []rune(text); len(runes) > postingTextLimit {
			text = string(runes[:postingTextLimit]) + "..."
		}
		sb.WriteString(fmt.Sprintf("\n\nFull posting for %s at %s:\n%s", listing.Title, listing.Company, text))
		fetched++
	}

	return sb.String()
}
