package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// fakeSearcher returns canned listings or a canned error.
type fakeSearcher struct {
	listings  []types.JobListing
	err       error
	lastQuery types.JobQuery
}

func (f *fakeSearcher) Search(_ context.Context, query types.JobQuery) ([]types.JobListing, error) {
	f.lastQuery = query
	return f.listings, f.err
}

func sampleListings() []types.JobListing {
	return []types.JobListing{
		{
			Title:              "Backend Engineer",
			Company:            "Initech",
			Location:           "Austin, TX",
			Salary:             "120000",
			DescriptionExcerpt: "Own the billing service.",
			URL:                "https://example.com/job/7",
		},
	}
}

func TestSearchTool_Search(t *testing.T) {
	searcher := &fakeSearcher{listings: sampleListings()}
	tool := NewSearchTool(searcher)

	out := tool.Search(context.Background(), types.NewJobQuery("Backend Engineer", "Austin", 5))

	assert.Contains(t, out, "Title: Backend Engineer")
	assert.Contains(t, out, "Company: Initech")
	assert.Contains(t, out, "URL: https://example.com/job/7")
}

func TestSearchTool_SearchErrorBecomesText(t *testing.T) {
	searcher := &fakeSearcher{err: &HTTPError{StatusCode: 500, Status: "500 Internal Server Error"}}
	tool := NewSearchTool(searcher)

	out := tool.Search(context.Background(), types.NewJobQuery("Engineer", "Berlin", 5))

	assert.Contains(t, out, "Job search failed")
	assert.Contains(t, out, "500")
}

func TestSearchTool_NoResultsText(t *testing.T) {
	searcher := &fakeSearcher{err: ErrNoResults}
	tool := NewSearchTool(searcher)

	out := tool.Search(context.Background(), types.NewJobQuery("Engineer", "Berlin", 5))
	assert.Equal(t, ErrNoResults.Error(), out)
}

func TestSearchTool_Invoke_ValidInput(t *testing.T) {
	searcher := &fakeSearcher{listings: sampleListings()}
	tool := NewSearchTool(searcher)

	out, err := tool.Invoke(context.Background(), `{"role": "Backend Engineer", "location": "Austin", "num_results": 3}`)
	require.NoError(t, err)
	assert.Contains(t, out, "Backend Engineer")
	assert.Equal(t, 3, searcher.lastQuery.ResultCount)
}

func TestSearchTool_Invoke_DefaultsResultCount(t *testing.T) {
	searcher := &fakeSearcher{listings: sampleListings()}
	tool := NewSearchTool(searcher)

	_, err := tool.Invoke(context.Background(), `{"role": "Engineer", "location": "Berlin"}`)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultResultCount, searcher.lastQuery.ResultCount)
}

func TestSearchTool_Invoke_FencedInput(t *testing.T) {
	searcher := &fakeSearcher{listings: sampleListings()}
	tool := NewSearchTool(searcher)

	// LLMs often wrap tool-call JSON in a markdown code fence.
	out, err := tool.Invoke(context.Background(), "```json\n{\"role\": \"Engineer\", \"location\": \"Berlin\", \"num_results\": 2}\n```")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "Engineer", searcher.lastQuery.Role)
	assert.Equal(t, 2, searcher.lastQuery.ResultCount)
}

func TestSearchTool_Invoke_MalformedInput(t *testing.T) {
	tool := NewSearchTool(&fakeSearcher{})

	tests := []struct {
		name  string
		input string
	}{
		{name: "not JSON", input: `role=Engineer`},
		{name: "missing location", input: `{"role": "Engineer"}`},
		{name: "wrong type", input: `{"role": "Engineer", "location": "Berlin", "num_results": "five"}`},
		{name: "unknown field", input: `{"role": "Engineer", "location": "Berlin", "page": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tool.Invoke(context.Background(), tt.input)
			require.Error(t, err)
			assert.Empty(t, out)

			var inputErr *InvalidInputError
			assert.ErrorAs(t, err, &inputErr)
		})
	}
}

func TestFormatListings_Empty(t *testing.T) {
	assert.Equal(t, ErrNoResults.Error(), FormatListings(nil))
}

func TestDescribeSearchError_Wrapped(t *testing.T) {
	err := &RequestError{Cause: errors.New("connection refused")}
	out := describeSearchError(err)
	assert.Contains(t, out, "connection refused")
}
