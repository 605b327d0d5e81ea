package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/llm"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// inputSchema validates the JSON input accepted by the tool-call surface.
const inputSchema = `{
	"type": "object",
	"properties": {
		"role": {"type": "string", "minLength": 1},
		"location": {"type": "string", "minLength": 1},
		"num_results": {"type": "integer", "minimum": 1}
	},
	"required": ["role", "location"],
	"additionalProperties": false
}`

// Searcher is the capability the pipeline depends on for job searches. The
// production implementation is *Client; tests substitute fakes.
type Searcher interface {
	Search(ctx context.Context, query types.JobQuery) ([]types.JobListing, error)
}

// SearchTool exposes the listings search as a typed capability registered with
// the pipeline runner. The JSON Invoke surface exists for structured
// tool-calling and validates its input against a schema before dispatch.
type SearchTool struct {
	searcher    Searcher
	fetcher     PostingFetcher
	maxPostings int
}

// ToolOption customizes a SearchTool.
type ToolOption func(*SearchTool)

// NewSearchTool wraps a Searcher as a pipeline tool.
func NewSearchTool(searcher Searcher, opts ...ToolOption) *SearchTool {
	t := &SearchTool{searcher: searcher}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name identifies the tool to the agent layer.
func (t *SearchTool) Name() string { return "Job Search Tool" }

// Search performs a typed search and renders the outcome as text for the
// requesting stage. Remote and configuration failures do not abort the
// pipeline: they are returned as descriptive text the stage can reason about.
func (t *SearchTool) Search(ctx context.Context, query types.JobQuery) string {
	listings, err := t.searcher.Search(ctx, query)
	if err != nil {
		return describeSearchError(err)
	}
	return t.enrich(ctx, FormatListings(listings), listings)
}

// Invoke is the structured tool-call surface: it validates inputJSON against
// the input schema, then dispatches to Search. Input may arrive wrapped in a
// markdown code fence when emitted by an LLM; the fence is stripped before
// validation. Only malformed input produces an error (*InvalidInputError);
// every other outcome is descriptive text.
func (t *SearchTool) Invoke(ctx context.Context, inputJSON string) (string, error) {
	inputJSON = llm.CleanJSONBlock(inputJSON)

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(inputSchema),
		gojsonschema.NewStringLoader(inputJSON),
	)
	if err != nil {
		return "", &InvalidInputError{Detail: fmt.Sprintf("input is not valid JSON: %v", err)}
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return "", &InvalidInputError{Detail: strings.Join(details, "; ")}
	}

	var query types.JobQuery
	if err := json.Unmarshal([]byte(inputJSON), &query); err != nil {
		return "", &InvalidInputError{Detail: err.Error()}
	}
	if query.ResultCount <= 0 {
		query.ResultCount = types.DefaultResultCount
	}

	return t.Search(ctx, query), nil
}

// describeSearchError turns a search failure into the explanatory message the
// stage receives in place of listings.
func describeSearchError(err error) string {
	if errors.Is(err, ErrNoResults) {
		return ErrNoResults.Error()
	}
	return fmt.Sprintf("Job search failed: %v. Provide recommendations without live listings.", err)
}
