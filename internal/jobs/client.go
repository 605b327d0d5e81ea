// Package jobs provides the Adzuna listings API client and the typed search
// tool exposed to the agent pipeline.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/config"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// DefaultBaseURL is the Adzuna jobs search API base path.
const DefaultBaseURL = "https://api.adzuna.com/v1/api/jobs"

// DefaultTimeout is the HTTP request timeout for listings calls.
const DefaultTimeout = 30 * time.Second

// Client issues single-page searches against the listings API. One instance is
// safe for reuse; it holds no per-search state.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	baseURL    string
	country    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a listings API client. The country code defaults to "us"
// when the configuration leaves it empty.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	country := cfg.Country
	if country == "" {
		country = "us"
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		country:    country,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// adzunaResponse mirrors the listings API response envelope.
type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

// adzunaJob mirrors one listing object; every field is optional.
type adzunaJob struct {
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	SalaryMin   *float64 `json:"salary_min"`
	Description string   `json:"description"`
	RedirectURL string   `json:"redirect_url"`
}

// Search issues one synchronous GET to the listings API and maps the response
// into normalized JobListing values in API order. Missing credentials yield a
// *config.MissingCredentialsError; a non-2xx status yields an *HTTPError; a
// transport failure yields a *RequestError; an empty result set yields
// ErrNoResults. No pagination, no retries.
func (c *Client) Search(ctx context.Context, query types.JobQuery) ([]types.JobListing, error) {
	if err := c.cfg.CheckCredentials(); err != nil {
		return nil, err
	}

	resultCount := query.ResultCount
	if resultCount <= 0 {
		resultCount = types.DefaultResultCount
	}

	params := url.Values{}
	params.Set("app_id", c.cfg.AdzunaAppID)
	params.Set("app_key", c.cfg.AdzunaAPIKey)
	params.Set("results_per_page", strconv.Itoa(resultCount))
	params.Set("what", query.Role)
	params.Set("where", query.Location)
	params.Set("content-type", "application/json")

	endpoint := fmt.Sprintf("%s/%s/search/1?%s", c.baseURL, c.country, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &RequestError{Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &RequestError{Cause: fmt.Errorf("failed to decode listings response: %w", err)}
	}

	listings := make([]types.JobListing, 0, len(body.Results))
	for _, job := range body.Results {
		listings = append(listings, mapListing(job))
	}

	if len(listings) == 0 {
		return nil, ErrNoResults
	}

	return listings, nil
}

// mapListing normalizes one API record, defaulting every missing field to its
// literal placeholder rather than failing the whole call.
func mapListing(job adzunaJob) types.JobListing {
	listing := types.JobListing{
		Title:              orPlaceholder(job.Title, types.PlaceholderNA),
		Company:            orPlaceholder(job.Company.DisplayName, types.PlaceholderNA),
		Location:           orPlaceholder(job.Location.DisplayName, types.PlaceholderNA),
		Salary:             types.PlaceholderNoSalary,
		DescriptionExcerpt: excerpt(job.Description),
		URL:                orPlaceholder(job.RedirectURL, types.PlaceholderNA),
	}
	if job.SalaryMin != nil {
		listing.Salary = strconv.FormatFloat(*job.SalaryMin, 'f', -1, 64)
	}
	return listing
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// excerpt truncates a description to ExcerptLength characters plus an ellipsis
// marker, or returns the placeholder for an empty description.
func excerpt(description string) string {
	if description == "" {
		return types.PlaceholderNoDescription
	}
	runes := []rune(description)
	if len(runes) <= types.ExcerptLength {
		return description
	}
	return string(runes[:types.ExcerptLength]) + "..."
}
