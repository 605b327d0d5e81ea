package types

// DefaultResultCount is the number of listings requested when a query does not specify one.
const DefaultResultCount = 5

// Literal placeholders used when a listing field is absent in the API response.
const (
	PlaceholderNA            = "N/A"
	PlaceholderNoSalary      = "Not specified"
	PlaceholderNoDescription = "No description"
)

// ExcerptLength is the maximum number of description characters kept in a
// listing excerpt before the ellipsis marker is appended.
const ExcerptLength = 300

// JobQuery describes one search against the listings API. Constructed per
// invocation; immutable.
type JobQuery struct {
	Role        string `json:"role" validate:"required"`
	Location    string `json:"location" validate:"required"`
	ResultCount int    `json:"num_results" validate:"gte=0"`
}

// NewJobQuery builds a query, applying the default result count when n is not
// positive.
func NewJobQuery(role, location string, n int) JobQuery {
	if n <= 0 {
		n = DefaultResultCount
	}
	return JobQuery{Role: role, Location: location, ResultCount: n}
}

// JobListing is one normalized record from the listings API. Ordering follows
// the API response order; missing fields hold the literal placeholders above.
// DescriptionExcerpt is at most ExcerptLength+3 characters when the source
// description is non-empty, or PlaceholderNoDescription otherwise.
type JobListing struct {
	Title              string `json:"title"`
	Company            string `json:"company"`
	Location           string `json:"location"`
	Salary             string `json:"salary"`
	DescriptionExcerpt string `json:"description"`
	URL                string `json:"url"`
}
