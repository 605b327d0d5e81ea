// Package types provides type definitions for structured data used throughout the job search agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExtractionStatus reports the outcome of resume text extraction
type ExtractionStatus string

// Extraction outcomes. A ResumeDocument always carries exactly one of these.
const (
	// StatusParsed means the full text of every page was extracted
	StatusParsed ExtractionStatus = "parsed"
	// StatusNotFound means the resume path does not reference an existing file
	StatusNotFound ExtractionStatus = "not_found"
	// StatusExtractionFailed means both extraction backends failed or yielded only whitespace
	StatusExtractionFailed ExtractionStatus = "extraction_failed"
)

// ResumeDocument is the result of resume ingestion. It is created once at
// startup and consumed read-only by every later stage. RawText is either the
// complete concatenated text of all pages or empty; it is never partially
// written.
type ResumeDocument struct {
	Path    string           `json:"path"`
	RawText string           `json:"raw_text"`
	Status  ExtractionStatus `json:"status"`
}

// Parsed reports whether usable resume text is available for personalization.
func (d *ResumeDocument) Parsed() bool {
	return d != nil && d.Status == StatusParsed
}
