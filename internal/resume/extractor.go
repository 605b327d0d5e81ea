// Package resume provides PDF resume text extraction with a two-stage backend fallback.
package resume

import (
	"fmt"
	"os"
	"strings"

	dslipak "github.com/dslipak/pdf"
	"github.com/ledongthuc/pdf"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// Extract reads the PDF at path and returns a ResumeDocument describing the
// outcome. It never returns an error: a missing file yields StatusNotFound and
// extraction problems yield StatusExtractionFailed, both with empty text, so
// the caller can degrade to non-personalized behavior.
//
// The primary backend is tried first; if it fails or yields only whitespace,
// the secondary backend is tried with the same per-page concatenation
// strategy. RawText is either the full concatenated text of every page or
// empty, never a partial write.
func Extract(path string) *types.ResumeDocument {
	doc := &types.ResumeDocument{Path: path}

	if _, err := os.Stat(path); err != nil {
		doc.Status = types.StatusNotFound
		return doc
	}

	text, err := extractPrimary(path)
	if err != nil || strings.TrimSpace(text) == "" {
		text, err = extractFallback(path)
	}

	if err != nil || strings.TrimSpace(text) == "" {
		doc.Status = types.StatusExtractionFailed
		return doc
	}

	doc.RawText = text
	doc.Status = types.StatusParsed
	return doc
}

// extractPrimary extracts the text layer page by page using ledongthuc/pdf.
// Pages that yield no text are skipped rather than failing the document.
func extractPrimary(path string) (text string, err error) {
	// Both backends are rsc/pdf forks and can panic on malformed input;
	// treat a panic as a backend failure so the fallback gets a chance.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("primary extraction panicked: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// extractFallback extracts the text layer page by page using dslipak/pdf.
func extractFallback(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fallback extraction panicked: %v", r)
		}
	}()

	r, err := dslipak.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
