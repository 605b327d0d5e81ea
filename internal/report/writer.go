// Package report writes the plain-text advice report that accompanies a
// pipeline run.
package report

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// Writer mirrors stage outputs to a plain-text report file. Begin truncates
// the file, so a failed run leaves a partial report rather than the previous
// run's content. Stage sections are appended in stage-completion order.
type Writer struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewWriter creates a report writer for the given path. Nothing is written
// until Begin is called.
func NewWriter(path string) *Writer {
	return &Writer{path: path, now: time.Now}
}

// Path returns the report file location.
func (w *Writer) Path() string { return w.path }

// Begin truncates the report file and writes the run header.
func (w *Writer) Begin(query types.JobQuery, runID string, resumeUsed bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	usedLabel := "No"
	if resumeUsed {
		usedLabel = "Yes"
	}

	var sb strings.Builder
	sb.WriteString("Job Search and Career Advice Report\n")
	sb.WriteString(fmt.Sprintf("Generated for: %s in %s\n", query.Role, query.Location))
	sb.WriteString(fmt.Sprintf("Generated at: %s\n", w.now().Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Run ID: %s\n", runID))
	sb.WriteString(fmt.Sprintf("Resume used: %s\n", usedLabel))
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	if err := os.WriteFile(w.path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	return nil
}

// OnStageComplete appends one stage's output as a labeled section. It
// implements pipeline.StageHook; a write failure aborts the run.
func (w *Writer) OnStageComplete(_ context.Context, _ string, result types.StageResult) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening report file: %w", err)
	}
	defer f.Close()

	section := fmt.Sprintf("=== %s - %s ===\n%s\n\n", result.AgentLabel, result.TaskLabel, result.Output)
	if _, err := f.WriteString(section); err != nil {
		return fmt.Errorf("appending report section: %w", err)
	}
	return nil
}
