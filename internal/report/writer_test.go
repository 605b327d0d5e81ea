package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

func testQuery() types.JobQuery {
	return types.NewJobQuery("Data Engineer", "Austin", 5)
}

func TestBeginWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task_output.txt")
	writer := NewWriter(path)
	writer.now = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }

	require.NoError(t, writer.Begin(testQuery(), "run-123", true))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(content)
	assert.Contains(t, out, "Job Search and Career Advice Report")
	assert.Contains(t, out, "Generated for: Data Engineer in Austin")
	assert.Contains(t, out, "2026-03-14T09:30:00Z")
	assert.Contains(t, out, "Run ID: run-123")
	assert.Contains(t, out, "Resume used: Yes")
}

func TestBeginTruncatesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task_output.txt")
	require.NoError(t, os.WriteFile(path, []byte("leftover from last run"), 0o644))

	writer := NewWriter(path)
	require.NoError(t, writer.Begin(testQuery(), "run-456", false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "leftover")
	assert.Contains(t, string(content), "Resume used: No")
}

func TestOnStageCompleteAppendsSectionsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task_output.txt")
	writer := NewWriter(path)
	require.NoError(t, writer.Begin(testQuery(), "run-789", false))

	ctx := context.Background()
	require.NoError(t, writer.OnStageComplete(ctx, "run-789", types.StageResult{
		Stage:      types.StageSearch,
		AgentLabel: "Senior Job Search Specialist",
		TaskLabel:  "Job Search",
		Output:     "Found three listings.",
	}))
	require.NoError(t, writer.OnStageComplete(ctx, "run-789", types.StageResult{
		Stage:      types.StageSkillsGap,
		AgentLabel: "Personalized Skills Development Advisor",
		TaskLabel:  "Skills Gap Analysis",
		Output:     "Learn Spark.",
	}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(content)

	first := "=== Senior Job Search Specialist - Job Search ===\nFound three listings."
	second := "=== Personalized Skills Development Advisor - Skills Gap Analysis ===\nLearn Spark."
	assert.Contains(t, out, first)
	assert.Contains(t, out, second)
	assert.Less(t, strings.Index(out, first), strings.Index(out, second))
}

func TestOnStageCompleteFailsOnUnwritablePath(t *testing.T) {
	writer := NewWriter(filepath.Join(t.TempDir(), "missing", "task_output.txt"))

	err := writer.OnStageComplete(context.Background(), "run-1", types.StageResult{
		Stage:  types.StageSearch,
		Output: "x",
	})
	assert.Error(t, err)
}
