// Package tasks assembles per-stage task descriptions from static templates,
// the candidate's resume, and prior stage outputs.
package tasks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/prompts"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// NoResumeFallback is appended in place of resume text when no parsed resume
// is available, steering the stage toward generic recommendations.
const NoResumeFallback = "No resume provided - provide general recommendations."

// templateKeys maps each stage to its template in tasks.json.
var templateKeys = map[types.StageID]string{
	types.StageSearch:         "search",
	types.StageSkillsGap:      "skills-gap",
	types.StageInterviewPrep:  "interview-prep",
	types.StageCareerStrategy: "career-strategy",
}

// taskLabels are the human-readable task names used in stage results and the
// report file.
var taskLabels = map[types.StageID]string{
	types.StageSearch:         "Job Search",
	types.StageSkillsGap:      "Skills Gap Analysis",
	types.StageInterviewPrep:  "Interview Preparation",
	types.StageCareerStrategy: "Career Strategy",
}

// TaskLabel returns the task name for a stage.
func TaskLabel(stage types.StageID) string {
	return taskLabels[stage]
}

// BuildSearchTask assembles the search stage description: the static search
// instructions with the query parameters and the formatted listings spliced
// in, followed by the resume clause.
func BuildSearchTask(query types.JobQuery, listings string, resume *types.ResumeDocument) string {
	template := prompts.MustGet("tasks.json", templateKeys[types.StageSearch])
	description := prompts.Format(template, map[string]string{
		"Role":        query.Role,
		"Location":    query.Location,
		"ResultCount": strconv.Itoa(query.ResultCount),
		"Listings":    listings,
	})
	return description + "\n\n" + resumeClause(resume)
}

// BuildTask assembles a non-search stage description: the stage's static
// instructions, the resume clause, and the full output of every dependency
// stage verbatim, in stage-completion order. No truncation or token budgeting
// is performed.
func BuildTask(stage types.StageID, resume *types.ResumeDocument, dependencies []types.StageResult) string {
	template := prompts.MustGet("tasks.json", templateKeys[stage])

	var sb strings.Builder
	sb.WriteString(template)
	sb.WriteString("\n\n")
	sb.WriteString(resumeClause(resume))

	for _, dep := range dependencies {
		sb.WriteString(fmt.Sprintf("\n\nContext from %s (%s):\n%s", dep.AgentLabel, dep.TaskLabel, dep.Output))
	}

	return sb.String()
}

// resumeClause returns the resume text verbatim when present, or the literal
// fallback sentence when it is not.
func resumeClause(resume *types.ResumeDocument) string {
	if resume != nil && resume.Parsed() {
		return "Use the candidate resume content for context:\n" + resume.RawText
	}
	return NoResumeFallback
}
