package types

// StageID identifies one of the four pipeline stages.
type StageID string

// Pipeline stages in declared order. Later stages depend on the textual
// output of earlier ones; see pipeline.Stages for the dependency graph.
const (
	StageSearch         StageID = "search"
	StageSkillsGap      StageID = "skills_gap"
	StageInterviewPrep  StageID = "interview_prep"
	StageCareerStrategy StageID = "career_strategy"
)

// StageResult is the output of one completed pipeline stage. Results are
// accumulated append-only in stage-completion order and mirrored to the
// report file as each stage finishes.
type StageResult struct {
	Stage      StageID `json:"stage"`
	AgentLabel string  `json:"agent_label"`
	TaskLabel  string  `json:"task_label"`
	Output     string  `json:"output"`
}
