// Package pipeline provides the high-level orchestration for the career advice process.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/agents"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/observability"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/tasks"
	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// ListingSource produces the formatted listings text for the search stage.
// Failures surface as descriptive text rather than errors, so a remote outage
// degrades the advice instead of aborting the run.
type ListingSource interface {
	Search(ctx context.Context, query types.JobQuery) string
}

// StageHook observes completed stages in stage-completion order. A hook error
// aborts the run; hooks that should merely degrade must swallow their own
// failures.
type StageHook interface {
	OnStageComplete(ctx context.Context, runID string, result types.StageResult) error
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	// RunID labels the run for hooks and reports; generated when empty.
	RunID     string
	Query     types.JobQuery
	Resume    *types.ResumeDocument
	Completer agents.Completer
	Source    ListingSource
	Hooks     []StageHook
	Parallel  bool
	Verbose   bool
}

// RunResult is the outcome of a full pipeline run.
type RunResult struct {
	RunID   string
	Results []types.StageResult
}

// stageTitles are the progress messages printed as each stage starts.
var stageTitles = map[types.StageID]string{
	types.StageSearch:         "Searching live job listings",
	types.StageSkillsGap:      "Analyzing skill gaps",
	types.StageInterviewPrep:  "Preparing interview guidance",
	types.StageCareerStrategy: "Building career strategy",
}

// Run executes all stages against opts.Completer and returns the accumulated
// results in declared stage order. The first completion failure aborts the
// run; results are delivered to hooks as each stage finishes.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if opts.Completer == nil {
		return nil, fmt.Errorf("completer is required")
	}
	if opts.Source == nil {
		return nil, fmt.Errorf("listing source is required")
	}
	if err := validateStages(Stages); err != nil {
		return nil, err
	}

	printer := observability.NewPrinter(os.Stdout)
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	run := &RunResult{RunID: runID}
	total := len(Stages)

	for i := 0; i < len(Stages); {
		batch := readyBatch(Stages[i:], run.Results)

		if opts.Parallel && len(batch) > 1 {
			outputs := make([]types.StageResult, len(batch))
			g, gCtx := errgroup.WithContext(ctx)
			for j, stage := range batch {
				j, stage := j, stage
				fmt.Printf("Step %d/%d: %s...\n", i+j+1, total, stageTitles[stage.ID])
				g.Go(func() error {
					result, err := executeStage(gCtx, stage, opts, run.Results)
					if err != nil {
						return err
					}
					outputs[j] = result
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return nil, err
			}
			// Deliver in declared order regardless of completion order.
			for _, result := range outputs {
				if err := deliver(ctx, run, result, opts, printer); err != nil {
					return nil, err
				}
			}
		} else {
			for j, stage := range batch {
				fmt.Printf("Step %d/%d: %s...\n", i+j+1, total, stageTitles[stage.ID])
				result, err := executeStage(ctx, stage, opts, run.Results)
				if err != nil {
					return nil, err
				}
				if err := deliver(ctx, run, result, opts, printer); err != nil {
					return nil, err
				}
			}
		}

		i += len(batch)
	}

	return run, nil
}

// readyBatch returns the longest prefix of remaining stages whose dependencies
// are all already completed. Stages inside a batch are independent of each
// other and may run concurrently.
func readyBatch(remaining []Stage, completed []types.StageResult) []Stage {
	done := make(map[types.StageID]bool, len(completed))
	for _, result := range completed {
		done[result.Stage] = true
	}

	var batch []Stage
	for _, stage := range remaining {
		ready := true
		for _, dep := range stage.DependsOn {
			if !done[dep] {
				ready = false
				break
			}
		}
		if !ready {
			break
		}
		batch = append(batch, stage)
	}

	if len(batch) == 0 {
		// Dependencies are validated up front, so the first remaining stage
		// is always ready. Guard anyway to keep the caller loop terminating.
		batch = remaining[:1]
	}
	return batch
}

// executeStage assembles the stage's task description and runs it against the
// completer. The search stage additionally invokes the listing source first.
func executeStage(ctx context.Context, stage Stage, opts RunOptions, completed []types.StageResult) (types.StageResult, error) {
	var description string
	if stage.ID == types.StageSearch {
		listings := opts.Source.Search(ctx, opts.Query)
		description = tasks.BuildSearchTask(opts.Query, listings, opts.Resume)
	} else {
		description = tasks.BuildTask(stage.ID, opts.Resume, dependencyResults(stage, completed))
	}

	agent := agents.ForStage(stage.ID)
	if opts.Resume.Parsed() {
		agent = agent.WithResumeContext(opts.Resume.RawText)
	}
	output, err := opts.Completer.Complete(ctx, agent, description)
	if err != nil {
		return types.StageResult{}, fmt.Errorf("stage %s failed: %w", stage.ID, err)
	}

	return types.StageResult{
		Stage:      stage.ID,
		AgentLabel: agent.Role,
		TaskLabel:  tasks.TaskLabel(stage.ID),
		Output:     output,
	}, nil
}

// deliver appends a completed result and notifies hooks.
func deliver(ctx context.Context, run *RunResult, result types.StageResult, opts RunOptions, printer *observability.Printer) error {
	run.Results = append(run.Results, result)
	if opts.Verbose {
		printer.PrintStageResult(result)
	}
	for _, hook := range opts.Hooks {
		if err := hook.OnStageComplete(ctx, run.RunID, result); err != nil {
			return fmt.Errorf("stage hook failed after %s: %w", result.Stage, err)
		}
	}
	return nil
}
