package pipeline

import (
	"fmt"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// Stage defines one pipeline stage and the stages whose outputs it consumes.
type Stage struct {
	ID        types.StageID
	DependsOn []types.StageID
}

// Stages is the fixed stage graph in declared order. Every dependency refers
// to an earlier entry, so executing the slice front to back is a valid
// topological order. Interview preparation and career strategy share the same
// dependency set and are independent of each other.
var Stages = []Stage{
	{ID: types.StageSearch},
	{ID: types.StageSkillsGap, DependsOn: []types.StageID{types.StageSearch}},
	{ID: types.StageInterviewPrep, DependsOn: []types.StageID{types.StageSearch, types.StageSkillsGap}},
	{ID: types.StageCareerStrategy, DependsOn: []types.StageID{types.StageSearch, types.StageSkillsGap}},
}

// validateStages checks that every dependency names a stage declared earlier
// in the graph. Called once per run so a bad edit to Stages fails loudly
// instead of producing a stage with missing context.
func validateStages(stages []Stage) error {
	declared := make(map[types.StageID]bool, len(stages))
	for _, stage := range stages {
		if declared[stage.ID] {
			return fmt.Errorf("stage %q declared twice", stage.ID)
		}
		for _, dep := range stage.DependsOn {
			if !declared[dep] {
				return fmt.Errorf("stage %q depends on %q which is not declared earlier", stage.ID, dep)
			}
		}
		declared[stage.ID] = true
	}
	return nil
}

// dependencyResults returns the completed results for a stage's dependencies,
// in stage-completion order.
func dependencyResults(stage Stage, completed []types.StageResult) []types.StageResult {
	wanted := make(map[types.StageID]bool, len(stage.DependsOn))
	for _, dep := range stage.DependsOn {
		wanted[dep] = true
	}

	var deps []types.StageResult
	for _, result := range completed {
		if wanted[result.Stage] {
			deps = append(deps, result)
		}
	}
	return deps
}
