package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// stageStore is the slice of DB the hook needs.
type stageStore interface {
	SaveStageResult(ctx context.Context, runID uuid.UUID, stage, agentLabel, taskLabel, output string) error
}

// StoreHook mirrors completed stage outputs to the database. Persistence is
// best effort: failures are reported as warnings and never abort the run, so
// it always returns a nil error.
type StoreHook struct {
	store stageStore
}

// NewStoreHook creates a stage hook backed by the given database.
func NewStoreHook(database *DB) *StoreHook {
	return &StoreHook{store: database}
}

// OnStageComplete persists one stage output, warning on failure.
func (h *StoreHook) OnStageComplete(ctx context.Context, runID string, result types.StageResult) error {
	id, err := uuid.Parse(runID)
	if err != nil {
		fmt.Printf("Warning: Failed to persist stage %s: invalid run ID %q\n", result.Stage, runID)
		return nil
	}

	if err := h.store.SaveStageResult(ctx, id, string(result.Stage), result.AgentLabel, result.TaskLabel, result.Output); err != nil {
		fmt.Printf("Warning: Failed to persist stage %s: %v\n", result.Stage, err)
	}
	return nil
}
