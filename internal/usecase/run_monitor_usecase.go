package usecase

import (
	"context"

	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/service"
)

// RunMonitorUsecase folds delivered simulation events into per-run progress.
type RunMonitorUsecase interface {
	// Record applies one event. Redelivered events are ignored.
	Record(ctx context.Context, event *service.SimulationEvent) error

	// GetRun returns the progress of one run.
	GetRun(ctx context.Context, runID string) (entity.RunProgress, error)

	// ListRuns returns tracked runs, most recently updated first.
	ListRuns(ctx context.Context) ([]entity.RunProgress, error)
}
