package repository

import (
	"context"
	"errors"

	"trajmatch/internal/domain/entity"
)

// ErrRunNotFound is returned when no progress is tracked for a run id.
var ErrRunNotFound = errors.New("run not found")

// RunProgressRepository keeps the progress the event worker has folded per run.
type RunProgressRepository interface {
	// MarkEventSeen records eventID under runID and reports whether it was new.
	MarkEventSeen(ctx context.Context, runID, eventID string) (bool, error)

	// SaveRun creates or overwrites the progress of progress.RunID.
	SaveRun(ctx context.Context, progress *entity.RunProgress) error

	// FindRun returns ErrRunNotFound when the run is unknown or was forgotten.
	FindRun(ctx context.Context, runID string) (*entity.RunProgress, error)

	// ListRuns returns at most limit runs, most recently updated first.
	ListRuns(ctx context.Context, limit int) ([]*entity.RunProgress, error)
}
