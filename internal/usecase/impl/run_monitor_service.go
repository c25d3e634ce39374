package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"trajmatch/config"
	deliverycontext "trajmatch/internal/delivery/context"
	"trajmatch/internal/domain/constants"
	"trajmatch/internal/domain/entity"
	domainerrors "trajmatch/internal/domain/errors"
	"trajmatch/internal/domain/repository"
	"trajmatch/internal/domain/service"
	"trajmatch/internal/errors"
	"trajmatch/internal/usecase"
)

type runMonitorService struct {
	// mu serialises the read-modify-write of Record within this process.
	mu      sync.Mutex
	logger  *slog.Logger
	runRepo repository.RunProgressRepository
	maxRuns int
}

// NewRunMonitorService creates the event folding service of the worker
func NewRunMonitorService(
	cfg *config.Config,
	logger *slog.Logger,
	runRepo repository.RunProgressRepository,
) usecase.RunMonitorUsecase {
	var maxRuns int
	if cfg.Worker != nil {
		maxRuns = cfg.Worker.MaxTrackedRuns
	}

	return &runMonitorService{
		logger:  logger,
		runRepo: runRepo,
		maxRuns: maxRuns,
	}
}

// Record folds one event into its run. Pub/Sub delivers at least once and
// ordering is only per run, so duplicates are dropped and a late event never
// rolls the snapshot fields back.
func (s *runMonitorService) Record(ctx context.Context, event *service.SimulationEvent) error {
	if event == nil || event.RunID == "" || event.EventID == "" || event.Type == "" {
		return domainerrors.ErrInvalidEvent.WithDetails("event_id, run_id and type are required")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("run_id", event.RunID),
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	fresh, err := s.runRepo.MarkEventSeen(ctx, event.RunID, event.EventID)
	if err != nil {
		return err
	}
	if !fresh {
		logger.DebugContext(ctx, "Duplicate event ignored")

		return nil
	}

	progress, err := s.runRepo.FindRun(ctx, event.RunID)
	if errors.Is(err, repository.ErrRunNotFound) {
		progress = &entity.RunProgress{
			RunID:     event.RunID,
			StartedAt: event.OccurredAt,
		}
	} else if err != nil {
		return err
	}

	applyEvent(progress, event)

	if err := s.runRepo.SaveRun(ctx, progress); err != nil {
		return err
	}

	switch event.Type {
	case constants.EventSimulationFailed:
		logger.WarnContext(ctx, "Run failed",
			slog.Int("request_idx", event.RequestIdx),
			slog.String("error", event.Error),
		)
	case constants.EventSimulationCompleted, constants.EventSimulationStopped:
		logger.InfoContext(ctx, "Run finished",
			slog.String("state", string(progress.State)),
			slog.Int("at_idx", progress.AtIdx),
			slog.Int("gap_count", progress.GapCount),
			slog.Int("event_count", progress.EventCount),
		)
	default:
		logger.DebugContext(ctx, "Event recorded", slog.Int("at_idx", progress.AtIdx))
	}

	return nil
}

func applyEvent(progress *entity.RunProgress, event *service.SimulationEvent) {
	progress.EventCount++
	if event.Type == constants.EventConnectionGap {
		progress.GapCount++
	}
	if event.OccurredAt.Before(progress.StartedAt) {
		progress.StartedAt = event.OccurredAt
	}

	switch event.Type {
	case constants.EventSimulationCompleted, constants.EventSimulationFailed, constants.EventSimulationStopped:
		if progress.FinishedAt == nil {
			finished := event.OccurredAt
			progress.FinishedAt = &finished
		}
		if event.Error != "" {
			progress.LastError = event.Error
		}
	}

	if event.OccurredAt.Before(progress.UpdatedAt) {
		return
	}
	progress.UpdatedAt = event.OccurredAt
	progress.LastEventType = event.Type
	if event.State != "" {
		progress.State = entity.SimulationState(event.State)
	}
	progress.AtIdx = event.AtIdx
	progress.TrajectoryLength = event.TrajectoryLength
	progress.CommittedCount = event.CommittedCount
	progress.ProvisionalCount = event.ProvisionalCount
}

func (s *runMonitorService) GetRun(ctx context.Context, runID string) (entity.RunProgress, error) {
	progress, err := s.runRepo.FindRun(ctx, runID)
	if errors.Is(err, repository.ErrRunNotFound) {
		return entity.RunProgress{}, domainerrors.ErrRunNotFound.WithDetails(runID)
	}
	if err != nil {
		return entity.RunProgress{}, fmt.Errorf("failed to get run: %w", err)
	}

	return *progress, nil
}

func (s *runMonitorService) ListRuns(ctx context.Context) ([]entity.RunProgress, error) {
	runs, err := s.runRepo.ListRuns(ctx, s.maxRuns)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	out := make([]entity.RunProgress, 0, len(runs))
	for _, run := range runs {
		out = append(out, *run)
	}

	return out, nil
}
