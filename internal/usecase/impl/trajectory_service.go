package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "trajmatch/internal/delivery/context"
	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/trajectory"
	"trajmatch/internal/usecase"
)

type trajectoryService struct {
	logger     *slog.Logger
	store      *trajectory.Store
	simulation usecase.SimulationUsecase
}

// NewTrajectoryService creates a new trajectory editing service
func NewTrajectoryService(
	logger *slog.Logger,
	store *trajectory.Store,
	simulation usecase.SimulationUsecase,
) usecase.TrajectoryUsecase {
	return &trajectoryService{
		logger:     logger,
		store:      store,
		simulation: simulation,
	}
}

func (s *trajectoryService) ListPoints(_ context.Context) []entity.TrajectoryPoint {
	return s.store.Points()
}

func (s *trajectoryService) AddPoint(ctx context.Context, rec entity.PointRecord) (entity.TrajectoryPoint, error) {
	point, err := s.store.Append(rec)
	if err != nil {
		return entity.TrajectoryPoint{}, err
	}

	s.log(ctx).DebugContext(ctx, "Trajectory point added", slog.Int("index", s.store.Len()-1))

	return point, nil
}

func (s *trajectoryService) UpdatePoint(ctx context.Context, index int, patch trajectory.PointPatch) (entity.TrajectoryPoint, error) {
	point, err := s.store.Update(index, patch)
	if err != nil {
		return entity.TrajectoryPoint{}, err
	}

	s.log(ctx).DebugContext(ctx, "Trajectory point updated", slog.Int("index", index))

	return point, nil
}

func (s *trajectoryService) RemovePoint(ctx context.Context, index int) error {
	if err := s.store.Remove(index); err != nil {
		return err
	}

	s.log(ctx).DebugContext(ctx, "Trajectory point removed", slog.Int("index", index))

	return nil
}

func (s *trajectoryService) ReplacePoints(ctx context.Context, recs []entity.PointRecord) error {
	if err := s.store.ReplaceAll(recs); err != nil {
		return err
	}

	s.log(ctx).InfoContext(ctx, "Trajectory replaced", slog.Int("points", len(recs)))

	return nil
}

// Reset mirrors the editor's reset markers action: the run is stopped before the points go.
func (s *trajectoryService) Reset(ctx context.Context) error {
	if err := s.simulation.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop simulation: %w", err)
	}
	s.store.Clear()

	s.log(ctx).InfoContext(ctx, "Trajectory reset")

	return nil
}

// log returns the request scoped logger when there is one.
func (s *trajectoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
