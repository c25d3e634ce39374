package usecase

import (
	"context"

	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/trajectory"
)

// TrajectoryUsecase edits the trajectory the simulation reads from.
type TrajectoryUsecase interface {
	// ListPoints returns the current trajectory in index order.
	ListPoints(ctx context.Context) []entity.TrajectoryPoint

	// AddPoint appends a validated point.
	AddPoint(ctx context.Context, rec entity.PointRecord) (entity.TrajectoryPoint, error)

	// UpdatePoint edits the point at index in place.
	UpdatePoint(ctx context.Context, index int, patch trajectory.PointPatch) (entity.TrajectoryPoint, error)

	// RemovePoint deletes the point at index.
	RemovePoint(ctx context.Context, index int) error

	// ReplacePoints swaps the whole trajectory, all or nothing.
	ReplacePoints(ctx context.Context, recs []entity.PointRecord) error

	// Reset stops any run and clears every point.
	Reset(ctx context.Context) error
}
