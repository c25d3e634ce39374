package impl

import (
	"context"
	"testing"

	"trajmatch/internal/domain/entity"
	domainerrors "trajmatch/internal/domain/errors"
	"trajmatch/internal/domain/trajectory"
	mockUsecase "trajmatch/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrajectoryService_EditPoints(t *testing.T) {
	store := trajectory.NewStore()
	service := NewTrajectoryService(newDiscardLogger(), store, mockUsecase.NewMockSimulationUsecase(t))
	ctx := context.Background()

	_, err := service.AddPoint(ctx, entity.PointRecord{Lat: 10, Lng: 20, Time: "2024-03-01 10:00:00"})
	require.NoError(t, err)
	_, err = service.AddPoint(ctx, entity.PointRecord{Lat: 11, Lng: 21, Time: "2024-03-01 10:00:10"})
	require.NoError(t, err)

	lat := 12.5
	updated, err := service.UpdatePoint(ctx, 1, trajectory.PointPatch{Lat: &lat})
	require.NoError(t, err)
	assert.Equal(t, 12.5, updated.Latitude)

	require.NoError(t, service.RemovePoint(ctx, 0))
	points := service.ListPoints(ctx)
	require.Len(t, points, 1)
	assert.Equal(t, 12.5, points[0].Latitude)

	_, err = service.AddPoint(ctx, entity.PointRecord{Lat: 10, Lng: 20, Time: "2024-02-30 10:00:00"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPoint)
	assert.ErrorIs(t, service.RemovePoint(ctx, 5), domainerrors.ErrPointNotFound)
}

func TestTrajectoryService_ReplacePoints(t *testing.T) {
	store := newTestStore(t, 2)
	service := NewTrajectoryService(newDiscardLogger(), store, mockUsecase.NewMockSimulationUsecase(t))
	ctx := context.Background()

	err := service.ReplacePoints(ctx, []entity.PointRecord{
		{Lat: 1, Lng: 1, Time: "2024-03-01 10:00:00"},
		{Lat: 1, Lng: 1, Time: "not a time"},
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidPoint)
	assert.Equal(t, 2, store.Len())

	require.NoError(t, service.ReplacePoints(ctx, []entity.PointRecord{{Lat: 1, Lng: 1, Time: "2024-03-01 10:00:00"}}))
	assert.Equal(t, 1, store.Len())
}

func TestTrajectoryService_ResetStopsSimulation(t *testing.T) {
	store := newTestStore(t, 3)
	simulation := mockUsecase.NewMockSimulationUsecase(t)
	service := NewTrajectoryService(newDiscardLogger(), store, simulation)
	ctx := context.Background()
	simulation.EXPECT().Stop(ctx).Return(nil)

	require.NoError(t, service.Reset(ctx))

	assert.Zero(t, store.Len())
}

func TestTrajectoryService_ResetKeepsPointsWhenStopFails(t *testing.T) {
	store := newTestStore(t, 3)
	simulation := mockUsecase.NewMockSimulationUsecase(t)
	service := NewTrajectoryService(newDiscardLogger(), store, simulation)
	ctx := context.Background()
	simulation.EXPECT().Stop(ctx).Return(errors.New("deadline exceeded"))

	err := service.Reset(ctx)

	require.Error(t, err)
	assert.Equal(t, 3, store.Len())
}
