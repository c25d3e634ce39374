package usecase

import (
	"context"

	"trajmatch/internal/domain/entity"
)

// RouteUsecase saves and restores named trajectories.
type RouteUsecase interface {
	// SaveRoute stores the current trajectory under name.
	SaveRoute(ctx context.Context, name string) (*entity.Route, error)

	// LoadRoute stops any run and replaces the trajectory with the stored route.
	LoadRoute(ctx context.Context, name string) (*entity.Route, error)

	// DeleteRoute removes the stored route and clears the current trajectory.
	DeleteRoute(ctx context.Context, name string) error

	// ListRoutes returns the stored route names.
	ListRoutes(ctx context.Context) ([]string, error)

	// RouteQR renders a share QR code for an existing route.
	RouteQR(ctx context.Context, name string) ([]byte, error)
}
