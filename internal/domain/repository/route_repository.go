// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"trajmatch/internal/domain/entity"
)

// ErrRouteNotFound is returned when no route is stored under the requested name.
var ErrRouteNotFound = errors.New("route not found")

// RouteRepository persists named trajectories.
type RouteRepository interface {
	// SaveRoute creates or overwrites the route stored under route.Name.
	SaveRoute(ctx context.Context, route *entity.Route) error

	// FindRouteByName returns ErrRouteNotFound when nothing is stored under name.
	FindRouteByName(ctx context.Context, name string) (*entity.Route, error)

	// DeleteRoute removes the route. Deleting a missing route returns ErrRouteNotFound.
	DeleteRoute(ctx context.Context, name string) error

	// ListRouteNames returns every stored route name in ascending order.
	ListRouteNames(ctx context.Context) ([]string, error)
}
