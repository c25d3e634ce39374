// Package memory keeps routes in process memory. It is the default store for
// local editing sessions and the reference behaviour for the other stores.
package memory

import (
	"context"
	"slices"
	"sync"

	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/repository"
)

type routeRepository struct {
	mu     sync.RWMutex
	routes map[string]*entity.Route
}

func NewRouteRepository() repository.RouteRepository {
	return &routeRepository{routes: make(map[string]*entity.Route)}
}

func (repo *routeRepository) SaveRoute(_ context.Context, route *entity.Route) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.routes[route.Name] = cloneRoute(route)

	return nil
}

func (repo *routeRepository) FindRouteByName(_ context.Context, name string) (*entity.Route, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	route, ok := repo.routes[name]
	if !ok {
		return nil, repository.ErrRouteNotFound
	}

	return cloneRoute(route), nil
}

func (repo *routeRepository) DeleteRoute(_ context.Context, name string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.routes[name]; !ok {
		return repository.ErrRouteNotFound
	}
	delete(repo.routes, name)

	return nil
}

func (repo *routeRepository) ListRouteNames(_ context.Context) ([]string, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	names := make([]string, 0, len(repo.routes))
	for name := range repo.routes {
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

func cloneRoute(route *entity.Route) *entity.Route {
	cloned := *route
	cloned.Points = slices.Clone(route.Points)

	return &cloned
}
