package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "trajmatch/internal/delivery/context"
	"trajmatch/internal/domain/entity"
	domainerrors "trajmatch/internal/domain/errors"
	"trajmatch/internal/domain/repository"
	"trajmatch/internal/domain/service"
	"trajmatch/internal/domain/trajectory"
	"trajmatch/internal/errors"
	"trajmatch/internal/usecase"
)

type routeService struct {
	logger     *slog.Logger
	routeRepo  repository.RouteRepository
	store      *trajectory.Store
	simulation usecase.SimulationUsecase
	qrcodeSvc  service.QRCodeService
}

// NewRouteService creates a new route persistence service
func NewRouteService(
	logger *slog.Logger,
	routeRepo repository.RouteRepository,
	store *trajectory.Store,
	simulation usecase.SimulationUsecase,
	qrcodeSvc service.QRCodeService,
) usecase.RouteUsecase {
	return &routeService{
		logger:     logger,
		routeRepo:  routeRepo,
		store:      store,
		simulation: simulation,
		qrcodeSvc:  qrcodeSvc,
	}
}

// SaveRoute stores the current trajectory under name
func (s *routeService) SaveRoute(ctx context.Context, name string) (*entity.Route, error) {
	name, err := normalizeRouteName(name)
	if err != nil {
		return nil, err
	}

	points := s.store.Points()
	if len(points) == 0 {
		return nil, domainerrors.ErrEmptyRoute
	}

	route := &entity.Route{
		Name:      name,
		Points:    points,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.routeRepo.SaveRoute(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to save route: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "Route saved",
		slog.String("route", name),
		slog.Int("points", len(points)),
	)

	return route, nil
}

// LoadRoute stops any run and replaces the trajectory with the stored route
func (s *routeService) LoadRoute(ctx context.Context, name string) (*entity.Route, error) {
	name, err := normalizeRouteName(name)
	if err != nil {
		return nil, err
	}

	route, err := s.findRoute(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.simulation.Stop(ctx); err != nil {
		return nil, fmt.Errorf("failed to stop simulation: %w", err)
	}

	recs := entity.Records(route.Points)
	if err := s.store.ReplaceAll(recs); err != nil {
		return nil, errors.Wrapf(err, "stored route %q is invalid", name)
	}

	s.log(ctx).InfoContext(ctx, "Route loaded",
		slog.String("route", name),
		slog.Int("points", len(recs)),
	)

	return route, nil
}

// DeleteRoute removes the stored route and clears the current trajectory, as the editor does
func (s *routeService) DeleteRoute(ctx context.Context, name string) error {
	name, err := normalizeRouteName(name)
	if err != nil {
		return err
	}

	if err := s.routeRepo.DeleteRoute(ctx, name); err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return domainerrors.ErrRouteNotFound.WithDetails(name)
		}

		return fmt.Errorf("failed to delete route: %w", err)
	}

	if err := s.simulation.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop simulation: %w", err)
	}
	s.store.Clear()

	s.log(ctx).InfoContext(ctx, "Route deleted", slog.String("route", name))

	return nil
}

// ListRoutes returns the stored route names
func (s *routeService) ListRoutes(ctx context.Context) ([]string, error) {
	names, err := s.routeRepo.ListRouteNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	return names, nil
}

// RouteQR renders a share QR code for an existing route
func (s *routeService) RouteQR(ctx context.Context, name string) ([]byte, error) {
	name, err := normalizeRouteName(name)
	if err != nil {
		return nil, err
	}

	if _, err := s.findRoute(ctx, name); err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateRouteQR(name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate route QR code: %w", err)
	}

	return png, nil
}

func (s *routeService) findRoute(ctx context.Context, name string) (*entity.Route, error) {
	route, err := s.routeRepo.FindRouteByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound.WithDetails(name)
		}

		return nil, fmt.Errorf("failed to find route: %w", err)
	}

	return route, nil
}

func normalizeRouteName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerrors.ErrRouteNameRequired
	}

	return name, nil
}

// log returns the request scoped logger when there is one.
func (s *routeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
