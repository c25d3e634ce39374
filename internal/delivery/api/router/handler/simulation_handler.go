package handler

import (
	"context"
	"log/slog"
	"net/http"

	"trajmatch/internal/delivery/api/response"
	"trajmatch/internal/domain/frontier"
	"trajmatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SimulationHandlerParams holds dependencies for SimulationHandler, injected by Fx.
type SimulationHandlerParams struct {
	fx.In

	SimulationUC usecase.SimulationUsecase
	TrajectoryUC usecase.TrajectoryUsecase
	Logger       *slog.Logger
}

// SimulationHandler exposes the simulation controls and the matched path.
type SimulationHandler struct {
	simulationUC usecase.SimulationUsecase
	trajectoryUC usecase.TrajectoryUsecase
	logger       *slog.Logger
}

func NewSimulationHandler(params SimulationHandlerParams) *SimulationHandler {
	return &SimulationHandler{
		simulationUC: params.SimulationUC,
		trajectoryUC: params.TrajectoryUC,
		logger:       params.Logger,
	}
}

// SimulationResponse pairs the driver status with a frontier snapshot.
type SimulationResponse struct {
	Status   usecase.SimulationStatus `json:"status"`
	Frontier frontier.State           `json:"frontier"`
}

func (h *SimulationHandler) Start(c echo.Context) error {
	return h.command(c, h.simulationUC.Start)
}

func (h *SimulationHandler) Pause(c echo.Context) error {
	return h.command(c, h.simulationUC.Pause)
}

func (h *SimulationHandler) Stop(c echo.Context) error {
	return h.command(c, h.simulationUC.Stop)
}

// Toggle is the editor's single start/continue/pause button.
func (h *SimulationHandler) Toggle(c echo.Context) error {
	return h.command(c, func(ctx context.Context) error {
		_, err := h.simulationUC.Toggle(ctx)

		return err
	})
}

func (h *SimulationHandler) command(c echo.Context, run func(ctx context.Context) error) error {
	if err := run(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.simulationUC.Status())
}

// GetSimulation returns the status and the full frontier, history included.
func (h *SimulationHandler) GetSimulation(c echo.Context) error {
	return response.Success(c, http.StatusOK, SimulationResponse{
		Status:   h.simulationUC.Status(),
		Frontier: h.simulationUC.Snapshot(),
	})
}

// GetGeoJSON returns a bare FeatureCollection so map layers can load the URL directly.
func (h *SimulationHandler) GetGeoJSON(c echo.Context) error {
	snapshot := h.simulationUC.Snapshot()
	points := h.trajectoryUC.ListPoints(c.Request().Context())

	return c.JSON(http.StatusOK, snapshot.FeatureCollection(points))
}
