package handler

import (
	"log/slog"
	"net/http"

	"trajmatch/internal/delivery/api/response"
	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/trajectory"
	"trajmatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxTrajectoryPoints bounds a single replace request.
const maxTrajectoryPoints = 10000

// TrajectoryHandlerParams holds dependencies for TrajectoryHandler, injected by Fx.
type TrajectoryHandlerParams struct {
	fx.In

	TrajectoryUC usecase.TrajectoryUsecase
	Logger       *slog.Logger
}

// TrajectoryHandler exposes the marker editing commands.
type TrajectoryHandler struct {
	trajectoryUC usecase.TrajectoryUsecase
	logger       *slog.Logger
}

func NewTrajectoryHandler(params TrajectoryHandlerParams) *TrajectoryHandler {
	return &TrajectoryHandler{
		trajectoryUC: params.TrajectoryUC,
		logger:       params.Logger,
	}
}

// ReplacePointsRequest is the body of PUT /trajectory. An empty list clears the trajectory.
type ReplacePointsRequest struct {
	Points []entity.PointRecord `json:"points" validate:"required,max=10000"`
}

// IndexedPoint is a trajectory point together with its index.
type IndexedPoint struct {
	Index int `json:"index"`
	entity.PointRecord
}

// TrajectoryResponse lists the trajectory in index order.
type TrajectoryResponse struct {
	Points []entity.TrajectoryPoint `json:"points"`
	Count  int                      `json:"count"`
}

func (h *TrajectoryHandler) ListPoints(c echo.Context) error {
	points := h.trajectoryUC.ListPoints(c.Request().Context())

	return response.Success(c, http.StatusOK, TrajectoryResponse{Points: points, Count: len(points)})
}

func (h *TrajectoryHandler) AddPoint(c echo.Context) error {
	var req entity.PointRecord
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid point input")
	}

	if _, err := h.trajectoryUC.AddPoint(c.Request().Context(), req); err != nil {
		return response.HandleAppError(c, err)
	}

	// The editor redraws every marker, so the whole trajectory is returned.
	points := h.trajectoryUC.ListPoints(c.Request().Context())

	return response.Success(c, http.StatusCreated, TrajectoryResponse{Points: points, Count: len(points)})
}

func (h *TrajectoryHandler) UpdatePoint(c echo.Context) error {
	index, ok, err := pointIndex(c)
	if !ok {
		return err
	}

	var patch trajectory.PointPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "Invalid point input")
	}

	point, err := h.trajectoryUC.UpdatePoint(c.Request().Context(), index, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, IndexedPoint{Index: index, PointRecord: point.Record()})
}

func (h *TrajectoryHandler) RemovePoint(c echo.Context) error {
	index, ok, err := pointIndex(c)
	if !ok {
		return err
	}

	if err := h.trajectoryUC.RemovePoint(c.Request().Context(), index); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"removed": index})
}

func (h *TrajectoryHandler) ReplacePoints(c echo.Context) error {
	var req ReplacePointsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid trajectory input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.trajectoryUC.ReplacePoints(c.Request().Context(), req.Points); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.ListPoints(c)
}

// Reset clears the markers and stops any simulation.
func (h *TrajectoryHandler) Reset(c echo.Context) error {
	if err := h.trajectoryUC.Reset(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TrajectoryResponse{Points: []entity.TrajectoryPoint{}})
}
