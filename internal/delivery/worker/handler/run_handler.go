package handler

import (
	"net/http"

	"trajmatch/internal/delivery/api/response"
	"trajmatch/internal/domain/entity"
	"trajmatch/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RunHandler exposes the progress folded from received events.
type RunHandler struct {
	monitor usecase.RunMonitorUsecase
}

func NewRunHandler(monitor usecase.RunMonitorUsecase) *RunHandler {
	return &RunHandler{monitor: monitor}
}

// RunsResponse lists tracked runs, newest first.
type RunsResponse struct {
	Runs []entity.RunProgress `json:"runs"`
}

func (h *RunHandler) ListRuns(c echo.Context) error {
	runs, err := h.monitor.ListRuns(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RunsResponse{Runs: runs})
}

func (h *RunHandler) GetRun(c echo.Context) error {
	run, err := h.monitor.GetRun(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, run)
}
