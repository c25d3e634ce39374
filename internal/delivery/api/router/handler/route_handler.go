package handler

import (
	"log/slog"
	"net/http"
	"time"

	"trajmatch/internal/delivery/api/response"
	"trajmatch/internal/domain/entity"
	"trajmatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler exposes named route save, load and delete.
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// RouteResponse describes a stored route.
type RouteResponse struct {
	Name      string                   `json:"name"`
	Count     int                      `json:"count"`
	UpdatedAt time.Time                `json:"updated_at"`
	Points    []entity.TrajectoryPoint `json:"points,omitempty"`
}

func newRouteResponse(route *entity.Route, withPoints bool) RouteResponse {
	resp := RouteResponse{
		Name:      route.Name,
		Count:     len(route.Points),
		UpdatedAt: route.UpdatedAt,
	}
	if withPoints {
		resp.Points = route.Points
	}

	return resp
}

func (h *RouteHandler) ListRoutes(c echo.Context) error {
	names, err := h.routeUC.ListRoutes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if names == nil {
		names = []string{}
	}

	return response.Success(c, http.StatusOK, map[string][]string{"routes": names})
}

// SaveRoute stores the current trajectory under :name.
func (h *RouteHandler) SaveRoute(c echo.Context) error {
	route, err := h.routeUC.SaveRoute(c.Request().Context(), routeName(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteResponse(route, false))
}

func (h *RouteHandler) LoadRoute(c echo.Context) error {
	route, err := h.routeUC.LoadRoute(c.Request().Context(), routeName(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteResponse(route, true))
}

func (h *RouteHandler) DeleteRoute(c echo.Context) error {
	name := routeName(c)
	if err := h.routeUC.DeleteRoute(c.Request().Context(), name); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"deleted": name})
}

// RouteQR returns the share code as a PNG.
func (h *RouteHandler) RouteQR(c echo.Context) error {
	png, err := h.routeUC.RouteQR(c.Request().Context(), routeName(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
