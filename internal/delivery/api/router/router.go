// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"trajmatch/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TrajectoryHandler *handler.TrajectoryHandler
	SimulationHandler *handler.SimulationHandler
	RouteHandler      *handler.RouteHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	trajectoryHandler *handler.TrajectoryHandler
	simulationHandler *handler.SimulationHandler
	routeHandler      *handler.RouteHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		trajectoryHandler: params.TrajectoryHandler,
		simulationHandler: params.SimulationHandler,
		routeHandler:      params.RouteHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Marker editing
	trajectoryGroup := apiV1.Group("/trajectory")
	{
		trajectoryGroup.GET("", r.trajectoryHandler.ListPoints)
		trajectoryGroup.PUT("", r.trajectoryHandler.ReplacePoints)
		trajectoryGroup.DELETE("", r.trajectoryHandler.Reset)
		trajectoryGroup.POST("/points", r.trajectoryHandler.AddPoint)
		trajectoryGroup.PUT("/points/:index", r.trajectoryHandler.UpdatePoint)
		trajectoryGroup.DELETE("/points/:index", r.trajectoryHandler.RemovePoint)
	}

	// Simulation controls
	simulationGroup := apiV1.Group("/simulation")
	{
		simulationGroup.GET("", r.simulationHandler.GetSimulation)
		simulationGroup.GET("/geojson", r.simulationHandler.GetGeoJSON)
		simulationGroup.POST("/start", r.simulationHandler.Start)
		simulationGroup.POST("/pause", r.simulationHandler.Pause)
		simulationGroup.POST("/stop", r.simulationHandler.Stop)
		simulationGroup.POST("/toggle", r.simulationHandler.Toggle)
	}

	// Named routes
	routesGroup := apiV1.Group("/routes")
	{
		routesGroup.GET("", r.routeHandler.ListRoutes)
		routesGroup.PUT("/:name", r.routeHandler.SaveRoute)
		routesGroup.DELETE("/:name", r.routeHandler.DeleteRoute)
		routesGroup.POST("/:name/load", r.routeHandler.LoadRoute)
		routesGroup.GET("/:name/qr", r.routeHandler.RouteQR)
	}
}
