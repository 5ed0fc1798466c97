package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/barber-finder/api/internal/controller"
	"github.com/octobees/barber-finder/api/internal/handler"
	middlewarepkg "github.com/octobees/barber-finder/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Search *handler.SearchHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, registry *controller.Registry, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	session := e.Group("")
	session.Use(middlewarepkg.Session(registry))

	session.GET("/state", handlers.Search.State)
	session.POST("/search/location", handlers.Search.SearchByLocation)
	session.POST("/search/text", handlers.Search.SearchByText)
	session.PUT("/rating", handlers.Search.SetRating)
}
