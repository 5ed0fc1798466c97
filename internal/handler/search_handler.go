package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/barber-finder/api/internal/controller"
	"github.com/octobees/barber-finder/api/internal/dto"
	"github.com/octobees/barber-finder/api/internal/entity"
	"github.com/octobees/barber-finder/api/internal/geo"
	middlewarepkg "github.com/octobees/barber-finder/api/internal/middleware"
)

// SearchHandler exposes the session view state and its search triggers.
type SearchHandler struct{}

// NewSearchHandler wires the handler.
func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

// State handles GET /state.
func (h *SearchHandler) State(c echo.Context) error {
	ctrl := middlewarepkg.ControllerFromContext(c)
	if ctrl == nil {
		return Error(c, http.StatusInternalServerError, "session unavailable")
	}
	view := ctrl.Snapshot()
	return Success(c, http.StatusOK, string(view.Status), view)
}

// SearchByLocation handles POST /search/location.
func (h *SearchHandler) SearchByLocation(c echo.Context) error {
	ctrl := middlewarepkg.ControllerFromContext(c)
	if ctrl == nil {
		return Error(c, http.StatusInternalServerError, "session unavailable")
	}

	var req dto.LocationSearchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	var locator geo.Locator
	switch {
	case req.Supported != nil && !*req.Supported:
		// nil locator: no geolocation capability on the client
	case req.ErrorCode != 0:
		locator = geo.Fix{ErrorCode: req.ErrorCode}
	case req.Latitude != nil && req.Longitude != nil:
		locator = geo.Fix{Coordinate: entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}}
	default:
		return Error(c, http.StatusBadRequest, "latitude and longitude are required")
	}

	return viewResponse(c, ctrl.SearchByLocation(c.Request().Context(), locator))
}

// SearchByText handles POST /search/text.
func (h *SearchHandler) SearchByText(c echo.Context) error {
	ctrl := middlewarepkg.ControllerFromContext(c)
	if ctrl == nil {
		return Error(c, http.StatusInternalServerError, "session unavailable")
	}

	var req dto.TextSearchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	return viewResponse(c, ctrl.SearchByText(c.Request().Context(), req.Query))
}

// SetRating handles PUT /rating.
func (h *SearchHandler) SetRating(c echo.Context) error {
	ctrl := middlewarepkg.ControllerFromContext(c)
	if ctrl == nil {
		return Error(c, http.StatusInternalServerError, "session unavailable")
	}

	var req dto.RatingRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	rating, err := entity.ParseRating(req.Rating)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	return viewResponse(c, ctrl.SetRatingFilter(c.Request().Context(), rating))
}

func viewResponse(c echo.Context, view controller.View) error {
	message := "search completed"
	switch view.Status {
	case controller.StatusError:
		message = view.Error
	case controller.StatusIdle:
		message = "rating filter updated"
	}
	return Success(c, http.StatusOK, message, view)
}
