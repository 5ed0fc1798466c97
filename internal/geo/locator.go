package geo

import (
	"context"
	"errors"
	"fmt"

	"github.com/octobees/barber-finder/api/internal/entity"
)

// Position error codes as reported by the browser geolocation API.
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

// ErrUnsupported means the client runtime has no geolocation capability.
var ErrUnsupported = errors.New("geolocation is not supported")

// ErrInvalidCoordinate is returned for fixes outside WGS84 ranges.
var ErrInvalidCoordinate = errors.New("coordinate out of range")

// Locator acquires the device position once per call.
type Locator interface {
	Locate(ctx context.Context) (entity.Coordinate, error)
}

// PositionError is a failed position acquisition.
type PositionError struct {
	Code int
}

// Error implements the error interface.
func (e *PositionError) Error() string {
	return fmt.Sprintf("geolocation failed with code %d", e.Code)
}

// Message maps the code to the text shown to the user.
func (e *PositionError) Message() string {
	switch e.Code {
	case CodePermissionDenied:
		return "Please allow location access to find barbers near you."
	case CodePositionUnavailable:
		return "Location information is unavailable."
	case CodeTimeout:
		return "The request to get user location timed out."
	default:
		return "An unknown error occurred while getting location."
	}
}

// Fix is the outcome of a position request already performed by the client:
// either a coordinate or an error code.
type Fix struct {
	Coordinate entity.Coordinate
	ErrorCode  int
}

// Locate implements Locator.
func (f Fix) Locate(ctx context.Context) (entity.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinate{}, err
	}
	if f.ErrorCode != 0 {
		return entity.Coordinate{}, &PositionError{Code: f.ErrorCode}
	}
	if !f.Coordinate.Valid() {
		return entity.Coordinate{}, ErrInvalidCoordinate
	}
	return f.Coordinate, nil
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(ctx context.Context) (entity.Coordinate, error)

// Locate implements Locator. A nil LocatorFunc reports ErrUnsupported.
func (f LocatorFunc) Locate(ctx context.Context) (entity.Coordinate, error) {
	if f == nil {
		return entity.Coordinate{}, ErrUnsupported
	}
	return f(ctx)
}

var (
	_ Locator = Fix{}
	_ Locator = LocatorFunc(nil)
)
