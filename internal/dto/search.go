package dto

// LocationSearchRequest carries the outcome of a browser geolocation request:
// either a position fix, a geolocation error code, or supported=false when
// the browser has no geolocation capability.
type LocationSearchRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	ErrorCode int      `json:"error_code,omitempty"`
	Supported *bool    `json:"supported,omitempty"`
}

// TextSearchRequest is a free-text place search.
type TextSearchRequest struct {
	Query string `json:"query"`
}

// RatingRequest sets or clears the minimum star rating.
type RatingRequest struct {
	Rating *int `json:"rating"`
}
