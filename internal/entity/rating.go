package entity

import (
	"encoding/json"
	"fmt"
)

// Bounds for a minimum star rating.
const (
	MinStars = 1
	MaxStars = 5
)

// RatingFilter is an optional minimum star rating. The zero value means no
// filter.
type RatingFilter struct {
	stars int
}

// NoRating is the "no filter" sentinel.
var NoRating = RatingFilter{}

// MinRating returns a filter for shops rated stars or higher. Non-positive
// values yield NoRating.
func MinRating(stars int) RatingFilter {
	if stars <= 0 {
		return NoRating
	}
	return RatingFilter{stars: stars}
}

// ParseRating validates an optional threshold coming from a request payload.
func ParseRating(value *int) (RatingFilter, error) {
	if value == nil {
		return NoRating, nil
	}
	if *value < MinStars || *value > MaxStars {
		return NoRating, fmt.Errorf("rating must be between %d and %d", MinStars, MaxStars)
	}
	return RatingFilter{stars: *value}, nil
}

// Stars returns the threshold and whether a filter is set.
func (r RatingFilter) Stars() (int, bool) {
	return r.stars, r.stars > 0
}

// IsSet reports whether a threshold is present.
func (r RatingFilter) IsSet() bool {
	return r.stars > 0
}

// MarshalJSON renders the filter as a number or null.
func (r RatingFilter) MarshalJSON() ([]byte, error) {
	if !r.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(r.stars)
}
