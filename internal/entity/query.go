package entity

import "strings"

// Query kinds reported by Query.Kind.
const (
	QueryKindCoordinate = "coordinate"
	QueryKindText       = "text"
)

// Query is the input of a barber shop search. It is either a Coordinate or a
// TextQuery; the unexported marker keeps the set of variants closed.
type Query interface {
	Kind() string
	isQuery()
}

// Coordinate is a device position reported by the browser.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Kind implements Query.
func (Coordinate) Kind() string { return QueryKindCoordinate }

func (Coordinate) isQuery() {}

// Valid reports whether the coordinate lies within WGS84 ranges.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// TextQuery is a free-text place description such as a city or landmark.
type TextQuery string

// Kind implements Query.
func (TextQuery) Kind() string { return QueryKindText }

func (TextQuery) isQuery() {}

// Blank reports whether the text carries nothing but whitespace.
func (t TextQuery) Blank() bool {
	return strings.TrimSpace(string(t)) == ""
}
