package service

import (
	"testing"

	"github.com/octobees/barber-finder/api/internal/entity"
)

func TestBuildPrompt(t *testing.T) {
	tests := map[string]struct {
		query    entity.Query
		rating   entity.RatingFilter
		wantText string
		wantBias *entity.Coordinate
	}{
		"coordinate without rating": {
			query:    entity.Coordinate{Latitude: 40.0, Longitude: -73.0},
			rating:   entity.NoRating,
			wantText: "Find highly-rated barber shops near my current location. Provide a brief summary.",
			wantBias: &entity.Coordinate{Latitude: 40.0, Longitude: -73.0},
		},
		"coordinate with rating": {
			query:    entity.Coordinate{Latitude: 51.5, Longitude: -0.12},
			rating:   entity.MinRating(3),
			wantText: "Find with a rating of 3 stars or higher barber shops near my current location. Provide a brief summary.",
			wantBias: &entity.Coordinate{Latitude: 51.5, Longitude: -0.12},
		},
		"text with rating": {
			query:    entity.TextQuery("Paris"),
			rating:   entity.MinRating(4),
			wantText: "Find with a rating of 4 stars or higher barber shops near Paris. Provide a brief summary.",
		},
		"text without rating": {
			query:    entity.TextQuery("Brooklyn, NY"),
			rating:   entity.NoRating,
			wantText: "Find highly-rated barber shops near Brooklyn, NY. Provide a brief summary.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := BuildPrompt(tt.query, tt.rating)
			if got.Text != tt.wantText {
				t.Fatalf("unexpected prompt:\n got: %q\nwant: %q", got.Text, tt.wantText)
			}
			if tt.wantBias == nil {
				if got.GeoBias != nil {
					t.Fatalf("expected no geo bias, got %+v", got.GeoBias)
				}
				return
			}
			if got.GeoBias == nil || *got.GeoBias != *tt.wantBias {
				t.Fatalf("expected geo bias %+v, got %+v", tt.wantBias, got.GeoBias)
			}
		})
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	queries := []entity.Query{
		entity.Coordinate{Latitude: -33.86, Longitude: 151.2},
		entity.TextQuery("Tokyo"),
	}
	for _, q := range queries {
		for stars := 0; stars <= entity.MaxStars; stars++ {
			first := BuildPrompt(q, entity.MinRating(stars))
			second := BuildPrompt(q, entity.MinRating(stars))
			if first.Text != second.Text {
				t.Fatalf("prompt text changed between calls: %q vs %q", first.Text, second.Text)
			}
			if (first.GeoBias == nil) != (second.GeoBias == nil) {
				t.Fatalf("geo bias presence changed between calls")
			}
			_, isCoord := q.(entity.Coordinate)
			if isCoord != (first.GeoBias != nil) {
				t.Fatalf("geo bias must be present iff the query is a coordinate (query %v)", q)
			}
		}
	}
}

func TestBuildPrompt_BiasIsACopy(t *testing.T) {
	coord := entity.Coordinate{Latitude: 1, Longitude: 2}
	p := BuildPrompt(coord, entity.NoRating)
	p.GeoBias.Latitude = 99
	if coord.Latitude != 1 {
		t.Fatalf("expected caller coordinate to stay untouched")
	}
}

func TestBuildPrompt_NilQuery(t *testing.T) {
	if p := BuildPrompt(nil, entity.MinRating(2)); p.Text != "" || p.GeoBias != nil {
		t.Fatalf("expected empty prompt for nil query, got %+v", p)
	}
}
