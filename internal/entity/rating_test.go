package entity

import (
	"encoding/json"
	"testing"
)

func TestMinRating(t *testing.T) {
	if MinRating(0).IsSet() || MinRating(-2).IsSet() {
		t.Fatalf("expected non-positive ratings to mean no filter")
	}
	stars, ok := MinRating(4).Stars()
	if !ok || stars != 4 {
		t.Fatalf("expected 4 stars, got %d (set=%v)", stars, ok)
	}
}

func TestParseRating(t *testing.T) {
	r, err := ParseRating(nil)
	if err != nil || r.IsSet() {
		t.Fatalf("expected nil to parse as no filter, got %+v, %v", r, err)
	}

	for _, v := range []int{1, 3, 5} {
		v := v
		r, err := ParseRating(&v)
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", v, err)
		}
		if stars, _ := r.Stars(); stars != v {
			t.Fatalf("expected %d stars, got %d", v, stars)
		}
	}

	for _, v := range []int{0, 6, -1} {
		v := v
		if _, err := ParseRating(&v); err == nil {
			t.Fatalf("expected error for %d", v)
		}
	}
}

func TestRatingFilter_MarshalJSON(t *testing.T) {
	payload := map[string]RatingFilter{"none": NoRating, "four": MinRating(4)}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"four":4,"none":null}` {
		t.Fatalf("unexpected json: %s", data)
	}
}

func TestQueryKinds(t *testing.T) {
	var q Query = Coordinate{Latitude: 1, Longitude: 2}
	if q.Kind() != QueryKindCoordinate {
		t.Fatalf("expected coordinate kind, got %s", q.Kind())
	}
	q = TextQuery("Paris")
	if q.Kind() != QueryKindText {
		t.Fatalf("expected text kind, got %s", q.Kind())
	}
	if !TextQuery("  \t").Blank() || TextQuery(" x ").Blank() {
		t.Fatalf("unexpected Blank result")
	}
	if (Coordinate{Latitude: 91}).Valid() || !(Coordinate{Latitude: 40, Longitude: -73}).Valid() {
		t.Fatalf("unexpected Valid result")
	}
}
