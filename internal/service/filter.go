package service

import (
	"google.golang.org/genai"

	"github.com/octobees/barber-finder/api/internal/entity"
)

// FilterPlaces keeps grounding chunks that reference a map place with both a
// title and a URI. Order is preserved and duplicates are kept.
func FilterPlaces(chunks []*genai.GroundingChunk) []entity.PlaceReference {
	places := make([]entity.PlaceReference, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk == nil || chunk.Maps == nil {
			continue
		}
		if chunk.Maps.Title == "" || chunk.Maps.URI == "" {
			continue
		}
		places = append(places, entity.PlaceReference{Title: chunk.Maps.Title, URI: chunk.Maps.URI})
	}
	return places
}
