package service

import (
	"fmt"

	"github.com/octobees/barber-finder/api/internal/entity"
)

// Prompt is the natural-language request sent to the search model together
// with an optional location bias.
type Prompt struct {
	Text    string
	GeoBias *entity.Coordinate
}

// BuildPrompt renders the prompt for a query and rating filter. Only
// coordinate queries carry a location bias.
func BuildPrompt(query entity.Query, rating entity.RatingFilter) Prompt {
	clause := ratingClause(rating)

	switch q := query.(type) {
	case entity.Coordinate:
		bias := q
		return Prompt{
			Text:    fmt.Sprintf("Find %s barber shops near my current location. Provide a brief summary.", clause),
			GeoBias: &bias,
		}
	case entity.TextQuery:
		return Prompt{
			Text: fmt.Sprintf("Find %s barber shops near %s. Provide a brief summary.", clause, string(q)),
		}
	default:
		return Prompt{}
	}
}

func ratingClause(rating entity.RatingFilter) string {
	if stars, ok := rating.Stars(); ok {
		return fmt.Sprintf("with a rating of %d stars or higher", stars)
	}
	return "highly-rated"
}
