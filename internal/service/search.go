package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/octobees/barber-finder/api/internal/entity"
	"github.com/octobees/barber-finder/api/internal/gemini"
)

// SearchService turns barber shop queries into grounded generative-search
// requests.
type SearchService struct {
	generator gemini.Generator
	apiKey    string
	model     string
	log       zerolog.Logger
}

// NewSearchService wires the service. generator may be nil when no credential
// is configured; every search then fails with ErrMissingCredential.
func NewSearchService(apiKey, model string, generator gemini.Generator, log zerolog.Logger) *SearchService {
	if strings.TrimSpace(model) == "" {
		model = gemini.DefaultModel
	}
	return &SearchService{
		generator: generator,
		apiKey:    strings.TrimSpace(apiKey),
		model:     model,
		log:       log.With().Str("component", "search").Logger(),
	}
}

// Search issues exactly one generation request and returns the summary and
// the map places it was grounded on.
func (s *SearchService) Search(ctx context.Context, query entity.Query, rating entity.RatingFilter) (entity.SearchResult, error) {
	if s.apiKey == "" || s.generator == nil {
		return entity.SearchResult{}, ErrMissingCredential
	}
	if query == nil {
		return entity.SearchResult{}, ErrEmptyQuery
	}
	if text, ok := query.(entity.TextQuery); ok && text.Blank() {
		return entity.SearchResult{}, ErrEmptyQuery
	}

	prompt := BuildPrompt(query, rating)
	log := s.logger(ctx)

	resp, err := s.generator.GenerateContent(ctx, s.model, genai.Text(prompt.Text), requestConfig(prompt))
	if err != nil {
		log.Error().Err(err).Str("query_kind", query.Kind()).Msg("gemini request failed")
		return entity.SearchResult{}, &Error{Kind: KindService, Message: MessageServiceUnavailable, Err: err}
	}
	if resp == nil {
		err := errors.New("gemini returned an empty response")
		log.Error().Err(err).Str("query_kind", query.Kind()).Msg("gemini response unusable")
		return entity.SearchResult{}, &Error{Kind: KindService, Message: MessageServiceUnavailable, Err: err}
	}

	var (
		summary string
		chunks  []*genai.GroundingChunk
	)
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		log.Warn().Str("query_kind", query.Kind()).Msg("gemini response has no candidates")
	} else {
		summary = resp.Text()
		if meta := resp.Candidates[0].GroundingMetadata; meta != nil {
			chunks = meta.GroundingChunks
		}
	}
	shops := FilterPlaces(chunks)

	log.Debug().
		Str("query_kind", query.Kind()).
		Int("chunks", len(chunks)).
		Int("shops", len(shops)).
		Msg("search completed")

	return entity.SearchResult{
		Summary: summary,
		Shops:   shops,
		Prompt:  prompt.Text,
	}, nil
}

func requestConfig(prompt Prompt) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
	}
	if prompt.GeoBias != nil {
		config.ToolConfig = &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(prompt.GeoBias.Latitude),
					Longitude: genai.Ptr(prompt.GeoBias.Longitude),
				},
			},
		}
	}
	return config
}

// logger prefers the request-scoped logger carried by ctx.
func (s *SearchService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.log
}
