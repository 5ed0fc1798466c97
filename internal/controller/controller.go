package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/octobees/barber-finder/api/internal/entity"
	"github.com/octobees/barber-finder/api/internal/geo"
	"github.com/octobees/barber-finder/api/internal/service"
)

// Status is the view state of a session.
type Status string

// View states.
const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// MessageGeolocationUnsupported is shown when the client cannot locate itself.
const MessageGeolocationUnsupported = "Geolocation is not supported by your browser."

// Searcher performs one barber shop search.
type Searcher interface {
	Search(ctx context.Context, query entity.Query, rating entity.RatingFilter) (entity.SearchResult, error)
}

// View is what the rendering surface consumes.
type View struct {
	Status       Status                  `json:"status"`
	IsLoading    bool                    `json:"is_loading"`
	HasSearched  bool                    `json:"has_searched"`
	Error        string                  `json:"error,omitempty"`
	ErrorKind    service.ErrorKind       `json:"error_kind,omitempty"`
	Summary      string                  `json:"summary"`
	Shops        []entity.PlaceReference `json:"shops"`
	RatingFilter entity.RatingFilter     `json:"rating_filter"`
	Prompt       string                  `json:"prompt,omitempty"`
}

// Controller drives the loading/success/error cycle of one session. State
// transitions are serialized; searches run outside the lock and only the
// most recently issued one may apply its outcome.
type Controller struct {
	searcher Searcher
	log      zerolog.Logger

	mu          sync.Mutex
	seq         uint64
	status      Status
	hasSearched bool
	errMsg      string
	errKind     service.ErrorKind
	summary     string
	shops       []entity.PlaceReference
	prompt      string
	rating      entity.RatingFilter
	lastQuery   entity.Query
}

// New creates an idle controller.
func New(searcher Searcher, log zerolog.Logger) *Controller {
	return &Controller{
		searcher: searcher,
		log:      log,
		status:   StatusIdle,
		rating:   entity.NoRating,
	}
}

// Snapshot returns the current view.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// LastQuery returns the query the next rating change would replay.
func (c *Controller) LastQuery() entity.Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastQuery
}

// SearchByLocation locates the device and searches around it. A nil locator
// means the client has no geolocation capability.
func (c *Controller) SearchByLocation(ctx context.Context, locator geo.Locator) View {
	if locator == nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.seq++
		c.failLocked(&service.Error{Kind: service.KindInput, Message: MessageGeolocationUnsupported, Err: geo.ErrUnsupported})
		return c.viewLocked()
	}

	c.mu.Lock()
	seq := c.beginLocked()
	c.mu.Unlock()

	coord, err := locator.Locate(ctx)
	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if seq == c.seq {
			c.log.Warn().Err(err).Uint64("search_seq", seq).Msg("geolocation failed")
			c.failLocked(locationError(err))
		}
		return c.viewLocked()
	}

	c.mu.Lock()
	if seq != c.seq {
		defer c.mu.Unlock()
		return c.viewLocked()
	}
	c.lastQuery = coord
	c.hasSearched = true
	rating := c.rating
	c.mu.Unlock()

	return c.run(ctx, seq, coord, rating)
}

// SearchByText searches around a free-text place. Blank input fails without
// contacting the search service.
func (c *Controller) SearchByText(ctx context.Context, text string) View {
	query := entity.TextQuery(strings.TrimSpace(text))

	c.mu.Lock()
	if query.Blank() {
		defer c.mu.Unlock()
		c.seq++
		c.failLocked(service.ErrEmptyQuery)
		return c.viewLocked()
	}
	seq := c.beginLocked()
	c.lastQuery = query
	c.hasSearched = true
	rating := c.rating
	c.mu.Unlock()

	return c.run(ctx, seq, query, rating)
}

// SetRatingFilter stores the filter and replays the last query with it, if a
// query was ever issued.
func (c *Controller) SetRatingFilter(ctx context.Context, rating entity.RatingFilter) View {
	c.mu.Lock()
	c.rating = rating
	query := c.lastQuery
	if query == nil {
		defer c.mu.Unlock()
		return c.viewLocked()
	}
	seq := c.beginLocked()
	c.hasSearched = true
	c.mu.Unlock()

	return c.run(ctx, seq, query, rating)
}

func (c *Controller) run(ctx context.Context, seq uint64, query entity.Query, rating entity.RatingFilter) View {
	log := c.log.With().Uint64("search_seq", seq).Str("query_kind", query.Kind()).Logger()
	result, err := c.searcher.Search(log.WithContext(ctx), query, rating)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		log.Debug().Uint64("latest_seq", c.seq).Msg("discarding superseded search result")
		return c.viewLocked()
	}
	if err != nil {
		c.failLocked(err)
		return c.viewLocked()
	}

	c.status = StatusSuccess
	c.errMsg = ""
	c.errKind = ""
	c.summary = result.Summary
	c.shops = result.Shops
	c.prompt = result.Prompt
	return c.viewLocked()
}

func (c *Controller) beginLocked() uint64 {
	c.seq++
	c.status = StatusLoading
	c.errMsg = ""
	c.errKind = ""
	c.summary = ""
	c.shops = nil
	c.prompt = ""
	return c.seq
}

func (c *Controller) failLocked(err error) {
	c.status = StatusError
	c.errMsg = service.UserMessage(err)
	c.errKind = service.KindOf(err)
	c.summary = ""
	c.shops = nil
	c.prompt = ""
}

func (c *Controller) viewLocked() View {
	shops := make([]entity.PlaceReference, len(c.shops))
	copy(shops, c.shops)
	return View{
		Status:       c.status,
		IsLoading:    c.status == StatusLoading,
		HasSearched:  c.hasSearched,
		Error:        c.errMsg,
		ErrorKind:    c.errKind,
		Summary:      c.summary,
		Shops:        shops,
		RatingFilter: c.rating,
		Prompt:       c.prompt,
	}
}

func locationError(err error) error {
	var posErr *geo.PositionError
	switch {
	case errors.As(err, &posErr):
		return &service.Error{Kind: service.KindLocation, Message: posErr.Message(), Err: err}
	case errors.Is(err, geo.ErrUnsupported):
		return &service.Error{Kind: service.KindInput, Message: MessageGeolocationUnsupported, Err: err}
	case errors.Is(err, geo.ErrInvalidCoordinate):
		return &service.Error{Kind: service.KindLocation, Message: (&geo.PositionError{Code: geo.CodePositionUnavailable}).Message(), Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &service.Error{Kind: service.KindLocation, Message: (&geo.PositionError{Code: geo.CodeTimeout}).Message(), Err: err}
	default:
		return &service.Error{Kind: service.KindLocation, Message: (&geo.PositionError{}).Message(), Err: err}
	}
}
