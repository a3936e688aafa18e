package content

import (
	"errors"
	"strings"

	"gratuity/models"
)

// Kind tags which entity an Envelope wraps.
type Kind string

const (
	KindPage     Kind = "page"
	KindLocation Kind = "location"
)

// Envelope is the resolver's unified return value. Exactly one of Page or
// Location is set, selected by Kind.
type Envelope struct {
	Kind     Kind
	Page     *models.Page
	Location *models.Location
}

// Title returns the content's authoritative display name.
func (e *Envelope) Title() string {
	switch e.Kind {
	case KindPage:
		return e.Page.Title
	case KindLocation:
		return e.Location.Name
	}
	return ""
}

// SEO returns the content's SEO sub-record.
func (e *Envelope) SEO() models.SEOData {
	switch e.Kind {
	case KindPage:
		return e.Page.SEO
	case KindLocation:
		return e.Location.SEO
	}
	return models.SEOData{}
}

// Blocks returns the content's block sequence.
func (e *Envelope) Blocks() []models.Block {
	switch e.Kind {
	case KindPage:
		return e.Page.Blocks
	case KindLocation:
		return e.Location.Blocks
	}
	return nil
}

type resolution struct {
	envelope *Envelope
	err      error
}

// Resolver maps slug path segments to content. It memoizes results
// (including not-founds) for the duration of one render, so metadata and
// body generation see the same answer without duplicate lookups. Create a
// fresh Resolver per request; it is not safe for concurrent use.
type Resolver struct {
	store Store
	memo  map[string]resolution
}

func NewResolver(store Store) *Resolver {
	return &Resolver{
		store: store,
		memo:  make(map[string]resolution),
	}
}

// Resolve tries, in order:
//  1. a Page whose slug is the full joined path — pages always beat
//     locations on a flat-slug collision,
//  2. for multi-segment paths, a Location scoped to the first segment's
//     emirate with the last segment as leaf slug,
//  3. for single-segment paths, an unscoped Location.
//
// Unpublished content is indistinguishable from absent content.
func (r *Resolver) Resolve(segments []string) (*Envelope, error) {
	if len(segments) == 0 {
		return nil, ErrNotFound
	}

	key := strings.Join(segments, "/")
	if cached, ok := r.memo[key]; ok {
		return cached.envelope, cached.err
	}

	envelope, err := r.lookup(segments, key)
	r.memo[key] = resolution{envelope: envelope, err: err}
	return envelope, err
}

func (r *Resolver) lookup(segments []string, joined string) (*Envelope, error) {
	page, err := r.store.PublishedPageBySlug(joined)
	if err == nil {
		return &Envelope{Kind: KindPage, Page: page}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if len(segments) > 1 {
		emirate := segments[0]
		leaf := segments[len(segments)-1]
		location, err := r.store.PublishedLocationInEmirate(emirate, leaf)
		if err == nil {
			return &Envelope{Kind: KindLocation, Location: location}, nil
		}
		return nil, err
	}

	location, err := r.store.PublishedLocationBySlug(segments[0])
	if err == nil {
		return &Envelope{Kind: KindLocation, Location: location}, nil
	}
	return nil, err
}

// SplitPath turns a request path into clean slug segments.
func SplitPath(path string) []string {
	var segments []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
