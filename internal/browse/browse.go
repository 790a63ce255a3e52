// Package browse assembles the read-only catalog views: parameterized
// listings, the title detail view, the home page and the header quick search.
package browse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

const (
	// QuickSearchLimit is how many results of each kind the quick search keeps.
	QuickSearchLimit = 5
	// TrendingLimit caps the combined trending list.
	TrendingLimit = 20
	// HeroCastLimit caps the cast shown with the home hero.
	HeroCastLimit = 10
)

// ErrUnknownMode indicates a ListQuery mode other than the five listings.
var ErrUnknownMode = errors.New("browse: unknown listing mode")

// Catalog is the part of the TMDB client the views read from.
type Catalog interface {
	ListTrending(ctx context.Context, kind tmdb.MediaKind, window tmdb.TimeWindow) (*tmdb.Page[tmdb.Item], error)
	ListPopular(ctx context.Context, kind tmdb.MediaKind, page int) (*tmdb.Page[tmdb.Item], error)
	ListNowPlayingOrOnAir(ctx context.Context, kind tmdb.MediaKind, page int) (*tmdb.Page[tmdb.Item], error)
	Search(ctx context.Context, kind tmdb.MediaKind, query string, page int) (*tmdb.Page[tmdb.Item], error)
	Discover(ctx context.Context, kind tmdb.MediaKind, filters tmdb.Filters) (*tmdb.Page[tmdb.Item], error)
	GetDetails(ctx context.Context, kind tmdb.MediaKind, id int) (*tmdb.Details, error)
	GetCredits(ctx context.Context, kind tmdb.MediaKind, id int) ([]tmdb.Credit, error)
	GetVideos(ctx context.Context, kind tmdb.MediaKind, id int) ([]tmdb.Video, error)
	GetSimilar(ctx context.Context, kind tmdb.MediaKind, id, page int) (*tmdb.Page[tmdb.Item], error)
}

// Views builds the catalog views on top of a Catalog.
type Views struct {
	catalog Catalog
	logger  *slog.Logger
}

// Option allows customizing the views.
type Option func(*Views)

// WithLogger sets the logger used for degraded fetches.
func WithLogger(l *slog.Logger) Option {
	return func(v *Views) {
		if l != nil {
			v.logger = l
		}
	}
}

func New(catalog Catalog, opts ...Option) *Views {
	v := &Views{catalog: catalog, logger: slog.Default()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mode selects which listing a ListQuery resolves to.
type Mode string

const (
	ModeTrending   Mode = "trending"
	ModePopular    Mode = "popular"
	ModeNowPlaying Mode = "now_playing"
	ModeSearch     Mode = "search"
	ModeDiscover   Mode = "discover"
)

// ListQuery describes one listing page. Only the fields the mode uses are
// read: Window for trending, Query for search, Filters for discover and Page
// for the rest.
type ListQuery struct {
	Mode    Mode
	Kind    tmdb.MediaKind
	Window  tmdb.TimeWindow
	Query   string
	Page    int
	Filters tmdb.Filters
}

// List resolves q to exactly one catalog call. A blank search query yields an
// empty page without calling upstream.
func (v *Views) List(ctx context.Context, q ListQuery) (*tmdb.Page[tmdb.Item], error) {
	switch q.Mode {
	case ModeTrending:
		window := q.Window
		if window == "" {
			window = tmdb.Week
		}
		return v.catalog.ListTrending(ctx, q.Kind, window)
	case ModePopular:
		return v.catalog.ListPopular(ctx, q.Kind, q.Page)
	case ModeNowPlaying:
		return v.catalog.ListNowPlayingOrOnAir(ctx, q.Kind, q.Page)
	case ModeSearch:
		query := strings.TrimSpace(q.Query)
		if query == "" {
			if !q.Kind.Valid() {
				return nil, fmt.Errorf("%w: %q", tmdb.ErrInvalidMediaKind, string(q.Kind))
			}
			return emptyPage(), nil
		}
		return v.catalog.Search(ctx, q.Kind, query, q.Page)
	case ModeDiscover:
		filters := q.Filters
		if filters.Page == 0 {
			filters.Page = q.Page
		}
		return v.catalog.Discover(ctx, q.Kind, filters)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(q.Mode))
	}
}

func emptyPage() *tmdb.Page[tmdb.Item] {
	return &tmdb.Page[tmdb.Item]{Page: 1, Results: []tmdb.Item{}}
}

// QuickSearch searches movies and shows in parallel and keeps the top
// QuickSearchLimit of each, movies first.
func (v *Views) QuickSearch(ctx context.Context, query string) ([]tmdb.Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []tmdb.Item{}, nil
	}

	var movies, shows *tmdb.Page[tmdb.Item]
	err := join(ctx,
		func(ctx context.Context) (err error) {
			movies, err = v.catalog.Search(ctx, tmdb.Movie, query, 1)
			return err
		},
		func(ctx context.Context) (err error) {
			shows, err = v.catalog.Search(ctx, tmdb.TV, query, 1)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	out := make([]tmdb.Item, 0, 2*QuickSearchLimit)
	out = append(out, head(movies.Results, QuickSearchLimit)...)
	out = append(out, head(shows.Results, QuickSearchLimit)...)
	return out, nil
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
