package browse

import (
	"context"
	"time"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/latest"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

// DebouncedSearch runs QuickSearch for as-you-type input. Requests sharing a
// client key supersede each other: each waits delay first, and a request
// replaced by a newer one returns latest.ErrSuperseded instead of results.
type DebouncedSearch struct {
	views   *Views
	tracker latest.Tracker
	delay   time.Duration
}

func NewDebouncedSearch(views *Views, delay time.Duration) *DebouncedSearch {
	return &DebouncedSearch{views: views, delay: delay}
}

// Search waits out the debounce delay and runs the quick search, unless a
// newer request for client arrives first.
func (s *DebouncedSearch) Search(ctx context.Context, client, query string) ([]tmdb.Item, error) {
	ctx, ticket := s.tracker.Begin(ctx, client)
	defer ticket.Done()

	if err := latest.Sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	items, err := s.views.QuickSearch(ctx, query)
	if !ticket.Current() {
		return nil, latest.ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}
