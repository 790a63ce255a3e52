package browse

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

// StatesFunc looks up the signed-in user's relation to a title. A nil
// StatesFunc means nobody is signed in.
type StatesFunc func(ctx context.Context, kind tmdb.MediaKind, id int) (*tmdb.AccountStates, error)

// Detail is everything the detail page of one title shows.
type Detail struct {
	Details *tmdb.Details       `json:"details"`
	Cast    []tmdb.Credit       `json:"cast"`
	Videos  []tmdb.Video        `json:"videos"`
	Trailer *tmdb.Video         `json:"trailer,omitempty"`
	Similar []tmdb.Item         `json:"similar"`
	States  *tmdb.AccountStates `json:"account_states,omitempty"`
}

// LoadDetail fetches a title with its cast, videos, similar titles and, when
// states is non-nil, the user's account states. Details, cast and videos fail
// together; similar titles and account states fall back to empty with a
// warning.
func (v *Views) LoadDetail(ctx context.Context, kind tmdb.MediaKind, id int, states StatesFunc) (*Detail, error) {
	d := &Detail{Similar: []tmdb.Item{}}

	tasks := []func(context.Context) error{
		func(ctx context.Context) (err error) {
			d.Details, err = v.catalog.GetDetails(ctx, kind, id)
			return err
		},
		func(ctx context.Context) (err error) {
			d.Cast, err = v.catalog.GetCredits(ctx, kind, id)
			return err
		},
		func(ctx context.Context) (err error) {
			d.Videos, err = v.catalog.GetVideos(ctx, kind, id)
			return err
		},
		func(ctx context.Context) error {
			similar, err := v.catalog.GetSimilar(ctx, kind, id, 1)
			if err != nil {
				v.logger.Warn("similar titles unavailable", "kind", kind, "id", id, "err", err)
				return nil
			}
			d.Similar = similar.Results
			return nil
		},
	}
	if states != nil {
		tasks = append(tasks, func(ctx context.Context) error {
			s, err := states(ctx, kind, id)
			if err != nil {
				v.logger.Warn("account states unavailable", "kind", kind, "id", id, "err", err)
				return nil
			}
			d.States = s
			return nil
		})
	}

	if err := join(ctx, tasks...); err != nil {
		return nil, err
	}
	d.Trailer = pickTrailer(d.Videos)
	return d, nil
}

// pickTrailer prefers the first trailer and falls back to the first video.
func pickTrailer(videos []tmdb.Video) *tmdb.Video {
	for i := range videos {
		if videos[i].IsTrailer() {
			return &videos[i]
		}
	}
	if len(videos) > 0 {
		return &videos[0]
	}
	return nil
}

// join runs fns concurrently and returns the first error. The context passed
// to fns is cancelled as soon as one of them fails.
func join(ctx context.Context, fns ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		fn := fn
		g.Go(func() error { return fn(gctx) })
	}
	return g.Wait()
}

// byVoteAverage sorts items best rated first, keeping the input order for
// ties.
func byVoteAverage(items []tmdb.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].VoteAverage > items[j].VoteAverage
	})
}
