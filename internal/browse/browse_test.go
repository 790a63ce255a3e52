package browse

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/latest"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

// stubCatalog answers from fixed data and records the calls it gets.
type stubCatalog struct {
	mu    sync.Mutex
	calls []string

	trending map[tmdb.MediaKind][]tmdb.Item
	search   func(ctx context.Context, kind tmdb.MediaKind, query string) (*tmdb.Page[tmdb.Item], error)
	filters  tmdb.Filters

	detailsErr error
	similarErr error
	videosErr  error
	videos     []tmdb.Video
	cast       []tmdb.Credit
}

func (s *stubCatalog) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *stubCatalog) called() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func page(items ...tmdb.Item) *tmdb.Page[tmdb.Item] {
	if items == nil {
		items = []tmdb.Item{}
	}
	return &tmdb.Page[tmdb.Item]{Page: 1, Results: items, TotalPages: 1, TotalResults: len(items)}
}

func (s *stubCatalog) ListTrending(_ context.Context, kind tmdb.MediaKind, window tmdb.TimeWindow) (*tmdb.Page[tmdb.Item], error) {
	s.record("trending/" + string(kind) + "/" + string(window))
	return page(s.trending[kind]...), nil
}

func (s *stubCatalog) ListPopular(_ context.Context, kind tmdb.MediaKind, _ int) (*tmdb.Page[tmdb.Item], error) {
	s.record("popular/" + string(kind))
	return page(), nil
}

func (s *stubCatalog) ListNowPlayingOrOnAir(_ context.Context, kind tmdb.MediaKind, _ int) (*tmdb.Page[tmdb.Item], error) {
	s.record("now_playing/" + string(kind))
	return page(), nil
}

func (s *stubCatalog) Search(ctx context.Context, kind tmdb.MediaKind, query string, _ int) (*tmdb.Page[tmdb.Item], error) {
	s.record("search/" + string(kind) + "/" + query)
	if s.search != nil {
		return s.search(ctx, kind, query)
	}
	return page(), nil
}

func (s *stubCatalog) Discover(_ context.Context, kind tmdb.MediaKind, filters tmdb.Filters) (*tmdb.Page[tmdb.Item], error) {
	s.record("discover/" + string(kind))
	s.mu.Lock()
	s.filters = filters
	s.mu.Unlock()
	return page(), nil
}

func (s *stubCatalog) GetDetails(_ context.Context, kind tmdb.MediaKind, id int) (*tmdb.Details, error) {
	s.record("details")
	if s.detailsErr != nil {
		return nil, s.detailsErr
	}
	return &tmdb.Details{Item: tmdb.Item{Kind: kind, ID: id, Title: "The Matrix"}}, nil
}

func (s *stubCatalog) GetCredits(context.Context, tmdb.MediaKind, int) ([]tmdb.Credit, error) {
	s.record("credits")
	return s.cast, nil
}

func (s *stubCatalog) GetVideos(context.Context, tmdb.MediaKind, int) ([]tmdb.Video, error) {
	s.record("videos")
	if s.videosErr != nil {
		return nil, s.videosErr
	}
	return s.videos, nil
}

func (s *stubCatalog) GetSimilar(context.Context, tmdb.MediaKind, int, int) (*tmdb.Page[tmdb.Item], error) {
	s.record("similar")
	if s.similarErr != nil {
		return nil, s.similarErr
	}
	return page(tmdb.Item{Kind: tmdb.Movie, ID: 604, Title: "The Matrix Reloaded"}), nil
}

func newViews(c Catalog) *Views {
	return New(c, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func movie(id int, vote float64, poster, backdrop string) tmdb.Item {
	return tmdb.Item{Kind: tmdb.Movie, ID: id, VoteAverage: vote, PosterPath: poster, BackdropPath: backdrop, GenreIDs: []int{}}
}

func show(id int, vote float64, poster string) tmdb.Item {
	return tmdb.Item{Kind: tmdb.TV, ID: id, VoteAverage: vote, PosterPath: poster, GenreIDs: []int{}}
}

func TestList_ResolvesEachMode(t *testing.T) {
	stub := &stubCatalog{}
	v := newViews(stub)
	ctx := context.Background()

	for _, q := range []ListQuery{
		{Mode: ModeTrending, Kind: tmdb.TV},
		{Mode: ModePopular, Kind: tmdb.Movie},
		{Mode: ModeNowPlaying, Kind: tmdb.TV},
		{Mode: ModeSearch, Kind: tmdb.Movie, Query: "  Matrix "},
		{Mode: ModeDiscover, Kind: tmdb.Movie, Page: 4},
	} {
		_, err := v.List(ctx, q)
		require.NoError(t, err, "%s", q.Mode)
	}

	assert.Equal(t, []string{
		"trending/tv/week",
		"popular/movie",
		"now_playing/tv",
		"search/movie/Matrix",
		"discover/movie",
	}, stub.called())
	assert.Equal(t, 4, stub.filters.Page)
}

func TestList_BlankSearchSkipsUpstream(t *testing.T) {
	stub := &stubCatalog{}
	v := newViews(stub)

	p, err := v.List(context.Background(), ListQuery{Mode: ModeSearch, Kind: tmdb.TV, Query: "   "})
	require.NoError(t, err)
	assert.Empty(t, p.Results)
	assert.NotNil(t, p.Results)
	assert.Empty(t, stub.called())

	_, err = v.List(context.Background(), ListQuery{Mode: "upcoming", Kind: tmdb.TV})
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestQuickSearch_TopFiveOfEach(t *testing.T) {
	stub := &stubCatalog{
		search: func(_ context.Context, kind tmdb.MediaKind, _ string) (*tmdb.Page[tmdb.Item], error) {
			items := make([]tmdb.Item, 8)
			for i := range items {
				items[i] = tmdb.Item{Kind: kind, ID: i + 1}
			}
			return page(items...), nil
		},
	}
	v := newViews(stub)

	got, err := v.QuickSearch(context.Background(), "dark")
	require.NoError(t, err)
	require.Len(t, got, 2*QuickSearchLimit)
	for i, it := range got {
		if i < QuickSearchLimit {
			assert.Equal(t, tmdb.Movie, it.Kind)
		} else {
			assert.Equal(t, tmdb.TV, it.Kind)
		}
	}

	empty, err := v.QuickSearch(context.Background(), " ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestQuickSearch_OneSideFails(t *testing.T) {
	boom := &tmdb.RequestError{StatusCode: http.StatusInternalServerError}
	stub := &stubCatalog{
		search: func(_ context.Context, kind tmdb.MediaKind, _ string) (*tmdb.Page[tmdb.Item], error) {
			if kind == tmdb.TV {
				return nil, boom
			}
			return page(tmdb.Item{Kind: kind, ID: 1}), nil
		},
	}

	_, err := newViews(stub).QuickSearch(context.Background(), "dark")
	assert.ErrorIs(t, err, tmdb.ErrRequestFailed)
}

func TestLoadDetail_JoinsAndPicksTrailer(t *testing.T) {
	stub := &stubCatalog{
		cast: []tmdb.Credit{{ID: 6384, Name: "Keanu Reeves"}},
		videos: []tmdb.Video{
			{Key: "clip", Site: "YouTube", Type: "Clip"},
			{Key: "trailer", Site: "YouTube", Type: "Trailer"},
		},
	}
	v := newViews(stub)

	var statesCalled bool
	d, err := v.LoadDetail(context.Background(), tmdb.Movie, 603, func(_ context.Context, kind tmdb.MediaKind, id int) (*tmdb.AccountStates, error) {
		statesCalled = true
		return &tmdb.AccountStates{ID: id, Favorite: true}, nil
	})
	require.NoError(t, err)

	assert.True(t, statesCalled)
	assert.Equal(t, "The Matrix", d.Details.Title)
	assert.Len(t, d.Cast, 1)
	require.NotNil(t, d.Trailer)
	assert.Equal(t, "trailer", d.Trailer.Key)
	require.Len(t, d.Similar, 1)
	require.NotNil(t, d.States)
	assert.True(t, d.States.Favorite)
}

func TestLoadDetail_CoreFailureFailsView(t *testing.T) {
	stub := &stubCatalog{detailsErr: &tmdb.RequestError{StatusCode: http.StatusNotFound}}

	_, err := newViews(stub).LoadDetail(context.Background(), tmdb.Movie, 1, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, tmdb.StatusCode(err))
}

func TestLoadDetail_OptionalPartsDegrade(t *testing.T) {
	stub := &stubCatalog{similarErr: errors.New("timeout")}

	d, err := newViews(stub).LoadDetail(context.Background(), tmdb.TV, 1399, func(context.Context, tmdb.MediaKind, int) (*tmdb.AccountStates, error) {
		return nil, errors.New("session expired")
	})
	require.NoError(t, err)
	assert.NotNil(t, d.Similar)
	assert.Empty(t, d.Similar)
	assert.Nil(t, d.States)
	assert.Nil(t, d.Trailer)
}

func TestLoadHome(t *testing.T) {
	stub := &stubCatalog{
		trending: map[tmdb.MediaKind][]tmdb.Item{
			tmdb.Movie: {
				movie(1, 6.1, "https://img/p1.jpg", ""),
				movie(2, 8.4, "https://img/p2.jpg", "https://img/b2.jpg"),
				movie(3, 9.9, "", "https://img/b3.jpg"),
			},
			tmdb.TV: {
				show(10, 7.2, "https://img/s10.jpg"),
			},
		},
		videos: []tmdb.Video{{Key: "teaser", Site: "YouTube", Type: "Teaser"}},
		cast:   make([]tmdb.Credit, 15),
	}

	home, err := newViews(stub).LoadHome(context.Background())
	require.NoError(t, err)

	ids := make([]int, len(home.Trending))
	for i, it := range home.Trending {
		ids[i] = it.ID
	}
	assert.Equal(t, []int{2, 10, 1}, ids, "posterless items are dropped, rest sorted by vote")

	require.NotNil(t, home.Hero)
	assert.Equal(t, 2, home.Hero.Movie.ID)
	require.NotNil(t, home.Hero.Trailer)
	assert.Equal(t, "teaser", home.Hero.Trailer.Key)
	assert.Len(t, home.Hero.Cast, HeroCastLimit)
}

func TestLoadHome_HeroVideosFailure(t *testing.T) {
	stub := &stubCatalog{
		trending: map[tmdb.MediaKind][]tmdb.Item{
			tmdb.Movie: {movie(2, 8.4, "p", "b")},
		},
		videosErr: errors.New("upstream down"),
	}

	home, err := newViews(stub).LoadHome(context.Background())
	require.NoError(t, err)
	require.NotNil(t, home.Hero)
	assert.Nil(t, home.Hero.Trailer)
}

func TestTrending_Cap(t *testing.T) {
	movies := make([]tmdb.Item, 0, 20)
	shows := make([]tmdb.Item, 0, 20)
	for i := 0; i < 20; i++ {
		movies = append(movies, movie(i, float64(i%10), "p", ""))
		shows = append(shows, show(100+i, float64(i%10), "p"))
	}
	stub := &stubCatalog{trending: map[tmdb.MediaKind][]tmdb.Item{tmdb.Movie: movies, tmdb.TV: shows}}

	got, err := newViews(stub).Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, got, TrendingLimit)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].VoteAverage, got[i].VoteAverage)
	}
}

func TestDebouncedSearch_LatestWins(t *testing.T) {
	release := make(chan struct{})
	stub := &stubCatalog{
		search: func(ctx context.Context, kind tmdb.MediaKind, query string) (*tmdb.Page[tmdb.Item], error) {
			if query == "mat" {
				select {
				case <-release:
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return page(tmdb.Item{Kind: kind, ID: len(query), Title: query}), nil
		},
	}
	s := NewDebouncedSearch(newViews(stub), 0)

	first := make(chan error, 1)
	go func() {
		_, err := s.Search(context.Background(), "tab-1", "mat")
		first <- err
	}()

	// wait until the first request is in flight upstream
	require.Eventually(t, func() bool { return len(stub.called()) > 0 }, 5*time.Second, time.Millisecond)

	items, err := s.Search(context.Background(), "tab-1", "matrix")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "matrix", items[0].Title)

	close(release)
	select {
	case err := <-first:
		assert.ErrorIs(t, err, latest.ErrSuperseded)
	case <-time.After(5 * time.Second):
		t.Fatal("superseded search did not return")
	}
}

func TestDebouncedSearch_DelayCutShort(t *testing.T) {
	stub := &stubCatalog{}
	s := NewDebouncedSearch(newViews(stub), time.Minute)

	first := make(chan error, 1)
	go func() {
		_, err := s.Search(context.Background(), "tab-1", "a")
		first <- err
	}()

	require.Eventually(t, func() bool { return s.tracker.Len() == 1 }, 5*time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Search(ctx, "tab-1", "ab")
	assert.ErrorIs(t, err, context.Canceled)

	select {
	case err := <-first:
		assert.ErrorIs(t, err, latest.ErrSuperseded)
	case <-time.After(5 * time.Second):
		t.Fatal("superseded search did not return")
	}
	assert.Empty(t, stub.called())
}
