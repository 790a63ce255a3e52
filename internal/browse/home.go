package browse

import (
	"context"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

// Hero is the featured movie at the top of the home page.
type Hero struct {
	Movie   tmdb.Item     `json:"movie"`
	Trailer *tmdb.Video   `json:"trailer,omitempty"`
	Cast    []tmdb.Credit `json:"cast"`
}

// Home is the home page: a hero and the combined trending list.
type Home struct {
	Hero     *Hero       `json:"hero,omitempty"`
	Trending []tmdb.Item `json:"trending"`
}

// Trending merges today's trending movies and shows that have a poster,
// sorted by vote average descending and capped at TrendingLimit.
func (v *Views) Trending(ctx context.Context) ([]tmdb.Item, error) {
	movies, shows, err := v.trendingToday(ctx)
	if err != nil {
		return nil, err
	}
	return combineTrending(movies.Results, shows.Results), nil
}

// LoadHome builds the home page. The hero is the first trending movie with a
// backdrop; its trailer and cast are optional and fall back to empty with a
// warning.
func (v *Views) LoadHome(ctx context.Context) (*Home, error) {
	movies, shows, err := v.trendingToday(ctx)
	if err != nil {
		return nil, err
	}
	home := &Home{Trending: combineTrending(movies.Results, shows.Results)}

	pick := pickHero(movies.Results)
	if pick == nil {
		return home, nil
	}
	hero := &Hero{Movie: *pick, Cast: []tmdb.Credit{}}

	_ = join(ctx,
		func(ctx context.Context) error {
			videos, err := v.catalog.GetVideos(ctx, tmdb.Movie, pick.ID)
			if err != nil {
				v.logger.Warn("hero videos unavailable", "id", pick.ID, "err", err)
				return nil
			}
			hero.Trailer = pickTrailer(videos)
			return nil
		},
		func(ctx context.Context) error {
			cast, err := v.catalog.GetCredits(ctx, tmdb.Movie, pick.ID)
			if err != nil {
				v.logger.Warn("hero cast unavailable", "id", pick.ID, "err", err)
				return nil
			}
			hero.Cast = head(cast, HeroCastLimit)
			return nil
		},
	)
	home.Hero = hero
	return home, nil
}

func (v *Views) trendingToday(ctx context.Context) (movies, shows *tmdb.Page[tmdb.Item], err error) {
	err = join(ctx,
		func(ctx context.Context) (err error) {
			movies, err = v.catalog.ListTrending(ctx, tmdb.Movie, tmdb.Day)
			return err
		},
		func(ctx context.Context) (err error) {
			shows, err = v.catalog.ListTrending(ctx, tmdb.TV, tmdb.Day)
			return err
		},
	)
	return movies, shows, err
}

func combineTrending(movies, shows []tmdb.Item) []tmdb.Item {
	out := make([]tmdb.Item, 0, len(movies)+len(shows))
	for _, list := range [][]tmdb.Item{movies, shows} {
		for _, it := range list {
			if it.PosterPath != "" {
				out = append(out, it)
			}
		}
	}
	byVoteAverage(out)
	return head(out, TrendingLimit)
}

func pickHero(movies []tmdb.Item) *tmdb.Item {
	for i := range movies {
		if movies[i].BackdropPath != "" {
			return &movies[i]
		}
	}
	return nil
}
