package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testImageBase = "https://img.test/t/p"

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/3", "test-key", WithImageBaseURL(testImageBase+"/"))
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient("", "key")
	assert.ErrorIs(t, err, ErrMissingBaseURL)

	_, err = NewClient(DefaultBaseURL, "  ")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = NewClient("not a url", "key")
	assert.Error(t, err)

	c, err := NewClient(DefaultBaseURL, "key")
	require.NoError(t, err)
	assert.Equal(t, DefaultLanguage, c.Language())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("TMDB_BASE_URL", "")
	t.Setenv("TMDB_API_KEY", "")
	_, err := NewFromEnv()
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	t.Setenv("TMDB_API_KEY", "abc")
	c, err := NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "api.themoviedb.org", c.baseURL.Host)
}

func TestSearch_PrefixesPosterURLs(t *testing.T) {
	var got url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/movie", r.URL.Path)
		got = r.URL.Query()
		writeJSON(t, w, http.StatusOK, map[string]any{
			"page": 1,
			"results": []map[string]any{
				{"id": 603, "title": "The Matrix", "poster_path": "/matrix.jpg", "backdrop_path": "/bg.jpg", "release_date": "1999-03-30", "vote_average": 8.2, "genre_ids": []int{28, 878}},
				{"id": 604, "title": "The Matrix Reloaded", "poster_path": "/reloaded.jpg", "backdrop_path": nil, "vote_average": 7.0},
			},
			"total_pages":   1,
			"total_results": 2,
		})
	})

	page, err := c.Search(context.Background(), Movie, "Matrix", 1)
	require.NoError(t, err)

	assert.Equal(t, "test-key", got.Get("api_key"))
	assert.Equal(t, "en-US", got.Get("language"))
	assert.Equal(t, "Matrix", got.Get("query"))
	assert.Equal(t, "1", got.Get("page"))

	require.Len(t, page.Results, 2)
	assert.Equal(t, 1, page.Page)
	for _, it := range page.Results {
		assert.Equal(t, Movie, it.Kind)
		assert.True(t, strings.HasPrefix(it.PosterPath, testImageBase), it.PosterPath)
	}
	assert.Equal(t, testImageBase+"/w500/matrix.jpg", page.Results[0].PosterPath)
	assert.Equal(t, testImageBase+"/original/bg.jpg", page.Results[0].BackdropPath)
	assert.Empty(t, page.Results[1].BackdropPath)
	assert.Equal(t, []int{28, 878}, page.Results[0].GenreIDs)
}

func TestListTrending_TVShapes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/trending/tv/week", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"page": 1,
			"results": []map[string]any{
				{"id": 1399, "name": "Game of Thrones", "original_name": "Game of Thrones", "first_air_date": "2011-04-17", "media_type": "tv", "poster_path": "/got.jpg"},
			},
			"total_pages":   1,
			"total_results": 1,
		})
	})

	page, err := c.ListTrending(context.Background(), TV, Week)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)

	it := page.Results[0]
	assert.Equal(t, TV, it.Kind)
	assert.Equal(t, "Game of Thrones", it.Title)
	assert.Equal(t, "2011-04-17", it.ReleaseDate)
	assert.Equal(t, testImageBase+"/w500/got.jpg", it.PosterPath)
}

func TestListTrending_InvalidArgs(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	_, err := c.ListTrending(context.Background(), "person", Day)
	assert.ErrorIs(t, err, ErrInvalidMediaKind)

	_, err = c.ListTrending(context.Background(), Movie, "month")
	assert.ErrorIs(t, err, ErrInvalidWindow)

	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestListNowPlayingOrOnAir_Endpoints(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"page": 2, "results": []any{}, "total_pages": 2, "total_results": 20})
	})

	_, err := c.ListNowPlayingOrOnAir(context.Background(), Movie, 2)
	require.NoError(t, err)
	_, err = c.ListNowPlayingOrOnAir(context.Background(), TV, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"/3/movie/now_playing", "/3/tv/on_the_air"}, paths)
}

func TestPagination_PastLastPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "3":
			writeJSON(t, w, http.StatusOK, map[string]any{"page": 3, "results": nil, "total_pages": 2, "total_results": 40})
		default:
			writeJSON(t, w, http.StatusBadRequest, map[string]any{"success": false, "status_code": 22, "status_message": "Invalid page."})
		}
	})

	page, err := c.ListPopular(context.Background(), Movie, 3)
	require.NoError(t, err)
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)

	_, err = c.ListPopular(context.Background(), Movie, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
}

func TestPagination_CeilingRejectedLocally(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	_, err := c.ListPopular(context.Background(), TV, MaxPage+1)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestRequestError_CarriesStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"success": false, "status_code": 7, "status_message": "Invalid API key: You must be granted a valid key."})
	})

	_, err := c.GetDetails(context.Background(), Movie, 1)
	require.Error(t, err)

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusUnauthorized, re.StatusCode)
	assert.Equal(t, "401 Unauthorized", re.Status)
	require.NotNil(t, re.Payload)
	assert.Equal(t, 7, re.Payload.StatusCode)
	assert.Contains(t, err.Error(), "Invalid API key")
	assert.NotContains(t, err.Error(), "test-key")
}

func TestRequestError_NonJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.ListGenres(context.Background(), Movie)
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, http.StatusBadGateway, StatusCode(err))
}

func TestGetDetails_TV(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/tv/1399", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id":                 1399,
			"name":               "Game of Thrones",
			"first_air_date":     "2011-04-17",
			"poster_path":        "/got.jpg",
			"backdrop_path":      "/got-bg.jpg",
			"episode_run_time":   []int{60},
			"number_of_seasons":  8,
			"number_of_episodes": 73,
			"genres":             []map[string]any{{"id": 18, "name": "Drama"}},
			"seasons": []map[string]any{
				{"id": 3624, "name": "Season 1", "season_number": 1, "episode_count": 10, "poster_path": "/s1.jpg"},
			},
		})
	})

	d, err := c.GetDetails(context.Background(), TV, 1399)
	require.NoError(t, err)

	assert.Equal(t, TV, d.Kind)
	assert.Equal(t, "Game of Thrones", d.Title)
	assert.Equal(t, 60, d.Runtime)
	assert.Equal(t, 8, d.NumberOfSeasons)
	assert.Equal(t, []int{18}, d.GenreIDs)
	assert.Equal(t, testImageBase+"/original/got-bg.jpg", d.BackdropPath)
	require.Len(t, d.Seasons, 1)
	assert.Equal(t, testImageBase+"/w500/s1.jpg", d.Seasons[0].PosterPath)
}

func TestGetCreditsAndSeason_Images(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/3/movie/603/credits":
			writeJSON(t, w, http.StatusOK, map[string]any{
				"id": 603,
				"cast": []map[string]any{
					{"id": 6384, "name": "Keanu Reeves", "character": "Neo", "profile_path": "/keanu.jpg", "order": 0},
					{"id": 2975, "name": "Laurence Fishburne", "character": "Morpheus", "profile_path": nil, "order": 1},
				},
			})
		case "/3/tv/1399/season/1":
			writeJSON(t, w, http.StatusOK, map[string]any{
				"id": 3624, "name": "Season 1", "season_number": 1, "poster_path": "/s1.jpg",
				"episodes": []map[string]any{{"id": 63056, "name": "Winter Is Coming", "episode_number": 1, "season_number": 1, "still_path": "/ep1.jpg"}},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	cast, err := c.GetCredits(context.Background(), Movie, 603)
	require.NoError(t, err)
	require.Len(t, cast, 2)
	assert.Equal(t, testImageBase+"/w500/keanu.jpg", cast[0].ProfilePath)
	assert.Empty(t, cast[1].ProfilePath)

	season, err := c.GetSeasonDetails(context.Background(), 1399, 1)
	require.NoError(t, err)
	assert.Equal(t, testImageBase+"/w500/s1.jpg", season.PosterPath)
	require.Len(t, season.Episodes, 1)
	assert.Equal(t, testImageBase+"/w300/ep1.jpg", season.Episodes[0].StillPath)
}

func TestGetVideos_OnlyUsableHosts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 603,
			"results": []map[string]any{
				{"id": "a", "key": "vKQi3bBA1y8", "name": "Trailer", "site": "YouTube", "type": "Trailer"},
				{"id": "b", "key": "123", "name": "Clip", "site": "Dailymotion", "type": "Clip"},
				{"id": "c", "key": "456", "name": "Teaser", "site": "Vimeo", "type": "Teaser"},
			},
		})
	})

	videos, err := c.GetVideos(context.Background(), Movie, 603)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "https://www.youtube.com/embed/vKQi3bBA1y8", videos[0].EmbedURL())
	assert.True(t, videos[0].IsTrailer())
	assert.Equal(t, "https://player.vimeo.com/video/456", videos[1].EmbedURL())
}

func TestGetSimilar_Path(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/603/similar", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		writeJSON(t, w, http.StatusOK, map[string]any{"page": 2, "results": []map[string]any{{"id": 1, "title": "x", "poster_path": "/p.jpg"}}, "total_pages": 3, "total_results": 50})
	})

	page, err := c.GetSimilar(context.Background(), Movie, 603, 2)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, testImageBase+"/w500/p.jpg", page.Results[0].PosterPath)
}

func TestInLanguage_CopiesClient(t *testing.T) {
	var langs []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		langs = append(langs, r.URL.Query().Get("language"))
		writeJSON(t, w, http.StatusOK, map[string]any{"genres": []map[string]any{{"id": 28, "name": "Laga"}}})
	})

	id, err := c.InLanguage("id-ID")
	require.NoError(t, err)

	_, err = id.ListGenres(context.Background(), Movie)
	require.NoError(t, err)
	_, err = c.ListGenres(context.Background(), Movie)
	require.NoError(t, err)

	assert.Equal(t, []string{"id-ID", "en-US"}, langs)

	_, err = c.InLanguage("fr-FR")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestImageURL(t *testing.T) {
	c, err := NewClient(DefaultBaseURL, "k")
	require.NoError(t, err)

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/a.jpg", c.ImageURL(PosterSize, "/a.jpg"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/a.jpg", c.ImageURL(PosterSize, "a.jpg"))
	assert.Equal(t, "https://cdn.test/x.jpg", c.ImageURL(PosterSize, "https://cdn.test/x.jpg"))
	assert.Empty(t, c.ImageURL(PosterSize, ""))
}

func TestItem_UnmarshalAmbiguous(t *testing.T) {
	var it Item
	err := json.Unmarshal([]byte(`{"id": 5, "overview": "?"}`), &it)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"id": 5, "kind": "tv", "title": "Dark"}`), &it)
	require.NoError(t, err)
	assert.Equal(t, TV, it.Kind)
	assert.Equal(t, "Dark", it.Title)
}
