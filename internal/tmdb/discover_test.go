package tmdb

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover_OmitsUnsetFilters(t *testing.T) {
	var got url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/discover/movie", r.URL.Path)
		got = r.URL.Query()
		writeJSON(t, w, http.StatusOK, map[string]any{"page": 1, "results": []any{}, "total_pages": 0, "total_results": 0})
	})

	minRating := 7.0
	_, err := c.Discover(context.Background(), Movie, Filters{GenreIDs: []int{28}, MinRating: &minRating})
	require.NoError(t, err)

	assert.Equal(t, "28", got.Get("with_genres"))
	assert.Equal(t, "7", got.Get("vote_average.gte"))
	for _, key := range []string{"primary_release_year", "first_air_date_year", "sort_by", "with_origin_country", "page"} {
		assert.False(t, got.Has(key), "unexpected %s", key)
	}
}

func TestFilters_ValuesPerKind(t *testing.T) {
	year := 2020
	rating := 6.5
	f := Filters{
		GenreIDs:      []int{18, 80, 18},
		SortBy:        SortDateDesc,
		Year:          &year,
		MinRating:     &rating,
		OriginCountry: " kr ",
		Page:          3,
	}

	movie, err := f.values(Movie)
	require.NoError(t, err)
	assert.Equal(t, "18,80", movie.Get("with_genres"))
	assert.Equal(t, "primary_release_date.desc", movie.Get("sort_by"))
	assert.Equal(t, "2020", movie.Get("primary_release_year"))
	assert.Equal(t, "6.5", movie.Get("vote_average.gte"))
	assert.Equal(t, "KR", movie.Get("with_origin_country"))
	assert.Equal(t, "3", movie.Get("page"))

	tv, err := f.values(TV)
	require.NoError(t, err)
	assert.Equal(t, "first_air_date.desc", tv.Get("sort_by"))
	assert.Equal(t, "2020", tv.Get("first_air_date_year"))
	assert.False(t, tv.Has("primary_release_year"))
}

func TestSortParam(t *testing.T) {
	cases := []struct {
		kind  MediaKind
		order SortOrder
		want  string
	}{
		{Movie, SortRatingDesc, "vote_average.desc"},
		{TV, SortRatingDesc, "vote_average.desc"},
		{Movie, SortTitleAsc, "title.asc"},
		{TV, SortTitleAsc, "name.asc"},
		{Movie, SortTitleDesc, "title.desc"},
		{TV, SortDateAsc, "first_air_date.asc"},
		{Movie, SortDateAsc, "primary_release_date.asc"},
	}
	for _, tc := range cases {
		got, err := sortParam(tc.kind, tc.order)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %s", tc.kind, tc.order)
	}
}

func TestFilters_Rejects(t *testing.T) {
	_, err := Filters{SortBy: "popularity"}.values(Movie)
	assert.ErrorIs(t, err, ErrInvalidSort)

	_, err = Filters{Page: MaxPage + 1}.values(Movie)
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	_, err = Filters{}.values("person")
	assert.ErrorIs(t, err, ErrInvalidMediaKind)

	_, err = ParseSortOrder("nope")
	assert.ErrorIs(t, err, ErrInvalidSort)

	o, err := ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, SortOrder(""), o)
}
