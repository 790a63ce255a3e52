package internal

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/browse"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

// home godoc
// @Summary      Home page
// @Description  Hero movie with its trailer and cast, plus today's trending movies and shows sorted by rating.
// @Tags         Catalog
// @Produce      json
// @Param        language  query     string  false  "en-US or id-ID"
// @Success      200       {object}  browse.Home
// @Failure      502       {object}  Error  "TMDB request failed"
// @Router       /api/home [get]
func (h *Handler) home(ctx context.Context, c *app.RequestContext) {
	v, err := h.viewsFor(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	home, err := v.LoadHome(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, home)
}

// trendingAll godoc
// @Summary      Combined trending
// @Description  Today's trending movies and shows that have a poster, sorted by vote average, at most 20.
// @Tags         Catalog
// @Produce      json
// @Param        language  query     string  false  "en-US or id-ID"
// @Success      200       {object}  ItemList
// @Failure      502       {object}  Error  "TMDB request failed"
// @Router       /api/trending [get]
func (h *Handler) trendingAll(ctx context.Context, c *app.RequestContext) {
	v, err := h.viewsFor(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	items, err := v.Trending(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ItemList{Results: items})
}

// quickSearch godoc
// @Summary      Quick search
// @Description  As-you-type search over movies and shows, top 5 of each. Requests with the same client key replace each other; a replaced request gets 409.
// @Tags         Catalog
// @Produce      json
// @Param        q         query     string  false  "Search text"
// @Param        client    query     string  false  "Key grouping requests from one search box (defaults to the caller IP)"
// @Param        language  query     string  false  "en-US or id-ID"
// @Success      200       {object}  ItemList
// @Failure      409       {object}  Error  "Replaced by a newer search"
// @Failure      502       {object}  Error  "TMDB request failed"
// @Router       /api/search [get]
func (h *Handler) quickSearch(ctx context.Context, c *app.RequestContext) {
	lang, err := h.lang(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	client := strings.TrimSpace(c.Query("client"))
	if client == "" {
		client = c.ClientIP()
	}
	items, err := h.searches[lang].Search(ctx, lang+"|"+client, c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ItemList{Results: items})
}

// listing godoc
// @Summary      Catalog listings
// @Description  Trending (window=day|week), popular, now playing (movies) or on the air (shows), title search and discover.
// @Tags         Catalog
// @Produce      json
// @Param        window          query     string   false  "Trending window: day or week (default week)"
// @Param        page            query     int      false  "Page, 1 to 500"
// @Param        q               query     string   false  "Search text (search only)"
// @Param        genres          query     string   false  "Comma separated genre ids, all must match (discover only)"
// @Param        sort            query     string   false  "rating_desc, title_asc, title_desc, date_asc or date_desc (discover only)"
// @Param        year            query     int      false  "Release or first air year (discover only)"
// @Param        min_rating      query     number   false  "Minimum vote average (discover only)"
// @Param        origin_country  query     string   false  "ISO 3166-1 country code (discover only)"
// @Param        language        query     string   false  "en-US or id-ID"
// @Success      200             {object}  ItemPage
// @Failure      400             {object}  Error  "Invalid parameter"
// @Failure      502             {object}  Error  "TMDB request failed"
// @Router       /api/movie/trending [get]
// @Router       /api/tv/trending [get]
// @Router       /api/movie/popular [get]
// @Router       /api/tv/popular [get]
// @Router       /api/movie/now-playing [get]
// @Router       /api/tv/now-playing [get]
// @Router       /api/movie/search [get]
// @Router       /api/tv/search [get]
// @Router       /api/movie/discover [get]
// @Router       /api/tv/discover [get]
func (h *Handler) listing(kind tmdb.MediaKind, mode browse.Mode) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		v, err := h.viewsFor(c)
		if err != nil {
			h.fail(c, err)
			return
		}
		q, err := listQuery(c, kind, mode)
		if err != nil {
			h.fail(c, err)
			return
		}
		page, err := v.List(ctx, q)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, newItemPage(page))
	}
}

func listQuery(c *app.RequestContext, kind tmdb.MediaKind, mode browse.Mode) (browse.ListQuery, error) {
	q := browse.ListQuery{Mode: mode, Kind: kind}

	page, err := intQuery(c, "page")
	if err != nil {
		return q, err
	}
	q.Page = page

	switch mode {
	case browse.ModeTrending:
		q.Window = tmdb.TimeWindow(c.Query("window"))
	case browse.ModeSearch:
		q.Query = c.Query("q")
	case browse.ModeDiscover:
		q.Filters, err = discoverFilters(c)
		if err != nil {
			return q, err
		}
	}
	return q, nil
}

func discoverFilters(c *app.RequestContext) (tmdb.Filters, error) {
	var f tmdb.Filters

	if raw := strings.TrimSpace(c.Query("genres")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil {
				return f, badRequest("invalid genre id: " + part)
			}
			f.GenreIDs = append(f.GenreIDs, id)
		}
	}

	sort, err := tmdb.ParseSortOrder(strings.TrimSpace(c.Query("sort")))
	if err != nil {
		return f, err
	}
	f.SortBy = sort

	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1800 || year > 9999 {
			return f, badRequest("invalid year: " + raw)
		}
		f.Year = &year
	}

	if raw := strings.TrimSpace(c.Query("min_rating")); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 10 {
			return f, badRequest("invalid min_rating: " + raw)
		}
		f.MinRating = &rating
	}

	f.OriginCountry = c.Query("origin_country")
	return f, nil
}

// genres godoc
// @Summary      Genre list
// @Description  Genre reference data. An upstream failure yields an empty list.
// @Tags         Catalog
// @Produce      json
// @Param        language  query     string  false  "en-US or id-ID"
// @Success      200       {object}  GenreList
// @Router       /api/movie/genres [get]
// @Router       /api/tv/genres [get]
func (h *Handler) genres(kind tmdb.MediaKind) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		cl, err := h.catalogFor(c)
		if err != nil {
			h.fail(c, err)
			return
		}
		genres, err := cl.ListGenres(ctx, kind)
		if err != nil {
			h.logger.Warn("genres unavailable", "kind", kind, "err", err)
			genres = []tmdb.Genre{}
		}
		c.JSON(http.StatusOK, GenreList{Genres: genres})
	}
}

// detail godoc
// @Summary      Title detail
// @Description  Details, cast, videos with the preferred trailer, similar titles and, when signed in, the account's favorite and rating.
// @Tags         Catalog
// @Produce      json
// @Param        id        path      int     true   "TMDB id"
// @Param        language  query     string  false  "en-US or id-ID"
// @Success      200       {object}  browse.Detail
// @Failure      400       {object}  Error  "Invalid id"
// @Failure      404       {object}  Error  "Unknown title"
// @Failure      502       {object}  Error  "TMDB request failed"
// @Router       /api/movie/{id} [get]
// @Router       /api/tv/{id} [get]
func (h *Handler) detail(kind tmdb.MediaKind) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		v, err := h.viewsFor(c)
		if err != nil {
			h.fail(c, err)
			return
		}
		id, err := idParam(c, "id")
		if err != nil {
			h.fail(c, err)
			return
		}
		var states browse.StatesFunc
		if h.sessions.Snapshot().SignedIn() {
			states = h.sessions.AccountStates
		}
		d, err := v.LoadDetail(ctx, kind, id, states)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// similar godoc
// @Summary      Similar titles
// @Tags         Catalog
// @Produce      json
// @Param        id        path      int     true   "TMDB id"
// @Param        page      query     int     false  "Page, 1 to 500"
// @Param        language  query     string  false  "en-US or id-ID"
// @Success      200       {object}  ItemPage
// @Failure      400       {object}  Error  "Invalid parameter"
// @Failure      502       {object}  Error  "TMDB request failed"
// @Router       /api/movie/{id}/similar [get]
// @Router       /api/tv/{id}/similar [get]
func (h *Handler) similar(kind tmdb.MediaKind) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		cl, err := h.catalogFor(c)
		if err != nil {
			h.fail(c, err)
			return
		}
		id, err := idParam(c, "id")
		if err != nil {
			h.fail(c, err)
			return
		}
		page, err := intQuery(c, "page")
		if err != nil {
			h.fail(c, err)
			return
		}
		p, err := cl.GetSimilar(ctx, kind, id, page)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, newItemPage(p))
	}
}

// season godoc
// @Summary      TV season
// @Description  One season of a show with its episodes.
// @Tags         Catalog
// @Produce      json
// @Param        id        path      int     true   "TMDB show id"
// @Param        season    path      int     true   "Season number, 0 for specials"
// @Param        language  query     string  false  "en-US or id-ID"
// @Success      200       {object}  tmdb.Season
// @Failure      400       {object}  Error  "Invalid parameter"
// @Failure      404       {object}  Error  "Unknown show or season"
// @Failure      502       {object}  Error  "TMDB request failed"
// @Router       /api/tv/{id}/season/{season} [get]
func (h *Handler) season(ctx context.Context, c *app.RequestContext) {
	cl, err := h.catalogFor(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	number, err := idParam(c, "season")
	if err != nil {
		h.fail(c, err)
		return
	}
	s, err := cl.GetSeasonDetails(ctx, id, number)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
