package internal

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/session"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

// account godoc
// @Summary      Session state
// @Description  Whether a TMDB session is active and, if so, its account.
// @Tags         Account
// @Produce      json
// @Success      200  {object}  AccountResponse
// @Router       /api/account [get]
func (h *Handler) account(ctx context.Context, c *app.RequestContext) {
	snap := h.sessions.Snapshot()
	resp := AccountResponse{State: snap.State, Account: snap.Account}
	if snap.SignedIn() && h.storage != nil {
		at, ok, err := h.storage.UpdatedAt(ctx, session.TokenKey)
		if err != nil {
			h.logger.Warn("read session timestamp", "err", err)
		} else if ok {
			resp.SignedInAt = &at
		}
	}
	c.JSON(http.StatusOK, resp)
}

// listFavorites godoc
// @Summary      Favorites
// @Tags         Account
// @Produce      json
// @Param        kind  path      string  true   "movie or tv"
// @Param        page  query     int     false  "Page, 1 to 500"
// @Success      200   {object}  ItemPage
// @Failure      400   {object}  Error  "Invalid parameter"
// @Failure      401   {object}  Error  "Not signed in"
// @Failure      502   {object}  Error  "TMDB request failed"
// @Router       /api/account/favorites/{kind} [get]
func (h *Handler) listFavorites(ctx context.Context, c *app.RequestContext) {
	h.accountList(ctx, c, h.sessions.ListFavorites)
}

// listRated godoc
// @Summary      Rated titles
// @Description  Rated titles of one kind; each result carries the account's rating.
// @Tags         Account
// @Produce      json
// @Param        kind  path      string  true   "movie or tv"
// @Param        page  query     int     false  "Page, 1 to 500"
// @Success      200   {object}  ItemPage
// @Failure      400   {object}  Error  "Invalid parameter"
// @Failure      401   {object}  Error  "Not signed in"
// @Failure      502   {object}  Error  "TMDB request failed"
// @Router       /api/account/rated/{kind} [get]
func (h *Handler) listRated(ctx context.Context, c *app.RequestContext) {
	h.accountList(ctx, c, h.sessions.ListRated)
}

func (h *Handler) accountList(ctx context.Context, c *app.RequestContext, list func(context.Context, tmdb.MediaKind, int) (*tmdb.Page[tmdb.Item], error)) {
	kind, err := kindParam(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	page, err := intQuery(c, "page")
	if err != nil {
		h.fail(c, err)
		return
	}
	p, err := list(ctx, kind, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newItemPage(p))
}

// setFavorite godoc
// @Summary      Mark or unmark a favorite
// @Description  PUT marks the title as a favorite, DELETE unmarks it. Both are idempotent.
// @Tags         Account
// @Produce      json
// @Param        id   path      int  true  "TMDB id"
// @Success      200  {object}  MutationResult
// @Failure      400  {object}  Error  "Invalid id"
// @Failure      401  {object}  Error  "Not signed in"
// @Failure      502  {object}  Error  "TMDB request failed"
// @Router       /api/movie/{id}/favorite [put]
// @Router       /api/movie/{id}/favorite [delete]
// @Router       /api/tv/{id}/favorite [put]
// @Router       /api/tv/{id}/favorite [delete]
func (h *Handler) setFavorite(kind tmdb.MediaKind, favorite bool) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		id, err := idParam(c, "id")
		if err != nil {
			h.fail(c, err)
			return
		}
		resp, err := h.sessions.SetFavorite(ctx, kind, id, favorite)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, MutationResult{
			Kind:          kind,
			ID:            id,
			Favorite:      &favorite,
			StatusCode:    resp.StatusCode,
			StatusMessage: resp.StatusMessage,
		})
	}
}

// rate godoc
// @Summary      Rate a title
// @Tags         Account
// @Accept       json
// @Produce      json
// @Param        id      path      int           true  "TMDB id"
// @Param        rating  body      RatingSubmit  true  "Rating from 0.5 to 10 in steps of 0.5"
// @Success      200     {object}  MutationResult
// @Failure      400     {object}  Error  "Invalid id or body"
// @Failure      401     {object}  Error  "Not signed in"
// @Failure      422     {object}  Error  "Rating out of range"
// @Failure      502     {object}  Error  "TMDB request failed"
// @Router       /api/movie/{id}/rating [put]
// @Router       /api/tv/{id}/rating [put]
func (h *Handler) rate(kind tmdb.MediaKind) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		id, err := idParam(c, "id")
		if err != nil {
			h.fail(c, err)
			return
		}
		var payload RatingSubmit
		if err := c.Bind(&payload); err != nil {
			h.fail(c, badRequest("invalid request body"))
			return
		}
		if err := tmdb.ValidateRating(payload.Value); err != nil {
			h.fail(c, err)
			return
		}
		resp, err := h.sessions.Rate(ctx, kind, id, payload.Value)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, MutationResult{
			Kind:          kind,
			ID:            id,
			Rating:        &payload.Value,
			StatusCode:    resp.StatusCode,
			StatusMessage: resp.StatusMessage,
		})
	}
}

// unrate godoc
// @Summary      Remove a rating
// @Tags         Account
// @Produce      json
// @Param        id   path      int  true  "TMDB id"
// @Success      200  {object}  MutationResult
// @Failure      400  {object}  Error  "Invalid id"
// @Failure      401  {object}  Error  "Not signed in"
// @Failure      502  {object}  Error  "TMDB request failed"
// @Router       /api/movie/{id}/rating [delete]
// @Router       /api/tv/{id}/rating [delete]
func (h *Handler) unrate(kind tmdb.MediaKind) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		id, err := idParam(c, "id")
		if err != nil {
			h.fail(c, err)
			return
		}
		resp, err := h.sessions.Unrate(ctx, kind, id)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, MutationResult{
			Kind:          kind,
			ID:            id,
			StatusCode:    resp.StatusCode,
			StatusMessage: resp.StatusMessage,
		})
	}
}
