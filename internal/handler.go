// Package internal provides the HTTP handlers of the mellow movie service: a
// backend for the TMDB catalog and the signed-in user's favorites and ratings.
//
// @title           Mellow Movie API
// @version         1.0.0
// @description     Movie and TV catalog backed by TMDB, with a single signed-in TMDB session for favorites and ratings.
//
// @BasePath        /
package internal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/gorilla/sessions"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/browse"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/latest"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/session"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

// Options configures a Handler.
type Options struct {
	// SessionSecret keys the login cookie.
	SessionSecret string
	// SecureCookies marks the login cookie Secure.
	SecureCookies bool
	// AppOrigin is the public origin for the login callback; empty means
	// derive it from the request.
	AppOrigin string
	// Debounce is the quick search delay.
	Debounce time.Duration
	Logger   *slog.Logger
}

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	language string
	catalogs map[string]*tmdb.Client
	views    map[string]*browse.Views
	searches map[string]*browse.DebouncedSearch

	sessions *session.Store
	storage  *LocalStorage
	cookies  *sessions.CookieStore

	appOrigin string
	logger    *slog.Logger
}

// NewHandler builds a Handler serving every supported language from copies
// of client.
func NewHandler(client *tmdb.Client, store *session.Store, storage *LocalStorage, opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{
		language:  client.Language(),
		catalogs:  make(map[string]*tmdb.Client, len(tmdb.SupportedLanguages)),
		views:     make(map[string]*browse.Views, len(tmdb.SupportedLanguages)),
		searches:  make(map[string]*browse.DebouncedSearch, len(tmdb.SupportedLanguages)),
		sessions:  store,
		storage:   storage,
		cookies:   newCookieStore(opts.SessionSecret, opts.SecureCookies),
		appOrigin: strings.TrimRight(opts.AppOrigin, "/"),
		logger:    logger,
	}
	for _, lang := range tmdb.SupportedLanguages {
		cl, err := client.InLanguage(lang)
		if err != nil {
			continue
		}
		v := browse.New(cl, browse.WithLogger(logger))
		h.catalogs[lang] = cl
		h.views[lang] = v
		h.searches[lang] = browse.NewDebouncedSearch(v, opts.Debounce)
	}
	return h
}

func (h *Handler) RegisterRoutes(rg *route.RouterGroup) {
	rg.Use(h.requestID, h.accessLog)

	rg.GET("/healthz", h.healthz)

	api := rg.Group("/api")
	{
		api.GET("/home", h.home)
		api.GET("/trending", h.trendingAll)
		api.GET("/search", h.quickSearch)

		api.GET("/account", h.account)
		api.GET("/account/favorites/:kind", h.listFavorites)
		api.GET("/account/rated/:kind", h.listRated)

		for _, kind := range []tmdb.MediaKind{tmdb.Movie, tmdb.TV} {
			g := api.Group("/" + string(kind))
			g.GET("/trending", h.listing(kind, browse.ModeTrending))
			g.GET("/popular", h.listing(kind, browse.ModePopular))
			g.GET("/now-playing", h.listing(kind, browse.ModeNowPlaying))
			g.GET("/search", h.listing(kind, browse.ModeSearch))
			g.GET("/discover", h.listing(kind, browse.ModeDiscover))
			g.GET("/genres", h.genres(kind))
			g.GET("/:id", h.detail(kind))
			g.GET("/:id/similar", h.similar(kind))
			g.PUT("/:id/favorite", h.setFavorite(kind, true))
			g.DELETE("/:id/favorite", h.setFavorite(kind, false))
			g.PUT("/:id/rating", h.rate(kind))
			g.DELETE("/:id/rating", h.unrate(kind))
		}
		api.GET("/tv/:id/season/:season", h.season)
	}

	auth := rg.Group("/auth")
	{
		auth.GET("/login", h.login)
		auth.GET("/callback", h.callback)
		auth.POST("/logout", h.logout)
	}
}

// healthz godoc
// @Summary   Health check
// @Tags      System
// @Produce   json
// @Success   200  {object}  Health  "Service is healthy"
// @Failure   503  {object}  Health  "Token storage unreachable"
// @Router    /healthz [get]
func (h *Handler) healthz(ctx context.Context, c *app.RequestContext) {
	if h.storage != nil {
		if err := h.storage.Ping(ctx); err != nil {
			h.logger.Error("storage ping failed", "err", err)
			c.JSON(http.StatusServiceUnavailable, Health{Status: "degraded", Storage: "unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, Health{Status: "ok", Storage: "ok"})
}

// fail maps err onto the error envelope.
func (h *Handler) fail(c *app.RequestContext, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", string(c.Path()), "status", status, "err", err)
	}
	c.JSON(status, body)
}

func classify(err error) (int, Error) {
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		return http.StatusUnauthorized, Error{Code: "UNAUTHORIZED", Message: "sign in with TMDB first"}
	case errors.Is(err, session.ErrSessionRejected):
		return http.StatusUnauthorized, Error{Code: "UNAUTHORIZED", Message: "TMDB rejected the login"}
	case errors.Is(err, latest.ErrSuperseded):
		return http.StatusConflict, Error{Code: "SUPERSEDED", Message: "a newer search replaced this one"}
	case errors.Is(err, tmdb.ErrInvalidRating):
		return http.StatusUnprocessableEntity, Error{Code: "UNPROCESSABLE", Message: err.Error()}
	case errors.Is(err, tmdb.ErrInvalidMediaKind),
		errors.Is(err, tmdb.ErrInvalidWindow),
		errors.Is(err, tmdb.ErrInvalidSort),
		errors.Is(err, tmdb.ErrPageOutOfRange),
		errors.Is(err, tmdb.ErrUnsupportedLanguage),
		errors.Is(err, browse.ErrUnknownMode),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest, Error{Code: "BAD_REQUEST", Message: err.Error()}
	}

	var re *tmdb.RequestError
	if errors.As(err, &re) {
		if re.StatusCode == http.StatusNotFound {
			return http.StatusNotFound, Error{Code: "NOT_FOUND", Message: "not found on TMDB"}
		}
		details := map[string]any{"upstream_status": re.StatusCode}
		if re.Payload != nil && re.Payload.StatusMessage != "" {
			details["upstream_message"] = re.Payload.StatusMessage
		}
		return http.StatusBadGateway, Error{Code: "UPSTREAM", Message: "TMDB request failed", Details: details}
	}
	return http.StatusInternalServerError, Error{Code: "INTERNAL", Message: "internal error"}
}

var errBadRequest = errors.New("bad request")

func badRequest(msg string) error {
	return &paramError{msg: msg}
}

type paramError struct{ msg string }

func (e *paramError) Error() string { return e.msg }

func (e *paramError) Is(target error) bool { return target == errBadRequest }

// lang picks the catalog language from ?language=, defaulting to the
// client's own.
func (h *Handler) lang(c *app.RequestContext) (string, error) {
	lang := strings.TrimSpace(c.Query("language"))
	if lang == "" {
		return h.language, nil
	}
	if _, ok := h.views[lang]; !ok {
		return "", tmdb.ErrUnsupportedLanguage
	}
	return lang, nil
}

func (h *Handler) viewsFor(c *app.RequestContext) (*browse.Views, error) {
	lang, err := h.lang(c)
	if err != nil {
		return nil, err
	}
	return h.views[lang], nil
}

func (h *Handler) catalogFor(c *app.RequestContext) (*tmdb.Client, error) {
	lang, err := h.lang(c)
	if err != nil {
		return nil, err
	}
	return h.catalogs[lang], nil
}

func intQuery(c *app.RequestContext, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, badRequest("invalid " + key + ": " + raw)
	}
	return v, nil
}

func idParam(c *app.RequestContext, key string) (int, error) {
	v, err := strconv.Atoi(c.Param(key))
	if err != nil || v < 0 {
		return 0, badRequest("invalid " + key + ": " + c.Param(key))
	}
	return v, nil
}

func kindParam(c *app.RequestContext) (tmdb.MediaKind, error) {
	return tmdb.ParseMediaKind(c.Param("kind"))
}
