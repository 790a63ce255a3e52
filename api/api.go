package api

import (
	"log/slog"

	"github.com/cloudwego/hertz/pkg/route"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/config"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/session"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

// Deps is what the routes are served from.
type Deps struct {
	Config   *config.Config
	Client   *tmdb.Client
	Sessions *session.Store
	Storage  *internal.LocalStorage
	Logger   *slog.Logger
}

func RegisterRoutes(h *route.RouterGroup, deps Deps) {
	handler := internal.NewHandler(deps.Client, deps.Sessions, deps.Storage, internal.Options{
		SessionSecret: deps.Config.SessionSecret,
		SecureCookies: deps.Config.Production(),
		AppOrigin:     deps.Config.AppOrigin,
		Debounce:      deps.Config.QuickSearchDebounce,
		Logger:        deps.Logger,
	})
	handler.RegisterRoutes(h)
}
