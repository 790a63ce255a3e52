package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"

	"github.com/mel-cell/mellow-movie-TMDb-api/api"
	_ "github.com/mel-cell/mellow-movie-TMDb-api/docs"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/config"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/logger"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/session"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("development", false).Error("invalid configuration", "key", config.Key(err), "err", err)
		os.Exit(1)
	}
	log := logger.Init(cfg.Env, cfg.Debug)
	if envErr != nil {
		log.Info("no .env file loaded, using process environment", "err", envErr)
	}
	if cfg.SessionSecretGenerated {
		log.Warn("SESSION_SECRET not set, using a random one; pending logins will not survive a restart")
	}

	port := flag.String("p", "8080", "listen port")
	address := flag.String("a", "0.0.0.0", "listen address")
	help := flag.Bool("h", false, "show help")
	swaggerFlag := flag.Bool("swagger", false, "serve Swagger docs")

	if envPort := os.Getenv("PORT"); envPort != "" {
		*port = envPort
	}
	if envAddress := os.Getenv("ADDRESS"); envAddress != "" {
		*address = envAddress
	}

	flag.Parse()
	if *help {
		flag.Usage()
		return
	}

	client, err := tmdb.NewClient(cfg.BaseURL, cfg.APIKey,
		tmdb.WithImageBaseURL(cfg.ImageBaseURL),
		tmdb.WithLanguage(cfg.Language),
		tmdb.WithTimeout(cfg.Timeout),
		tmdb.WithLogger(log),
	)
	if err != nil {
		log.Error("build TMDB client", "err", err)
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storage, err := internal.OpenStorage(startCtx, cfg.DBURL)
	if err != nil {
		log.Error("open token storage", "err", err)
		os.Exit(1)
	}

	sessions := session.New(client, storage, session.WithLogger(log))
	if err := sessions.Init(startCtx); err != nil {
		log.Error("resume cached session", "err", err)
	}

	h := server.Default(server.WithHostPorts(*address + ":" + *port))

	api.RegisterRoutes(h.Group("/"), api.Deps{
		Config:   cfg,
		Client:   client,
		Sessions: sessions,
		Storage:  storage,
		Logger:   log,
	})

	h.NoRoute(func(ctx context.Context, c *app.RequestContext) {
		c.JSON(404, internal.Error{Code: "NOT_FOUND", Message: "route not found"})
	})

	if *swaggerFlag {
		log.Info("swagger enabled", "url", "http://"+*address+":"+*port+"/swagger/index.html")
		url := swagger.URL("http://" + *address + ":" + *port + "/swagger/doc.json")
		h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler, url))
	}

	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		sessions.Teardown(ctx)
		if err := storage.Close(); err != nil {
			log.Error("close token storage", "err", err)
		}
	})

	log.Info("listening", "address", *address, "port", *port, "language", client.Language())
	h.Spin()
}
