// Package logger configures the process-wide slog logger and keeps hertz's
// own logger at the same level.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// New builds a logger writing to w: text for development, JSON otherwise.
// debug lowers the level to Debug.
func New(w io.Writer, env string, debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("app", "mellow"))
}

// Init installs a stdout logger as the slog default and aligns hlog.
func Init(env string, debug bool) *slog.Logger {
	l := New(os.Stdout, env, debug)
	slog.SetDefault(l)
	if debug {
		hlog.SetLevel(hlog.LevelDebug)
	} else {
		hlog.SetLevel(hlog.LevelInfo)
	}
	return l
}
