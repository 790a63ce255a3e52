// Package config reads the service settings from the environment. main loads
// a .env file first, so values there behave like exported variables.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

const (
	DefaultDBURL               = "mellow.db"
	DefaultQuickSearchDebounce = 300 * time.Millisecond
	DefaultTimeout             = 10 * time.Second

	minSessionSecretLen = 32
)

var (
	// ErrRequired marks a variable that must be set.
	ErrRequired = errors.New("required variable is not set")
	// ErrInvalid marks a variable whose value cannot be parsed.
	ErrInvalid = errors.New("invalid value")
)

// Error reports which variable is wrong.
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Key extracts the offending variable name from err, or "" when err is not
// an *Error.
func Key(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Key
	}
	return ""
}

// Config is the full service configuration.
type Config struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Language     string
	Timeout      time.Duration

	// DBURL is a postgres:// URL or a sqlite file path.
	DBURL string

	SessionSecret string
	// SessionSecretGenerated is set when SESSION_SECRET was empty and a
	// random one was made up; login cookies then do not survive a restart.
	SessionSecretGenerated bool

	// AppOrigin is the public origin used to build the login callback URL.
	// Empty means derive it from the incoming request.
	AppOrigin string

	QuickSearchDebounce time.Duration

	Env   string
	Debug bool
}

// Production reports whether ENV selects production behaviour.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads the configuration. TMDB_API_KEY is the only required variable.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:       strings.TrimSpace(os.Getenv("TMDB_API_KEY")),
		BaseURL:      getEnv("TMDB_BASE_URL", tmdb.DefaultBaseURL),
		ImageBaseURL: getEnv("TMDB_IMAGE_BASE_URL", tmdb.DefaultImageBaseURL),
		Language:     getEnv("TMDB_LANGUAGE", tmdb.DefaultLanguage),
		DBURL:        getEnv("DB_URL", DefaultDBURL),
		AppOrigin:    strings.TrimRight(getEnv("APP_ORIGIN", ""), "/"),
		Env:          getEnv("ENV", "development"),
	}

	if cfg.APIKey == "" {
		return nil, &Error{Key: "TMDB_API_KEY", Err: ErrRequired}
	}
	if !tmdb.SupportedLanguage(cfg.Language) {
		return nil, &Error{Key: "TMDB_LANGUAGE", Err: fmt.Errorf("%w: %q", ErrInvalid, cfg.Language)}
	}
	if cfg.AppOrigin != "" {
		if u, err := url.Parse(cfg.AppOrigin); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, &Error{Key: "APP_ORIGIN", Err: fmt.Errorf("%w: %q", ErrInvalid, cfg.AppOrigin)}
		}
	}

	var err error
	if cfg.Timeout, err = getDuration("TMDB_TIMEOUT", DefaultTimeout); err != nil {
		return nil, err
	}
	if cfg.QuickSearchDebounce, err = getDuration("QUICK_SEARCH_DEBOUNCE", DefaultQuickSearchDebounce); err != nil {
		return nil, err
	}
	if cfg.Debug, err = getBool("DEBUG", false); err != nil {
		return nil, err
	}

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	switch {
	case cfg.SessionSecret == "" && cfg.Production():
		return nil, &Error{Key: "SESSION_SECRET", Err: ErrRequired}
	case cfg.SessionSecret == "":
		cfg.SessionSecret = randomSecret()
		cfg.SessionSecretGenerated = true
	case len(cfg.SessionSecret) < minSessionSecretLen:
		return nil, &Error{Key: "SESSION_SECRET", Err: fmt.Errorf("%w: must be at least %d characters", ErrInvalid, minSessionSecretLen)}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getDuration accepts Go durations ("300ms") or a bare number of milliseconds.
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		raw = strconv.Itoa(ms) + "ms"
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, &Error{Key: key, Err: fmt.Errorf("%w: %q", ErrInvalid, raw)}
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &Error{Key: key, Err: fmt.Errorf("%w: %q", ErrInvalid, raw)}
	}
	return b, nil
}

func randomSecret() string {
	b := make([]byte, minSessionSecretLen)
	if _, err := rand.Read(b); err != nil {
		panic("config: read random secret: " + err.Error())
	}
	return hex.EncodeToString(b)
}
