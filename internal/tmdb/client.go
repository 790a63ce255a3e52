// Package tmdb is the typed client for The Movie Database v3 REST API.
//
// It is the only place that builds catalog request URLs. Every list, detail,
// credit and season value it returns has its image fields rewritten to
// absolute URLs; relative paths never leave the package.
package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public TMDB v3 endpoint.
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// DefaultImageBaseURL is the TMDB image CDN without a size segment.
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	// DefaultLanguage is sent when no language option is given.
	DefaultLanguage = "en-US"
	// MaxPage is the highest page TMDB serves for any listing.
	MaxPage = 500

	approvalBaseURL    = "https://www.themoviedb.org/authenticate/"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 64 * 1024
)

var (
	// ErrMissingBaseURL indicates the upstream base URL was not provided.
	ErrMissingBaseURL = errors.New("tmdb: base URL is required")
	// ErrMissingAPIKey indicates the upstream API key was not provided.
	ErrMissingAPIKey = errors.New("tmdb: API key is required")
	// ErrRequestFailed is matched by every non-2xx upstream response.
	ErrRequestFailed = errors.New("tmdb: catalog request failed")
	// ErrInvalidMediaKind indicates a kind other than movie or tv.
	ErrInvalidMediaKind = errors.New("tmdb: media kind must be movie or tv")
	// ErrInvalidWindow indicates a trending window other than day or week.
	ErrInvalidWindow = errors.New("tmdb: time window must be day or week")
	// ErrInvalidSort indicates an unknown discover sort order.
	ErrInvalidSort = errors.New("tmdb: unknown sort order")
	// ErrPageOutOfRange indicates a page above MaxPage.
	ErrPageOutOfRange = errors.New("tmdb: page out of range")
	// ErrInvalidRating indicates a rating outside 0.5..10 or not in 0.5 steps.
	ErrInvalidRating = errors.New("tmdb: rating must be between 0.5 and 10 in steps of 0.5")
	// ErrUnsupportedLanguage indicates a language the application does not offer.
	ErrUnsupportedLanguage = errors.New("tmdb: unsupported language")
)

// SupportedLanguages lists the locales the application offers.
var SupportedLanguages = []string{"en-US", "id-ID"}

// Client invokes the TMDB API. It is safe for concurrent use and never
// mutates its configuration after construction.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	language   string
	images     imageResolver
	httpClient *http.Client
	logger     *slog.Logger
}

// Option allows customizing the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithImageBaseURL overrides the image CDN base used for absolute image URLs.
func WithImageBaseURL(base string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimRight(strings.TrimSpace(base), "/"); trimmed != "" {
			c.images = imageResolver{base: trimmed}
		}
	}
}

// WithLanguage sets the locale sent with every request.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(lang); trimmed != "" {
			c.language = trimmed
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient builds a Client using the provided base URL and API key.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	trimmedURL := strings.TrimSpace(baseURL)
	if trimmedURL == "" {
		return nil, ErrMissingBaseURL
	}

	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, ErrMissingAPIKey
	}

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return nil, fmt.Errorf("tmdb: parse base URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("tmdb: base URL must be absolute: %q", trimmedURL)
	}

	client := &Client{
		baseURL:  parsedURL,
		apiKey:   trimmedKey,
		language: DefaultLanguage,
		images:   imageResolver{base: DefaultImageBaseURL},
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// NewFromEnv constructs a Client using TMDB_BASE_URL (optional) and
// TMDB_API_KEY environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	base := os.Getenv("TMDB_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return NewClient(base, os.Getenv("TMDB_API_KEY"), opts...)
}

// Language reports the locale sent with every request.
func (c *Client) Language() string { return c.language }

// InLanguage returns a copy of the client that sends lang instead.
func (c *Client) InLanguage(lang string) (*Client, error) {
	if !SupportedLanguage(lang) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	if lang == c.language {
		return c, nil
	}
	cp := *c
	cp.language = lang
	return &cp, nil
}

// SupportedLanguage reports whether lang is one of SupportedLanguages.
func SupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// RequestError captures non-2xx responses from the TMDB API.
type RequestError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Status     string
	Payload    *Error
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	status := e.Status
	if status == "" {
		status = strconv.Itoa(e.StatusCode) + " " + http.StatusText(e.StatusCode)
	}
	msg := fmt.Sprintf("tmdb: catalog request failed: %s %s: %s", e.Method, e.Endpoint, status)
	if e.Payload != nil && e.Payload.StatusMessage != "" {
		msg += ": " + e.Payload.StatusMessage
	}
	return msg
}

// Is makes every RequestError match ErrRequestFailed.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// StatusCode extracts the upstream HTTP status from err, or 0 when err is not
// a RequestError.
func StatusCode(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	if c == nil {
		return errors.New("tmdb: client is nil")
	}
	if ctx == nil {
		return errors.New("tmdb: context is nil")
	}

	values := url.Values{}
	for k, vs := range query {
		values[k] = append([]string(nil), vs...)
	}
	values.Set("api_key", c.apiKey)
	values.Set("language", c.language)

	reqURL := c.baseURL.JoinPath(endpoint)
	reqURL.RawQuery = values.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("tmdb: encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json;charset=utf-8")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: execute request %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	// query values may carry session ids; only the endpoint is logged
	c.logger.Debug("tmdb request",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Payload:    decodeError(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tmdb: decode %s: %w", endpoint, err)
	}
	return nil
}

func decodeError(r io.Reader) *Error {
	limited := io.LimitReader(r, maxErrorBodyBytes)
	var payload Error
	if err := json.NewDecoder(limited).Decode(&payload); err != nil {
		return nil
	}
	return &payload
}

// pageValue maps 0 to the first page and rejects pages TMDB never serves.
func pageValue(page int) (string, error) {
	if page <= 0 {
		page = 1
	}
	if page > MaxPage {
		return "", fmt.Errorf("%w: %d > %d", ErrPageOutOfRange, page, MaxPage)
	}
	return strconv.Itoa(page), nil
}
