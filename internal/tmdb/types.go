package tmdb

import (
	"encoding/json"
	"fmt"
)

// MediaKind discriminates movies from TV shows.
type MediaKind string

const (
	Movie MediaKind = "movie"
	TV    MediaKind = "tv"
)

// ParseMediaKind accepts "movie" or "tv".
func ParseMediaKind(s string) (MediaKind, error) {
	k := MediaKind(s)
	if err := k.validate(); err != nil {
		return "", err
	}
	return k, nil
}

// Valid reports whether k is Movie or TV.
func (k MediaKind) Valid() bool {
	switch k {
	case Movie, TV:
		return true
	default:
		return false
	}
}

func (k MediaKind) validate() error {
	if !k.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMediaKind, string(k))
	}
	return nil
}

// accountSegment is the plural used by the account listing endpoints.
func (k MediaKind) accountSegment() string {
	switch k {
	case Movie:
		return "movies"
	case TV:
		return "tv"
	default:
		panic("tmdb: unhandled media kind " + string(k))
	}
}

// TimeWindow selects the trending window.
type TimeWindow string

const (
	Day  TimeWindow = "day"
	Week TimeWindow = "week"
)

// Valid reports whether w is Day or Week.
func (w TimeWindow) Valid() bool {
	return w == Day || w == Week
}

// Item is a movie or TV show as it appears in listings.
//
// Kind is always set. Title holds the display title (the movie title or the
// show name) and ReleaseDate the release or first air date. Image fields are
// absolute URLs or empty.
type Item struct {
	Kind             MediaKind `json:"kind"`
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	OriginalTitle    string    `json:"original_title,omitempty"`
	Overview         string    `json:"overview"`
	PosterPath       string    `json:"poster_path,omitempty"`
	BackdropPath     string    `json:"backdrop_path,omitempty"`
	ReleaseDate      string    `json:"release_date,omitempty"`
	VoteAverage      float64   `json:"vote_average"`
	VoteCount        int       `json:"vote_count"`
	Popularity       float64   `json:"popularity,omitempty"`
	GenreIDs         []int     `json:"genre_ids"`
	OriginalLanguage string    `json:"original_language,omitempty"`
	// Rating is the signed-in user's own rating; only rated listings carry it.
	Rating *float64 `json:"rating,omitempty"`
}

type rawItem struct {
	MediaType        string   `json:"media_type"`
	Kind             string   `json:"kind"`
	ID               int      `json:"id"`
	Title            *string  `json:"title"`
	Name             *string  `json:"name"`
	OriginalTitle    string   `json:"original_title"`
	OriginalName     string   `json:"original_name"`
	Overview         string   `json:"overview"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	ReleaseDate      string   `json:"release_date"`
	FirstAirDate     string   `json:"first_air_date"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Popularity       float64  `json:"popularity"`
	GenreIDs         []int    `json:"genre_ids"`
	OriginalLanguage string   `json:"original_language"`
	Rating           *float64 `json:"rating"`
}

func (r rawItem) kind() (MediaKind, error) {
	for _, tag := range []string{r.Kind, r.MediaType} {
		if k := MediaKind(tag); k.Valid() {
			return k, nil
		}
	}
	switch {
	case r.Title != nil && r.Name == nil:
		return Movie, nil
	case r.Name != nil && r.Title == nil:
		return TV, nil
	default:
		return "", fmt.Errorf("tmdb: item %d: cannot tell movie from tv", r.ID)
	}
}

// UnmarshalJSON accepts both the upstream movie/tv shapes and Item's own
// encoding.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw rawItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, err := raw.kind()
	if err != nil {
		return err
	}

	*it = Item{
		Kind:             kind,
		ID:               raw.ID,
		Overview:         raw.Overview,
		PosterPath:       raw.PosterPath,
		BackdropPath:     raw.BackdropPath,
		VoteAverage:      raw.VoteAverage,
		VoteCount:        raw.VoteCount,
		Popularity:       raw.Popularity,
		GenreIDs:         raw.GenreIDs,
		OriginalLanguage: raw.OriginalLanguage,
		Rating:           raw.Rating,
	}
	switch kind {
	case Movie:
		it.Title = deref(raw.Title)
		it.OriginalTitle = raw.OriginalTitle
		it.ReleaseDate = raw.ReleaseDate
	case TV:
		it.Title = deref(raw.Name)
		if it.Title == "" {
			// Item's own encoding always uses "title"
			it.Title = deref(raw.Title)
		}
		it.OriginalTitle = firstNonEmpty(raw.OriginalName, raw.OriginalTitle)
		it.ReleaseDate = firstNonEmpty(raw.FirstAirDate, raw.ReleaseDate)
	}
	if it.GenreIDs == nil {
		it.GenreIDs = []int{}
	}
	return nil
}

// Page is the TMDB pagination envelope.
type Page[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// Genre is reference data, fetched once per kind.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Credit is one cast entry of a title.
type Credit struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order"`
}

// Video is a trailer, teaser or clip hosted on a third-party site.
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

var embedPrefixes = map[string]string{
	"YouTube": "https://www.youtube.com/embed/",
	"Vimeo":   "https://player.vimeo.com/video/",
}

// Usable reports whether the video is on a host that can be embedded.
func (v Video) Usable() bool {
	_, ok := embedPrefixes[v.Site]
	return ok && v.Key != ""
}

// EmbedURL returns the player URL, or "" for unknown hosts.
func (v Video) EmbedURL() string {
	if !v.Usable() {
		return ""
	}
	return embedPrefixes[v.Site] + v.Key
}

// IsTrailer reports whether the provider tagged the video as a trailer.
func (v Video) IsTrailer() bool { return v.Type == "Trailer" }

// Details is the full record of one title.
type Details struct {
	Item
	Genres           []Genre         `json:"genres"`
	Runtime          int             `json:"runtime,omitempty"`
	Tagline          string          `json:"tagline,omitempty"`
	Status           string          `json:"status,omitempty"`
	Homepage         string          `json:"homepage,omitempty"`
	NumberOfSeasons  int             `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int             `json:"number_of_episodes,omitempty"`
	Seasons          []SeasonSummary `json:"seasons,omitempty"`
}

type detailsExtra struct {
	Genres           []Genre         `json:"genres"`
	Runtime          int             `json:"runtime"`
	EpisodeRunTime   []int           `json:"episode_run_time"`
	Tagline          string          `json:"tagline"`
	Status           string          `json:"status"`
	Homepage         string          `json:"homepage"`
	NumberOfSeasons  int             `json:"number_of_seasons"`
	NumberOfEpisodes int             `json:"number_of_episodes"`
	Seasons          []SeasonSummary `json:"seasons"`
}

// UnmarshalJSON decodes the shared Item fields and the detail-only ones.
func (d *Details) UnmarshalJSON(data []byte) error {
	if err := d.Item.UnmarshalJSON(data); err != nil {
		return err
	}
	var extra detailsExtra
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}
	d.Genres = extra.Genres
	d.Runtime = extra.Runtime
	if d.Runtime == 0 && len(extra.EpisodeRunTime) > 0 {
		d.Runtime = extra.EpisodeRunTime[0]
	}
	d.Tagline = extra.Tagline
	d.Status = extra.Status
	d.Homepage = extra.Homepage
	d.NumberOfSeasons = extra.NumberOfSeasons
	d.NumberOfEpisodes = extra.NumberOfEpisodes
	d.Seasons = extra.Seasons

	if d.Genres == nil {
		d.Genres = []Genre{}
	}
	if len(d.GenreIDs) == 0 {
		ids := make([]int, 0, len(d.Genres))
		for _, g := range d.Genres {
			ids = append(ids, g.ID)
		}
		d.GenreIDs = ids
	}
	return nil
}

// SeasonSummary is the season entry embedded in TV details.
type SeasonSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	AirDate      string `json:"air_date,omitempty"`
	EpisodeCount int    `json:"episode_count"`
	SeasonNumber int    `json:"season_number"`
	PosterPath   string `json:"poster_path,omitempty"`
}

// Season is one season of a TV show with its episodes.
type Season struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	AirDate      string    `json:"air_date,omitempty"`
	SeasonNumber int       `json:"season_number"`
	PosterPath   string    `json:"poster_path,omitempty"`
	Episodes     []Episode `json:"episodes"`
}

type Episode struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	AirDate       string  `json:"air_date,omitempty"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	StillPath     string  `json:"still_path,omitempty"`
	VoteAverage   float64 `json:"vote_average"`
	Runtime       int     `json:"runtime,omitempty"`
}

// Account is the signed-in TMDB user, returned verbatim.
type Account struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Avatar       Avatar `json:"avatar"`
	ISO639_1     string `json:"iso_639_1"`
	ISO3166_1    string `json:"iso_3166_1"`
	IncludeAdult bool   `json:"include_adult"`
}

type Avatar struct {
	Gravatar struct {
		Hash string `json:"hash"`
	} `json:"gravatar"`
	TMDB struct {
		AvatarPath *string `json:"avatar_path"`
	} `json:"tmdb"`
}

// AccountStates is the signed-in user's relation to one title.
type AccountStates struct {
	ID        int      `json:"id"`
	Favorite  bool     `json:"favorite"`
	Watchlist bool     `json:"watchlist"`
	Rated     *float64 `json:"rated"`
}

// UnmarshalJSON handles "rated" being either false or {"value": n}.
func (s *AccountStates) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        int             `json:"id"`
		Favorite  bool            `json:"favorite"`
		Watchlist bool            `json:"watchlist"`
		Rated     json.RawMessage `json:"rated"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = AccountStates{ID: raw.ID, Favorite: raw.Favorite, Watchlist: raw.Watchlist}

	if len(raw.Rated) == 0 || raw.Rated[0] != '{' {
		return nil
	}
	var rated struct {
		Value *float64 `json:"value"`
	}
	if err := json.Unmarshal(raw.Rated, &rated); err != nil {
		return fmt.Errorf("tmdb: decode rated state: %w", err)
	}
	s.Rated = rated.Value
	return nil
}

// RequestToken is the unapproved token that starts the login round trip.
type RequestToken struct {
	Success      bool   `json:"success"`
	ExpiresAt    string `json:"expires_at"`
	RequestToken string `json:"request_token"`
}

// SessionResponse is returned when an approved token is exchanged.
type SessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

// StatusResponse is the generic mutation acknowledgement.
type StatusResponse struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// Error mirrors the upstream error payload.
type Error struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
