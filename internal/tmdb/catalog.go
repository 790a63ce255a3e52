package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListTrending returns today's or this week's trending titles of one kind.
func (c *Client) ListTrending(ctx context.Context, kind MediaKind, window TimeWindow) (*Page[Item], error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	if !window.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWindow, string(window))
	}
	return c.listItems(ctx, kind, "/trending/"+string(kind)+"/"+string(window), nil)
}

// ListPopular returns the popular listing.
func (c *Client) ListPopular(ctx context.Context, kind MediaKind, page int) (*Page[Item], error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	query, err := pageQuery(page)
	if err != nil {
		return nil, err
	}
	return c.listItems(ctx, kind, "/"+string(kind)+"/popular", query)
}

// ListNowPlayingOrOnAir returns movies now in theatres or shows currently
// airing.
func (c *Client) ListNowPlayingOrOnAir(ctx context.Context, kind MediaKind, page int) (*Page[Item], error) {
	var endpoint string
	switch kind {
	case Movie:
		endpoint = "/movie/now_playing"
	case TV:
		endpoint = "/tv/on_the_air"
	default:
		return nil, kind.validate()
	}
	query, err := pageQuery(page)
	if err != nil {
		return nil, err
	}
	return c.listItems(ctx, kind, endpoint, query)
}

// Search runs a title search. The query is passed through untouched; callers
// reject blank input.
func (c *Client) Search(ctx context.Context, kind MediaKind, query string, page int) (*Page[Item], error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	values, err := pageQuery(page)
	if err != nil {
		return nil, err
	}
	values.Set("query", query)
	return c.listItems(ctx, kind, "/search/"+string(kind), values)
}

// Discover returns a filtered listing.
func (c *Client) Discover(ctx context.Context, kind MediaKind, filters Filters) (*Page[Item], error) {
	values, err := filters.values(kind)
	if err != nil {
		return nil, err
	}
	return c.listItems(ctx, kind, "/discover/"+string(kind), values)
}

// ListGenres returns the genre reference list of one kind.
func (c *Client) ListGenres(ctx context.Context, kind MediaKind) ([]Genre, error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	var resp struct {
		Genres []Genre `json:"genres"`
	}
	if err := c.get(ctx, "/genre/"+string(kind)+"/list", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Genres == nil {
		resp.Genres = []Genre{}
	}
	return resp.Genres, nil
}

// GetDetails fetches the full record of one title.
func (c *Client) GetDetails(ctx context.Context, kind MediaKind, id int) (*Details, error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	var d Details
	if err := c.get(ctx, titlePath(kind, id), nil, &d); err != nil {
		return nil, err
	}
	d.Kind = kind
	c.images.details(&d)
	return &d, nil
}

// GetCredits returns the cast of one title.
func (c *Client) GetCredits(ctx context.Context, kind MediaKind, id int) ([]Credit, error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	var resp struct {
		Cast []Credit `json:"cast"`
	}
	if err := c.get(ctx, titlePath(kind, id)+"/credits", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Cast == nil {
		resp.Cast = []Credit{}
	}
	c.images.credits(resp.Cast)
	return resp.Cast, nil
}

// GetVideos returns the videos of one title that can be embedded.
func (c *Client) GetVideos(ctx context.Context, kind MediaKind, id int) ([]Video, error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	var resp struct {
		Results []Video `json:"results"`
	}
	if err := c.get(ctx, titlePath(kind, id)+"/videos", nil, &resp); err != nil {
		return nil, err
	}
	usable := make([]Video, 0, len(resp.Results))
	for _, v := range resp.Results {
		if v.Usable() {
			usable = append(usable, v)
		}
	}
	return usable, nil
}

// GetSimilar returns titles similar to one title.
func (c *Client) GetSimilar(ctx context.Context, kind MediaKind, id, page int) (*Page[Item], error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	query, err := pageQuery(page)
	if err != nil {
		return nil, err
	}
	return c.listItems(ctx, kind, titlePath(kind, id)+"/similar", query)
}

// GetSeasonDetails returns one season of a TV show with its episodes.
func (c *Client) GetSeasonDetails(ctx context.Context, tvID, seasonNumber int) (*Season, error) {
	if seasonNumber < 0 {
		return nil, fmt.Errorf("tmdb: season number must not be negative: %d", seasonNumber)
	}
	var s Season
	endpoint := titlePath(TV, tvID) + "/season/" + strconv.Itoa(seasonNumber)
	if err := c.get(ctx, endpoint, nil, &s); err != nil {
		return nil, err
	}
	if s.Episodes == nil {
		s.Episodes = []Episode{}
	}
	c.images.season(&s)
	return &s, nil
}

func (c *Client) listItems(ctx context.Context, kind MediaKind, endpoint string, query url.Values) (*Page[Item], error) {
	var page Page[Item]
	if err := c.get(ctx, endpoint, query, &page); err != nil {
		return nil, err
	}
	c.finishPage(kind, &page)
	return &page, nil
}

// finishPage stamps the requested kind and rewrites images. Results is never
// nil afterwards so an out-of-range page reads as an empty list.
func (c *Client) finishPage(kind MediaKind, page *Page[Item]) {
	if page.Results == nil {
		page.Results = []Item{}
	}
	for i := range page.Results {
		page.Results[i].Kind = kind
	}
	c.images.items(page.Results)
}

func pageQuery(page int) (url.Values, error) {
	p, err := pageValue(page)
	if err != nil {
		return nil, err
	}
	return url.Values{"page": []string{p}}, nil
}

func titlePath(kind MediaKind, id int) string {
	return "/" + string(kind) + "/" + strconv.Itoa(id)
}
