package tmdb

import "strings"

// Image size segments used for each kind of artwork.
const (
	PosterSize   = "w500"
	BackdropSize = "original"
	ProfileSize  = "w500"
	StillSize    = "w300"
)

type imageResolver struct {
	base string
}

func (r imageResolver) url(size, path string) string {
	if path == "" || isAbsoluteURL(path) {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return r.base + "/" + size + path
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}

func (r imageResolver) item(it *Item) {
	it.PosterPath = r.url(PosterSize, it.PosterPath)
	it.BackdropPath = r.url(BackdropSize, it.BackdropPath)
}

func (r imageResolver) items(items []Item) {
	for i := range items {
		r.item(&items[i])
	}
}

func (r imageResolver) details(d *Details) {
	r.item(&d.Item)
	for i := range d.Seasons {
		d.Seasons[i].PosterPath = r.url(PosterSize, d.Seasons[i].PosterPath)
	}
}

func (r imageResolver) credits(cast []Credit) {
	for i := range cast {
		cast[i].ProfilePath = r.url(ProfileSize, cast[i].ProfilePath)
	}
}

func (r imageResolver) season(s *Season) {
	s.PosterPath = r.url(PosterSize, s.PosterPath)
	for i := range s.Episodes {
		s.Episodes[i].StillPath = r.url(StillSize, s.Episodes[i].StillPath)
	}
}

// ImageURL turns a relative TMDB image path into an absolute URL at the given
// size. Empty and already absolute values are returned unchanged.
func (c *Client) ImageURL(size, path string) string {
	return c.images.url(size, path)
}
