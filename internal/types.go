package internal

import (
	"time"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/session"
	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

// ItemPage is one page of a listing.
type ItemPage struct {
	Page         int         `json:"page"`
	Results      []tmdb.Item `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

func newItemPage(p *tmdb.Page[tmdb.Item]) ItemPage {
	return ItemPage{Page: p.Page, Results: p.Results, TotalPages: p.TotalPages, TotalResults: p.TotalResults}
}

type ItemList struct {
	Results []tmdb.Item `json:"results"`
}

type GenreList struct {
	Genres []tmdb.Genre `json:"genres"`
}

type RatingSubmit struct {
	Value float64 `json:"value"`
}

// MutationResult acknowledges a favorite or rating change.
type MutationResult struct {
	Kind          tmdb.MediaKind `json:"kind"`
	ID            int            `json:"id"`
	Favorite      *bool          `json:"favorite,omitempty"`
	Rating        *float64       `json:"rating,omitempty"`
	StatusCode    int            `json:"status_code"`
	StatusMessage string         `json:"status_message"`
}

type AccountResponse struct {
	State      session.State `json:"state"`
	Account    *tmdb.Account `json:"account,omitempty"`
	SignedInAt *time.Time    `json:"signed_in_at,omitempty"`
}

type Health struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
