package tmdb

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// CreateRequestToken starts the login round trip with an unapproved token.
func (c *Client) CreateRequestToken(ctx context.Context) (*RequestToken, error) {
	var tok RequestToken
	if err := c.get(ctx, "/authentication/token/new", nil, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// ApprovalURL is the provider-hosted page where the user approves a request
// token. redirectTo may be empty.
func ApprovalURL(requestToken, redirectTo string) string {
	u := approvalBaseURL + url.PathEscape(requestToken)
	if redirectTo != "" {
		u += "?redirect_to=" + url.QueryEscape(redirectTo)
	}
	return u
}

// CreateSession exchanges an approved request token for a session id. The
// response is returned as the provider sent it; callers check Success.
func (c *Client) CreateSession(ctx context.Context, approvedToken string) (*SessionResponse, error) {
	if strings.TrimSpace(approvedToken) == "" {
		return nil, errors.New("tmdb: request token must not be empty")
	}
	body := map[string]string{"request_token": approvedToken}
	var resp SessionResponse
	if err := c.do(ctx, http.MethodPost, "/authentication/session/new", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSession invalidates a session id upstream.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) (*StatusResponse, error) {
	body := map[string]string{"session_id": sessionID}
	var resp StatusResponse
	if err := c.do(ctx, http.MethodDelete, "/authentication/session", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAccountDetails returns the account a session id belongs to.
func (c *Client) GetAccountDetails(ctx context.Context, sessionID string) (*Account, error) {
	var acct Account
	if err := c.get(ctx, "/account", sessionQuery(sessionID), &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// SetFavorite marks or unmarks a title as favorite. Removing a favorite uses
// the same endpoint with isFavorite=false, so repeated calls are idempotent.
func (c *Client) SetFavorite(ctx context.Context, accountID int, sessionID string, mediaID int, kind MediaKind, isFavorite bool) (*StatusResponse, error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	body := struct {
		MediaType MediaKind `json:"media_type"`
		MediaID   int       `json:"media_id"`
		Favorite  bool      `json:"favorite"`
	}{kind, mediaID, isFavorite}

	var resp StatusResponse
	endpoint := "/account/" + strconv.Itoa(accountID) + "/favorite"
	if err := c.do(ctx, http.MethodPost, endpoint, sessionQuery(sessionID), body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Rate submits the user's rating of a title.
func (c *Client) Rate(ctx context.Context, kind MediaKind, mediaID int, value float64, sessionID string) (*StatusResponse, error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	if err := ValidateRating(value); err != nil {
		return nil, err
	}
	body := map[string]float64{"value": value}
	var resp StatusResponse
	if err := c.do(ctx, http.MethodPost, titlePath(kind, mediaID)+"/rating", sessionQuery(sessionID), body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Unrate removes the user's rating of a title.
func (c *Client) Unrate(ctx context.Context, kind MediaKind, mediaID int, sessionID string) (*StatusResponse, error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	var resp StatusResponse
	if err := c.do(ctx, http.MethodDelete, titlePath(kind, mediaID)+"/rating", sessionQuery(sessionID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListFavorites returns the account's favorites of one kind.
func (c *Client) ListFavorites(ctx context.Context, accountID int, sessionID string, kind MediaKind, page int) (*Page[Item], error) {
	return c.accountList(ctx, accountID, sessionID, "favorite", kind, page)
}

// ListRated returns the account's rated titles of one kind; each item carries
// the user's rating.
func (c *Client) ListRated(ctx context.Context, accountID int, sessionID string, kind MediaKind, page int) (*Page[Item], error) {
	return c.accountList(ctx, accountID, sessionID, "rated", kind, page)
}

// GetAccountStates reports whether the user favorited and rated one title.
func (c *Client) GetAccountStates(ctx context.Context, kind MediaKind, mediaID int, sessionID string) (*AccountStates, error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	var states AccountStates
	if err := c.get(ctx, titlePath(kind, mediaID)+"/account_states", sessionQuery(sessionID), &states); err != nil {
		return nil, err
	}
	return &states, nil
}

func (c *Client) accountList(ctx context.Context, accountID int, sessionID, list string, kind MediaKind, page int) (*Page[Item], error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	query, err := pageQuery(page)
	if err != nil {
		return nil, err
	}
	query.Set("session_id", sessionID)
	endpoint := "/account/" + strconv.Itoa(accountID) + "/" + list + "/" + kind.accountSegment()
	return c.listItems(ctx, kind, endpoint, query)
}

// ValidateRating accepts 0.5 to 10 in steps of 0.5.
func ValidateRating(value float64) error {
	if value < 0.5 || value > 10 || math.Mod(value*2, 1) != 0 {
		return ErrInvalidRating
	}
	return nil
}

func sessionQuery(sessionID string) url.Values {
	return url.Values{"session_id": []string{sessionID}}
}
