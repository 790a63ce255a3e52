package internal

import (
	"context"
	"crypto/sha256"
	"io"
	"net/http"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/hkdf"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

const (
	loginCookie    = "mellow_login"
	loginTokenKey  = "request_token"
	loginNextKey   = "next"
	loginCookieTTL = 15 * 60
)

// newCookieStore keys the login cookie with an HMAC key and an AES key both
// derived from secret.
func newCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(deriveKey(secret, "mellow login cookie hash"), deriveKey(secret, "mellow login cookie block"))
	store.Options = &sessions.Options{
		Path:     "/auth",
		MaxAge:   loginCookieTTL,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func deriveKey(secret, info string) []byte {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		panic("derive cookie key: " + err.Error())
	}
	return key
}

// headerWriter collects the headers gorilla/sessions writes.
type headerWriter struct {
	header http.Header
}

func (w *headerWriter) Header() http.Header { return w.header }

func (w *headerWriter) Write(b []byte) (int, error) { return len(b), nil }

func (w *headerWriter) WriteHeader(int) {}

// loginSession loads the pending-login cookie. A missing or tampered cookie
// yields a fresh session.
func (h *Handler) loginSession(c *app.RequestContext) (*sessions.Session, *http.Request, error) {
	req, err := adaptor.GetCompatRequest(&c.Request)
	if err != nil {
		return nil, nil, err
	}
	sess, err := h.cookies.Get(req, loginCookie)
	if err != nil {
		h.logger.Debug("discarding unreadable login cookie", "err", err)
	}
	return sess, req, nil
}

func (h *Handler) saveLoginSession(c *app.RequestContext, req *http.Request, sess *sessions.Session) error {
	w := &headerWriter{header: http.Header{}}
	if err := sess.Save(req, w); err != nil {
		return err
	}
	for _, raw := range w.header.Values("Set-Cookie") {
		ck := protocol.AcquireCookie()
		if err := ck.Parse(raw); err == nil {
			c.Response.Header.SetCookie(ck)
		}
		protocol.ReleaseCookie(ck)
	}
	return nil
}

func (h *Handler) origin(c *app.RequestContext) string {
	if h.appOrigin != "" {
		return h.appOrigin
	}
	scheme := string(c.URI().Scheme())
	if scheme == "" {
		scheme = "http"
	}
	return scheme + "://" + string(c.Host())
}

// safeNext keeps only same-site absolute paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/"
	}
	return next
}

// login godoc
// @Summary      Start TMDB login
// @Description  Creates a request token, remembers it in a signed cookie and redirects to the TMDB approval page, which returns to /auth/callback.
// @Tags         Auth
// @Param        next  query  string  false  "Path to return to after signing in"
// @Success      302   "Redirect to TMDB"
// @Failure      502   {object}  Error  "TMDB request failed"
// @Router       /auth/login [get]
func (h *Handler) login(ctx context.Context, c *app.RequestContext) {
	tok, err := h.catalogs[h.language].CreateRequestToken(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	sess, req, err := h.loginSession(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	sess.Values[loginTokenKey] = tok.RequestToken
	sess.Values[loginNextKey] = safeNext(c.Query("next"))
	if err := h.saveLoginSession(c, req, sess); err != nil {
		h.fail(c, err)
		return
	}

	approval := tmdb.ApprovalURL(tok.RequestToken, h.origin(c)+"/auth/callback")
	c.Redirect(http.StatusFound, []byte(approval))
}

// callback godoc
// @Summary      Finish TMDB login
// @Description  TMDB redirects here after approval. The token must match the one issued by /auth/login.
// @Tags         Auth
// @Param        request_token  query  string  true   "Token TMDB approved"
// @Param        approved       query  string  false  "true when the user approved"
// @Param        denied         query  string  false  "true when the user denied"
// @Success      302            "Redirect to the page that started the login"
// @Failure      400            {object}  Error  "Token does not match the pending login"
// @Failure      401            {object}  Error  "Login denied or rejected"
// @Failure      502            {object}  Error  "TMDB request failed"
// @Router       /auth/callback [get]
func (h *Handler) callback(ctx context.Context, c *app.RequestContext) {
	sess, req, err := h.loginSession(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	pending, _ := sess.Values[loginTokenKey].(string)
	next, _ := sess.Values[loginNextKey].(string)

	// the pending token is single use
	sess.Options.MaxAge = -1
	if err := h.saveLoginSession(c, req, sess); err != nil {
		h.fail(c, err)
		return
	}

	token := c.Query("request_token")
	if pending == "" || token != pending {
		h.fail(c, badRequest("request token does not match a pending login"))
		return
	}
	if c.Query("denied") == "true" || c.Query("approved") != "true" {
		c.JSON(http.StatusUnauthorized, Error{Code: "UNAUTHORIZED", Message: "login was not approved on TMDB"})
		return
	}

	if _, err := h.sessions.Login(ctx, token); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, []byte(safeNext(next)))
}

// logout godoc
// @Summary      Sign out
// @Description  Deletes the TMDB session on a best-effort basis and forgets it locally.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  AccountResponse
// @Failure      500  {object}  Error  "Token storage failure"
// @Router       /auth/logout [post]
func (h *Handler) logout(ctx context.Context, c *app.RequestContext) {
	if err := h.sessions.Logout(ctx); err != nil {
		h.fail(c, err)
		return
	}
	snap := h.sessions.Snapshot()
	c.JSON(http.StatusOK, AccountResponse{State: snap.State})
}
