// Package session owns the signed-in TMDB session: the session id and the
// account it belongs to. The id is cached in a Storage so a restart can
// resume the session after re-validating it upstream.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mel-cell/mellow-movie-TMDb-api/internal/tmdb"
)

// TokenKey is the storage key holding the cached session id.
const TokenKey = "tmdb_session_id"

var (
	// ErrNotAuthenticated is returned by account operations while signed out.
	ErrNotAuthenticated = errors.New("session: not authenticated")
	// ErrSessionRejected indicates the provider refused to create a session.
	ErrSessionRejected = errors.New("session: provider rejected the request token")
)

// State is the position of the store in its login state machine.
type State int

const (
	Unauthenticated State = iota
	Validating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Validating:
		return "validating"
	case Authenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for _, st := range []State{Unauthenticated, Validating, Authenticated} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("session: unknown state %q", text)
}

// Catalog is the part of the TMDB client the store drives.
type Catalog interface {
	CreateSession(ctx context.Context, approvedToken string) (*tmdb.SessionResponse, error)
	DeleteSession(ctx context.Context, sessionID string) (*tmdb.StatusResponse, error)
	GetAccountDetails(ctx context.Context, sessionID string) (*tmdb.Account, error)
	SetFavorite(ctx context.Context, accountID int, sessionID string, mediaID int, kind tmdb.MediaKind, isFavorite bool) (*tmdb.StatusResponse, error)
	Rate(ctx context.Context, kind tmdb.MediaKind, mediaID int, value float64, sessionID string) (*tmdb.StatusResponse, error)
	Unrate(ctx context.Context, kind tmdb.MediaKind, mediaID int, sessionID string) (*tmdb.StatusResponse, error)
	ListFavorites(ctx context.Context, accountID int, sessionID string, kind tmdb.MediaKind, page int) (*tmdb.Page[tmdb.Item], error)
	ListRated(ctx context.Context, accountID int, sessionID string, kind tmdb.MediaKind, page int) (*tmdb.Page[tmdb.Item], error)
	GetAccountStates(ctx context.Context, kind tmdb.MediaKind, mediaID int, sessionID string) (*tmdb.AccountStates, error)
}

// Snapshot is a consistent copy of the store's state. Account is non-nil
// exactly when State is Authenticated.
type Snapshot struct {
	State     State         `json:"state"`
	SessionID string        `json:"-"`
	Account   *tmdb.Account `json:"account,omitempty"`
}

// SignedIn reports whether the snapshot carries a usable session.
func (s Snapshot) SignedIn() bool {
	return s.State == Authenticated
}

// Store is the session state machine. It is safe for concurrent use; Init,
// Login, Logout and Teardown run one at a time.
type Store struct {
	catalog Catalog
	storage Storage
	logger  *slog.Logger

	ops sync.Mutex

	mu        sync.RWMutex
	state     State
	sessionID string
	account   *tmdb.Account
}

// Option allows customizing the store.
type Option func(*Store)

// WithLogger sets the logger used for session transitions.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds an Unauthenticated store. Call Init to resume a cached session.
func New(catalog Catalog, storage Storage, opts ...Option) *Store {
	s := &Store{
		catalog: catalog,
		storage: storage,
		logger:  slog.Default(),
		state:   Unauthenticated,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state, session id and account together.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{State: s.state, SessionID: s.sessionID, Account: s.account}
}

// Init resumes the cached session, if any. A cached id the provider no
// longer accepts is discarded and the store stays Unauthenticated; that case
// is not an error. Only storage failures are returned.
func (s *Store) Init(ctx context.Context) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	cached, ok, err := s.storage.GetItem(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("session: read cached session: %w", err)
	}
	if !ok || cached == "" {
		s.logger.Debug("no cached session")
		return nil
	}

	s.set(Validating, "", nil)

	acct, err := s.catalog.GetAccountDetails(ctx, cached)
	if err != nil {
		s.logger.Warn("cached session rejected, signing out", "err", err, "status", tmdb.StatusCode(err))
		s.set(Unauthenticated, "", nil)
		if rmErr := s.storage.RemoveItem(ctx, TokenKey); rmErr != nil {
			return fmt.Errorf("session: discard cached session: %w", rmErr)
		}
		return nil
	}

	s.set(Authenticated, cached, acct)
	s.logger.Info("session resumed", "account_id", acct.ID, "username", acct.Username)
	return nil
}

// Login exchanges an approved request token for a session, looks up the
// account and persists the session id. On failure nothing is persisted and
// the previous state is kept.
func (s *Store) Login(ctx context.Context, approvedToken string) (Snapshot, error) {
	s.ops.Lock()
	defer s.ops.Unlock()

	resp, err := s.catalog.CreateSession(ctx, approvedToken)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("session: create session: %w", err)
	}
	if !resp.Success || resp.SessionID == "" {
		return s.Snapshot(), ErrSessionRejected
	}

	acct, err := s.catalog.GetAccountDetails(ctx, resp.SessionID)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("session: look up account: %w", err)
	}

	if err := s.storage.SetItem(ctx, TokenKey, resp.SessionID); err != nil {
		return s.Snapshot(), fmt.Errorf("session: persist session: %w", err)
	}

	s.set(Authenticated, resp.SessionID, acct)
	s.logger.Info("signed in", "account_id", acct.ID, "username", acct.Username)
	return s.Snapshot(), nil
}

// Logout deletes the session upstream on a best-effort basis. The cached id
// and the account are cleared even when the remote deletion fails; only a
// storage failure is returned.
func (s *Store) Logout(ctx context.Context) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	snap := s.Snapshot()
	if snap.SessionID != "" {
		resp, err := s.catalog.DeleteSession(ctx, snap.SessionID)
		switch {
		case err != nil:
			s.logger.Warn("remote session deletion failed", "err", err)
		case !resp.Success:
			s.logger.Warn("remote session deletion refused", "status_message", resp.StatusMessage)
		}
	}

	s.set(Unauthenticated, "", nil)
	if err := s.storage.RemoveItem(ctx, TokenKey); err != nil {
		return fmt.Errorf("session: remove cached session: %w", err)
	}
	if snap.Account != nil {
		s.logger.Info("signed out", "account_id", snap.Account.ID)
	}
	return nil
}

// Teardown drops the in-memory session on shutdown. The cached id stays in
// storage so the next start can resume it.
func (s *Store) Teardown(ctx context.Context) {
	s.ops.Lock()
	defer s.ops.Unlock()
	s.set(Unauthenticated, "", nil)
	s.logger.Debug("session store torn down")
}

func (s *Store) set(state State, sessionID string, acct *tmdb.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.sessionID = sessionID
	s.account = acct
}

func (s *Store) current() (Snapshot, error) {
	snap := s.Snapshot()
	if !snap.SignedIn() {
		return snap, ErrNotAuthenticated
	}
	return snap, nil
}

// SetFavorite marks or unmarks a title as a favorite of the signed-in account.
func (s *Store) SetFavorite(ctx context.Context, kind tmdb.MediaKind, mediaID int, favorite bool) (*tmdb.StatusResponse, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.catalog.SetFavorite(ctx, snap.Account.ID, snap.SessionID, mediaID, kind, favorite)
}

// Rate submits the signed-in account's rating of a title.
func (s *Store) Rate(ctx context.Context, kind tmdb.MediaKind, mediaID int, value float64) (*tmdb.StatusResponse, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.catalog.Rate(ctx, kind, mediaID, value, snap.SessionID)
}

// Unrate removes the signed-in account's rating of a title.
func (s *Store) Unrate(ctx context.Context, kind tmdb.MediaKind, mediaID int) (*tmdb.StatusResponse, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.catalog.Unrate(ctx, kind, mediaID, snap.SessionID)
}

// ListFavorites lists the signed-in account's favorites of one kind.
func (s *Store) ListFavorites(ctx context.Context, kind tmdb.MediaKind, page int) (*tmdb.Page[tmdb.Item], error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.catalog.ListFavorites(ctx, snap.Account.ID, snap.SessionID, kind, page)
}

// ListRated lists the signed-in account's rated titles of one kind.
func (s *Store) ListRated(ctx context.Context, kind tmdb.MediaKind, page int) (*tmdb.Page[tmdb.Item], error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.catalog.ListRated(ctx, snap.Account.ID, snap.SessionID, kind, page)
}

// AccountStates reports the signed-in account's favorite and rating of one
// title.
func (s *Store) AccountStates(ctx context.Context, kind tmdb.MediaKind, mediaID int) (*tmdb.AccountStates, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.catalog.GetAccountStates(ctx, kind, mediaID, snap.SessionID)
}
