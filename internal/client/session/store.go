// Package session holds the client's belief about who is logged in.
//
// The Store is the single source of truth for the current user. The user is
// never persisted directly: only the raw token is kept in the durable local
// store, and the user is re-derived from its claims on every load. Expiry is
// rechecked only on explicit Restore; there is no background timer.
package session

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/repositories/localstore"
	"github.com/thibautlfr-studylab/mdd-cli/internal/client/token"
	"github.com/thibautlfr-studylab/mdd-cli/internal/dbx"
	"github.com/thibautlfr-studylab/mdd-cli/internal/logging"
)

// tokenKey is the fixed slot holding the raw token. It must stay stable
// across versions so upgrades do not force a re-login.
const tokenKey = "token"

var ErrExpiredToken = errors.New("token expired")

// Store is an observable session holder. Safe for use from the REPL
// goroutine and the transport layer concurrently.
type Store struct {
	db   *sql.DB
	repo localstore.Repository
	log  logging.Logger
	now  func() time.Time

	mu        sync.Mutex
	user      *models.User
	rawToken  string
	listeners map[int]func(*models.User)
	nextID    int
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{
		db:        db,
		repo:      localstore.NewSQLiteRepository(db),
		log:       log,
		now:       time.Now,
		listeners: make(map[int]func(*models.User)),
	}
}

// Restore hydrates the session from any token left in the local store.
// A missing token is a normal logged-out start. A token that fails to
// decode or is already expired is purged as a side effect, so a bad slot
// heals itself instead of wedging the client.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, tokenKey)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	claims, err := token.Decode(string(raw))
	if err != nil || claims.IsExpired(s.now()) {
		s.log.Warn(ctx, "discarding stored token", "reason", restoreFailure(err))
		if err := s.repo.Delete(ctx, tokenKey); err != nil {
			return err
		}
		return nil
	}

	u := claims.User()
	s.publish(string(raw), &u)
	return nil
}

func restoreFailure(err error) string {
	if err != nil {
		return "malformed"
	}
	return "expired"
}

// AcceptToken persists the raw token under the fixed key and re-derives the
// session user from its claims. The identity fields of the auth response are
// deliberately ignored: the session must reflect exactly what the stored
// token says.
func (s *Store) AcceptToken(ctx context.Context, raw string) (*models.User, error) {
	claims, err := token.Decode(raw)
	if err != nil {
		return nil, err
	}
	if claims.IsExpired(s.now()) {
		return nil, ErrExpiredToken
	}

	// Rotating the slot drops any stale row and writes the new token in a
	// single transaction.
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstore.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, tokenKey); err != nil {
			return err
		}
		return repo.Set(ctx, tokenKey, []byte(raw))
	})
	if err != nil {
		return nil, err
	}

	u := claims.User()
	s.publish(raw, &u)
	return &u, nil
}

// Current returns the current user, or nil when logged out. Pure read.
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) IsLoggedIn() bool {
	return s.Current() != nil
}

// Token returns the raw stored token, or "" when logged out. Read by the
// request authenticator on every outgoing call.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rawToken
}

// SetCurrentUser replaces the in-memory user wholesale and notifies
// subscribers. The stored token is untouched; this is the profile-update
// path.
func (s *Store) SetCurrentUser(u models.User) {
	s.mu.Lock()
	s.user = &u
	fns := s.snapshotListeners()
	s.mu.Unlock()

	notify(fns, &u)
}

// Logout deletes the stored token, clears the user and notifies
// subscribers.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx, tokenKey); err != nil {
		return err
	}
	s.publish("", nil)
	return nil
}

// Subscribe registers fn on the session stream. fn is invoked immediately
// with the current value (replay-latest-one) and then on every change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(*models.User)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	current := s.user
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish(raw string, u *models.User) {
	s.mu.Lock()
	s.rawToken = raw
	s.user = u
	fns := s.snapshotListeners()
	s.mu.Unlock()

	notify(fns, u)
}

// snapshotListeners must be called with mu held. Listeners are invoked
// outside the lock so they may call back into the store.
func (s *Store) snapshotListeners() []func(*models.User) {
	fns := make([]func(*models.User), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	return fns
}

func notify(fns []func(*models.User), u *models.User) {
	for _, fn := range fns {
		fn(u)
	}
}
