package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/project-jobexec/board-client/internal/api"
	"github.com/project-jobexec/board-client/internal/domain"
)

// State is where the store sits in the auth lifecycle
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
)

// Session is the authenticated identity plus its bearer token
type Session struct {
	Token string
	User  domain.User
}

// AuthAPI is the slice of the resource client the store needs.
// *api.Client satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, email, password string, role domain.Role) (*api.AuthResult, error)
	Register(ctx context.Context, name, email, password string, role domain.Role) (*api.AuthResult, error)
	Logout(ctx context.Context) error
}

// Store owns the current session. All durable reads and writes go
// through it; in-memory state and storage change together in every
// code path, so the token and user slots never drift apart.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	state   State
	current *Session
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage, state: StateAnonymous}
}

// Token implements api.TokenSource. Empty while anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// State returns the store's current lifecycle state
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current returns the active session, or false while anonymous
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Hydrate restores a session persisted by an earlier run. Malformed
// or expired stored data is recovered by clearing the session, not
// treated as a fatal error: the user just sees the login screen.
func (s *Store) Hydrate(ctx context.Context) error {
	token, ok, err := s.storage.Get(ctx, keyToken)
	if err != nil {
		return err
	}
	if !ok || token == "" {
		return nil
	}

	userJSON, ok, err := s.storage.Get(ctx, keyUser)
	if err != nil {
		return err
	}
	if !ok {
		log.Printf("[session] stored token without user, clearing")
		return s.clearSession(ctx)
	}

	user, err := domain.DecodeUser([]byte(userJSON))
	if err != nil {
		log.Printf("[session] corrupt stored user, clearing: %v", err)
		return s.clearSession(ctx)
	}

	if tokenExpired(token, time.Now()) {
		log.Printf("[session] stored token expired, clearing")
		return s.clearSession(ctx)
	}

	s.mu.Lock()
	s.current = &Session{Token: token, User: user}
	s.state = StateAuthenticated
	s.mu.Unlock()
	return nil
}

// Login authenticates and persists the session before returning.
// On failure the store stays anonymous; the error message is what
// the login form shows.
func (s *Store) Login(ctx context.Context, auth AuthAPI, email, password string, role domain.Role) error {
	s.setState(StateAuthenticating)

	result, err := auth.Login(ctx, email, password, role)
	if err != nil {
		s.setState(StateAnonymous)
		return err
	}
	return s.persistSession(ctx, &Session{Token: result.Token, User: result.User})
}

// Register creates the account and signs in, same contract as Login
func (s *Store) Register(ctx context.Context, auth AuthAPI, name, email, password string, role domain.Role) error {
	s.setState(StateAuthenticating)

	result, err := auth.Register(ctx, name, email, password, role)
	if err != nil {
		s.setState(StateAnonymous)
		return err
	}
	return s.persistSession(ctx, &Session{Token: result.Token, User: result.User})
}

// Logout tells the backend best-effort and always tears down local
// state; the durable slots end up absent either way.
func (s *Store) Logout(ctx context.Context, auth AuthAPI) error {
	if err := auth.Logout(ctx); err != nil {
		log.Printf("[session] remote logout failed: %v", err)
	}
	return s.clearSession(ctx)
}

// ReplaceUser swaps the session identity for the server's updated
// copy after a profile save, and re-persists it.
func (s *Store) ReplaceUser(ctx context.Context, user domain.User) error {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == nil {
		return nil
	}
	return s.persistSession(ctx, &Session{Token: current.Token, User: user})
}

// persistSession writes storage and memory together. Every code path
// that changes the session goes through here or clearSession.
func (s *Store) persistSession(ctx context.Context, sess *Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		s.setState(StateAnonymous)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Set(ctx, keyToken, sess.Token); err != nil {
		s.state = StateAnonymous
		return err
	}
	if err := s.storage.Set(ctx, keyUser, string(userJSON)); err != nil {
		s.state = StateAnonymous
		return err
	}
	s.current = sess
	s.state = StateAuthenticated
	return nil
}

func (s *Store) clearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.state = StateAnonymous
	return s.storage.Del(ctx, keyToken, keyUser)
}

func (s *Store) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
