package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docshelf-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService manages the authenticated session. The session lives in
// memory and is mirrored to the SessionStore so separate CLI invocations
// stay logged in.
type SessionService struct {
	authAPI    driven.AuthAPI
	profileAPI driven.ProfileAPI
	store      driven.SessionStore
	tokenSink  driven.TokenSink

	mu      sync.RWMutex
	session domain.Session
}

// NewSessionService creates a session service. The store and tokenSink
// parameters are optional (can be nil).
func NewSessionService(
	authAPI driven.AuthAPI,
	profileAPI driven.ProfileAPI,
	store driven.SessionStore,
	tokenSink driven.TokenSink,
) *SessionService {
	return &SessionService{
		authAPI:    authAPI,
		profileAPI: profileAPI,
		store:      store,
		tokenSink:  tokenSink,
	}
}

// Restore loads a previously persisted session into memory.
// Call once at startup; a missing stored session is not an error.
func (s *SessionService) Restore(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	session, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	if s.tokenSink != nil {
		s.tokenSink.SetToken(session.Token)
	}

	logger.Debug("Restored session for %s", session.User.Email)
	return nil
}

// Register creates an account. Invalid registrations are rejected locally
// and never reach the network.
func (s *SessionService) Register(ctx context.Context, reg domain.Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}

	if err := s.authAPI.Register(ctx, reg); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	logger.Info("Registered account for %s", reg.Email)
	return nil
}

// Login authenticates and persists the resulting session.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	if err := creds.Validate(); err != nil {
		return domain.Session{}, err
	}

	session, err := s.authAPI.Login(ctx, creds)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	if s.tokenSink != nil {
		s.tokenSink.SetToken(session.Token)
	}

	if s.store != nil {
		if err := s.store.Save(ctx, session); err != nil {
			// The login itself succeeded; persistence failure only
			// costs the user a fresh login next invocation.
			logger.Warn("Persisting session failed: %v", err)
		}
	}

	logger.Info("Logged in as %s", session.User.Email)
	return session, nil
}

// Logout clears the in-memory and persisted session.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	if s.tokenSink != nil {
		s.tokenSink.SetToken("")
	}

	if s.store != nil {
		if err := s.store.Clear(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}

	logger.Info("Logged out")
	return nil
}

// Current returns the active session.
func (s *SessionService) Current(ctx context.Context) (domain.Session, error) {
	s.mu.RLock()
	session := s.session
	s.mu.RUnlock()

	if !session.Active() {
		return domain.Session{}, domain.ErrNotLoggedIn
	}
	return session, nil
}

// UpdateName changes the user's display name on the server and patches the
// stored session. Returns the server's confirmation message.
func (s *SessionService) UpdateName(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	s.mu.RLock()
	active := s.session.Active()
	s.mu.RUnlock()
	if !active {
		return "", domain.ErrNotLoggedIn
	}

	msg, err := s.profileAPI.UpdateName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("update name: %w", err)
	}

	s.mu.Lock()
	s.session.User.Name = name
	session := s.session
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Save(ctx, session); err != nil {
			logger.Warn("Persisting renamed profile failed: %v", err)
		}
	}

	return msg, nil
}
