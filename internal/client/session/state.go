package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redhub-app/redhub-cli/internal/client/credential"
	"github.com/redhub-app/redhub-cli/internal/common"
	"github.com/redhub-app/redhub-cli/internal/logging"
)

// Session is the reactive identity value every other component reads.
// Authenticated is true iff a credential is present, its claims decoded
// without error and, when an expiry is present, it has not passed.
type Session struct {
	Authenticated bool
	Claims        *Claims
}

// Role returns the session's normalized role, RoleNone when anonymous.
func (s Session) Role() Role {
	if s.Claims == nil {
		return RoleNone
	}
	return s.Claims.Role
}

// State holds the process-wide session, recomputed at well-defined points:
// bootstrap, login and logout. Reads are synchronous and always reflect the
// last completed transition.
type State struct {
	store credential.Store
	log   logging.Logger
	now   func() time.Time

	mu  sync.RWMutex
	cur Session
}

func NewState(store credential.Store, log logging.Logger) *State {
	return &State{
		store: store,
		log:   log.With("component", "session"),
		now:   time.Now,
	}
}

// Current returns the session as of the last completed transition.
func (s *State) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Bootstrap replays whatever the credential store currently holds. Decode
// failures and expired tokens are recovered locally by falling back to the
// anonymous session; only storage failures are returned.
func (s *State) Bootstrap(ctx context.Context) error {
	token, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load credential: %w", err)
	}

	if token == "" {
		s.set(Session{})
		return nil
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		s.log.Warn(ctx, "stored credential is malformed, falling back to anonymous", "error", err)
		s.set(Session{})
		return nil
	}
	if claims.Expired(s.now()) {
		s.log.Info(ctx, "stored credential expired, falling back to anonymous", "uid", claims.SubjectID)
		s.set(Session{})
		return nil
	}

	s.set(Session{Authenticated: true, Claims: claims})
	return nil
}

// Login decodes and persists a freshly issued credential and moves the
// session to Authenticated. On failure the session is left untouched and the
// credential is not stored.
func (s *State) Login(ctx context.Context, token string) error {
	claims, err := DecodeClaims(token)
	if err != nil {
		return err
	}
	if claims.Expired(s.now()) {
		return common.ErrTokenExpired
	}

	if err := s.store.Save(ctx, token); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}

	s.set(Session{Authenticated: true, Claims: claims})
	s.log.Info(ctx, "session established", "uid", claims.SubjectID, "role", string(claims.Role))
	return nil
}

// Logout clears the stored credential and moves the session to Anonymous.
// The in-memory session transitions even when the storage delete fails.
func (s *State) Logout(ctx context.Context) error {
	err := s.store.Clear(ctx)
	s.set(Session{})
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	s.log.Info(ctx, "session terminated")
	return nil
}

func (s *State) set(sess Session) {
	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()
}

// IsMalformed reports whether err stems from an unparseable credential.
func IsMalformed(err error) bool {
	return errors.Is(err, common.ErrMalformedToken)
}
