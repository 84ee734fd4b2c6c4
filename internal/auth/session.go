// Package auth implements the session manager. The session is a two-state
// machine, anonymous or authenticated, with the authenticated identity
// persisted to the store so it survives restarts. Credentials are checked
// against an in-memory demo table; there is no real authentication.
package auth

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matthieukhl/storefront/internal/config"
	"github.com/matthieukhl/storefront/internal/errs"
	"github.com/matthieukhl/storefront/internal/latency"
	"github.com/matthieukhl/storefront/internal/models"
	"github.com/matthieukhl/storefront/internal/store"
)

// credential is a known demo account. Passwords live only in this table and
// are never written to the store.
type credential struct {
	user     models.User
	password string
}

// Session owns the current identity and gates checkout.
type Session struct {
	mu      sync.Mutex
	current *models.User
	creds   []credential
	kv      store.KV
	delay   time.Duration
	logger  *zap.Logger
}

// NewSession creates a session manager with the built-in demo account plus
// any extra accounts from config. The session starts anonymous; call Hydrate
// to restore a persisted identity.
func NewSession(kv store.KV, cfg *config.AuthConfig, delay time.Duration, logger *zap.Logger) *Session {
	creds := []credential{
		{
			user:     models.User{ID: "user1", Email: "demo@example.com", Name: "Demo User"},
			password: "password123",
		},
	}
	for _, u := range cfg.Users {
		creds = append(creds, credential{
			user:     models.User{ID: uuid.NewString(), Email: u.Email, Name: u.Name},
			password: u.Password,
		})
	}

	return &Session{
		creds:  creds,
		kv:     kv,
		delay:  delay,
		logger: logger,
	}
}

// Hydrate restores the authenticated identity from the store. A corrupt
// stored value is logged and treated as anonymous, never surfaced.
func (s *Session) Hydrate() {
	raw, ok, err := s.kv.Get(store.KeyUser)
	if err != nil {
		s.logger.Warn("failed to read persisted user", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		perr := errs.StorageParse("failed to parse persisted user", err)
		s.logger.Warn("ignoring corrupt persisted user", zap.Error(perr))
		return
	}

	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()
}

// Login authenticates email/password against the demo table. A mismatch
// returns an authentication error and leaves the session unchanged. The call
// simulates a network round-trip and aborts early when ctx is cancelled.
func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := latency.Simulate(ctx, s.delay); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cred := range s.creds {
		if strings.EqualFold(cred.user.Email, email) && cred.password == password {
			user := cred.user
			// Persist first: a store failure must leave the session
			// anonymous, not half signed in.
			if err := s.persist(&user); err != nil {
				return nil, err
			}
			s.current = &user
			return &user, nil
		}
	}

	return nil, errs.Authentication("invalid email or password")
}

// Register creates a new account and signs it in. Registration fails with a
// validation error when the email is already taken. Like Login it simulates
// a network round-trip.
func (s *Session) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, errs.Validation("email, password and name are required")
	}

	if err := latency.Simulate(ctx, s.delay); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cred := range s.creds {
		if strings.EqualFold(cred.user.Email, email) {
			return nil, errs.Validation("this email address is already in use")
		}
	}

	user := models.User{ID: uuid.NewString(), Email: email, Name: name}
	if err := s.persist(&user); err != nil {
		return nil, err
	}
	s.creds = append(s.creds, credential{user: user, password: password})
	s.current = &user

	return &user, nil
}

// Logout returns the session to anonymous and clears the persisted identity
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.kv.Delete(store.KeyUser); err != nil {
		return err
	}
	return nil
}

// Current returns the authenticated user, or false when anonymous
func (s *Session) Current() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}
	user := *s.current
	return &user, true
}

// UpdateAddress saves a default shipping address on the current user and
// re-persists it. Fails when the session is anonymous.
func (s *Session) UpdateAddress(addr models.Address) error {
	if addr.Country == "" {
		addr.Country = models.DefaultCountry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return errs.Authentication("not signed in")
	}
	s.current.Address = &addr
	return s.persist(s.current)
}

// persist writes the user under the fixed store key. Callers hold s.mu.
func (s *Session) persist(user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.Set(store.KeyUser, string(raw))
}
