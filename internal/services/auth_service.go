// Package services – AuthService
//
// This file implements registration, login, and the 30-day session window.
// Passwords are hashed with one unsalted SHA-256 pass, faithful to the
// original tracker; the hash is an account namespace, not a hardening
// measure, and upgrading it is explicitly out of scope.
//
// Session lifecycle: Login (or an explicit CreateSession) issues a token
// and sweeps expired rows as a side effect; Validate resolves a token to a
// username and deletes the row the first time it is seen expired; Logout
// deletes idempotently.
package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/coffeenote/go-deposit-backend/internal/domain"
	"github.com/coffeenote/go-deposit-backend/internal/repo"
)

// DefaultSessionTTL is the fixed validity window for a login session.
const DefaultSessionTTL = 30 * 24 * time.Hour

// AuthService implements the use-cases around accounts and sessions.
type AuthService struct {
	// DB is the database handle used for all account operations.
	DB *gorm.DB
	// SessionTTL is the session validity window; zero falls back to
	// DefaultSessionTTL.
	SessionTTL time.Duration
	// Now supplies the clock for expiry checks; defaults to time.Now.
	Now func() time.Time
}

// NewAuthService constructs an AuthService with the default session window.
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db, SessionTTL: DefaultSessionTTL, Now: time.Now}
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *AuthService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

// HashPassword returns the hex-encoded SHA-256 of a password. Single
// unsalted pass, matching the stored account data this service inherits.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new account.
//
// Validation, each with its own sentinel:
//   - username at least 3 characters (ErrUsernameTooShort)
//   - password at least 6 characters (ErrPasswordTooShort)
//   - confirmation must match (ErrPasswordMismatch)
//   - username must be free (ErrUserExists)
func (s *AuthService) Register(ctx context.Context, username, password, confirm string) (*domain.User, error) {
	if len([]rune(username)) < 3 {
		return nil, ErrUsernameTooShort
	}
	if len([]rune(password)) < 6 {
		return nil, ErrPasswordTooShort
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	u, err := repo.CreateUser(ctx, s.DB, username, HashPassword(password))
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a session. Unknown usernames and
// wrong passwords are reported distinctly (the original UI shows different
// messages for the two).
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	u, err := repo.GetUserByName(ctx, s.DB, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.PasswordHash != HashPassword(password) {
		return nil, ErrBadCredentials
	}
	return s.CreateSession(ctx, username)
}

// CreateSession issues a fresh session token for username valid for the
// configured window, sweeping expired rows first.
func (s *AuthService) CreateSession(ctx context.Context, username string) (*domain.Session, error) {
	now := s.now()
	// Best effort; a failed sweep never blocks a login.
	_, _ = repo.DeleteExpiredSessions(ctx, s.DB, now)

	return repo.CreateSession(ctx, s.DB, newSessionID(), username, now.Add(s.ttl()))
}

// Validate resolves a session id to its username. Unknown ids and expired
// sessions return ErrSessionInvalid; an expired row is deleted on first
// sight so the table self-cleans under regular traffic.
func (s *AuthService) Validate(ctx context.Context, sessionID string) (string, error) {
	sess, err := repo.GetSession(ctx, s.DB, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSessionInvalid
		}
		return "", err
	}
	if !s.now().Before(sess.ExpiresAt) {
		_ = repo.DeleteSession(ctx, s.DB, sessionID)
		return "", ErrSessionInvalid
	}
	return sess.Username, nil
}

// Logout deletes a session. Unknown ids are a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return repo.DeleteSession(ctx, s.DB, sessionID)
}

// newSessionID returns a 16-hex-character random token, the shape the
// original clients already store.
func newSessionID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing is unrecoverable for token issuance.
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
