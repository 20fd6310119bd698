// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User and
// Session models used by registration, login, and session resolution.
//
// Error semantics match the rest of the package: missing rows surface as
// ErrNotFound (gorm.ErrRecordNotFound); unique violations on user creation
// surface as ErrDuplicate so the service layer can report "username taken"
// without string matching at its level.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coffeenote/go-deposit-backend/internal/domain"
)

// CreateUser inserts a new User row with a UUID primary key and a UTC
// creation timestamp. The password hash is computed by the caller; this
// function persists it verbatim. A username collision returns ErrDuplicate.
func CreateUser(ctx context.Context, db *gorm.DB, username, passwordHash string) (*domain.User, error) {
	u := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return u, nil
}

// GetUserByName fetches a user by username, returning ErrNotFound when the
// account does not exist.
func GetUserByName(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateSession inserts a session row for username valid until expiresAt.
// The session id is generated by the caller (service layer owns token
// shape).
func CreateSession(ctx context.Context, db *gorm.DB, id, username string, expiresAt time.Time) (*domain.Session, error) {
	s := &domain.Session{
		ID:        id,
		Username:  username,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: expiresAt,
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSession fetches a session by id regardless of expiry; the service
// layer decides what an expired row means. Missing rows return ErrNotFound.
func GetSession(ctx context.Context, db *gorm.DB, id string) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession removes a session row. Deleting a missing session is not an
// error: logout is idempotent.
func DeleteSession(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Session{}).Error
}

// DeleteExpiredSessions sweeps every session whose expiry is at or before
// now and returns the number of rows removed.
func DeleteExpiredSessions(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&domain.Session{})
	return res.RowsAffected, res.Error
}

// isUniqueViolation detects unique-constraint failures across drivers that
// may not map to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	// glebarez/sqlite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
