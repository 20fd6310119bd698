// Package services defines the business logic for deposits, authentication,
// and sessions. This file centralizes common service-level error values so
// that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

// Deposit validation errors. Each maps to a distinct user-facing message so
// the caller can tell which part of an Add request was rejected.
var (
	// ErrMissingField is returned when item, store, or redeem method is
	// blank after trimming.
	ErrMissingField = errors.New("required field is empty")

	// ErrBadQuantity is returned when the quantity is not an integer >= 1.
	ErrBadQuantity = errors.New("quantity must be a positive integer")

	// ErrBadDate is returned when the expiry date input cannot be reduced
	// to a valid calendar date (neither a parsable date string nor a
	// days-from-today count >= 1 was supplied).
	ErrBadDate = errors.New("expiry date is invalid")

	// ErrDepositNotFound indicates that the requested deposit does not
	// exist, is not owned by the current user, or was referenced through a
	// stale choice label.
	ErrDepositNotFound = errors.New("deposit not found")
)

// Authentication and session errors.
var (
	// ErrUsernameTooShort is returned when a registration username has
	// fewer than 3 characters.
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")

	// ErrPasswordTooShort is returned when a registration password has
	// fewer than 6 characters.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrPasswordMismatch is returned when the confirmation password does
	// not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrUserExists is returned when the username is already registered.
	ErrUserExists = errors.New("username already exists")

	// ErrUserNotFound is returned on login for an unknown username.
	ErrUserNotFound = errors.New("user not found")

	// ErrBadCredentials is returned on login when the password hash does
	// not match the stored one.
	ErrBadCredentials = errors.New("wrong password")

	// ErrSessionInvalid is returned when a session id is unknown or past
	// its expiry window.
	ErrSessionInvalid = errors.New("session invalid or expired")
)
