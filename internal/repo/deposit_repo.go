// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Deposit
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition. In particular the redeem state machine
// (decrement vs delete-on-exhaustion) lives in services.DepositService;
// this file only offers the primitive reads and writes it composes.
//
// Error semantics:
//   - When a deposit is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coffeenote/go-deposit-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// expiryOrder sorts ascending by expiry date with blank values pushed to
// the end via the far-future sentinel. "YYYY-MM-DD" compares correctly as
// text, so no date parsing happens in SQL; ties break on creation time.
const expiryOrder = "CASE WHEN expiry_date = '' THEN '" + domain.FarFutureDate + "' ELSE expiry_date END ASC, created_at ASC"

// CreateDeposit inserts a new Deposit row owned by userID. The deposit ID
// is a randomly generated UUID (string), and CreatedAt is set to UTC.
// Field validation happens in the service layer before this call.
//
// On success, it returns the persisted Deposit. On failure, it returns a DB error.
func CreateDeposit(ctx context.Context, db *gorm.DB, userID, item string, quantity int, store, redeemMethod, expiryDate string) (*domain.Deposit, error) {
	d := &domain.Deposit{
		ID:           uuid.NewString(),
		UserID:       userID,
		Item:         item,
		Quantity:     quantity,
		Store:        store,
		RedeemMethod: redeemMethod,
		ExpiryDate:   expiryDate,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// ListDeposits returns all deposits belonging to userID, ordered ascending
// by expiry date with blank/sentinel dates last. It returns an empty slice
// if the user has no deposits. On DB error, it returns the error.
func ListDeposits(ctx context.Context, db *gorm.DB, userID string) ([]domain.Deposit, error) {
	var out []domain.Deposit
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(expiryOrder).
		Find(&out).Error
	return out, err
}

// CountDeposits returns the total number of deposit rows owned by userID.
// On DB error, it returns the error.
func CountDeposits(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Deposit{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// GetDeposit fetches a single deposit by its ID and owner (userID). If the
// record does not exist, it returns ErrNotFound. On other DB errors, the
// raw error is returned.
func GetDeposit(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Deposit, error) {
	var d domain.Deposit
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDepositQuantity sets the remaining quantity of a deposit identified
// by id and owned by userID. If no rows are affected (deposit missing or
// not owned by userID), it returns ErrNotFound. On DB error, the raw error
// is returned.
//
// Quantity is the only mutable deposit field; callers enforce quantity >= 1
// and delete the row instead of writing zero.
func UpdateDepositQuantity(ctx context.Context, db *gorm.DB, id, userID string, quantity int) error {
	res := db.WithContext(ctx).
		Model(&domain.Deposit{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteDeposit removes a deposit identified by id and owned by userID.
// If no rows are affected, it returns ErrNotFound. On DB error, the raw
// error is returned.
func DeleteDeposit(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Deposit{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
