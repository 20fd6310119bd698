// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used for
// conditional responses (ETag generation) in the HTTP layer. Each function
// is context-aware and safe to call from services or handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/coffeenote/go-deposit-backend/internal/domain"
)

// DepositsStats returns aggregate metadata for a user's deposits: the total
// number of rows and the maximum UpdatedAt timestamp among those rows.
//
// It executes two lightweight queries against the deposits table scoped to
// the provided userID. When the user has no deposits, the returned count is
// 0 and maxUpdatedAt is nil.
//
// Return values:
//   - count:        total deposits for userID
//   - maxUpdatedAt: pointer to the greatest UpdatedAt, or nil if no rows
//   - err:          database error, if any
func DepositsStats(ctx context.Context, db *gorm.DB, userID string) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Deposit{}).Where("user_id = ?", userID)

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}

// TotalCups returns the sum of remaining quantity over all of a user's
// deposit rows, regardless of expiry status. Zero rows sum to zero.
func TotalCups(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var row struct {
		Total int64
	}
	err := db.WithContext(ctx).
		Model(&domain.Deposit{}).
		Select("COALESCE(SUM(quantity), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&row).Error
	return row.Total, err
}
