// Package services – statistics aggregation
//
// The summary is purely derived from the listed collection: total cups over
// every record regardless of status, plus mutually exclusive status counts.
// No persistence of its own.
package services

import (
	"context"
	"time"

	"github.com/coffeenote/go-deposit-backend/internal/domain"
	"github.com/coffeenote/go-deposit-backend/internal/expiry"
)

// Summary aggregates one user's deposit collection.
//
// Counting is mutually exclusive: a record contributes to exactly one of
// Expired / ExpiringToday / ExpiringSoon / Normal, so
// Expired + ExpiringToday + ExpiringSoon + Normal == Records, and
// Active == Records - Expired. TotalCups sums quantity over all records
// whatever their status.
type Summary struct {
	TotalCups     int `json:"total_cups"`
	Records       int `json:"records"`
	Active        int `json:"active"`
	Expired       int `json:"expired"`
	ExpiringToday int `json:"expiring_today"`
	ExpiringSoon  int `json:"expiring_soon"`
	Normal        int `json:"normal"`
}

// Summarize computes the summary for a collection against an explicit
// today. Pure; usable directly in tests without a service instance.
func Summarize(deposits []domain.Deposit, today time.Time) Summary {
	var sum Summary
	sum.Records = len(deposits)
	for _, d := range deposits {
		sum.TotalCups += d.Quantity
		switch expiry.Classify(d.ExpiryDate, today) {
		case expiry.StatusExpired:
			sum.Expired++
		case expiry.StatusExpiringToday:
			sum.ExpiringToday++
		case expiry.StatusExpiringSoon:
			sum.ExpiringSoon++
		default:
			sum.Normal++
		}
	}
	sum.Active = sum.Records - sum.Expired
	return sum
}

// Summary lists the user's collection and aggregates it with the service
// clock.
func (s *DepositService) Summary(ctx context.Context, userID string) (Summary, error) {
	deposits, err := s.Repo.ListDeposits(ctx, s.DB, userID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(deposits, s.now()), nil
}
