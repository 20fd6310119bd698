package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coffeenote/go-deposit-backend/internal/domain"
)

func TestSummarize(t *testing.T) {
	today := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)

	deposits := []domain.Deposit{
		{Quantity: 3, ExpiryDate: "2026-08-01"}, // expired
		{Quantity: 1, ExpiryDate: "2026-08-30"}, // expired (yesterday)
		{Quantity: 2, ExpiryDate: "2026-08-31"}, // expiring today
		{Quantity: 4, ExpiryDate: "2026-09-01"}, // soon
		{Quantity: 5, ExpiryDate: "2026-09-07"}, // soon (window edge)
		{Quantity: 6, ExpiryDate: "2026-09-08"}, // normal (past window)
		{Quantity: 7, ExpiryDate: ""},           // blank -> normal
		{Quantity: 8, ExpiryDate: "garbage"},    // unparsable -> normal
	}

	got := Summarize(deposits, today)

	want := Summary{
		TotalCups:     36,
		Records:       8,
		Active:        6,
		Expired:       2,
		ExpiringToday: 1,
		ExpiringSoon:  2,
		Normal:        3,
	}
	if got != want {
		t.Fatalf("Summarize = %+v, want %+v", got, want)
	}

	// status counters partition the record count
	if got.Expired+got.ExpiringToday+got.ExpiringSoon+got.Normal != got.Records {
		t.Fatalf("status counts do not partition records: %+v", got)
	}
	if got.Active != got.Records-got.Expired {
		t.Fatalf("active invariant broken: %+v", got)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, time.Now())
	if got != (Summary{}) {
		t.Fatalf("empty collection should be all zero, got %+v", got)
	}
}

func TestDepositService_Summary(t *testing.T) {
	repo := newFakeDepositRepo()
	svc := newTestDepositService(t, repo, nil)
	ctx := context.Background()

	// fixedToday is 2026-08-31; one expired seed goes straight into the
	// fake because Add would reject a past date only at classification
	// time, not validation time
	if _, err := svc.Add(ctx, "u1", AddInput{Item: "a", Quantity: 2, Store: "s", RedeemMethod: "m", ExpiryDate: "2026-08-01"}); err != nil {
		t.Fatalf("Add expired: %v", err)
	}
	if _, err := svc.Add(ctx, "u1", AddInput{Item: "b", Quantity: 3, Store: "s", RedeemMethod: "m", ExpiryDate: "2026-12-31"}); err != nil {
		t.Fatalf("Add normal: %v", err)
	}
	// another user's rows never leak into the summary
	if _, err := svc.Add(ctx, "u2", AddInput{Item: "c", Quantity: 100, Store: "s", RedeemMethod: "m", ExpiryDate: "2026-12-31"}); err != nil {
		t.Fatalf("Add other user: %v", err)
	}

	sum, err := svc.Summary(ctx, "u1")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.TotalCups != 5 || sum.Records != 2 || sum.Expired != 1 || sum.Active != 1 || sum.Normal != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	repo.listErr = errors.New("boom")
	if _, err := svc.Summary(ctx, "u1"); err == nil {
		t.Fatalf("expected list error to propagate")
	}
}
