// Package services – DepositService
//
// This file implements the DepositService, which owns the deposit lifecycle:
// validated creation, the redeem-one state transition (decrement, or delete
// when the last cup is consumed), unconditional deletion, and the
// expiry-ordered listing. It normalizes the loosely typed expiry input
// (date string, ISO datetime, or days-from-today) into one canonical
// calendar date at the boundary, and serializes each user's
// read-modify-write cycle behind a per-user mutex so two concurrent redeems
// can never observe the same pre-decrement quantity.
//
// Service-level errors (ErrMissingField, ErrBadQuantity, ErrBadDate,
// ErrDepositNotFound) are returned for predictable cases so handlers can
// map them to HTTP results consistently.
//
// Observability: mutating methods are OpenTelemetry-instrumented; spans
// carry user and deposit identifiers.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"golang.org/x/text/unicode/norm"

	"github.com/coffeenote/go-deposit-backend/internal/domain"
	"github.com/coffeenote/go-deposit-backend/internal/expiry"
)

// DepositRepo defines the repository contract required by DepositService.
// Implementations are responsible for persistence of deposit rows.
type DepositRepo interface {
	// CreateDeposit inserts a new deposit row for the given user.
	CreateDeposit(ctx context.Context, db *gorm.DB, userID, item string, quantity int, store, redeemMethod, expiryDate string) (*domain.Deposit, error)

	// ListDeposits returns the user's deposits ordered by ascending expiry.
	ListDeposits(ctx context.Context, db *gorm.DB, userID string) ([]domain.Deposit, error)

	// GetDeposit fetches a deposit by ID ensuring it belongs to the user.
	GetDeposit(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Deposit, error)

	// UpdateDepositQuantity sets the remaining quantity (only if it belongs to the user).
	UpdateDepositQuantity(ctx context.Context, db *gorm.DB, id, userID string, quantity int) error

	// DeleteDeposit removes a deposit row (only if it belongs to the user).
	DeleteDeposit(ctx context.Context, db *gorm.DB, id, userID string) error
}

// Exporter receives an at-least-once notification with the user's full
// deposit collection after every successful commit. Implementations must
// not block: the service calls Notify synchronously on the request path and
// expects it to hand off to a background worker.
type Exporter interface {
	Notify(username string, deposits []domain.Deposit)
}

// AddInput carries the raw fields of an add request. Exactly one of
// ExpiryDate (a date or ISO datetime string) or DaysFromToday (>= 1) names
// the expiry; when both are present the explicit date wins.
type AddInput struct {
	Item          string
	Quantity      int
	Store         string
	RedeemMethod  string
	ExpiryDate    string
	DaysFromToday int
}

// RedemptionResult describes the outcome of a redeem-one transition.
type RedemptionResult struct {
	ID        string `json:"id"`
	Item      string `json:"item"`
	Remaining int    `json:"remaining"`
	// Deleted is true when the last cup was consumed and the record was
	// removed instead of decremented.
	Deleted bool `json:"deleted"`
}

// DepositService provides the only mutation primitives over a user's
// deposit collection, plus its ordered listing. All mutations for one user
// are serialized; different users proceed in parallel.
type DepositService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the deposit repository used by this service.
	Repo DepositRepo
	// Exporter, when non-nil, is notified after each successful commit.
	Exporter Exporter
	// Now supplies "today" for expiry arithmetic; defaults to time.Now.
	Now func() time.Time

	// locks holds one mutex per user id, created on demand.
	locks sync.Map

	// choices holds the most recently built label snapshot per user; see
	// choices.go.
	choices sync.Map
}

// NewDepositService constructs a DepositService bound to db and repo.
func NewDepositService(db *gorm.DB, r DepositRepo, exp Exporter) *DepositService {
	return &DepositService{DB: db, Repo: r, Exporter: exp, Now: time.Now}
}

// lockFor returns the mutex serializing one user's read-modify-write
// cycles, creating it on first use. Entries are never evicted; the map is
// bounded by the number of distinct users seen by this process.
func (s *DepositService) lockFor(userID string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// now returns the configured clock, falling back to time.Now.
func (s *DepositService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Add validates the input, normalizes the expiry date, and appends a new
// deposit to the user's collection.
//
// Validation, each with its own sentinel:
//   - item, store, redeemMethod must be non-empty after trimming (ErrMissingField)
//   - quantity must be >= 1 (ErrBadQuantity)
//   - the expiry input must reduce to a calendar date (ErrBadDate)
//
// The item name is NFC-normalized and whitespace-collapsed so visually
// identical CJK input maps to one stored form.
func (s *DepositService) Add(ctx context.Context, userID string, in AddInput) (*domain.Deposit, error) {
	tr := otel.Tracer("services/DepositService")
	ctx, span := tr.Start(ctx, "Add",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	item := normalizeItem(in.Item)
	store := strings.TrimSpace(in.Store)
	method := strings.TrimSpace(in.RedeemMethod)
	if item == "" || store == "" || method == "" {
		return nil, ErrMissingField
	}
	if in.Quantity < 1 {
		return nil, ErrBadQuantity
	}

	date, err := s.normalizeExpiry(in)
	if err != nil {
		return nil, err
	}

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	d, err := s.Repo.CreateDeposit(ctx, s.DB, userID, item, in.Quantity, store, method, date)
	if err != nil {
		return nil, err
	}
	s.afterCommit(ctx, userID)
	return d, nil
}

// normalizeExpiry reduces the tagged expiry input to one canonical date.
// An explicit date string takes precedence over the counted form.
func (s *DepositService) normalizeExpiry(in AddInput) (string, error) {
	if raw := strings.TrimSpace(in.ExpiryDate); raw != "" {
		date, ok := expiry.NormalizeDate(raw)
		if !ok {
			return "", ErrBadDate
		}
		return date, nil
	}
	if in.DaysFromToday >= 1 {
		return expiry.FromDays(in.DaysFromToday, s.now()), nil
	}
	return "", ErrBadDate
}

// RedeemOne consumes exactly one cup from the identified deposit. With more
// than one cup remaining the quantity is decremented; with exactly one the
// record is deleted. These are the only transitions. An unknown id returns
// ErrDepositNotFound.
//
// The read-modify-write runs under the user's mutex and inside a DB
// transaction, so concurrent redeems for the same user serialize instead of
// both consuming the same cup.
func (s *DepositService) RedeemOne(ctx context.Context, userID, id string) (*RedemptionResult, error) {
	tr := otel.Tracer("services/DepositService")
	ctx, span := tr.Start(ctx, "RedeemOne",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("deposit.id", id),
		),
	)
	defer span.End()

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	var res RedemptionResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		d, err := s.Repo.GetDeposit(ctx, tx, id, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepositNotFound
			}
			return err
		}
		res = RedemptionResult{ID: d.ID, Item: d.Item}
		if d.Quantity > 1 {
			res.Remaining = d.Quantity - 1
			return s.Repo.UpdateDepositQuantity(ctx, tx, id, userID, d.Quantity-1)
		}
		res.Deleted = true
		return s.Repo.DeleteDeposit(ctx, tx, id, userID)
	})
	if err != nil {
		return nil, err
	}
	s.afterCommit(ctx, userID)
	return &res, nil
}

// Delete unconditionally removes the identified deposit regardless of its
// remaining quantity and returns the item name for confirmation messaging.
// An unknown id returns ErrDepositNotFound.
func (s *DepositService) Delete(ctx context.Context, userID, id string) (string, error) {
	tr := otel.Tracer("services/DepositService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("deposit.id", id),
		),
	)
	defer span.End()

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	var item string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		d, err := s.Repo.GetDeposit(ctx, tx, id, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepositNotFound
			}
			return err
		}
		item = d.Item
		return s.Repo.DeleteDeposit(ctx, tx, id, userID)
	})
	if err != nil {
		return "", err
	}
	s.afterCommit(ctx, userID)
	return item, nil
}

// List returns the user's deposits ordered ascending by expiry date, blank
// or unparsable dates last.
func (s *DepositService) List(ctx context.Context, userID string) ([]domain.Deposit, error) {
	return s.Repo.ListDeposits(ctx, s.DB, userID)
}

// afterCommit refreshes the user's choice snapshot and hands the fresh
// collection to the exporter. Both are best effort: the mutation already
// committed, and a failed refresh only delays label invalidation until the
// next read.
func (s *DepositService) afterCommit(ctx context.Context, userID string) {
	deposits, err := s.Repo.ListDeposits(ctx, s.DB, userID)
	if err != nil {
		return
	}
	s.storeChoices(userID, BuildChoices(deposits, s.now()))
	if s.Exporter != nil {
		s.Exporter.Notify(userID, deposits)
	}
}

// normalizeItem NFC-normalizes an item name and collapses internal runs of
// whitespace. CJK text pasted from different sources often differs only in
// composition form; normalizing keeps one stored spelling.
func normalizeItem(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return whitespaceRE.ReplaceAllString(s, " ")
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)
