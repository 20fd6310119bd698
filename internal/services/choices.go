// Package services – choice/label mapping
//
// Several revisions of the tracker's UI select deposits by their rendered
// label rather than a hidden id, so the service exposes an ordered label
// list plus a reverse lookup from label to deposit id. The reverse map is a
// snapshot: it is rebuilt after every mutation, and a label minted against
// an older snapshot must fail to resolve rather than silently act on
// whatever now sits at that label.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/coffeenote/go-deposit-backend/internal/domain"
	"github.com/coffeenote/go-deposit-backend/internal/expiry"
)

// Choice pairs a display label with the deposit id it currently denotes.
type Choice struct {
	Label string `json:"label"`
	ID    string `json:"id"`
}

// ChoiceSnapshot is one user's label set at a point in time: the ordered
// choices plus the reverse label-to-id index built from exactly those
// choices.
type ChoiceSnapshot struct {
	Choices []Choice
	byLabel map[string]string
}

// Resolve looks a label up in this snapshot. The boolean is false for
// labels minted against a different (stale) snapshot.
func (c *ChoiceSnapshot) Resolve(label string) (string, bool) {
	if c == nil {
		return "", false
	}
	id, ok := c.byLabel[label]
	return id, ok
}

// Label renders the display string for one deposit:
//
//	{item} - {store} ({quantity}杯) - 到期:{YYYY/MM/DD}{status tag}
//
// where the tag reflects Classify at the given today.
func Label(d domain.Deposit, today time.Time) string {
	return fmt.Sprintf("%s - %s (%d杯) - 到期:%s%s",
		d.Item, d.Store, d.Quantity,
		expiry.FormatDisplay(d.ExpiryDate),
		expiry.Classify(d.ExpiryDate, today).Tag())
}

// BuildChoices renders a snapshot for a deposit collection, preserving the
// collection's order. Two deposits rendering to an identical label collide
// in the reverse map; the later one wins, as in a plain map rebuild.
func BuildChoices(deposits []domain.Deposit, today time.Time) *ChoiceSnapshot {
	snap := &ChoiceSnapshot{
		Choices: make([]Choice, 0, len(deposits)),
		byLabel: make(map[string]string, len(deposits)),
	}
	for _, d := range deposits {
		label := Label(d, today)
		snap.Choices = append(snap.Choices, Choice{Label: label, ID: d.ID})
		snap.byLabel[label] = d.ID
	}
	return snap
}

// Choices rebuilds and stores the user's current snapshot from the live
// collection and returns it. Every read goes through a fresh build so the
// returned labels always reflect current quantities and statuses.
func (s *DepositService) Choices(ctx context.Context, userID string) (*ChoiceSnapshot, error) {
	deposits, err := s.Repo.ListDeposits(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	snap := BuildChoices(deposits, s.now())
	s.storeChoices(userID, snap)
	return snap, nil
}

// RedeemOneByLabel resolves a label against the user's most recent snapshot
// and redeems one cup from the matching deposit. Stale or unknown labels
// return ErrDepositNotFound without touching the collection.
func (s *DepositService) RedeemOneByLabel(ctx context.Context, userID, label string) (*RedemptionResult, error) {
	id, ok := s.currentChoices(userID).Resolve(label)
	if !ok {
		return nil, ErrDepositNotFound
	}
	return s.RedeemOne(ctx, userID, id)
}

// DeleteByLabel resolves a label against the user's most recent snapshot
// and deletes the matching deposit. Stale or unknown labels return
// ErrDepositNotFound without touching the collection.
func (s *DepositService) DeleteByLabel(ctx context.Context, userID, label string) (string, error) {
	id, ok := s.currentChoices(userID).Resolve(label)
	if !ok {
		return "", ErrDepositNotFound
	}
	return s.Delete(ctx, userID, id)
}

// currentChoices returns the most recently stored snapshot for the user,
// or nil when none has been built yet (nil resolves nothing).
func (s *DepositService) currentChoices(userID string) *ChoiceSnapshot {
	if v, ok := s.choices.Load(userID); ok {
		return v.(*ChoiceSnapshot)
	}
	return nil
}

// storeChoices replaces the user's snapshot wholesale.
func (s *DepositService) storeChoices(userID string, snap *ChoiceSnapshot) {
	s.choices.Store(userID, snap)
}
