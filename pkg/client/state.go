// pkg/client/state.go
package client

import (
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/member"
)

// CartState holds the session-local view of the cart: the last confirmed
// snapshot, the set of line ids checked for purchase, and a memoized cost
// summary. The memo is invalidated by every write and recomputed lazily on
// the next read, so a read always reflects the latest known inputs.
//
// The state models a single shopper session and is not safe for concurrent
// use.
type CartState struct {
	items    cart.Snapshot
	selected map[uint]struct{}
	rank     member.Rank
	rules    cart.PricingRules

	costs      cart.CheckoutCosts
	costsDirty bool
}

// NewCartState creates an empty cart state priced with the given rules.
func NewCartState(rules cart.PricingRules) *CartState {
	return &CartState{
		selected:   make(map[uint]struct{}),
		rank:       member.RankNormal,
		rules:      rules,
		costsDirty: true,
	}
}

// Items returns the current snapshot.
func (s *CartState) Items() cart.Snapshot {
	return s.items
}

// IsSelected reports whether the line id is checked.
func (s *CartState) IsSelected(itemID uint) bool {
	_, ok := s.selected[itemID]
	return ok
}

// SelectedIDs returns the checked ids in snapshot order.
func (s *CartState) SelectedIDs() []uint {
	ids := make([]uint, 0, len(s.selected))
	for _, item := range s.items {
		if s.IsSelected(item.ID) {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// Toggle flips the checked state of one line. Ids not present in the snapshot
// are ignored, so the selection can never reference a missing line.
func (s *CartState) Toggle(itemID uint) {
	if _, exists := s.items.Find(itemID); !exists {
		return
	}
	if s.IsSelected(itemID) {
		delete(s.selected, itemID)
	} else {
		s.selected[itemID] = struct{}{}
	}
	s.costsDirty = true
}

// SelectAll checks every line in the snapshot.
func (s *CartState) SelectAll() {
	for _, item := range s.items {
		s.selected[item.ID] = struct{}{}
	}
	s.costsDirty = true
}

// ClearSelection unchecks every line.
func (s *CartState) ClearSelection() {
	s.selected = make(map[uint]struct{})
	s.costsDirty = true
}

// Costs returns the cost summary for the current selection and rank,
// recomputing only when an input has changed since the last read.
func (s *CartState) Costs() cart.CheckoutCosts {
	if s.costsDirty {
		s.costs = cart.CalculateCosts(s.items.Select(s.SelectedIDs()), s.rank, s.rules)
		s.costsDirty = false
	}
	return s.costs
}

// setRank records the shopper's rank, one of the three calculator inputs.
func (s *CartState) setRank(rank member.Rank) {
	if rank == s.rank {
		return
	}
	s.rank = rank
	s.costsDirty = true
}

// replace swaps in a freshly confirmed snapshot. Selected ids whose lines no
// longer exist are dropped.
func (s *CartState) replace(snapshot cart.Snapshot) {
	s.items = snapshot
	for id := range s.selected {
		if _, exists := snapshot.Find(id); !exists {
			delete(s.selected, id)
		}
	}
	s.costsDirty = true
}

// appendLine adds a store-confirmed line to the local snapshot.
func (s *CartState) appendLine(item cart.Item) {
	s.items = append(s.items, item)
	s.costsDirty = true
}
