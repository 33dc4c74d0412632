// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Item represents one cart line. The id is minted by the store on creation
// and is never reused after removal.
type Item struct {
	ID       uint            `json:"id"`
	Quantity int             `json:"quantity"`
	Product  catalog.Product `json:"product"`
}

// Subtotal returns the undiscounted line price.
func (i Item) Subtotal() int64 {
	return i.Product.UnitPrice * int64(i.Quantity)
}

// Snapshot is the ordered list of cart lines. Insertion order is significant
// for display only; the cost math never depends on it.
type Snapshot []Item

// IDs returns the line ids in snapshot order.
func (s Snapshot) IDs() []uint {
	ids := make([]uint, len(s))
	for i, item := range s {
		ids[i] = item.ID
	}
	return ids
}

// Find returns the line with the given id, or false when absent.
func (s Snapshot) Find(itemID uint) (Item, bool) {
	for _, item := range s {
		if item.ID == itemID {
			return item, true
		}
	}
	return Item{}, false
}

// Select returns the lines whose ids are in the given set, preserving
// snapshot order. Ids that no longer exist in the snapshot are skipped, so a
// stale selection can never be priced.
func (s Snapshot) Select(itemIDs []uint) Snapshot {
	wanted := make(map[uint]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = struct{}{}
	}

	selected := make(Snapshot, 0, len(itemIDs))
	for _, item := range s {
		if _, ok := wanted[item.ID]; ok {
			selected = append(selected, item)
		}
	}
	return selected
}
