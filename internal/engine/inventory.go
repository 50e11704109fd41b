package engine

import (
	"fmt"
	"slices"

	"github.com/tatianab/text-rooms/internal/room"
)

// DefaultMaxItems is the number of distinct items a player can carry.
const DefaultMaxItems = 15

// Inventory holds the items picked up during one session, in pickup order and
// without duplicates.
type Inventory struct {
	items    []string
	capacity int
}

// NewInventory returns an empty inventory. A capacity below one falls back to
// DefaultMaxItems.
func NewInventory(capacity int) *Inventory {
	if capacity < 1 {
		capacity = DefaultMaxItems
	}
	return &Inventory{
		items:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// PickItem adds item unless it is already held. It returns
// room.ErrCapacityExceeded when the inventory is full.
func (inv *Inventory) PickItem(item string) error {
	if inv.Has(item) {
		return nil
	}
	if len(inv.items) >= inv.capacity {
		return fmt.Errorf("%w: cannot pick %q, limit is %d items", room.ErrCapacityExceeded, item, inv.capacity)
	}
	inv.items = append(inv.items, item)
	return nil
}

// Items returns a copy of the held items.
func (inv *Inventory) Items() []string {
	return slices.Clone(inv.items)
}

func (inv *Inventory) Has(item string) bool {
	return slices.Contains(inv.items, item)
}

func (inv *Inventory) Capacity() int { return inv.capacity }
