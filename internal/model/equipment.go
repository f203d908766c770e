package model

import (
	"fmt"

	"github.com/GGPrompts/pixeloot/internal/data"
)

// Equipment holds the eight equip-slot references. Each slot is nullable.
// Mutations do not notify the stat engine; callers must invalidate the stat
// cache themselves after every equip/unequip.
type Equipment struct {
	slots [data.SlotCount]*Item
}

// NewEquipment creates empty equipment.
func NewEquipment() *Equipment {
	return &Equipment{}
}

// Equip places the item into its slot and returns the displaced item, if any.
func (e *Equipment) Equip(item *Item) (*Item, error) {
	if item == nil {
		return nil, fmt.Errorf("item cannot be nil")
	}
	slot := item.Slot()
	if slot >= data.SlotCount {
		return nil, fmt.Errorf("invalid equipment slot %d", slot)
	}
	prev := e.slots[slot]
	e.slots[slot] = item
	return prev, nil
}

// Unequip clears the slot and returns the removed item, or nil.
func (e *Equipment) Unequip(slot uint8) *Item {
	if slot >= data.SlotCount {
		return nil
	}
	prev := e.slots[slot]
	e.slots[slot] = nil
	return prev
}

// Get returns the item in the slot, or nil.
func (e *Equipment) Get(slot uint8) *Item {
	if slot >= data.SlotCount {
		return nil
	}
	return e.slots[slot]
}

// Weapon returns the equipped weapon, or nil.
func (e *Equipment) Weapon() *Item {
	return e.slots[data.SlotWeapon]
}

// ForEach calls fn for every equipped (non-nil) item in slot order.
func (e *Equipment) ForEach(fn func(*Item)) {
	for _, item := range e.slots {
		if item != nil {
			fn(item)
		}
	}
}

// Count returns the number of equipped items.
func (e *Equipment) Count() int {
	n := 0
	for _, item := range e.slots {
		if item != nil {
			n++
		}
	}
	return n
}
