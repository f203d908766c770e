package model

import (
	"fmt"

	"github.com/GGPrompts/pixeloot/internal/data"
)

// Affix — a rolled modifier instance on an item. Created by the item
// generator when the item is rolled or rerolled; read-only to the stat
// engine for the item's lifetime.
type Affix struct {
	ID          int32
	StatKey     data.StatKey
	Category    data.AffixCategory
	RolledValue float64
	MinValue    float64
	MaxValue    float64
}

// Gem — a socketed gem granting one flat stat bonus. Aggregated exactly like
// a passive affix.
type Gem struct {
	StatKey data.StatKey
	Value   float64
}

// Item — a concrete equippable item instance: base combat stats plus rolled
// affixes and an optional socketed gem.
type Item struct {
	objectID   uint32
	name       string
	slot       uint8 // target equipment slot
	baseDamage float64
	baseArmor  float64
	affixes    []Affix
	gem        *Gem
}

// NewItem creates an item with validation.
func NewItem(objectID uint32, name string, slot uint8, baseDamage, baseArmor float64) (*Item, error) {
	if slot >= data.SlotCount {
		return nil, fmt.Errorf("invalid equipment slot %d", slot)
	}
	if baseDamage < 0 || baseArmor < 0 {
		return nil, fmt.Errorf("base stats must be >= 0, got damage=%v armor=%v", baseDamage, baseArmor)
	}
	return &Item{
		objectID:   objectID,
		name:       name,
		slot:       slot,
		baseDamage: baseDamage,
		baseArmor:  baseArmor,
	}, nil
}

// ObjectID returns the item's unique world ID.
func (i *Item) ObjectID() uint32 { return i.objectID }

// Name returns the item's display name.
func (i *Item) Name() string { return i.name }

// Slot returns the equipment slot this item occupies when equipped.
func (i *Item) Slot() uint8 { return i.slot }

// BaseDamage returns the weapon's base damage (0 for non-weapons).
func (i *Item) BaseDamage() float64 { return i.baseDamage }

// BaseArmor returns the item's base armor contribution.
func (i *Item) BaseArmor() float64 { return i.baseArmor }

// Affixes returns the rolled affixes. The returned slice is owned by the
// item and must not be mutated.
func (i *Item) Affixes() []Affix { return i.affixes }

// Gem returns the socketed gem, or nil.
func (i *Item) Gem() *Gem { return i.gem }

// AddAffix appends a rolled affix. Called by the item generator only.
func (i *Item) AddAffix(a Affix) {
	i.affixes = append(i.affixes, a)
}

// SocketGem sets the socketed gem, replacing any existing one.
func (i *Item) SocketGem(g *Gem) {
	i.gem = g
}
