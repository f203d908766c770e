package model

import (
	"fmt"

	"github.com/GGPrompts/pixeloot/internal/data"
)

// Attributes — the four allocatable player attributes.
type Attributes struct {
	Dexterity    float64
	Intelligence float64
	Vitality     float64
	Focus        float64
}

// Get returns the raw value of the given attribute.
func (a Attributes) Get(attr data.Attribute) float64 {
	switch attr {
	case data.AttrDexterity:
		return a.Dexterity
	case data.AttrIntelligence:
		return a.Intelligence
	case data.AttrVitality:
		return a.Vitality
	case data.AttrFocus:
		return a.Focus
	default:
		return 0
	}
}

// Player — the single logical player character: health, position and the
// attribute sheet. Derived combat numbers live in the stat engine, not here;
// the player only stores what the engine reads.
type Player struct {
	name     string
	position Location

	base      Attributes // class baseline, fixed per class
	allocated Attributes // from spent stat points
	unspent   int

	currentHP float64
	maxHP     float64 // synced from the computed stat snapshot
}

// NewPlayer creates a player with the given class baseline attributes.
func NewPlayer(name string, base Attributes) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	p := &Player{
		name: name,
		base: base,
	}
	p.maxHP = data.BaseMaxHP + base.Vitality*data.HPPerVitality
	p.currentHP = p.maxHP
	return p, nil
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// Position returns the player's world position.
func (p *Player) Position() Location { return p.position }

// SetPosition moves the player to the given position.
func (p *Player) SetPosition(loc Location) { p.position = loc }

// Health returns current and max HP.
func (p *Player) Health() (current, max float64) {
	return p.currentHP, p.maxHP
}

// SetMaxHP updates max HP from a recomputed stat snapshot, clamping current
// HP into the new range.
func (p *Player) SetMaxHP(maxHP float64) {
	if maxHP < 1 {
		maxHP = 1
	}
	p.maxHP = maxHP
	if p.currentHP > maxHP {
		p.currentHP = maxHP
	}
}

// ApplyDamage reduces current HP, flooring at 0.
func (p *Player) ApplyDamage(amount float64) {
	if amount < 0 {
		return
	}
	p.currentHP -= amount
	if p.currentHP < 0 {
		p.currentHP = 0
	}
}

// Heal raises current HP, capped at max.
func (p *Player) Heal(amount float64) {
	if amount < 0 {
		return
	}
	p.currentHP += amount
	if p.currentHP > p.maxHP {
		p.currentHP = p.maxHP
	}
}

// Attributes returns the effective attribute sheet (base + allocated).
func (p *Player) Attributes() Attributes {
	return Attributes{
		Dexterity:    p.base.Dexterity + p.allocated.Dexterity,
		Intelligence: p.base.Intelligence + p.allocated.Intelligence,
		Vitality:     p.base.Vitality + p.allocated.Vitality,
		Focus:        p.base.Focus + p.allocated.Focus,
	}
}

// UnspentPoints returns the number of unallocated stat points.
func (p *Player) UnspentPoints() int { return p.unspent }

// GrantStatPoints adds unallocated stat points (level-up reward).
func (p *Player) GrantStatPoints(n int) {
	if n > 0 {
		p.unspent += n
	}
}

// AllocateStat spends one point on the given attribute. The caller must
// invalidate the stat cache afterwards.
func (p *Player) AllocateStat(attr data.Attribute) error {
	if p.unspent <= 0 {
		return fmt.Errorf("no unspent stat points")
	}
	switch attr {
	case data.AttrDexterity:
		p.allocated.Dexterity++
	case data.AttrIntelligence:
		p.allocated.Intelligence++
	case data.AttrVitality:
		p.allocated.Vitality++
	case data.AttrFocus:
		p.allocated.Focus++
	default:
		return fmt.Errorf("unknown attribute %d", attr)
	}
	p.unspent--
	return nil
}

// Respec refunds all allocated points. The caller must invalidate the stat
// cache afterwards.
func (p *Player) Respec() int {
	refunded := int(p.allocated.Dexterity + p.allocated.Intelligence +
		p.allocated.Vitality + p.allocated.Focus)
	p.allocated = Attributes{}
	p.unspent += refunded
	return refunded
}
