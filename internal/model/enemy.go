package model

// Enemy — the minimal enemy surface the stat engine reads: a position for
// proximity conditions and a status-effect set for status-on-target bonuses.
// Combat AI owns everything else.
type Enemy struct {
	position Location
	statuses map[string]bool
}

// NewEnemy creates an enemy at the given position.
func NewEnemy(x, y float64) *Enemy {
	return &Enemy{
		position: Location{X: x, Y: y},
		statuses: make(map[string]bool),
	}
}

// Position returns the enemy's world position.
func (e *Enemy) Position() Location { return e.position }

// SetPosition moves the enemy.
func (e *Enemy) SetPosition(loc Location) { e.position = loc }

// HasStatus reports whether the named status effect is on the enemy.
func (e *Enemy) HasStatus(name string) bool {
	return e.statuses[name]
}

// AddStatus applies a status effect.
func (e *Enemy) AddStatus(name string) {
	e.statuses[name] = true
}

// RemoveStatus clears a status effect.
func (e *Enemy) RemoveStatus(name string) {
	delete(e.statuses, name)
}
