package data

// ConditionType identifies one of the closed set of gameplay conditions a
// conditional affix can be gated on. The set is fixed at compile time; the
// engine is not a general rules system and unknown types evaluate to false.
type ConditionType uint8

const (
	ConditionNone ConditionType = iota
	ConditionWhileMoving
	ConditionWhileStationary
	ConditionOnKill
	ConditionOnHit
	ConditionStatusOnTarget
	ConditionLowHP
	ConditionFullHP
	ConditionAfterSkill
	ConditionAfterMovementSkill
	ConditionDistanceClose
	ConditionDistanceFar
	ConditionStatBreakpoint
	ConditionKillStreak
	ConditionMultiHit
	ConditionRecentlyHit
	ConditionNoDamageTaken
)

// String returns human-readable condition type name.
func (c ConditionType) String() string {
	switch c {
	case ConditionNone:
		return "none"
	case ConditionWhileMoving:
		return "while-moving"
	case ConditionWhileStationary:
		return "while-stationary"
	case ConditionOnKill:
		return "on-kill"
	case ConditionOnHit:
		return "on-hit"
	case ConditionStatusOnTarget:
		return "status-on-target"
	case ConditionLowHP:
		return "low-hp"
	case ConditionFullHP:
		return "full-hp"
	case ConditionAfterSkill:
		return "after-skill"
	case ConditionAfterMovementSkill:
		return "after-movement-skill"
	case ConditionDistanceClose:
		return "distance-close"
	case ConditionDistanceFar:
		return "distance-far"
	case ConditionStatBreakpoint:
		return "stat-breakpoint"
	case ConditionKillStreak:
		return "kill-streak"
	case ConditionMultiHit:
		return "multi-hit"
	case ConditionRecentlyHit:
		return "recently-hit"
	case ConditionNoDamageTaken:
		return "no-damage-taken"
	default:
		return "unknown"
	}
}

// Attribute identifies one of the four allocatable player attributes.
type Attribute uint8

const (
	AttrDexterity Attribute = iota
	AttrIntelligence
	AttrVitality
	AttrFocus
)

// String returns human-readable attribute name.
func (a Attribute) String() string {
	switch a {
	case AttrDexterity:
		return "dexterity"
	case AttrIntelligence:
		return "intelligence"
	case AttrVitality:
		return "vitality"
	case AttrFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// ConditionParams is the tagged parameter bag for a condition type. Each
// condition that takes designer-tunable parameters has its own variant, so
// an evaluator branch is statically guaranteed the fields it needs.
type ConditionParams interface {
	conditionParams()
}

// StationaryParams tunes while-stationary: how long the player must have
// stood still, in milliseconds.
type StationaryParams struct {
	MinStationaryMs float64
}

// LowHPParams tunes low-hp: current/max health ratio at or below which the
// condition holds.
type LowHPParams struct {
	Threshold float64
}

// DistanceParams tunes distance-close / distance-far: radius in tiles.
type DistanceParams struct {
	TileRadius float64
}

// BreakpointParams tunes stat-breakpoint: attribute and minimum raw value.
type BreakpointParams struct {
	Attribute Attribute
	Threshold float64
}

// KillStreakParams tunes kill-streak: kills required inside a rolling window.
type KillStreakParams struct {
	Kills         int
	WindowSeconds float64
}

// MultiHitParams tunes multi-hit: simultaneous hits required in one strike.
type MultiHitParams struct {
	HitThreshold int
}

// NoDamageParams tunes no-damage-taken: seconds that must have elapsed since
// the player last took damage.
type NoDamageParams struct {
	Seconds float64
}

// StatusParams tunes status-on-target: the status effect name the struck
// enemy must carry.
type StatusParams struct {
	Status string
}

func (StationaryParams) conditionParams() {}
func (LowHPParams) conditionParams()      {}
func (DistanceParams) conditionParams()   {}
func (BreakpointParams) conditionParams() {}
func (KillStreakParams) conditionParams() {}
func (MultiHitParams) conditionParams()   {}
func (NoDamageParams) conditionParams()   {}
func (StatusParams) conditionParams()     {}
