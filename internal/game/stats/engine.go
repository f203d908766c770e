package stats

import (
	"github.com/GGPrompts/pixeloot/internal/data"
	"github.com/GGPrompts/pixeloot/internal/model"
)

// Engine is the session-scoped stat engine: it owns the condition tracker,
// the active-buff set, the last routed conditional totals and the memoized
// final snapshot. Construct one per game session; parallel tests construct
// independent engines.
//
// The engine is single-threaded by contract. Within one fixed tick the
// ordering is hard: (1) event hooks fire, (2) Advance runs, (3) downstream
// systems read ComputedStats. Reading before Advance yields a one-tick-stale
// snapshot.
type Engine struct {
	player    PlayerView
	equipment *model.Equipment
	enemies   EnemyProvider

	tracker    *ConditionTracker
	buffs      *BuffSet
	condTotals BonusTotals
	cache      statCache
}

// NewEngine creates an engine for one game session. player and enemies may
// be nil (before the player entity exists); equipment may be nil and is
// replaced with an empty set.
func NewEngine(player PlayerView, equipment *model.Equipment, enemies EnemyProvider) *Engine {
	if equipment == nil {
		equipment = model.NewEquipment()
	}
	return &Engine{
		player:    player,
		equipment: equipment,
		enemies:   enemies,
		tracker:   NewConditionTracker(),
		buffs:     NewBuffSet(),
		cache:     statCache{dirty: true},
	}
}

// Equipment returns the equipment set the engine aggregates.
func (e *Engine) Equipment() *model.Equipment {
	return e.equipment
}

// Tracker returns the session condition tracker, for test setup and debug
// panels. Gameplay systems should use the Track* hooks instead.
func (e *Engine) Tracker() *ConditionTracker {
	return e.tracker
}

// Event hooks, fired synchronously by movement/combat/skill systems before
// Advance runs for the tick.

// TrackMovement records the player's movement speed for this frame.
func (e *Engine) TrackMovement(speed float64) { e.tracker.TrackMovement(speed) }

// TrackDamageTaken records that the player took damage.
func (e *Engine) TrackDamageTaken() { e.tracker.TrackDamageTaken() }

// TrackKill records an enemy kill.
func (e *Engine) TrackKill() { e.tracker.TrackKill() }

// TrackSkillUsed records a skill cast.
func (e *Engine) TrackSkillUsed() { e.tracker.TrackSkillUsed() }

// TrackMovementSkillUsed records a movement skill use.
func (e *Engine) TrackMovementSkillUsed() { e.tracker.TrackMovementSkillUsed() }

// TrackMultiHit records a strike hitting count enemies at once.
func (e *Engine) TrackMultiHit(count int) { e.tracker.TrackMultiHit(count) }

// Advance drives one fixed tick: advances the tracker clock, expires timed
// buffs, then re-evaluates and aggregates conditional bonuses. If the
// conditional totals changed since the previous tick the snapshot is marked
// dirty, so buff activations and expiries reach ComputedStats without
// invalidating the cache on every tick.
func (e *Engine) Advance(dt float64) {
	e.tracker.Advance(dt)
	e.buffs.Tick(dt)

	totals := RouteConditionals(e.equipment, e.buffs, e.snapshot())
	if totals != e.condTotals {
		e.condTotals = totals
		e.cache.dirty = true
	}
}

// ComputedStats returns the current snapshot, recomputing first iff dirty.
func (e *Engine) ComputedStats() FinalStats {
	if e.cache.dirty {
		e.cache.cached = recalculate(e.equipment, e.player, e.condTotals)
		e.cache.dirty = false
		e.cache.recomputes++
	}
	return e.cache.cached
}

// MarkStatsDirty invalidates the memoized snapshot. Must be called after
// every equip, unequip, stat allocation or respec; a stale read after such a
// mutation is a correctness bug, not a performance one.
func (e *Engine) MarkStatsDirty() {
	e.cache.dirty = true
}

// Recomputes returns how many times the snapshot has been recomputed.
// Exposed for cache-idempotence tests.
func (e *Engine) Recomputes() uint64 {
	return e.cache.recomputes
}

// ConditionalTotals returns the conditional bonus totals routed by the most
// recent Advance.
func (e *Engine) ConditionalTotals() BonusTotals {
	return e.condTotals
}

// ActiveBuff returns the live timed buff for a stat key, or nil.
func (e *Engine) ActiveBuff(key data.StatKey) *ActiveBuff {
	return e.buffs.Active(key)
}

// ActiveBuffCount returns the number of live timed buffs.
func (e *Engine) ActiveBuffCount() int {
	return e.buffs.Len()
}

// Reset clears all per-run state wholesale: tracker, buffs, conditional
// totals. Called on zone transition or class switch so nothing from the
// previous dungeon leaks in. The snapshot is marked dirty.
func (e *Engine) Reset() {
	e.tracker.Reset()
	e.buffs.Reset()
	e.condTotals = BonusTotals{}
	e.cache.dirty = true
}

// snapshot assembles the live state view conditions evaluate against.
func (e *Engine) snapshot() Snapshot {
	return Snapshot{
		Tracker: e.tracker,
		Player:  e.player,
		Enemies: e.enemies,
	}
}
