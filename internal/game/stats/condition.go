package stats

import (
	"github.com/GGPrompts/pixeloot/internal/data"
	"github.com/GGPrompts/pixeloot/internal/model"
)

// PlayerView is the narrow player surface the evaluator reads. model.Player
// implements it; tests substitute fakes.
type PlayerView interface {
	Health() (current, max float64)
	Position() model.Location
	Attributes() model.Attributes
}

// EnemyView is the narrow enemy surface proximity and status conditions
// read. model.Enemy implements it.
type EnemyView interface {
	Position() model.Location
	HasStatus(name string) bool
}

// EnemyProvider iterates the live enemy set. fn returning false stops the
// scan early.
type EnemyProvider interface {
	ForEachEnemy(fn func(EnemyView) bool)
}

// EnemySlice adapts a plain enemy slice to EnemyProvider.
type EnemySlice []*model.Enemy

// ForEachEnemy implements EnemyProvider.
func (s EnemySlice) ForEachEnemy(fn func(EnemyView) bool) {
	for _, e := range s {
		if e == nil {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Snapshot bundles the live state one condition evaluation reads: the
// session tracker, the player and the enemy set. Player and Enemies may be
// nil during startup; conditions that need them evaluate to false (or
// vacuously true for distance-far).
type Snapshot struct {
	Tracker *ConditionTracker
	Player  PlayerView
	Enemies EnemyProvider
}

// Evaluate reports whether a condition currently holds. Pure predicate: no
// side effects, no stored state beyond what the snapshot carries.
//
// ConditionOnHit and ConditionStatusOnTarget always evaluate false here:
// they depend on the specific target being struck, so they are decided at
// the point of the hit (see the StatusOnTarget*Bonus queries), never from
// the periodic snapshot. Unknown condition types evaluate false.
func Evaluate(cond data.ConditionType, params data.ConditionParams, snap Snapshot) bool {
	t := snap.Tracker
	if t == nil {
		return false
	}

	switch cond {
	case data.ConditionWhileMoving:
		return t.IsMoving()

	case data.ConditionWhileStationary:
		p, ok := params.(data.StationaryParams)
		if !ok {
			return false
		}
		return !t.IsMoving() && t.StationaryMs() >= p.MinStationaryMs

	case data.ConditionOnKill:
		return t.SinceLastKill() <= data.OnKillWindow

	case data.ConditionOnHit, data.ConditionStatusOnTarget:
		return false

	case data.ConditionLowHP:
		p, ok := params.(data.LowHPParams)
		if !ok || snap.Player == nil {
			return false
		}
		current, max := snap.Player.Health()
		if max <= 0 {
			return false
		}
		return current/max <= p.Threshold

	case data.ConditionFullHP:
		if snap.Player == nil {
			return false
		}
		current, max := snap.Player.Health()
		return max > 0 && current >= max

	case data.ConditionAfterSkill:
		return t.SinceSkillUsed() <= data.AfterSkillWindow

	case data.ConditionAfterMovementSkill:
		return t.SinceMovementSkillUsed() <= data.AfterMoveSkillWindow

	case data.ConditionDistanceClose:
		p, ok := params.(data.DistanceParams)
		if !ok {
			return false
		}
		return anyEnemyWithin(snap, p.TileRadius*data.TileSize)

	case data.ConditionDistanceFar:
		p, ok := params.(data.DistanceParams)
		if !ok || snap.Player == nil {
			return false
		}
		return !anyEnemyWithin(snap, p.TileRadius*data.TileSize)

	case data.ConditionStatBreakpoint:
		p, ok := params.(data.BreakpointParams)
		if !ok || snap.Player == nil {
			return false
		}
		return snap.Player.Attributes().Get(p.Attribute) >= p.Threshold

	case data.ConditionKillStreak:
		p, ok := params.(data.KillStreakParams)
		if !ok || p.Kills <= 0 {
			return false
		}
		return t.KillsWithin(p.WindowSeconds) >= p.Kills

	case data.ConditionMultiHit:
		p, ok := params.(data.MultiHitParams)
		if !ok {
			return false
		}
		count, since := t.LastMultiHit()
		return count >= p.HitThreshold && since <= data.MultiHitWindow

	case data.ConditionRecentlyHit:
		return t.SinceDamageTaken() <= data.RecentlyHitWindow

	case data.ConditionNoDamageTaken:
		p, ok := params.(data.NoDamageParams)
		if !ok {
			return false
		}
		return t.SinceDamageTaken() >= p.Seconds

	default:
		return false
	}
}

// anyEnemyWithin reports whether any live enemy is within radius world units
// of the player. Linear scan; pack sizes are small enough that spatial
// partitioning is not worth it.
func anyEnemyWithin(snap Snapshot, radius float64) bool {
	if snap.Player == nil || snap.Enemies == nil {
		return false
	}
	origin := snap.Player.Position()
	radiusSq := radius * radius

	found := false
	snap.Enemies.ForEachEnemy(func(e EnemyView) bool {
		if origin.DistanceSquared(e.Position()) <= radiusSq {
			found = true
			return false
		}
		return true
	})
	return found
}
