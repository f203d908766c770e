package stats

import (
	"github.com/GGPrompts/pixeloot/internal/data"
	"github.com/GGPrompts/pixeloot/internal/model"
)

// Proc query surface: side-channel accessors for conditional affixes that
// are instantaneous triggers or threshold unlocks rather than continuous
// bonuses. Combat code owns the trigger logic (when a kill heals, when a hit
// slows); this engine only answers how strong the effect is.

// EquippedConditionalValue sums the rolled value of the given conditional
// stat key across all equipped items, independent of whether its condition
// currently holds.
func (e *Engine) EquippedConditionalValue(key data.StatKey) float64 {
	var sum float64
	e.equipment.ForEach(func(item *model.Item) {
		for _, affix := range item.Affixes() {
			if affix.StatKey == key {
				sum += affix.RolledValue
			}
		}
	})
	return sum
}

// HasExtraProjectileConditional reports whether the player both carries the
// extra-projectile conditional and meets its dexterity threshold.
func (e *Engine) HasExtraProjectileConditional() bool {
	if e.player == nil {
		return false
	}
	if e.EquippedConditionalValue(data.CondHighDexProjCount) <= 0 {
		return false
	}
	return e.player.Attributes().Dexterity >= data.ExtraProjectileDexThreshold
}

// StatusOnTargetDamageBonus returns the percent damage bonus that applies
// against this specific enemy, from equipped status-on-target damage
// affixes whose required status is on the enemy. Queried by combat at the
// point of a hit; the periodic router never activates these.
func (e *Engine) StatusOnTargetDamageBonus(enemy EnemyView) float64 {
	return e.statusOnTargetBonus(data.CondStatusTargetDamage, enemy)
}

// StatusOnTargetAtkSpdBonus returns the percent attack speed bonus against
// this specific enemy, from equipped status-on-target attack speed affixes.
func (e *Engine) StatusOnTargetAtkSpdBonus(enemy EnemyView) float64 {
	return e.statusOnTargetBonus(data.CondStatusTargetAtkSpd, enemy)
}

func (e *Engine) statusOnTargetBonus(key data.StatKey, enemy EnemyView) float64 {
	if enemy == nil {
		return 0
	}
	def := data.GetAffixDefByKey(key)
	if def == nil {
		return 0
	}
	params, ok := def.Params().(data.StatusParams)
	if !ok || !enemy.HasStatus(params.Status) {
		return 0
	}
	return e.EquippedConditionalValue(key)
}
