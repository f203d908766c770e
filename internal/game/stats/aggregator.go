package stats

import "github.com/GGPrompts/pixeloot/internal/model"

// AggregateGear sums the passive contributions of all equipped items' rolled
// affixes and socketed gems into one totals structure. Pure function: reads
// equipment, writes nothing.
//
// Affixes whose stat key is not a recognized passive channel contribute
// nothing — conditional keys are handled by the router, and unknown keys are
// ignored for forward compatibility with newer item catalogs.
func AggregateGear(eq *model.Equipment) BonusTotals {
	var totals BonusTotals
	if eq == nil {
		return totals
	}

	eq.ForEach(func(item *model.Item) {
		for _, affix := range item.Affixes() {
			if ch, ok := passiveRoutes[affix.StatKey]; ok {
				totals.Add(ch, affix.RolledValue)
			}
		}
		if gem := item.Gem(); gem != nil {
			if ch, ok := passiveRoutes[gem.StatKey]; ok {
				totals.Add(ch, gem.Value)
			}
		}
	})

	return totals
}

// BaseWeaponDamage returns the equipped weapon's base damage, or 0.
func BaseWeaponDamage(eq *model.Equipment) float64 {
	if eq == nil {
		return 0
	}
	weapon := eq.Weapon()
	if weapon == nil {
		return 0
	}
	return weapon.BaseDamage()
}

// BaseArmorTotal sums the base armor of all equipped items.
func BaseArmorTotal(eq *model.Equipment) float64 {
	var armor float64
	if eq == nil {
		return 0
	}
	eq.ForEach(func(item *model.Item) {
		armor += item.BaseArmor()
	})
	return armor
}
