package data

// Attribute-derived multipliers used by the stat calculator.
// Attributes are clamped to [0, 200] before conversion so malformed
// saves or debug commands cannot produce negative multipliers.

const maxAttribute = 200

func clampAttribute(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxAttribute {
		return maxAttribute
	}
	return v
}

// IntDamageMultiplier returns the intelligence damage multiplier.
// Formula: 1 + INT × 0.08
func IntDamageMultiplier(intelligence float64) float64 {
	return 1 + clampAttribute(intelligence)*0.08
}

// DexCooldownMultiplier returns the dexterity attack-interval multiplier.
// Lower is faster; floored at 0.5 (double attack rate).
// Formula: max(1 − DEX × 0.005, 0.5)
func DexCooldownMultiplier(dexterity float64) float64 {
	m := 1 - clampAttribute(dexterity)*0.005
	if m < 0.5 {
		return 0.5
	}
	return m
}

// DexProjectileSpeedMultiplier returns the dexterity projectile speed bonus.
// Formula: 1 + DEX × 0.01
func DexProjectileSpeedMultiplier(dexterity float64) float64 {
	return 1 + clampAttribute(dexterity)*0.01
}

// FocusCooldownMultiplier returns the focus skill-cooldown multiplier.
// Lower is faster; floored at 0.6. The stat calculator converts this
// factor to an additive cooldown-reduction term before capping.
// Formula: max(1 − FOC × 0.003, 0.6)
func FocusCooldownMultiplier(focus float64) float64 {
	m := 1 - clampAttribute(focus)*0.003
	if m < 0.6 {
		return 0.6
	}
	return m
}
