package stats

import (
	"math"

	"github.com/GGPrompts/pixeloot/internal/data"
	"github.com/GGPrompts/pixeloot/internal/model"
)

// FinalStats is the computed combat snapshot consumed every tick by combat,
// movement and UI code. Overwritten wholesale on each recompute; read-only
// to everything outside the engine.
type FinalStats struct {
	Damage            float64
	AttackSpeed       float64
	ProjectileSpeed   float64
	CritChance        float64 // [0, 1]
	CritMultiplier    float64
	MaxHP             float64
	Armor             float64
	DamageReduction   float64 // [0, 1)
	HPRegen           float64
	MoveSpeed         float64
	CooldownReduction float64 // [0, 0.4]
	XPMultiplier      float64
	GoldMultiplier    float64
}

// statCache memoizes the last computed snapshot behind a dirty flag. The
// recompute counter exists so tests can observe cache idempotence.
type statCache struct {
	dirty      bool
	cached     FinalStats
	recomputes uint64
}

// recalculate combines base constants, attribute multipliers, gear totals
// and conditional totals into a fresh snapshot. Equivalent channels from
// gear and conditionals are summed before any multiplier is applied.
func recalculate(eq *model.Equipment, player PlayerView, cond BonusTotals) FinalStats {
	gear := AggregateGear(eq)
	total := gear.Plus(cond)

	var attrs model.Attributes
	if player != nil {
		attrs = player.Attributes()
	}

	// damage = (baseWeaponDamage + flatDamage) × (1 + percentDamage/100) × intMult
	damage := (BaseWeaponDamage(eq) + total.Get(ChanFlatDamage)) *
		(1 + total.Get(ChanPercentDamage)/100) *
		data.IntDamageMultiplier(attrs.Intelligence)

	// attackSpeed = (1 + percentAttackSpeed/100) × (1 / dexCooldownMult)
	attackSpeed := (1 + total.Get(ChanPercentAttackSpeed)/100) /
		data.DexCooldownMultiplier(attrs.Dexterity)

	projectileSpeed := (1 + total.Get(ChanPercentProjectileSpeed)/100) *
		data.DexProjectileSpeedMultiplier(attrs.Dexterity)

	critChance := total.Get(ChanPercentCritChance) / 100
	if critChance < 0 {
		critChance = 0
	}
	if critChance > data.CritChanceCap {
		critChance = data.CritChanceCap
	}

	maxHP := (data.BaseMaxHP + attrs.Vitality*data.HPPerVitality + total.Get(ChanFlatHP)) *
		(1 + total.Get(ChanPercentHP)/100)

	// Diminishing returns: 100 armor = 50% reduction, asymptotic toward 1.
	armor := BaseArmorTotal(eq) + total.Get(ChanFlatArmor)
	if armor < 0 {
		armor = 0
	}
	damageReduction := armor / (armor + data.ArmorPivot)

	// Gear CDR is additive; focus CDR converts from a multiplicative factor
	// to an additive term before the hard cap.
	cdr := total.Get(ChanPercentCDR)/100 + (1 - data.FocusCooldownMultiplier(attrs.Focus))
	if cdr < 0 {
		cdr = 0
	}
	if cdr > data.CooldownReductionCap {
		cdr = data.CooldownReductionCap
	}

	return FinalStats{
		Damage:            math.Round(damage),
		AttackSpeed:       attackSpeed,
		ProjectileSpeed:   projectileSpeed,
		CritChance:        critChance,
		CritMultiplier:    data.BaseCritMultiplier + total.Get(ChanPercentCritMultiplier)/100,
		MaxHP:             maxHP,
		Armor:             armor,
		DamageReduction:   damageReduction,
		HPRegen:           data.BaseHPRegen + attrs.Vitality*data.RegenPerVit + total.Get(ChanHPRegen),
		MoveSpeed:         data.BaseMoveSpeed * (1 + total.Get(ChanPercentMoveSpeed)/100),
		CooldownReduction: cdr,
		XPMultiplier:      1 + total.Get(ChanPercentXPGain)/100,
		GoldMultiplier:    1 + total.Get(ChanPercentGoldFind)/100,
	}
}
