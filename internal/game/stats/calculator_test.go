package stats

import (
	"math"
	"testing"

	"github.com/GGPrompts/pixeloot/internal/data"
	"github.com/GGPrompts/pixeloot/internal/model"
)

// Weapon base 10, +5 flat damage, +20% damage, intelligence 5 (×1.4):
// round((10+5) × 1.2 × 1.4) = round(25.2) = 25.
func TestRecalculate_DamageEndToEnd(t *testing.T) {
	eq := model.NewEquipment()

	weapon := newTestItem(t, 1, data.SlotWeapon, 10, 0)
	flat := newTestItem(t, 2, data.SlotRingLeft, 0, 0)
	flat.AddAffix(model.Affix{ID: 1001, StatKey: data.StatFlatDamage, RolledValue: 5})
	pct := newTestItem(t, 3, data.SlotRingRight, 0, 0)
	pct.AddAffix(model.Affix{ID: 1002, StatKey: data.StatPercentDamage, RolledValue: 20})
	for _, item := range []*model.Item{weapon, flat, pct} {
		if _, err := eq.Equip(item); err != nil {
			t.Fatal(err)
		}
	}

	player := newFakePlayer()
	player.attrs.Intelligence = 5

	snap := recalculate(eq, player, BonusTotals{})
	if snap.Damage != 25 {
		t.Fatalf("damage = %v, want 25", snap.Damage)
	}
}

func TestRecalculate_ArmorDiminishingReturns(t *testing.T) {
	tests := []struct {
		armor float64
		want  float64
	}{
		{0, 0},
		{100, 0.5},
		{900, 0.9},
	}

	for _, tt := range tests {
		eq := model.NewEquipment()
		chest := newTestItem(t, 1, data.SlotChest, 0, tt.armor)
		if _, err := eq.Equip(chest); err != nil {
			t.Fatal(err)
		}

		snap := recalculate(eq, newFakePlayer(), BonusTotals{})
		if math.Abs(snap.DamageReduction-tt.want) > 1e-9 {
			t.Errorf("armor %v: damageReduction = %v, want %v", tt.armor, snap.DamageReduction, tt.want)
		}
	}

	// Monotonic and asymptotic: never reaches 1.
	prev := -1.0
	for armor := 0.0; armor <= 100000; armor += 500 {
		var cond BonusTotals
		cond.Add(ChanFlatArmor, armor)
		snap := recalculate(model.NewEquipment(), newFakePlayer(), cond)
		if snap.DamageReduction <= prev-1e-12 {
			t.Fatalf("damage reduction not monotonic at armor %v", armor)
		}
		if snap.DamageReduction >= 1 {
			t.Fatalf("damage reduction reached 1 at armor %v", armor)
		}
		prev = snap.DamageReduction
	}
}

// Any combination of gear CDR affixes and focus stays under the 40% cap.
func TestRecalculate_CooldownReductionCap(t *testing.T) {
	for focus := 0.0; focus <= 100; focus += 10 {
		for gearCDR := 0.0; gearCDR <= 80; gearCDR += 10 {
			player := newFakePlayer()
			player.attrs.Focus = focus

			var cond BonusTotals
			cond.Add(ChanPercentCDR, gearCDR)

			snap := recalculate(model.NewEquipment(), player, cond)
			if snap.CooldownReduction < 0 || snap.CooldownReduction > data.CooldownReductionCap {
				t.Fatalf("focus=%v gearCDR=%v: cooldownReduction = %v outside [0, 0.4]",
					focus, gearCDR, snap.CooldownReduction)
			}
		}
	}

	// Focus-derived CDR is converted from the multiplicative factor.
	player := newFakePlayer()
	player.attrs.Focus = 50 // factor 0.85 → 0.15 additive
	snap := recalculate(model.NewEquipment(), player, BonusTotals{})
	if math.Abs(snap.CooldownReduction-0.15) > 1e-9 {
		t.Errorf("cooldownReduction = %v, want 0.15 from focus 50", snap.CooldownReduction)
	}
}

func TestRecalculate_CritChanceClamped(t *testing.T) {
	var cond BonusTotals
	cond.Add(ChanPercentCritChance, 250)

	snap := recalculate(model.NewEquipment(), newFakePlayer(), cond)
	if snap.CritChance != 1 {
		t.Errorf("critChance = %v, want clamped to 1", snap.CritChance)
	}
}

func TestRecalculate_MaxHPAndRegen(t *testing.T) {
	player := newFakePlayer()
	player.attrs.Vitality = 10

	var cond BonusTotals
	cond.Add(ChanFlatHP, 50)
	cond.Add(ChanPercentHP, 10)
	cond.Add(ChanHPRegen, 2)

	snap := recalculate(model.NewEquipment(), player, cond)

	// (100 + 10×10 + 50) × 1.1 = 275
	if math.Abs(snap.MaxHP-275) > 1e-9 {
		t.Errorf("maxHP = %v, want 275", snap.MaxHP)
	}
	// 1 + 10×0.1 + 2 = 4
	if math.Abs(snap.HPRegen-4) > 1e-9 {
		t.Errorf("hpRegen = %v, want 4", snap.HPRegen)
	}
}

func TestRecalculate_SpeedsAndMultipliers(t *testing.T) {
	player := newFakePlayer()
	player.attrs.Dexterity = 20 // cooldown mult 0.9, proj mult 1.2

	var cond BonusTotals
	cond.Add(ChanPercentAttackSpeed, 10)
	cond.Add(ChanPercentProjectileSpeed, 25)
	cond.Add(ChanPercentMoveSpeed, 15)
	cond.Add(ChanPercentXPGain, 20)
	cond.Add(ChanPercentGoldFind, 30)

	snap := recalculate(model.NewEquipment(), player, cond)

	if math.Abs(snap.AttackSpeed-1.1/0.9) > 1e-9 {
		t.Errorf("attackSpeed = %v, want %v", snap.AttackSpeed, 1.1/0.9)
	}
	if math.Abs(snap.ProjectileSpeed-1.25*1.2) > 1e-9 {
		t.Errorf("projectileSpeed = %v, want 1.5", snap.ProjectileSpeed)
	}
	if math.Abs(snap.MoveSpeed-data.BaseMoveSpeed*1.15) > 1e-9 {
		t.Errorf("moveSpeed = %v, want %v", snap.MoveSpeed, data.BaseMoveSpeed*1.15)
	}
	if math.Abs(snap.XPMultiplier-1.2) > 1e-9 {
		t.Errorf("xpMultiplier = %v, want 1.2", snap.XPMultiplier)
	}
	if math.Abs(snap.GoldMultiplier-1.3) > 1e-9 {
		t.Errorf("goldMultiplier = %v, want 1.3", snap.GoldMultiplier)
	}
}

// The engine must degrade before the player entity exists.
func TestRecalculate_NilPlayer(t *testing.T) {
	snap := recalculate(model.NewEquipment(), nil, BonusTotals{})
	if snap.MaxHP != data.BaseMaxHP {
		t.Errorf("maxHP = %v, want base %v", snap.MaxHP, data.BaseMaxHP)
	}
	if snap.CooldownReduction != 0 {
		t.Errorf("cooldownReduction = %v, want 0", snap.CooldownReduction)
	}
}
