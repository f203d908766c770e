package stats

import (
	"testing"

	"github.com/GGPrompts/pixeloot/internal/data"
	"github.com/GGPrompts/pixeloot/internal/model"
)

// The equipped value is the sum across items, independent of whether the
// condition currently holds — the caller owns the trigger logic.
func TestEquippedConditionalValue_SumsRegardlessOfCondition(t *testing.T) {
	mustLoadAffixes(t)
	player := newFakePlayer()
	eq := model.NewEquipment()

	amulet := newTestItem(t, 1, data.SlotAmulet, 0, 0)
	amulet.AddAffix(conditionalAffix(t, 2101, 8)) // on-kill heal
	ring := newTestItem(t, 2, data.SlotRingLeft, 0, 0)
	ring.AddAffix(conditionalAffix(t, 2101, 4))
	for _, item := range []*model.Item{amulet, ring} {
		if _, err := eq.Equip(item); err != nil {
			t.Fatal(err)
		}
	}
	engine := NewEngine(player, eq, nil)

	// No kill has happened; the value is still reported.
	if got := engine.EquippedConditionalValue(data.CondOnKillHeal); got != 12 {
		t.Fatalf("equipped on-kill heal = %v, want 12", got)
	}
	if got := engine.EquippedConditionalValue(data.CondOnKillCDR); got != 0 {
		t.Fatalf("equipped on-kill CDR = %v, want 0 (not equipped)", got)
	}
}

func TestHasExtraProjectileConditional(t *testing.T) {
	mustLoadAffixes(t)
	player := newFakePlayer()
	eq := model.NewEquipment()
	engine := NewEngine(player, eq, nil)

	if engine.HasExtraProjectileConditional() {
		t.Fatal("no affix equipped: composite must be false")
	}

	weapon := newTestItem(t, 1, data.SlotWeapon, 10, 0)
	weapon.AddAffix(conditionalAffix(t, 2104, 1))
	if _, err := eq.Equip(weapon); err != nil {
		t.Fatal(err)
	}

	player.attrs.Dexterity = 24
	if engine.HasExtraProjectileConditional() {
		t.Fatal("dexterity below threshold: composite must be false")
	}

	player.attrs.Dexterity = 25
	if !engine.HasExtraProjectileConditional() {
		t.Fatal("affix equipped and dexterity at threshold: composite must be true")
	}
}

func TestStatusOnTargetBonuses(t *testing.T) {
	mustLoadAffixes(t)
	player := newFakePlayer()
	eq := model.NewEquipment()
	ring := newTestItem(t, 1, data.SlotRingLeft, 0, 0)
	ring.AddAffix(conditionalAffix(t, 2015, 20)) // +damage vs slowed
	offhand := newTestItem(t, 2, data.SlotOffhand, 0, 0)
	offhand.AddAffix(conditionalAffix(t, 2016, 12)) // +atk spd vs burning
	for _, item := range []*model.Item{ring, offhand} {
		if _, err := eq.Equip(item); err != nil {
			t.Fatal(err)
		}
	}
	engine := NewEngine(player, eq, nil)

	slowed := model.NewEnemy(10, 0)
	slowed.AddStatus("slowed")
	burning := model.NewEnemy(20, 0)
	burning.AddStatus("burning")
	clean := model.NewEnemy(30, 0)

	if got := engine.StatusOnTargetDamageBonus(slowed); got != 20 {
		t.Errorf("damage bonus vs slowed = %v, want 20", got)
	}
	if got := engine.StatusOnTargetDamageBonus(burning); got != 0 {
		t.Errorf("damage bonus vs burning = %v, want 0", got)
	}
	if got := engine.StatusOnTargetAtkSpdBonus(burning); got != 12 {
		t.Errorf("atk spd bonus vs burning = %v, want 12", got)
	}
	if got := engine.StatusOnTargetAtkSpdBonus(clean); got != 0 {
		t.Errorf("atk spd bonus vs clean = %v, want 0", got)
	}
	if got := engine.StatusOnTargetDamageBonus(nil); got != 0 {
		t.Errorf("bonus vs nil enemy = %v, want 0", got)
	}
}

func TestOnHitSlowStrengthQuery(t *testing.T) {
	mustLoadAffixes(t)
	eq := model.NewEquipment()
	weapon := newTestItem(t, 1, data.SlotWeapon, 10, 0)
	weapon.AddAffix(conditionalAffix(t, 2103, 25)) // on-hit slow
	if _, err := eq.Equip(weapon); err != nil {
		t.Fatal(err)
	}
	engine := NewEngine(newFakePlayer(), eq, nil)

	// Collision code decides when to apply the slow; we only report strength.
	if got := engine.EquippedConditionalValue(data.CondOnHitSlow); got != 25 {
		t.Fatalf("on-hit slow strength = %v, want 25", got)
	}
}
