package stats

import (
	"github.com/GGPrompts/pixeloot/internal/data"
	"github.com/GGPrompts/pixeloot/internal/model"
)

// RouteConditionals walks every equipped item's conditional affixes,
// determines which are active this tick, and folds active ones into a totals
// structure shaped identically to the gear aggregator's output.
//
// An affix is active when (a) a live timed buff exists for its stat key, or
// (b) for untimed affixes, its condition evaluates true right now. Timed
// affixes whose condition holds this tick trigger (create or refresh) their
// buff first, then the buff's value is folded — once per stat key, so two
// items granting the same timed key contribute a single buff.
//
// Proc stat keys are skipped entirely: they are instantaneous triggers or
// threshold unlocks served through the proc query surface.
func RouteConditionals(eq *model.Equipment, buffs *BuffSet, snap Snapshot) BonusTotals {
	var totals BonusTotals
	if eq == nil || buffs == nil {
		return totals
	}

	folded := make(map[data.StatKey]bool, 8)

	eq.ForEach(func(item *model.Item) {
		for _, affix := range item.Affixes() {
			if affix.Category != data.CategoryConditional {
				continue
			}
			if procKeys[affix.StatKey] {
				continue
			}
			if perTargetKeys[affix.StatKey] {
				// Decided against the specific struck enemy at hit time,
				// never from the periodic snapshot.
				continue
			}

			def := data.GetAffixDef(affix.ID)
			if def == nil {
				continue
			}
			ch, ok := conditionalRoutes[affix.StatKey]
			if !ok {
				// Catalog/routing mismatch is caught by VerifyRouting at
				// startup; anything reaching here is an unknown key from
				// newer item data and kept inert.
				continue
			}

			if def.IsTimed() {
				if Evaluate(def.Condition(), def.Params(), snap) {
					buffs.Trigger(affix.StatKey, affix.RolledValue, def.BuffDuration())
				}
				if folded[affix.StatKey] {
					continue
				}
				if buff := buffs.Active(affix.StatKey); buff != nil {
					totals.Add(ch, buff.Value)
					folded[affix.StatKey] = true
				}
				continue
			}

			if Evaluate(def.Condition(), def.Params(), snap) {
				totals.Add(ch, affix.RolledValue)
			}
		}
	})

	return totals
}
