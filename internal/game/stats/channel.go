package stats

import (
	"fmt"
	"strings"

	"github.com/GGPrompts/pixeloot/internal/data"
)

// BonusChannel is one of the closed set of canonical bonus accumulators the
// stat calculator consumes. Every recognized affix stat key routes to exactly
// one channel; a conditional key with no route and no proc declaration is a
// startup error, not a silently dropped bonus.
type BonusChannel uint8

const (
	ChanFlatDamage BonusChannel = iota
	ChanPercentDamage
	ChanPercentAttackSpeed
	ChanPercentProjectileSpeed
	ChanPercentCritChance
	ChanPercentCritMultiplier
	ChanFlatArmor
	ChanFlatHP
	ChanPercentHP
	ChanHPRegen
	ChanPercentMoveSpeed
	ChanPercentCDR
	ChanPercentXPGain
	ChanPercentGoldFind

	ChannelCount
)

// String returns the channel's canonical name.
func (c BonusChannel) String() string {
	switch c {
	case ChanFlatDamage:
		return "flatDamage"
	case ChanPercentDamage:
		return "percentDamage"
	case ChanPercentAttackSpeed:
		return "percentAttackSpeed"
	case ChanPercentProjectileSpeed:
		return "percentProjectileSpeed"
	case ChanPercentCritChance:
		return "percentCritChance"
	case ChanPercentCritMultiplier:
		return "percentCritMultiplier"
	case ChanFlatArmor:
		return "flatArmor"
	case ChanFlatHP:
		return "flatHP"
	case ChanPercentHP:
		return "percentHP"
	case ChanHPRegen:
		return "hpRegen"
	case ChanPercentMoveSpeed:
		return "percentMoveSpeed"
	case ChanPercentCDR:
		return "percentCDR"
	case ChanPercentXPGain:
		return "percentXPGain"
	case ChanPercentGoldFind:
		return "percentGoldFind"
	default:
		return "unknown"
	}
}

// passiveRoutes maps passive affix (and gem) stat keys onto channels.
// Unrecognized keys are ignored by the gear aggregator: items rolled by a
// newer catalog must not break an older engine.
var passiveRoutes = map[data.StatKey]BonusChannel{
	data.StatFlatDamage:             ChanFlatDamage,
	data.StatPercentDamage:          ChanPercentDamage,
	data.StatPercentAttackSpeed:     ChanPercentAttackSpeed,
	data.StatPercentProjectileSpeed: ChanPercentProjectileSpeed,
	data.StatPercentCritChance:      ChanPercentCritChance,
	data.StatPercentCritMultiplier:  ChanPercentCritMultiplier,
	data.StatFlatArmor:              ChanFlatArmor,
	data.StatFlatHP:                 ChanFlatHP,
	data.StatPercentHP:              ChanPercentHP,
	data.StatHPRegen:                ChanHPRegen,
	data.StatPercentMoveSpeed:       ChanPercentMoveSpeed,
	data.StatPercentCDR:             ChanPercentCDR,
	data.StatPercentXPGain:          ChanPercentXPGain,
	data.StatPercentGoldFind:        ChanPercentGoldFind,
}

// conditionalRoutes maps conditional affix stat keys onto the channel their
// value lands in while the condition holds.
var conditionalRoutes = map[data.StatKey]BonusChannel{
	data.CondStationaryDamage:   ChanPercentDamage,
	data.CondMovingSpeed:        ChanPercentMoveSpeed,
	data.CondOnKillAttackSpeed:  ChanPercentAttackSpeed,
	data.CondLowHPArmor:         ChanFlatArmor,
	data.CondFullHPDamage:       ChanPercentDamage,
	data.CondAfterSkillDamage:   ChanPercentDamage,
	data.CondDashProjSpeed:      ChanPercentProjectileSpeed,
	data.CondCloseRangeArmor:    ChanFlatArmor,
	data.CondFarRangeDamage:     ChanPercentDamage,
	data.CondKillStreakSpeed:    ChanPercentMoveSpeed,
	data.CondMultiHitCrit:       ChanPercentCritChance,
	data.CondRecentlyHitRegen:   ChanHPRegen,
	data.CondNoDamageDamage:     ChanPercentDamage,
	data.CondHighVitRegen:       ChanHPRegen,
	data.CondStatusTargetDamage: ChanPercentDamage,
	data.CondStatusTargetAtkSpd: ChanPercentAttackSpeed,
}

// procKeys are conditional stat keys deliberately excluded from continuous
// routing: instantaneous procs and threshold unlocks served through the proc
// query surface instead.
var procKeys = map[data.StatKey]bool{
	data.CondOnKillHeal:       true,
	data.CondOnKillCDR:        true,
	data.CondOnHitSlow:        true,
	data.CondHighDexProjCount: true,
}

// perTargetKeys route through conditionalRoutes for shape, but their
// condition is only decidable against a specific struck enemy, so the
// periodic router always sees them inactive. Combat queries them through
// StatusOnTarget*Bonus at hit time.
var perTargetKeys = map[data.StatKey]bool{
	data.CondStatusTargetDamage: true,
	data.CondStatusTargetAtkSpd: true,
}

// VerifyRouting checks that every conditional affix definition in the loaded
// catalog either routes to a bonus channel or is a declared proc key.
// Call once at startup, after data.LoadAffixes.
func VerifyRouting() error {
	var missing []string
	for _, key := range data.ConditionalKeys() {
		if procKeys[key] {
			continue
		}
		if _, ok := conditionalRoutes[key]; !ok {
			missing = append(missing, string(key))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("conditional affix keys with no bonus route: %s", strings.Join(missing, ", "))
	}
	return nil
}
