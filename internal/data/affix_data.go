package data

// StatKey is the canonical key an affix contributes under. Passive keys map
// 1:1 onto bonus channels; conditional keys route through the conditional
// bonus router (or the proc query surface) instead.
type StatKey string

// Passive stat keys.
const (
	StatFlatDamage             StatKey = "flatDamage"
	StatPercentDamage          StatKey = "percentDamage"
	StatPercentAttackSpeed     StatKey = "percentAttackSpeed"
	StatPercentProjectileSpeed StatKey = "percentProjectileSpeed"
	StatPercentCritChance      StatKey = "percentCritChance"
	StatPercentCritMultiplier  StatKey = "percentCritMultiplier"
	StatFlatArmor              StatKey = "flatArmor"
	StatFlatHP                 StatKey = "flatHP"
	StatPercentHP              StatKey = "percentHP"
	StatHPRegen                StatKey = "hpRegen"
	StatPercentMoveSpeed       StatKey = "percentMoveSpeed"
	StatPercentCDR             StatKey = "percentCDR"
	StatPercentXPGain          StatKey = "percentXPGain"
	StatPercentGoldFind        StatKey = "percentGoldFind"
)

// Conditional stat keys (continuous bonuses, routed per tick).
const (
	CondStationaryDamage   StatKey = "condStationaryDamage"
	CondMovingSpeed        StatKey = "condMovingSpeed"
	CondOnKillAttackSpeed  StatKey = "condOnKillAttackSpeed"
	CondLowHPArmor         StatKey = "condLowHPArmor"
	CondFullHPDamage       StatKey = "condFullHPDamage"
	CondAfterSkillDamage   StatKey = "condAfterSkillDamage"
	CondDashProjSpeed      StatKey = "condDashProjSpeed"
	CondCloseRangeArmor    StatKey = "condCloseRangeArmor"
	CondFarRangeDamage     StatKey = "condFarRangeDamage"
	CondKillStreakSpeed    StatKey = "condKillStreakSpeed"
	CondMultiHitCrit       StatKey = "condMultiHitCrit"
	CondRecentlyHitRegen   StatKey = "condRecentlyHitRegen"
	CondNoDamageDamage     StatKey = "condNoDamageDamage"
	CondHighVitRegen       StatKey = "condHighVitRegen"
	CondStatusTargetDamage StatKey = "condStatusTargetDamage"
	CondStatusTargetAtkSpd StatKey = "condStatusTargetAtkSpd"
)

// Conditional stat keys excluded from continuous routing: instantaneous
// procs and threshold unlocks, consumed through the proc query surface by
// the systems that fire them.
const (
	CondOnKillHeal       StatKey = "condOnKillHeal"
	CondOnKillCDR        StatKey = "condOnKillCDR"
	CondOnHitSlow        StatKey = "condOnHitSlow"
	CondHighDexProjCount StatKey = "condHighDexProjCount"
)

// AffixCategory groups affixes for generation weighting and display.
type AffixCategory uint8

const (
	CategoryOffensive AffixCategory = iota
	CategoryDefensive
	CategoryUtility
	CategoryConditional
)

// String returns human-readable category name.
func (c AffixCategory) String() string {
	switch c {
	case CategoryOffensive:
		return "offensive"
	case CategoryDefensive:
		return "defensive"
	case CategoryUtility:
		return "utility"
	case CategoryConditional:
		return "conditional"
	default:
		return "unknown"
	}
}

// affixDef — static affix definition for Go literals. Authored once at
// startup, never mutated. The item generator rolls instances from these;
// this core only reads them.
type affixDef struct {
	id       int32
	statKey  StatKey
	name     string
	category AffixCategory
	minValue float64
	maxValue float64
	weight   int32

	// Conditional affixes only.
	condition    ConditionType
	params       ConditionParams
	buffDuration float64 // seconds; 0 = re-evaluated live every tick
}

var affixDefs = []affixDef{
	// --- Offensive passives ---
	{id: 1001, statKey: StatFlatDamage, name: "Sharp", category: CategoryOffensive, minValue: 2, maxValue: 8, weight: 100},
	{id: 1002, statKey: StatPercentDamage, name: "Cruel", category: CategoryOffensive, minValue: 5, maxValue: 25, weight: 80},
	{id: 1003, statKey: StatPercentAttackSpeed, name: "Swift", category: CategoryOffensive, minValue: 4, maxValue: 15, weight: 70},
	{id: 1004, statKey: StatPercentProjectileSpeed, name: "Soaring", category: CategoryOffensive, minValue: 5, maxValue: 20, weight: 50},
	{id: 1005, statKey: StatPercentCritChance, name: "Keen", category: CategoryOffensive, minValue: 2, maxValue: 10, weight: 60},
	{id: 1006, statKey: StatPercentCritMultiplier, name: "Brutal", category: CategoryOffensive, minValue: 10, maxValue: 40, weight: 40},

	// --- Defensive passives ---
	{id: 1101, statKey: StatFlatArmor, name: "Stalwart", category: CategoryDefensive, minValue: 5, maxValue: 30, weight: 100},
	{id: 1102, statKey: StatFlatHP, name: "Stout", category: CategoryDefensive, minValue: 10, maxValue: 50, weight: 90},
	{id: 1103, statKey: StatPercentHP, name: "Vigorous", category: CategoryDefensive, minValue: 3, maxValue: 12, weight: 60},
	{id: 1104, statKey: StatHPRegen, name: "Mending", category: CategoryDefensive, minValue: 0.5, maxValue: 3, weight: 70},

	// --- Utility passives ---
	{id: 1201, statKey: StatPercentMoveSpeed, name: "Fleet", category: CategoryUtility, minValue: 3, maxValue: 12, weight: 80},
	{id: 1202, statKey: StatPercentCDR, name: "Attuned", category: CategoryUtility, minValue: 2, maxValue: 10, weight: 50},
	{id: 1203, statKey: StatPercentXPGain, name: "Scholarly", category: CategoryUtility, minValue: 5, maxValue: 20, weight: 40},
	{id: 1204, statKey: StatPercentGoldFind, name: "Prospecting", category: CategoryUtility, minValue: 5, maxValue: 25, weight: 40},

	// --- Conditional: continuous bonuses ---
	{id: 2001, statKey: CondStationaryDamage, name: "Entrenched", category: CategoryConditional, minValue: 10, maxValue: 30, weight: 30,
		condition: ConditionWhileStationary, params: StationaryParams{MinStationaryMs: 1500}},
	{id: 2002, statKey: CondMovingSpeed, name: "Momentum", category: CategoryConditional, minValue: 5, maxValue: 15, weight: 30,
		condition: ConditionWhileMoving},
	{id: 2003, statKey: CondOnKillAttackSpeed, name: "Frenzy", category: CategoryConditional, minValue: 10, maxValue: 25, weight: 25,
		condition: ConditionOnKill, buffDuration: 3},
	{id: 2004, statKey: CondLowHPArmor, name: "Last Stand", category: CategoryConditional, minValue: 20, maxValue: 60, weight: 25,
		condition: ConditionLowHP, params: LowHPParams{Threshold: 0.35}},
	{id: 2005, statKey: CondFullHPDamage, name: "Untouched Fury", category: CategoryConditional, minValue: 15, maxValue: 35, weight: 25,
		condition: ConditionFullHP},
	{id: 2006, statKey: CondAfterSkillDamage, name: "Spell Echo", category: CategoryConditional, minValue: 10, maxValue: 25, weight: 25,
		condition: ConditionAfterSkill, buffDuration: 2},
	{id: 2007, statKey: CondDashProjSpeed, name: "Slipstream", category: CategoryConditional, minValue: 15, maxValue: 40, weight: 20,
		condition: ConditionAfterMovementSkill, buffDuration: 2},
	{id: 2008, statKey: CondCloseRangeArmor, name: "Shield Wall", category: CategoryConditional, minValue: 15, maxValue: 50, weight: 30,
		condition: ConditionDistanceClose, params: DistanceParams{TileRadius: 3}},
	{id: 2009, statKey: CondFarRangeDamage, name: "Sniper", category: CategoryConditional, minValue: 10, maxValue: 30, weight: 30,
		condition: ConditionDistanceFar, params: DistanceParams{TileRadius: 5}},
	{id: 2010, statKey: CondKillStreakSpeed, name: "Bloodrush", category: CategoryConditional, minValue: 10, maxValue: 20, weight: 20,
		condition: ConditionKillStreak, params: KillStreakParams{Kills: 3, WindowSeconds: 4}, buffDuration: 5},
	{id: 2011, statKey: CondMultiHitCrit, name: "Cleave Master", category: CategoryConditional, minValue: 5, maxValue: 15, weight: 20,
		condition: ConditionMultiHit, params: MultiHitParams{HitThreshold: 3}, buffDuration: 3},
	{id: 2012, statKey: CondRecentlyHitRegen, name: "Adrenaline", category: CategoryConditional, minValue: 2, maxValue: 6, weight: 25,
		condition: ConditionRecentlyHit, buffDuration: 4},
	{id: 2013, statKey: CondNoDamageDamage, name: "Patient Hunter", category: CategoryConditional, minValue: 10, maxValue: 30, weight: 20,
		condition: ConditionNoDamageTaken, params: NoDamageParams{Seconds: 5}},
	{id: 2014, statKey: CondHighVitRegen, name: "Ironheart", category: CategoryConditional, minValue: 1, maxValue: 4, weight: 20,
		condition: ConditionStatBreakpoint, params: BreakpointParams{Attribute: AttrVitality, Threshold: 30}},
	{id: 2015, statKey: CondStatusTargetDamage, name: "Opportunist", category: CategoryConditional, minValue: 10, maxValue: 30, weight: 20,
		condition: ConditionStatusOnTarget, params: StatusParams{Status: "slowed"}},
	{id: 2016, statKey: CondStatusTargetAtkSpd, name: "Predator", category: CategoryConditional, minValue: 8, maxValue: 20, weight: 20,
		condition: ConditionStatusOnTarget, params: StatusParams{Status: "burning"}},

	// --- Conditional: procs / threshold unlocks ---
	{id: 2101, statKey: CondOnKillHeal, name: "Reaper's Gift", category: CategoryConditional, minValue: 3, maxValue: 12, weight: 25,
		condition: ConditionOnKill},
	{id: 2102, statKey: CondOnKillCDR, name: "Soul Harvest", category: CategoryConditional, minValue: 0.2, maxValue: 1, weight: 20,
		condition: ConditionOnKill},
	{id: 2103, statKey: CondOnHitSlow, name: "Crippling", category: CategoryConditional, minValue: 10, maxValue: 30, weight: 25,
		condition: ConditionOnHit},
	{id: 2104, statKey: CondHighDexProjCount, name: "Split Shot", category: CategoryConditional, minValue: 1, maxValue: 2, weight: 10,
		condition: ConditionStatBreakpoint, params: BreakpointParams{Attribute: AttrDexterity, Threshold: ExtraProjectileDexThreshold}},
}
