package data

// Equipment slot constants. One nullable reference per slot, eight slots total.
const (
	SlotWeapon    uint8 = 0
	SlotHelmet    uint8 = 1
	SlotChest     uint8 = 2
	SlotBoots     uint8 = 3
	SlotRingLeft  uint8 = 4
	SlotRingRight uint8 = 5
	SlotAmulet    uint8 = 6
	SlotOffhand   uint8 = 7

	SlotCount = 8
)

// SlotNames — human-readable slot names (for debugging).
var SlotNames = map[uint8]string{
	SlotWeapon:    "Weapon",
	SlotHelmet:    "Helmet",
	SlotChest:     "Chest",
	SlotBoots:     "Boots",
	SlotRingLeft:  "Left Ring",
	SlotRingRight: "Right Ring",
	SlotAmulet:    "Amulet",
	SlotOffhand:   "Offhand",
}

// World and movement constants.
const (
	TileSize      float64 = 32.0 // world units per tile
	BaseMoveSpeed float64 = 140.0
)

// Hard caps applied by the stat calculator.
const (
	CooldownReductionCap float64 = 0.4
	CritChanceCap        float64 = 1.0
	BaseCritMultiplier   float64 = 1.5
)

// Base character constants.
const (
	BaseMaxHP     float64 = 100.0
	HPPerVitality float64 = 10.0
	BaseHPRegen   float64 = 1.0
	RegenPerVit   float64 = 0.1
	ArmorPivot    float64 = 100.0 // armor value yielding 50% reduction
)

// Condition timing windows, in seconds of accumulated game time.
// Deliberate slack windows around "happened this tick"; combo timing
// depends on them, so they must not be tightened to a single tick.
const (
	OnKillWindow         float64 = 0.020
	AfterSkillWindow     float64 = 0.100
	AfterMoveSkillWindow float64 = 0.100
	MultiHitWindow       float64 = 0.100
	RecentlyHitWindow    float64 = 0.100
	KillRingWindow       float64 = 10.0
)

// Extra projectile conditional unlocks at this dexterity.
const ExtraProjectileDexThreshold float64 = 25
