package data

import "log/slog"

// AffixTable — global registry of all affix definitions.
// map[affixID]*affixDef
var AffixTable map[int32]*affixDef

// affixByKey indexes definitions by stat key for proc and routing lookups.
var affixByKey map[StatKey]*affixDef

// GetAffixDef returns the affix definition for an affix ID.
func GetAffixDef(affixID int32) *affixDef {
	if AffixTable == nil {
		return nil
	}
	return AffixTable[affixID]
}

// GetAffixDefByKey returns the affix definition for a stat key.
func GetAffixDefByKey(key StatKey) *affixDef {
	if affixByKey == nil {
		return nil
	}
	return affixByKey[key]
}

// LoadAffixes builds AffixTable from Go literals (affixDefs).
func LoadAffixes() error {
	AffixTable = make(map[int32]*affixDef, len(affixDefs))
	affixByKey = make(map[StatKey]*affixDef, len(affixDefs))

	for i := range affixDefs {
		AffixTable[affixDefs[i].id] = &affixDefs[i]
		affixByKey[affixDefs[i].statKey] = &affixDefs[i]
	}

	slog.Info("loaded affix definitions", "count", len(AffixTable))
	return nil
}

// AffixDef accessor methods
func (d *affixDef) ID() int32               { return d.id }
func (d *affixDef) StatKey() StatKey        { return d.statKey }
func (d *affixDef) Name() string            { return d.name }
func (d *affixDef) Category() AffixCategory { return d.category }
func (d *affixDef) MinValue() float64       { return d.minValue }
func (d *affixDef) MaxValue() float64       { return d.maxValue }
func (d *affixDef) Weight() int32           { return d.weight }
func (d *affixDef) Condition() ConditionType { return d.condition }
func (d *affixDef) Params() ConditionParams  { return d.params }
func (d *affixDef) BuffDuration() float64    { return d.buffDuration }

// IsConditional reports whether the affix is gated on a gameplay condition.
func (d *affixDef) IsConditional() bool {
	return d.category == CategoryConditional
}

// IsTimed reports whether a true evaluation grants a timed buff instead of a
// live per-tick bonus.
func (d *affixDef) IsTimed() bool {
	return d.buffDuration > 0
}

// ConditionalKeys returns the stat keys of all conditional definitions.
// Used by routing validation at startup.
func ConditionalKeys() []StatKey {
	keys := make([]StatKey, 0, len(affixDefs))
	for i := range affixDefs {
		if affixDefs[i].IsConditional() {
			keys = append(keys, affixDefs[i].statKey)
		}
	}
	return keys
}
