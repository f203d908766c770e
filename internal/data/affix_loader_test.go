package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAffixes(t *testing.T) {
	require.NoError(t, LoadAffixes())
	assert.NotEmpty(t, AffixTable)

	def := GetAffixDef(2010)
	require.NotNil(t, def)
	assert.Equal(t, CondKillStreakSpeed, def.StatKey())
	assert.Equal(t, CategoryConditional, def.Category())
	assert.Equal(t, ConditionKillStreak, def.Condition())
	assert.True(t, def.IsTimed())
	assert.Equal(t, 5.0, def.BuffDuration())

	params, ok := def.Params().(KillStreakParams)
	require.True(t, ok, "kill-streak def should carry KillStreakParams")
	assert.Equal(t, 3, params.Kills)
	assert.Equal(t, 4.0, params.WindowSeconds)
}

func TestGetAffixDef_Unknown(t *testing.T) {
	require.NoError(t, LoadAffixes())
	assert.Nil(t, GetAffixDef(99999))
	assert.Nil(t, GetAffixDefByKey(StatKey("condTypoKey")))
}

func TestAffixDefs_Sanity(t *testing.T) {
	require.NoError(t, LoadAffixes())

	seen := make(map[int32]bool, len(affixDefs))
	for i := range affixDefs {
		def := &affixDefs[i]
		assert.False(t, seen[def.id], "duplicate affix id %d", def.id)
		seen[def.id] = true

		assert.LessOrEqual(t, def.minValue, def.maxValue, "affix %d range inverted", def.id)
		assert.Positive(t, def.weight, "affix %d has no roll weight", def.id)

		if def.IsConditional() {
			assert.NotEqual(t, ConditionNone, def.condition, "conditional affix %d has no condition", def.id)
		} else {
			assert.Equal(t, ConditionNone, def.condition, "passive affix %d carries a condition", def.id)
			assert.Zero(t, def.buffDuration, "passive affix %d carries a buff duration", def.id)
		}
	}
}

func TestConditionalKeys(t *testing.T) {
	require.NoError(t, LoadAffixes())

	keys := ConditionalKeys()
	assert.Contains(t, keys, CondKillStreakSpeed)
	assert.Contains(t, keys, CondOnKillHeal)
	assert.NotContains(t, keys, StatFlatDamage)
}

func TestConditionTypeString(t *testing.T) {
	assert.Equal(t, "kill-streak", ConditionKillStreak.String())
	assert.Equal(t, "unknown", ConditionType(200).String())
}
