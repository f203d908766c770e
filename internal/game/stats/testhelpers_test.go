package stats

import (
	"testing"

	"github.com/GGPrompts/pixeloot/internal/data"
	"github.com/GGPrompts/pixeloot/internal/model"
)

// fakePlayer is a minimal PlayerView for evaluator and calculator tests.
type fakePlayer struct {
	hp, maxHP float64
	pos       model.Location
	attrs     model.Attributes
}

func (p *fakePlayer) Health() (current, max float64) { return p.hp, p.maxHP }
func (p *fakePlayer) Position() model.Location       { return p.pos }
func (p *fakePlayer) Attributes() model.Attributes   { return p.attrs }

func newFakePlayer() *fakePlayer {
	return &fakePlayer{hp: 100, maxHP: 100}
}

func mustLoadAffixes(t *testing.T) {
	t.Helper()
	if err := data.LoadAffixes(); err != nil {
		t.Fatalf("LoadAffixes: %v", err)
	}
}

// newTestItem builds an item for a slot, failing the test on error.
func newTestItem(t *testing.T, objectID uint32, slot uint8, baseDamage, baseArmor float64) *model.Item {
	t.Helper()
	item, err := model.NewItem(objectID, "test item", slot, baseDamage, baseArmor)
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	return item
}

// conditionalAffix builds an affix instance from a catalog definition.
func conditionalAffix(t *testing.T, affixID int32, value float64) model.Affix {
	t.Helper()
	def := data.GetAffixDef(affixID)
	if def == nil {
		t.Fatalf("no affix definition %d (did you call mustLoadAffixes?)", affixID)
	}
	return model.Affix{
		ID:          def.ID(),
		StatKey:     def.StatKey(),
		Category:    def.Category(),
		RolledValue: value,
		MinValue:    def.MinValue(),
		MaxValue:    def.MaxValue(),
	}
}

// snapshotFor builds a Snapshot around a tracker with optional player and
// enemies.
func snapshotFor(tracker *ConditionTracker, player PlayerView, enemies EnemyProvider) Snapshot {
	return Snapshot{Tracker: tracker, Player: player, Enemies: enemies}
}
