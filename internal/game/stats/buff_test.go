package stats

import (
	"testing"

	"github.com/GGPrompts/pixeloot/internal/data"
)

func TestBuffSet_RefreshNotStack(t *testing.T) {
	s := NewBuffSet()

	s.Trigger(data.CondKillStreakSpeed, 20, 5)
	s.Tick(2) // 3s remaining

	// Re-trigger inside the active window: one entry, duration reset to the
	// nominal 5s, not extended to 8 and not a second entry.
	s.Trigger(data.CondKillStreakSpeed, 20, 5)

	if s.Len() != 1 {
		t.Fatalf("expected 1 buff, got %d", s.Len())
	}
	buff := s.Active(data.CondKillStreakSpeed)
	if buff == nil {
		t.Fatal("buff should be active")
	}
	if buff.RemainingSeconds != 5 {
		t.Fatalf("expected remaining 5s after refresh, got %v", buff.RemainingSeconds)
	}
}

func TestBuffSet_RefreshOverwritesValue(t *testing.T) {
	s := NewBuffSet()

	s.Trigger(data.CondOnKillAttackSpeed, 10, 3)
	s.Trigger(data.CondOnKillAttackSpeed, 25, 3)

	buff := s.Active(data.CondOnKillAttackSpeed)
	if buff == nil {
		t.Fatal("buff should be active")
	}
	if buff.Value != 25 {
		t.Fatalf("expected value overwritten to 25, got %v", buff.Value)
	}
}

func TestBuffSet_ExpiryRemovesEntry(t *testing.T) {
	s := NewBuffSet()

	s.Trigger(data.CondOnKillAttackSpeed, 15, 3)
	s.buffs[data.CondOnKillAttackSpeed].RemainingSeconds = 0.016

	// One tick with a larger dt must remove the entry entirely.
	s.Tick(0.1)

	if s.Active(data.CondOnKillAttackSpeed) != nil {
		t.Fatal("expired buff should be removed")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty set, got %d entries", s.Len())
	}
}

func TestBuffSet_ZeroDurationIgnored(t *testing.T) {
	s := NewBuffSet()
	s.Trigger(data.CondStationaryDamage, 20, 0)
	if s.Len() != 0 {
		t.Fatal("zero-duration trigger must not create a timer entry")
	}
}

func TestBuffSet_Reset(t *testing.T) {
	s := NewBuffSet()
	s.Trigger(data.CondOnKillAttackSpeed, 15, 3)
	s.Trigger(data.CondKillStreakSpeed, 20, 5)

	s.Reset()

	if s.Len() != 0 {
		t.Fatalf("expected empty set after reset, got %d", s.Len())
	}
}
