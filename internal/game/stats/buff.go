package stats

import (
	"log/slog"

	"github.com/GGPrompts/pixeloot/internal/data"
)

// ActiveBuff is a running timed activation of a conditional affix's bonus.
// It stays active for its full duration even if the trigger condition stops
// holding.
type ActiveBuff struct {
	StatKey          data.StatKey
	Value            float64
	RemainingSeconds float64
}

// BuffSet tracks active timed conditional buffs, at most one per distinct
// stat key regardless of how many equipped items grant it. Duplicate grants
// refresh, they never stack.
type BuffSet struct {
	buffs map[data.StatKey]*ActiveBuff
}

// NewBuffSet creates an empty buff set.
func NewBuffSet() *BuffSet {
	return &BuffSet{
		buffs: make(map[data.StatKey]*ActiveBuff, 8),
	}
}

// Trigger creates a buff for the stat key, or refreshes the existing one in
// place: remaining time resets to the full duration and the value is
// overwritten. Re-triggering never extends past the nominal duration and
// never compounds the value.
func (s *BuffSet) Trigger(key data.StatKey, value, duration float64) {
	if duration <= 0 {
		return
	}
	if existing, ok := s.buffs[key]; ok {
		existing.RemainingSeconds = duration
		existing.Value = value
		slog.Debug("buff refreshed", "statKey", key, "duration", duration)
		return
	}
	s.buffs[key] = &ActiveBuff{
		StatKey:          key,
		Value:            value,
		RemainingSeconds: duration,
	}
	slog.Debug("buff started", "statKey", key, "value", value, "duration", duration)
}

// Tick decrements every buff's remaining time by dt and removes any that
// reach zero or below.
func (s *BuffSet) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	for key, buff := range s.buffs {
		buff.RemainingSeconds -= dt
		if buff.RemainingSeconds <= 0 {
			delete(s.buffs, key)
			slog.Debug("buff expired", "statKey", key)
		}
	}
}

// Active returns the live buff for the stat key, or nil.
func (s *BuffSet) Active(key data.StatKey) *ActiveBuff {
	buff, ok := s.buffs[key]
	if !ok || buff.RemainingSeconds <= 0 {
		return nil
	}
	return buff
}

// Len returns the number of live buffs.
func (s *BuffSet) Len() int {
	return len(s.buffs)
}

// Reset removes all buffs.
func (s *BuffSet) Reset() {
	clear(s.buffs)
}
