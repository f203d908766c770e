package stats

import "github.com/GGPrompts/pixeloot/internal/data"

// timeNever is the initial value of "last happened" timestamps: far enough in
// the past that recency windows are closed and elapsed-time checks (like
// no-damage-taken) are open from the first tick.
const timeNever = -1e9

// ConditionTracker holds the rolling gameplay-event state conditional affixes
// are evaluated against: movement flags, recent-event timestamps and the kill
// ring. One tracker per game session; movement/combat/skill systems feed it
// through the Track* hooks, and Advance drives all time-based transitions
// once per fixed tick.
//
// All timestamps are in accumulated fixed-step game seconds, never wall
// clock, so replays and tests are deterministic.
type ConditionTracker struct {
	gameTime     float64
	isMoving     bool
	stationaryMs float64

	lastDamageTime    float64
	lastSkillTime     float64
	lastMoveSkillTime float64

	killTimes []float64

	lastMultiHitCount int
	lastMultiHitTime  float64
}

// NewConditionTracker creates a tracker with no recorded events.
func NewConditionTracker() *ConditionTracker {
	return &ConditionTracker{
		lastDamageTime:    timeNever,
		lastSkillTime:     timeNever,
		lastMoveSkillTime: timeNever,
		lastMultiHitTime:  timeNever,
		killTimes:         make([]float64, 0, 16),
	}
}

// TrackMovement records the player's current movement speed. A positive
// speed marks the player moving and resets the stationary accumulator
// immediately, so a just-started move is reflected in this frame's
// stationary check rather than one tick late.
func (t *ConditionTracker) TrackMovement(speed float64) {
	if speed > 0 {
		t.isMoving = true
		t.stationaryMs = 0
	} else {
		t.isMoving = false
	}
}

// TrackDamageTaken records that the player just took damage.
func (t *ConditionTracker) TrackDamageTaken() {
	t.lastDamageTime = t.gameTime
}

// TrackKill records a kill at the current game time.
func (t *ConditionTracker) TrackKill() {
	t.killTimes = append(t.killTimes, t.gameTime)
}

// TrackSkillUsed records that the player just cast a skill.
func (t *ConditionTracker) TrackSkillUsed() {
	t.lastSkillTime = t.gameTime
}

// TrackMovementSkillUsed records that the player just used a movement skill
// (dash, blink, leap).
func (t *ConditionTracker) TrackMovementSkillUsed() {
	t.lastMoveSkillTime = t.gameTime
}

// TrackMultiHit records a strike that hit count enemies simultaneously.
func (t *ConditionTracker) TrackMultiHit(count int) {
	t.lastMultiHitCount = count
	t.lastMultiHitTime = t.gameTime
}

// Advance moves game time forward by one fixed step: accumulates stationary
// time while not moving and prunes kill timestamps older than the ring
// window. Must run after this tick's event hooks and before any condition
// is evaluated.
func (t *ConditionTracker) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	t.gameTime += dt
	if !t.isMoving {
		t.stationaryMs += dt * 1000
	}

	cutoff := t.gameTime - data.KillRingWindow
	n := 0
	for _, ts := range t.killTimes {
		if ts >= cutoff {
			t.killTimes[n] = ts
			n++
		}
	}
	t.killTimes = t.killTimes[:n]
}

// Reset clears all tracked state wholesale. Called on zone transition or
// class switch; nothing from the previous run may leak.
func (t *ConditionTracker) Reset() {
	*t = *NewConditionTracker()
}

// GameTime returns accumulated game seconds.
func (t *ConditionTracker) GameTime() float64 { return t.gameTime }

// IsMoving reports whether the player is currently moving.
func (t *ConditionTracker) IsMoving() bool { return t.isMoving }

// StationaryMs returns how long the player has stood still, in milliseconds.
func (t *ConditionTracker) StationaryMs() float64 { return t.stationaryMs }

// SinceDamageTaken returns seconds since the player last took damage.
func (t *ConditionTracker) SinceDamageTaken() float64 {
	return t.gameTime - t.lastDamageTime
}

// SinceLastKill returns seconds since the most recent kill still in the
// ring, or a very large value if there is none.
func (t *ConditionTracker) SinceLastKill() float64 {
	if len(t.killTimes) == 0 {
		return t.gameTime - timeNever
	}
	return t.gameTime - t.killTimes[len(t.killTimes)-1]
}

// SinceSkillUsed returns seconds since the last skill cast.
func (t *ConditionTracker) SinceSkillUsed() float64 {
	return t.gameTime - t.lastSkillTime
}

// SinceMovementSkillUsed returns seconds since the last movement skill.
func (t *ConditionTracker) SinceMovementSkillUsed() float64 {
	return t.gameTime - t.lastMoveSkillTime
}

// KillsWithin counts kills recorded in the last window seconds. The window
// is bounded by the 10s ring prune; windows longer than the ring see at most
// ring-retained kills.
func (t *ConditionTracker) KillsWithin(window float64) int {
	cutoff := t.gameTime - window
	n := 0
	for _, ts := range t.killTimes {
		if ts >= cutoff {
			n++
		}
	}
	return n
}

// LastMultiHit returns the size of the most recent simultaneous-hit event
// and seconds since it happened.
func (t *ConditionTracker) LastMultiHit() (count int, since float64) {
	return t.lastMultiHitCount, t.gameTime - t.lastMultiHitTime
}
