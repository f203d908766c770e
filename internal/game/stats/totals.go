package stats

import "math"

// BonusTotals is a fixed-shape accumulator indexed by BonusChannel. Two
// instances are produced per tick: one from passive gear/gem aggregation and
// one from active conditional affixes. Channels start at zero and only ever
// accumulate finite values.
type BonusTotals [ChannelCount]float64

// Add accumulates a value into a channel. Non-finite values (NaN, ±Inf) from
// malformed affix ranges are dropped so a single bad roll cannot poison the
// whole snapshot.
func (t *BonusTotals) Add(ch BonusChannel, v float64) {
	if ch >= ChannelCount {
		return
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	t[ch] += v
}

// Get returns the accumulated value of a channel.
func (t *BonusTotals) Get(ch BonusChannel) float64 {
	if ch >= ChannelCount {
		return 0
	}
	return t[ch]
}

// Plus returns the channel-wise sum of two totals. Conditional and gear
// contributions to the same channel add together before any multiplier is
// applied.
func (t BonusTotals) Plus(other BonusTotals) BonusTotals {
	var sum BonusTotals
	for i := range t {
		sum[i] = t[i] + other[i]
	}
	return sum
}
