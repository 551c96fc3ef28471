package ittech

import (
	"iter"
	"math/bits"
)

// MaxChannels is the fixed number of channel slots in a module. Channel
// numbers are 0..63 regardless of how many channels actually carry notes.
const MaxChannels = 64

// ActiveChannels is a bitset over the channel slots; bit n set means channel
// n carries note data.
type ActiveChannels uint64

// Contains reports whether the given channel is in the set. Channel numbers
// outside 0..63 are never in any set.
func (a ActiveChannels) Contains(channel int) bool {
	return channel >= 0 && channel < MaxChannels && a&(1<<uint(channel)) != 0
}

// With returns a copy of the set with the given channel added; channel
// numbers outside 0..63 leave the set unchanged.
func (a ActiveChannels) With(channel int) ActiveChannels {
	if channel < 0 || channel >= MaxChannels {
		return a
	}
	return a | 1<<uint(channel)
}

func (a ActiveChannels) Union(other ActiveChannels) ActiveChannels { return a | other }

func (a ActiveChannels) Intersect(other ActiveChannels) ActiveChannels { return a & other }

// Count returns the number of channels in the set.
func (a ActiveChannels) Count() int { return bits.OnesCount64(uint64(a)) }

// Channels returns an iterator over the channels in the set, in increasing
// order.
func (a ActiveChannels) Channels() iter.Seq[int] {
	return func(yield func(int) bool) {
		for rest := uint64(a); rest != 0; rest &= rest - 1 {
			if !yield(bits.TrailingZeros64(rest)) {
				return
			}
		}
	}
}
