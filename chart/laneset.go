package chart

import "math/bits"

// LaneSet is a bitmask of occupied lanes. Supports up to 32 lanes, wider than
// any supported playing surface.
type LaneSet uint32

// Add marks a lane occupied; out-of-range lanes are ignored
func (s *LaneSet) Add(lane int) {
	if lane < 0 || lane > 31 {
		return
	}
	*s |= 1 << uint(lane)
}

// Has reports whether a lane is occupied
func (s LaneSet) Has(lane int) bool {
	if lane < 0 || lane > 31 {
		return false
	}
	return s&(1<<uint(lane)) != 0
}

// Clear empties the set
func (s *LaneSet) Clear() {
	*s = 0
}

// Count returns the number of occupied lanes
func (s LaneSet) Count() int {
	return bits.OnesCount32(uint32(s))
}
