package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is an atomic float64 built on bit conversion. The zero value
// is ready to use and reads as 0.0.
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores val atomically.
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the current value atomically.
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta atomically and returns the new value.
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
