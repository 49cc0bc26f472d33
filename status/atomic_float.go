package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 metric stored as its IEEE-754 bits
// The zero value reads as 0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Store sets the value
func (f *AtomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Load returns the value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta with a CAS loop and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if f.bits.CompareAndSwap(old, next) {
			return math.Float64frombits(next)
		}
	}
}
