package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 as its bit pattern
// Zero value reads as 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// MaxLabelLen caps label length so HUD columns stay fixed
const MaxLabelLen = 24

// AtomicLabel is a short string published by the tick loop and read by renderers
type AtomicLabel struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncating to MaxLabelLen
func (s *AtomicLabel) Store(val string) {
	if len(val) > MaxLabelLen {
		val = val[:MaxLabelLen]
	}
	s.ptr.Store(&val)
}

func (s *AtomicLabel) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
