package status

import "sync/atomic"

// MaxStringLen bounds string metrics, a canonical session UUID fits exactly
const MaxStringLen = 36

// AtomicString is a string metric such as a state name or session id
// The zero value reads as ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, cutting it to MaxStringLen bytes
func (s *AtomicString) Store(v string) {
	if len(v) > MaxStringLen {
		v = v[:MaxStringLen]
	}
	s.ptr.Store(&v)
}

// Load returns the value
func (s *AtomicString) Load() string {
	p := s.ptr.Load()
	if p == nil {
		return ""
	}
	return *p
}
