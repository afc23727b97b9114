// Package secret holds key material in memory that can be wiped.
package secret

import "sync"

const redacted = "[REDACTED]"

// Buffer owns a byte slice and zeroes it on Destroy. It never prints its content.
type Buffer struct {
	mu   sync.Mutex
	data []byte
}

// New takes ownership of b. The caller must not keep other references to it.
func New(b []byte) *Buffer {
	return &Buffer{data: b}
}

// Bytes returns the live content, or nil once destroyed.
func (s *Buffer) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Len returns the content length, zero once destroyed.
func (s *Buffer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Destroy overwrites the content with zeros. Safe to call twice.
func (s *Buffer) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	Wipe(s.data)
	s.data = nil
}

func (s *Buffer) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data == nil
}

func (s *Buffer) String() string   { return redacted }
func (s *Buffer) GoString() string { return redacted }

func (s *Buffer) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// Wipe zeroes b in place.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
