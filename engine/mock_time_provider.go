package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually stepped clock for deterministic frame tests
// Time is kept as an offset from a fixed origin so tests can read back total advance
type MockTimeProvider struct {
	mu     sync.RWMutex
	origin time.Time
	offset time.Duration
}

// NewMockTimeProvider starts the mock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{origin: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.origin.Add(m.offset)
}

// SetTime jumps to t; the offset is measured from the original start
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.offset = t.Sub(m.origin)
	m.mu.Unlock()
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.offset += d
	m.mu.Unlock()
}

// AdvanceFrames steps n frames at fps, the way the ticker would
func (m *MockTimeProvider) AdvanceFrames(n, fps int) {
	if fps <= 0 {
		return
	}
	m.Advance(time.Duration(n) * time.Second / time.Duration(fps))
}

// Offset returns total time moved since start
func (m *MockTimeProvider) Offset() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.offset
}
