package engine

import (
	"sync"
	"time"
)

// PausableClock provides flight time that stops while paused
// Elapsed time drives the camera loop and must not jump on resume
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider
	start  time.Time

	paused          bool
	pauseStart      time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a clock starting at source's current time
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Elapsed returns running time since creation, excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.source.Now()
	if pc.paused {
		// Frozen at the pause point
		now = pc.pauseStart
	}
	return now.Sub(pc.start) - pc.totalPausedTime
}

// ElapsedMs returns Elapsed in fractional milliseconds, the tick time unit
func (pc *PausableClock) ElapsedMs() float64 {
	return float64(pc.Elapsed()) / float64(time.Millisecond)
}

// Pause stops time advancement; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues time advancement; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
	pc.paused = false
}

// Toggle flips pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
