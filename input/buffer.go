// Package input buffers pointer aim and fire requests between frame ticks.
package input

import (
	"sync"

	"github.com/lixenwraith/vi-tunnel/vmath"
)

// Snapshot is the input consumed by one tick
// AimX, AimY are normalized device coordinates in [-1,1], +Y up
type Snapshot struct {
	AimX, AimY float64
	Fires      int
}

// Buffer collects input from the event goroutine; the tick drains it once per frame
// Aim persists across drains, fire requests are consumed
type Buffer struct {
	mu    sync.Mutex
	aimX  float64
	aimY  float64
	fires int
}

// NewBuffer creates a buffer aiming at screen center
func NewBuffer() *Buffer {
	return &Buffer{}
}

// SetAim sets the aim point, clamped to the screen
func (b *Buffer) SetAim(x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.aimX = vmath.Clamp(x, -1, 1)
	b.aimY = vmath.Clamp(y, -1, 1)
}

// NudgeAim moves the aim point by a delta, clamped to the screen
func (b *Buffer) NudgeAim(dx, dy float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.aimX = vmath.Clamp(b.aimX+dx, -1, 1)
	b.aimY = vmath.Clamp(b.aimY+dy, -1, 1)
}

// Fire queues one fire request
func (b *Buffer) Fire() {
	b.mu.Lock()
	b.fires++
	b.mu.Unlock()
}

// Aim returns the current aim without consuming fires
func (b *Buffer) Aim() (x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.aimX, b.aimY
}

// Drain returns the pending input and clears queued fires
func (b *Buffer) Drain() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := Snapshot{AimX: b.aimX, AimY: b.aimY, Fires: b.fires}
	b.fires = 0
	return s
}
