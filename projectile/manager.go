package projectile

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/vi-tunnel/camera"
	"github.com/lixenwraith/vi-tunnel/hit"
	"github.com/lixenwraith/vi-tunnel/palette"
	"github.com/lixenwraith/vi-tunnel/parameter"
)

// Tester resolves the nearest scene hit along a ray
type Tester interface {
	Intersect(origin, direction r3.Vec) (hit.Hit, bool)
}

// Impact records a projectile reaching its impact point this tick
type Impact struct {
	Projectile ID
	Point      r3.Vec
	Target     *hit.Target
}

// Report summarizes one Update
type Report struct {
	Impacts   []Impact
	Collapsed []*hit.Target // targets hidden this tick
	Removed   []ID
}

// Option configures a Manager
type Option func(*Manager)

// WithSpeed sets travel distance per tick
func WithSpeed(speed float64) Option {
	return func(m *Manager) {
		if speed > 0 {
			m.speed = speed
		}
	}
}

// WithSpread jitters each aim direction by up to spread per axis using rng
// rng is explicit so runs are reproducible
func WithSpread(spread float64, rng *rand.Rand) Option {
	return func(m *Manager) {
		if spread > 0 && rng != nil {
			m.spread = spread
			m.rng = rng
		}
	}
}

// Manager owns live projectiles and is the only writer of their state
type Manager struct {
	tester Tester
	live   []*Projectile
	nextID ID

	speed  float64
	spread float64
	rng    *rand.Rand
}

// NewManager creates a manager resolving aim through tester
func NewManager(tester Tester, opts ...Option) *Manager {
	m := &Manager{
		tester: tester,
		speed:  parameter.ProjectileSpeed,
		live:   make([]*Projectile, 0, 32),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Fire spawns a projectile at the camera heading toward aim
// The single hit query happens here; the result never re-tracks aim
func (m *Manager) Fire(aim r3.Vec, pose camera.Pose) ID {
	m.nextID++

	dir := r3.Sub(aim, pose.Position)
	if r3.Norm2(dir) == 0 {
		dir = pose.Forward()
	}
	dir = r3.Unit(dir)
	if m.rng != nil {
		dir = m.jitter(dir)
	}

	p := &Projectile{
		ID:        m.nextID,
		Position:  pose.Position,
		Direction: dir,
		Speed:     m.speed,
		Color:     palette.FromArray(parameter.ProjectileColor),
		Scale:     1,
		Opacity:   1,
		state:     StateTraveling,
	}

	if m.tester != nil {
		if h, ok := m.tester.Intersect(pose.Position, dir); ok {
			p.Impact = h.Point
			p.HasImpact = true
			p.Target = h.Target
			if h.Target != nil {
				p.ImpactColor = h.Target.Color
			}
		}
	}

	m.live = append(m.live, p)
	return p.ID
}

func (m *Manager) jitter(dir r3.Vec) r3.Vec {
	off := r3.Vec{
		X: (m.rng.Float64() - 0.5) * m.spread,
		Y: (m.rng.Float64() - 0.5) * m.spread,
		Z: (m.rng.Float64() - 0.5) * m.spread,
	}
	j := r3.Add(dir, off)
	if r3.Norm2(j) == 0 {
		return dir
	}
	return r3.Unit(j)
}

// Update advances every live projectile one tick, then drops the dead ones
func (m *Manager) Update() Report {
	var rep Report

	for _, p := range m.live {
		if p.state == StateDead {
			continue
		}
		prev := p.state
		next, collapsed := p.step()
		p.state = next

		if prev == StateTraveling && next == StateExploding {
			rep.Impacts = append(rep.Impacts, Impact{Projectile: p.ID, Point: p.Position, Target: p.Target})
		}
		if collapsed != nil {
			rep.Collapsed = append(rep.Collapsed, collapsed)
		}
	}

	active := m.live[:0]
	for _, p := range m.live {
		if p.state == StateDead {
			rep.Removed = append(rep.Removed, p.ID)
			continue
		}
		active = append(active, p)
	}
	// Release dropped pointers held past the new length
	for i := len(active); i < len(m.live); i++ {
		m.live[i] = nil
	}
	m.live = active

	return rep
}

// Live returns the number of projectiles still simulated
func (m *Manager) Live() int {
	return len(m.live)
}

// Get looks up a live projectile
func (m *Manager) Get(id ID) (*Projectile, bool) {
	for _, p := range m.live {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Visuals returns renderer views in fire order
func (m *Manager) Visuals() []Visual {
	out := make([]Visual, 0, len(m.live))
	for _, p := range m.live {
		out = append(out, p.visual())
	}
	return out
}
