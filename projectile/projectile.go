// Package projectile simulates fired bolts: aim resolution, travel, impact and the explosion fade.
package projectile

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/vi-tunnel/hit"
	"github.com/lixenwraith/vi-tunnel/palette"
	"github.com/lixenwraith/vi-tunnel/parameter"
)

// ID identifies a projectile; never reused
type ID uint64

// State is the projectile lifecycle stage
type State uint8

const (
	StateTraveling State = iota
	StateExploding
	StateDead
)

func (s State) String() string {
	switch s {
	case StateTraveling:
		return "traveling"
	case StateExploding:
		return "exploding"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Projectile is a plain value state machine advanced by Manager
type Projectile struct {
	ID        ID
	Position  r3.Vec
	Direction r3.Vec // unit, fixed at spawn
	Speed     float64
	Color     palette.RGB
	Scale     float64
	Opacity   float64

	// Resolved once at spawn
	Impact      r3.Vec
	HasImpact   bool
	ImpactColor palette.RGB
	Target      *hit.Target

	state State
}

// State returns the lifecycle stage
func (p *Projectile) State() State {
	return p.state
}

// ImpactDistance is the distance to the resolved impact, +Inf when the ray hit nothing
func (p *Projectile) ImpactDistance() float64 {
	if !p.HasImpact {
		return math.Inf(1)
	}
	return r3.Norm(r3.Sub(p.Impact, p.Position))
}

// passedImpact reports whether the last step carried the projectile beyond its impact
// Fast shots can jump over the impact radius in a single step
func (p *Projectile) passedImpact() bool {
	if !p.HasImpact {
		return false
	}
	return r3.Dot(r3.Sub(p.Impact, p.Position), p.Direction) < 0
}

// step advances one tick and returns the next state
// The caller owns the state field; step only touches kinematics and animation
func (p *Projectile) step() (next State, collapsed *hit.Target) {
	switch p.state {
	case StateTraveling:
		p.Position = r3.Add(p.Position, r3.Scale(p.Speed, p.Direction))
		if p.ImpactDistance() >= parameter.ProjectileImpactRadius && !p.passedImpact() {
			return StateTraveling, nil
		}
		p.Position = p.Impact
		p.Color = p.ImpactColor
		if p.Target != nil && p.Target.Collapse() {
			collapsed = p.Target
		}
		return StateExploding, collapsed

	case StateExploding:
		if p.Opacity > parameter.ProjectileFadeEpsilon {
			p.Scale += parameter.ProjectileGrowStep
			p.Opacity *= parameter.ProjectileFadeFactor
			return StateExploding, nil
		}
		p.Opacity = 0
		p.Scale = parameter.ProjectileDeadScale
		return StateDead, nil

	default:
		return StateDead, nil
	}
}

// Visual is the renderer view of a projectile
type Visual struct {
	ID       ID
	Position r3.Vec
	Scale    float64
	Opacity  float64
	Color    palette.RGB
	State    State
}

func (p *Projectile) visual() Visual {
	return Visual{
		ID:       p.ID,
		Position: p.Position,
		Scale:    p.Scale,
		Opacity:  p.Opacity,
		Color:    p.Color,
		State:    p.state,
	}
}
