// Package camera turns elapsed time into a pose on the flight path and projects world points
// for presentation.
package camera

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/vi-tunnel/parameter"
	"github.com/lixenwraith/vi-tunnel/vmath"
)

// Sampler answers positions on a closed curve with parameter wrapped modulo 1
type Sampler interface {
	PositionAt(t float64) r3.Vec
	LookAheadAt(t, delta float64) r3.Vec
}

// Pose is the camera position and the point it looks at
type Pose struct {
	Position r3.Vec
	Target   r3.Vec
}

// Forward returns the unit view direction, -Z when position and target coincide
func (p Pose) Forward() r3.Vec {
	d := r3.Sub(p.Target, p.Position)
	if r3.Norm2(d) == 0 {
		return r3.Vec{Z: -1}
	}
	return r3.Unit(d)
}

// Rig moves the camera along a path as a pure function of absolute time
type Rig struct {
	path      Sampler
	timeScale float64
	loopMs    float64
	lookAhead float64
}

// NewRig creates a rig with the default flight timing
func NewRig(path Sampler) *Rig {
	return &Rig{
		path:      path,
		timeScale: parameter.CameraTimeScale,
		loopMs:    parameter.CameraLoopPeriodMs,
		lookAhead: parameter.CameraLookAhead,
	}
}

// Progress maps absolute time to the loop parameter in [0,1)
func (r *Rig) Progress(absoluteTimeMs float64) float64 {
	return vmath.Wrap01(absoluteTimeMs * r.timeScale / r.loopMs)
}

// Update returns the pose for absolute time
func (r *Rig) Update(absoluteTimeMs float64) Pose {
	p := r.Progress(absoluteTimeMs)
	return Pose{
		Position: r.path.PositionAt(p),
		Target:   r.path.LookAheadAt(p, r.lookAhead),
	}
}
