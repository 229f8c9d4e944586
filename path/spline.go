// Package path samples the closed flight curve the camera follows and the tube is built around.
package path

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/vi-tunnel/parameter"
	"github.com/lixenwraith/vi-tunnel/vmath"
)

// ErrTooFewPoints is returned when a closed curve has fewer than 3 control points
var ErrTooFewPoints = errors.New("path: closed spline needs at least 3 control points")

// Spline is a closed centripetal Catmull-Rom curve with arc-length parametrization
// Immutable after construction; safe for concurrent reads
type Spline struct {
	points []r3.Vec
	arcLen []float64 // cumulative length at raw parameter i/divisions
	total  float64
}

// NewSpline builds a closed curve through points
func NewSpline(points []r3.Vec) (*Spline, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}

	s := &Spline{
		points: append([]r3.Vec(nil), points...),
	}
	s.buildArcTable(parameter.SplineArcDivisions)
	return s, nil
}

// buildArcTable samples the raw curve to map arc length back to raw parameter
func (s *Spline) buildArcTable(divisions int) {
	s.arcLen = make([]float64, divisions+1)
	prev := s.rawPoint(0)
	sum := 0.0
	for i := 1; i <= divisions; i++ {
		cur := s.rawPoint(float64(i) / float64(divisions))
		sum += r3.Norm(r3.Sub(cur, prev))
		s.arcLen[i] = sum
		prev = cur
	}
	s.total = sum
}

// Length returns the approximate curve length
func (s *Spline) Length() float64 {
	return s.total
}

// Points returns a copy of the control points
func (s *Spline) Points() []r3.Vec {
	return append([]r3.Vec(nil), s.points...)
}

// PositionAt returns the point at normalized arc length t, wrapped modulo 1
func (s *Spline) PositionAt(t float64) r3.Vec {
	return s.rawPoint(s.rawParam(vmath.Wrap01(t)))
}

// LookAheadAt returns the point delta further along the loop than t
func (s *Spline) LookAheadAt(t, delta float64) r3.Vec {
	return s.PositionAt(vmath.Wrap01(t) + delta)
}

// TangentAt returns the unit travel direction at t
// Central difference over one arc table step
func (s *Spline) TangentAt(t float64) r3.Vec {
	h := 1.0 / float64(len(s.arcLen)-1)
	a := s.PositionAt(t - h)
	b := s.PositionAt(t + h)
	d := r3.Sub(b, a)
	if r3.Norm2(d) == 0 {
		return r3.Vec{Z: -1}
	}
	return r3.Unit(d)
}

// rawParam converts normalized arc length u in [0,1) to the raw curve parameter
func (s *Spline) rawParam(u float64) float64 {
	n := len(s.arcLen) - 1
	if s.total == 0 {
		return u
	}
	target := u * s.total

	// First index whose cumulative length reaches target
	i := sort.SearchFloat64s(s.arcLen, target)
	if i == 0 {
		return 0
	}
	if i > n {
		return 1
	}

	before := s.arcLen[i-1]
	segLen := s.arcLen[i] - before
	frac := 0.0
	if segLen > 0 {
		frac = (target - before) / segLen
	}
	return (float64(i-1) + frac) / float64(n)
}

// rawPoint evaluates the curve at raw parameter t in [0,1]
func (s *Spline) rawPoint(t float64) r3.Vec {
	n := len(s.points)
	p := float64(n) * t
	seg := int(math.Floor(p))
	w := p - float64(seg)
	seg %= n
	if seg < 0 {
		seg += n
	}

	p0 := s.points[(seg-1+n)%n]
	p1 := s.points[seg]
	p2 := s.points[(seg+1)%n]
	p3 := s.points[(seg+2)%n]

	// Centripetal knot spacing: |Pi+1 - Pi|^0.5
	dt0 := math.Pow(r3.Norm2(r3.Sub(p0, p1)), 0.25)
	dt1 := math.Pow(r3.Norm2(r3.Sub(p1, p2)), 0.25)
	dt2 := math.Pow(r3.Norm2(r3.Sub(p2, p3)), 0.25)

	// Guard coincident control points
	if dt1 < 1e-4 {
		dt1 = 1.0
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	return r3.Vec{
		X: cubicNonuniform(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2).at(w),
		Y: cubicNonuniform(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2).at(w),
		Z: cubicNonuniform(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2).at(w),
	}
}

// cubic holds c0 + c1*t + c2*t^2 + c3*t^3
type cubic struct {
	c0, c1, c2, c3 float64
}

func (c cubic) at(t float64) float64 {
	t2 := t * t
	return c.c0 + c.c1*t + c.c2*t2 + c.c3*t2*t
}

// hermite builds the cubic from endpoints x0, x1 and tangents t0, t1
func hermite(x0, x1, t0, t1 float64) cubic {
	return cubic{
		c0: x0,
		c1: t0,
		c2: -3*x0 + 3*x1 - 2*t0 - t1,
		c3: 2*x0 - 2*x1 + t0 + t1,
	}
}

// cubicNonuniform computes Catmull-Rom tangents for uneven knot spacing on segment x1..x2
func cubicNonuniform(x0, x1, x2, x3, dt0, dt1, dt2 float64) cubic {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2

	// Rescale tangents to the [0,1] segment parameter
	t1 *= dt1
	t2 *= dt1

	return hermite(x1, x2, t1, t2)
}
