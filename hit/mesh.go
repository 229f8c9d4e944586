package hit

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/vi-tunnel/vmath"
)

// Mesh is a triangle soup with a cached bounding box
type Mesh struct {
	Triangles []r3.Triangle
	Bounds    r3.Box
}

// NewMesh computes bounds for the triangles
func NewMesh(tris []r3.Triangle) *Mesh {
	m := &Mesh{Triangles: tris}
	if len(tris) == 0 {
		return m
	}

	lo := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, tri := range tris {
		for _, v := range tri {
			lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
			hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
		}
	}
	m.Bounds = r3.Box{Min: lo, Max: hi}
	return m
}

// Intersect returns the nearest hit distance along a unit direction
func (m *Mesh) Intersect(origin, dir r3.Vec) (float64, bool) {
	if m == nil || len(m.Triangles) == 0 {
		return 0, false
	}
	if _, _, ok := vmath.RayBox(origin, dir, m.Bounds); !ok {
		return 0, false
	}

	best := math.Inf(1)
	found := false
	for _, tri := range m.Triangles {
		if d, ok := vmath.RayTriangle(origin, dir, tri); ok && d < best {
			best = d
			found = true
		}
	}
	return best, found
}
