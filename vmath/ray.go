package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// RayBox performs the slab test of a ray against an axis-aligned box
// Returns entry and exit distances along dir; ok is false when the ray misses
// or the box lies entirely behind the origin
func RayBox(origin, dir r3.Vec, box r3.Box) (tNear, tFar float64, ok bool) {
	tNear = math.Inf(-1)
	tFar = math.Inf(1)

	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < RayEpsilon {
			// Parallel to slab: must start inside it
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, 0, false
			}
			continue
		}
		inv := 1.0 / d[i]
		t0 := (lo[i] - o[i]) * inv
		t1 := (hi[i] - o[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tNear {
			tNear = t0
		}
		if t1 < tFar {
			tFar = t1
		}
		if tNear > tFar {
			return 0, 0, false
		}
	}

	if tFar < 0 {
		return 0, 0, false
	}
	return tNear, tFar, true
}

// RayTriangle is a double-sided Moller-Trumbore intersection
// Returns the distance along dir (in units of |dir|) to the hit point
func RayTriangle(origin, dir r3.Vec, tri r3.Triangle) (float64, bool) {
	edge1 := r3.Sub(tri[1], tri[0])
	edge2 := r3.Sub(tri[2], tri[0])

	p := r3.Cross(dir, edge2)
	det := r3.Dot(edge1, p)
	if math.Abs(det) < RayEpsilon {
		return 0, false
	}
	invDet := 1.0 / det

	s := r3.Sub(origin, tri[0])
	u := r3.Dot(s, p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := r3.Cross(s, edge1)
	v := r3.Dot(dir, q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := r3.Dot(edge2, q) * invDet
	if t <= RayEpsilon {
		return 0, false
	}
	return t, true
}
