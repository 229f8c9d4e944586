package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/vi-tunnel/hit"
	"github.com/lixenwraith/vi-tunnel/vmath"
)

// Path is the curve a tube is swept along
type Path interface {
	PositionAt(t float64) r3.Vec
	TangentAt(t float64) r3.Vec
}

// Tube is a closed swept circle around a path
type Tube struct {
	Centers []r3.Vec
	Rings   [][]r3.Vec // Rings[i][j]: ring i, radial vertex j
	Mesh    *hit.Mesh
}

// NewTube sweeps a circle of radius along path using parallel-transport frames
// The last frame is twisted back onto the first so the closed seam lines up
func NewTube(p Path, tubularSegments int, radius float64, radialSegments int) *Tube {
	if tubularSegments < 3 {
		tubularSegments = 3
	}
	if radialSegments < 3 {
		radialSegments = 3
	}

	centers := make([]r3.Vec, tubularSegments)
	tangents := make([]r3.Vec, tubularSegments)
	for i := range centers {
		u := float64(i) / float64(tubularSegments)
		centers[i] = p.PositionAt(u)
		tangents[i] = p.TangentAt(u)
	}

	normals, binormals := transportFrames(tangents)

	rings := make([][]r3.Vec, tubularSegments)
	for i := range rings {
		ring := make([]r3.Vec, radialSegments)
		for j := range ring {
			a := float64(j) / float64(radialSegments) * 2 * math.Pi
			sin, cos := math.Sincos(a)
			offset := r3.Add(r3.Scale(-cos, normals[i]), r3.Scale(sin, binormals[i]))
			ring[j] = r3.Add(centers[i], r3.Scale(radius, offset))
		}
		rings[i] = ring
	}

	tris := make([]r3.Triangle, 0, tubularSegments*radialSegments*2)
	for i := 0; i < tubularSegments; i++ {
		next := (i + 1) % tubularSegments
		for j := 0; j < radialSegments; j++ {
			k := (j + 1) % radialSegments
			a, b := rings[i][j], rings[next][j]
			c, d := rings[next][k], rings[i][k]
			tris = append(tris, r3.Triangle{a, b, d}, r3.Triangle{b, c, d})
		}
	}

	return &Tube{
		Centers: centers,
		Rings:   rings,
		Mesh:    hit.NewMesh(tris),
	}
}

// transportFrames carries an initial normal along the tangents without twisting
func transportFrames(tangents []r3.Vec) (normals, binormals []r3.Vec) {
	n := len(tangents)
	normals = make([]r3.Vec, n)
	binormals = make([]r3.Vec, n)

	normals[0] = initialNormal(tangents[0])
	binormals[0] = r3.Unit(r3.Cross(tangents[0], normals[0]))

	for i := 1; i < n; i++ {
		normals[i] = transport(normals[i-1], tangents[i-1], tangents[i])
		binormals[i] = r3.Unit(r3.Cross(tangents[i], normals[i]))
	}

	// Carry the last normal across the seam, then distribute the mismatch over the loop
	wrap := transport(normals[n-1], tangents[n-1], tangents[0])
	theta := math.Acos(vmath.Clamp(r3.Dot(normals[0], wrap), -1, 1)) / float64(n)
	if r3.Dot(tangents[0], r3.Cross(normals[0], wrap)) > 0 {
		theta = -theta
	}
	for i := 1; i < n; i++ {
		normals[i] = r3.NewRotation(theta*float64(i), tangents[i]).Rotate(normals[i])
		binormals[i] = r3.Unit(r3.Cross(tangents[i], normals[i]))
	}

	return normals, binormals
}

// transport rotates normal by the rotation taking tangent from to tangent to
func transport(normal, from, to r3.Vec) r3.Vec {
	axis := r3.Cross(from, to)
	if r3.Norm(axis) <= vmath.RayEpsilon {
		return normal
	}
	angle := math.Acos(vmath.Clamp(r3.Dot(from, to), -1, 1))
	return r3.NewRotation(angle, r3.Unit(axis)).Rotate(normal)
}

// initialNormal picks a vector perpendicular to t along its smallest component
func initialNormal(t r3.Vec) r3.Vec {
	ax, ay, az := math.Abs(t.X), math.Abs(t.Y), math.Abs(t.Z)
	axis := r3.Vec{X: 1}
	if ay <= ax && ay <= az {
		axis = r3.Vec{Y: 1}
	} else if az <= ax && az <= ay {
		axis = r3.Vec{Z: 1}
	}
	v := r3.Unit(r3.Cross(t, axis))
	return r3.Unit(r3.Cross(t, v))
}
