// Package geometry builds the triangle meshes and wireframes of the tunnel scene.
package geometry

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/vi-tunnel/hit"
)

// Euler is an X, then Y, then Z rotation in radians
type Euler struct {
	X, Y, Z float64
}

// Apply rotates v about the origin
func (e Euler) Apply(v r3.Vec) r3.Vec {
	if e.X != 0 {
		v = r3.NewRotation(e.X, r3.Vec{X: 1}).Rotate(v)
	}
	if e.Y != 0 {
		v = r3.NewRotation(e.Y, r3.Vec{Y: 1}).Rotate(v)
	}
	if e.Z != 0 {
		v = r3.NewRotation(e.Z, r3.Vec{Z: 1}).Rotate(v)
	}
	return v
}

// BoxEdges indexes corner pairs for the 12 wireframe edges
var BoxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, // -Z face
	{4, 5}, {5, 7}, {7, 6}, {6, 4}, // +Z face
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// boxFaces lists each face as two triangles over corner indices
var boxFaces = [12][3]int{
	{0, 2, 1}, {1, 2, 3}, // -Z
	{4, 5, 6}, {5, 7, 6}, // +Z
	{0, 1, 4}, {1, 5, 4}, // -Y
	{2, 6, 3}, {3, 6, 7}, // +Y
	{0, 4, 2}, {2, 4, 6}, // -X
	{1, 3, 5}, {3, 7, 5}, // +X
}

// Box is an oriented cube
type Box struct {
	Center   r3.Vec
	Size     float64
	Rotation Euler
	Corners  [8]r3.Vec
}

// NewBox computes world corners; corner bit 0 = +X, bit 1 = +Y, bit 2 = +Z
func NewBox(center r3.Vec, size float64, rot Euler) Box {
	b := Box{Center: center, Size: size, Rotation: rot}
	h := size / 2
	for i := 0; i < 8; i++ {
		local := r3.Vec{X: -h, Y: -h, Z: -h}
		if i&1 != 0 {
			local.X = h
		}
		if i&2 != 0 {
			local.Y = h
		}
		if i&4 != 0 {
			local.Z = h
		}
		b.Corners[i] = r3.Add(center, rot.Apply(local))
	}
	return b
}

// ScaledCorners returns corners scaled about the center, used for collapse display
func (b Box) ScaledCorners(scale float64) [8]r3.Vec {
	var out [8]r3.Vec
	for i, c := range b.Corners {
		out[i] = r3.Add(b.Center, r3.Scale(scale, r3.Sub(c, b.Center)))
	}
	return out
}

// Mesh returns the 12 face triangles
func (b Box) Mesh() *hit.Mesh {
	tris := make([]r3.Triangle, 0, len(boxFaces))
	for _, f := range boxFaces {
		tris = append(tris, r3.Triangle{b.Corners[f[0]], b.Corners[f[1]], b.Corners[f[2]]})
	}
	return hit.NewMesh(tris)
}
