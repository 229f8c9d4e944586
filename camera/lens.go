package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/vi-tunnel/parameter"
)

// worldUp is the camera roll reference
var worldUp = mgl64.Vec3{0, 1, 0}

// Lens is a perspective projection; Aspect is width over height in world terms
type Lens struct {
	FovY   float64 // degrees
	Aspect float64
	Near   float64
	Far    float64
}

// DefaultLens returns the standard lens for an aspect ratio
func DefaultLens(aspect float64) Lens {
	if aspect <= 0 {
		aspect = 1
	}
	return Lens{
		FovY:   parameter.CameraFovY,
		Aspect: aspect,
		Near:   parameter.CameraNear,
		Far:    parameter.CameraFar,
	}
}

func toMgl(v r3.Vec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// View returns the world-to-camera matrix for a pose
func (l Lens) View(p Pose) mgl64.Mat4 {
	eye := toMgl(p.Position)
	center := toMgl(p.Target)
	if eye.ApproxEqual(center) {
		center = eye.Add(mgl64.Vec3{0, 0, -1})
	}
	return mgl64.LookAtV(eye, center, worldUp)
}

// Projection returns the perspective matrix
func (l Lens) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(l.FovY), l.Aspect, l.Near, l.Far)
}

// ViewProjection returns projection * view
func (l Lens) ViewProjection(p Pose) mgl64.Mat4 {
	return l.Projection().Mul4(l.View(p))
}

// Project maps a world point to normalized device coordinates
// depth is the distance along the view axis; ok is false behind the near plane
func (l Lens) Project(p Pose, world r3.Vec) (x, y, depth float64, ok bool) {
	clip := l.ViewProjection(p).Mul4x1(toMgl(world).Vec4(1))
	w := clip.W()
	if w < l.Near {
		return 0, 0, w, false
	}
	return clip.X() / w, clip.Y() / w, w, true
}

// Unproject returns the world point dist units from the camera along the view ray
// through NDC (ndcX, ndcY)
func (l Lens) Unproject(p Pose, ndcX, ndcY, dist float64) r3.Vec {
	inv := l.ViewProjection(p).Inv()

	near := inv.Mul4x1(mgl64.Vec4{ndcX, ndcY, -1, 1})
	far := inv.Mul4x1(mgl64.Vec4{ndcX, ndcY, 1, 1})
	nearW := near.Vec3().Mul(1 / near.W())
	farW := far.Vec3().Mul(1 / far.W())

	dir := farW.Sub(nearW)
	if dir.Len() == 0 {
		return r3.Add(p.Position, r3.Scale(dist, p.Forward()))
	}
	return fromMgl(toMgl(p.Position).Add(dir.Normalize().Mul(dist)))
}
