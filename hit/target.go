// Package hit resolves ray queries against the collidable parts of the scene.
package hit

import "github.com/lixenwraith/vi-tunnel/palette"

// Kind identifies what a target is
type Kind uint8

const (
	KindTube Kind = iota
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindTube:
		return "tube"
	case KindBox:
		return "box"
	default:
		return "unknown"
	}
}

// Companion is the decorative wireframe shown for a target
// Scale 1 is fully shown, 0 is collapsed
type Companion struct {
	Scale float64
}

// Target is a hittable piece of scene geometry
type Target struct {
	ID        int
	Kind      Kind
	Mesh      *Mesh
	Color     palette.RGB
	Companion Companion

	hidden bool
}

// NewTarget creates a visible target with a full-size companion
func NewTarget(id int, kind Kind, mesh *Mesh, color palette.RGB) *Target {
	return &Target{
		ID:        id,
		Kind:      kind,
		Mesh:      mesh,
		Color:     color,
		Companion: Companion{Scale: 1},
	}
}

// Visible reports whether the target still takes part in hit-testing
func (t *Target) Visible() bool {
	return !t.hidden
}

// Collapse hides a box and scales its companion to zero
// Returns false without side effects for the tube or an already collapsed box
func (t *Target) Collapse() bool {
	if t.Kind != KindBox || t.hidden {
		return false
	}
	t.hidden = true
	t.Companion.Scale = 0
	return true
}
