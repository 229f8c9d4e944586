package hit

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Hit is the nearest intersection of a ray query
type Hit struct {
	Point    r3.Vec
	Distance float64
	Target   *Target
}

// Intersect returns the nearest hit along the ray among visible candidates
// Candidates are tested in order; on equal distance the earlier one wins
// direction need not be normalized
func Intersect(origin, direction r3.Vec, candidates []*Target) (Hit, bool) {
	if len(candidates) == 0 || r3.Norm2(direction) == 0 {
		return Hit{}, false
	}
	dir := r3.Unit(direction)

	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, t := range candidates {
		if t == nil || !t.Visible() {
			continue
		}
		d, ok := t.Mesh.Intersect(origin, dir)
		if !ok || d >= best.Distance {
			continue
		}
		best.Distance = d
		best.Target = t
		found = true
	}

	if !found {
		return Hit{}, false
	}
	best.Point = r3.Add(origin, r3.Scale(best.Distance, dir))
	return best, true
}

// Tester holds non-owning references to targets in registration order
type Tester struct {
	targets []*Target
}

// NewTester creates an empty tester
func NewTester() *Tester {
	return &Tester{}
}

// Register appends targets to the candidate list
func (h *Tester) Register(targets ...*Target) {
	h.targets = append(h.targets, targets...)
}

// Targets returns the registered targets
func (h *Tester) Targets() []*Target {
	return h.targets
}

// Intersect queries all registered targets
func (h *Tester) Intersect(origin, direction r3.Vec) (Hit, bool) {
	return Intersect(origin, direction, h.targets)
}
