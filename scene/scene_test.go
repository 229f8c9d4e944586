package scene

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/vi-tunnel/camera"
	"github.com/lixenwraith/vi-tunnel/hit"
	"github.com/lixenwraith/vi-tunnel/input"
	"github.com/lixenwraith/vi-tunnel/projectile"
)

func newScene(t *testing.T, seed int64) *Scene {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Points = []r3.Vec{{X: 1}}
	if _, err := New(cfg); err == nil {
		t.Error("Expected error for a single control point")
	}

	cfg = DefaultConfig()
	cfg.Boxes = -1
	if _, err := New(cfg); err == nil {
		t.Error("Expected error for negative box count")
	}
}

func TestLayoutDeterministic(t *testing.T) {
	a := newScene(t, 42)
	b := newScene(t, 42)
	c := newScene(t, 43)

	if len(a.Boxes()) != DefaultConfig().Boxes {
		t.Fatalf("Expected %d boxes, got %d", DefaultConfig().Boxes, len(a.Boxes()))
	}

	differs := false
	for i := range a.Boxes() {
		ba, bb, bc := a.Boxes()[i], b.Boxes()[i], c.Boxes()[i]
		if ba.Shape.Center != bb.Shape.Center || ba.Target.Color != bb.Target.Color {
			t.Errorf("Box %d differs between equal seeds", i)
		}
		if ba.Shape.Center != bc.Shape.Center {
			differs = true
		}
		if ba.Target.ID != i+1 {
			t.Errorf("Expected box %d to have ID %d, got %d", i, i+1, ba.Target.ID)
		}
	}
	if !differs {
		t.Error("Expected different seeds to produce different layouts")
	}
}

func TestTubeRegisteredFirst(t *testing.T) {
	s := newScene(t, 1)
	targets := s.tester.Targets()
	if len(targets) != len(s.Boxes())+1 {
		t.Fatalf("Expected %d targets, got %d", len(s.Boxes())+1, len(targets))
	}
	if targets[0] != s.Tube().Target || targets[0].Kind != hit.KindTube {
		t.Error("Expected tube to be the first registered target")
	}
}

func TestTickFires(t *testing.T) {
	s := newScene(t, 1)
	lens := camera.DefaultLens(1.5)

	f := s.Tick(16, input.Snapshot{Fires: 3}, lens)
	if len(f.Fired) != 3 {
		t.Fatalf("Expected 3 fired, got %d", len(f.Fired))
	}
	if len(f.Projectiles) != 3 {
		t.Errorf("Expected 3 projectile visuals, got %d", len(f.Projectiles))
	}
	st := s.Stats()
	if st.Shots != 3 || st.Live != 3 || st.BoxesTotal != len(s.Boxes()) {
		t.Errorf("Unexpected stats %+v", st)
	}

	f = s.Tick(32, input.Snapshot{}, lens)
	if len(f.Fired) != 0 {
		t.Errorf("Expected no new shots, got %d", len(f.Fired))
	}
}

func TestTickLensDoesNotMoveCamera(t *testing.T) {
	a := newScene(t, 1)
	b := newScene(t, 1)

	fa := a.Tick(500, input.Snapshot{}, camera.DefaultLens(1))
	fb := b.Tick(500, input.Snapshot{}, camera.DefaultLens(3))
	if fa.Camera != fb.Camera {
		t.Errorf("Expected same pose for different lenses, got %+v and %+v", fa.Camera, fb.Camera)
	}
}

func TestForwardShotImpactsTube(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Boxes = 0
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	lens := camera.DefaultLens(1.5)

	f := s.Tick(0, input.Snapshot{Fires: 1}, lens)
	id := f.Fired[0]
	p, ok := s.Projectile(id)
	if !ok || !p.HasImpact {
		t.Fatal("Expected forward shot inside the tube to resolve an impact")
	}
	if p.Target != s.Tube().Target {
		t.Error("Expected the tube as impact target")
	}

	ticks := int(math.Ceil(p.ImpactDistance()/cfg.ProjectileSpeed)) + 1
	impacts := len(f.Impacts)
	for i := 1; i <= ticks; i++ {
		f = s.Tick(float64(i)*16, input.Snapshot{}, lens)
		impacts += len(f.Impacts)
		if len(f.Collapsed) != 0 {
			t.Errorf("Expected tube never to collapse, got %v", f.Collapsed)
		}
	}
	if impacts != 1 {
		t.Errorf("Expected exactly 1 impact, got %d", impacts)
	}
	if !s.Tube().Target.Visible() {
		t.Error("Expected tube to stay visible")
	}
}

// findVisibleBox returns a seeded scene and the NDC aim of a box directly hittable at t=0
func findVisibleBox(t *testing.T, lens camera.Lens) (*Scene, BoxTarget, float64, float64) {
	t.Helper()
	for seed := int64(1); seed <= 20; seed++ {
		s := newScene(t, seed)
		pose := s.Pose()
		for _, b := range s.Boxes() {
			dir := r3.Sub(b.Shape.Center, pose.Position)
			h, ok := s.tester.Intersect(pose.Position, dir)
			if !ok || h.Target != b.Target {
				continue
			}
			x, y, _, visible := lens.Project(pose, b.Shape.Center)
			if !visible || math.Abs(x) > 0.9 || math.Abs(y) > 0.9 {
				continue
			}
			return s, b, x, y
		}
	}
	t.Fatal("Expected some seed to expose a box in view")
	return nil, BoxTarget{}, 0, 0
}

func TestShotCollapsesBox(t *testing.T) {
	lens := camera.DefaultLens(1.5)
	s, box, x, y := findVisibleBox(t, lens)

	f := s.Tick(0, input.Snapshot{AimX: x, AimY: y, Fires: 1}, lens)
	p, ok := s.Projectile(f.Fired[0])
	if !ok || p.Target != box.Target {
		t.Fatalf("Expected shot to resolve to box %d", box.Target.ID)
	}

	collapsed := f.Collapsed
	for i := 1; i <= 200 && len(collapsed) == 0; i++ {
		f = s.Tick(0, input.Snapshot{AimX: x, AimY: y}, lens)
		collapsed = append(collapsed, f.Collapsed...)
	}

	if len(collapsed) != 1 || collapsed[0] != box.Target.ID {
		t.Fatalf("Expected box %d collapsed, got %v", box.Target.ID, collapsed)
	}
	if box.Target.Visible() || box.Target.Companion.Scale != 0 {
		t.Error("Expected collapsed box hidden with zero companion scale")
	}
	if s.Stats().BoxesHit != 1 {
		t.Errorf("Expected 1 box hit, got %d", s.Stats().BoxesHit)
	}

	// A second shot along the same line passes through the hidden box
	f = s.Tick(0, input.Snapshot{AimX: x, AimY: y, Fires: 1}, lens)
	p, ok = s.Projectile(f.Fired[0])
	if ok && p.Target == box.Target {
		t.Error("Expected hidden box to be ignored by later shots")
	}
	if p != nil && p.State() == projectile.StateDead {
		t.Error("Expected fresh shot to be alive")
	}
}
