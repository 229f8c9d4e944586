// Package scene assembles the flythrough: path, tube, boxes, camera and projectiles.
package scene

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/vi-tunnel/camera"
	"github.com/lixenwraith/vi-tunnel/geometry"
	"github.com/lixenwraith/vi-tunnel/hit"
	"github.com/lixenwraith/vi-tunnel/input"
	"github.com/lixenwraith/vi-tunnel/palette"
	"github.com/lixenwraith/vi-tunnel/parameter"
	"github.com/lixenwraith/vi-tunnel/path"
	"github.com/lixenwraith/vi-tunnel/projectile"
	"github.com/lixenwraith/vi-tunnel/vmath"
)

// tubeID is reserved; boxes are numbered from 1
const tubeID = 0

// Config controls scene construction
type Config struct {
	Boxes           int
	Seed            int64
	ProjectileSpeed float64
	Spread          float64
	Points          []r3.Vec // nil uses path.DefaultLoop
}

// DefaultConfig returns the standard layout with seed 1
func DefaultConfig() Config {
	return Config{
		Boxes:           parameter.BoxCount,
		Seed:            1,
		ProjectileSpeed: parameter.ProjectileSpeed,
		Spread:          parameter.ProjectileSpread,
	}
}

// BoxTarget pairs a box shape with its hittable target
type BoxTarget struct {
	Shape  geometry.Box
	Target *hit.Target
}

// TubeTarget pairs the swept tube with its hittable target
type TubeTarget struct {
	Shape  *geometry.Tube
	Target *hit.Target
}

// Frame is everything produced by one tick
type Frame struct {
	Camera      camera.Pose
	Crosshair   r3.Vec
	Projectiles []projectile.Visual
	Fired       []projectile.ID
	Impacts     []projectile.Impact
	Collapsed   []int // target IDs hidden this tick
}

// Stats is a running summary for the HUD
type Stats struct {
	Shots      int
	BoxesHit   int
	BoxesTotal int
	Live       int
}

// Scene owns all targets; the hit tester and projectiles only reference them
type Scene struct {
	spline  *path.Spline
	rig     *camera.Rig
	tester  *hit.Tester
	manager *projectile.Manager

	tube  TubeTarget
	boxes []BoxTarget

	pose     camera.Pose
	shots    int
	boxesHit int
}

// New builds a scene; all randomness derives from cfg.Seed
func New(cfg Config) (*Scene, error) {
	points := cfg.Points
	if points == nil {
		points = path.DefaultLoop()
	}
	spline, err := path.NewSpline(points)
	if err != nil {
		return nil, fmt.Errorf("scene path: %w", err)
	}
	if cfg.Boxes < 0 {
		return nil, fmt.Errorf("scene boxes: negative count %d", cfg.Boxes)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	s := &Scene{
		spline: spline,
		rig:    camera.NewRig(spline),
		tester: hit.NewTester(),
	}

	tube := geometry.NewTube(spline, parameter.TubeTubularSegments, parameter.TubeRadius, parameter.TubeRadialSegments)
	s.tube = TubeTarget{
		Shape:  tube,
		Target: hit.NewTarget(tubeID, hit.KindTube, tube.Mesh, palette.FromArray(parameter.TubeColor)),
	}
	s.tester.Register(s.tube.Target)

	s.boxes = make([]BoxTarget, 0, cfg.Boxes)
	for i := 0; i < cfg.Boxes; i++ {
		p := vmath.Wrap01(float64(i)/float64(cfg.Boxes) + rng.Float64()*parameter.BoxParamJitter)
		pos := spline.PositionAt(p)
		pos.X += rng.Float64() - parameter.BoxOffsetBias
		pos.Z += rng.Float64() - parameter.BoxOffsetBias

		rot := geometry.Euler{
			X: rng.Float64() * 2 * math.Pi,
			Y: rng.Float64() * 2 * math.Pi,
			Z: rng.Float64() * 2 * math.Pi,
		}
		shape := geometry.NewBox(pos, parameter.BoxSize, rot)
		color := palette.FromHSL(parameter.BoxHueBase-p, 1, 0.5)

		bt := BoxTarget{
			Shape:  shape,
			Target: hit.NewTarget(i+1, hit.KindBox, shape.Mesh(), color),
		}
		s.boxes = append(s.boxes, bt)
		s.tester.Register(bt.Target)
	}

	opts := []projectile.Option{projectile.WithSpeed(cfg.ProjectileSpeed)}
	if cfg.Spread > 0 {
		// Separate stream so spread does not disturb the layout
		opts = append(opts, projectile.WithSpread(cfg.Spread, rand.New(rand.NewSource(cfg.Seed+1))))
	}
	s.manager = projectile.NewManager(s.tester, opts...)
	s.pose = s.rig.Update(0)

	return s, nil
}

// Tick advances the scene to nowMs
// Order: camera pose, then fire requests against the new pose, then projectile update
func (s *Scene) Tick(nowMs float64, in input.Snapshot, lens camera.Lens) Frame {
	s.pose = s.rig.Update(nowMs)

	f := Frame{
		Camera:    s.pose,
		Crosshair: lens.Unproject(s.pose, in.AimX, in.AimY, parameter.CrosshairDistance),
	}

	for i := 0; i < in.Fires; i++ {
		f.Fired = append(f.Fired, s.manager.Fire(f.Crosshair, s.pose))
	}
	s.shots += len(f.Fired)

	rep := s.manager.Update()
	f.Impacts = rep.Impacts
	for _, t := range rep.Collapsed {
		f.Collapsed = append(f.Collapsed, t.ID)
	}
	s.boxesHit += len(rep.Collapsed)

	f.Projectiles = s.manager.Visuals()
	return f
}

// Pose returns the pose from the last tick
func (s *Scene) Pose() camera.Pose {
	return s.pose
}

// Spline returns the camera path
func (s *Scene) Spline() *path.Spline {
	return s.spline
}

// Tube returns the tube and its target
func (s *Scene) Tube() TubeTarget {
	return s.tube
}

// Boxes returns boxes in registration order
func (s *Scene) Boxes() []BoxTarget {
	return s.boxes
}

// Projectile looks up a live projectile by id
func (s *Scene) Projectile(id projectile.ID) (*projectile.Projectile, bool) {
	return s.manager.Get(id)
}

// Stats returns running totals for the HUD
func (s *Scene) Stats() Stats {
	return Stats{
		Shots:      s.shots,
		BoxesHit:   s.boxesHit,
		BoxesTotal: len(s.boxes),
		Live:       s.manager.Live(),
	}
}
