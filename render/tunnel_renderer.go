// Package render draws a scene frame onto a tcell screen.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-tunnel/camera"
	"github.com/lixenwraith/vi-tunnel/geometry"
	"github.com/lixenwraith/vi-tunnel/palette"
	"github.com/lixenwraith/vi-tunnel/parameter"
	"github.com/lixenwraith/vi-tunnel/projectile"
	"github.com/lixenwraith/vi-tunnel/scene"
	"github.com/lixenwraith/vi-tunnel/vmath"
)

// Glyphs
const (
	glyphTube      = '·'
	glyphEdge      = '+'
	glyphShot      = '*'
	glyphBlast     = 'o'
	glyphBigBlast  = 'O'
	glyphCrosshair = '+'
)

// Status is HUD state owned by the frame loop
type Status struct {
	Stats  scene.Stats
	Paused bool
	Muted  bool
}

// Renderer draws frames onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	bg     tcell.Color
}

// NewRenderer creates a renderer drawing on screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		bg:     tcell.ColorBlack,
	}
}

// viewHeight is the drawable height above the HUD
func viewHeight(h int) int {
	vh := h - parameter.HudRows
	if vh < 1 {
		vh = 1
	}
	return vh
}

// LensFor returns the lens matching a w x h cell screen, corrected for tall cells
func LensFor(w, h int) camera.Lens {
	if w < 1 {
		w = 1
	}
	return camera.DefaultLens(float64(w) / (float64(viewHeight(h)) * parameter.CellAspect))
}

// CellToNDC maps the center of cell (x, y) to normalized device coordinates
func CellToNDC(x, y, w, h int) (float64, float64) {
	if w < 1 {
		w = 1
	}
	vh := viewHeight(h)
	nx := (float64(x)+0.5)/float64(w)*2 - 1
	ny := 1 - (float64(y)+0.5)/float64(vh)*2
	return vmath.Clamp(nx, -1, 1), vmath.Clamp(ny, -1, 1)
}

// NDCToCell maps NDC to a cell, which may lie outside the view
func NDCToCell(nx, ny float64, w, h int) (int, int) {
	vh := viewHeight(h)
	x := int(math.Floor((nx + 1) / 2 * float64(w)))
	y := int(math.Floor((1 - ny) / 2 * float64(vh)))
	return x, y
}

// Lens returns the lens for the current screen size
func (r *Renderer) Lens() camera.Lens {
	w, h := r.screen.Size()
	return LensFor(w, h)
}

// Draw renders one frame and shows it
// Paint order: tube, boxes, projectiles, crosshair, HUD
func (r *Renderer) Draw(s *scene.Scene, f scene.Frame, st Status) {
	r.screen.Clear()
	w, h := r.screen.Size()
	lens := LensFor(w, h)

	r.drawTube(s.Tube(), f.Camera, lens, w, h)
	for _, b := range s.Boxes() {
		r.drawBox(b, f.Camera, lens, w, h)
	}
	for _, v := range f.Projectiles {
		r.drawProjectile(v, f.Camera, lens, w, h)
	}
	r.drawCrosshair(f, lens, w, h)
	r.drawHUD(st, w, h)

	r.screen.Show()
}

func (r *Renderer) style(c palette.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(r.bg)
}

// put writes a glyph if the cell lies inside the view
func (r *Renderer) put(x, y, w, h int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= w || y >= viewHeight(h) {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func depthFade(c palette.RGB, depth float64) palette.RGB {
	f := 1 - vmath.Clamp(depth/parameter.RenderFadeDepth, 0, 1)
	if f < parameter.RenderMinFade {
		f = parameter.RenderMinFade
	}
	return c.Scale(f)
}

func (r *Renderer) drawTube(tube scene.TubeTarget, pose camera.Pose, lens camera.Lens, w, h int) {
	if tube.Shape == nil {
		return
	}
	for i := 0; i < len(tube.Shape.Rings); i += parameter.RenderRingStride {
		for _, v := range tube.Shape.Rings[i] {
			nx, ny, depth, ok := lens.Project(pose, v)
			if !ok || depth > lens.Far {
				continue
			}
			x, y := NDCToCell(nx, ny, w, h)
			r.put(x, y, w, h, glyphTube, r.style(depthFade(tube.Target.Color, depth)))
		}
	}
}

func (r *Renderer) drawBox(b scene.BoxTarget, pose camera.Pose, lens camera.Lens, w, h int) {
	scale := b.Target.Companion.Scale
	if scale <= 0 {
		return
	}
	corners := b.Shape.ScaledCorners(scale)

	type cell struct {
		x, y  int
		depth float64
		ok    bool
	}
	var proj [8]cell
	for i, c := range corners {
		nx, ny, depth, ok := lens.Project(pose, c)
		if ok && (math.Abs(nx) > parameter.RenderEdgeClip || math.Abs(ny) > parameter.RenderEdgeClip) {
			ok = false
		}
		x, y := NDCToCell(nx, ny, w, h)
		proj[i] = cell{x: x, y: y, depth: depth, ok: ok}
	}

	for _, e := range geometry.BoxEdges {
		a, c := proj[e[0]], proj[e[1]]
		if !a.ok || !c.ok {
			continue
		}
		style := r.style(depthFade(b.Target.Color, (a.depth+c.depth)/2))
		lt := NewLineTraverser(a.x, a.y, c.x, c.y)
		for lt.Next() {
			x, y := lt.Pos()
			r.put(x, y, w, h, glyphEdge, style)
		}
	}
}

func (r *Renderer) drawProjectile(v projectile.Visual, pose camera.Pose, lens camera.Lens, w, h int) {
	if v.State == projectile.StateDead || v.Opacity <= 0 {
		return
	}
	nx, ny, _, ok := lens.Project(pose, v.Position)
	if !ok {
		return
	}
	x, y := NDCToCell(nx, ny, w, h)

	glyph := glyphShot
	switch {
	case v.Scale >= 3:
		glyph = glyphBigBlast
	case v.Scale > 1:
		glyph = glyphBlast
	}
	style := r.style(v.Color.Scale(v.Opacity))
	r.put(x, y, w, h, glyph, style)

	// Exploding shots spread over neighbouring cells as they grow
	if v.State != projectile.StateExploding {
		return
	}
	reach := int(v.Scale) - 1
	for d := 1; d <= reach; d++ {
		r.put(x-d, y, w, h, glyphBlast, style)
		r.put(x+d, y, w, h, glyphBlast, style)
	}
}

func (r *Renderer) drawCrosshair(f scene.Frame, lens camera.Lens, w, h int) {
	nx, ny, _, ok := lens.Project(f.Camera, f.Crosshair)
	if !ok {
		return
	}
	x, y := NDCToCell(nx, ny, w, h)
	r.put(x, y, w, h, glyphCrosshair, r.style(palette.FromArray(parameter.CrosshairColor)))
}

func (r *Renderer) drawHUD(st Status, w, h int) {
	y := h - 1
	if y < 0 {
		return
	}
	style := r.style(palette.FromArray(parameter.HudColor))

	text := fmt.Sprintf(" shots %d  boxes %d/%d  live %d",
		st.Stats.Shots, st.Stats.BoxesHit, st.Stats.BoxesTotal, st.Stats.Live)
	if st.Paused {
		text += "  [PAUSED]"
	}
	if st.Muted {
		text += "  [MUTED]"
	}
	text += "  space:fire  p:pause  m:mute  q:quit"

	x := 0
	for _, ch := range text {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
