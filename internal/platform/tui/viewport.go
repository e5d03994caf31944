package tui

import (
	"math"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/platform/textbox"
)

// Viewport is a core.Renderer that maps world space onto a character
// screen. It owns one text box per text position and keeps its reveal
// progress across frames.
type Viewport struct {
	screen   *core.Screen
	world    core.Vec2
	maxLines int
	dwell    float64

	boxes map[core.Vec2]*textbox.Box
	drawn map[core.Vec2]bool
}

// NewViewport creates a viewport drawing into screen.
func NewViewport(screen *core.Screen, maxLines int, dwell float64) *Viewport {
	return &Viewport{
		screen:   screen,
		world:    core.V(1, 1),
		maxLines: maxLines,
		dwell:    dwell,
		boxes:    make(map[core.Vec2]*textbox.Box),
		drawn:    make(map[core.Vec2]bool),
	}
}

// Begin starts a frame for a world of the given size.
func (v *Viewport) Begin(world core.Vec2) {
	if world.X > 0 && world.Y > 0 {
		v.world = world
	}
	clear(v.drawn)
}

// End finishes a frame. Text boxes not drawn this frame are dropped, so a
// message shown again later reveals from the start.
func (v *Viewport) End() {
	for pos := range v.boxes {
		if !v.drawn[pos] {
			delete(v.boxes, pos)
		}
	}
}

// Advance moves every text box forward by dt seconds.
func (v *Viewport) Advance(dt float64) {
	for _, b := range v.boxes {
		b.Advance(dt)
	}
}

// Box returns the text box at a world position, or nil.
func (v *Viewport) Box(pos core.Vec2) *textbox.Box {
	return v.boxes[pos]
}

func (v *Viewport) scale() (float64, float64) {
	return float64(v.screen.Width()) / v.world.X, float64(v.screen.Height()) / v.world.Y
}

// ToCell converts a world point to a cell, flipping y.
func (v *Viewport) ToCell(p core.Vec2) (int, int) {
	sx, sy := v.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor((v.world.Y - p.Y) * sy))
}

// Clear fills the screen with a backdrop color.
func (v *Viewport) Clear(bg core.Color) {
	v.screen.Fill(' ', bg)
}

// DrawRect fills the cells covered by a rectangle centered at pos. Anything
// visible covers at least one cell.
func (v *Viewport) DrawRect(pos, size core.Vec2, c core.Color) {
	box := core.BoxAt(pos, size)
	x0, y0 := v.ToCell(core.V(box.Left(), box.Top()))
	x1, y1 := v.ToCell(core.V(box.Right(), box.Bottom()))
	w := core.Max(1, x1-x0)
	h := core.Max(1, y1-y0)
	v.screen.DrawRect(core.NewRect(x0, y0, w, h), '█', c)
}

// moreMarker follows a full page when the message continues.
const moreMarker = '▼'

// DrawText draws text with its top-left corner at pos through the text box
// bound to that position.
func (v *Viewport) DrawText(text string, pos core.Vec2, maxWidth, scrollSpeed float64) {
	sx, _ := v.scale()
	x, y := v.ToCell(pos)
	x = core.Clamp(x, 0, core.Max(0, v.screen.Width()-1))
	cols := core.Clamp(int(maxWidth*sx), 1, core.Max(1, v.screen.Width()-x))

	b, ok := v.boxes[pos]
	if !ok || b.Width != cols {
		b = textbox.New(cols, v.maxLines, v.dwell)
		v.boxes[pos] = b
	}
	b.SetText(text, scrollSpeed)
	v.drawn[pos] = true

	lines := b.Lines()
	for i, line := range lines {
		v.screen.DrawText(x, y+i, line, core.ColorText)
	}
	if b.More() {
		v.screen.SetCell(x+cols-1, y+len(lines), moreMarker, core.ColorText)
	}
}
