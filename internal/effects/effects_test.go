package effects

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// fakeClock is a manually advanced time source shared by the tests so
// nothing has to sleep.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// tick is one 33ms animation frame.
const tick = 33 * time.Millisecond

// recordCanvas counts draw calls and remembers the colors used.
type recordCanvas struct {
	calls  int
	colors []colorful.Color
}

func (r *recordCanvas) mark(c colorful.Color) {
	r.calls++
	r.colors = append(r.colors, c)
}

func (r *recordCanvas) FillCircle(x, y, rad float64, c colorful.Color, alpha float64) { r.mark(c) }
func (r *recordCanvas) StrokeCircle(x, y, rad, w float64, c colorful.Color, alpha float64) {
	r.mark(c)
}
func (r *recordCanvas) FillRect(x, y, w, h float64, c colorful.Color, alpha float64)      { r.mark(c) }
func (r *recordCanvas) StrokeRect(x, y, w, h, sw float64, c colorful.Color, alpha float64) {
	r.mark(c)
}
func (r *recordCanvas) StrokeRoundedRect(x, y, w, h, rad, sw float64, c colorful.Color, alpha float64) {
	r.mark(c)
}
func (r *recordCanvas) FillRotatedRect(cx, cy, w, h, angle float64, c colorful.Color, alpha float64) {
	r.mark(c)
}
func (r *recordCanvas) StrokeLine(x1, y1, x2, y2, w float64, c colorful.Color, alpha float64) {
	r.mark(c)
}
func (r *recordCanvas) StrokePolyline(pts []Point, w float64, c colorful.Color, alpha float64) {
	r.mark(c)
}
func (r *recordCanvas) Glyph(ch rune, x, y, size float64, c colorful.Color, alpha float64) {
	r.mark(c)
}
func (r *recordCanvas) FillRadialGradient(x, y, radius, stretchY float64, stops []GradientStop) {
	r.calls++
}
func (r *recordCanvas) PushGroup()             {}
func (r *recordCanvas) PopGroup(alpha float64) {}

// panicCanvas blows up on every draw call.
type panicCanvas struct {
	recordCanvas
}

func (p *panicCanvas) FillCircle(x, y, r float64, c colorful.Color, alpha float64) {
	panic("surface gone")
}

func (p *panicCanvas) Glyph(ch rune, x, y, size float64, c colorful.Color, alpha float64) {
	panic("surface gone")
}
