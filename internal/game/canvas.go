package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"flowfx/internal/effects"
)

// whiteImage backs DrawTriangles calls; the 1px inset avoids bleeding at
// the texture edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)

	glyphFace = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas implements effects.Canvas on an ebiten image using the vector
// package. PushGroup redirects drawing to an offscreen image of the same
// size; PopGroup composites it back with the given opacity.
type Canvas struct {
	dst    *ebiten.Image
	groups []*ebiten.Image
}

// NewCanvas wraps the frame's destination image.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// Retarget points the canvas at a new destination image. Call at the top
// of each Draw since ebiten may hand out a different screen image.
func (c *Canvas) Retarget(dst *ebiten.Image) {
	c.dst = dst
	c.groups = c.groups[:0]
}

func (c *Canvas) target() *ebiten.Image {
	if n := len(c.groups); n > 0 {
		return c.groups[n-1]
	}
	return c.dst
}

func (c *Canvas) FillCircle(x, y, r float64, col colorful.Color, alpha float64) {
	vector.DrawFilledCircle(c.target(), float32(x), float32(y), float32(r), toRGBA(col, alpha), true)
}

func (c *Canvas) StrokeCircle(x, y, r, width float64, col colorful.Color, alpha float64) {
	vector.StrokeCircle(c.target(), float32(x), float32(y), float32(r), float32(width), toRGBA(col, alpha), true)
}

func (c *Canvas) FillRect(x, y, w, h float64, col colorful.Color, alpha float64) {
	vector.DrawFilledRect(c.target(), float32(x), float32(y), float32(w), float32(h), toRGBA(col, alpha), true)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, col colorful.Color, alpha float64) {
	vector.StrokeRect(c.target(), float32(x), float32(y), float32(w), float32(h), float32(width), toRGBA(col, alpha), true)
}

func (c *Canvas) StrokeRoundedRect(x, y, w, h, radius, width float64, col colorful.Color, alpha float64) {
	r := math.Min(radius, math.Min(w, h)/2)
	pts := roundedRectOutline(x, y, w, h, r)
	c.strokeClosed(pts, width, col, alpha)
}

func (c *Canvas) FillRotatedRect(cx, cy, w, h, angle float64, col colorful.Color, alpha float64) {
	sin, cos := math.Sincos(angle)
	hw, hh := w/2, h/2
	corners := [4]effects.Point{
		{X: cx + (-hw*cos - -hh*sin), Y: cy + (-hw*sin + -hh*cos)},
		{X: cx + (hw*cos - -hh*sin), Y: cy + (hw*sin + -hh*cos)},
		{X: cx + (hw*cos - hh*sin), Y: cy + (hw*sin + hh*cos)},
		{X: cx + (-hw*cos - hh*sin), Y: cy + (-hw*sin + hh*cos)},
	}
	c.fillFan(corners[:], col, alpha)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col colorful.Color, alpha float64) {
	vector.StrokeLine(c.target(), float32(x1), float32(y1), float32(x2), float32(y2), float32(width), toRGBA(col, alpha), true)
}

func (c *Canvas) StrokePolyline(pts []effects.Point, width float64, col colorful.Color, alpha float64) {
	if len(pts) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	c.strokePath(&path, width, col, alpha)
}

func (c *Canvas) Glyph(ch rune, x, y, size float64, col colorful.Color, alpha float64) {
	op := &text.DrawOptions{}
	scale := size / 13.0
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-size) // (x, y) is the glyph baseline
	op.ColorScale.ScaleWithColor(toRGBA(col, alpha))
	text.Draw(c.target(), string(ch), glyphFace, op)
}

// FillRadialGradient approximates the gradient with concentric ellipses,
// outermost first, sampling the stop ramp at each ring.
func (c *Canvas) FillRadialGradient(x, y, radius, stretchY float64, stops []effects.GradientStop) {
	if len(stops) == 0 || radius <= 0 {
		return
	}
	const rings = 6
	for i := rings; i >= 1; i-- {
		pos := float64(i) / rings
		col, alpha := sampleStops(stops, pos)
		if alpha < 0.005 {
			continue
		}
		c.fillEllipse(x, y, radius*pos, radius*pos*stretchY, col, alpha/2)
	}
}

func (c *Canvas) PushGroup() {
	b := c.target().Bounds()
	c.groups = append(c.groups, ebiten.NewImage(b.Dx(), b.Dy()))
}

func (c *Canvas) PopGroup(alpha float64) {
	n := len(c.groups)
	if n == 0 {
		return
	}
	img := c.groups[n-1]
	c.groups = c.groups[:n-1]
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	c.target().DrawImage(img, op)
	img.Deallocate()
}

// fillFan fills a convex polygon as a triangle fan around its first vertex.
func (c *Canvas) fillFan(pts []effects.Point, col colorful.Color, alpha float64) {
	if len(pts) < 3 {
		return
	}
	vs := make([]ebiten.Vertex, len(pts))
	r, g, b := vertexColor(col)
	for i, pt := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(pt.X), DstY: float32(pt.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: float32(clamp01(alpha)),
		}
	}
	is := make([]uint16, 0, (len(pts)-2)*3)
	for i := 2; i < len(pts); i++ {
		is = append(is, 0, uint16(i-1), uint16(i))
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	}
	c.target().DrawTriangles(vs, is, whiteSubImage, op)
}

func (c *Canvas) fillEllipse(cx, cy, rx, ry float64, col colorful.Color, alpha float64) {
	const segments = 32
	pts := make([]effects.Point, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = effects.Point{X: cx + math.Cos(a)*rx, Y: cy + math.Sin(a)*ry}
	}
	c.fillFan(pts, col, alpha)
}

func (c *Canvas) strokeClosed(pts []effects.Point, width float64, col colorful.Color, alpha float64) {
	if len(pts) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()
	c.strokePath(&path, width, col, alpha)
}

func (c *Canvas) strokePath(path *vector.Path, width float64, col colorful.Color, alpha float64) {
	sop := &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, sop)
	r, g, b := vertexColor(col)
	a := float32(clamp01(alpha))
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	}
	c.target().DrawTriangles(vs, is, whiteSubImage, op)
}

// roundedRectOutline samples the rounded rectangle border clockwise from
// the top-left corner's end.
func roundedRectOutline(x, y, w, h, r float64) []effects.Point {
	const arcSteps = 8
	var pts []effects.Point
	corner := func(cx, cy, from float64) {
		for i := 0; i <= arcSteps; i++ {
			a := from + (math.Pi/2)*float64(i)/arcSteps
			pts = append(pts, effects.Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r})
		}
	}
	corner(x+w-r, y+r, -math.Pi/2) // top-right
	corner(x+w-r, y+h-r, 0)       // bottom-right
	corner(x+r, y+h-r, math.Pi/2) // bottom-left
	corner(x+r, y+r, math.Pi)     // top-left
	return pts
}

func sampleStops(stops []effects.GradientStop, pos float64) (colorful.Color, float64) {
	if pos <= stops[0].Pos {
		return stops[0].Color, stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		if pos <= stops[i].Pos {
			lo, hi := stops[i-1], stops[i]
			span := hi.Pos - lo.Pos
			t := 0.0
			if span > 0 {
				t = (pos - lo.Pos) / span
			}
			return colorful.Color{
				R: lo.Color.R + (hi.Color.R-lo.Color.R)*t,
				G: lo.Color.G + (hi.Color.G-lo.Color.G)*t,
				B: lo.Color.B + (hi.Color.B-lo.Color.B)*t,
			}, lo.Alpha + (hi.Alpha-lo.Alpha)*t
		}
	}
	last := stops[len(stops)-1]
	return last.Color, last.Alpha
}

func toRGBA(c colorful.Color, alpha float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(alpha) * 255),
	}
}

func vertexColor(c colorful.Color) (r, g, b float32) {
	return float32(clamp01(c.R)), float32(clamp01(c.G)), float32(clamp01(c.B))
}
