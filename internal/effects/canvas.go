package effects

import "github.com/lucasb-eyer/go-colorful"

// Point is a position in canvas pixel space.
type Point struct {
	X, Y float64
}

// GradientStop is one color stop of a radial gradient, Pos in [0,1] from
// center to rim.
type GradientStop struct {
	Pos   float64
	Color colorful.Color
	Alpha float64
}

// Canvas is the immediate-mode drawing surface the effects render onto.
// Implementations draw in canvas pixel space with straight alpha blending.
// PushGroup/PopGroup bracket drawing that must be composited as one unit
// (block entrance fades).
type Canvas interface {
	FillCircle(x, y, r float64, c colorful.Color, alpha float64)
	StrokeCircle(x, y, r, width float64, c colorful.Color, alpha float64)
	FillRect(x, y, w, h float64, c colorful.Color, alpha float64)
	StrokeRect(x, y, w, h, width float64, c colorful.Color, alpha float64)
	StrokeRoundedRect(x, y, w, h, radius, width float64, c colorful.Color, alpha float64)
	FillRotatedRect(cx, cy, w, h, angle float64, c colorful.Color, alpha float64)
	StrokeLine(x1, y1, x2, y2, width float64, c colorful.Color, alpha float64)
	StrokePolyline(pts []Point, width float64, c colorful.Color, alpha float64)
	Glyph(ch rune, x, y, size float64, c colorful.Color, alpha float64)

	// FillRadialGradient paints a radial glow centered at (x,y) with the
	// given rim radius, stretched vertically by stretchY around the center.
	FillRadialGradient(x, y, radius, stretchY float64, stops []GradientStop)

	PushGroup()
	PopGroup(alpha float64)
}
