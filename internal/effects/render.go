package effects

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// renderCtx carries the per-frame values a style renderer needs.
type renderCtx struct {
	cv      Canvas
	color   colorful.Color
	w, h    float64
	dt      float64
	elapsed float64
	rng     *rand.Rand
}

func renderMatrixRain(rc *renderCtx, p *particle, alpha float64) {
	rc.cv.Glyph(p.glyph, p.x, p.y, p.size, rc.color, alpha)
}

// renderDot draws snow and dust: a plain filled circle.
func renderDot(rc *renderCtx, p *particle, alpha float64) {
	rc.cv.FillCircle(p.x, p.y, p.size, rc.color, alpha)
}

func renderBubble(rc *renderCtx, p *particle, alpha float64) {
	rc.cv.FillCircle(p.x, p.y, p.size, rc.color, alpha*0.3)
	rc.cv.StrokeCircle(p.x, p.y, p.size, 0.8, rc.color, alpha)
}

func renderConfetti(rc *renderCtx, p *particle, alpha float64) {
	// Hue varies slightly per particle based on position.
	c := colorful.Color{
		R: math.Min(1, rc.color.R+math.Mod(p.x, 0.4)-0.2),
		G: math.Min(1, rc.color.G+math.Mod(p.y, 0.3)-0.15),
		B: rc.color.B,
	}
	rc.cv.FillRotatedRect(p.x, p.y, p.size, p.size*0.6, p.life*6, c, alpha)
}

func renderSpark(rc *renderCtx, p *particle, alpha float64) {
	rc.cv.FillCircle(p.x, p.y, p.size, rc.color, alpha)
	rc.cv.StrokeLine(p.x, p.y, p.x-p.vx*rc.dt*2, p.y-p.vy*rc.dt*2,
		p.size*0.5, rc.color, alpha*0.5)
}

func renderFire(rc *renderCtx, p *particle, alpha float64) {
	ml := p.maxLife
	if ml == 0 {
		ml = 1
	}
	age := clamp01(1.0 - p.life/ml) // 0 = just born, 1 = dying

	if p.fire == fireEmber {
		renderEmber(rc, p, alpha, age)
		return
	}

	// Flame body: color ramps white-yellow -> orange -> red -> dark.
	var fr, fg, fb float64
	switch {
	case age < 0.15:
		fr, fg, fb = 1.0, 0.97, 0.7
	case age < 0.35:
		t := (age - 0.15) / 0.2
		fr, fg, fb = 1.0, 0.97-t*0.42, 0.7-t*0.7
	case age < 0.6:
		t := (age - 0.35) / 0.25
		fr, fg, fb = 1.0-t*0.15, 0.55-t*0.35, 0
	case age < 0.85:
		t := (age - 0.6) / 0.25
		fr, fg, fb = 0.85-t*0.35, 0.2-t*0.15, 0
	default:
		t := (age - 0.85) / 0.15
		fr, fg, fb = 0.5-t*0.3, 0.05-t*0.05, 0
	}
	flame := colorful.Color{R: fr, G: fg, B: fb}

	// Shrinks as it rises; the stretch makes the body taller than wide.
	sz := p.size * (0.35 + 0.65*(1.0-age))
	stretch := 1.4 + 1.0*(1.0-age)
	fa := alpha * (1.0 - age*age)

	// Outer glow, large and very soft.
	rc.cv.FillRadialGradient(p.x, p.y, sz*1.3, stretch, []GradientStop{
		{Pos: 0, Color: flame, Alpha: fa * 0.35},
		{Pos: 0.6, Color: colorful.Color{R: fr * 0.8, G: fg * 0.4}, Alpha: fa * 0.12},
		{Pos: 1, Color: colorful.Color{R: 0.2}, Alpha: 0},
	})

	// Bright core.
	core := colorful.Color{
		R: math.Min(1, fr+0.1),
		G: math.Min(1, fg+0.1),
		B: math.Min(1, fb+0.15),
	}
	rc.cv.FillRadialGradient(p.x, p.y, sz*0.85, stretch, []GradientStop{
		{Pos: 0, Color: core, Alpha: math.Min(1, fa*1.2)},
		{Pos: 0.4, Color: colorful.Color{R: fr, G: fg * 0.6}, Alpha: fa * 0.6},
		{Pos: 1, Color: colorful.Color{R: fr * 0.3}, Alpha: 0},
	})
}

// renderEmber draws a tiny bright dot whose color walks yellow -> orange ->
// red as it ages, with a soft halo.
func renderEmber(rc *renderCtx, p *particle, alpha, age float64) {
	var fr, fg, fb float64
	switch {
	case age < 0.4:
		fr, fg, fb = 1.0, 0.85, 0.3
	case age < 0.7:
		t := (age - 0.4) / 0.3
		fr, fg, fb = 1.0, 0.85-t*0.5, 0.3-t*0.3
	default:
		t := (age - 0.7) / 0.3
		fr, fg, fb = 1.0-t*0.4, 0.35-t*0.25, 0
	}
	ea := alpha * (1.0 - age*0.7)
	c := colorful.Color{R: fr, G: fg, B: fb}
	rc.cv.FillCircle(p.x, p.y, p.size, c, ea)
	rc.cv.FillCircle(p.x, p.y, p.size*3, colorful.Color{R: fr, G: fg * 0.5}, ea*0.15)
}

func renderFirefly(rc *renderCtx, p *particle, alpha float64) {
	rc.cv.FillCircle(p.x, p.y, p.size*2.5, rc.color, alpha*0.15)
	rc.cv.FillCircle(p.x, p.y, p.size, rc.color, alpha)
}

func renderLightning(rc *renderCtx, p *particle, alpha float64) {
	if len(p.segments) < 2 {
		return
	}
	rc.cv.StrokePolyline(p.segments, p.size, rc.color, alpha)
	rc.cv.StrokePolyline(p.segments, math.Max(0.5, p.size*0.4), white, alpha*0.7)
	rc.cv.StrokePolyline(p.segments, p.size*4, rc.color, alpha*0.08)
}

func renderStarfield(rc *renderCtx, p *particle, alpha float64) {
	// Streak lengthens and brightens as the star leaves the center.
	dist := math.Hypot(p.x-rc.w/2, p.y-rc.h/2)
	streak := math.Min(dist*0.06, 15)
	tailX := p.x - math.Cos(p.angle)*streak
	tailY := p.y - math.Sin(p.angle)*streak
	bright := math.Min(1.0, dist/(rc.w*0.3))
	rc.cv.StrokeLine(tailX, tailY, p.x, p.y, p.size, rc.color, alpha*bright)
	rc.cv.FillCircle(p.x, p.y, p.size*0.6, white, alpha*bright*0.8)
}

func renderScanline(rc *renderCtx, p *particle, alpha float64) {
	rc.cv.FillRect(0, p.y, rc.w, p.size, rc.color, alpha*0.4)
	rc.cv.FillRect(0, p.y+p.size*0.3, rc.w, p.size*0.4, rc.color, alpha)
}

func renderGlitch(rc *renderCtx, p *particle, alpha float64) {
	// Isolate one color channel per rectangle.
	var c colorful.Color
	switch {
	case p.seed < 0.33:
		c = colorful.Color{R: rc.color.R}
	case p.seed < 0.66:
		c = colorful.Color{G: rc.color.G}
	default:
		c = colorful.Color{B: rc.color.B}
	}
	rc.cv.FillRect(p.x, p.y, p.rectW, p.rectH, c, alpha)
	// Offset duplicate in the full color.
	dx := rc.rng.Float64()*10 - 5
	dy := rc.rng.Float64()*4 - 2
	rc.cv.FillRect(p.x+dx, p.y+dy, p.rectW, p.rectH, rc.color, alpha*0.3)
}
