package effects

// lifeMode separates the two lifetime semantics of a particle: most kinds
// burn down a remaining-seconds counter, a few (matrix rain, starfield,
// scanline) live until they leave the extended canvas bounds.
type lifeMode uint8

const (
	lifeDecaying lifeMode = iota
	lifeUntilOffscreen
)

// fireKind distinguishes the two fire particle populations.
type fireKind uint8

const (
	fireFlame fireKind = iota
	fireEmber
)

// particle is one ambient particle. Fields beyond position/velocity/size
// are kind-specific: glyph for matrix rain, seed for phase-offset
// oscillation, rectW/rectH for glitch rectangles, angle for starfield
// radiation, segments for a lightning bolt polyline.
type particle struct {
	x, y   float64
	vx, vy float64
	size   float64
	alpha  float64

	mode    lifeMode
	life    float64 // remaining seconds while mode == lifeDecaying
	maxLife float64

	glyph        rune
	seed         float64
	fire         fireKind
	angle        float64
	rectW, rectH float64
	segments     []Point
}

// offscreen reports whether the particle left the extended canvas bounds
// (a 20 px margin on each side).
func (p *particle) offscreen(w, h float64) bool {
	return p.y > h+boundsMargin || p.y < -boundsMargin ||
		p.x < -boundsMargin || p.x > w+boundsMargin
}

const boundsMargin = 20.0
