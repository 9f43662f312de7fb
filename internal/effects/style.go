package effects

// Style selects the ambient particle behavior preset. A Style fully
// determines spawn geometry, motion, decay and render shape.
type Style string

const (
	StyleOff        Style = "off"
	StyleMatrixRain Style = "matrix_rain"
	StyleSnow       Style = "snow"
	StyleBubbles    Style = "bubbles"
	StyleConfetti   Style = "confetti"
	StyleSparks     Style = "sparks"
	StyleDust       Style = "dust"
	StyleFire       Style = "fire"
	StyleFireflies  Style = "fireflies"
	StyleLightning  Style = "lightning"
	StyleStarfield  Style = "starfield"
	StyleScanline   Style = "scanline"
	StyleGlitch     Style = "glitch"
)

// Styles lists every drawable style in display order.
var Styles = []Style{
	StyleOff, StyleMatrixRain, StyleSnow, StyleBubbles, StyleConfetti,
	StyleSparks, StyleDust, StyleFire, StyleFireflies, StyleLightning,
	StyleStarfield, StyleScanline, StyleGlitch,
}

// Valid reports whether s names a known style (including "off").
func (s Style) Valid() bool {
	if s == StyleOff {
		return true
	}
	_, ok := behaviors[s]
	return ok
}

const (
	defaultCap       = 120
	defaultSpawnRate = 2
)

// behavior is the per-style dispatch triplet plus its particle budget.
// Adding a style is a new entry here, not an edit to the tick loop.
type behavior struct {
	cap       int
	spawnRate int
	spawn     func(s *AmbientSystem, p *particle, w, h float64)
	update    func(s *AmbientSystem, p *particle, dt float64)
	render    func(rc *renderCtx, p *particle, alpha float64)
}

// A zero cap means "use the system's default particle budget".
var behaviors = map[Style]behavior{
	StyleMatrixRain: {cap: 200, spawnRate: 4, spawn: spawnMatrixRain, render: renderMatrixRain},
	StyleSnow:       {spawnRate: 3, spawn: spawnSnow, update: decay(0.4), render: renderDot},
	StyleBubbles:    {spawnRate: 2, spawn: spawnBubbles, update: decay(0.4), render: renderBubble},
	StyleConfetti:   {spawnRate: 3, spawn: spawnConfetti, update: updateConfetti, render: renderConfetti},
	StyleSparks:     {spawnRate: 4, spawn: spawnSparks, update: decay(1.2), render: renderSpark},
	StyleDust:       {spawnRate: 2, spawn: spawnDust, update: decay(0.3), render: renderDot},
	StyleFire:       {cap: 250, spawnRate: 6, spawn: spawnFire, update: updateFire, render: renderFire},
	StyleFireflies:  {spawnRate: 1, spawn: spawnFireflies, update: updateFireflies, render: renderFirefly},
	StyleLightning:  {cap: 8, spawnRate: 1, spawn: spawnLightning, update: decay(1.0), render: renderLightning},
	StyleStarfield:  {cap: 180, spawnRate: 5, spawn: spawnStarfield, render: renderStarfield},
	StyleScanline:   {cap: 3, spawnRate: 1, spawn: spawnScanline, render: renderScanline},
	StyleGlitch:     {cap: 15, spawnRate: 2, spawn: spawnGlitch, update: decay(1.0), render: renderGlitch},
}

// behaviorFor returns the style's behavior, or an inert one with default
// budget values for "off" and unknown styles (nothing spawns or draws).
func behaviorFor(style Style) behavior {
	if b, ok := behaviors[style]; ok {
		return b
	}
	return behavior{spawnRate: defaultSpawnRate}
}

// decay returns an update func that burns life at rate per second. The
// generic position integration happens before per-style updates run.
func decay(rate float64) func(*AmbientSystem, *particle, float64) {
	return func(_ *AmbientSystem, p *particle, dt float64) {
		p.life -= dt * rate
	}
}
