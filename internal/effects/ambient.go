package effects

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// defaultDT is assumed on the first tick (or after a reset), matching
	// the host's ~30 Hz frame timer.
	defaultDT = 0.033
	// maxDT caps the simulated step after a scheduling stall so a hidden
	// canvas does not fast-forward its particles on the next frame.
	maxDT = 0.1

	alphaEpsilon = 0.01
)

// AmbientSystem owns the ambient background particles of one canvas.
// Call TickAndRender once per animation frame from the rendering thread;
// the system keeps no timer of its own. Not safe for concurrent use.
type AmbientSystem struct {
	particles []*particle
	max       int
	lastTick  time.Time
	elapsed   float64
	now       func() time.Time
	rng       *rand.Rand
	renderErr error
}

// Option configures an AmbientSystem.
type Option func(*AmbientSystem)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *AmbientSystem) { s.now = now }
}

// WithRand replaces the random source, for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *AmbientSystem) { s.rng = rng }
}

// WithMaxParticles overrides the particle budget for styles that use the
// system default (snow, bubbles, confetti, sparks, dust, fireflies).
func WithMaxParticles(n int) Option {
	return func(s *AmbientSystem) { s.max = n }
}

// NewAmbientSystem returns a system with an empty particle set. One system
// serves one canvas; switching styles is cheapest by discarding the system
// and creating a fresh one.
func NewAmbientSystem(opts ...Option) *AmbientSystem {
	s := &AmbientSystem{
		max: defaultCap,
		now: time.Now,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Count returns the number of live particles.
func (s *AmbientSystem) Count() int { return len(s.particles) }

// Err returns the last panic recovered from the drawing surface during a
// render pass, or nil. Rendering is retried naturally on the next frame.
func (s *AmbientSystem) Err() error { return s.renderErr }

// TickAndRender advances the simulation by the elapsed wall-clock time and
// draws all live particles onto cv. It must be called with a stable (w, h)
// for the current canvas. Unknown styles and malformed colors are handled
// by falling back to safe defaults; the call never fails.
func (s *AmbientSystem) TickAndRender(cv Canvas, w, h float64, style Style, colorHex string) {
	now := s.now()
	dt := defaultDT
	if !s.lastTick.IsZero() {
		dt = math.Min(now.Sub(s.lastTick).Seconds(), maxDT)
	}
	s.lastTick = now
	s.elapsed += dt

	if w <= 0 || h <= 0 {
		return
	}

	b := behaviorFor(style)
	budget := b.cap
	if budget == 0 {
		budget = s.max
	}

	if b.spawn != nil {
		for i := 0; i < b.spawnRate; i++ {
			if len(s.particles) >= budget {
				break
			}
			p := &particle{life: 1, maxLife: 1}
			b.spawn(s, p, w, h)
			s.particles = append(s.particles, p)
		}
	}

	alive := s.particles[:0]
	for _, p := range s.particles {
		p.x += p.vx * dt
		p.y += p.vy * dt
		if b.update != nil {
			b.update(s, p, dt)
		}
		if p.mode == lifeDecaying && p.life <= 0 {
			continue
		}
		if p.offscreen(w, h) {
			continue
		}
		alive = append(alive, p)
	}
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = alive

	s.renderAll(cv, b, ParseColor(colorHex), w, h, dt)
}

// renderAll draws the survivors. A panic out of the Canvas is recovered so
// a broken effect cannot blank the rest of the frame; the fault is parked
// in Err and the remaining layers keep drawing.
func (s *AmbientSystem) renderAll(cv Canvas, b behavior, col colorful.Color, w, h, dt float64) {
	defer func() {
		if r := recover(); r != nil {
			s.renderErr = fmt.Errorf("effects: render: %v", r)
		}
	}()
	if b.render == nil || cv == nil {
		return
	}
	rc := &renderCtx{
		cv:      cv,
		color:   col,
		w:       w,
		h:       h,
		dt:      dt,
		elapsed: s.elapsed,
		rng:     s.rng,
	}
	for _, p := range s.particles {
		a := p.alpha
		if p.mode == lifeDecaying {
			a *= math.Min(p.life, 1)
		}
		// Invisible particles keep simulating but are not drawn.
		if a < alphaEpsilon {
			continue
		}
		b.render(rc, p, a)
	}
}

func (s *AmbientSystem) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

func (s *AmbientSystem) gauss(mean, stddev float64) float64 {
	return mean + s.rng.NormFloat64()*stddev
}
