package effects

import "math"

// Per-style forces, applied after the generic position += velocity * dt
// integration. Confetti wobbles laterally, fire licks sideways against a
// velocity damp, fireflies do a damped random walk with a pulsing glow.

func updateConfetti(s *AmbientSystem, p *particle, dt float64) {
	p.vx += s.uniform(-50, 50) * dt
	p.life -= dt * 0.4
}

func updateFire(s *AmbientSystem, p *particle, dt float64) {
	p.life -= dt
	// Sinusoidal licking motion, unique phase per particle.
	tWave := s.elapsed*1.8 + p.seed
	if p.fire == fireFlame {
		p.vx += math.Sin(tWave) * 40 * dt
		p.vy -= s.uniform(5, 20) * dt
		p.vx *= 1.0 - 1.5*dt
	} else {
		p.vx += math.Sin(tWave*1.2) * 15 * dt
		p.vy -= s.uniform(0, 10) * dt
	}
}

func updateFireflies(s *AmbientSystem, p *particle, dt float64) {
	p.life -= dt * 0.2
	p.vx += s.uniform(-30, 30) * dt
	p.vy += s.uniform(-30, 30) * dt
	p.vx *= 0.95
	p.vy *= 0.95
	p.alpha = 0.15 + 0.65*(0.5+0.5*math.Sin(s.elapsed*3.0+p.seed))
}
