package effects

import "math"

// Spawn geometry, velocity, size and alpha ranges are stylized per effect
// and deliberate; changing them changes the character of a style.

func spawnMatrixRain(s *AmbientSystem, p *particle, w, h float64) {
	p.x = s.uniform(0, w)
	p.y = s.uniform(-20, -5)
	p.vy = s.uniform(120, 300)
	p.size = s.uniform(16, 28)
	p.alpha = s.uniform(0.3, 0.9)
	p.mode = lifeUntilOffscreen
	p.glyph = '0' + rune(s.rng.Intn(2))
}

func spawnSnow(s *AmbientSystem, p *particle, w, h float64) {
	p.x = s.uniform(0, w)
	p.y = -5
	p.vx = s.uniform(-20, 20)
	p.vy = s.uniform(30, 80)
	p.size = s.uniform(2, 5)
	p.alpha = s.uniform(0.4, 0.8)
}

func spawnBubbles(s *AmbientSystem, p *particle, w, h float64) {
	p.x = s.uniform(0, w)
	p.y = h + 5
	p.vx = s.uniform(-10, 10)
	p.vy = s.uniform(-80, -40)
	p.size = s.uniform(3, 8)
	p.alpha = s.uniform(0.2, 0.5)
}

func spawnConfetti(s *AmbientSystem, p *particle, w, h float64) {
	p.x = s.uniform(0, w)
	p.y = -5
	p.vx = s.uniform(-30, 30)
	p.vy = s.uniform(60, 140)
	p.size = s.uniform(3, 6)
	p.alpha = s.uniform(0.5, 0.9)
}

func spawnSparks(s *AmbientSystem, p *particle, w, h float64) {
	p.x = s.uniform(0, w)
	p.y = h + 2
	p.vx = s.uniform(-40, 40)
	p.vy = s.uniform(-120, -60)
	p.size = s.uniform(1.5, 3.5)
	p.alpha = s.uniform(0.6, 1.0)
}

func spawnDust(s *AmbientSystem, p *particle, w, h float64) {
	p.x = s.uniform(0, w)
	p.y = s.uniform(0, h)
	p.vx = s.uniform(-8, 8)
	p.vy = s.uniform(-4, 4)
	p.size = s.uniform(1, 3)
	p.alpha = s.uniform(0.15, 0.35)
}

// spawnFire mixes a clustered flame body with occasional embers that rise
// higher and burn brighter.
func spawnFire(s *AmbientSystem, p *particle, w, h float64) {
	if s.rng.Float64() < 0.12 {
		p.fire = fireEmber
		p.x = s.gauss(w*0.5, w*0.25)
		p.y = h + s.uniform(-5, 5)
		p.vx = s.uniform(-15, 15)
		p.vy = s.uniform(-140, -60)
		p.size = s.uniform(1.0, 2.5)
		p.alpha = s.uniform(0.7, 1.0)
		p.life = s.uniform(1.5, 3.0)
	} else {
		p.fire = fireFlame
		p.x = s.gauss(w*0.5, w*0.22)
		p.y = h + s.uniform(-2, 8)
		p.vx = s.uniform(-5, 5)
		p.vy = s.uniform(-80, -20)
		p.size = s.uniform(14, 40)
		p.alpha = s.uniform(0.3, 0.7)
		p.life = s.uniform(1.2, 2.5)
	}
	p.seed = s.uniform(0, 100)
	p.maxLife = p.life
}

func spawnFireflies(s *AmbientSystem, p *particle, w, h float64) {
	p.x = s.uniform(0, w)
	p.y = s.uniform(0, h)
	p.vx = s.uniform(-15, 15)
	p.vy = s.uniform(-15, 15)
	p.size = s.uniform(2, 5)
	p.alpha = s.uniform(0.1, 0.8)
	p.life = s.uniform(3.0, 8.0)
	p.maxLife = p.life
	p.seed = s.uniform(0, 100)
}

// spawnLightning pre-generates the bolt's zigzag polyline; the particle
// itself does not move.
func spawnLightning(s *AmbientSystem, p *particle, w, h float64) {
	p.x = s.uniform(w*0.1, w*0.9)
	p.y = 0
	endX := p.x + s.uniform(-80, 80)
	endY := s.uniform(h*0.4, h)
	p.size = s.uniform(1.5, 3.0)
	p.alpha = s.uniform(0.7, 1.0)
	p.life = s.uniform(0.15, 0.35)
	p.maxLife = p.life
	p.seed = s.rng.Float64()

	steps := 5 + s.rng.Intn(8)
	segs := make([]Point, 0, steps+1)
	segs = append(segs, Point{p.x, p.y})
	for si := 0; si < steps; si++ {
		t := float64(si+1) / float64(steps)
		tx := p.x + (endX-p.x)*t
		ty := p.y + (endY-p.y)*t
		segs = append(segs, Point{tx + s.uniform(-30, 30), ty})
	}
	p.segments = segs
}

// spawnStarfield radiates stars outward from the canvas center.
func spawnStarfield(s *AmbientSystem, p *particle, w, h float64) {
	angle := s.uniform(0, 2*math.Pi)
	dist := s.uniform(5, 30)
	p.x = w/2 + math.Cos(angle)*dist
	p.y = h/2 + math.Sin(angle)*dist
	speed := s.uniform(150, 400)
	p.vx = math.Cos(angle) * speed
	p.vy = math.Sin(angle) * speed
	p.size = s.uniform(1, 2.5)
	p.alpha = s.uniform(0.3, 0.9)
	p.mode = lifeUntilOffscreen
	p.angle = angle
}

func spawnScanline(s *AmbientSystem, p *particle, w, h float64) {
	p.x = 0
	p.y = -2
	p.vy = s.uniform(80, 160)
	p.size = s.uniform(1, 3)
	p.alpha = s.uniform(0.3, 0.6)
	p.mode = lifeUntilOffscreen
}

func spawnGlitch(s *AmbientSystem, p *particle, w, h float64) {
	p.x = s.uniform(0, w-60)
	p.y = s.uniform(0, h-10)
	p.rectW = s.uniform(30, 100)
	p.rectH = s.uniform(3, 12)
	p.alpha = s.uniform(0.15, 0.5)
	p.life = s.uniform(0.05, 0.2)
	p.maxLife = p.life
	p.seed = s.rng.Float64()
}
