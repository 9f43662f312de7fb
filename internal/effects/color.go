package effects

import "github.com/lucasb-eyer/go-colorful"

// DefaultParticleColor is used whenever a style color cannot be parsed.
const DefaultParticleColor = "#66CCFF"

var white = colorful.Color{R: 1, G: 1, B: 1}

// ParseColor parses a #RRGGBB string into normalized RGB floats, falling
// back to DefaultParticleColor on malformed input. It never fails.
func ParseColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(DefaultParticleColor)
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
