package effects

import "time"

const (
	// RippleDuration is how long the click ripple plays after an element
	// becomes highlighted.
	RippleDuration = time.Second

	rippleRings     = 3
	rippleRingDelay = 0.12 // seconds between ring starts
	rippleExpand    = 50.0 // px of outward expansion per ring
)

// Ring is one concentric ripple outline. Expand is how far outside the
// element's bounding box to draw it; Alpha and StrokeWidth are ready to
// feed to the drawing surface.
type Ring struct {
	Expand      float64
	Alpha       float64
	StrokeWidth float64
}

// Ripple derives the click-ripple animation for one element. The owning
// element feeds it the highlighted flag every frame; the start time is
// latched on the flag's rising edge and cleared when the highlight ends.
type Ripple struct {
	start time.Time
}

// Update records highlight transitions. Call once per frame before Rings.
func (r *Ripple) Update(highlighted bool, now time.Time) {
	if highlighted {
		if r.start.IsZero() {
			r.start = now
		}
	} else {
		r.start = time.Time{}
	}
}

// Rings returns the rings to draw at the given instant, innermost first.
// It returns nil once the animation has run its course (or never started);
// rings whose staggered start has not come yet are omitted.
func (r *Ripple) Rings(now time.Time) []Ring {
	if r.start.IsZero() {
		return nil
	}
	elapsed := now.Sub(r.start).Seconds()
	if elapsed < 0 || elapsed >= RippleDuration.Seconds() {
		return nil
	}
	t := elapsed / RippleDuration.Seconds()
	var rings []Ring
	for i := 0; i < rippleRings; i++ {
		delay := float64(i) * rippleRingDelay
		rt := t - delay
		if rt < 0 {
			continue
		}
		rt = clamp01(rt / (1.0 - delay))
		alpha := (1.0 - rt) * 0.45
		if alpha <= alphaEpsilon {
			continue
		}
		rings = append(rings, Ring{
			Expand:      rt * rippleExpand,
			Alpha:       alpha,
			StrokeWidth: 2.5 - rt*1.5,
		})
	}
	return rings
}
