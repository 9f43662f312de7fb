package effects

import (
	"math"
	"testing"
	"time"
)

func TestRippleStartsOnHighlightEdge(t *testing.T) {
	clock := newFakeClock()
	var r Ripple

	if got := r.Rings(clock.now()); got != nil {
		t.Fatalf("rings before any highlight = %v, want nil", got)
	}

	r.Update(true, clock.now())
	clock.advance(50 * time.Millisecond)
	rings := r.Rings(clock.now())
	if len(rings) != 1 {
		t.Fatalf("rings at 50ms = %d, want 1 (later rings not started)", len(rings))
	}

	// Holding the highlight does not restart the animation.
	r.Update(true, clock.now())
	clock.advance(250 * time.Millisecond) // elapsed 300ms
	rings = r.Rings(clock.now())
	if len(rings) != 3 {
		t.Fatalf("rings at 300ms = %d, want 3", len(rings))
	}
}

func TestRippleRingValues(t *testing.T) {
	clock := newFakeClock()
	var r Ripple
	r.Update(true, clock.now())

	clock.advance(500 * time.Millisecond)
	rings := r.Rings(clock.now())
	if len(rings) != 3 {
		t.Fatalf("rings at 500ms = %d, want 3", len(rings))
	}

	// Innermost ring: t = 0.5, no delay.
	first := rings[0]
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"expand", first.Expand, 25.0},
		{"alpha", first.Alpha, 0.225},
		{"stroke", first.StrokeWidth, 1.75},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("ring 0 %s = %v, want %v", c.name, c.got, c.want)
		}
	}

	// Later rings start delayed, so they lag the first.
	for i := 1; i < len(rings); i++ {
		if rings[i].Expand >= rings[i-1].Expand {
			t.Errorf("ring %d expand %v not behind ring %d expand %v",
				i, rings[i].Expand, i-1, rings[i-1].Expand)
		}
	}
}

func TestRippleEnds(t *testing.T) {
	clock := newFakeClock()
	var r Ripple
	r.Update(true, clock.now())

	clock.advance(RippleDuration)
	if got := r.Rings(clock.now()); got != nil {
		t.Errorf("rings at the full duration = %v, want nil", got)
	}
}

func TestRippleClearsWhenUnhighlighted(t *testing.T) {
	clock := newFakeClock()
	var r Ripple

	r.Update(true, clock.now())
	clock.advance(200 * time.Millisecond)
	r.Update(false, clock.now())
	if got := r.Rings(clock.now()); got != nil {
		t.Errorf("rings after unhighlight = %v, want nil", got)
	}

	// A fresh highlight restarts from zero.
	clock.advance(time.Second)
	r.Update(true, clock.now())
	clock.advance(100 * time.Millisecond)
	rings := r.Rings(clock.now())
	if len(rings) != 1 {
		t.Fatalf("rings 100ms into second highlight = %d, want 1", len(rings))
	}
	if math.Abs(rings[0].Expand-5.0) > 1e-9 {
		t.Errorf("ring 0 expand = %v, want 5.0", rings[0].Expand)
	}
}
