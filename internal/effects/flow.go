package effects

import (
	"math/rand"
	"time"
)

// maxDotsPerConnection caps how many dots travel one connection at a time.
const maxDotsPerConnection = 3

type flowDot struct {
	t     float64 // progress along the connection, 0 = source, 1 = sink
	speed float64 // cycles per second
}

// FlowManager animates the dots that travel along flow-graph connections.
// Connections are tracked by an opaque identifier; the manager never
// interprets it. Not safe for concurrent use.
type FlowManager struct {
	dots     map[string][]flowDot
	lastTick time.Time
	now      func() time.Time
	rng      *rand.Rand
}

// FlowOption configures a FlowManager.
type FlowOption func(*FlowManager)

// WithFlowClock replaces the wall clock, for deterministic tests.
func WithFlowClock(now func() time.Time) FlowOption {
	return func(m *FlowManager) { m.now = now }
}

// WithFlowRand replaces the random source, for deterministic tests.
func WithFlowRand(rng *rand.Rand) FlowOption {
	return func(m *FlowManager) { m.rng = rng }
}

// NewFlowManager returns an empty manager.
func NewFlowManager(opts ...FlowOption) *FlowManager {
	m := &FlowManager{
		dots: make(map[string][]flowDot),
		now:  time.Now,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EnsureDots tops up the connection's dots: at most one dot is added per
// call and never beyond the per-connection cap, so repeated calls without
// an intervening Tick settle at the cap.
func (m *FlowManager) EnsureDots(connID string) {
	dots := m.dots[connID]
	if len(dots) < maxDotsPerConnection {
		m.dots[connID] = append(dots, flowDot{
			t:     0,
			speed: 0.3 + 0.4*m.rng.Float64(),
		})
	}
}

// Tick advances every dot by speed * dt and drops those that reached the
// sink end (progress >= 1).
func (m *FlowManager) Tick() {
	now := m.now()
	dt := defaultDT
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxDT {
			dt = maxDT
		}
	}
	m.lastTick = now

	for cid, dots := range m.dots {
		alive := dots[:0]
		for _, d := range dots {
			d.t += d.speed * dt
			if d.t < 1.0 {
				alive = append(alive, d)
			}
		}
		m.dots[cid] = alive
	}
}

// Progress returns the current progress values (0..1) of the connection's
// dots. Callers map each value linearly onto the connection's path.
func (m *FlowManager) Progress(connID string) []float64 {
	dots := m.dots[connID]
	if len(dots) == 0 {
		return nil
	}
	out := make([]float64, len(dots))
	for i, d := range dots {
		out[i] = d.t
	}
	return out
}

// Forget drops all dots tracked for the connection, for when it is removed
// from the graph.
func (m *FlowManager) Forget(connID string) {
	delete(m.dots, connID)
}
