package effects

import "time"

// EntranceDuration is the fade-in window for a newly placed block.
const EntranceDuration = 350 * time.Millisecond

// EntranceTracker remembers when blocks appeared so they can fade in.
// A block animates exactly once: re-registering a finished block does not
// restart the fade. Not safe for concurrent use.
type EntranceTracker struct {
	birth map[string]time.Time
	done  map[string]struct{}
	now   func() time.Time
}

// NewEntranceTracker returns an empty tracker. The optional clock override
// is for deterministic tests.
func NewEntranceTracker(clock ...func() time.Time) *EntranceTracker {
	t := &EntranceTracker{
		birth: make(map[string]time.Time),
		done:  make(map[string]struct{}),
		now:   time.Now,
	}
	if len(clock) > 0 && clock[0] != nil {
		t.now = clock[0]
	}
	return t
}

// Register starts the fade-in for a block. Idempotent: only the first call
// for a given id has any effect, even after the animation completed.
func (t *EntranceTracker) Register(blockID string) {
	if _, ok := t.birth[blockID]; ok {
		return
	}
	if _, ok := t.done[blockID]; ok {
		return
	}
	t.birth[blockID] = t.now()
}

// FadeAlpha returns the block's current fade-in opacity in [0,1].
// Untracked and finished blocks are fully opaque.
func (t *EntranceTracker) FadeAlpha(blockID string) float64 {
	birth, ok := t.birth[blockID]
	if !ok {
		return 1.0
	}
	elapsed := t.now().Sub(birth)
	if elapsed >= EntranceDuration {
		delete(t.birth, blockID)
		t.done[blockID] = struct{}{}
		return 1.0
	}
	return elapsed.Seconds() / EntranceDuration.Seconds()
}

// HasActive reports whether any block is still mid-animation, pruning
// finished entries as a side effect.
func (t *EntranceTracker) HasActive() bool {
	if len(t.birth) == 0 {
		return false
	}
	now := t.now()
	for id, birth := range t.birth {
		if now.Sub(birth) >= EntranceDuration {
			delete(t.birth, id)
			t.done[id] = struct{}{}
		}
	}
	return len(t.birth) > 0
}
