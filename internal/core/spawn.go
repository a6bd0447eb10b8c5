package core

// Spawner is a frame counter that fires every delay ticks. After each
// firing the delay shrinks by step, never below minDelay.
type Spawner struct {
	initial  int
	delay    int
	minDelay int
	step     int
	timer    int
}

// NewSpawner creates a spawner. A zero step keeps the delay fixed.
func NewSpawner(delay, minDelay, step int) *Spawner {
	delay = max(delay, 1)
	sp := &Spawner{
		initial:  delay,
		minDelay: Clamp(minDelay, 1, delay),
		step:     max(step, 0),
	}
	sp.Reset()
	return sp
}

// Tick advances the counter and reports whether to spawn this tick.
func (sp *Spawner) Tick() bool {
	sp.timer++
	if sp.timer < sp.delay {
		return false
	}
	sp.timer = 0
	if sp.delay > sp.minDelay {
		sp.delay = max(sp.delay-sp.step, sp.minDelay)
	}
	return true
}

// Delay returns the current number of ticks between spawns.
func (sp *Spawner) Delay() int {
	return sp.delay
}

// Reset restores the initial delay and zeroes the counter.
func (sp *Spawner) Reset() {
	sp.delay = sp.initial
	sp.timer = 0
}

// Prune removes, in place, every item whose rectangle has left the screen
// on the left. Order of the survivors is preserved.
func Prune[T any](items []T, rect func(T) Rect) []T {
	kept := items[:0]
	for _, it := range items {
		if !rect(it).OffScreenLeft() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
