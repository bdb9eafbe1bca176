package input

import "time"

// MoveThrottle limits how often held movement may move the player,
// independent of how often input is sampled.
type MoveThrottle struct {
	Delay time.Duration

	last  time.Time
	moved bool
}

// NewMoveThrottle creates a throttle allowing one move per delay
func NewMoveThrottle(delay time.Duration) *MoveThrottle {
	return &MoveThrottle{Delay: delay}
}

// Allow reports whether a move may happen at now, and if so records it
func (t *MoveThrottle) Allow(now time.Time) bool {
	if t.moved && now.Sub(t.last) < t.Delay {
		return false
	}
	t.last = now
	t.moved = true
	return true
}

// Reset forgets the last move so the next one is allowed immediately
func (t *MoveThrottle) Reset() {
	t.moved = false
}
