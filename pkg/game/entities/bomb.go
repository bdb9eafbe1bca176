package entities

import "mazeraid/pkg/engine/world"

// Bomb sits where it was placed and counts down once per bomb tick.
// Zone is the blast zone computed at placement; it doubles as the danger overlay.
type Bomb struct {
	ID        int
	Pos       world.Point
	Countdown int
	Zone      []world.Point
}

// Ready reports whether the bomb detonates on this tick.
// The check happens before the decrement, so a bomb placed with
// countdown n goes off on its n-th tick.
func (b *Bomb) Ready() bool {
	return b.Countdown <= 1
}

// Tick spends one unit of countdown
func (b *Bomb) Tick() {
	b.Countdown--
}
