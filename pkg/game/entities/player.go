// Package entities defines the mutable actors of a level: the player,
// enemies, bullets, bombs, and the transient markers they leave behind.
package entities

import (
	"time"

	"mazeraid/pkg/engine/world"
)

// Player is the single player-controlled actor
type Player struct {
	Pos       world.Point
	Facing    world.Direction
	HP        int
	Hurt      bool      // Took damage within the last hurt window
	HurtUntil time.Time // When the hurt flag clears
}

// NewPlayer creates a player standing at pos, facing right, at full health
func NewPlayer(pos world.Point, hp int) *Player {
	return &Player{
		Pos:    pos,
		Facing: world.East,
		HP:     hp,
	}
}

// Damage subtracts hp and raises the hurt flag until now+hurtFor.
// Returns true if this damage took the player from alive to dead.
func (p *Player) Damage(amount int, now time.Time, hurtFor time.Duration) bool {
	wasAlive := p.Alive()
	p.HP -= amount
	p.Hurt = true
	p.HurtUntil = now.Add(hurtFor)
	return wasAlive && !p.Alive()
}

// Alive reports whether the player still has health left
func (p *Player) Alive() bool {
	return p.HP > 0
}

// ClearHurt drops the hurt flag once its window has passed
func (p *Player) ClearHurt(now time.Time) {
	if p.Hurt && !now.Before(p.HurtUntil) {
		p.Hurt = false
	}
}
