package entities

import "mazeraid/pkg/engine/world"

// Bullet travels one tile per bullet tick until its range runs out
type Bullet struct {
	Pos   world.Point
	Dir   world.Direction
	Range int // Tiles it may still travel
}

// NewBullet fires a bullet from pos in direction dir
func NewBullet(pos world.Point, dir world.Direction, rng int) Bullet {
	return Bullet{Pos: pos, Dir: dir, Range: rng}
}

// Advance moves the bullet one tile and spends one unit of range
func (b *Bullet) Advance() {
	b.Pos = b.Pos.Step(b.Dir)
	b.Range--
}

// Spent reports whether the bullet has no range left
func (b Bullet) Spent() bool {
	return b.Range <= 0
}
