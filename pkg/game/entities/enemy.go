package entities

import "mazeraid/pkg/engine/world"

// Enemy is a single-hit-point wanderer. ID is unique within a level
// so that removal can be made idempotent.
type Enemy struct {
	ID  int
	Pos world.Point
}
