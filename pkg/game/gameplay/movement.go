// Package gameplay provides the simulation subsystems that advance one level:
// movement, projectiles, bombs, threat, and marker expiry.
package gameplay

import (
	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/state"
)

// MovePlayer turns the player towards dir and steps if the target tile is
// passable. Returns true if the player changed tile.
func MovePlayer(g *state.Game, dir world.Direction) bool {
	if g.Over() {
		return false
	}

	// A wall only turns the player around
	g.Player.Facing = dir
	target := g.Player.Pos.Step(dir)
	if !g.Grid.IsPassablePoint(target) {
		return false
	}
	g.Player.Pos = target

	// Check for exit arrival (signalled on the first arrival only)
	if g.Grid.IsExit(target) && !g.LevelComplete {
		g.LevelComplete = true
		g.Emit(state.EventLevelComplete)
	}

	return true
}

// MoveEnemies moves every enemy one tile in a random cardinal direction.
// An enemy whose chosen tile is impassable waits this tick.
func MoveEnemies(g *state.Game) {
	if g.Over() {
		return
	}

	dirs := world.AllDirections()
	for i := range g.Enemies {
		dir := dirs[g.Rand.Intn(len(dirs))]
		target := g.Enemies[i].Pos.Step(dir)
		if g.Grid.IsPassablePoint(target) {
			g.Enemies[i].Pos = target
		}
	}
}
