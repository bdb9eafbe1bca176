package gameplay

import (
	engineinput "mazeraid/pkg/engine/input"
	"mazeraid/pkg/game/state"
)

// ProcessIntent applies a one-shot action to the level.
// Returns false for actions the simulation does not handle (confirm, quit),
// which belong to the session.
func ProcessIntent(g *state.Game, intent engineinput.Intent) bool {
	switch intent.Action {
	case engineinput.ActionNone:
		return true

	case engineinput.ActionMoveNorth, engineinput.ActionMoveSouth,
		engineinput.ActionMoveWest, engineinput.ActionMoveEast:
		dir, _ := intent.Action.Direction()
		MovePlayer(g, dir)
		return true

	case engineinput.ActionFire:
		Fire(g)
		return true

	case engineinput.ActionPlaceBomb:
		PlaceBomb(g)
		return true
	}

	return false
}
