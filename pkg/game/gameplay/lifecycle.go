package gameplay

import (
	"log"

	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/config"
	"mazeraid/pkg/game/state"
)

// BuildGame creates the store for one level and logs what was set up
func BuildGame(grid *world.Grid, rules config.Rules, rng world.Rand, level int, name string, enemies int) (*state.Game, error) {
	g, err := state.NewGame(grid, rules, rng, level, enemies)
	if err != nil {
		return nil, err
	}
	g.LevelName = name

	log.Printf("level %d %q: %dx%d, %d enemies, session %s",
		level+1, name, grid.Cols(), grid.Rows(), len(g.Enemies), g.SessionID)

	return g, nil
}
