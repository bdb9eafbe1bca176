// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/gameplay"
	"mazeraid/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the dump symbol for p: entities over terrain, the
// player on top
func cellSymbol(g *state.Game, p world.Point, enemies, bullets, bombs map[world.Point]bool) rune {
	switch {
	case g.Player.Pos == p:
		return '@'
	case enemies[p]:
		return 'M'
	case bullets[p]:
		return '*'
	case bombs[p]:
		return 'B'
	}
	return g.Grid.TileAt(p.X, p.Y).Symbol()
}

// writeMapGrid writes the grid with entities overlaid
func writeMapGrid(w io.Writer, g *state.Game) {
	enemies := make(map[world.Point]bool, len(g.Enemies))
	for _, e := range g.Enemies {
		enemies[e.Pos] = true
	}
	bullets := make(map[world.Point]bool, len(g.Bullets))
	for _, b := range g.Bullets {
		bullets[b.Pos] = true
	}
	bombs := make(map[world.Point]bool, len(g.Bombs))
	for _, b := range g.Bombs {
		bombs[b.Pos] = true
	}

	for y := 0; y < g.Grid.Rows(); y++ {
		for x := 0; x < g.Grid.Cols(); x++ {
			fmt.Fprintf(w, "%c", cellSymbol(g, world.Pt(x, y), enemies, bullets, bombs))
		}
		fmt.Fprintln(w)
	}
}

// WriteDump writes a debug dump of a level: metadata, legend, the map with
// entities, and every entity with its coordinates and state.
func WriteDump(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	entry := g.Grid.Entry()
	dist := g.Grid.Distances(entry)

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (level layout, entities) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", g.SessionID)
	fmt.Fprintf(w, "level: %d\n", g.Level+1)
	fmt.Fprintf(w, "level_name: %q\n", g.LevelName)
	fmt.Fprintf(w, "grid_rows: %d\n", g.Grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", g.Grid.Cols())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "entry: %d,%d\n", entry.X, entry.Y)
	fmt.Fprintf(w, "exit_reachable: %v\n", g.Grid.ExitReachable())
	fmt.Fprintf(w, "player: %d,%d facing: %s hp: %d\n", g.Player.Pos.X, g.Player.Pos.Y, g.Player.Facing, g.Player.HP)
	fmt.Fprintf(w, "level_complete: %v game_over: %v\n", g.LevelComplete, g.GameOver)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = wall  (space) = floor  E = entry  X = exit  @ = player  M = enemy  * = bullet  B = bomb")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, g)
	fmt.Fprintln(w, "")

	// --- Entities ---
	fmt.Fprintln(w, "--- Entities ---")

	fmt.Fprintln(w, "Exits:")
	for _, p := range g.Grid.Exits() {
		d, ok := dist[p]
		if !ok {
			d = -1
		}
		fmt.Fprintf(w, "  x: %d y: %d distance_from_entry: %d\n", p.X, p.Y, d)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Enemies:")
	for _, e := range g.Enemies {
		fmt.Fprintf(w, "  id: %d x: %d y: %d\n", e.ID, e.Pos.X, e.Pos.Y)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Bullets:")
	for _, b := range g.Bullets {
		fmt.Fprintf(w, "  x: %d y: %d dir: %s range: %d\n", b.Pos.X, b.Pos.Y, b.Dir, b.Range)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Bombs:")
	for _, b := range g.Bombs {
		fmt.Fprintf(w, "  id: %d x: %d y: %d countdown: %d zone_tiles: %d\n", b.ID, b.Pos.X, b.Pos.Y, b.Countdown, len(b.Zone))
	}
	fmt.Fprintf(w, "danger_zone_tiles: %d\n", len(gameplay.DangerZone(g)))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Markers:")
	for _, m := range g.Markers {
		fmt.Fprintf(w, "  type: %s x: %d y: %d ttl: %s\n", m.Type, m.Pos.X, m.Pos.Y, m.TTL)
	}
	return nil
}

// DumpMapToFile writes the dump to map.txt in the working directory and
// returns its absolute path
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
