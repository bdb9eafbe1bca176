// Package world provides generic 2D grid-based maze primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Tile is the terrain type of a single grid cell
type Tile int

// Tile types
const (
	TileWall Tile = iota
	TileEmpty
	TileEntry
	TileExit
)

// Map symbols for the four tile types
const (
	SymbolWall  = '#'
	SymbolEmpty = ' '
	SymbolEntry = 'E'
	SymbolExit  = 'X'
)

// ParseTile converts a map symbol into a tile
func ParseTile(symbol rune) (Tile, bool) {
	switch symbol {
	case SymbolWall:
		return TileWall, true
	case SymbolEmpty:
		return TileEmpty, true
	case SymbolEntry:
		return TileEntry, true
	case SymbolExit:
		return TileExit, true
	default:
		return TileWall, false
	}
}

// Symbol returns the map symbol for a tile
func (t Tile) Symbol() rune {
	switch t {
	case TileEmpty:
		return SymbolEmpty
	case TileEntry:
		return SymbolEntry
	case TileExit:
		return SymbolExit
	default:
		return SymbolWall
	}
}

// String returns a human-friendly tile name
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileEmpty:
		return "empty"
	case TileEntry:
		return "entry"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}
