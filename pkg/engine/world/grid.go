package world

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned when building a grid from map rows
var (
	ErrEmptyMap        = errors.New("map has no rows")
	ErrUnknownTile     = errors.New("unknown tile symbol")
	ErrNoEntry         = errors.New("map has no entry tile")
	ErrMultipleEntries = errors.New("map has more than one entry tile")
	ErrNoExit          = errors.New("map has no exit tile")
	ErrNoFreeTile      = errors.New("map has no empty tile")
)

// FallbackPoint is returned by FindTile when the symbol is absent
var FallbackPoint = Point{X: 1, Y: 1}

// Rand is the random source used for placement and wandering.
// *math/rand.Rand satisfies it; tests may script it.
type Rand interface {
	Intn(n int) int
}

// Grid is the immutable terrain of one level.
// Rows may have different lengths; anything outside a row is out of bounds.
type Grid struct {
	tiles [][]Tile
	cols  int

	entry Point
	exits []Point
}

// NewGrid parses map rows into a grid. Every rune must be one of the four
// tile symbols, and the map must hold exactly one entry and at least one exit.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	g := &Grid{tiles: make([][]Tile, len(rows))}
	entries := 0

	for y, row := range rows {
		line := []rune(row)
		g.tiles[y] = make([]Tile, len(line))
		if len(line) > g.cols {
			g.cols = len(line)
		}

		for x, symbol := range line {
			tile, ok := ParseTile(symbol)
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownTile, symbol, x, y)
			}
			g.tiles[y][x] = tile

			switch tile {
			case TileEntry:
				entries++
				g.entry = Pt(x, y)
			case TileExit:
				g.exits = append(g.exits, Pt(x, y))
			}
		}
	}

	if entries == 0 {
		return nil, ErrNoEntry
	}
	if entries > 1 {
		return nil, fmt.Errorf("%w (found %d)", ErrMultipleEntries, entries)
	}
	if len(g.exits) == 0 {
		return nil, ErrNoExit
	}

	return g, nil
}

// ParseGrid splits a multi-line map literal into rows and parses it.
// Blank leading and trailing lines are ignored.
func ParseGrid(text string) (*Grid, error) {
	text = strings.Trim(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, ErrEmptyMap
	}
	return NewGrid(strings.Split(text, "\n"))
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return len(g.tiles)
}

// Cols returns the length of the longest row
func (g *Grid) Cols() int {
	return g.cols
}

// Entry returns the entry tile position
func (g *Grid) Entry() Point {
	return g.entry
}

// Exits returns all exit tile positions in row-major order
func (g *Grid) Exits() []Point {
	out := make([]Point, len(g.exits))
	copy(out, g.exits)
	return out
}

// IsValidPosition checks if a coordinate is inside the grid
func (g *Grid) IsValidPosition(x, y int) bool {
	return y >= 0 && y < len(g.tiles) && x >= 0 && x < len(g.tiles[y])
}

// TileAt returns the tile at a coordinate. Out-of-bounds reads as a wall.
func (g *Grid) TileAt(x, y int) Tile {
	if !g.IsValidPosition(x, y) {
		return TileWall
	}
	return g.tiles[y][x]
}

// IsPassable is true iff the coordinate is in bounds and not a wall
func (g *Grid) IsPassable(x, y int) bool {
	return g.TileAt(x, y) != TileWall
}

// IsPassablePoint is IsPassable for a Point
func (g *Grid) IsPassablePoint(p Point) bool {
	return g.IsPassable(p.X, p.Y)
}

// IsExit reports whether the point is an exit tile
func (g *Grid) IsExit(p Point) bool {
	return g.TileAt(p.X, p.Y) == TileExit
}

// FindTile returns the first occurrence of a tile in row-major order,
// or FallbackPoint if the tile does not appear.
func (g *Grid) FindTile(t Tile) Point {
	for y, row := range g.tiles {
		for x, tile := range row {
			if tile == t {
				return Pt(x, y)
			}
		}
	}
	return FallbackPoint
}

// FreeTiles returns every empty tile in row-major order.
// Entry and exit tiles are not free.
func (g *Grid) FreeTiles() []Point {
	var free []Point
	g.ForEachTile(func(x, y int, tile Tile) {
		if tile == TileEmpty {
			free = append(free, Pt(x, y))
		}
	})
	return free
}

// RandomFreeTile picks uniformly among the empty tiles
func (g *Grid) RandomFreeTile(rng Rand) (Point, error) {
	free := g.FreeTiles()
	if len(free) == 0 {
		return Point{}, ErrNoFreeTile
	}
	return free[rng.Intn(len(free))], nil
}

// ForEachTile iterates over all tiles in row-major order
func (g *Grid) ForEachTile(fn func(x, y int, tile Tile)) {
	for y, row := range g.tiles {
		for x, tile := range row {
			fn(x, y, tile)
		}
	}
}

// Lines renders the grid back into map rows
func (g *Grid) Lines() []string {
	lines := make([]string, len(g.tiles))
	for y, row := range g.tiles {
		var b strings.Builder
		for _, tile := range row {
			b.WriteRune(tile.Symbol())
		}
		lines[y] = b.String()
	}
	return lines
}
