package generator

import (
	"fmt"
	"math/rand"

	"mazeraid/pkg/engine/world"
)

// LineWalkerGenerator generates maps by walking lines in random directions
// with branching probability
type LineWalkerGenerator struct{}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// canvas is the carve state of a map under construction
type canvas struct {
	rows, cols int
	open       [][]bool
	rng        *rand.Rand
}

func newCanvas(rows, cols int, rng *rand.Rand) *canvas {
	c := &canvas{rows: rows, cols: cols, open: make([][]bool, rows), rng: rng}
	for i := range c.open {
		c.open[i] = make([]bool, cols)
	}
	return c
}

// playable is false on the perimeter, which always stays wall
func (c *canvas) playable(p world.Point) bool {
	return p.Y > 0 && p.Y < c.rows-1 && p.X > 0 && p.X < c.cols-1
}

// Generate creates a new grid for the given level (0-based)
func (g *LineWalkerGenerator) Generate(level int, rng *rand.Rand) (*world.Grid, error) {
	// Scale grid size with level (add 2 extra for perimeter walls)
	rows := 8 + 2 + level*2
	cols := 16 + 2 + level*4

	c := newCanvas(rows, cols, rng)

	// Start in the center (which is always in playable area)
	start := world.Pt(cols/2, rows/2)

	// Scale branch probability with level (more complex layouts)
	branchProb := float32(0.25) + float32(level)*0.03
	if branchProb > 0.65 {
		branchProb = 0.65
	}

	// Scale corridor length with level
	minDist := 2 + level/4
	maxDist := 4 + level/2

	// Build main corridors in all four directions
	for _, dir := range world.AllDirections() {
		g.buildLine(c, start, dir, branchProb, minDist, maxDist)
	}

	// Add extra corridors at higher levels for more complexity
	for i := 0; i < level/2; i++ {
		p := world.Pt(start.X+rng.Intn(5)-2, start.Y+rng.Intn(5)-2)
		if c.playable(p) && c.open[p.Y][p.X] {
			g.buildLine(c, p, world.Direction(rng.Intn(4)), branchProb, minDist, maxDist)
		}
	}

	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		row := make([]rune, cols)
		for x := 0; x < cols; x++ {
			row[x] = world.SymbolWall
			if c.open[y][x] {
				row[x] = world.SymbolEmpty
			}
		}
		lines[y] = string(row)
	}

	// Exit goes on the open tile farthest from the entry
	exit := farthest(c, start)
	if exit == start {
		return nil, fmt.Errorf("line walker level %d: no corridor carved", level)
	}
	lines[start.Y] = setRune(lines[start.Y], start.X, world.SymbolEntry)
	lines[exit.Y] = setRune(lines[exit.Y], exit.X, world.SymbolExit)

	grid, err := world.NewGrid(lines)
	if err != nil {
		return nil, fmt.Errorf("line walker level %d: %w", level, err)
	}
	if len(grid.FreeTiles()) == 0 {
		return nil, fmt.Errorf("line walker level %d: %w", level, world.ErrNoFreeTile)
	}
	return grid, nil
}

// buildLine carves a line of tiles starting at p in the given direction,
// occasionally branching off in a random direction.
// Tiles are only carved within the playable area (not on the perimeter).
func (g *LineWalkerGenerator) buildLine(c *canvas, p world.Point, dir world.Direction, branchProb float32, minDist, maxDist int) world.Point {
	distance := minDist + c.rng.Intn(maxDist-minDist+1)

	for segment := 0; segment < distance; segment++ {
		if c.playable(p) {
			c.open[p.Y][p.X] = true
		}

		// If the next tile would be outside playable area, stop here
		next := p.Step(dir)
		if !c.playable(next) {
			return p
		}

		if c.rng.Float32() < branchProb {
			g.buildLine(c, p, world.Direction(c.rng.Intn(4)), branchProb-.1, minDist, maxDist)
		}

		p = next
	}

	if c.playable(p) {
		c.open[p.Y][p.X] = true
	}
	return p
}

// farthest returns the open tile with the longest walk from start.
// Ties go to the first in row-major order.
func farthest(c *canvas, start world.Point) world.Point {
	dist := map[world.Point]int{start: 0}
	queue := []world.Point{start}
	best := start

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		d := dist[current]
		if d > dist[best] || (d == dist[best] && (current.Y < best.Y || (current.Y == best.Y && current.X < best.X))) {
			best = current
		}

		for _, dir := range world.AllDirections() {
			n := current.Step(dir)
			if _, seen := dist[n]; seen || !c.playable(n) || !c.open[n.Y][n.X] {
				continue
			}
			dist[n] = d + 1
			queue = append(queue, n)
		}
	}
	return best
}

func setRune(s string, i int, r rune) string {
	runes := []rune(s)
	runes[i] = r
	return string(runes)
}
