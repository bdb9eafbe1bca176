package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Reachable collects all passable points reachable from start via N/S/W/E steps
func (g *Grid) Reachable(start Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !g.IsPassablePoint(start) {
		return visited
	}

	queue := []Point{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			n := current.Step(dir)
			if g.IsPassablePoint(n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// Distances returns the walking distance from start to every reachable point
func (g *Grid) Distances(start Point) map[Point]int {
	dist := make(map[Point]int)
	if !g.IsPassablePoint(start) {
		return dist
	}

	queue := []Point{start}
	dist[start] = 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			n := current.Step(dir)
			if _, seen := dist[n]; seen || !g.IsPassablePoint(n) {
				continue
			}
			dist[n] = dist[current] + 1
			queue = append(queue, n)
		}
	}

	return dist
}

// ExitReachable reports whether any exit can be walked to from the entry
func (g *Grid) ExitReachable() bool {
	reachable := g.Reachable(g.entry)
	for _, exit := range g.exits {
		if reachable.Has(exit) {
			return true
		}
	}
	return false
}
