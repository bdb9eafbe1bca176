package gameplay

import (
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"

	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/entities"
	"mazeraid/pkg/game/state"
)

// BlastZone returns the passable tiles within Manhattan distance radius of
// center, in row-major order. Placement preview and detonation both use it.
func BlastZone(grid *world.Grid, center world.Point, radius int) []world.Point {
	var zone []world.Point
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			p := world.Pt(x, y)
			if center.Manhattan(p) <= radius && grid.IsPassablePoint(p) {
				zone = append(zone, p)
			}
		}
	}
	return zone
}

// PlaceBomb drops a bomb on the player's tile and publishes its danger zone
func PlaceBomb(g *state.Game) {
	if g.Over() {
		return
	}
	pos := g.Player.Pos
	g.AddBomb(&entities.Bomb{
		Pos:       pos,
		Countdown: g.Rules.BombCountdown,
		Zone:      BlastZone(g.Grid, pos, g.Rules.BlastRadius),
	})
}

// DangerZone is the union of the danger zones of every live bomb, in row-major order
func DangerZone(g *state.Game) []world.Point {
	seen := mapset.New[world.Point]()
	var out []world.Point
	for _, b := range g.Bombs {
		for _, p := range b.Zone {
			if !seen.Has(p) {
				seen.Put(p)
				out = append(out, p)
			}
		}
	}
	sortRowMajor(out)
	return out
}

// TickBombs counts every bomb down by one and detonates those that are due.
// All bombs due on the same tick go off, and their damage stacks.
func TickBombs(g *state.Game, now time.Time) {
	if g.Over() {
		return
	}

	remaining := make([]*entities.Bomb, 0, len(g.Bombs))
	var due []*entities.Bomb
	for _, b := range g.Bombs {
		if b.Ready() {
			due = append(due, b)
			continue
		}
		b.Tick()
		remaining = append(remaining, b)
	}
	g.Bombs = remaining

	for _, b := range due {
		detonate(g, b, now)
	}
}

// detonate applies one bomb's blast. The bomb has already left the store,
// which also takes its danger zone off the overlay.
func detonate(g *state.Game, b *entities.Bomb, now time.Time) {
	zone := BlastZone(g.Grid, b.Pos, g.Rules.BlastRadius)
	inZone := mapset.New[world.Point]()
	for _, p := range zone {
		inZone.Put(p)
		g.AddMarker(entities.NewMarker(entities.MarkerExplosion, p, now, g.Rules.ExplosionTTL))
	}

	for _, e := range append([]entities.Enemy(nil), g.Enemies...) {
		if inZone.Has(e.Pos) {
			g.RemoveEnemy(e.ID)
		}
	}

	if inZone.Has(g.Player.Pos) {
		damagePlayer(g, g.Rules.BlastDamage, now)
	}
}

func sortRowMajor(points []world.Point) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
}
