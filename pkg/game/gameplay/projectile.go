package gameplay

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/entities"
	"mazeraid/pkg/game/state"
)

// Fire launches a bullet from the player's tile in the direction they face
func Fire(g *state.Game) {
	if g.Over() {
		return
	}
	g.Bullets = append(g.Bullets, entities.NewBullet(g.Player.Pos, g.Player.Facing, g.Rules.BulletRange))
}

// UpdateBullets advances every bullet one tile and resolves what it hits.
//
// Bullets leaving passable ground spark on the wall and vanish. Hits are then
// checked against the moved bullets: each enemy standing on a bullet is removed
// once and leaves a ghost, and every bullet on that tile is consumed.
func UpdateBullets(g *state.Game, now time.Time) {
	if g.Over() {
		return
	}

	moved := make([]entities.Bullet, 0, len(g.Bullets))
	for _, b := range g.Bullets {
		if b.Spent() {
			continue
		}
		b.Advance()
		if !g.Grid.IsPassablePoint(b.Pos) {
			g.AddMarker(entities.NewMarker(entities.MarkerWallHit, b.Pos, now, g.Rules.WallHitTTL))
			continue
		}
		moved = append(moved, b)
	}

	occupied := mapset.New[world.Point]()
	for _, b := range moved {
		occupied.Put(b.Pos)
	}

	hit := mapset.New[world.Point]()
	for _, e := range append([]entities.Enemy(nil), g.Enemies...) {
		if !occupied.Has(e.Pos) {
			continue
		}
		if g.RemoveEnemy(e.ID) {
			g.AddMarker(entities.NewMarker(entities.MarkerGhost, e.Pos, now, g.Rules.GhostTTL))
		}
		hit.Put(e.Pos)
	}

	live := moved[:0]
	for _, b := range moved {
		if hit.Has(b.Pos) || b.Spent() {
			continue
		}
		live = append(live, b)
	}
	g.Bullets = live
}
