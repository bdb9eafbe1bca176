package snapshot

import "mazeraid/pkg/engine/world"

// Layer is what a display shows on a tile, highest priority first
type Layer int

const (
	LayerNone Layer = iota
	LayerPlayer
	LayerEnemy
	LayerBullet
	LayerBomb
	LayerGhost
	LayerWallHit
	LayerExplosion
	LayerDanger
)

// Overlay maps each occupied tile to its topmost layer.
// Tiles with nothing on them are absent; draw the terrain there.
func (s *Snapshot) Overlay() map[world.Point]Layer {
	overlay := make(map[world.Point]Layer)
	put := func(p world.Point, l Layer) {
		if cur, ok := overlay[p]; !ok || l < cur {
			overlay[p] = l
		}
	}

	for _, p := range s.DangerZone {
		put(p, LayerDanger)
	}
	for _, p := range s.Explosions {
		put(p, LayerExplosion)
	}
	for _, p := range s.WallHits {
		put(p, LayerWallHit)
	}
	for _, p := range s.Ghosts {
		put(p, LayerGhost)
	}
	for _, b := range s.Bombs {
		put(b.Pos, LayerBomb)
	}
	for _, b := range s.Bullets {
		put(b.Pos, LayerBullet)
	}
	for _, p := range s.Enemies {
		put(p, LayerEnemy)
	}
	put(s.Player.Pos, LayerPlayer)

	return overlay
}

// TileAt returns the terrain symbol at p, or a wall outside the map
func (s *Snapshot) TileAt(p world.Point) world.Tile {
	if p.Y < 0 || p.Y >= len(s.Tiles) {
		return world.TileWall
	}
	row := []rune(s.Tiles[p.Y])
	if p.X < 0 || p.X >= len(row) {
		return world.TileWall
	}
	tile, ok := world.ParseTile(row[p.X])
	if !ok {
		return world.TileWall
	}
	return tile
}

// Size returns the map width and height in tiles
func (s *Snapshot) Size() (cols, rows int) {
	for _, line := range s.Tiles {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}
	return cols, len(s.Tiles)
}
