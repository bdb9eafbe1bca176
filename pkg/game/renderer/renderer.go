package renderer

import (
	"strings"

	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/i18n"
	"mazeraid/pkg/game/session"
	"mazeraid/pkg/game/snapshot"
)

// Map icons
const (
	IconWall       = '▒'
	IconFloor      = ' '
	IconEntry      = '○'
	IconExit       = '⌂'
	IconPlayer     = '@'
	IconEnemy      = 'M'
	IconBulletH    = '-'
	IconBulletV    = '|'
	IconGhost      = '†'
	IconWallHit    = '+'
	IconExplosion  = '*'
	IconDanger     = '░'
	IconOutsideMap = ' '
)

// Cell is one drawn map position
type Cell struct {
	Glyph rune
	Style TextStyle
}

// Frame is the visible part of the map, ready to draw
type Frame struct {
	Cols, Rows int
	// Map coordinates of the top-left cell
	OriginX, OriginY int
	Cells            [][]Cell
}

// BuildFrame lays out the map of snap with the default look
func BuildFrame(snap snapshot.Snapshot, maxCols, maxRows int) Frame {
	return DefaultAppearance().BuildFrame(snap, maxCols, maxRows)
}

// BuildFrame lays out the map of snap. When the map is larger than
// maxCols x maxRows the view is centered on the player and clamped to the
// map edges; a limit <= 0 means no limit.
func (a Appearance) BuildFrame(snap snapshot.Snapshot, maxCols, maxRows int) Frame {
	cols, rows := snap.Size()
	f := Frame{Cols: cols, Rows: rows}
	if maxCols > 0 && cols > maxCols {
		f.Cols = maxCols
		f.OriginX = viewStart(snap.Player.Pos.X, cols, maxCols)
	}
	if maxRows > 0 && rows > maxRows {
		f.Rows = maxRows
		f.OriginY = viewStart(snap.Player.Pos.Y, rows, maxRows)
	}

	overlay := snap.Overlay()
	bulletDirs := make(map[world.Point]world.Direction, len(snap.Bullets))
	for _, b := range snap.Bullets {
		bulletDirs[b.Pos] = b.Dir
	}
	countdowns := make(map[world.Point]int, len(snap.Bombs))
	for _, b := range snap.Bombs {
		countdowns[b.Pos] = b.Countdown
	}

	f.Cells = make([][]Cell, f.Rows)
	for y := 0; y < f.Rows; y++ {
		f.Cells[y] = make([]Cell, f.Cols)
		for x := 0; x < f.Cols; x++ {
			p := world.Pt(f.OriginX+x, f.OriginY+y)
			layer, ok := overlay[p]
			if !ok {
				f.Cells[y][x] = terrainCell(snap.TileAt(p))
				continue
			}

			switch layer {
			case snapshot.LayerPlayer:
				style := StylePlayer
				if snap.Player.Hurt {
					style = StylePlayerHurt
				}
				f.Cells[y][x] = Cell{a.Player, style}
			case snapshot.LayerEnemy:
				f.Cells[y][x] = Cell{IconEnemy, StyleEnemy}
			case snapshot.LayerBullet:
				f.Cells[y][x] = Cell{a.bulletGlyph(bulletDirs[p]), StyleBullet}
			case snapshot.LayerBomb:
				f.Cells[y][x] = Cell{countdownGlyph(countdowns[p]), StyleBomb}
			case snapshot.LayerGhost:
				f.Cells[y][x] = Cell{IconGhost, StyleGhost}
			case snapshot.LayerWallHit:
				f.Cells[y][x] = Cell{IconWallHit, StyleWallHit}
			case snapshot.LayerExplosion:
				f.Cells[y][x] = Cell{IconExplosion, StyleExplosion}
			case snapshot.LayerDanger:
				f.Cells[y][x] = Cell{IconDanger, StyleDanger}
			}
		}
	}
	return f
}

// viewStart returns the first visible index of an axis of length total
// shown through a window of size view, centered on pos
func viewStart(pos, total, view int) int {
	start := pos - view/2
	if start < 0 {
		start = 0
	}
	if start > total-view {
		start = total - view
	}
	return start
}

func terrainCell(t world.Tile) Cell {
	switch t {
	case world.TileEmpty:
		return Cell{IconFloor, StyleFloor}
	case world.TileEntry:
		return Cell{IconEntry, StyleEntry}
	case world.TileExit:
		return Cell{IconExit, StyleExit}
	default:
		return Cell{IconWall, StyleWall}
	}
}

func countdownGlyph(n int) rune {
	if n < 0 {
		n = 0
	}
	if n > 9 {
		n = 9
	}
	return rune('0' + n)
}

// Line returns row y of the frame as plain text
func (f Frame) Line(y int) string {
	var b strings.Builder
	for _, c := range f.Cells[y] {
		b.WriteRune(c.Glyph)
	}
	return b.String()
}

// StatusLine is the HUD shown above the map
func StatusLine(snap snapshot.Snapshot) string {
	parts := []string{i18n.T("HUD_LEVEL", snap.Level+1)}
	if snap.LevelName != "" {
		parts[0] += ": " + snap.LevelName
	}
	parts = append(parts,
		i18n.T("HUD_HP", snap.Player.HP),
		i18n.T("HUD_ENEMIES", len(snap.Enemies)),
		i18n.T("HUD_BOMBS", len(snap.Bombs)),
	)
	return strings.Join(parts, "   ")
}

// Prompt returns the key hint for a result screen, or "" while playing
func Prompt(snap snapshot.Snapshot) string {
	switch snap.Phase {
	case session.PhaseLevelComplete.String():
		return i18n.T("PROMPT_CONTINUE")
	case session.PhaseFinished.String():
		return i18n.T("PROMPT_FINISHED")
	case session.PhaseGameOver.String():
		return i18n.T("PROMPT_RESTART")
	}
	return ""
}
