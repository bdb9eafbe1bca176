// Package snapshot captures the display-facing view of a level.
package snapshot

import (
	"github.com/zyedidia/generic/mapset"

	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/entities"
	"mazeraid/pkg/game/gameplay"
	"mazeraid/pkg/game/state"
)

// Player mirrors the player for display
type Player struct {
	Pos    world.Point     `json:"pos"`
	Facing world.Direction `json:"facing"`
	HP     int             `json:"hp"`
	Hurt   bool            `json:"hurt"`
}

// Bullet mirrors one bullet
type Bullet struct {
	Pos   world.Point     `json:"pos"`
	Dir   world.Direction `json:"dir"`
	Range int             `json:"range"`
}

// Bomb mirrors one bomb and its remaining countdown
type Bomb struct {
	Pos       world.Point `json:"pos"`
	Countdown int         `json:"countdown"`
}

// Snapshot is a self-contained copy of everything a display needs for one frame
type Snapshot struct {
	SessionID string `json:"sessionId"`
	Level     int    `json:"level"`
	LevelName string `json:"levelName,omitempty"`
	Phase     string `json:"phase,omitempty"`

	Tiles []string `json:"tiles"`

	Player  Player        `json:"player"`
	Enemies []world.Point `json:"enemies"`
	Bullets []Bullet      `json:"bullets"`
	Bombs   []Bomb        `json:"bombs"`

	Ghosts     []world.Point `json:"ghosts"`
	WallHits   []world.Point `json:"wallHits"`
	Explosions []world.Point `json:"explosions"`
	DangerZone []world.Point `json:"dangerZone"`

	Messages []string `json:"messages,omitempty"`

	LevelComplete bool `json:"levelComplete"`
	GameOver      bool `json:"gameOver"`
}

// Capture copies the current state of g
func Capture(g *state.Game) Snapshot {
	s := Snapshot{
		SessionID: g.SessionID.String(),
		Level:     g.Level,
		LevelName: g.LevelName,
		Tiles:     g.Grid.Lines(),
		Player: Player{
			Pos:    g.Player.Pos,
			Facing: g.Player.Facing,
			HP:     g.Player.HP,
			Hurt:   g.Player.Hurt,
		},
		Enemies:       make([]world.Point, 0, len(g.Enemies)),
		Bullets:       make([]Bullet, 0, len(g.Bullets)),
		Bombs:         make([]Bomb, 0, len(g.Bombs)),
		Ghosts:        markerPositions(g, entities.MarkerGhost),
		WallHits:      markerPositions(g, entities.MarkerWallHit),
		Explosions:    markerPositions(g, entities.MarkerExplosion),
		DangerZone:    gameplay.DangerZone(g),
		LevelComplete: g.LevelComplete,
		GameOver:      g.GameOver,
	}

	for _, e := range g.Enemies {
		s.Enemies = append(s.Enemies, e.Pos)
	}
	for _, b := range g.Bullets {
		s.Bullets = append(s.Bullets, Bullet{Pos: b.Pos, Dir: b.Dir, Range: b.Range})
	}
	for _, b := range g.Bombs {
		s.Bombs = append(s.Bombs, Bomb{Pos: b.Pos, Countdown: b.Countdown})
	}
	for _, m := range g.Messages {
		s.Messages = append(s.Messages, m.Text)
	}

	return s
}

// markerPositions lists the distinct positions of live markers of one type
func markerPositions(g *state.Game, t entities.MarkerType) []world.Point {
	seen := mapset.New[world.Point]()
	out := make([]world.Point, 0)
	for _, m := range g.MarkersOf(t) {
		if seen.Has(m.Pos) {
			continue
		}
		seen.Put(m.Pos)
		out = append(out, m.Pos)
	}
	return out
}
