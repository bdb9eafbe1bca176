// Package state holds the authoritative entity store for one level.
package state

import (
	"time"

	"github.com/google/uuid"

	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/config"
	"mazeraid/pkg/game/entities"
)

// Event is a terminal signal raised by the simulation
type Event int

// Signals
const (
	EventLevelComplete Event = iota
	EventGameOver
)

// String returns the event name
func (e Event) String() string {
	switch e {
	case EventLevelComplete:
		return "level-complete"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Message is a player-facing log line
type Message struct {
	Text      string
	Timestamp int64 // Unix milliseconds
}

// Game is the state of one level in play. It is owned by a single
// scheduler and mutated only by sequential subsystem updates.
type Game struct {
	SessionID uuid.UUID

	Level     int // 0-based index into the level sequence
	LevelName string

	Grid  *world.Grid
	Rules config.Rules
	Rand  world.Rand

	Player  *entities.Player
	Enemies []entities.Enemy
	Bullets []entities.Bullet
	Bombs   []*entities.Bomb
	Markers []entities.Marker

	Messages []Message

	// BombsPlaced counts every bomb added this level, detonated or not
	BombsPlaced int

	LevelComplete bool
	GameOver      bool

	events      []Event
	nextEnemyID int
	nextBombID  int
}

// NewGame creates the store for a level: the player stands on the entry
// tile and enemyCount enemies are dropped on random empty tiles.
func NewGame(grid *world.Grid, rules config.Rules, rng world.Rand, level int, enemyCount int) (*Game, error) {
	g := &Game{
		SessionID: uuid.New(),
		Level:     level,
		Grid:      grid,
		Rules:     rules,
		Rand:      rng,
		Player:    entities.NewPlayer(grid.FindTile(world.TileEntry), rules.PlayerHP),
		Messages:  make([]Message, 0),
	}

	for i := 0; i < enemyCount; i++ {
		pos, err := grid.RandomFreeTile(rng)
		if err != nil {
			return nil, err
		}
		g.AddEnemy(pos)
	}

	return g, nil
}

// Over reports whether either terminal signal has been raised
func (g *Game) Over() bool {
	return g.GameOver || g.LevelComplete
}

// AddEnemy appends an enemy at pos and returns its id
func (g *Game) AddEnemy(pos world.Point) int {
	g.nextEnemyID++
	g.Enemies = append(g.Enemies, entities.Enemy{ID: g.nextEnemyID, Pos: pos})
	return g.nextEnemyID
}

// RemoveEnemy removes the enemy with the given id.
// Removing an enemy that is already gone is a no-op and returns false.
func (g *Game) RemoveEnemy(id int) bool {
	for i, e := range g.Enemies {
		if e.ID == id {
			g.Enemies = append(g.Enemies[:i], g.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// AddBomb appends a bomb and assigns it an id
func (g *Game) AddBomb(b *entities.Bomb) {
	g.nextBombID++
	g.BombsPlaced++
	b.ID = g.nextBombID
	g.Bombs = append(g.Bombs, b)
}

// AddMarker records a transient marker
func (g *Game) AddMarker(m entities.Marker) {
	g.Markers = append(g.Markers, m)
}

// MarkersOf returns the live markers of one type
func (g *Game) MarkersOf(t entities.MarkerType) []entities.Marker {
	var out []entities.Marker
	for _, m := range g.Markers {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// Emit queues a terminal signal for the scheduler to deliver
func (g *Game) Emit(e Event) {
	g.events = append(g.events, e)
}

// DrainEvents returns and clears the queued signals
func (g *Game) DrainEvents() []Event {
	events := g.events
	g.events = nil
	return events
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, Message{Text: msg, Timestamp: time.Now().UnixMilli()})

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]Message, 0)
}
