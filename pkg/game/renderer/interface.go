// Package renderer holds what the display backends share: text styles, the
// message markup and the glyph grid built from a snapshot.
package renderer

import (
	"context"

	"mazeraid/pkg/game/session"
	"mazeraid/pkg/game/snapshot"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleEntry
	StyleExit
	StylePlayer
	StylePlayerHurt
	StyleEnemy
	StyleBullet
	StyleBomb
	StyleGhost
	StyleWallHit
	StyleExplosion
	StyleDanger
	StyleAction
	StyleSubtle
)

// Renderer is a display backend. It owns the frame loop: Run drives the
// session until the player quits or ctx is cancelled.
type Renderer interface {
	// Init prepares colors, fonts or the window
	Init() error

	// Run feeds input to the session and draws its snapshots
	Run(ctx context.Context, s *session.Session) error

	// StyleText applies a style to text
	StyleText(text string, style TextStyle) string

	// FormatText expands the message markup
	FormatText(msg string, args ...any) string

	// SetObserver registers a callback that sees every drawn snapshot
	SetObserver(obs Observer)
}

// Observer sees every snapshot a renderer draws. The spectator feed uses it
// to mirror the game over the network.
type Observer func(snapshot.Snapshot)
