// Package ebiten provides an Ebiten-based 2D graphical renderer.
package ebiten

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "mazeraid/pkg/engine/input"
	"mazeraid/pkg/game/menu"
	"mazeraid/pkg/game/renderer"
	"mazeraid/pkg/game/session"
	"mazeraid/pkg/game/snapshot"
)

// EbitenRenderer is the Ebiten-based graphical renderer. Ebiten calls
// Update and Draw on one goroutine, so the session is stepped in Update
// and needs no locking.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	// Viewport dimensions (in tiles), recalculated from window and tile size
	viewportRows int
	viewportCols int

	// Font sources for text rendering
	monoFontSource     *text.GoTextFaceSource // Monospace font for map tiles
	sansFontSource     *text.GoTextFaceSource // Sans-serif font for UI text
	sansBoldFontSource *text.GoTextFaceSource // Sans-serif bold for key hints

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace
	cachedSansBoldFace *text.GoTextFace

	ctx      context.Context
	session  *session.Session
	observer renderer.Observer

	// Start menu, shown until it closes; the look follows its choices live
	startMenu  *menu.StartMenu
	appearance renderer.Appearance

	// Snapshot taken after the last update, drawn by Draw
	snap snapshot.Snapshot

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  1024,
		windowHeight: 720,
		tileSize:     defaultTileSize,
		appearance:   renderer.DefaultAppearance(),
	}
}

// SetStartMenu shows m before play starts
func (e *EbitenRenderer) SetStartMenu(m *menu.StartMenu) {
	e.startMenu = m
}

// SetAppearance sets the player and bullet glyphs and the tile size
func (e *EbitenRenderer) SetAppearance(a renderer.Appearance) {
	e.appearance = a
	e.setTileSize(a.Scale)
}

// SetObserver registers a callback that sees every drawn snapshot
func (e *EbitenRenderer) SetObserver(obs renderer.Observer) {
	e.observer = obs
}

// Init loads fonts and sets up the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Maze Raid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	e.recalculateViewport()
	return nil
}

// Run opens the window and plays until the player quits, the window is
// closed or ctx is cancelled
func (e *EbitenRenderer) Run(ctx context.Context, s *session.Session) error {
	e.ctx = ctx
	e.session = s
	e.snap = s.Snapshot()

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// Update handles input and advances the session (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	if e.ctx != nil && e.ctx.Err() != nil {
		return ebiten.Termination
	}

	now := time.Now()
	if e.menuActive() {
		return e.updateStartMenu(now)
	}

	e.handleZoom()

	if err := e.pollInput(now); err != nil {
		return err
	}
	if err := e.session.Step(now); err != nil {
		return err
	}
	if e.session.Done() {
		return ebiten.Termination
	}

	e.snap = e.session.Snapshot()
	if e.observer != nil {
		e.observer(e.snap)
	}
	return nil
}

func (e *EbitenRenderer) menuActive() bool {
	return e.startMenu != nil && !e.startMenu.Done()
}

// updateStartMenu feeds this frame's key presses to the start menu and
// previews its choices. Starting restarts the level clock.
func (e *EbitenRenderer) updateStartMenu(now time.Time) error {
	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			e.startMenu.HandleInput(engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now})
		}
	}

	if e.startMenu.Cancelled() {
		e.session.Quit()
		return ebiten.Termination
	}
	if look := e.startMenu.Appearance(); look != e.appearance {
		e.SetAppearance(look)
	}
	if e.startMenu.Started() {
		e.session.Begin(now)
	}
	e.snap = e.session.Snapshot()
	return nil
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.recalculateViewport()
	}
	return outsideWidth, outsideHeight
}

// recalculateViewport fits the map area to the window
func (e *EbitenRenderer) recalculateViewport() {
	e.viewportCols = (e.windowWidth - 2*mapMarginX) / e.tileSize
	e.viewportRows = (e.windowHeight - mapMarginTop - mapMarginBottom) / e.tileSize
	if e.viewportCols < 1 {
		e.viewportCols = 1
	}
	if e.viewportRows < 1 {
		e.viewportRows = 1
	}
}

// StyleText returns text unchanged: styles are applied as colors at draw time
func (e *EbitenRenderer) StyleText(s string, style renderer.TextStyle) string {
	return s
}

// FormatText expands arguments; markup is kept for drawMarkup to color
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
