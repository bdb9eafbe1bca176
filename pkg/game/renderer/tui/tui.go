// Package tui draws the game as colored text in a terminal.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gookit/color"

	"mazeraid/pkg/engine/clock"
	"mazeraid/pkg/engine/input"
	"mazeraid/pkg/engine/terminal"
	"mazeraid/pkg/game/i18n"
	"mazeraid/pkg/game/menu"
	"mazeraid/pkg/game/renderer"
	"mazeraid/pkg/game/session"
	"mazeraid/pkg/game/snapshot"
)

// Lines used around the map: HUD and blank (2), messages pane
// (header + 5 messages + footer = 7), prompt (2)
const (
	viewportTopMargin  = 11
	viewportSideMargin = 2
	viewportMinRows    = 7
	viewportMinCols    = 15
	maxMessages        = 5
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in  io.Reader
	out io.Writer
	raw bool // Put the terminal in raw mode while running

	observer renderer.Observer

	// Shown before the first level when set
	startMenu  *menu.StartMenu
	appearance renderer.Appearance

	colorWall        color.Style
	colorFloor       color.Style
	colorEntry       color.Style
	colorExit        color.Style
	colorPlayer      color.Style
	colorPlayerHurt  color.Style
	colorEnemy       color.Style
	colorBullet      color.Style
	colorBomb        color.Style
	colorGhost       color.Style
	colorWallHit     color.Style
	colorExplosion   color.Style
	colorDanger      color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style
}

// New creates a TUI renderer reading keys from in and drawing to out
func New(in io.Reader, out io.Writer) *TUIRenderer {
	return &TUIRenderer{in: in, out: out, appearance: renderer.DefaultAppearance()}
}

// NewTerminal creates a TUI renderer on the process terminal
func NewTerminal() *TUIRenderer {
	t := New(os.Stdin, os.Stdout)
	t.raw = terminal.IsTerminal()
	return t
}

// SetObserver registers a callback that sees every drawn snapshot
func (t *TUIRenderer) SetObserver(obs renderer.Observer) {
	t.observer = obs
}

// SetStartMenu shows m before play starts. Its scale choice has no
// effect on a terminal.
func (t *TUIRenderer) SetStartMenu(m *menu.StartMenu) {
	t.startMenu = m
}

// SetAppearance sets the player and bullet glyphs
func (t *TUIRenderer) SetAppearance(a renderer.Appearance) {
	t.appearance = a
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() error {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgDefault}
	t.colorEntry = color.Style{color.FgBlue}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorPlayerHurt = color.Style{color.FgRed, color.BgBlack, color.OpBold}
	t.colorEnemy = color.Style{color.FgMagenta, color.OpBold}
	t.colorBullet = color.Style{color.FgYellow, color.OpBold}
	t.colorBomb = color.Style{color.FgRed, color.OpBold}
	t.colorGhost = color.Style{color.FgCyan}
	t.colorWallHit = color.Style{color.FgYellow}
	t.colorExplosion = color.Style{color.FgLightRed, color.BgYellow, color.OpBold}
	t.colorDanger = color.Style{color.FgRed}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	return nil
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleEntry:
		return t.colorEntry.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StylePlayerHurt:
		return t.colorPlayerHurt.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleBullet:
		return t.colorBullet.Sprint(text)
	case renderer.StyleBomb:
		return t.colorBomb.Sprint(text)
	case renderer.StyleGhost:
		return t.colorGhost.Sprint(text)
	case renderer.StyleWallHit:
		return t.colorWallHit.Sprint(text)
	case renderer.StyleExplosion:
		return t.colorExplosion.Sprint(text)
	case renderer.StyleDanger:
		return t.colorDanger.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	for _, seg := range renderer.ParseMarkup(msg) {
		switch {
		case seg.Style == renderer.StyleAction && seg.Strong:
			b.WriteString(t.colorActionShort.Sprint(seg.Text))
		default:
			b.WriteString(t.StyleText(seg.Text, seg.Style))
		}
	}
	return b.String()
}

// GetViewportSize returns the map area that fits the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - viewportSideMargin
	rows = termHeight - viewportTopMargin

	if cols < viewportMinCols {
		cols = viewportMinCols
	}
	if rows < viewportMinRows {
		rows = viewportMinRows
	}
	return rows, cols
}

// Run reads keys from the terminal and redraws every frame until the
// player quits, the input ends or ctx is cancelled
func (t *TUIRenderer) Run(ctx context.Context, s *session.Session) error {
	if t.raw {
		restore, err := input.MakeRaw()
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		defer restore()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan input.RawInput, 16)
	go func() {
		input.ReadTerminal(ctx, t.in, events)
		close(events)
	}()

	terminal.HideCursor(t.out)
	terminal.Clear(t.out)
	err := t.runStartMenu(ctx, s, events)
	if err == nil && !s.Done() {
		terminal.Clear(t.out)
		err = s.Run(ctx, clock.Real{}, events, t.RenderFrame)
	}
	terminal.ShowCursor(t.out)

	fmt.Fprint(t.out, t.FormatText(i18n.T("GOODBYE")))
	terminal.EndLine(t.out)
	return err
}

// RenderFrame draws one snapshot over the previous frame
func (t *TUIRenderer) RenderFrame(snap snapshot.Snapshot) {
	var b strings.Builder
	terminal.Home(&b)

	b.WriteString(t.colorAction.Sprint(renderer.StatusLine(snap)))
	terminal.EndLine(&b)
	terminal.EndLine(&b)

	t.printMap(&b, snap)
	t.printMessagesPane(&b, snap)

	if prompt := renderer.Prompt(snap); prompt != "" {
		b.WriteString(t.FormatText(prompt))
	}
	terminal.EndLine(&b)

	io.WriteString(t.out, b.String())

	if t.observer != nil {
		t.observer(snap)
	}
}

// printMap renders the visible part of the map
func (t *TUIRenderer) printMap(b *strings.Builder, snap snapshot.Snapshot) {
	rows, cols := t.GetViewportSize()
	frame := t.appearance.BuildFrame(snap, cols, rows)

	for y := 0; y < frame.Rows; y++ {
		b.WriteString(" ")
		for _, c := range frame.Cells[y] {
			b.WriteString(t.StyleText(string(c.Glyph), c.Style))
		}
		terminal.EndLine(b)
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(b *strings.Builder, snap snapshot.Snapshot) {
	width, _ := terminal.GetSize()

	label := " " + i18n.T("MESSAGES_PANE") + " "
	labelLen := utf8.RuneCountInString(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	terminal.EndLine(b)
	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", sideLen) + label + strings.Repeat("─", rightLen)))
	terminal.EndLine(b)

	// Pad so the pane keeps its height as messages arrive
	for i := 0; i < maxMessages; i++ {
		if i < len(snap.Messages) {
			b.WriteString("  " + t.FormatText(snap.Messages[i]))
		}
		terminal.EndLine(b)
	}

	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", width)))
	terminal.EndLine(b)
}

// runStartMenu shows the start menu until the player starts or quits.
// Starting applies the chosen look and restarts the level clock.
func (t *TUIRenderer) runStartMenu(ctx context.Context, s *session.Session, events <-chan input.RawInput) error {
	m := t.startMenu
	if m == nil {
		return nil
	}

	for {
		t.RenderStartMenu(m, s.Snapshot())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case raw, ok := <-events:
			if !ok {
				s.Quit()
				return nil
			}
			m.HandleInput(raw)
		}

		switch {
		case m.Cancelled():
			s.Quit()
			return nil
		case m.Started():
			t.appearance = m.Appearance()
			s.Begin(time.Now())
			return nil
		}
	}
}

// RenderStartMenu draws the menu with a preview of the first level in the
// look currently chosen
func (t *TUIRenderer) RenderStartMenu(m *menu.StartMenu, snap snapshot.Snapshot) {
	var b strings.Builder
	terminal.Home(&b)

	b.WriteString(t.colorActionShort.Sprint(m.GetTitle()))
	terminal.EndLine(&b)
	terminal.EndLine(&b)

	items := m.Menu()
	for i, line := range items.Lines() {
		if i == items.Selected() {
			b.WriteString(t.colorAction.Sprint(line))
		} else {
			b.WriteString(line)
		}
		terminal.EndLine(&b)
	}
	terminal.EndLine(&b)

	if item := items.SelectedItem(); item != nil {
		b.WriteString(t.colorSubtle.Sprint(item.GetHelpText()))
	}
	terminal.EndLine(&b)
	terminal.EndLine(&b)

	rows, cols := t.GetViewportSize()
	frame := m.Appearance().BuildFrame(snap, cols, rows-len(items.Items))
	for y := 0; y < frame.Rows; y++ {
		b.WriteString(" ")
		for _, c := range frame.Cells[y] {
			b.WriteString(t.StyleText(string(c.Glyph), c.Style))
		}
		terminal.EndLine(&b)
	}
	terminal.EndLine(&b)

	b.WriteString(t.FormatText(m.GetInstructions()))
	terminal.EndLine(&b)

	io.WriteString(t.out, b.String())
}
