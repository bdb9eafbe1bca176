package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazeraid/pkg/game/renderer"
)

// Draw renders the last snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.monoFontSource == nil || e.sansFontSource == nil {
		return
	}

	lineHeight := e.getUIFontSize() * 1.5

	drawColoredTextWithFace(screen, renderer.StatusLine(e.snap), mapMarginX, (mapMarginTop-lineHeight)/2, colorAction, e.getSansFontFace())

	mapBottom := e.drawMap(screen)
	e.drawMessages(screen, mapBottom+lineHeight/2, lineHeight)

	if e.menuActive() {
		e.drawStartMenu(screen, lineHeight)
		return
	}
	if prompt := renderer.Prompt(e.snap); prompt != "" {
		e.drawPrompt(screen, prompt, lineHeight)
	}
}

// drawStartMenu draws the start menu on a panel over the map preview
func (e *EbitenRenderer) drawStartMenu(screen *ebiten.Image, lineHeight float64) {
	m := e.startMenu
	items := m.Menu()

	lines := []string{m.GetTitle(), ""}
	lines = append(lines, items.Lines()...)
	help := ""
	if item := items.SelectedItem(); item != nil {
		help = item.GetHelpText()
	}
	lines = append(lines, "", help, m.GetInstructions())

	width := 0.0
	for _, line := range lines {
		if w := e.measureMarkup(line); w > width {
			width = w
		}
	}
	const padding = 16
	panelW := width + 2*padding
	panelH := float64(len(lines))*lineHeight + 2*padding
	panelX := (float64(e.windowWidth) - panelW) / 2
	panelY := (float64(e.windowHeight) - panelH) / 2

	vector.DrawFilledRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH), colorPanel, false)
	vector.StrokeRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH), 1, colorAction, false)

	y := panelY + padding
	for i, line := range lines {
		x := panelX + padding
		switch {
		case i == 0:
			drawColoredTextWithFace(screen, line, x, y, colorActionShort, e.getSansBoldFontFace())
		case i-2 == items.Selected():
			drawColoredTextWithFace(screen, line, x, y, colorAction, e.getSansFontFace())
		case i == len(lines)-2:
			drawColoredTextWithFace(screen, line, x, y, colorSubtle, e.getSansFontFace())
		default:
			e.drawMarkup(screen, line, x, y)
		}
		y += lineHeight
	}
}

// drawMap draws the visible tiles and returns the y coordinate below them
func (e *EbitenRenderer) drawMap(screen *ebiten.Image) float64 {
	frame := e.appearance.BuildFrame(e.snap, e.viewportCols, e.viewportRows)
	ts := float64(e.tileSize)

	// Center the map horizontally in the window
	originX := (float64(e.windowWidth) - float64(frame.Cols)*ts) / 2
	if originX < mapMarginX {
		originX = mapMarginX
	}
	originY := float64(mapMarginTop)

	vector.DrawFilledRect(screen, float32(originX), float32(originY),
		float32(float64(frame.Cols)*ts), float32(float64(frame.Rows)*ts), colorMapBackground, false)

	for y := 0; y < frame.Rows; y++ {
		for x := 0; x < frame.Cols; x++ {
			c := frame.Cells[y][x]
			px := originX + float64(x)*ts
			py := originY + float64(y)*ts

			if bg, ok := styleBackgrounds[c.Style]; ok {
				vector.DrawFilledRect(screen, float32(px), float32(py), float32(ts), float32(ts), bg, false)
			}
			if c.Glyph == ' ' {
				continue
			}
			col, ok := styleColors[c.Style]
			if !ok {
				col = colorText
			}
			e.drawColoredChar(screen, string(c.Glyph), px, py, col)
		}
	}
	return originY + float64(frame.Rows)*ts
}

// drawMessages draws the message log under the map
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, y, lineHeight float64) {
	width := float64(e.windowWidth - 2*mapMarginX)
	vector.StrokeLine(screen, mapMarginX, float32(y), float32(mapMarginX+width), float32(y), 1, colorSubtle, false)

	y += lineHeight / 2
	for _, msg := range e.snap.Messages {
		e.drawMarkup(screen, msg, mapMarginX, y)
		y += lineHeight
	}
}

// drawPrompt draws the key hint of a result screen on a panel over the map
func (e *EbitenRenderer) drawPrompt(screen *ebiten.Image, prompt string, lineHeight float64) {
	lines := []string{prompt}
	if n := len(e.snap.Messages); n > 0 {
		lines = append([]string{e.snap.Messages[n-1]}, lines...)
	}

	width := 0.0
	for _, line := range lines {
		if w := e.measureMarkup(line); w > width {
			width = w
		}
	}
	const padding = 16
	panelW := width + 2*padding
	panelH := float64(len(lines))*lineHeight + 2*padding
	panelX := (float64(e.windowWidth) - panelW) / 2
	panelY := (float64(e.windowHeight) - panelH) / 2

	vector.DrawFilledRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH), colorPanel, false)
	vector.StrokeRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH), 1, colorAction, false)

	y := panelY + padding
	for _, line := range lines {
		x := panelX + (panelW-e.measureMarkup(line))/2
		e.drawMarkup(screen, strings.TrimSpace(line), x, y)
		y += lineHeight
	}
}
