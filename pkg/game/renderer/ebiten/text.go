package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"mazeraid/pkg/game/renderer"
)

// drawColoredChar draws a glyph centered in the tile at pixel position x, y (uses mono font)
func (e *EbitenRenderer) drawColoredChar(screen *ebiten.Image, char string, x, y float64, col color.Color) {
	face := e.getMonoFontFace()

	// text/v2 Draw uses top-left as the origin point
	w, h := text.Measure(char, face, 0)
	offsetX := (float64(e.tileSize) - w) / 2
	offsetY := (float64(e.tileSize) - h) / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+offsetX, y+offsetY)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, char, face, op)
}

// drawColoredTextWithFace draws text with a specific color and font face
// and returns its advance
func drawColoredTextWithFace(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) float64 {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
	return text.Advance(str, face)
}

// drawMarkup draws a message with its markup colored, starting at x, y.
// Returns the width drawn.
func (e *EbitenRenderer) drawMarkup(screen *ebiten.Image, msg string, x, y float64) float64 {
	start := x
	for _, seg := range renderer.ParseMarkup(msg) {
		face := e.getSansFontFace()
		col := styleColors[seg.Style]
		if seg.Strong {
			face = e.getSansBoldFontFace()
			col = colorActionShort
		}
		if col == nil {
			col = colorText
		}
		x += drawColoredTextWithFace(screen, seg.Text, x, y, col, face)
	}
	return x - start
}

// measureMarkup returns the drawn width of a message
func (e *EbitenRenderer) measureMarkup(msg string) float64 {
	w := 0.0
	for _, seg := range renderer.ParseMarkup(msg) {
		face := e.getSansFontFace()
		if seg.Strong {
			face = e.getSansBoldFontFace()
		}
		w += text.Advance(seg.Text, face)
	}
	return w
}
