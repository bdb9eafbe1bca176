package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazeraid/pkg/engine/input"
)

// keyCodes maps keyboard keys to the raw codes the input bindings know
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "arrow_up",
	ebiten.KeyArrowDown:   "arrow_down",
	ebiten.KeyArrowLeft:   "arrow_left",
	ebiten.KeyArrowRight:  "arrow_right",
	ebiten.KeySpace:       "space",
	ebiten.KeyB:           "b",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeyQ:           "q",
	ebiten.KeyEscape:      "escape",
}

// Movement keys are sampled every frame for held movement
var movementKeys = []ebiten.Key{
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
}

// pollInput forwards this frame's key presses to the session and refreshes
// the held movement keys
func (e *EbitenRenderer) pollInput(now time.Time) error {
	for key, code := range keyCodes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		raw := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now}
		if err := e.session.HandleInput(raw, now); err != nil {
			return err
		}
	}

	// A press may have started a new level, so ask for the held set after
	held := e.session.Held()
	for _, key := range movementKeys {
		raw := engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      keyCodes[key],
			Timestamp: now,
			Released:  !ebiten.IsKeyPressed(key),
		}
		held.Apply(engineinput.NewDebouncedInput(raw))
	}
	return nil
}

// handleZoom handles =/- for font/tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setTileSize(e.tileSize + tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setTileSize(e.tileSize - tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.setTileSize(defaultTileSize)
	}
}

func (e *EbitenRenderer) setTileSize(size int) {
	if size < minTileSize || size > maxTileSize {
		return
	}
	e.tileSize = size
	e.invalidateFontCache()
	e.recalculateViewport()
}
