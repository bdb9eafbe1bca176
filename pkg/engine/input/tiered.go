// Package input turns device key codes into high-level game actions.
package input

import (
	"sort"
	"time"

	"mazeraid/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Combat
	ActionFire
	ActionPlaceBomb

	// Meta / UI
	ActionConfirm // Continue after a level, restart after game over
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "space", "b").
// Released is set by devices that report key-up.
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
	Released  bool
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten and terminal raw mode already deliver one event per key transition,
// so this stays a thin copy of the raw event.
type DebouncedInput struct {
	Device   Device
	Code     string
	Released bool
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device:   raw.Device,
		Code:     raw.Code,
		Released: raw.Released,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement
	"arrow_up":    ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"arrow_right": ActionMoveEast,

	// Fire
	"space": ActionFire,
	" ":     ActionFire,

	// Bomb (Latin b and the same key on a Russian layout)
	"b": ActionPlaceBomb,
	"и": ActionPlaceBomb,

	// Confirm
	"enter": ActionConfirm,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Direction returns the movement direction of a move action
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	case ActionMoveEast:
		return world.East, true
	}
	return 0, false
}

// MoveAction returns the move action for a direction
func MoveAction(dir world.Direction) Action {
	switch dir {
	case world.North:
		return ActionMoveNorth
	case world.South:
		return ActionMoveSouth
	case world.West:
		return ActionMoveWest
	case world.East:
		return ActionMoveEast
	}
	return ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move Up"
	case ActionMoveSouth:
		return "Move Down"
	case ActionMoveWest:
		return "Move Left"
	case ActionMoveEast:
		return "Move Right"
	case ActionFire:
		return "Fire"
	case ActionPlaceBomb:
		return "Place Bomb"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
