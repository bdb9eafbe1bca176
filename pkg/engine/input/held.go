package input

import (
	"github.com/zyedidia/generic/mapset"

	"mazeraid/pkg/engine/world"
)

// HeldKeys tracks which actions are currently held down, for devices
// that report both key-down and key-up.
type HeldKeys struct {
	held mapset.Set[Action]
}

// NewHeldKeys creates an empty held-key set
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{held: mapset.New[Action]()}
}

// Apply records a debounced key transition. Unbound codes are ignored.
func (h *HeldKeys) Apply(ev DebouncedInput) {
	intent := MapToIntent(ev)
	if intent.Action == ActionNone {
		return
	}
	if ev.Released {
		h.held.Remove(intent.Action)
	} else {
		h.held.Put(intent.Action)
	}
}

// Press marks an action as held
func (h *HeldKeys) Press(a Action) {
	h.held.Put(a)
}

// Release marks an action as no longer held
func (h *HeldKeys) Release(a Action) {
	h.held.Remove(a)
}

// IsHeld reports whether an action is held
func (h *HeldKeys) IsHeld(a Action) bool {
	return h.held.Has(a)
}

// Clear releases everything
func (h *HeldKeys) Clear() {
	h.held = mapset.New[Action]()
}

// Direction returns the held movement direction with the highest priority:
// up, then down, then left, then right.
func (h *HeldKeys) Direction() (world.Direction, bool) {
	for _, dir := range world.AllDirections() {
		if h.held.Has(MoveAction(dir)) {
			return dir, true
		}
	}
	return 0, false
}
