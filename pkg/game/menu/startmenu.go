package menu

import (
	"fmt"

	engineinput "mazeraid/pkg/engine/input"
	"mazeraid/pkg/game/i18n"
	"mazeraid/pkg/game/renderer"
)

// StartMenuAction identifies a row of the start menu
type StartMenuAction int

const (
	StartMenuCharacter StartMenuAction = iota
	StartMenuWeapon
	StartMenuScale
	StartMenuStart
)

// StartMenuItem is one row of the start menu
type StartMenuItem struct {
	Action StartMenuAction
	menu   *StartMenu
}

// GetLabel returns the row with its current choice
func (i *StartMenuItem) GetLabel() string {
	m := i.menu
	switch i.Action {
	case StartMenuCharacter:
		c := renderer.Characters[m.character]
		return fmt.Sprintf("%s: %c %s", i18n.T("MENU_CHARACTER"), c.Glyph, i18n.T(c.Key))
	case StartMenuWeapon:
		w := renderer.Weapons[m.weapon]
		return fmt.Sprintf("%s: %c %s", i18n.T("MENU_WEAPON"), w.Horizontal, i18n.T(w.Key))
	case StartMenuScale:
		return fmt.Sprintf("%s: %dpx", i18n.T("MENU_SCALE"), m.scale)
	case StartMenuStart:
		return i18n.T("MENU_START")
	default:
		return ""
	}
}

// IsSelectable returns whether this item can be selected.
func (i *StartMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (i *StartMenuItem) GetHelpText() string {
	switch i.Action {
	case StartMenuCharacter:
		return i18n.T("MENU_CHARACTER_HELP")
	case StartMenuWeapon:
		return i18n.T("MENU_WEAPON_HELP")
	case StartMenuScale:
		return i18n.T("MENU_SCALE_HELP")
	case StartMenuStart:
		return i18n.T("MENU_START_HELP")
	default:
		return ""
	}
}

// StartMenu picks the look of the game before the first level starts
type StartMenu struct {
	menu *Menu

	character int
	weapon    int
	scale     int

	started   bool
	cancelled bool
}

// NewStartMenu creates a start menu preselecting the choices of initial
func NewStartMenu(initial renderer.Appearance) *StartMenu {
	m := &StartMenu{scale: renderer.DefaultScale}
	for i, c := range renderer.Characters {
		if c.Glyph == initial.Player {
			m.character = i
		}
	}
	for i, w := range renderer.Weapons {
		if w == initial.Weapon {
			m.weapon = i
		}
	}
	if initial.Scale >= renderer.MinScale && initial.Scale <= renderer.MaxScale {
		m.scale = initial.Scale
	}

	m.menu = NewMenu([]MenuItem{
		&StartMenuItem{Action: StartMenuCharacter, menu: m},
		&StartMenuItem{Action: StartMenuWeapon, menu: m},
		&StartMenuItem{Action: StartMenuScale, menu: m},
		&StartMenuItem{Action: StartMenuStart, menu: m},
	})
	return m
}

// GetTitle returns the menu title.
func (m *StartMenu) GetTitle() string {
	return i18n.T("MENU_TITLE")
}

// GetInstructions returns the menu instructions.
func (m *StartMenu) GetInstructions() string {
	return i18n.T("MENU_HINT")
}

// Menu returns the rows and cursor
func (m *StartMenu) Menu() *Menu {
	return m.menu
}

// HandleInput maps a raw device event and applies the resulting action.
// Key releases are ignored.
func (m *StartMenu) HandleInput(raw engineinput.RawInput) {
	if raw.Released {
		return
	}
	m.Handle(engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)).Action)
}

// Handle applies one action: up/down move the cursor, left/right change the
// selected choice, Enter changes it too or starts the game on the Start row
func (m *StartMenu) Handle(a engineinput.Action) {
	if m.Done() {
		return
	}

	switch a {
	case engineinput.ActionMoveNorth:
		m.menu.Move(-1)
	case engineinput.ActionMoveSouth:
		m.menu.Move(1)
	case engineinput.ActionMoveWest:
		m.change(-1)
	case engineinput.ActionMoveEast:
		m.change(1)
	case engineinput.ActionConfirm, engineinput.ActionFire:
		if m.selectedAction() == StartMenuStart {
			m.started = true
			return
		}
		m.change(1)
	case engineinput.ActionQuit:
		m.cancelled = true
	}
}

func (m *StartMenu) selectedAction() StartMenuAction {
	if item, ok := m.menu.SelectedItem().(*StartMenuItem); ok {
		return item.Action
	}
	return StartMenuStart
}

// change cycles the selected choice by step, wrapping lists and clamping the scale
func (m *StartMenu) change(step int) {
	switch m.selectedAction() {
	case StartMenuCharacter:
		m.character = wrap(m.character+step, len(renderer.Characters))
	case StartMenuWeapon:
		m.weapon = wrap(m.weapon+step, len(renderer.Weapons))
	case StartMenuScale:
		m.scale += step * renderer.ScaleStep
		if m.scale < renderer.MinScale {
			m.scale = renderer.MinScale
		}
		if m.scale > renderer.MaxScale {
			m.scale = renderer.MaxScale
		}
	}
}

func wrap(i, n int) int {
	return (i%n + n) % n
}

// Done reports whether the menu has closed either way
func (m *StartMenu) Done() bool {
	return m.started || m.cancelled
}

// Started reports whether the player chose to start the game
func (m *StartMenu) Started() bool {
	return m.started
}

// Cancelled reports whether the player quit from the menu
func (m *StartMenu) Cancelled() bool {
	return m.cancelled
}

// Appearance returns the current choices
func (m *StartMenu) Appearance() renderer.Appearance {
	return renderer.Appearance{
		Player: renderer.Characters[m.character].Glyph,
		Weapon: renderer.Weapons[m.weapon],
		Scale:  m.scale,
	}
}
