package menu

import (
	"fmt"
	"io"
	"strings"

	engineinput "mazeraid/pkg/engine/input"
)

// actions in the order the help screen shows them
var actions = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionFire,
	engineinput.ActionPlaceBomb,
	engineinput.ActionConfirm,
	engineinput.ActionQuit,
}

// BindingItem is one line of the help screen
type BindingItem struct {
	Action engineinput.Action
	Codes  []string
}

// GetLabel returns the display label for this binding
func (b BindingItem) GetLabel() string {
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(b.Action), codeText)
}

// Bindings returns every action with the keys bound to it
func Bindings() []BindingItem {
	byAction := engineinput.GetBindingsByAction()
	items := make([]BindingItem, 0, len(actions))
	for _, a := range actions {
		items = append(items, BindingItem{Action: a, Codes: displayCodes(byAction[a])})
	}
	return items
}

// displayCodes names the keys as a player would, dropping duplicates such
// as the literal space next to "space"
func displayCodes(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		name := code
		switch code {
		case " ":
			name = "space"
		case "arrow_up", "arrow_down", "arrow_left", "arrow_right":
			name = strings.TrimPrefix(code, "arrow_") + " arrow"
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// WriteBindings writes the help screen to w
func WriteBindings(w io.Writer) {
	for _, item := range Bindings() {
		fmt.Fprintf(w, "  %s\n", item.GetLabel())
	}
}
