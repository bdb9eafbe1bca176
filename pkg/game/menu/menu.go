// Package menu provides the start menu and the controls help.
package menu

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// Menu is a list of items with a selection cursor
type Menu struct {
	Items    []MenuItem
	selected int
}

// NewMenu creates a menu with the first selectable item selected
func NewMenu(items []MenuItem) *Menu {
	m := &Menu{Items: items}
	for i, item := range items {
		if item.IsSelectable() {
			m.selected = i
			break
		}
	}
	return m
}

// Selected returns the index of the selected item
func (m *Menu) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item, or nil for an empty menu
func (m *Menu) SelectedItem() MenuItem {
	if m.selected < 0 || m.selected >= len(m.Items) {
		return nil
	}
	return m.Items[m.selected]
}

// Move steps the selection to the next selectable item in the direction of
// step (negative is up), wrapping around at either end
func (m *Menu) Move(step int) {
	n := len(m.Items)
	if n == 0 || step == 0 {
		return
	}
	dir := 1
	if step < 0 {
		dir = -1
	}
	for i := 1; i < n; i++ {
		next := ((m.selected+dir*i)%n + n) % n
		if m.Items[next].IsSelectable() {
			m.selected = next
			return
		}
	}
}

// Lines returns the items as text, marking the selected one
func (m *Menu) Lines() []string {
	lines := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		prefix := "  "
		if i == m.selected {
			prefix = "> "
		}
		lines = append(lines, prefix+item.GetLabel())
	}
	return lines
}
