package renderer

import "mazeraid/pkg/engine/world"

// Character is a player look offered on the start menu
type Character struct {
	Key   string // Catalogue key of the name
	Glyph rune
}

// Weapon decides how bullets are drawn
type Weapon struct {
	Key        string // Catalogue key of the name
	Horizontal rune
	Vertical   rune
}

// Characters lists the selectable player glyphs, default first
var Characters = []Character{
	{Key: "CHARACTER_RAIDER", Glyph: IconPlayer},
	{Key: "CHARACTER_ROBOT", Glyph: '¤'},
	{Key: "CHARACTER_FAIRY", Glyph: '♀'},
	{Key: "CHARACTER_WIZARD", Glyph: 'Ω'},
}

// Weapons lists the selectable bullet looks, default first
var Weapons = []Weapon{
	{Key: "WEAPON_PISTOL", Horizontal: IconBulletH, Vertical: IconBulletV},
	{Key: "WEAPON_MACHINE_GUN", Horizontal: '•', Vertical: '•'},
	{Key: "WEAPON_BAZOOKA", Horizontal: '=', Vertical: '‖'},
	{Key: "WEAPON_WAND", Horizontal: '~', Vertical: '¦'},
}

// Map scale in pixels per tile, for displays that have pixels
const (
	MinScale     = 16
	MaxScale     = 64
	ScaleStep    = 4
	DefaultScale = 24
)

// Appearance is the player's choice of look for a game
type Appearance struct {
	Player rune
	Weapon Weapon
	Scale  int
}

// DefaultAppearance returns the first character and weapon at the default scale
func DefaultAppearance() Appearance {
	return Appearance{
		Player: Characters[0].Glyph,
		Weapon: Weapons[0],
		Scale:  DefaultScale,
	}
}

// bulletGlyph returns the glyph of a bullet flying in dir
func (a Appearance) bulletGlyph(dir world.Direction) rune {
	if dir == world.North || dir == world.South {
		return a.Weapon.Vertical
	}
	return a.Weapon.Horizontal
}
