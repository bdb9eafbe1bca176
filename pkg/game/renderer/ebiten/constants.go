package ebiten

import (
	"image/color"

	"mazeraid/pkg/game/renderer"
)

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorPlayerHurt    = color.RGBA{255, 80, 80, 255}   // Bright red
	colorWall          = color.RGBA{180, 180, 200, 255} // Light gray-blue for wall text
	colorWallBg        = color.RGBA{60, 60, 80, 255}    // Darker background for walls
	colorFloor         = color.RGBA{100, 100, 120, 255}
	colorEntry         = color.RGBA{100, 150, 255, 255} // Bright blue
	colorExit          = color.RGBA{100, 255, 100, 255} // Bright green
	colorEnemy         = color.RGBA{255, 150, 255, 255} // Bright pink
	colorBullet        = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorBomb          = color.RGBA{255, 165, 0, 255}   // Orange
	colorGhost         = color.RGBA{200, 200, 255, 255} // Light blue
	colorWallHit       = color.RGBA{255, 220, 100, 255} // Yellow
	colorExplosion     = color.RGBA{255, 240, 200, 255}
	colorDanger        = color.RGBA{255, 120, 120, 255}
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction        = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorActionShort   = color.RGBA{220, 200, 255, 255}
	colorPanel         = color.RGBA{30, 30, 50, 220} // Semi-transparent dark

	colorDangerBg    = color.RGBA{80, 30, 30, 220}  // Dark red under the blast preview
	colorExplosionBg = color.RGBA{200, 90, 20, 255} // Orange flash
)

// styleColors maps text styles to foreground colors
var styleColors = map[renderer.TextStyle]color.Color{
	renderer.StyleNormal:     colorText,
	renderer.StyleWall:       colorWall,
	renderer.StyleFloor:      colorFloor,
	renderer.StyleEntry:      colorEntry,
	renderer.StyleExit:       colorExit,
	renderer.StylePlayer:     colorPlayer,
	renderer.StylePlayerHurt: colorPlayerHurt,
	renderer.StyleEnemy:      colorEnemy,
	renderer.StyleBullet:     colorBullet,
	renderer.StyleBomb:       colorBomb,
	renderer.StyleGhost:      colorGhost,
	renderer.StyleWallHit:    colorWallHit,
	renderer.StyleExplosion:  colorExplosion,
	renderer.StyleDanger:     colorDanger,
	renderer.StyleAction:     colorAction,
	renderer.StyleSubtle:     colorSubtle,
}

// styleBackgrounds maps the styles that fill their tile
var styleBackgrounds = map[renderer.TextStyle]color.Color{
	renderer.StyleWall:      colorWallBg,
	renderer.StyleDanger:    colorDangerBg,
	renderer.StyleExplosion: colorExplosionBg,
}

// Tile sizes in pixels, adjustable with +/-
const (
	defaultTileSize = renderer.DefaultScale
	minTileSize     = 12
	maxTileSize     = renderer.MaxScale
	tileSizeStep    = renderer.ScaleStep

	baseFontSize = 20.0

	// Space around the map for the HUD and the message pane
	mapMarginX      = 16
	mapMarginTop    = 48
	mapMarginBottom = 140
)
