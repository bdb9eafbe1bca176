// Package levels loads the ordered level pack: maps, names and enemy counts.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/config"
)

//go:embed default.yaml
var defaultPack []byte

// ErrNoLevels is returned for a pack without any level
var ErrNoLevels = errors.New("level pack has no levels")

// Level is one entry of a pack
type Level struct {
	Name    string `yaml:"name"`
	Map     string `yaml:"map"`
	Enemies int    `yaml:"enemies,omitempty"` // 0 means the default for its position

	grid *world.Grid
}

// Grid returns the parsed terrain of the level
func (l *Level) Grid() *world.Grid {
	return l.grid
}

// Pack is an ordered sequence of levels
type Pack struct {
	Title  string  `yaml:"title"`
	Levels []Level `yaml:"levels"`
}

// Default returns the built-in pack
func Default() (*Pack, error) {
	return Parse(defaultPack)
}

// Load reads a pack from a YAML file
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level pack %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level pack %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a pack. Every map must parse and hold an empty
// tile for enemies; a map whose exit cannot be reached only logs a warning.
func Parse(data []byte) (*Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse level pack: %w", err)
	}
	if len(p.Levels) == 0 {
		return nil, ErrNoLevels
	}

	for i := range p.Levels {
		l := &p.Levels[i]
		if l.Name == "" {
			l.Name = fmt.Sprintf("Level %d", i+1)
		}
		if l.Enemies < 0 {
			return nil, fmt.Errorf("level %d %q: negative enemy count %d", i+1, l.Name, l.Enemies)
		}

		grid, err := world.ParseGrid(l.Map)
		if err != nil {
			return nil, fmt.Errorf("level %d %q: %w", i+1, l.Name, err)
		}
		if len(grid.FreeTiles()) == 0 {
			return nil, fmt.Errorf("level %d %q: %w", i+1, l.Name, world.ErrNoFreeTile)
		}
		if !grid.ExitReachable() {
			log.Printf("warning: level %d %q: no exit is reachable from the entry", i+1, l.Name)
		}
		l.grid = grid
	}

	return &p, nil
}

// Len returns the number of levels in the pack
func (p *Pack) Len() int {
	return len(p.Levels)
}

// Level returns the level at a 0-based index
func (p *Pack) Level(index int) (*Level, bool) {
	if index < 0 || index >= len(p.Levels) {
		return nil, false
	}
	return &p.Levels[index], true
}

// EnemyCount returns how many enemies start on the level at index.
// Levels without an explicit count, and levels past the pack,
// get (index+1) * rules.EnemiesPerLevel.
func (p *Pack) EnemyCount(index int, rules config.Rules) int {
	if l, ok := p.Level(index); ok && l.Enemies > 0 {
		return l.Enemies
	}
	return (index + 1) * rules.EnemiesPerLevel
}

// IsFinal returns true if index is the last level of the pack
func (p *Pack) IsFinal(index int) bool {
	return index >= len(p.Levels)-1
}

// Next returns the index after current and true,
// or 0 and false if current is the final level.
func (p *Pack) Next(current int) (int, bool) {
	if current < 0 || p.IsFinal(current) {
		return 0, false
	}
	return current + 1, true
}
