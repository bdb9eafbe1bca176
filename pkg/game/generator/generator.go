// Package generator builds procedural mazes for levels past the end of the pack.
package generator

import (
	"math/rand"

	"mazeraid/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(level int, rng *rand.Rand) (*world.Grid, error)
	Name() string
}

// Available generators
var (
	LineWalker = &LineWalkerGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = LineWalker
