package model

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by PatternByName for unregistered names
var ErrUnknownPattern = errors.New("unknown pattern")

var patterns = map[string]func(row, col int) []Coord{
	"block":   Block,
	"blinker": Blinker,
	"glider":  Glider,
}

// Block returns a 2x2 still life with its top-left cell at (row, col)
func Block(row, col int) []Coord {
	return []Coord{
		{Row: row, Col: col},
		{Row: row, Col: col + 1},
		{Row: row + 1, Col: col},
		{Row: row + 1, Col: col + 1},
	}
}

// Blinker returns a horizontal period-2 oscillator starting at (row, col)
func Blinker(row, col int) []Coord {
	return []Coord{
		{Row: row, Col: col},
		{Row: row, Col: col + 1},
		{Row: row, Col: col + 2},
	}
}

// Glider returns a south-east travelling glider in the 3x3 box anchored at (row, col)
func Glider(row, col int) []Coord {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	coords := make([]Coord, 0, 5)
	for dr, cells := range pattern {
		for dc, alive := range cells {
			if alive {
				coords = append(coords, Coord{Row: row + dr, Col: col + dc})
			}
		}
	}
	return coords
}

// PatternByName returns the named pattern anchored at (row, col)
func PatternByName(name string, row, col int) ([]Coord, error) {
	build, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", name)
	}
	return build(row, col), nil
}

// PatternNames lists the registered pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RandomCoords scatters live cells over a rows x cols board, each cell alive
// with probability density. The same seed always yields the same cells.
func RandomCoords(rows, cols int, density float64, seed int64) []Coord {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))

	coords := make([]Coord, 0)
	for row := range max(rows, 0) {
		for col := range max(cols, 0) {
			if rng.Float64() < density {
				coords = append(coords, Coord{Row: row, Col: col})
			}
		}
	}
	return coords
}
