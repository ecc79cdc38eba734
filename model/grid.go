package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"

	"github.com/sheikhrachel/gol-engine/rules"
)

// Coord addresses a single cell by row and column
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Grid is a read-only snapshot of the board at one generation.
//
// A Grid owns a private copy of the cell storage, so nothing done to it can
// reach back into the Engine that produced it. The zero value is an empty
// 0x0 grid.
type Grid struct {
	rows  int
	cols  int
	cells []bool // row-major
}

// newGrid copies cells into a fresh snapshot
func newGrid(rows, cols int, cells []bool) Grid {
	snapshot := make([]bool, rows*cols)
	copy(snapshot, cells)
	return Grid{
		rows:  rows,
		cols:  cols,
		cells: snapshot,
	}
}

// Rows returns the number of rows in the grid
func (g Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g Grid) Cols() int {
	return g.cols
}

// Alive reports whether the cell at (row, col) is alive. Coordinates outside
// the grid are reported as dead.
func (g Grid) Alive(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Cell returns the state of the cell at (row, col)
func (g Grid) Cell(row, col int) rules.Cell {
	return rules.CellOf(g.Alive(row, col))
}

// Cells returns a fresh rows x cols copy of the cell states
func (g Grid) Cells() [][]bool {
	out := make([][]bool, g.rows)
	for row := range g.rows {
		out[row] = make([]bool, g.cols)
		copy(out[row], g.cells[row*g.cols:(row+1)*g.cols])
	}
	return out
}

// LiveCells enumerates the living cells in row-major order
func (g Grid) LiveCells() []Coord {
	live := make([]Coord, 0)
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row*g.cols+col] {
				live = append(live, Coord{Row: row, Col: col})
			}
		}
	}
	return live
}

// CountLiving returns the total number of living cells
func (g Grid) CountLiving() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Density returns the fraction of living cells, 0 for an empty grid
func (g Grid) Density() float64 {
	if len(g.cells) == 0 {
		return 0
	}
	return float64(g.CountLiving()) / float64(len(g.cells))
}

// Equal reports whether both grids have the same dimensions and cell states
func (g Grid) Equal(other Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// Hash returns an MD5 digest of the dimensions and cell states
func (g Grid) Hash() string {
	h := md5.New()

	var dims [16]byte
	binary.BigEndian.PutUint64(dims[:8], uint64(g.rows))
	binary.BigEndian.PutUint64(dims[8:], uint64(g.cols))
	h.Write(dims[:])

	for _, alive := range g.cells {
		if alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
