package rules

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// CellOf converts a boolean liveness flag into a Cell
func CellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3

A live cell with fewer than 2 or more than 3 live neighbors dies, a dead cell
with exactly 3 live neighbors is born, every other cell keeps its state.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Next returns the state of c in the following generation
func Next(c Cell, neighbors int) Cell {
	return CellOf(ApplyConwayRules(neighbors, c == Alive))
}
