package model

// clampRange returns the half-open index range [lo, hi) covering i and its
// immediate neighbors on an axis of length n, clipped to the axis bounds.
func clampRange(i, n int) (lo, hi int) {
	return max(0, i-1), min(n, i+2)
}

// countNeighbors counts the living cells in the Moore neighborhood of
// (row, col), excluding the cell itself. Edge and corner cells have fewer
// neighbors; there is no wraparound.
func countNeighbors(cells []bool, rows, cols, row, col int) int {
	rowLo, rowHi := clampRange(row, rows)
	colLo, colHi := clampRange(col, cols)

	count := 0
	for r := rowLo; r < rowHi; r++ {
		base := r * cols
		for c := colLo; c < colHi; c++ {
			if r == row && c == col {
				continue
			}
			if cells[base+c] {
				count++
			}
		}
	}
	return count
}

// region is a half-open rectangle of cells [rowLo, rowHi) x [colLo, colHi)
type region struct {
	rowLo, rowHi int
	colLo, colHi int
}

func (r region) empty() bool {
	return r.rowLo >= r.rowHi || r.colLo >= r.colHi
}

// activeRegion returns the bounding box of living cells grown by a one-cell
// margin and clipped to the grid. Cells outside it are dead with no living
// neighbors, so they stay dead. ok is false when nothing is alive.
func activeRegion(cells []bool, rows, cols int) (reg region, ok bool) {
	minRow, maxRow, minCol, maxCol := 0, 0, 0, 0
	for row := range rows {
		for col := range cols {
			if !cells[row*cols+col] {
				continue
			}
			if !ok {
				minRow, maxRow, minCol, maxCol = row, row, col, col
				ok = true
				continue
			}
			minRow = min(minRow, row)
			maxRow = max(maxRow, row)
			minCol = min(minCol, col)
			maxCol = max(maxCol, col)
		}
	}
	if !ok {
		return region{}, false
	}

	reg.rowLo, _ = clampRange(minRow, rows)
	_, reg.rowHi = clampRange(maxRow, rows)
	reg.colLo, _ = clampRange(minCol, cols)
	_, reg.colHi = clampRange(maxCol, cols)
	return reg, true
}
