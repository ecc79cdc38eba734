package model

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/rules"
)

// ErrInvalidDimension is returned by New when a grid dimension is negative
var ErrInvalidDimension = errors.New("invalid dimension")

// Option configures an Engine
type Option func(*Engine)

// WithWorkers sets how many goroutines share the rows of each step. Values
// below 1 run the step on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithBoundedRegion restricts each step to the bounding box of living cells
// plus a one-cell margin
func WithBoundedRegion(enabled bool) Option {
	return func(e *Engine) {
		e.bounded = enabled
	}
}

// WithLogger attaches a logger for step tracing at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine owns a fixed-size board and advances it one generation at a time.
//
// The board is double-buffered: a step reads only from cur, writes only to
// next, and then swaps them. An Engine is not safe for concurrent use.
type Engine struct {
	rows       int
	cols       int
	cur        []bool // row-major
	next       []bool
	generation int

	workers int
	bounded bool
	logger  *slog.Logger
}

// New creates an engine with an all-dead rows x cols board
func New(rows, cols int, opts ...Option) (*Engine, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[New] rows=%d cols=%d", rows, cols)
	}

	e := &Engine{
		rows:    rows,
		cols:    cols,
		cur:     make([]bool, rows*cols),
		next:    make([]bool, rows*cols),
		workers: runtime.NumCPU(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.workers = max(e.workers, 1)

	return e, nil
}

// Rows returns the number of rows on the board
func (e *Engine) Rows() int {
	return e.rows
}

// Cols returns the number of columns on the board
func (e *Engine) Cols() int {
	return e.cols
}

// Generation returns how many steps have been applied since construction
func (e *Engine) Generation() int {
	return e.generation
}

// Populate sets each in-bounds coordinate alive. Coordinates outside the
// board are ignored.
func (e *Engine) Populate(coords []Coord) {
	for _, c := range coords {
		if c.Row >= 0 && c.Row < e.rows && c.Col >= 0 && c.Col < e.cols {
			e.cur[c.Row*e.cols+c.Col] = true
		}
	}
}

// Grid returns a snapshot of the current board
func (e *Engine) Grid() Grid {
	return newGrid(e.rows, e.cols, e.cur)
}

// Step advances the board by one generation and returns the new state
func (e *Engine) Step() Grid {
	e.advance()
	return e.Grid()
}

// StepN advances the board by n generations and returns the final state.
// n <= 0 leaves the board unchanged.
func (e *Engine) StepN(n int) Grid {
	for range max(n, 0) {
		e.advance()
	}
	return e.Grid()
}

// advance computes the next generation into e.next and swaps it in
func (e *Engine) advance() {
	clear(e.next)

	reg := region{rowHi: e.rows, colHi: e.cols}
	if e.bounded {
		// an all-dead board yields the empty region
		reg, _ = activeRegion(e.cur, e.rows, e.cols)
	}
	if !reg.empty() {
		e.computeRegion(reg)
	}

	e.cur, e.next = e.next, e.cur
	e.generation++

	e.logger.Debug("step",
		"generation", e.generation,
		"rows", reg.rowHi-reg.rowLo,
		"cols", reg.colHi-reg.colLo,
	)
}

// computeRegion splits the rows of reg into bands evaluated in parallel.
// Every band reads the frozen e.cur and writes disjoint rows of e.next.
func (e *Engine) computeRegion(reg region) {
	var (
		span    = reg.rowHi - reg.rowLo
		workers = min(e.workers, span)
	)
	if workers <= 1 {
		e.computeBand(reg.rowLo, reg.rowHi, reg.colLo, reg.colHi)
		return
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (span + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = reg.rowLo + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, reg.rowHi)
		)
		if startRow >= reg.rowHi {
			break
		}

		eg.Go(func() error {
			e.computeBand(startRow, endRow, reg.colLo, reg.colHi)
			return nil
		})
	}

	// bands never fail
	_ = eg.Wait()
}

func (e *Engine) computeBand(rowLo, rowHi, colLo, colHi int) {
	for row := rowLo; row < rowHi; row++ {
		base := row * e.cols
		for col := colLo; col < colHi; col++ {
			neighbors := countNeighbors(e.cur, e.rows, e.cols, row, col)
			e.next[base+col] = rules.ApplyConwayRules(neighbors, e.cur[base+col])
		}
	}
}
