// Package render draws grid snapshots for people to look at. It only reads
// model.Grid values and never touches an engine.
package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// clear screen and move the cursor home
	ansiClear = "\033[H\033[2J"
)

// Renderer displays a single grid snapshot
type Renderer interface {
	Display(g model.Grid) error
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a block renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g model.Grid) error {
	w := bufio.NewWriter(r.Out)
	for row := range g.Rows() {
		for col := range g.Cols() {
			if g.Alive(row, col) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[TerminalRenderer.Display] failed to write grid")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClear)
	return errors.Wrap(err, "[TerminalRenderer.Clear] failed to clear terminal")
}

// MatrixRenderer prints each row as space separated 0/1 digits followed by a
// dashed rule
type MatrixRenderer struct {
	Out io.Writer
}

// NewMatrixRenderer returns a digit renderer writing to out
func NewMatrixRenderer(out io.Writer) *MatrixRenderer {
	return &MatrixRenderer{Out: out}
}

// Display writes the grid as a 0/1 matrix
func (r *MatrixRenderer) Display(g model.Grid) error {
	var (
		w    = bufio.NewWriter(r.Out)
		rule = strings.Repeat("-", g.Cols()*2)
	)
	for row := range g.Rows() {
		for col := range g.Cols() {
			if g.Alive(row, col) {
				w.WriteString("1 ")
			} else {
				w.WriteString("0 ")
			}
		}
		w.WriteByte('\n')
		w.WriteString(rule)
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[MatrixRenderer.Display] failed to write grid")
}
