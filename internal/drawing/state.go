// Package drawing is the editor state tree and the closed set of operations
// that transform it. Dispatch never mutates the state it is given; each
// operation returns a new State sharing unchanged parts with the old one.
package drawing

import (
	"pixelart/internal/frames"
	"pixelart/internal/pixelgrid"
)

const (
	DefaultCellSize = 10
	DefaultDuration = 1.0
)

// State is everything an edit can change.
type State struct {
	Frames       frames.Set
	Palette      Palette
	CellSize     int
	CurrentColor string
	EraserOn     bool
	EyedropperOn bool
	Loading      bool
	Notification string
	// Duration is the animation loop length in seconds.
	Duration float64
}

// New returns a blank single-frame drawing.
func New(columns, rows, cellSize int) State {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	palette := DefaultPalette()
	return State{
		Frames:       frames.Init(columns, rows),
		Palette:      palette,
		CellSize:     cellSize,
		CurrentColor: palette.Current(),
		Duration:     DefaultDuration,
	}
}

// Default returns the 20x20 start-up drawing.
func Default() State {
	return New(frames.DefaultColumns, frames.DefaultRows, DefaultCellSize)
}

// ActiveGrid returns the grid of the frame being edited.
func (s State) ActiveGrid() pixelgrid.Grid {
	return s.Frames.Active().Grid
}

// Columns returns the canvas width in cells.
func (s State) Columns() int {
	return s.Frames.Columns
}

// Rows returns the canvas height in cells.
func (s State) Rows() int {
	return s.Frames.Rows
}
