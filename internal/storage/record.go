// Package storage maps drawings to and from the persisted blob and keeps
// that blob in a key-value store.
package storage

import (
	"errors"
	"fmt"

	"pixelart/internal/drawing"
	"pixelart/internal/frames"
)

// Storage errors.
var (
	ErrInvalidRecord = errors.New("invalid drawing record")
	ErrNotFound      = errors.New("drawing not found")
)

// Record is one saved drawing.
type Record struct {
	Frames          []frames.Frame         `json:"frames"`
	PaletteGridData []drawing.PaletteColor `json:"paletteGridData"`
	Columns         int                    `json:"columns"`
	Rows            int                    `json:"rows"`
	CellSize        int                    `json:"cellSize"`
}

// Blob is everything the application persists: the saved drawings and the
// drawing that was open last.
type Blob struct {
	Stored  []Record `json:"stored"`
	Current *Record  `json:"current"`
}

// Save captures the parts of s worth persisting.
func Save(s drawing.State) Record {
	return Record{
		Frames:          s.Frames.List,
		PaletteGridData: s.Palette.Colors,
		Columns:         s.Columns(),
		Rows:            s.Rows(),
		CellSize:        s.CellSize,
	}
}

// Load returns the blob's current drawing applied on top of base, or base
// itself when there is no usable current drawing.
func Load(b Blob, base drawing.State) drawing.State {
	if b.Current == nil || b.Current.Validate() != nil {
		return base
	}
	return drawing.Dispatch(base, b.Current.Operation())
}

// Validate checks that the record describes a consistent drawing.
func (r Record) Validate() error {
	if r.Columns < 1 || r.Rows < 1 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidRecord, r.Columns, r.Rows)
	}
	if len(r.Frames) == 0 {
		return fmt.Errorf("%w: no frames", ErrInvalidRecord)
	}
	cells := r.Columns * r.Rows
	for i, f := range r.Frames {
		if len(f.Grid) != cells {
			return fmt.Errorf("%w: frame %d has %d cells, want %d", ErrInvalidRecord, i, len(f.Grid), cells)
		}
	}
	return nil
}

// Operation returns the edit that opens this drawing.
func (r Record) Operation() drawing.LoadDrawing {
	return drawing.LoadDrawing{
		Frames:   r.Frames,
		Palette:  r.PaletteGridData,
		Columns:  r.Columns,
		Rows:     r.Rows,
		CellSize: r.CellSize,
	}
}
