package drawing

import (
	"pixelart/internal/frames"
	"pixelart/internal/pixelgrid"
)

// Operation is a request to change the drawing. The set of operations is
// closed: only types in this package implement it.
type Operation interface {
	// Undoable reports whether the editor records the operation in history.
	Undoable() bool
	operation()
}

type undoable struct{}

func (undoable) Undoable() bool { return true }
func (undoable) operation()     {}

type transient struct{}

func (transient) Undoable() bool { return false }
func (transient) operation()     {}

// Init starts a new blank drawing. Zero dimensions mean 20x20.
type Init struct {
	undoable
	Columns int
	Rows    int
}

// LoadDrawing replaces the drawing with a saved one.
type LoadDrawing struct {
	undoable
	Frames   []frames.Frame
	Palette  []PaletteColor
	Columns  int
	Rows     int
	CellSize int
}

// Paint sets cell ID of the active frame to the current colour.
type Paint struct {
	undoable
	ID int
}

// Erase clears cell ID of the active frame.
type Erase struct {
	undoable
	ID int
}

// BucketFill flood-fills the active frame from cell ID with the current colour.
type BucketFill struct {
	undoable
	ID int
}

// ResetActiveFrame blanks the active frame.
type ResetActiveFrame struct {
	undoable
}

// SetActiveFrame selects the frame to edit.
type SetActiveFrame struct {
	transient
	Index int
}

// AddFrame appends a blank frame.
type AddFrame struct {
	undoable
}

// DeleteFrame removes the frame at Index.
type DeleteFrame struct {
	undoable
	Index int
}

// DuplicateFrame copies the frame at Index.
type DuplicateFrame struct {
	undoable
	Index int
}

// ResizeCanvas grows or shrinks every frame along Axis.
type ResizeCanvas struct {
	undoable
	Axis  pixelgrid.Axis
	Delta int
}

// SetFrameInterval overrides the timing of one frame.
type SetFrameInterval struct {
	undoable
	Index    int
	Interval float64
}

// SelectColor picks palette entry Index as the current colour and turns the
// eraser off.
type SelectColor struct {
	transient
	Index int
}

// SetPaletteColor changes the colour of palette entry Index.
type SetPaletteColor struct {
	transient
	Index int
	Color string
}

// ToggleEraser flips the eraser tool.
type ToggleEraser struct {
	transient
}

// ToggleEyedropper flips the eyedropper tool.
type ToggleEyedropper struct {
	transient
}

// Eyedrop takes the colour of cell ID of the active frame as the current
// colour and puts the eyedropper away. Transparent cells are ignored.
type Eyedrop struct {
	transient
	ID int
}

// SetLoading shows or hides the busy indicator.
type SetLoading struct {
	transient
	On bool
}

// Notify sets the message shown to the user; "" clears it.
type Notify struct {
	transient
	Message string
}

// SetCellSize changes the exported pixel size.
type SetCellSize struct {
	transient
	Size int
}

// SetDuration changes the animation loop length in seconds.
type SetDuration struct {
	transient
	Seconds float64
}
