// Package pixelgrid holds the paint state of a single frame: a flat,
// row-major slice of cells. Every function returns a new grid and leaves its
// input untouched, so grids can be shared freely between frames and history
// snapshots.
package pixelgrid

// Cell is one pixel. Color is a hex string without the leading '#'.
// An unused cell is transparent whatever Color holds.
type Cell struct {
	Used  bool   `json:"used"`
	Color string `json:"color"`
}

// Grid is a row-major cell sequence; index i is (i % columns, i / columns).
type Grid []Cell

// Axis selects the dimension a resize applies to.
type Axis string

const (
	Columns Axis = "columns"
	Rows    Axis = "rows"
)

// Dimensions is the column/row count a grid is laid out with.
type Dimensions struct {
	Columns int
	Rows    int
}

// Cells returns the cell count for d.
func (d Dimensions) Cells() int {
	return d.Columns * d.Rows
}

// Create returns count blank cells.
func Create(count int) Grid {
	if count < 0 {
		count = 0
	}
	return make(Grid, count)
}

// Point returns the coordinates of cell id.
func Point(id, columns int) (x, y int) {
	return id % columns, id / columns
}

// Index returns the cell id at (x, y).
func Index(x, y, columns int) int {
	return y*columns + x
}

// Resized returns the dimensions after growing or shrinking axis by delta,
// with both dimensions floored at 1.
func Resized(d Dimensions, axis Axis, delta int) Dimensions {
	switch axis {
	case Columns:
		d.Columns = max(d.Columns+delta, 1)
	case Rows:
		d.Rows = max(d.Rows+delta, 1)
	}
	return d
}

// Resize grows or shrinks the grid along axis by delta. New cells are blank
// and appear on the trailing edge; shrinking drops the trailing columns or
// rows. Every surviving cell keeps its (x, y) position.
func Resize(grid Grid, axis Axis, delta int, d Dimensions) Grid {
	next := Resized(d, axis, delta)
	if next == d {
		return grid
	}

	out := Create(next.Cells())
	keepCols := min(d.Columns, next.Columns)
	keepRows := min(d.Rows, next.Rows)
	for y := 0; y < keepRows; y++ {
		copy(out[y*next.Columns:y*next.Columns+keepCols], grid[y*d.Columns:y*d.Columns+keepCols])
	}
	return out
}

// DrawPixel sets cell id to color. An empty color erases the cell.
func DrawPixel(grid Grid, color string, id int) Grid {
	out := make(Grid, len(grid))
	copy(out, grid)
	out[id] = Cell{Used: color != "", Color: color}
	return out
}
