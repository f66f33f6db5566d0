// Package frames manages the ordered animation frames of a drawing: their
// grids, their timing intervals and which one is being edited.
package frames

import (
	"math"

	"github.com/google/uuid"

	"pixelart/internal/pixelgrid"
)

const (
	DefaultColumns = 20
	DefaultRows    = 20
)

// Frame is one grid of the animation. Interval is the cumulative percentage
// (0-100) at which the frame stops showing. Key stays with the frame when
// others are added, removed or duplicated around it.
type Frame struct {
	Grid     pixelgrid.Grid `json:"grid"`
	Interval float64        `json:"interval"`
	Key      string         `json:"key"`
}

// Set is the frame list plus the shared canvas dimensions.
type Set struct {
	List        []Frame
	Columns     int
	Rows        int
	ActiveIndex int
}

var newKey = uuid.NewString

func create(cells int, interval float64) Frame {
	return Frame{
		Grid:     pixelgrid.Create(cells),
		Interval: interval,
		Key:      newKey(),
	}
}

// ResetIntervals spaces the frames evenly over the timeline, rounding to one
// decimal. The last frame always ends at exactly 100.
func ResetIntervals(list []Frame) []Frame {
	out := make([]Frame, len(list))
	step := 100 / float64(len(list))
	for i, frame := range list {
		frame.Interval = math.Round(float64(i+1)*step*10) / 10
		if i == len(list)-1 {
			frame.Interval = 100
		}
		out[i] = frame
	}
	return out
}

// Init returns a single blank frame. Non-positive dimensions fall back to
// the 20x20 default.
func Init(columns, rows int) Set {
	if columns <= 0 {
		columns = DefaultColumns
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	return Set{
		List:    ResetIntervals([]Frame{create(columns*rows, 100)}),
		Columns: columns,
		Rows:    rows,
	}
}

// SetFrames replaces the whole frame list, as when a saved drawing is loaded.
func SetFrames(list []Frame, columns, rows int) Set {
	return Set{
		List:    append([]Frame(nil), list...),
		Columns: columns,
		Rows:    rows,
	}
}

// Dimensions returns the grid layout shared by every frame.
func (s Set) Dimensions() pixelgrid.Dimensions {
	return pixelgrid.Dimensions{Columns: s.Columns, Rows: s.Rows}
}

// Active returns the frame being edited.
func (s Set) Active() Frame {
	return s.List[s.ActiveIndex]
}

// Grids returns the grid of every frame in order.
func (s Set) Grids() []pixelgrid.Grid {
	grids := make([]pixelgrid.Grid, len(s.List))
	for i, frame := range s.List {
		grids[i] = frame.Grid
	}
	return grids
}

// withFrame returns a copy of s whose frame i is replaced.
func (s Set) withFrame(i int, frame Frame) Set {
	list := make([]Frame, len(s.List))
	copy(list, s.List)
	list[i] = frame
	s.List = list
	return s
}

// ResetActiveGrid blanks the active frame, keeping its interval and key.
func ResetActiveGrid(s Set) Set {
	frame := s.Active()
	frame.Grid = pixelgrid.Create(len(frame.Grid))
	return s.withFrame(s.ActiveIndex, frame)
}

// SetActiveFrame selects frame index. index must be within the list.
func SetActiveFrame(s Set, index int) Set {
	s.ActiveIndex = index
	return s
}

// AddFrame appends a blank frame and makes it active.
func AddFrame(s Set) Set {
	list := make([]Frame, len(s.List), len(s.List)+1)
	copy(list, s.List)
	list = append(list, create(len(s.List[0].Grid), 100))
	s.List = ResetIntervals(list)
	s.ActiveIndex = len(list) - 1
	return s
}

// DeleteFrame removes frame index. The last remaining frame is never
// deleted. When the active frame is at or after index (and not the first),
// the selection moves to the new last frame.
func DeleteFrame(s Set, index int) Set {
	if len(s.List) <= 1 {
		return s
	}
	list := make([]Frame, 0, len(s.List)-1)
	list = append(list, s.List[:index]...)
	list = append(list, s.List[index+1:]...)

	if s.ActiveIndex >= index && s.ActiveIndex > 0 {
		s.ActiveIndex = len(list) - 1
	}
	s.List = ResetIntervals(list)
	return s
}

// DuplicateFrame inserts a copy of frame index right after it, under a new
// key, and makes the copy active. Grids are immutable so the copy shares the
// original's cells.
func DuplicateFrame(s Set, index int) Set {
	frame := s.List[index]
	frame.Key = newKey()

	list := make([]Frame, 0, len(s.List)+1)
	list = append(list, s.List[:index+1]...)
	list = append(list, frame)
	list = append(list, s.List[index+1:]...)

	s.List = ResetIntervals(list)
	s.ActiveIndex = index + 1
	return s
}

// ChangeDimensions resizes every frame along axis by delta. Dimensions never
// drop below 1; a resize that changes nothing returns s as is.
func ChangeDimensions(s Set, axis pixelgrid.Axis, delta int) Set {
	dims := s.Dimensions()
	next := pixelgrid.Resized(dims, axis, delta)
	if next == dims {
		return s
	}

	list := make([]Frame, len(s.List))
	for i, frame := range s.List {
		frame.Grid = pixelgrid.Resize(frame.Grid, axis, delta, dims)
		list[i] = frame
	}
	s.List = list
	s.Columns = next.Columns
	s.Rows = next.Rows
	return s
}

// SetFrameInterval overrides the interval of one frame without re-spacing
// the others.
func SetFrameInterval(s Set, index int, interval float64) Set {
	frame := s.List[index]
	frame.Interval = interval
	return s.withFrame(index, frame)
}

// DrawOnActive paints cell id of the active frame.
func DrawOnActive(s Set, color string, id int) Set {
	frame := s.Active()
	frame.Grid = pixelgrid.DrawPixel(frame.Grid, color, id)
	return s.withFrame(s.ActiveIndex, frame)
}

// EraseOnActive clears cell id of the active frame.
func EraseOnActive(s Set, id int) Set {
	return DrawOnActive(s, "", id)
}

// BucketOnActive flood-fills the active frame from cell id. When the start
// cell already has the fill colour the set is returned unchanged.
func BucketOnActive(s Set, id int, color string) Set {
	frame := s.Active()
	if start := frame.Grid[id]; start.Used == (color != "") && (!start.Used || start.Color == color) {
		return s
	}
	frame.Grid = pixelgrid.ApplyBucket(frame.Grid, pixelgrid.BucketArgs{
		ID:      id,
		Color:   color,
		Columns: s.Columns,
		Rows:    s.Rows,
	})
	return s.withFrame(s.ActiveIndex, frame)
}
