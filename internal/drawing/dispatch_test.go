package drawing

import (
	"reflect"
	"testing"

	"pixelart/internal/frames"
	"pixelart/internal/pixelgrid"
)

type unknownOp struct {
	undoable
}

// deepCopy copies every slice so later writes into shared backing arrays
// would show up as a difference.
func deepCopy(s State) State {
	list := make([]frames.Frame, len(s.Frames.List))
	for i, f := range s.Frames.List {
		f.Grid = append(pixelgrid.Grid(nil), f.Grid...)
		list[i] = f
	}
	s.Frames.List = list
	s.Palette.Colors = append([]PaletteColor(nil), s.Palette.Colors...)
	return s
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.Columns() != 20 || s.Rows() != 20 {
		t.Errorf("expected 20x20, got %dx%d", s.Columns(), s.Rows())
	}
	if len(s.Frames.List) != 1 {
		t.Errorf("expected 1 frame, got %d", len(s.Frames.List))
	}
	if s.CellSize != DefaultCellSize {
		t.Errorf("expected cell size %d, got %d", DefaultCellSize, s.CellSize)
	}
	if s.CurrentColor != s.Palette.Colors[0].Color {
		t.Errorf("expected first palette colour current, got %q", s.CurrentColor)
	}
}

func TestDispatchUnknownOperation(t *testing.T) {
	s := New(2, 2, 5)
	for _, op := range []Operation{nil, unknownOp{}} {
		got := Dispatch(s, op)
		if !reflect.DeepEqual(got, s) {
			t.Errorf("%T changed the state", op)
		}
	}
}

func TestDispatchDoesNotMutateInput(t *testing.T) {
	s := New(2, 2, 5)
	snapshot := deepCopy(s)
	ops := []Operation{
		Paint{ID: 0},
		Erase{ID: 0},
		BucketFill{ID: 1},
		AddFrame{},
		ResizeCanvas{Axis: pixelgrid.Columns, Delta: 1},
		SetFrameInterval{Index: 0, Interval: 40},
		SetPaletteColor{Index: 0, Color: "abcdef"},
		ResetActiveFrame{},
	}
	for _, op := range ops {
		_ = Dispatch(s, op)
		if !reflect.DeepEqual(s, snapshot) {
			t.Fatalf("%T mutated its input", op)
		}
	}
}

func TestDispatchPaintEraseBucket(t *testing.T) {
	s := New(2, 2, 5)
	s = Dispatch(s, SelectColor{Index: 5})
	color := s.Palette.Colors[5].Color

	s = Dispatch(s, Paint{ID: 1})
	if c := s.ActiveGrid()[1]; !c.Used || c.Color != color {
		t.Errorf("paint: got %+v", c)
	}

	s = Dispatch(s, Erase{ID: 1})
	if s.ActiveGrid()[1].Used {
		t.Error("erase left the cell used")
	}

	s = Dispatch(s, BucketFill{ID: 0})
	for i, c := range s.ActiveGrid() {
		if !c.Used || c.Color != color {
			t.Errorf("bucket: cell %d = %+v", i, c)
		}
	}
}

func TestDispatchFrameOperations(t *testing.T) {
	s := New(1, 1, 5)
	s = Dispatch(s, AddFrame{})
	s = Dispatch(s, DuplicateFrame{Index: 1})
	if len(s.Frames.List) != 3 || s.Frames.ActiveIndex != 2 {
		t.Fatalf("unexpected frames %+v", s.Frames)
	}
	s = Dispatch(s, SetActiveFrame{Index: 0})
	if s.Frames.ActiveIndex != 0 {
		t.Errorf("expected frame 0 active, got %d", s.Frames.ActiveIndex)
	}
	s = Dispatch(s, DeleteFrame{Index: 2})
	if len(s.Frames.List) != 2 || s.Frames.ActiveIndex != 0 {
		t.Errorf("unexpected frames after delete %+v", s.Frames)
	}
	s = Dispatch(s, DeleteFrame{Index: 0})
	s = Dispatch(s, DeleteFrame{Index: 0})
	if len(s.Frames.List) != 1 {
		t.Errorf("expected last frame to survive, got %d frames", len(s.Frames.List))
	}
}

func TestDispatchResizeCanvas(t *testing.T) {
	s := New(2, 2, 5)
	s = Dispatch(s, ResizeCanvas{Axis: pixelgrid.Rows, Delta: -1})
	s = Dispatch(s, ResizeCanvas{Axis: pixelgrid.Rows, Delta: -1})
	if s.Rows() != 1 {
		t.Errorf("expected rows floored at 1, got %d", s.Rows())
	}
	if len(s.ActiveGrid()) != 2 {
		t.Errorf("expected 2 cells, got %d", len(s.ActiveGrid()))
	}
}

func TestDispatchInit(t *testing.T) {
	s := New(2, 2, 5)
	s = Dispatch(s, AddFrame{})
	s = Dispatch(s, ToggleEraser{})
	s = Dispatch(s, Init{Columns: 4, Rows: 3})
	if len(s.Frames.List) != 1 || s.Columns() != 4 || s.Rows() != 3 {
		t.Errorf("unexpected frames %+v", s.Frames)
	}
	if s.EraserOn {
		t.Error("expected tools reset")
	}
}

func TestDispatchLoadDrawing(t *testing.T) {
	list := frames.AddFrame(frames.Init(3, 1)).List
	palette := []PaletteColor{{Color: "111111", ID: "a"}, {Color: "222222", ID: "b"}}

	s := New(2, 2, 5)
	s = Dispatch(s, SetActiveFrame{Index: 0})
	s = Dispatch(s, LoadDrawing{Frames: list, Palette: palette, Columns: 3, Rows: 1, CellSize: 7})

	if len(s.Frames.List) != 2 || s.Columns() != 3 || s.Frames.ActiveIndex != 0 {
		t.Errorf("unexpected frames %+v", s.Frames)
	}
	if s.CellSize != 7 {
		t.Errorf("expected cell size 7, got %d", s.CellSize)
	}
	if s.CurrentColor != "111111" {
		t.Errorf("expected current colour from loaded palette, got %q", s.CurrentColor)
	}
}

func TestDispatchEyedrop(t *testing.T) {
	s := New(2, 1, 5)
	s = Dispatch(s, SetPaletteColor{Index: 0, Color: "123456"})
	s = Dispatch(s, Paint{ID: 0})
	s = Dispatch(s, SelectColor{Index: 1})
	s = Dispatch(s, ToggleEyedropper{})
	if !s.EyedropperOn {
		t.Fatal("expected eyedropper on")
	}

	s = Dispatch(s, Eyedrop{ID: 0})
	if s.CurrentColor != "123456" {
		t.Errorf("expected picked colour, got %q", s.CurrentColor)
	}
	if s.EyedropperOn {
		t.Error("expected eyedropper off after picking")
	}

	before := s.CurrentColor
	s = Dispatch(s, Eyedrop{ID: 1})
	if s.CurrentColor != before {
		t.Error("eyedrop on a transparent cell changed the colour")
	}
}

func TestDispatchToolToggles(t *testing.T) {
	s := New(1, 1, 5)
	s = Dispatch(s, ToggleEraser{})
	s = Dispatch(s, ToggleEyedropper{})
	if s.EraserOn || !s.EyedropperOn {
		t.Errorf("eyedropper should replace eraser: %+v", s)
	}
	s = Dispatch(s, ToggleEraser{})
	if !s.EraserOn || s.EyedropperOn {
		t.Errorf("eraser should replace eyedropper: %+v", s)
	}
	s = Dispatch(s, SelectColor{Index: 2})
	if s.EraserOn {
		t.Error("selecting a colour should put the eraser away")
	}
}

func TestDispatchUIFlags(t *testing.T) {
	s := New(1, 1, 5)
	s = Dispatch(s, SetLoading{On: true})
	s = Dispatch(s, Notify{Message: "Drawing saved"})
	s = Dispatch(s, SetCellSize{Size: 0})
	s = Dispatch(s, SetDuration{Seconds: 2.5})
	if !s.Loading || s.Notification != "Drawing saved" || s.CellSize != 5 || s.Duration != 2.5 {
		t.Errorf("unexpected state %+v", s)
	}
}

func TestUndoableClassification(t *testing.T) {
	tests := []struct {
		op   Operation
		want bool
	}{
		{Paint{}, true},
		{BucketFill{}, true},
		{AddFrame{}, true},
		{ResizeCanvas{}, true},
		{LoadDrawing{}, true},
		{SetActiveFrame{}, false},
		{ToggleEyedropper{}, false},
		{Notify{}, false},
	}
	for _, tt := range tests {
		if got := tt.op.Undoable(); got != tt.want {
			t.Errorf("%T.Undoable() = %v, want %v", tt.op, got, tt.want)
		}
	}
}
