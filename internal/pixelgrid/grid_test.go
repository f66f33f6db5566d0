package pixelgrid

import (
	"reflect"
	"testing"
)

func used(color string) Cell {
	return Cell{Used: true, Color: color}
}

func TestCreate(t *testing.T) {
	for _, n := range []int{0, 1, 4, 400} {
		grid := Create(n)
		if len(grid) != n {
			t.Errorf("Create(%d) has %d cells", n, len(grid))
		}
		for i, c := range grid {
			if c.Used || c.Color != "" {
				t.Errorf("Create(%d)[%d] = %+v, want blank", n, i, c)
			}
		}
	}
}

func TestDrawPixel(t *testing.T) {
	grid := Create(4)

	first := DrawPixel(grid, "ff0000", 2)
	second := DrawPixel(first, "00ff00", 2)

	want := Grid{{}, {}, used("00ff00"), {}}
	if !reflect.DeepEqual(second, want) {
		t.Errorf("got %+v, want %+v", second, want)
	}
	if first[2].Color != "ff0000" {
		t.Error("second draw modified the first grid")
	}
	if grid[2].Used {
		t.Error("draw modified its input")
	}
}

func TestDrawPixelErase(t *testing.T) {
	grid := DrawPixel(Create(2), "ff0000", 0)
	erased := DrawPixel(grid, "", 0)
	if erased[0].Used {
		t.Errorf("expected erased cell to be unused, got %+v", erased[0])
	}
}

func TestResizeColumnsPreservesRows(t *testing.T) {
	a, b, c, d := used("aaaaaa"), used("bbbbbb"), used("cccccc"), used("dddddd")
	grid := Grid{a, b, c, d}

	got := Resize(grid, Columns, 1, Dimensions{Columns: 2, Rows: 2})
	want := Grid{a, b, {}, c, d, {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResize(t *testing.T) {
	a, b, c, d := used("aaaaaa"), used("bbbbbb"), used("cccccc"), used("dddddd")
	base := Grid{a, b, c, d}
	dims := Dimensions{Columns: 2, Rows: 2}

	tests := []struct {
		name  string
		axis  Axis
		delta int
		want  Grid
	}{
		{"add row", Rows, 1, Grid{a, b, c, d, {}, {}}},
		{"remove column", Columns, -1, Grid{a, c}},
		{"remove row", Rows, -1, Grid{a, b}},
		{"add two columns", Columns, 2, Grid{a, b, {}, {}, c, d, {}, {}}},
		{"clamp columns at one", Columns, -5, Grid{a, c}},
		{"zero delta", Rows, 0, base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resize(base, tt.axis, tt.delta, dims)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResizeSingleCellFloor(t *testing.T) {
	grid := Grid{used("aaaaaa")}
	got := Resize(grid, Rows, -1, Dimensions{Columns: 1, Rows: 1})
	if len(got) != 1 || !got[0].Used {
		t.Errorf("expected 1x1 grid to stay intact, got %+v", got)
	}
}

func TestResized(t *testing.T) {
	d := Resized(Dimensions{Columns: 3, Rows: 2}, Rows, -4)
	if d.Rows != 1 || d.Columns != 3 {
		t.Errorf("got %+v, want 3x1", d)
	}
}
