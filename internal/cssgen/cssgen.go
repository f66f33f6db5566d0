// Package cssgen turns frame grids into CSS box-shadow drawings and
// keyframe animations, and into flat pixel lists for export.
//
// The resulting animation looks like:
//
//	.pixel-animation { position: absolute;animation: x 1s infinite; ... }
//	@keyframes x {0%, 25%{ box-shadow: ...}25.01%, 50%{ box-shadow: ...}...}
//
// Output depends only on the input, so it can be compared byte for byte.
package cssgen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"pixelart/internal/pixelgrid"
)

// Pixel is one painted cell in export coordinates. It encodes as the JSON
// array [x, y, 0, "#color"].
type Pixel struct {
	X     int
	Y     int
	Color string
}

// MarshalJSON implements json.Marshaler.
func (p Pixel) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.X, p.Y, 0, "#" + p.Color})
}

// Keyframe is one "{min}%, {max}%" block of the animation.
type Keyframe struct {
	Selector    string
	Declaration string
}

// formatNumber prints v in the shortest form that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// offset returns the shadow position of cell i. Shadows are shifted by one
// cell so the top-left pixel is not clipped by the element itself.
func offset(i, columns, cellSize int) (int, int) {
	x, y := pixelgrid.Point(i, columns)
	return x*cellSize + cellSize, y*cellSize + cellSize
}

// CellsToArray lists every used cell with its shadow coordinates.
func CellsToArray(grid pixelgrid.Grid, columns, cellSize int) []Pixel {
	pixels := []Pixel{}
	for i, cell := range grid {
		if !cell.Used {
			continue
		}
		x, y := offset(i, columns, cellSize)
		pixels = append(pixels, Pixel{X: x, Y: y, Color: cell.Color})
	}
	return pixels
}

// CellsToCSS renders the used cells as a box-shadow value list,
// "10px 10px 0 #ff0000, 20px 10px 0 #00ff00".
func CellsToCSS(grid pixelgrid.Grid, columns, cellSize int) string {
	var sb strings.Builder
	for _, p := range CellsToArray(grid, columns, cellSize) {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%dpx %dpx 0 #%s", p.X, p.Y, p.Color)
	}
	return sb.String()
}

// IntervalsFor returns the evenly spaced frame boundaries
// [0, step, 2*step, ..., 100] for frameCount frames.
func IntervalsFor(frameCount int) []float64 {
	step := 100 / float64(frameCount)
	intervals := make([]float64, 0, frameCount+1)
	for i := 0; i < frameCount; i++ {
		intervals = append(intervals, float64(i)*step)
	}
	return append(intervals, 100)
}

// KeyframeBlocks builds one keyframe per grid. Frame k covers
// intervals[k]+0.01 through intervals[k+1]; the first frame starts at 0.
func KeyframeBlocks(grids []pixelgrid.Grid, intervals []float64, columns, cellSize int) []Keyframe {
	blocks := make([]Keyframe, len(grids))
	for k, grid := range grids {
		minValue := 0.0
		if k > 0 {
			minValue = intervals[k] + 0.01
		}
		maxValue := intervals[k+1]
		blocks[k] = Keyframe{
			Selector: formatNumber(minValue) + "%, " + formatNumber(maxValue) + "%",
			Declaration: fmt.Sprintf("%s;height: %dpx; width: %dpx;",
				CellsToCSS(grid, columns, cellSize), cellSize, cellSize),
		}
	}
	return blocks
}

// AnimationCSS wraps keyframe blocks in a looping @keyframes rule lasting
// duration seconds.
func AnimationCSS(blocks []Keyframe, duration float64) string {
	d := formatNumber(duration)

	var sb strings.Builder
	sb.WriteString(".pixel-animation { position: absolute;")
	for _, prefix := range []string{"", "-webkit-", "-moz-", "-o-"} {
		fmt.Fprintf(&sb, "%sanimation: x %ss infinite;", prefix, d)
	}
	sb.WriteString(" }")

	sb.WriteString("@keyframes x {")
	for _, b := range blocks {
		fmt.Fprintf(&sb, "%s{ box-shadow: %s}", b.Selector, b.Declaration)
	}
	sb.WriteString("}")
	return sb.String()
}

// FrameCSS renders a single grid as a static rule.
func FrameCSS(grid pixelgrid.Grid, columns, cellSize int) string {
	return fmt.Sprintf(".pixel-art { box-shadow: %s; height: %dpx; width: %dpx; }",
		CellsToCSS(grid, columns, cellSize), cellSize, cellSize)
}

// DrawingCSS is the CSS for a set of frames: a static rule for one frame, an
// evenly timed animation otherwise.
func DrawingCSS(grids []pixelgrid.Grid, columns, cellSize int, duration float64) string {
	if len(grids) == 1 {
		return FrameCSS(grids[0], columns, cellSize)
	}
	blocks := KeyframeBlocks(grids, IntervalsFor(len(grids)), columns, cellSize)
	return AnimationCSS(blocks, duration)
}
