// Package share builds the payload handed to the export/share service.
// Sending it is the caller's business.
package share

import (
	"encoding/json"
	"fmt"

	"pixelart/internal/cssgen"
	"pixelart/internal/drawing"
)

// Kind selects whether one frame or the whole animation is shared.
type Kind string

const (
	Single Kind = "single"
	Multi  Kind = "multi"
)

// AnimationInfo describes the timing of a multi-frame drawing. Durations
// are in milliseconds.
type AnimationInfo struct {
	Duration           float64   `json:"duration"`
	EqualIntervalDelay float64   `json:"equalIntervalDelay"`
	FramesCount        int       `json:"framesCount"`
	Intervals          []float64 `json:"intervals"`
}

// Payload is the request body the export service expects. DrawingData is
// itself JSON: a pixel list for Single, a list of pixel lists for Multi.
type Payload struct {
	Cols          int           `json:"cols"`
	Rows          int           `json:"rows"`
	PixelSize     int           `json:"pixelSize"`
	DrawingData   string        `json:"drawingData"`
	Text          string        `json:"text"`
	Type          Kind          `json:"type"`
	AnimationInfo AnimationInfo `json:"animationInfo"`
}

// Build assembles the payload for s.
func Build(s drawing.State, kind Kind, text string) (Payload, error) {
	columns, cellSize := s.Columns(), s.CellSize

	var data any
	switch kind {
	case Single:
		data = cssgen.CellsToArray(s.ActiveGrid(), columns, cellSize)
	case Multi:
		grids := s.Frames.Grids()
		all := make([][]cssgen.Pixel, len(grids))
		for i, grid := range grids {
			all[i] = cssgen.CellsToArray(grid, columns, cellSize)
		}
		data = all
	default:
		return Payload{}, fmt.Errorf("unknown share type %q", kind)
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return Payload{}, fmt.Errorf("encoding drawing data: %w", err)
	}

	count := len(s.Frames.List)
	duration := s.Duration * 1000
	return Payload{
		Cols:        columns,
		Rows:        s.Rows(),
		PixelSize:   cellSize,
		DrawingData: string(encoded),
		Text:        text,
		Type:        kind,
		AnimationInfo: AnimationInfo{
			Duration:           duration,
			EqualIntervalDelay: duration / float64(count),
			FramesCount:        count,
			Intervals:          cssgen.IntervalsFor(count),
		},
	}, nil
}
