// Package raster paints frames into images: a single frame, or every frame
// side by side as a sprite sheet.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"pixelart/internal/pixelgrid"
)

const (
	framePadding = 1 // cells between frames on a sheet
	captionSize  = 12.0
	captionLine  = 20 // pixels reserved under the sheet for the caption
)

// Sheet describes what to paint.
type Sheet struct {
	Grids    []pixelgrid.Grid
	Columns  int
	Rows     int
	CellSize int
	// Caption is drawn under the frames when not empty.
	Caption string
	// Background fills unpainted cells; nil leaves them transparent.
	Background color.Color
}

// render paints every grid left to right, separated by one empty cell.
func render(s Sheet) (image.Image, error) {
	dc, err := draw(s)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG renders s to a PNG file.
func SavePNG(path string, s Sheet) error {
	dc, err := draw(s)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func draw(s Sheet) (*gg.Context, error) {
	if len(s.Grids) == 0 {
		return nil, fmt.Errorf("nothing to export")
	}
	if s.Columns < 1 || s.Rows < 1 || s.CellSize < 1 {
		return nil, fmt.Errorf("invalid sheet size %dx%d cell %d", s.Columns, s.Rows, s.CellSize)
	}

	frameWidth := s.Columns * s.CellSize
	stride := (s.Columns + framePadding) * s.CellSize
	width := stride*(len(s.Grids)-1) + frameWidth
	height := s.Rows * s.CellSize
	if s.Caption != "" {
		height += captionLine
	}

	dc := gg.NewContext(width, height)
	if s.Background != nil {
		dc.SetColor(s.Background)
		dc.Clear()
	}

	size := float64(s.CellSize)
	for k, grid := range s.Grids {
		originX := float64(k * stride)
		for i, cell := range grid {
			if !cell.Used {
				continue
			}
			x, y := pixelgrid.Point(i, s.Columns)
			dc.SetHexColor("#" + cell.Color)
			dc.DrawRectangle(originX+float64(x)*size, float64(y)*size, size, size)
			dc.Fill()
		}
	}

	if s.Caption != "" {
		face, err := captionFace()
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(s.Caption, 2, float64(s.Rows*s.CellSize)+captionLine/2, 0, 0.5)
	}
	return dc, nil
}

func captionFace() (font.Face, error) {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
