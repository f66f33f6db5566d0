package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pixelart/internal/cssgen"
	"pixelart/internal/drawing"
	"pixelart/internal/pixelgrid"
	"pixelart/internal/raster"
	"pixelart/internal/share"
)

// copyCSS puts the drawing's CSS on the clipboard, or only the active
// frame's when activeOnly is set.
func (m *model) copyCSS(activeOnly bool) {
	s := m.editor.State()
	css := cssgen.DrawingCSS(s.Frames.Grids(), s.Columns(), s.CellSize, s.Duration)
	if activeOnly {
		css = cssgen.FrameCSS(s.ActiveGrid(), s.Columns(), s.CellSize)
	}
	if err := clipboard.WriteAll(css); err != nil {
		m.fail("Failed to copy CSS", err)
		return
	}
	m.notify("CSS copied to clipboard")
}

// export writes kind in the background from a snapshot of the drawing taken
// now; edits made while it runs are not exported.
func (m *model) export(kind ExportKind) tea.Cmd {
	s := m.apply(drawing.SetLoading{On: true})
	caption := m.caption
	path, err := m.config.ExportPath(exportFilename(kind))
	if err != nil {
		return func() tea.Msg { return exportDoneMsg{kind: kind, err: err} }
	}

	return func() tea.Msg {
		return exportDoneMsg{kind: kind, path: path, err: writeExport(kind, path, s, caption)}
	}
}

func (m *model) finishExport(msg exportDoneMsg) {
	m.apply(drawing.SetLoading{On: false})
	if msg.err != nil {
		m.fail("Export failed", msg.err)
		return
	}
	m.log.Info("exported", zap.String("path", msg.path))
	m.notify("Wrote " + msg.path)
}

func exportFilename(kind ExportKind) string {
	switch kind {
	case ExportCSS:
		return defaultPrefix + ".css"
	case ExportPayload:
		return defaultPrefix + ".json"
	case ExportSheet:
		return defaultPrefix + "-sheet.png"
	default:
		return defaultPrefix + ".png"
	}
}

func writeExport(kind ExportKind, path string, s drawing.State, caption string) error {
	switch kind {
	case ExportCSS:
		css := cssgen.DrawingCSS(s.Frames.Grids(), s.Columns(), s.CellSize, s.Duration)
		return os.WriteFile(path, []byte(css+"\n"), 0644)

	case ExportPayload:
		shareKind := share.Single
		if len(s.Frames.List) > 1 {
			shareKind = share.Multi
		}
		payload, err := share.Build(s, shareKind, caption)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding payload: %w", err)
		}
		return os.WriteFile(path, data, 0644)

	case ExportPNG:
		return raster.SavePNG(path, raster.Sheet{
			Grids:    []pixelgrid.Grid{s.ActiveGrid()},
			Columns:  s.Columns(),
			Rows:     s.Rows(),
			CellSize: s.CellSize,
			Caption:  caption,
		})

	case ExportSheet:
		return raster.SavePNG(path, raster.Sheet{
			Grids:      s.Frames.Grids(),
			Columns:    s.Columns(),
			Rows:       s.Rows(),
			CellSize:   s.CellSize,
			Caption:    caption,
			Background: color.White,
		})
	}
	return fmt.Errorf("unknown export %d", kind)
}
