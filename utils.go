package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"pixelart/internal/drawing"
	"pixelart/internal/pixelgrid"
	"pixelart/internal/storage"
)

// apply routes op through the editor and keeps the cursor on the canvas.
func (m *model) apply(op drawing.Operation) drawing.State {
	s := m.editor.Dispatch(op)
	m.ensureCursorInBounds()
	return s
}

func (m *model) cursorID() int {
	return pixelgrid.Index(m.cursorX, m.cursorY, m.editor.State().Columns())
}

// useTool applies whichever tool is armed to cell id.
func (m *model) useTool(id int) {
	s := m.editor.State()
	switch {
	case s.EyedropperOn:
		m.apply(drawing.Eyedrop{ID: id})
	case s.EraserOn:
		m.apply(drawing.Erase{ID: id})
	default:
		m.apply(drawing.Paint{ID: id})
	}
}

func (m *model) cycleColor(step int) {
	colors := m.editor.State().Palette
	n := len(colors.Colors)
	if n == 0 {
		return
	}
	m.apply(drawing.SelectColor{Index: (colors.Selected + step + n) % n})
}

func (m *model) selectFrame(step int) {
	set := m.editor.State().Frames
	n := len(set.List)
	m.apply(drawing.SetActiveFrame{Index: (set.ActiveIndex + step + n) % n})
}

func (m *model) resize(axis pixelgrid.Axis, delta int) {
	before := m.editor.State().Frames.Dimensions()
	after := m.apply(drawing.ResizeCanvas{Axis: axis, Delta: delta}).Frames.Dimensions()
	if before == after {
		size := after.Columns
		if axis == pixelgrid.Rows {
			size = after.Rows
		}
		m.notify(fmt.Sprintf("Canvas can't be less than %d %s", size, axis))
	}
}

func (m *model) notify(message string) {
	m.apply(drawing.Notify{Message: message})
}

func (m *model) fail(context string, err error) {
	m.log.Warn(context, zap.Error(err))
	m.errorMessage = fmt.Sprintf("%s: %v", context, err)
}

// submitInput applies the line typed in ModeInput to its target.
func (m *model) submitInput() error {
	value := strings.TrimSpace(m.input)
	s := m.editor.State()

	switch m.inputTarget {
	case InputPaletteColor:
		color, err := parseColor(value)
		if err != nil {
			return err
		}
		m.apply(drawing.SetPaletteColor{Index: s.Palette.Selected, Color: color})
	case InputFrameInterval:
		interval, err := strconv.ParseFloat(value, 64)
		if err != nil || interval < 0 || interval > 100 {
			return fmt.Errorf("interval must be a number from 0 to 100")
		}
		m.apply(drawing.SetFrameInterval{Index: s.Frames.ActiveIndex, Interval: interval})
	case InputDuration:
		seconds, err := strconv.ParseFloat(value, 64)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("duration must be a positive number of seconds")
		}
		m.apply(drawing.SetDuration{Seconds: seconds})
	case InputCaption:
		m.caption = value
	}
	return nil
}

// parseColor accepts "ff0000" or "#ff0000" and returns lower-case hex
// without the '#'.
func parseColor(value string) (string, error) {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(value) != 6 {
		return "", fmt.Errorf("%q is not a hex colour", value)
	}
	c, err := colorful.Hex("#" + value)
	if err != nil || !strings.EqualFold(c.Hex(), "#"+value) {
		return "", fmt.Errorf("%q is not a hex colour", value)
	}
	return strings.TrimPrefix(c.Hex(), "#"), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// pasteColor sets the selected swatch from a colour on the clipboard.
func (m *model) pasteColor() {
	text, err := readClipboardText()
	if err != nil {
		m.fail("Failed to read clipboard", err)
		return
	}
	color, err := parseColor(text)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	s := m.editor.State()
	m.apply(drawing.SetPaletteColor{Index: s.Palette.Selected, Color: color})
	m.notify("Pasted #" + color)
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func (m *model) saveToLibrary() {
	if err := m.library.Add(m.editor.State()); err != nil {
		m.fail("Failed to save drawing", err)
		return
	}
	m.notify(fmt.Sprintf("Saved drawing #%d", len(m.library.Drawings())))
}

func (m *model) openLibrary() {
	m.mode = ModeLibrary
	if m.storedIndex >= len(m.library.Drawings()) {
		m.storedIndex = 0
	}
}

func (m *model) loadStored(i int) {
	rec, err := m.library.Get(i)
	if err != nil {
		m.fail("Failed to open drawing", err)
		return
	}
	m.apply(rec.Operation())
	m.mode = ModeNormal
	m.notify(fmt.Sprintf("Opened drawing #%d", i+1))
}

func (m *model) removeStored(i int) {
	if err := m.library.Remove(i); err != nil {
		m.fail("Failed to delete drawing", err)
		return
	}
	if m.storedIndex >= len(m.library.Drawings()) && m.storedIndex > 0 {
		m.storedIndex--
	}
}

// storedSummary is the one-line description of a saved drawing.
func storedSummary(rec storage.Record) string {
	return fmt.Sprintf("%dx%d, %d frame(s), %dpx cells", rec.Columns, rec.Rows, len(rec.Frames), rec.CellSize)
}
