package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"pixelart/internal/drawing"
	"pixelart/internal/pixelgrid"
)

var (
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	activeFrameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("62")).Bold(true)
	selectedStyle    = lipgloss.NewStyle().Bold(true).Underline(true)

	// Unpainted cells are a two-tone checkerboard.
	emptyLight = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	emptyDark  = lipgloss.NewStyle().Background(lipgloss.Color("235"))
)

var helpLines = []string{
	"Pixel Art Help",
	"==============",
	"",
	"Drawing:",
	"--------",
	"  h/←/j/↓/k/↑/l/→  Move cursor",
	"  Shift+h/j/k/l    Move cursor 2x faster",
	"  Space/Enter      Paint, erase or pick colour at cursor",
	"  Mouse            Click or drag to use the current tool",
	"  f                Bucket fill from cursor",
	"  e                Toggle eraser",
	"  i                Toggle eyedropper",
	"  r                Clear current frame",
	"  N                New blank drawing",
	"",
	"Palette:",
	"--------",
	"  1-9              Select colour",
	"  [ / ]            Previous / next colour",
	"  #                Edit selected colour (hex)",
	"  v                Paste hex colour from clipboard into selected swatch",
	"",
	"Frames:",
	"-------",
	"  n                Add frame",
	"  D                Duplicate current frame",
	"  x                Delete current frame",
	"  Tab/} Shift+Tab/{  Next / previous frame",
	"  t                Set current frame interval (%)",
	"  d                Set animation duration (seconds)",
	"",
	"Canvas:",
	"-------",
	"  > / <            Add / remove a column",
	"  + / -            Add / remove a row",
	"",
	"Saving and export:",
	"------------------",
	"  s                Save drawing to library",
	"  o                Open library",
	"  c                Copy CSS to clipboard",
	"  y                Copy current frame CSS to clipboard",
	"  z / Z            Shrink / grow exported pixel size",
	"  w                Write CSS file",
	"  W                Write share payload (JSON)",
	"  S                Export current frame as PNG",
	"  A                Export all frames as a PNG sprite sheet",
	"  C                Set caption for PNG and share exports",
	"",
	"General:",
	"--------",
	"  u                Undo",
	"  U/Ctrl+R         Redo",
	"  Esc              Clear message",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	s := m.editor.State()
	var result strings.Builder

	result.WriteString(m.frameStrip(s))
	result.WriteString("\n")

	if m.mode == ModeLibrary || (m.mode == ModeConfirm && m.confirmAction == ConfirmDeleteStored) {
		result.WriteString(m.libraryView())
	} else {
		result.WriteString(m.canvasView(s))
	}

	result.WriteString("\n")
	result.WriteString(paletteLine(s))
	result.WriteString("\n")
	result.WriteString(m.statusLine(s))

	return result.String()
}

func (m model) frameStrip(s drawing.State) string {
	var b strings.Builder
	b.WriteString("Frames:")
	for i := range s.Frames.List {
		label := " " + strconv.Itoa(i+1) + " "
		if i == s.Frames.ActiveIndex {
			label = activeFrameStyle.Render(label)
		}
		b.WriteString(label)
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf(" | at %s%% | %dx%d | %dpx | %ss | ",
		formatFloat(s.Frames.Active().Interval), s.Columns(), s.Rows(), s.CellSize, formatFloat(s.Duration))))
	b.WriteString(historyMark("undo", m.editor.CanUndo()))
	b.WriteString(" ")
	b.WriteString(historyMark("redo", m.editor.CanRedo()))
	return b.String()
}

func historyMark(label string, available bool) string {
	if available {
		return label
	}
	return dimStyle.Render(label)
}

func (m model) canvasView(s drawing.State) string {
	grid := s.ActiveGrid()
	columns := s.Columns()
	startX, endX := viewport(m.cursorX, columns, m.visibleColumns())
	startY, endY := viewport(m.cursorY, s.Rows(), m.visibleRows())

	styles := map[string]lipgloss.Style{}
	lines := make([]string, 0, endY-startY)
	for y := startY; y < endY; y++ {
		var line strings.Builder
		for x := startX; x < endX; x++ {
			cell := grid[pixelgrid.Index(x, y, columns)]
			style := cellStyle(styles, cell, x, y)
			text := strings.Repeat(" ", cellWidth)
			if x == m.cursorX && y == m.cursorY {
				text = "[]"
				style = style.Copy().Foreground(lipgloss.Color(contrast(cell)))
			}
			line.WriteString(style.Render(text))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func cellStyle(cache map[string]lipgloss.Style, cell pixelgrid.Cell, x, y int) lipgloss.Style {
	if !cell.Used {
		if (x+y)%2 == 0 {
			return emptyLight
		}
		return emptyDark
	}
	style, ok := cache[cell.Color]
	if !ok {
		style = lipgloss.NewStyle().Background(lipgloss.Color("#" + cell.Color))
		cache[cell.Color] = style
	}
	return style
}

// contrast picks a cursor colour readable on top of cell.
func contrast(cell pixelgrid.Cell) string {
	if !cell.Used {
		return "#ffffff"
	}
	c, err := colorful.Hex("#" + cell.Color)
	if err != nil {
		return "#ffffff"
	}
	r, g, b := c.RGB255()
	if 0.299*float64(r)+0.587*float64(g)+0.114*float64(b) > 140 {
		return "#000000"
	}
	return "#ffffff"
}

func paletteLine(s drawing.State) string {
	var b strings.Builder
	for i, swatch := range s.Palette.Colors {
		key := " "
		if i < paletteKeys {
			key = strconv.Itoa(i + 1)
		}
		if i == s.Palette.Selected {
			key = selectedStyle.Render(key)
		}
		b.WriteString(key)
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color("#" + swatch.Color)).Render("  "))
		b.WriteString(" ")
	}

	tool := "paint"
	switch {
	case s.EyedropperOn:
		tool = "eyedropper"
	case s.EraserOn:
		tool = "eraser"
	}
	current := lipgloss.NewStyle().Background(lipgloss.Color("#" + s.CurrentColor)).Render("  ")
	b.WriteString(fmt.Sprintf("| %s #%s | %s", current, s.CurrentColor, tool))
	return b.String()
}

func (m model) libraryView() string {
	stored := m.library.Drawings()
	lines := []string{"Saved drawings:", strings.Repeat("─", max(m.width, 20))}
	if len(stored) == 0 {
		lines = append(lines, "(No saved drawings, press 's' in the editor to save one)")
	}
	for i, rec := range stored {
		prefix := "  "
		if i == m.storedIndex {
			prefix = "> "
		}
		lines = append(lines, fmt.Sprintf("%s#%d  %s", prefix, i+1, storedSummary(rec)))
	}
	return strings.Join(lines, "\n")
}

func (m model) statusLine(s drawing.State) string {
	var status string
	switch m.mode {
	case ModeInput:
		status = fmt.Sprintf("Mode: INPUT | %s: %s | Enter=confirm, Esc=cancel", inputPrompt(m.inputTarget), withCursor(m.input, m.inputCursorPos))
	case ModeLibrary:
		status = "Mode: LIBRARY | ↑/↓=navigate, Enter=open, d=delete, Esc=back"
	case ModeConfirm:
		status = "Mode: CONFIRM | " + confirmMessage(m.confirmAction, m.confirmIndex)
	default:
		status = fmt.Sprintf("Mode: DRAW | Cursor: (%d,%d)", m.cursorX, m.cursorY)
		if s.Loading {
			status += " | Exporting..."
		}
		if s.Notification != "" {
			status += " | " + s.Notification
		}
		if m.errorMessage == "" && s.Notification == "" {
			status += " | ? for help | q to quit"
		}
	}

	line := statusStyle.Render(status)
	if m.errorMessage != "" {
		line += " " + errorStyle.Render("ERROR: "+m.errorMessage)
	}
	return line
}

func inputPrompt(target InputTarget) string {
	switch target {
	case InputPaletteColor:
		return "Colour"
	case InputFrameInterval:
		return "Frame interval %"
	case InputDuration:
		return "Duration (s)"
	case InputCaption:
		return "Caption"
	default:
		return "Value"
	}
}

func confirmMessage(action ConfirmAction, index int) string {
	switch action {
	case ConfirmQuit:
		return "Quit? (y/n)"
	case ConfirmNewDrawing:
		return "Start a new drawing? (y/n)"
	case ConfirmDeleteFrame:
		return fmt.Sprintf("Delete frame %d? (y/n)", index+1)
	case ConfirmDeleteStored:
		return fmt.Sprintf("Delete saved drawing #%d? (y/n)", index+1)
	default:
		return "(y/n)"
	}
}

// withCursor draws a block cursor over the rune at pos.
func withCursor(text string, pos int) string {
	runes := []rune(text)
	if pos >= len(runes) {
		return text + "█"
	}
	runes[pos] = '█'
	return string(runes)
}

func (m model) visibleHelpLines() int {
	return max(1, m.height-1)
}

func (m model) helpView() string {
	visible := m.visibleHelpLines()
	start := clamp(m.helpScroll, 0, max(0, len(helpLines)-visible))
	end := min(len(helpLines), start+visible)
	return strings.Join(helpLines[start:end], "\n")
}
