package main

import tea "github.com/charmbracelet/bubbletea"

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// ensureCursorInBounds keeps the cursor on the canvas, which can shrink
// under it on resize, undo or load.
func (m *model) ensureCursorInBounds() {
	s := m.editor.State()
	m.cursorX = clamp(m.cursorX, 0, s.Columns()-1)
	m.cursorY = clamp(m.cursorY, 0, s.Rows()-1)
}

// handleMouse applies the armed tool to the clicked cell.
func (m *model) handleMouse(msg tea.MouseMsg) {
	switch msg.Type {
	case tea.MouseLeft:
		m.dragging = true
	case tea.MouseMotion:
		if !m.dragging {
			return
		}
	case tea.MouseRelease:
		m.dragging = false
		return
	default:
		return
	}

	x, y, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return
	}
	m.cursorX, m.cursorY = x, y
	m.useTool(m.cursorID())
}

// cellAt maps a screen position to a canvas cell.
func (m *model) cellAt(screenX, screenY int) (int, int, bool) {
	s := m.editor.State()
	startX, _ := viewport(m.cursorX, s.Columns(), m.visibleColumns())
	startY, _ := viewport(m.cursorY, s.Rows(), m.visibleRows())

	x := screenX/cellWidth + startX
	y := screenY - 1 + startY // frame strip is the first line
	if screenY < 1 || x < 0 || y < 0 || x >= s.Columns() || y >= s.Rows() {
		return 0, 0, false
	}
	return x, y, true
}

func (m *model) visibleColumns() int {
	if m.width <= 0 {
		return m.editor.State().Columns()
	}
	return max(1, m.width/cellWidth)
}

func (m *model) visibleRows() int {
	if m.height <= 0 {
		return m.editor.State().Rows()
	}
	return max(1, m.height-chromeLines)
}

// viewport returns the [start, end) slice of total cells to show so that
// cursor stays visible within visible cells.
func viewport(cursor, total, visible int) (int, int) {
	if visible >= total {
		return 0, total
	}
	start := clamp(cursor-visible/2, 0, total-visible)
	return start, start + visible
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
