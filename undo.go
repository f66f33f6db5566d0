package main

func (m *model) undo() {
	if !m.editor.Undo() {
		m.notify("Nothing to undo")
		return
	}
	m.ensureCursorInBounds()
}

func (m *model) redo() {
	if !m.editor.Redo() {
		m.notify("Nothing to redo")
		return
	}
	m.ensureCursorInBounds()
}
