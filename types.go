package main

import (
	"pixelart/internal/config"
	"pixelart/internal/editor"
	"pixelart/internal/storage"

	"go.uber.org/zap"
)

type model struct {
	width   int
	height  int
	cursorX int
	cursorY int
	// left button held since the last click
	dragging bool

	editor  *editor.Editor
	library *storage.Library
	config  *config.Config
	log     *zap.Logger

	mode           Mode
	help           bool
	helpScroll     int
	input          string
	inputCursorPos int
	inputTarget    InputTarget
	confirmAction  ConfirmAction
	confirmIndex   int
	storedIndex    int
	caption        string
	errorMessage   string
}

// exportDoneMsg reports a finished background export.
type exportDoneMsg struct {
	kind ExportKind
	path string
	err  error
}
