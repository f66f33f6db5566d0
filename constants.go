package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeInput
	ModeLibrary
	ModeConfirm
)

// InputTarget says what a line typed in ModeInput is applied to.
type InputTarget int

const (
	InputPaletteColor InputTarget = iota
	InputFrameInterval
	InputDuration
	InputCaption
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmNewDrawing
	ConfirmDeleteFrame
	ConfirmDeleteStored
)

// ExportKind is a file an export writes.
type ExportKind int

const (
	ExportCSS ExportKind = iota
	ExportPayload
	ExportPNG
	ExportSheet
)

const (
	cellWidth     = 2 // terminal columns per pixel
	paletteKeys   = 9
	chromeLines   = 3 // frame strip, palette and status lines around the canvas
	defaultPrefix = "pixel-art"
)
