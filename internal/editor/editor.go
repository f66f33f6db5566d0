// Package editor owns the live drawing: it routes operations through
// drawing.Dispatch and keeps the undo history.
package editor

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"pixelart/internal/drawing"
	"pixelart/internal/frames"
	"pixelart/internal/history"
)

// Editor is the state handle the application shell passes around.
// History holds only the frame set; tool flags, palette and the other
// session fields always keep their latest values across undo and redo.
// It is not safe for concurrent use.
type Editor struct {
	state   drawing.State
	history *history.History[frames.Set]
	log     *zap.Logger
}

// New starts an editor at initial. limit caps undo depth (0 = unbounded).
func New(initial drawing.State, limit int, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{
		state:   initial,
		history: history.New(initial.Frames, limit),
		log:     log,
	}
}

// State returns the current drawing.
func (e *Editor) State() drawing.State {
	return e.state
}

// Dispatch applies op. Undoable operations that change the frames are
// recorded in history; everything else updates the present directly.
func (e *Editor) Dispatch(op drawing.Operation) drawing.State {
	prev := e.state
	next := drawing.Dispatch(prev, op)
	name := opName(op)

	if reflect.DeepEqual(prev, next) {
		e.log.Debug("operation left drawing unchanged", zap.String("op", name))
		return prev
	}
	e.state = next

	if op.Undoable() && !reflect.DeepEqual(prev.Frames, next.Frames) {
		e.history.Push(next.Frames)
		past, _ := e.history.Depth()
		e.log.Debug("operation applied",
			zap.String("op", name),
			zap.Int("undo_depth", past))
	} else {
		e.history.Replace(next.Frames)
		e.log.Debug("transient operation applied", zap.String("op", name))
	}
	return next
}

// Undo restores the frames from before the last recorded operation.
func (e *Editor) Undo() bool {
	ok := e.history.Undo()
	if ok {
		e.state.Frames = e.history.Present()
	}
	e.log.Debug("undo", zap.Bool("applied", ok))
	return ok
}

// Redo re-applies the last undone operation.
func (e *Editor) Redo() bool {
	ok := e.history.Redo()
	if ok {
		e.state.Frames = e.history.Present()
	}
	e.log.Debug("redo", zap.Bool("applied", ok))
	return ok
}

// CanUndo reports whether there is anything to undo.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether there is anything to redo.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

func opName(op drawing.Operation) string {
	return fmt.Sprintf("%T", op)
}
