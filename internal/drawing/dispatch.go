package drawing

import (
	"pixelart/internal/frames"
)

// Dispatch applies op to s and returns the resulting state. Operations it
// does not recognise, including nil, leave s unchanged.
func Dispatch(s State, op Operation) State {
	switch op := op.(type) {
	case Init:
		s.Frames = frames.Init(op.Columns, op.Rows)
		s.EraserOn = false
		s.EyedropperOn = false
	case LoadDrawing:
		s = loadDrawing(s, op)
	case Paint:
		s.Frames = frames.DrawOnActive(s.Frames, s.CurrentColor, op.ID)
	case Erase:
		s.Frames = frames.EraseOnActive(s.Frames, op.ID)
	case BucketFill:
		s.Frames = frames.BucketOnActive(s.Frames, op.ID, s.CurrentColor)
	case ResetActiveFrame:
		s.Frames = frames.ResetActiveGrid(s.Frames)
	case SetActiveFrame:
		s.Frames = frames.SetActiveFrame(s.Frames, op.Index)
	case AddFrame:
		s.Frames = frames.AddFrame(s.Frames)
	case DeleteFrame:
		s.Frames = frames.DeleteFrame(s.Frames, op.Index)
	case DuplicateFrame:
		s.Frames = frames.DuplicateFrame(s.Frames, op.Index)
	case ResizeCanvas:
		s.Frames = frames.ChangeDimensions(s.Frames, op.Axis, op.Delta)
	case SetFrameInterval:
		s.Frames = frames.SetFrameInterval(s.Frames, op.Index, op.Interval)
	case SelectColor:
		s.Palette.Selected = op.Index
		s.CurrentColor = s.Palette.Current()
		s.EraserOn = false
	case SetPaletteColor:
		s.Palette = s.Palette.withColor(op.Index, op.Color)
		if op.Index == s.Palette.Selected {
			s.CurrentColor = op.Color
		}
	case ToggleEraser:
		s.EraserOn = !s.EraserOn
		if s.EraserOn {
			s.EyedropperOn = false
		}
	case ToggleEyedropper:
		s.EyedropperOn = !s.EyedropperOn
		if s.EyedropperOn {
			s.EraserOn = false
		}
	case Eyedrop:
		if cell := s.ActiveGrid()[op.ID]; cell.Used {
			s.CurrentColor = cell.Color
		}
		s.EyedropperOn = false
	case SetLoading:
		s.Loading = op.On
	case Notify:
		s.Notification = op.Message
	case SetCellSize:
		if op.Size > 0 {
			s.CellSize = op.Size
		}
	case SetDuration:
		if op.Seconds > 0 {
			s.Duration = op.Seconds
		}
	}
	return s
}

func loadDrawing(s State, op LoadDrawing) State {
	s.Frames = frames.SetFrames(op.Frames, op.Columns, op.Rows)
	if len(op.Palette) > 0 {
		s.Palette = Palette{Colors: append([]PaletteColor(nil), op.Palette...)}
		s.CurrentColor = s.Palette.Current()
	}
	if op.CellSize > 0 {
		s.CellSize = op.CellSize
	}
	s.EraserOn = false
	s.EyedropperOn = false
	return s
}
