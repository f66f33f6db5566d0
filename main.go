package main

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pixelart/internal/config"
	"pixelart/internal/drawing"
	"pixelart/internal/editor"
	"pixelart/internal/logger"
	"pixelart/internal/pixelgrid"
	"pixelart/internal/storage"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	logger.Info("starting editor",
		zap.Int("columns", cfg.Canvas.Columns),
		zap.Int("rows", cfg.Canvas.Rows),
		zap.String("storage", cfg.Storage.Dir),
		zap.Bool("fresh", cfg.Storage.Fresh))

	library, err := storage.Open(storage.NewFileKV(cfg.Storage.Dir), logger.Named("storage"))
	if err != nil {
		logger.Error("opening storage", zap.Error(err))
		log.Fatal(err)
	}

	initial := drawing.New(cfg.Canvas.Columns, cfg.Canvas.Rows, cfg.Canvas.CellSize)
	initial = drawing.Dispatch(initial, drawing.SetDuration{Seconds: cfg.Animation.Duration})
	if !cfg.Storage.Fresh {
		initial = library.Restore(initial)
	}
	ed := editor.New(initial, cfg.History.Limit, logger.Named("editor"))

	p := tea.NewProgram(
		newModel(cfg, ed, library, logger.Named("ui")),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		log.Fatal(err)
	}

	if m, ok := final.(model); ok {
		if err := library.SetCurrent(m.editor.State()); err != nil {
			logger.Error("saving current drawing", zap.Error(err))
		}
	}
}

func newModel(cfg *config.Config, ed *editor.Editor, library *storage.Library, log *zap.Logger) model {
	if log == nil {
		log = zap.NewNop()
	}
	return model{
		editor:  ed,
		library: library,
		config:  cfg,
		log:     log,
		mode:    ModeNormal,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case exportDoneMsg:
		m.finishExport(msg)
		return m, nil

	case tea.MouseMsg:
		if m.mode == ModeNormal && !m.help {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.handleHelpKey(msg)
			return m, nil
		}

		var cmd tea.Cmd
		switch m.mode {
		case ModeInput:
			m.handleInputKey(msg)
		case ModeLibrary:
			m.handleLibraryKey(msg)
		case ModeConfirm:
			cmd = m.handleConfirmKey(msg)
		default:
			cmd = m.handleNormalKey(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m *model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc {
		m.errorMessage = ""
		m.apply(drawing.Notify{})
		return nil
	}

	key := msg.String()
	s := m.editor.State()
	m.errorMessage = ""

	switch key {
	case "ctrl+c", "q":
		m.confirm(ConfirmQuit, 0)
	case "?":
		m.help = true
		m.helpScroll = 0

	case "h", "left", "H", "shift+left",
		"l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up",
		"j", "down", "J", "shift+down":
		m.handleCursorMove(key, m.getMoveSpeed(key))

	case " ", "space", "enter":
		m.useTool(m.cursorID())
	case "f":
		m.apply(drawing.BucketFill{ID: m.cursorID()})
	case "e":
		m.apply(drawing.ToggleEraser{})
	case "i":
		m.apply(drawing.ToggleEyedropper{})

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if index := int(key[0] - '1'); index < len(s.Palette.Colors) {
			m.apply(drawing.SelectColor{Index: index})
		}
	case "[":
		m.cycleColor(-1)
	case "]":
		m.cycleColor(1)
	case "#":
		m.startInput(InputPaletteColor, s.Palette.Current())
	case "v":
		m.pasteColor()

	case "n":
		m.apply(drawing.AddFrame{})
	case "D":
		m.apply(drawing.DuplicateFrame{Index: s.Frames.ActiveIndex})
	case "x":
		if len(s.Frames.List) > 1 {
			m.confirm(ConfirmDeleteFrame, s.Frames.ActiveIndex)
		}
	case "tab", "}":
		m.selectFrame(1)
	case "shift+tab", "{":
		m.selectFrame(-1)
	case "t":
		m.startInput(InputFrameInterval, formatFloat(s.Frames.Active().Interval))
	case "d":
		m.startInput(InputDuration, formatFloat(s.Duration))
	case "C":
		m.startInput(InputCaption, m.caption)

	case ">":
		m.resize(pixelgrid.Columns, 1)
	case "<":
		m.resize(pixelgrid.Columns, -1)
	case "+":
		m.resize(pixelgrid.Rows, 1)
	case "-":
		m.resize(pixelgrid.Rows, -1)
	case "r":
		m.apply(drawing.ResetActiveFrame{})
	case "N":
		m.confirm(ConfirmNewDrawing, 0)

	case "u":
		m.undo()
	case "U", "ctrl+r":
		m.redo()

	case "s":
		m.saveToLibrary()
	case "o":
		m.openLibrary()
	case "c":
		m.copyCSS(false)
	case "y":
		m.copyCSS(true)
	case "z":
		m.apply(drawing.SetCellSize{Size: s.CellSize - 1})
	case "Z":
		m.apply(drawing.SetCellSize{Size: s.CellSize + 1})
	case "w":
		return m.export(ExportCSS)
	case "W":
		return m.export(ExportPayload)
	case "S":
		return m.export(ExportPNG)
	case "A":
		return m.export(ExportSheet)
	}
	return nil
}

func (m *model) handleInputKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.input = ""
		m.inputCursorPos = 0
	case tea.KeyEnter:
		if err := m.submitInput(); err != nil {
			m.errorMessage = err.Error()
			return
		}
		m.mode = ModeNormal
		m.input = ""
		m.inputCursorPos = 0
	case tea.KeyBackspace:
		if m.inputCursorPos > 0 {
			runes := []rune(m.input)
			m.input = string(append(runes[:m.inputCursorPos-1], runes[m.inputCursorPos:]...))
			m.inputCursorPos--
		}
	case tea.KeyLeft:
		if m.inputCursorPos > 0 {
			m.inputCursorPos--
		}
	case tea.KeyRight:
		if m.inputCursorPos < len([]rune(m.input)) {
			m.inputCursorPos++
		}
	case tea.KeyRunes, tea.KeySpace:
		runes := []rune(m.input)
		typed := msg.Runes
		if msg.Type == tea.KeySpace {
			typed = []rune{' '}
		}
		rest := append(append([]rune{}, typed...), runes[m.inputCursorPos:]...)
		m.input = string(append(runes[:m.inputCursorPos], rest...))
		m.inputCursorPos += len(typed)
	}
}

func (m *model) handleLibraryKey(msg tea.KeyMsg) {
	stored := m.library.Drawings()
	switch msg.String() {
	case "esc", "q", "o":
		m.mode = ModeNormal
	case "j", "down":
		if m.storedIndex < len(stored)-1 {
			m.storedIndex++
		}
	case "k", "up":
		if m.storedIndex > 0 {
			m.storedIndex--
		}
	case "enter":
		m.loadStored(m.storedIndex)
	case "d", "x":
		if len(stored) > 0 {
			m.confirm(ConfirmDeleteStored, m.storedIndex)
		}
	}
}

func (m *model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch strings.ToLower(msg.String()) {
	case "y":
		action := m.confirmAction
		m.mode = ModeNormal
		switch action {
		case ConfirmQuit:
			return tea.Quit
		case ConfirmNewDrawing:
			s := m.editor.State()
			m.apply(drawing.Init{Columns: s.Columns(), Rows: s.Rows()})
			m.ensureCursorInBounds()
		case ConfirmDeleteFrame:
			m.apply(drawing.DeleteFrame{Index: m.confirmIndex})
		case ConfirmDeleteStored:
			m.mode = ModeLibrary
			m.removeStored(m.confirmIndex)
		}
	case "n", "esc", "ctrl+c":
		if m.confirmAction == ConfirmDeleteStored {
			m.mode = ModeLibrary
		} else {
			m.mode = ModeNormal
		}
	}
	return nil
}

func (m *model) handleHelpKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		maxScroll := len(helpLines) - m.visibleHelpLines()
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
}

func (m *model) confirm(action ConfirmAction, index int) {
	m.mode = ModeConfirm
	m.confirmAction = action
	m.confirmIndex = index
}

func (m *model) startInput(target InputTarget, initial string) {
	m.mode = ModeInput
	m.inputTarget = target
	m.input = initial
	m.inputCursorPos = len([]rune(initial))
	m.errorMessage = ""
}
