package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Canvas.Columns != 20 || cfg.Canvas.Rows != 20 {
		t.Errorf("expected 20x20 canvas, got %dx%d", cfg.Canvas.Columns, cfg.Canvas.Rows)
	}
	if cfg.Canvas.CellSize != 10 {
		t.Errorf("expected cell size 10, got %d", cfg.Canvas.CellSize)
	}
	if cfg.Animation.Duration != 1 {
		t.Errorf("expected duration 1, got %v", cfg.Animation.Duration)
	}
	if cfg.History.Limit != 100 {
		t.Errorf("expected history limit 100, got %d", cfg.History.Limit)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
canvas:
  columns: 32
  rows: 16
  cell_size: 4

animation:
  duration: 2.5

history:
  limit: 0

storage:
  dir: "/var/lib/pixelart"

logging:
  level: "debug"
  log_file: "pixelart.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Canvas.Columns != 32 || cfg.Canvas.Rows != 16 || cfg.Canvas.CellSize != 4 {
		t.Errorf("unexpected canvas %+v", cfg.Canvas)
	}
	if cfg.Animation.Duration != 2.5 {
		t.Errorf("expected duration 2.5, got %v", cfg.Animation.Duration)
	}
	if cfg.History.Limit != 0 {
		t.Errorf("expected unbounded history, got %d", cfg.History.Limit)
	}
	if cfg.Storage.Dir != "/var/lib/pixelart" {
		t.Errorf("unexpected storage dir %s", cfg.Storage.Dir)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "pixelart.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("canvas:\n  rows: 8\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Canvas.Rows != 8 {
		t.Errorf("expected rows 8, got %d", cfg.Canvas.Rows)
	}
	if cfg.Canvas.Columns != 20 {
		t.Errorf("expected default columns kept, got %d", cfg.Canvas.Columns)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("canvas: [not: a map"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigDir(t *testing.T) {
	if dir := ConfigDir(); dir == "" {
		t.Error("expected non-empty config dir")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		check   func(t *testing.T, cfg *Config)
		cleanup func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			check: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected debug level, got %s", cfg.Logging.Level)
				}
			},
			cleanup: func() { *flagDebug = false },
		},
		{
			name: "canvas flags",
			setup: func() {
				*flagColumns = 64
				*flagRows = 48
				*flagCellSize = 2
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Canvas.Columns != 64 || cfg.Canvas.Rows != 48 || cfg.Canvas.CellSize != 2 {
					t.Errorf("unexpected canvas %+v", cfg.Canvas)
				}
			},
			cleanup: func() {
				*flagColumns = 0
				*flagRows = 0
				*flagCellSize = 0
			},
		},
		{
			name:  "fresh flag",
			setup: func() { *flagFresh = true },
			check: func(t *testing.T, cfg *Config) {
				if !cfg.Storage.Fresh {
					t.Error("expected fresh start")
				}
			},
			cleanup: func() { *flagFresh = false },
		},
		{
			name:  "log flag",
			setup: func() { *flagLogFile = "/tmp/p.log" },
			check: func(t *testing.T, cfg *Config) {
				if cfg.Logging.LogFile != "/tmp/p.log" {
					t.Errorf("unexpected log file %s", cfg.Logging.LogFile)
				}
			},
			cleanup: func() { *flagLogFile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.cleanup()

			cfg := Default()
			applyFlags(cfg)
			tt.check(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	yamlContent := "canvas:\n  columns: 30\n  rows: 12\nexport:\n  dir: " + filepath.Join(tmpDir, "out") + "\n"
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagColumns = 40
	defer func() {
		*flagConfig = ""
		*flagColumns = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Canvas.Columns != 40 {
		t.Errorf("expected columns 40 from flag, got %d", cfg.Canvas.Columns)
	}
	if cfg.Canvas.Rows != 12 {
		t.Errorf("expected rows 12 from file, got %d", cfg.Canvas.Rows)
	}
	if cfg.Storage.Dir == "" || !filepath.IsAbs(cfg.Storage.Dir) {
		t.Errorf("expected absolute default storage dir, got %q", cfg.Storage.Dir)
	}

	path, err := cfg.ExportPath("drawing.css")
	if err != nil {
		t.Fatalf("ExportPath failed: %v", err)
	}
	if path != filepath.Join(tmpDir, "out", "drawing.css") {
		t.Errorf("unexpected export path %s", path)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "out")); err != nil {
		t.Errorf("expected export dir created: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/art"); got != filepath.Join(home, "art") {
		t.Errorf("got %s", got)
	}
	if got := expandPath(""); got != "" {
		t.Errorf("expected empty path kept, got %s", got)
	}
	if got := expandPath("rel"); !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Canvas.Columns = 12
	cfg.Animation.Duration = 3
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Canvas.Columns != 12 || loaded.Animation.Duration != 3 {
		t.Errorf("unexpected reloaded config %+v", loaded)
	}
}
