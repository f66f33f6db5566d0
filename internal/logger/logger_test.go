package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{`"ERROR"`},
			excluded: []string{`"WARN"`, `"INFO"`, `"DEBUG"`},
		},
		{
			level:    "warn",
			expected: []string{`"ERROR"`, `"WARN"`},
			excluded: []string{`"INFO"`, `"DEBUG"`},
		},
		{
			level:    "info",
			expected: []string{`"ERROR"`, `"WARN"`, `"INFO"`},
			excluded: []string{`"DEBUG"`},
		},
		{
			level:    "debug",
			expected: []string{`"ERROR"`, `"WARN"`, `"INFO"`, `"DEBUG"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			cfg := FileConfig{
				Path:       logFile,
				MaxSizeMB:  1,
				MaxBackups: 1,
				MaxAgeDays: 1,
			}
			if err := InitWithFileConfig(tt.level, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Log.Debug("debug message")
			Info("info message")
			Log.Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestInitWithoutFileDiscards(t *testing.T) {
	if err := Init("debug", ""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	// Must not panic with no cores attached.
	Info("nowhere")
	Named("editor").Info("nowhere either")
	Sync()
}

func TestNamed(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	if err := Init("info", logFile); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Named("storage").Info("opened")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), `"logger":"storage"`) {
		t.Errorf("expected logger name in output, got %s", content)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/pixelart.log")

	if cfg.Path != "/tmp/pixelart.log" {
		t.Errorf("expected path /tmp/pixelart.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 10 {
		t.Errorf("expected MaxSizeMB 10, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
