// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Animation AnimationConfig `yaml:"animation"`
	History   HistoryConfig   `yaml:"history"`
	Storage   StorageConfig   `yaml:"storage"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CanvasConfig is the size of a new drawing.
type CanvasConfig struct {
	Columns  int `yaml:"columns"`
	Rows     int `yaml:"rows"`
	CellSize int `yaml:"cell_size"`
}

// AnimationConfig holds animation export settings.
type AnimationConfig struct {
	Duration float64 `yaml:"duration"` // seconds per loop
}

// HistoryConfig bounds undo.
type HistoryConfig struct {
	Limit int `yaml:"limit"` // 0 = unbounded
}

// StorageConfig says where saved drawings live.
type StorageConfig struct {
	Dir   string `yaml:"dir"`
	Fresh bool   `yaml:"-"` // ignore the last open drawing
}

// ExportConfig says where CSS, payload and PNG exports are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Columns:  20,
			Rows:     20,
			CellSize: 10,
		},
		Animation: AnimationConfig{
			Duration: 1,
		},
		History: HistoryConfig{
			Limit: 100,
		},
		Storage: StorageConfig{
			Dir: "",
		},
		Export: ExportConfig{
			Dir: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
