package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagColumns  = flag.Int("columns", 0, "Columns of a new drawing")
	flagRows     = flag.Int("rows", 0, "Rows of a new drawing")
	flagCellSize = flag.Int("cell-size", 0, "Exported pixel size")
	flagFresh    = flag.Bool("fresh", false, "Start with a blank drawing instead of the last one")
	flagLogFile  = flag.String("log", "", "Log file path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagColumns > 0 {
		cfg.Canvas.Columns = *flagColumns
	}
	if *flagRows > 0 {
		cfg.Canvas.Rows = *flagRows
	}
	if *flagCellSize > 0 {
		cfg.Canvas.CellSize = *flagCellSize
	}
	if *flagFresh {
		cfg.Storage.Fresh = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
