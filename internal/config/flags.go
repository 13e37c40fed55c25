package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagLog    = flag.String("log", "", "Write logs to this file")
	flagBackup = flag.Bool("backup", false, "Keep a .bak copy when overwriting files")
)

// ParseFlags parses command-line flags. Call this early in main().
// Parsing stops at the first non-flag argument, which leaves the
// subcommand and its arguments in flag.Args().
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
	if *flagLog != "" {
		cfg.Logging.LogFile = *flagLog
	}
	if *flagBackup {
		cfg.Output.Backup = true
	}
}
