// Package config handles objtool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OutputConfig controls how written OBJ files are placed on disk.
type OutputConfig struct {
	Backup    bool   `yaml:"backup"`    // keep the old file as <name>.bak before overwriting
	Directory string `yaml:"directory"` // resolves relative output paths when set
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Output: OutputConfig{
			Backup:    false,
			Directory: "",
		},
	}
}
