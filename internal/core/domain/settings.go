package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the binary and of its config directory.
	AppName = "equip"

	// ConfigFileName is the name of the settings file inside the config directory.
	ConfigFileName = "config.yaml"

	// ConfigEnvVar overrides the settings file location.
	ConfigEnvVar = "EQUIP_CONFIG"
)

// Log levels accepted in settings.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Settings is the user configuration of equip.
type Settings struct {
	Banner bool
	Log    LogSettings
	Hash   HashSettings
	Rand   RandSettings
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string
	JSON  bool
}

// HashSettings holds the defaults of the hash subcommands.
type HashSettings struct {
	OutputFormat OutputFormat
	Rounds       int
}

// RandSettings holds the defaults of the rand subcommands.
type RandSettings struct {
	Format NumberBase
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Banner: true,
		Log:    LogSettings{Level: LogLevelInfo},
		Hash: HashSettings{
			OutputFormat: DefaultOutputFormat,
			Rounds:       DefaultRounds,
		},
		Rand: RandSettings{Format: DefaultNumberBase},
	}
}

// DefaultConfigPath returns the settings file location.
// EQUIP_CONFIG wins; otherwise the file lives in the user config directory.
// It returns an empty string when no location can be determined.
func DefaultConfigPath() string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, ConfigFileName)
}
