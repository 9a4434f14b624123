package config

// SettingsFile represents the structure of the config.yaml settings file.
// Pointer fields distinguish an absent key from its zero value, so absent
// keys keep their defaults.
type SettingsFile struct {
	Banner *bool    `yaml:"banner"`
	Log    *LogDTO  `yaml:"log"`
	Hash   *HashDTO `yaml:"hash"`
	Rand   *RandDTO `yaml:"rand"`
}

// LogDTO represents the log section of the settings file.
type LogDTO struct {
	Level *string `yaml:"level"`
	JSON  *bool   `yaml:"json"`
}

// HashDTO represents the hash section of the settings file.
type HashDTO struct {
	OutputFormat *string `yaml:"output_format"`
	Rounds       *int    `yaml:"rounds"`
}

// RandDTO represents the rand section of the settings file.
type RandDTO struct {
	Format *string `yaml:"format"`
}
