// Package config provides the settings loader for equip.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileSettingsLoader implements ports.SettingsLoader using a YAML file.
type FileSettingsLoader struct {
	Path string
}

// NewLoader creates a loader reading the settings file at path.
// An empty path disables the file and yields the defaults.
func NewLoader(path string) *FileSettingsLoader {
	return &FileSettingsLoader{Path: path}
}

// Load reads the settings file. A missing file yields domain.DefaultSettings.
func (l *FileSettingsLoader) Load() (domain.Settings, error) {
	if l.Path == "" {
		return domain.DefaultSettings(), nil
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, domain.Annotate(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", l.Path)
	}

	settings, err := Parse(data)
	if err != nil {
		return domain.Settings{}, domain.Annotate(err, "path", l.Path)
	}
	return settings, nil
}

// Parse decodes a settings document on top of the defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (domain.Settings, error) {
	var file SettingsFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	settings, err := file.toDomain()
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}
	return settings, nil
}

func (f *SettingsFile) toDomain() (domain.Settings, error) {
	s := domain.DefaultSettings()

	if f.Banner != nil {
		s.Banner = *f.Banner
	}

	if f.Log != nil {
		if f.Log.Level != nil {
			level := *f.Log.Level
			valid := []string{domain.LogLevelDebug, domain.LogLevelInfo, domain.LogLevelWarn, domain.LogLevelError}
			if !slices.Contains(valid, level) {
				return s, domain.Annotate(domain.ErrInvalidLogLevel, "level", level)
			}
			s.Log.Level = level
		}
		if f.Log.JSON != nil {
			s.Log.JSON = *f.Log.JSON
		}
	}

	if f.Hash != nil {
		if f.Hash.OutputFormat != nil {
			format, err := domain.ParseOutputFormat(*f.Hash.OutputFormat)
			if err != nil {
				return s, err
			}
			s.Hash.OutputFormat = format
		}
		if f.Hash.Rounds != nil {
			if err := domain.ValidateRounds(*f.Hash.Rounds); err != nil {
				return s, err
			}
			s.Hash.Rounds = *f.Hash.Rounds
		}
	}

	if f.Rand != nil && f.Rand.Format != nil {
		base, err := domain.ParseNumberBase(*f.Rand.Format)
		if err != nil {
			return s, err
		}
		s.Rand.Format = base
	}

	return s, nil
}
