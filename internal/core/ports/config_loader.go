package ports

import "go.trai.ch/equip/internal/core/domain"

// SettingsLoader defines the interface for loading the user configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file. A missing file yields the default settings.
	Load() (domain.Settings, error)
}
