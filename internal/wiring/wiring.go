// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/equip/internal/adapters/bcrypt"
	_ "go.trai.ch/equip/internal/adapters/config"
	_ "go.trai.ch/equip/internal/adapters/digest"
	_ "go.trai.ch/equip/internal/adapters/fs"
	_ "go.trai.ch/equip/internal/adapters/logger"
	_ "go.trai.ch/equip/internal/adapters/prompt"
	_ "go.trai.ch/equip/internal/adapters/random"
	// Register app and engine nodes.
	_ "go.trai.ch/equip/internal/app"
	_ "go.trai.ch/equip/internal/engine/resolver"
)
