package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/equip/internal/app"
	"go.trai.ch/equip/internal/core/domain"
	_ "go.trai.ch/equip/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	graft.AssertDepsValid(t, "../../internal")
}

func TestGraftExecute_Components(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Log.Level = domain.LogLevelWarn

	components, _, err := graft.ExecuteFor[*app.Components](context.Background(),
		graft.DisableCache(),
		graft.PatchValue[domain.Settings](settings),
	)
	require.NoError(t, err)

	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	assert.Equal(t, settings, components.Settings)
}
