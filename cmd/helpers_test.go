package cmd

import (
	"testing"

	"github.com/insightscodes/devlog/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTelemetryDisabledIsSafe(t *testing.T) {
	cfg := types.AppConfig{
		Data:      types.DataConfig{Dir: t.TempDir()},
		Telemetry: types.TelemetryConfig{Enabled: false},
	}

	tel := newTelemetry(cfg, version)
	require.NotNil(t, tel)

	// Must be usable as a no-op without any backend configured.
	tel.Track("generate", map[string]any{"runs": 1})
	assert.NoError(t, tel.Close())
}

func TestNewTelemetryEnabledWithoutKeyFallsBackToNoop(t *testing.T) {
	cfg := types.AppConfig{
		Data:      types.DataConfig{Dir: t.TempDir()},
		Telemetry: types.TelemetryConfig{Enabled: true},
	}

	tel := newTelemetry(cfg, version)
	require.NotNil(t, tel)
	tel.Track("notify", nil)
	assert.NoError(t, tel.Close())
}
