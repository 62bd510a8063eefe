package cmd

import (
	"log/slog"
	"path/filepath"

	"github.com/insightscodes/devlog/internal/telemetry"
	"github.com/insightscodes/devlog/store"
	"github.com/insightscodes/devlog/types"
)

// newTelemetry builds the telemetry client, falling back to a no-op on any
// failure. Telemetry must never block a command.
func newTelemetry(cfg types.AppConfig, version string) telemetry.Client {
	tel, err := telemetry.New(cfg.Telemetry, cfg.Data.Dir, version)
	if err != nil {
		slog.Debug("telemetry init failed", "error", err)
		noop, _ := telemetry.New(types.TelemetryConfig{}, "", version)
		return noop
	}
	return tel
}

// subscriberDBPath resolves the subscriber database location.
func subscriberDBPath(cfg types.AppConfig) string {
	return filepath.Join(cfg.Data.Dir, cfg.Notify.DBFile)
}

// notifiedPath resolves the notified-slugs file location.
func notifiedPath(cfg types.AppConfig) string {
	return filepath.Join(cfg.Data.Dir, cfg.Notify.NotifiedFile)
}

// openSubscribers opens the subscriber store for the current config.
func openSubscribers(cfg types.AppConfig) (*store.SubscriberStore, error) {
	return store.OpenSubscriberStore(subscriberDBPath(cfg))
}
