// Package telemetry provides opt-in anonymous usage analytics for the CLI.
// Disabled unless explicitly enabled in config with an API key; events carry
// only the command name and an anonymous per-install id.
package telemetry

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/insightscodes/devlog/types"
	"github.com/posthog/posthog-go"
)

// identityFileName stores the anonymous install id inside the data dir.
const identityFileName = "telemetry.json"

// Client is the interface commands track events through. Satisfied by the
// PostHog-backed client and by the no-op client when telemetry is off.
type Client interface {
	Track(event string, properties map[string]any)
	Close() error
}

// enqueuer is the slice of the PostHog client we use, for test fakes.
type enqueuer interface {
	io.Closer
	Enqueue(msg posthog.Message) error
}

type noopClient struct{}

func (noopClient) Track(string, map[string]any) {}
func (noopClient) Close() error                 { return nil }

type posthogClient struct {
	client    enqueuer
	installID string
	version   string
}

// New builds a telemetry client from config. Returns a no-op client when
// telemetry is disabled or unconfigured.
func New(cfg types.TelemetryConfig, dataDir, version string) (Client, error) {
	if !cfg.Enabled || cfg.APIKey == "" {
		return noopClient{}, nil
	}
	ph, err := posthog.NewWithConfig(cfg.APIKey, posthog.Config{
		// CLI processes exit quickly; flush eagerly.
		BatchSize: 10,
		Interval:  time.Second,
	})
	if err != nil {
		return nil, err
	}
	return &posthogClient{
		client:    ph,
		installID: installID(dataDir),
		version:   version,
	}, nil
}

func (c *posthogClient) Track(event string, properties map[string]any) {
	props := posthog.NewProperties().Set("version", c.version)
	for k, v := range properties {
		props = props.Set(k, v)
	}
	_ = c.client.Enqueue(posthog.Capture{
		DistinctId: c.installID,
		Event:      event,
		Properties: props,
	})
}

func (c *posthogClient) Close() error {
	return c.client.Close()
}

type identity struct {
	InstallID string `json:"installId"`
}

// installID loads or mints the anonymous per-install id. Failures fall back
// to an ephemeral id; telemetry must never break the CLI.
func installID(dataDir string) string {
	path := filepath.Join(dataDir, identityFileName)
	if data, err := os.ReadFile(path); err == nil {
		var id identity
		if json.Unmarshal(data, &id) == nil && id.InstallID != "" {
			return id.InstallID
		}
	}
	id := identity{InstallID: uuid.NewString()}
	if data, err := json.MarshalIndent(id, "", "  "); err == nil {
		_ = os.MkdirAll(dataDir, 0o755)
		_ = os.WriteFile(path, data, 0o644)
	}
	return id.InstallID
}
