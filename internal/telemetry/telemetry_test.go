package telemetry

import (
	"testing"

	"github.com/insightscodes/devlog/types"
	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	captures []posthog.Capture
	closed   bool
}

func (f *fakeEnqueuer) Enqueue(msg posthog.Message) error {
	if c, ok := msg.(posthog.Capture); ok {
		f.captures = append(f.captures, c)
	}
	return nil
}

func (f *fakeEnqueuer) Close() error {
	f.closed = true
	return nil
}

func TestNewDisabledReturnsNoop(t *testing.T) {
	c, err := New(types.TelemetryConfig{Enabled: false}, t.TempDir(), "0.3.0")
	require.NoError(t, err)

	// Must be safe to use without any backend.
	c.Track("generate", map[string]any{"runs": 1})
	assert.NoError(t, c.Close())
}

func TestNewEnabledWithoutKeyReturnsNoop(t *testing.T) {
	c, err := New(types.TelemetryConfig{Enabled: true}, t.TempDir(), "0.3.0")
	require.NoError(t, err)

	c.Track("generate", nil)
	assert.NoError(t, c.Close())
}

func TestTrackAttachesVersionAndInstallID(t *testing.T) {
	fake := &fakeEnqueuer{}
	c := &posthogClient{client: fake, installID: "install-1", version: "0.3.0"}

	c.Track("notify", map[string]any{"posts": 2})

	require.Len(t, fake.captures, 1)
	capture := fake.captures[0]
	assert.Equal(t, "notify", capture.Event)
	assert.Equal(t, "install-1", capture.DistinctId)
	assert.Equal(t, "0.3.0", capture.Properties["version"])
	assert.Equal(t, 2, capture.Properties["posts"])

	require.NoError(t, c.Close())
	assert.True(t, fake.closed)
}

func TestInstallIDIsStable(t *testing.T) {
	dir := t.TempDir()

	first := installID(dir)
	second := installID(dir)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}
