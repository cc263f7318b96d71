package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_GetDebounceDelay(t *testing.T) {
	tests := []struct {
		name   string
		delay  string
		expect time.Duration
	}{
		{"valid duration", "100ms", 100 * time.Millisecond},
		{"empty string uses default", "", 500 * time.Millisecond},
		{"invalid duration uses default", "invalid", 500 * time.Millisecond},
		{"negative duration uses default", "-1s", 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{DebounceDelay: tt.delay}
			assert.Equal(t, tt.expect, c.GetDebounceDelay())
		})
	}
}

func TestNew_NoFiles(t *testing.T) {
	_, err := New(DefaultConfig(), nil, nil)
	assert.Error(t, err)
}

func waitEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "events channel closed")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
		return Event{}
	}
}

func assertNoEvent(t *testing.T, events <-chan Event, wait time.Duration) {
	t.Helper()
	select {
	case ev := <-events:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(wait):
	}
}

func TestWatcher_ReportsContentChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.ttl")
	require.NoError(t, os.WriteFile(path, []byte("# v1\n"), 0644))

	w, err := New(Config{DebounceDelay: "50ms"}, []string{path}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	// Same content: no event.
	require.NoError(t, os.WriteFile(path, []byte("# v1\n"), 0644))
	assertNoEvent(t, w.Events(), 300*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("# v2\n"), 0644))
	ev := waitEvent(t, w.Events())
	assert.Equal(t, path, ev.Path)
	assert.Equal(t, OpModify, ev.Operation)

	// Other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.ttl"), []byte("x"), 0644))
	assertNoEvent(t, w.Events(), 300*time.Millisecond)

	require.NoError(t, os.Remove(path))
	ev = waitEvent(t, w.Events())
	assert.Equal(t, OpDelete, ev.Operation)

	require.NoError(t, os.WriteFile(path, []byte("# v3\n"), 0644))
	ev = waitEvent(t, w.Events())
	assert.Equal(t, OpCreate, ev.Operation)
	assert.Zero(t, w.DroppedEvents())
}

func TestWatcher_ClosesEventsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.ttl")

	w, err := New(Config{DebounceDelay: "50ms"}, []string{path}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	defer w.Stop()
	cancel()

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events channel not closed")
	}
}
