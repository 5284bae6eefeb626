package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: orbit\n"), 0o644))

	w, err := NewConfigWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("ignored\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("mode: free_look\n"), 0o644))

	want, err := filepath.Abs(path)
	require.NoError(t, err)

	select {
	case name := <-w.Events:
		assert.Equal(t, want, name)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestConfigWatcherPollEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")

	w, err := NewConfigWatcher(path)
	require.NoError(t, err)

	_, ok := w.Poll()
	assert.False(t, ok)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestConfigWatcherMissingDir(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "missing", "camera.yaml"))
	assert.Error(t, err)
}
