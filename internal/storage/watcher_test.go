package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changeRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *changeRecorder) record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *changeRecorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func TestWatcher_ReportsChangesToWatchedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	rec := &changeRecorder{}
	w, err := NewWatcher(nil, rec.record)
	require.NoError(t, err)
	defer w.Shutdown()

	require.NoError(t, w.Watch(path))
	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		for _, p := range rec.seen() {
			if p == abs {
				return true
			}
		}
		return false
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	rec := &changeRecorder{}
	w, err := NewWatcher(nil, rec.record)
	require.NoError(t, err)
	defer w.Shutdown()

	require.NoError(t, w.Watch(path))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, rec.seen())
}

func TestWatcher_EmptyPathStopsWatching(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	rec := &changeRecorder{}
	w, err := NewWatcher(nil, rec.record)
	require.NoError(t, err)
	defer w.Shutdown()

	require.NoError(t, w.Watch(path))
	require.NoError(t, w.Watch(""))
	assert.Empty(t, w.Path())

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, rec.seen())
}

func TestWatcher_ShutdownIsIdempotent(t *testing.T) {
	w, err := NewWatcher(nil, nil)
	require.NoError(t, err)

	w.Shutdown()
	w.Shutdown()
}
