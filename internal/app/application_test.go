package app

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindnote/internal/config"
	"mindnote/internal/logger"
)

func newTestApplication(t *testing.T, watch bool) *Application {
	t.Helper()

	cfg := config.Default()
	cfg.WatchFiles = watch

	a, err := newApplication(test.NewApp(), cfg, logger.NoOpLogger{})
	require.NoError(t, err)
	a.window.SetContent(a.guiManager.GetMainContainer())
	a.editor.Start()
	t.Cleanup(a.lifecycle.Shutdown)
	return a
}

func TestApplication_StartsUntitled(t *testing.T) {
	a := newTestApplication(t, false)

	assert.Equal(t, "untitled : Mind Note*", a.window.Title())
	assert.Nil(t, a.watcher)
}

func TestApplication_OpenWatchesFile(t *testing.T) {
	a := newTestApplication(t, true)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	require.NoError(t, a.editor.OpenPath(path))

	assert.Equal(t, "notes.txt : Mind Note", a.window.Title())
	assert.Equal(t, "hello", a.guiManager.Text())
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, a.watcher.Path())
}

func TestHandlers_SaveWritesBuffer(t *testing.T) {
	a := newTestApplication(t, false)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	require.NoError(t, a.editor.OpenPath(path))

	a.guiManager.SetText("new text")
	a.editor.Refresh()
	assert.Equal(t, "notes.txt : Mind Note*", a.window.Title())

	NewHandlers(a.editor, a.guiManager, logger.NoOpLogger{}).HandleSave()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new text", string(data))
	assert.Equal(t, "notes.txt : Mind Note", a.window.Title())
}

func TestHandlers_RejectedInputKeepsFont(t *testing.T) {
	a := newTestApplication(t, false)
	h := NewHandlers(a.editor, a.guiManager, logger.NoOpLogger{})

	h.HandleSelectFamily("Wingdings")
	h.HandleSelectSize(15)
	assert.Equal(t, "Courier New", a.editor.State().Font.Family)
	assert.Equal(t, 12, a.editor.State().Font.Size)

	h.HandleSubmitSize("abc")
	assert.Equal(t, 10, a.editor.State().Font.Size)
}

func TestLifecycle_ShutdownOnce(t *testing.T) {
	a := newTestApplication(t, true)

	a.lifecycle.Shutdown()
	a.lifecycle.Shutdown()

	select {
	case <-a.signals.Done():
	default:
		t.Fatal("shutdown manager not stopped")
	}
}
