package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"mindnote/internal/logger"
	"mindnote/internal/storage"
)

// Surface is the text widget as seen by the controller.
type Surface interface {
	Text() string
	SetText(text string)
	SetFont(font FontDescriptor)
}

// Shell is the window around the surface.
type Shell interface {
	SetTitle(title string)
	Quit()
}

// Prompter asks the user things. Every method answers through its callback,
// which may run after the call returns.
type Prompter interface {
	ConfirmUnsaved(name string, respond func(Choice))
	// ChooseOpenPath and ChooseSavePath respond with "" on cancel. anyFile
	// lifts the text file filter.
	ChooseOpenPath(anyFile bool, respond func(path string))
	ChooseSavePath(suggested string, respond func(path string))
	// ChooseColor responds with "" on cancel.
	ChooseColor(current string, respond func(hex string))
	ConfirmReload(name string, respond func(reload bool))
	ShowError(title string, err error)
}

// FileStore persists the buffer as plain text.
type FileStore interface {
	ReadText(path string) (string, error)
	WriteText(path, content string) error
}

const DefaultExtension = ".txt"

type Controller struct {
	state State

	// disk is the file content as last read or written, before any
	// normalization by the surface.
	disk string

	surface Surface
	shell   Shell
	prompt  Prompter
	files   FileStore
	logger  logger.Logger

	pathChanged func(path string)

	// exiting is set while an Exit waits on the user.
	exiting bool
}

func NewController(surface Surface, shell Shell, prompt Prompter, files FileStore, log logger.Logger) *Controller {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Controller{
		state:   NewState(),
		surface: surface,
		shell:   shell,
		prompt:  prompt,
		files:   files,
		logger:  log,
	}
}

// Start pushes the initial font and title to the UI.
func (c *Controller) Start() {
	c.applyFont()
	c.Refresh()
	c.logger.Info("Editor", "editor ready", map[string]interface{}{
		"font_family": c.state.Font.Family,
		"font_size":   c.state.Font.Size,
	})
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// OnPathChange registers fn to run whenever the document path changes.
func (c *Controller) OnPathChange(fn func(path string)) {
	c.pathChanged = fn
}

// Refresh recomputes the saved flag from the live buffer and updates the
// window title. It runs after every buffer-affecting event.
func (c *Controller) Refresh() {
	c.state.Saved = c.state.Matches(c.surface.Text())
	c.shell.SetTitle(c.state.Title())
}

// New clears the document after the guard allows it.
func (c *Controller) New() {
	c.Guard(func() {
		c.state.FilePath = ""
		c.state.LastSaved = ""
		c.state.HasSnapshot = false
		c.disk = ""
		c.surface.SetText("")
		c.Refresh()
		c.notifyPath()
		c.logger.Info("Editor", "new document", nil)
	})
}

// Open asks for a text file after the guard allows it and loads it.
func (c *Controller) Open() {
	c.open(false)
}

// OpenAnyFile is Open without the text file filter.
func (c *Controller) OpenAnyFile() {
	c.open(true)
}

func (c *Controller) open(anyFile bool) {
	c.Guard(func() {
		c.prompt.ChooseOpenPath(anyFile, func(path string) {
			if path == "" {
				return
			}
			if err := c.OpenPath(path); err != nil {
				c.reportError(err)
			}
		})
	})
}

// OpenPath reads path into the buffer. On failure nothing changes.
func (c *Controller) OpenPath(path string) error {
	content, err := c.files.ReadText(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	c.load(path, content)
	c.notifyPath()
	c.logger.Info("Editor", "file opened", map[string]interface{}{
		"path":  path,
		"bytes": len(content),
	})
	return nil
}

func (c *Controller) load(path, content string) {
	c.state.FilePath = path
	c.state.LastSaved = content
	c.state.HasSnapshot = true
	c.disk = content

	c.surface.SetText(content)
	// The widget may normalize what it was given; compare against what it
	// actually holds.
	c.state.LastSaved = c.surface.Text()
	c.Refresh()
}

// Save writes the buffer to the current path, or falls back to SaveAs. done,
// when set, reports whether the buffer ended up on disk.
func (c *Controller) Save(done func(ok bool)) {
	if c.state.FilePath == "" {
		c.SaveAs(done)
		return
	}

	err := c.SaveTo(c.state.FilePath)
	if err != nil {
		c.reportError(err)
	}
	finish(done, err == nil)
}

// SaveAs asks for a path and saves there, using the path exactly as chosen.
// The picker may already have created or truncated the file. Cancel changes
// nothing.
func (c *Controller) SaveAs(done func(ok bool)) {
	suggested := UntitledName + DefaultExtension
	if c.state.FilePath != "" {
		suggested = filepath.Base(c.state.FilePath)
	}

	c.prompt.ChooseSavePath(suggested, func(path string) {
		if path == "" {
			finish(done, false)
			return
		}

		err := c.SaveTo(path)
		if err != nil {
			c.reportError(err)
		}
		finish(done, err == nil)
	})
}

// SaveTo writes the buffer to path. The path and snapshot are only updated
// once the write has succeeded.
func (c *Controller) SaveTo(path string) error {
	content := c.surface.Text()
	if err := c.files.WriteText(path, content); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	moved := path != c.state.FilePath
	c.state.FilePath = path
	c.state.LastSaved = content
	c.state.HasSnapshot = true
	c.disk = content
	c.Refresh()
	if moved {
		c.notifyPath()
	}

	c.logger.Info("Editor", "file saved", map[string]interface{}{
		"path":  path,
		"bytes": len(content),
	})
	return nil
}

// Exit quits once the guard allows it. Further Exit requests are ignored
// until the pending one is answered.
func (c *Controller) Exit() {
	if c.exiting {
		c.logger.Debug("Editor", "exit already pending", nil)
		return
	}
	c.exiting = true

	c.CheckUnsaved(func(v Verdict) {
		c.exiting = false
		if v != Continue {
			return
		}
		c.logger.Info("Editor", "exit confirmed", nil)
		c.shell.Quit()
	})
}

// ExternalChange handles a change to path made outside the editor. The user
// is asked before the buffer is replaced.
func (c *Controller) ExternalChange(path string) {
	if c.state.FilePath == "" || !samePath(path, c.state.FilePath) {
		return
	}

	content, err := c.files.ReadText(c.state.FilePath)
	if err != nil {
		c.logger.Debug("Editor", "changed file not readable", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return
	}
	if content == c.disk {
		return
	}

	current := c.state.FilePath
	c.prompt.ConfirmReload(c.state.DisplayName(), func(reload bool) {
		if current != c.state.FilePath {
			return
		}
		if !reload {
			c.disk = content
			return
		}
		c.load(current, content)
		c.logger.Info("Editor", "file reloaded", map[string]interface{}{
			"path": current,
		})
	})
}

// UnsavedChanges lists the line differences between the snapshot and the
// buffer.
func (c *Controller) UnsavedChanges() []Change {
	saved := ""
	if c.state.HasSnapshot {
		saved = c.state.LastSaved
	}
	return Changes(saved, c.surface.Text())
}

func (c *Controller) notifyPath() {
	if c.pathChanged != nil {
		c.pathChanged(c.state.FilePath)
	}
}

func (c *Controller) reportError(err error) {
	c.logger.Error("Editor", err, map[string]interface{}{
		"path": c.state.FilePath,
	})
	c.prompt.ShowError(ErrorTitle(err), err)
}

// ErrorTitle names the dialog for err. Only a missing file on open is a
// not-found error; every other file system failure, saves included, is an
// OS error.
func ErrorTitle(err error) string {
	var (
		storageErr *storage.Error
		pathErr    *fs.PathError
		linkErr    *os.LinkError
	)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return "File Not Found Error"
	case errors.As(err, &storageErr):
		return "OS Error"
	case errors.Is(err, fs.ErrNotExist):
		return "File Not Found Error"
	case errors.As(err, &pathErr), errors.As(err, &linkErr):
		return "OS Error"
	default:
		return "Error"
	}
}

func finish(done func(bool), ok bool) {
	if done != nil {
		done(ok)
	}
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
