package editor

import (
	"errors"
	"path/filepath"
	"testing"

	"mindnote/internal/storage"
)

type fakeSurface struct {
	text      string
	font      FontDescriptor
	fontCalls int
	onChange  func()
}

func (s *fakeSurface) Text() string { return s.text }

func (s *fakeSurface) SetText(text string) {
	s.text = text
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *fakeSurface) SetFont(font FontDescriptor) {
	s.font = font
	s.fontCalls++
}

// typeText mimics a keystroke: the buffer changes and the title refreshes.
func (s *fakeSurface) typeText(c *Controller, text string) {
	s.text += text
	c.Refresh()
}

type fakeShell struct {
	title string
	quits int
}

func (s *fakeShell) SetTitle(title string) { s.title = title }
func (s *fakeShell) Quit()                 { s.quits++ }

type fakePrompter struct {
	choice    Choice
	openPath  string
	savePath  string
	color     string
	reload    bool
	suggested string
	openAny   bool

	// holdUnsaved keeps ConfirmUnsaved answers pending, as an open dialog
	// would.
	holdUnsaved    bool
	pendingUnsaved []func(Choice)

	unsavedAsks int
	openAsks    int
	saveAsks    int
	reloadAsks  int
	errorTitles []string
	errs        []error
}

func (p *fakePrompter) ConfirmUnsaved(name string, respond func(Choice)) {
	p.unsavedAsks++
	if p.holdUnsaved {
		p.pendingUnsaved = append(p.pendingUnsaved, respond)
		return
	}
	respond(p.choice)
}

func (p *fakePrompter) ChooseOpenPath(anyFile bool, respond func(string)) {
	p.openAsks++
	p.openAny = anyFile
	respond(p.openPath)
}

func (p *fakePrompter) ChooseSavePath(suggested string, respond func(string)) {
	p.saveAsks++
	p.suggested = suggested
	respond(p.savePath)
}

func (p *fakePrompter) ChooseColor(current string, respond func(string)) {
	respond(p.color)
}

func (p *fakePrompter) ConfirmReload(name string, respond func(bool)) {
	p.reloadAsks++
	respond(p.reload)
}

func (p *fakePrompter) ShowError(title string, err error) {
	p.errorTitles = append(p.errorTitles, title)
	p.errs = append(p.errs, err)
}

var errDiskFull = errors.New("disk full")

// failingFiles wraps a store and fails every write.
type failingFiles struct {
	FileStore
}

func (f failingFiles) WriteText(path, content string) error {
	return errDiskFull
}

type harness struct {
	dir     string
	surface *fakeSurface
	shell   *fakeShell
	prompt  *fakePrompter
	ctrl    *Controller
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		dir:     t.TempDir(),
		surface: &fakeSurface{},
		shell:   &fakeShell{},
		prompt:  &fakePrompter{choice: ChoiceCancel},
	}
	h.ctrl = NewController(h.surface, h.shell, h.prompt, storage.NewTextFiles(nil), nil)
	h.surface.onChange = h.ctrl.Refresh
	h.ctrl.Start()
	return h
}

func (h *harness) path(name string) string {
	return filepath.Join(h.dir, name)
}
