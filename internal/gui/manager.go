// Package gui is the Fyne shell around the editor: window content, menus,
// shortcuts and dialogs.
package gui

import (
	"image/color"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"mindnote/internal/config"
	"mindnote/internal/editor"
	"mindnote/internal/gui/components"
	"mindnote/internal/logger"
)

// Actions are the operations the shell forwards user input to.
type Actions struct {
	New     func()
	Open    func()
	OpenAny func()
	Save    func()
	SaveAs  func()
	Exit    func()

	ToggleBold      func()
	ToggleItalic    func()
	ToggleUnderline func()
	SelectFamily    func(string)
	SelectSize      func(int)
	SubmitSize      func(string)
	ChooseColor     func()
	ResetFont       func()

	ShowChanges func()
	TextChanged func()
}

// Manager owns the window content. It is the Surface, Shell and Prompter
// the editor controller works against.
type Manager struct {
	window fyne.Window
	logger logger.Logger

	sheet   *components.TextSheet
	toolbar *components.FontToolbar
	status  *components.StatusBar

	actions Actions
	lastDir string

	// showOpen and showSave present the file pickers.
	showOpen func(anyFile bool, callback func(fyne.URIReadCloser, error))
	showSave func(suggested string, callback func(fyne.URIWriteCloser, error))
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	m := &Manager{
		window:  window,
		logger:  log,
		sheet:   components.NewTextSheet(),
		toolbar: components.NewFontToolbar(),
		status:  components.NewStatusBar(),
	}
	m.showOpen = m.showOpenDialog
	m.showSave = m.showSaveDialog
	m.sheet.SetChangeHandler(m.onTextChanged)

	log.Debug("GUIManager", "initialized", nil)
	return m
}

// SetActions wires the toolbar, menus and shortcuts to actions.
func (m *Manager) SetActions(actions Actions) {
	m.actions = actions

	m.toolbar.SetBoldHandler(actions.ToggleBold)
	m.toolbar.SetItalicHandler(actions.ToggleItalic)
	m.toolbar.SetUnderlineHandler(actions.ToggleUnderline)
	m.toolbar.SetColorHandler(actions.ChooseColor)
	m.toolbar.SetFamilyHandler(func(family string) {
		m.logger.Debug("GUIManager", "font family selected", map[string]interface{}{
			"family": family,
		})
		actions.SelectFamily(family)
	})
	m.toolbar.SetSizeSelectHandler(actions.SelectSize)
	m.toolbar.SetSizeSubmitHandler(actions.SubmitSize)

	m.window.SetMainMenu(m.buildMainMenu())
	m.registerShortcuts()
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	minSize := canvas.NewRectangle(color.Transparent)
	minSize.SetMinSize(fyne.NewSize(config.MinWindowWidth, config.MinWindowHeight))

	toolbar := widget.NewCard("", "Toolbar :", m.toolbar.GetContainer())
	content := container.NewBorder(
		toolbar,
		m.status.GetContainer(),
		nil, nil,
		container.NewPadded(m.sheet.GetContainer()),
	)
	return container.NewStack(minSize, content)
}

// FocusSheet puts the keyboard focus on the text.
func (m *Manager) FocusSheet() {
	m.window.Canvas().Focus(m.sheet.Focusable())
}

func (m *Manager) Text() string {
	return m.sheet.Text()
}

func (m *Manager) SetText(text string) {
	m.sheet.SetText(text)
	m.status.SetCounts(text)
}

// SetFont restyles the sheet and brings the toolbar controls in line.
func (m *Manager) SetFont(font editor.FontDescriptor) {
	m.sheet.SetFont(font)
	m.toolbar.Sync(font)
}

func (m *Manager) SetTitle(title string) {
	m.window.SetTitle(title)
}

func (m *Manager) Quit() {
	m.logger.Info("GUIManager", "closing window", nil)
	m.window.Close()
}

// SetStatus shows a short message in the status bar.
func (m *Manager) SetStatus(status string) {
	m.status.SetStatus(status)
}

// RememberPath makes file dialogs start next to path.
func (m *Manager) RememberPath(path string) {
	if path == "" {
		return
	}
	m.lastDir = filepath.Dir(path)
}

func (m *Manager) onTextChanged(text string) {
	m.status.SetCounts(text)
	if m.actions.TextChanged != nil {
		m.actions.TextChanged()
	}
}

func (m *Manager) Shutdown() {
	m.logger.Debug("GUIManager", "shutdown", nil)
}
