package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

type binding struct {
	shortcut *desktop.CustomShortcut
	action   func()
}

func shortcut(key fyne.KeyName, extra fyne.KeyModifier) *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault | extra}
}

var (
	shortcutNew       = shortcut(fyne.KeyN, 0)
	shortcutOpen      = shortcut(fyne.KeyO, 0)
	shortcutSave      = shortcut(fyne.KeyS, 0)
	shortcutSaveAs    = shortcut(fyne.KeyS, fyne.KeyModifierShift)
	shortcutBold      = shortcut(fyne.KeyB, 0)
	shortcutItalic    = shortcut(fyne.KeyI, 0)
	shortcutUnderline = shortcut(fyne.KeyU, 0)
)

func (m *Manager) bindings() []binding {
	a := m.actions
	return []binding{
		{shortcutNew, a.New},
		{shortcutOpen, a.Open},
		{shortcutSave, a.Save},
		{shortcutSaveAs, a.SaveAs},
		{shortcutBold, a.ToggleBold},
		{shortcutItalic, a.ToggleItalic},
		{shortcutUnderline, a.ToggleUnderline},
	}
}

// registerShortcuts binds the accelerators both on the canvas and on the
// sheet, which would otherwise consume them while focused.
func (m *Manager) registerShortcuts() {
	for _, b := range m.bindings() {
		if b.action == nil {
			continue
		}
		action := b.action
		m.window.Canvas().AddShortcut(b.shortcut, func(fyne.Shortcut) { action() })
		m.sheet.AddShortcut(b.shortcut, action)
	}
}

func menuItem(label string, action func(), sc fyne.Shortcut) *fyne.MenuItem {
	item := fyne.NewMenuItem(label, action)
	item.Shortcut = sc
	return item
}

func (m *Manager) buildMainMenu() *fyne.MainMenu {
	a := m.actions

	exit := fyne.NewMenuItem("Exit", a.Exit)
	exit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		menuItem("New", a.New, shortcutNew),
		menuItem("Open", a.Open, shortcutOpen),
		fyne.NewMenuItem("Open Any File...", a.OpenAny),
		fyne.NewMenuItemSeparator(),
		menuItem("Save As...", a.SaveAs, shortcutSaveAs),
		menuItem("Save", a.Save, shortcutSave),
		fyne.NewMenuItemSeparator(),
		exit,
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Reset the style font", a.ResetFont),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show Unsaved Changes", a.ShowChanges),
	)

	formatMenu := fyne.NewMenu("Format",
		menuItem("Bold", a.ToggleBold, shortcutBold),
		menuItem("Italic", a.ToggleItalic, shortcutItalic),
		menuItem("Underline", a.ToggleUnderline, shortcutUnderline),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Font Color...", a.ChooseColor),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, formatMenu)
}
