package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"mindnote/internal/editor"
)

// sheetEntry is a multi-line entry that lets the window's shortcuts through
// while it has focus.
type sheetEntry struct {
	widget.Entry
	shortcuts map[string]func()
}

func newSheetEntry() *sheetEntry {
	e := &sheetEntry{shortcuts: make(map[string]func())}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.ExtendBaseWidget(e)
	return e
}

func (e *sheetEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if handler, ok := e.shortcuts[shortcut.ShortcutName()]; ok {
		handler()
		return
	}
	e.Entry.TypedShortcut(shortcut)
}

// TextSheet is the editable document surface. One font descriptor styles the
// whole text.
type TextSheet struct {
	entry    *sheetEntry
	theme    *sheetTheme
	override *container.ThemeOverride

	changeHandler func(string)
}

func NewTextSheet() *TextSheet {
	s := &TextSheet{
		entry: newSheetEntry(),
		theme: newSheetTheme(editor.DefaultFont()),
	}
	s.entry.OnChanged = s.onChanged
	s.override = container.NewThemeOverride(s.entry, s.theme)
	return s
}

func (s *TextSheet) GetContainer() fyne.CanvasObject {
	return s.override
}

func (s *TextSheet) Text() string {
	return s.entry.Text
}

func (s *TextSheet) SetText(text string) {
	s.entry.SetText(text)
}

// SetFont restyles the entire text with font.
func (s *TextSheet) SetFont(font editor.FontDescriptor) {
	s.theme.font = font
	s.entry.TextStyle = fyne.TextStyle{
		Bold:      font.Bold,
		Italic:    font.Italic,
		Underline: font.Underline,
	}
	s.override.Refresh()
	s.entry.Refresh()
}

func (s *TextSheet) Font() editor.FontDescriptor {
	return s.theme.font
}

func (s *TextSheet) TextStyle() fyne.TextStyle {
	return s.entry.TextStyle
}

// AddShortcut routes shortcut to handler while the sheet has focus.
func (s *TextSheet) AddShortcut(shortcut fyne.Shortcut, handler func()) {
	s.entry.shortcuts[shortcut.ShortcutName()] = handler
}

func (s *TextSheet) Focusable() fyne.Focusable {
	return s.entry
}

func (s *TextSheet) SetChangeHandler(handler func(string)) {
	s.changeHandler = handler
}

func (s *TextSheet) onChanged(text string) {
	if s.changeHandler != nil {
		s.changeHandler(text)
	}
}
