package components

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"mindnote/internal/editor"
)

// FontToolbar holds the font format controls shown above the sheet.
type FontToolbar struct {
	container *fyne.Container

	SizeEntry       *widget.SelectEntry
	FamilySelect    *widget.Select
	BoldButton      *widget.Button
	ItalicButton    *widget.Button
	UnderlineButton *widget.Button
	ColorButton     *widget.Button
	colorSwatch     *canvas.Rectangle

	// syncing suppresses handlers while controls are set from the descriptor.
	syncing bool

	sizeSelectHandler func(int)
	sizeSubmitHandler func(string)
	familyHandler     func(string)
	boldHandler       func()
	italicHandler     func()
	underlineHandler  func()
	colorHandler      func()
}

func NewFontToolbar() *FontToolbar {
	toolbar := &FontToolbar{}
	toolbar.setupToolbar()
	toolbar.Sync(editor.DefaultFont())
	return toolbar
}

func (t *FontToolbar) setupToolbar() {
	sizes := make([]string, len(editor.FontSizes))
	for i, size := range editor.FontSizes {
		sizes[i] = strconv.Itoa(size)
	}
	t.SizeEntry = widget.NewSelectEntry(sizes)
	t.SizeEntry.OnChanged = t.onSizeChanged
	t.SizeEntry.OnSubmitted = t.onSizeSubmitted

	t.FamilySelect = widget.NewSelect(editor.FontFamilies, t.onFamilySelected)

	t.BoldButton = widget.NewButton("B", t.onBold)
	t.ItalicButton = widget.NewButton("I", t.onItalic)
	t.UnderlineButton = widget.NewButton("U", t.onUnderline)
	styleButtons := container.NewHBox(t.BoldButton, t.ItalicButton, t.UnderlineButton)

	t.colorSwatch = canvas.NewRectangle(editor.DefaultFont().RGBA())
	t.colorSwatch.SetMinSize(fyne.NewSize(16, 16))
	t.ColorButton = widget.NewButton("color", t.onColor)
	colorGroup := container.NewHBox(t.ColorButton, container.NewCenter(t.colorSwatch))

	grid := container.NewGridWithColumns(4,
		widget.NewLabel("Font Size :"), t.SizeEntry,
		widget.NewLabel("Font Style :"), styleButtons,
		widget.NewLabel("Font :"), t.FamilySelect,
		widget.NewLabel("Font Color :"), colorGroup,
	)

	title := widget.NewLabelWithStyle("Font Format :", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	t.container = container.NewPadded(container.NewVBox(title, grid))
}

func (t *FontToolbar) GetContainer() *fyne.Container {
	return t.container
}

// Sync makes every control show font without firing handlers.
func (t *FontToolbar) Sync(font editor.FontDescriptor) {
	t.syncing = true
	defer func() { t.syncing = false }()

	t.FamilySelect.SetSelected(font.Family)
	t.SizeEntry.SetText(strconv.Itoa(font.Size))

	setActive(t.BoldButton, font.Bold)
	setActive(t.ItalicButton, font.Italic)
	setActive(t.UnderlineButton, font.Underline)

	t.colorSwatch.FillColor = font.RGBA()
	t.colorSwatch.Refresh()
}

func setActive(button *widget.Button, active bool) {
	importance := widget.MediumImportance
	if active {
		importance = widget.HighImportance
	}
	if button.Importance != importance {
		button.Importance = importance
		button.Refresh()
	}
}

func (t *FontToolbar) SetSizeSelectHandler(handler func(int)) {
	t.sizeSelectHandler = handler
}

func (t *FontToolbar) SetSizeSubmitHandler(handler func(string)) {
	t.sizeSubmitHandler = handler
}

func (t *FontToolbar) SetFamilyHandler(handler func(string)) {
	t.familyHandler = handler
}

func (t *FontToolbar) SetBoldHandler(handler func()) {
	t.boldHandler = handler
}

func (t *FontToolbar) SetItalicHandler(handler func()) {
	t.italicHandler = handler
}

func (t *FontToolbar) SetUnderlineHandler(handler func()) {
	t.underlineHandler = handler
}

func (t *FontToolbar) SetColorHandler(handler func()) {
	t.colorHandler = handler
}

// onSizeChanged reacts to picks from the dropdown, which arrive as text
// changes. Free typing is handled on submit.
func (t *FontToolbar) onSizeChanged(text string) {
	if t.syncing || t.sizeSelectHandler == nil {
		return
	}
	size, err := strconv.Atoi(text)
	if err != nil || !editor.IsListedSize(size) {
		return
	}
	t.sizeSelectHandler(size)
}

func (t *FontToolbar) onSizeSubmitted(text string) {
	if t.syncing || t.sizeSubmitHandler == nil {
		return
	}
	t.sizeSubmitHandler(text)
}

func (t *FontToolbar) onFamilySelected(family string) {
	if t.syncing || t.familyHandler == nil {
		return
	}
	t.familyHandler(family)
}

func (t *FontToolbar) onBold() {
	if t.boldHandler != nil {
		t.boldHandler()
	}
}

func (t *FontToolbar) onItalic() {
	if t.italicHandler != nil {
		t.italicHandler()
	}
}

func (t *FontToolbar) onUnderline() {
	if t.underlineHandler != nil {
		t.underlineHandler()
	}
}

func (t *FontToolbar) onColor() {
	if t.colorHandler != nil {
		t.colorHandler()
	}
}
