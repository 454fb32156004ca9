package gui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"mindnote/internal/editor"
)

var textFilter = fynestorage.NewExtensionFileFilter([]string{editor.DefaultExtension})

func (m *Manager) ConfirmUnsaved(name string, respond func(editor.Choice)) {
	message := widget.NewLabel(fmt.Sprintf("Would you want to save %s before continuing?", name))

	var d *dialog.CustomDialog
	answered := false
	answer := func(choice editor.Choice) func() {
		return func() {
			answered = true
			d.Hide()
			respond(choice)
		}
	}

	save := widget.NewButton("Save", answer(editor.ChoiceSave))
	save.Importance = widget.HighImportance

	d = dialog.NewCustomWithoutButtons(editor.AppTitle, message, m.window)
	d.SetButtons([]fyne.CanvasObject{
		widget.NewButton("Cancel", answer(editor.ChoiceCancel)),
		widget.NewButton("Don't Save", answer(editor.ChoiceDiscard)),
		save,
	})
	// Dismissing the dialog any other way counts as cancel.
	d.SetOnClosed(func() {
		if !answered {
			answered = true
			respond(editor.ChoiceCancel)
		}
	})
	d.Show()
}

func (m *Manager) ChooseOpenPath(anyFile bool, respond func(string)) {
	m.showOpen(anyFile, func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			m.ShowError("File Open Error", err)
			respond("")
			return
		}
		if reader == nil {
			respond("")
			return
		}

		path := reader.URI().Path()
		reader.Close()
		m.RememberPath(path)
		respond(path)
	})
}

// ChooseSavePath responds with the path exactly as picked. Fyne has already
// created, or truncated, that file by the time it calls back.
func (m *Manager) ChooseSavePath(suggested string, respond func(string)) {
	m.showSave(suggested, func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			m.ShowError("File Save Error", err)
			respond("")
			return
		}
		if writer == nil {
			respond("")
			return
		}

		path := writer.URI().Path()
		writer.Close()
		m.RememberPath(path)
		respond(path)
	})
}

func (m *Manager) showOpenDialog(anyFile bool, callback func(fyne.URIReadCloser, error)) {
	fd := dialog.NewFileOpen(callback, m.window)
	if !anyFile {
		fd.SetFilter(textFilter)
	}
	m.startIn(fd)
	fd.Show()
}

func (m *Manager) showSaveDialog(suggested string, callback func(fyne.URIWriteCloser, error)) {
	fd := dialog.NewFileSave(callback, m.window)
	fd.SetFileName(suggested)
	fd.SetFilter(textFilter)
	m.startIn(fd)
	fd.Show()
}

func (m *Manager) startIn(fd *dialog.FileDialog) {
	if m.lastDir == "" {
		return
	}
	lister, err := fynestorage.ListerForURI(fynestorage.NewFileURI(m.lastDir))
	if err != nil {
		m.logger.Debug("GUIManager", "dialog location unavailable", map[string]interface{}{
			"dir":   m.lastDir,
			"error": err.Error(),
		})
		return
	}
	fd.SetLocation(lister)
}

// ChooseColor only responds when a color is confirmed.
func (m *Manager) ChooseColor(current string, respond func(string)) {
	picker := dialog.NewColorPicker("Font Color", "Choose the text color", func(c color.Color) {
		hex, err := editor.HexFromColor(c)
		if err != nil {
			m.logger.Warning("GUIManager", "unusable color picked", nil)
			return
		}
		respond(hex)
	}, m.window)
	picker.Advanced = true
	picker.SetColor(editor.FontDescriptor{Color: current}.RGBA())
	picker.Show()
}

func (m *Manager) ConfirmReload(name string, respond func(bool)) {
	message := fmt.Sprintf("%s was changed by another program.\nReload it and drop the edits made here?", name)
	dialog.ShowConfirm("File Changed", message, respond, m.window)
}

// ShowError reports a non-fatal failure in a modal dialog.
func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"dialog": title,
	})

	label := widget.NewLabel(fmt.Sprintf("The process failed.\nError: %v", err))
	label.Wrapping = fyne.TextWrapWord
	d := dialog.NewCustom(title, "OK", label, m.window)
	d.Resize(fyne.NewSize(360, 160))
	d.Show()
	m.status.SetStatus(title)
}
