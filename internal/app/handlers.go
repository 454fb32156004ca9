package app

import (
	"fmt"

	"mindnote/internal/editor"
	"mindnote/internal/gui"
	"mindnote/internal/logger"
)

// Handlers adapts controller operations to the GUI action set.
type Handlers struct {
	editor     *editor.Controller
	guiManager *gui.Manager
	logger     logger.Logger
}

func NewHandlers(ctrl *editor.Controller, gm *gui.Manager, log logger.Logger) *Handlers {
	return &Handlers{
		editor:     ctrl,
		guiManager: gm,
		logger:     log,
	}
}

func (h *Handlers) Actions() gui.Actions {
	return gui.Actions{
		New:     h.editor.New,
		Open:    h.editor.Open,
		OpenAny: h.editor.OpenAnyFile,
		Save:    h.HandleSave,
		SaveAs:  h.HandleSaveAs,
		Exit:    h.editor.Exit,

		ToggleBold:      h.editor.ToggleBold,
		ToggleItalic:    h.editor.ToggleItalic,
		ToggleUnderline: h.editor.ToggleUnderline,
		SelectFamily:    h.HandleSelectFamily,
		SelectSize:      h.HandleSelectSize,
		SubmitSize:      h.HandleSubmitSize,
		ChooseColor:     h.editor.ChooseColor,
		ResetFont:       h.editor.ResetFont,

		ShowChanges: h.HandleShowChanges,
		TextChanged: h.editor.Refresh,
	}
}

func (h *Handlers) HandleSave() {
	h.editor.Save(h.saved)
}

func (h *Handlers) HandleSaveAs() {
	h.editor.SaveAs(h.saved)
}

func (h *Handlers) saved(ok bool) {
	if !ok {
		return
	}
	h.guiManager.SetStatus(fmt.Sprintf("Saved %s", h.editor.State().DisplayName()))
}

func (h *Handlers) HandleSelectFamily(family string) {
	if err := h.editor.SetFamily(family); err != nil {
		h.logger.Warning("Handlers", "font family rejected", map[string]interface{}{
			"family": family,
			"error":  err.Error(),
		})
	}
}

func (h *Handlers) HandleSelectSize(size int) {
	if err := h.editor.SetSize(size); err != nil {
		h.logger.Warning("Handlers", "font size rejected", map[string]interface{}{
			"size":  size,
			"error": err.Error(),
		})
	}
}

func (h *Handlers) HandleSubmitSize(input string) {
	size := h.editor.SubmitSize(input)
	h.logger.Debug("Handlers", "font size submitted", map[string]interface{}{
		"input": input,
		"size":  size,
	})
}

func (h *Handlers) HandleShowChanges() {
	h.guiManager.ShowChanges(h.editor.UnsavedChanges())
}
