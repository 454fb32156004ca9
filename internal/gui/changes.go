package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"mindnote/internal/editor"
)

// changeSegments renders a line diff with +/- markers.
func changeSegments(changes []editor.Change) []widget.RichTextSegment {
	if len(changes) == 0 {
		return []widget.RichTextSegment{&widget.TextSegment{
			Text:  "No unsaved changes",
			Style: widget.RichTextStyleParagraph,
		}}
	}

	segments := make([]widget.RichTextSegment, 0, len(changes))
	for _, ch := range changes {
		prefix, colorName := "  ", theme.ColorNameDisabled
		switch ch.Kind {
		case editor.Added:
			prefix, colorName = "+ ", theme.ColorNameSuccess
		case editor.Removed:
			prefix, colorName = "- ", theme.ColorNameError
		}
		segments = append(segments, &widget.TextSegment{
			Text: prefix + ch.Text,
			Style: widget.RichTextStyle{
				ColorName: colorName,
				TextStyle: fyne.TextStyle{Monospace: true},
			},
		})
	}
	return segments
}

// ShowChanges lists the differences between the saved file and the buffer.
func (m *Manager) ShowChanges(changes []editor.Change) {
	added, removed := editor.CountChanges(changes)
	summary := widget.NewLabel(fmt.Sprintf("%d added, %d removed", added, removed))

	body := widget.NewRichText(changeSegments(changes)...)
	scroll := container.NewVScroll(body)
	scroll.SetMinSize(fyne.NewSize(360, 240))

	dialog.ShowCustom("Unsaved Changes", "Close", container.NewBorder(summary, nil, nil, nil, scroll), m.window)
}
