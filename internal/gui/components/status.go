package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countsLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	countsLabel := widget.NewLabel("")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		countsLabel,
	)

	sb := &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		countsLabel: countsLabel,
	}
	sb.SetCounts("")
	return sb
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// SetCounts shows the line and character count of text.
func (sb *StatusBar) SetCounts(text string) {
	sb.countsLabel.SetText(CountsLabel(text))
}

func (sb *StatusBar) Counts() string {
	return sb.countsLabel.Text
}

func CountsLabel(text string) string {
	lines := 0
	if text != "" {
		lines = strings.Count(text, "\n") + 1
	}
	return fmt.Sprintf("%d lines | %d chars", lines, utf8.RuneCountInString(text))
}
