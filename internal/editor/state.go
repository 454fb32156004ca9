// Package editor holds the document state of Mind Note and the operations
// the UI triggers on it. It knows nothing about widgets: the UI supplies a
// Surface, a Shell, a Prompter and a FileStore.
package editor

import (
	"fmt"
	"path/filepath"
)

const (
	AppTitle     = "Mind Note"
	UntitledName = "untitled"
)

// FontDescriptor is applied uniformly to the whole buffer.
type FontDescriptor struct {
	Family    string
	Size      int
	Bold      bool
	Italic    bool
	Underline bool
	Color     string
}

const (
	DefaultFamily = "Courier New"
	DefaultSize   = 12
	DefaultColor  = "black"

	// FallbackSize replaces free-form size input that is not an integer in
	// (0, MaxFontSize].
	FallbackSize = 10
	MaxFontSize  = 100
)

var (
	FontFamilies = []string{
		"Arial", "Courier New", "Comic Sans MS", "Fixedsys", "MS Sans Serif",
		"MS Serif", "System", "Times New Roman", "Verdana", "Symbol",
	}
	FontSizes = []int{8, 9, 10, 11, 12, 13, 14, 16, 18, 22}
)

func DefaultFont() FontDescriptor {
	return FontDescriptor{
		Family: DefaultFamily,
		Size:   DefaultSize,
		Color:  DefaultColor,
	}
}

// State is the single mutable record behind the editor window.
type State struct {
	FilePath string

	// LastSaved is the content last written to or read from FilePath. It is
	// meaningful only when HasSnapshot is set.
	LastSaved   string
	HasSnapshot bool

	Saved bool
	Font  FontDescriptor
}

func NewState() State {
	return State{Font: DefaultFont()}
}

// Matches reports whether content equals the saved snapshot.
func (s State) Matches(content string) bool {
	return s.HasSnapshot && content == s.LastSaved
}

// DisplayName is the base name of the file, or "untitled".
func (s State) DisplayName() string {
	if s.FilePath == "" {
		return UntitledName
	}
	return filepath.Base(s.FilePath)
}

// Title renders the window title, with a trailing "*" while unsaved.
func (s State) Title() string {
	title := fmt.Sprintf("%s : %s", s.DisplayName(), AppTitle)
	if !s.Saved {
		title += "*"
	}
	return title
}
