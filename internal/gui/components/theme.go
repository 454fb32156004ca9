package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"mindnote/internal/editor"
)

type faceSet struct {
	regular, bold, italic, boldItalic fyne.Resource
}

func (f *faceSet) pick(style fyne.TextStyle) fyne.Resource {
	switch {
	case style.Bold && style.Italic:
		return f.boldItalic
	case style.Bold:
		return f.bold
	case style.Italic:
		return f.italic
	default:
		return f.regular
	}
}

var (
	monoFaces = &faceSet{
		regular:    fyne.NewStaticResource("gomono.ttf", gomono.TTF),
		bold:       fyne.NewStaticResource("gomonobold.ttf", gomonobold.TTF),
		italic:     fyne.NewStaticResource("gomonoitalic.ttf", gomonoitalic.TTF),
		boldItalic: fyne.NewStaticResource("gomonobolditalic.ttf", gomonobolditalic.TTF),
	}
	serifFaces = &faceSet{
		regular:    fyne.NewStaticResource("goregular.ttf", goregular.TTF),
		bold:       fyne.NewStaticResource("gobold.ttf", gobold.TTF),
		italic:     fyne.NewStaticResource("goitalic.ttf", goitalic.TTF),
		boldItalic: fyne.NewStaticResource("gobolditalic.ttf", gobolditalic.TTF),
	}

	// Families without an entry use the toolkit's sans-serif face.
	familyFaces = map[string]*faceSet{
		"Courier New":     monoFaces,
		"Fixedsys":        monoFaces,
		"System":          monoFaces,
		"MS Serif":        serifFaces,
		"Times New Roman": serifFaces,
	}
)

// sheetTheme renders the text sheet with the document font. The sheet always
// uses the light palette so that the default black text stays readable.
type sheetTheme struct {
	base fyne.Theme
	font editor.FontDescriptor
}

func newSheetTheme(font editor.FontDescriptor) *sheetTheme {
	return &sheetTheme{base: theme.DefaultTheme(), font: font}
}

func (t *sheetTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameForeground {
		return t.font.RGBA()
	}
	return t.base.Color(name, theme.VariantLight)
}

func (t *sheetTheme) Font(style fyne.TextStyle) fyne.Resource {
	if faces, ok := familyFaces[t.font.Family]; ok {
		return faces.pick(style)
	}
	return t.base.Font(style)
}

func (t *sheetTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *sheetTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return float32(t.font.Size)
	}
	return t.base.Size(name)
}
