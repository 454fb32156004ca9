package editor

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrUnknownFamily = errors.New("unknown font family")
	ErrUnknownSize   = errors.New("font size not in list")
	ErrInvalidColor  = errors.New("invalid color")
)

// ParseFontSize accepts free-form size input. Anything that is not an
// integer in (0, MaxFontSize] becomes FallbackSize; ok reports whether the
// input was used as given.
func ParseFontSize(input string) (size int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 || n > MaxFontSize {
		return FallbackSize, false
	}
	return n, true
}

func IsKnownFamily(family string) bool {
	for _, f := range FontFamilies {
		if f == family {
			return true
		}
	}
	return false
}

func IsListedSize(size int) bool {
	for _, s := range FontSizes {
		if s == size {
			return true
		}
	}
	return false
}

// namedColors are the color names accepted besides hex codes.
var namedColors = map[string]string{
	"black": "#000000",
	"white": "#ffffff",
	"red":   "#ff0000",
	"green": "#008000",
	"blue":  "#0000ff",
}

// NormalizeColor returns the lower-case "#rrggbb" form of a hex code or a
// known color name.
func NormalizeColor(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if hex, ok := namedColors[v]; ok {
		return hex, nil
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrInvalidColor, value)
	}
	return c.Hex(), nil
}

// HexFromColor converts a picked color to "#rrggbb".
func HexFromColor(c color.Color) (string, error) {
	if c == nil {
		return "", ErrInvalidColor
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent; keep the channels as they are.
		r, g, b, _ := c.RGBA()
		return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8), nil
	}
	return cf.Hex(), nil
}

// RGBA resolves the descriptor color for rendering. Unparseable values render
// black.
func (f FontDescriptor) RGBA() color.NRGBA {
	hex, err := NormalizeColor(f.Color)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	c, _ := colorful.Hex(hex)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
