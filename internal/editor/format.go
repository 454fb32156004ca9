package editor

import "fmt"

func (c *Controller) applyFont() {
	c.surface.SetFont(c.state.Font)
	c.logger.Debug("Editor", "font applied", map[string]interface{}{
		"family":    c.state.Font.Family,
		"size":      c.state.Font.Size,
		"bold":      c.state.Font.Bold,
		"italic":    c.state.Font.Italic,
		"underline": c.state.Font.Underline,
		"color":     c.state.Font.Color,
	})
}

func (c *Controller) ToggleBold() {
	c.state.Font.Bold = !c.state.Font.Bold
	c.applyFont()
}

func (c *Controller) ToggleItalic() {
	c.state.Font.Italic = !c.state.Font.Italic
	c.applyFont()
}

func (c *Controller) ToggleUnderline() {
	c.state.Font.Underline = !c.state.Font.Underline
	c.applyFont()
}

// SetFamily accepts only names from FontFamilies.
func (c *Controller) SetFamily(family string) error {
	if !IsKnownFamily(family) {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	c.state.Font.Family = family
	c.applyFont()
	return nil
}

// SetSize accepts only sizes from FontSizes.
func (c *Controller) SetSize(size int) error {
	if !IsListedSize(size) {
		return fmt.Errorf("%w: %d", ErrUnknownSize, size)
	}
	c.state.Font.Size = size
	c.applyFont()
	return nil
}

// SubmitSize applies typed size input, falling back to FallbackSize when the
// input is not usable. It returns the size applied.
func (c *Controller) SubmitSize(input string) int {
	size, ok := ParseFontSize(input)
	if !ok {
		c.logger.Debug("Editor", "font size input normalized", map[string]interface{}{
			"input": input,
			"size":  size,
		})
	}
	c.state.Font.Size = size
	c.applyFont()
	return size
}

// SetColor stores value as a hex code.
func (c *Controller) SetColor(value string) error {
	hex, err := NormalizeColor(value)
	if err != nil {
		return err
	}
	c.state.Font.Color = hex
	c.applyFont()
	return nil
}

// ChooseColor opens the color picker; cancelling keeps the current color.
func (c *Controller) ChooseColor() {
	c.prompt.ChooseColor(c.state.Font.Color, func(hex string) {
		if hex == "" {
			return
		}
		if err := c.SetColor(hex); err != nil {
			c.reportError(err)
		}
	})
}

// ResetFont restores DefaultFont in one step.
func (c *Controller) ResetFont() {
	c.state.Font = DefaultFont()
	c.applyFont()
}
