package internal

import (
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole/display"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the loaded theme fonts. Button is the bold font the button
// row is laid out with; Normal renders item content.
type FontSet struct {
	Normal *TTFFont
	Button *TTFFont
}

var fonts FontSet

// GetFonts returns the loaded theme fonts. Valid after Init.
func GetFonts() FontSet {
	return fonts
}

func initFonts(theme Theme) error {
	normal, err := loadFont(theme.FontPath, theme.FontSize)
	if err != nil {
		return err
	}
	button, err := loadFont(theme.BoldFontPath, theme.BoldFontSize)
	if err != nil {
		normal.Close()
		return err
	}
	fonts = FontSet{Normal: normal, Button: button}
	return nil
}

func closeFonts() {
	if fonts.Normal != nil {
		fonts.Normal.Close()
	}
	if fonts.Button != nil {
		fonts.Button.Close()
	}
	fonts = FontSet{}
}

func loadFont(path string, size int) (*TTFFont, error) {
	f, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, fmt.Errorf("open font %s: %w", path, err)
	}
	return &TTFFont{font: f}, nil
}

// TTFFont adapts an SDL ttf font to the display.Font metrics contract.
type TTFFont struct {
	font *ttf.Font
}

var _ display.Font = (*TTFFont)(nil)

// TextWidth returns the horizontal advance of the text in pixels.
func (f *TTFFont) TextWidth(text string) int {
	if text == "" {
		return 0
	}
	w, _, err := f.font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return w
}

// LineHeight returns the font's line skip in pixels.
func (f *TTFFont) LineHeight() int {
	return f.font.Height()
}

// Ascent returns the distance from baseline to the top of the glyphs.
func (f *TTFFont) Ascent() int {
	return f.font.Ascent()
}

// TTF exposes the underlying SDL font for rendering.
func (f *TTFFont) TTF() *ttf.Font {
	return f.font
}

// Close releases the font.
func (f *TTFFont) Close() {
	f.font.Close()
}
