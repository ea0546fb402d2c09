package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/display"

	"github.com/BurntSushi/toml"
)

// Theme defines the visual appearance of the engine: the monochrome palette,
// the fonts the button row and content are rendered with, and the default
// long-press threshold.
type Theme struct {
	Foreground display.Color // text, icons, outlines
	Background display.Color // screen and button-row background

	FontPath     string // content font
	FontSize     int
	BoldFontPath string // button row font; its line height sets the row height
	BoldFontSize int

	BackgroundImagePath string // optional image drawn behind the content region

	LongPress time.Duration // default side button long-press threshold
}

// DefaultTheme returns the stock white-on-black theme.
func DefaultTheme() Theme {
	return Theme{
		Foreground:   display.White,
		Background:   display.Black,
		FontPath:     "/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
		FontSize:     16,
		BoldFontPath: "/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf",
		BoldFontSize: 16,
		LongPress:    constants.DefaultLongPress,
	}
}

// themeFile is the on-disk TOML shape. Colors are "#RRGGBB" strings.
type themeFile struct {
	Foreground      string `toml:"foreground"`
	Background      string `toml:"background"`
	Font            string `toml:"font"`
	FontSize        int    `toml:"font_size"`
	BoldFont        string `toml:"bold_font"`
	BoldFontSize    int    `toml:"bold_font_size"`
	BackgroundImage string `toml:"background_image"`
	LongPressMS     int    `toml:"long_press_ms"`
}

// LoadTheme reads a TOML theme file, filling unset fields from the default
// theme.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	var file themeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return theme, fmt.Errorf("theme %s: %w", path, err)
	}

	if file.Foreground != "" {
		c, err := parseHexColor(file.Foreground)
		if err != nil {
			return theme, fmt.Errorf("theme %s: foreground: %w", path, err)
		}
		theme.Foreground = c
	}
	if file.Background != "" {
		c, err := parseHexColor(file.Background)
		if err != nil {
			return theme, fmt.Errorf("theme %s: background: %w", path, err)
		}
		theme.Background = c
	}
	if file.Font != "" {
		theme.FontPath = file.Font
	}
	if file.FontSize > 0 {
		theme.FontSize = file.FontSize
	}
	if file.BoldFont != "" {
		theme.BoldFontPath = file.BoldFont
	}
	if file.BoldFontSize > 0 {
		theme.BoldFontSize = file.BoldFontSize
	}
	if file.BackgroundImage != "" {
		theme.BackgroundImagePath = file.BackgroundImage
	}
	if file.LongPressMS > 0 {
		theme.LongPress = time.Duration(file.LongPressMS) * time.Millisecond
	}

	return theme, nil
}

func parseHexColor(s string) (display.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return display.Color{}, fmt.Errorf("want #RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return display.Color{}, err
	}
	return display.HexColor(uint32(v)), nil
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme for the engine.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}
