package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/display"
)

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1A2B3C")
	if err != nil {
		t.Fatalf("parseHexColor: %v", err)
	}
	if c != (display.Color{R: 0x1A, G: 0x2B, B: 0x3C, A: 255}) {
		t.Fatalf("color = %+v", c)
	}

	if _, err := parseHexColor("abc"); err == nil {
		t.Error("short value accepted")
	}
	if _, err := parseHexColor("#GGGGGG"); err == nil {
		t.Error("non-hex value accepted")
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	content := `
foreground = "#FFFFFF"
background = "#102030"
font = "/fonts/content.ttf"
font_size = 18
long_press_ms = 1500
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.Background != (display.Color{R: 0x10, G: 0x20, B: 0x30, A: 255}) {
		t.Errorf("background = %+v", theme.Background)
	}
	if theme.FontPath != "/fonts/content.ttf" || theme.FontSize != 18 {
		t.Errorf("font = %q size %d", theme.FontPath, theme.FontSize)
	}
	if theme.LongPress != 1500*time.Millisecond {
		t.Errorf("long press = %v", theme.LongPress)
	}

	// Unset fields keep the defaults.
	def := DefaultTheme()
	if theme.BoldFontPath != def.BoldFontPath || theme.BoldFontSize != def.BoldFontSize {
		t.Errorf("bold font not defaulted: %q %d", theme.BoldFontPath, theme.BoldFontSize)
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	if _, err := LoadTheme("/nonexistent/theme.toml"); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadThemeBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(`foreground = "red"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTheme(path); err == nil {
		t.Error("bad color accepted")
	}
}
