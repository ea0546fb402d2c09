// Package braciole is an interaction engine for small displays driven by
// two physical buttons. It turns raw hardware edge events into unambiguous
// user intents: per-position button widgets with click/long-press
// disambiguation, a press aggregator that resolves simultaneous two-button
// presses into a distinct middle gesture, and a paginated choice-selection
// controller composing them into a navigable list picker.
//
// The package handles SDL initialization, theming, hardware button input
// and logging; the Pick entry point runs a complete selection flow.
package braciole

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/display"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// Options configures engine initialization.
type Options struct {
	WindowTitle     string // Window title displayed in windowed (dev) mode
	ThemePath       string // Path to a TOML theme file; empty uses the built-in theme
	InputDevicePath string // evdev device carrying the two button lines (e.g. /dev/input/event1)
	LeftKeyCode     uint16 // Key code of the left line (default KEY_LEFT, 105)
	RightKeyCode    uint16 // Key code of the right line (default KEY_RIGHT, 106)
	LogPath         string // Full path for the log file including filename; empty logs to stdout only
	LogLevel        string // Minimum log level ("debug", "info", "warn", "error")
	Locale          []string // Preferred languages for default button labels
}

var inputConfig struct {
	path  string
	left  uint16
	right uint16
}

// Init initializes SDL, theming, fonts and input handling. Must be called
// before any other braciole function.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	themePath := options.ThemePath
	if env := os.Getenv(constants.ThemePathEnvVar); env != "" {
		themePath = env
	}
	if themePath != "" {
		theme, err := internal.LoadTheme(themePath)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to load theme; using defaults", "error", err)
		}
		internal.SetTheme(theme)
	}

	if len(options.Locale) > 0 {
		SetLocale(options.Locale...)
	}

	inputConfig.path = options.InputDevicePath
	inputConfig.left = options.LeftKeyCode
	inputConfig.right = options.RightKeyCode
	if inputConfig.left == 0 {
		inputConfig.left = 105 // KEY_LEFT
	}
	if inputConfig.right == 0 {
		inputConfig.right = 106 // KEY_RIGHT
	}

	internal.Init(options.WindowTitle, internal.WindowOptions{})
}

// Close releases all SDL resources and shuts down the engine. Must be
// called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string
// (e.g. "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// ButtonFont returns the bold theme font the button row is laid out with.
// Valid after Init.
func ButtonFont() display.Font {
	return internal.GetFonts().Button
}

// ContentFont returns the theme font for item content. Valid after Init.
func ContentFont() display.Font {
	return internal.GetFonts().Normal
}

// LoadIcon rasterizes an SVG file into a bitmap usable as icon button
// content.
func LoadIcon(path string, size int) (*display.Bitmap, error) {
	bitmap, err := internal.LoadSVGIcon(path, size)
	if err != nil {
		return nil, NewInfrastructureError("load_icon", err)
	}
	return bitmap, nil
}
