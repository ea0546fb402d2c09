// Package constants defines shared constants and configuration values used
// throughout the braciole interaction engine.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names honored in development mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	ThemePathEnvVar    = "THEME_PATH"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
// In development mode input comes from the keyboard instead of the hardware
// button lines, and the window is sized for a desktop.
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Default timing constants.
const (
	// DefaultInputDelay debounces successive edge events in the picker loop.
	DefaultInputDelay = 20 * time.Millisecond

	// DefaultLongPress is the long-press threshold used when a side button
	// is configured for long-press without an explicit duration.
	DefaultLongPress = time.Second
)

// Button layout constants. Content height, outline padding and the derived
// button height are fixed for the whole button row so that text and icon
// buttons line up.
const (
	ButtonContentHeight = 7
	ButtonOutline       = 3
	ButtonHeight        = ButtonContentHeight + 2*ButtonOutline

	// ButtonRowMargin is added to the bold font line height to form the
	// height of the button row at the bottom of the page.
	ButtonRowMargin = 2

	// Arms decoration extents: the background fill behind an armed button
	// reaches this far beyond the content area on each side.
	ArmsExtendLeft  = 10
	ArmsExtendRight = 15
)
