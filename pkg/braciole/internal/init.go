// Package internal contains the backend infrastructure for the braciole
// engine: SDL initialization, the drawing surface, fonts, theming, hardware
// button input and logging. Types and functions in this package are not
// part of the public API.
package internal

import (
	"os"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, the window, and the theme fonts. It must be called
// before any component runs.
func Init(title string, winOpts WindowOptions) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		GetInternalLogger().Error("SDL init failed", "error", err)
		os.Exit(1)
	}

	if err := img.Init(img.INIT_PNG); err != nil {
		GetInternalLogger().Warn("SDL_image init failed; background images disabled", "error", err)
	}

	if err := ttf.Init(); err != nil {
		GetInternalLogger().Error("SDL_ttf init failed", "error", err)
		os.Exit(1)
	}

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, Fullscreen: true}
		}
	}

	window = initWindow(title, winOpts)

	if err := initFonts(GetTheme()); err != nil {
		GetInternalLogger().Error("Font init failed", "error", err)
		os.Exit(1)
	}
}

// SDLCleanup releases every SDL resource the engine holds.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
	}
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
