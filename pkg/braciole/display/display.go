// Package display defines the drawing contracts the braciole engine renders
// through, together with the geometry and pixel types shared by the widgets
// and the backends implementing them.
//
// The engine itself never touches a renderer directly: widgets paint through
// a Surface and measure through a Font. The SDL-backed implementations live
// in the internal package; tests substitute fixed-metric fakes.
package display

// Surface is the drawing capability supplied by the display backend.
// Coordinates are absolute screen coordinates. All calls are idempotent and
// issued from a single goroutine; only the actively painting widget writes
// to the surface at any instant.
type Surface interface {
	// FillRect fills the rectangle with a solid color.
	FillRect(r Rect, c Color)
	// DrawOutline draws a rounded outline along the rectangle's edge,
	// filling the interior with the background color.
	DrawOutline(r Rect, fg, bg Color)
	// DrawText draws a single line of text with its baseline at origin.
	DrawText(origin Point, text string, font Font, fg, bg Color)
	// DrawIcon draws a bitmap centered on the given point. Set bits are
	// drawn in the foreground color, cleared bits in the background color.
	DrawIcon(center Point, icon *Bitmap, fg, bg Color)
}

// Font provides the text metrics the widgets lay themselves out with.
type Font interface {
	// TextWidth returns the horizontal advance of the text in pixels.
	TextWidth(text string) int
	// LineHeight returns the vertical extent of a text line in pixels.
	LineHeight() int
}
