package display

// Color is an RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Monochrome palette used by the default theme. The engine targets
// single-plane displays, so most styles only ever use these two.
var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Black = Color{R: 0, G: 0, B: 0, A: 255}
)

// HexColor converts a 0xRRGGBB value to an opaque Color.
func HexColor(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// Negate returns the color's monochrome complement. Button backgrounds are
// always the complement of the text color, matching the single-plane model.
func (c Color) Negate() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}
