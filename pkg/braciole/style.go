package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/display"
)

// ButtonStyle describes how a button renders in one visual state. The
// background is always the complement of the text color, so only the text
// color is configurable.
type ButtonStyle struct {
	Font        display.Font
	TextColor   display.Color
	WithOutline bool // rounded outline around the content
	WithArms    bool // arm decorations flanking the content
	ForceWidth  int  // explicit width in pixels; 0 derives width from content
}

// ButtonStyleSheet holds the two style sets a button switches between,
// selected by its visual state.
type ButtonStyleSheet struct {
	Normal ButtonStyle
	Active ButtonStyle
}

// NewButtonStyleSheet builds a stylesheet with the given colors per state
// and shared decoration flags.
func NewButtonStyleSheet(font display.Font, normal, active display.Color, withOutline, withArms bool, forceWidth int) ButtonStyleSheet {
	return ButtonStyleSheet{
		Normal: ButtonStyle{
			Font:        font,
			TextColor:   normal,
			WithOutline: withOutline,
			WithArms:    withArms,
			ForceWidth:  forceWidth,
		},
		Active: ButtonStyle{
			Font:        font,
			TextColor:   active,
			WithOutline: withOutline,
			WithArms:    withArms,
			ForceWidth:  forceWidth,
		},
	}
}

// DefaultButtonStyle builds the standard white-on-black stylesheet used by
// the choice page buttons.
func DefaultButtonStyle(font display.Font) ButtonStyleSheet {
	return NewButtonStyleSheet(font, display.White, display.Black, false, false, 0)
}
