package braciole

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/display"
)

// ButtonPosition is the logical placement of a button within the button row.
// Middle is hit by the simultaneous-both gesture, not by a physical line of
// its own.
type ButtonPosition int

const (
	PositionLeft ButtonPosition = iota
	PositionMiddle
	PositionRight
)

// hit reports whether a physical signal is addressed to this position.
func (p ButtonPosition) hit(s PhysicalSignal) bool {
	switch p {
	case PositionLeft:
		return s == SignalLeft
	case PositionMiddle:
		return s == SignalBoth
	case PositionRight:
		return s == SignalRight
	default:
		return false
	}
}

// Button is a single on-screen control bound to one logical position. It
// owns its visual state, content and style, and turns matching press/release
// cycles into exactly one Clicked or LongPressed outcome.
//
// Buttons are created once and mutated in place; content and style changes
// take effect on the next Place.
type Button struct {
	bounds display.Rect
	pos    ButtonPosition

	text string
	icon *display.Bitmap // non-nil selects icon content over text

	styles  ButtonStyleSheet
	pressed bool
	dirty   bool

	// Long-press bookkeeping. The timer is cooperative: pressing arms a
	// deadline, and a timer-fire event reaching the button at or past the
	// deadline emits LongPressed. A release arriving first cancels it.
	longPress time.Duration
	armed     bool
	deadline  time.Time
	longFired bool
}

// NewTextButton creates a released button with text content.
func NewTextButton(pos ButtonPosition, text string, styles ButtonStyleSheet) *Button {
	return &Button{pos: pos, text: text, styles: styles}
}

// NewIconButton creates a released button with icon content.
func NewIconButton(pos ButtonPosition, icon *display.Bitmap, styles ButtonStyleSheet) *Button {
	return &Button{pos: pos, icon: icon, styles: styles}
}

func (b *Button) style() ButtonStyle {
	if b.pressed {
		return b.styles.Active
	}
	return b.styles.Normal
}

// SetText replaces the button's content with text. Any in-flight gesture is
// invalidated; the change takes effect on the next Place.
func (b *Button) SetText(text string) {
	b.text = text
	b.icon = nil
	b.invalidateGesture()
	b.dirty = true
}

// SetIcon replaces the button's content with an icon.
func (b *Button) SetIcon(icon *display.Bitmap) {
	b.icon = icon
	b.invalidateGesture()
	b.dirty = true
}

// SetStyle replaces the button's stylesheet.
func (b *Button) SetStyle(styles ButtonStyleSheet) {
	b.styles = styles
	b.invalidateGesture()
	b.dirty = true
}

// SetLongPress configures the long-press threshold. A zero duration disables
// long-press detection, making every completed cycle a click.
func (b *Button) SetLongPress(d time.Duration) {
	b.longPress = d
	b.invalidateGesture()
}

// IsLongPress reports whether the button is configured for long-press.
func (b *Button) IsLongPress() bool {
	return b.longPress > 0
}

// ForceReleased puts the button into the released visual state without
// producing an outcome. Used when a combined gesture is recognized and the
// individual buttons must not be read as half-pressed.
func (b *Button) ForceReleased() {
	if b.pressed {
		b.pressed = false
		b.dirty = true
	}
	b.invalidateGesture()
}

func (b *Button) invalidateGesture() {
	b.armed = false
	b.longFired = false
}

// Dirty reports whether the button needs repainting.
func (b *Button) Dirty() bool {
	return b.dirty
}

// ClearDirty resets the repaint flag after a batched redraw.
func (b *Button) ClearDirty() {
	b.dirty = false
}

// Deadline returns the armed long-press deadline, if any. The dispatch loop
// uses it to schedule the next timer-fire event.
func (b *Button) Deadline() (time.Time, bool) {
	return b.deadline, b.armed
}

// Place lays the button out within bounds and returns its occupied area.
// The width is either the style's forced width or derived from the content;
// horizontal placement follows the button's position. Re-layout invalidates
// any in-flight gesture.
func (b *Button) Place(bounds display.Rect) display.Rect {
	b.bounds = bounds
	b.invalidateGesture()
	return b.currentArea()
}

// currentArea computes the button's occupied rectangle from its current
// style, content and position.
func (b *Button) currentArea() display.Rect {
	style := b.style()

	width := style.ForceWidth
	if width == 0 {
		outline := 0
		if style.WithOutline {
			outline = constants.ButtonOutline
		}
		var contentWidth int
		if b.icon != nil {
			contentWidth = b.icon.W - 1
		} else {
			contentWidth = style.Font.TextWidth(b.text) - 1
		}
		width = contentWidth + 2*outline
	}

	switch b.pos {
	case PositionLeft:
		area, _ := b.bounds.SplitLeft(width)
		return area
	case PositionRight:
		_, area := b.bounds.SplitRight(width)
		return area
	default:
		return b.bounds.SplitCenter(width)
	}
}

// baseline determines the text baseline point. Arms and outline elevate the
// text by the outline padding.
func (b *Button) baseline(style ButtonStyle) display.Point {
	if style.WithArms || style.WithOutline {
		offset := constants.ButtonOutline
		return b.currentArea().BottomLeft().Add(display.Offset{X: offset, Y: -offset})
	}
	return b.currentArea().BottomLeft()
}

// Event processes one input event. Only edges addressed to the button's
// position are handled. It returns the gesture outcome, if the event
// completed one; exactly one outcome is produced per press/release cycle.
func (b *Button) Event(ev Event) (ButtonOutcome, bool) {
	switch ev.Kind {
	case EventPressed:
		if b.pos.hit(ev.Signal) {
			b.pressed = true
			b.dirty = true
			b.longFired = false
			if b.longPress > 0 {
				b.armed = true
				b.deadline = time.Now().Add(b.longPress)
			}
		}

	case EventReleased:
		if b.pos.hit(ev.Signal) && b.pressed {
			b.pressed = false
			b.dirty = true
			if b.longFired {
				// LongPressed was already emitted at fire time; the
				// release only restores the visual state.
				b.longFired = false
				return 0, false
			}
			b.armed = false
			return OutcomeClicked, true
		}

	case EventTimerFired:
		if b.armed && !ev.Now.Before(b.deadline) {
			b.armed = false
			b.longFired = true
			return OutcomeLongPressed, true
		}
	}
	return 0, false
}

// Paint draws the button: background decoration first (plain fill, rounded
// outline, or arms flanking the content), then the content.
func (b *Button) Paint(s display.Surface) {
	style := b.style()
	textColor := style.TextColor
	backgroundColor := textColor.Negate()
	area := b.currentArea()

	switch {
	case style.WithArms:
		// Make room for the arms on both sides of the content.
		fill := area.ExtendLeft(constants.ArmsExtendLeft).ExtendRight(constants.ArmsExtendRight)
		s.FillRect(fill, backgroundColor)

		leftArmCenter := area.LeftCenter().Add(display.Offset{X: -3, Y: 3})
		rightArmCenter := area.RightCenter().Add(display.Offset{X: 9, Y: 3})
		s.DrawIcon(leftArmCenter, display.ArmLeft, textColor, backgroundColor)
		s.DrawIcon(rightArmCenter, display.ArmRight, textColor, backgroundColor)
	case style.WithOutline:
		s.DrawOutline(area, textColor, backgroundColor)
	default:
		s.FillRect(area, backgroundColor)
	}

	if b.icon != nil {
		// Icons have an empty left column and bottom row, so nudge the
		// center by one pixel to keep them optically centered.
		center := area.Center().Add(display.Offset{X: 1, Y: 1})
		s.DrawIcon(center, b.icon, textColor, backgroundColor)
	} else {
		s.DrawText(b.baseline(style), b.text, style.Font, textColor, backgroundColor)
	}
	b.dirty = false
}
