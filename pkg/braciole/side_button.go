package braciole

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/display"

	"go.uber.org/atomic"
)

// SideButton is the optional auxiliary button shown at a pagination
// boundary. It wraps a Button with an activation flag and decides which
// outcome counts as a trigger: with a long-press duration configured only
// LongPressed qualifies, otherwise only Clicked does.
//
// Side buttons exist from construction in the inactive state so they can be
// placed alongside the core buttons; inactive side buttons never participate
// in event routing or painting.
type SideButton struct {
	button *Button
	active atomic.Bool
}

// NewSideButton creates an inactive side button at the given position.
func NewSideButton(pos ButtonPosition, text string, styles ButtonStyleSheet) *SideButton {
	return &SideButton{button: NewTextButton(pos, text, styles)}
}

// Set activates the side button with the given label and long-press
// duration (zero for click-triggered), re-placing it against the retained
// button row.
func (sb *SideButton) Set(text string, longPress time.Duration, buttonArea display.Rect) {
	sb.button.SetText(text)
	sb.button.SetLongPress(longPress)
	sb.button.Place(buttonArea)
	sb.active.Store(true)
}

// Unset deactivates the side button. Its configuration is retained but it
// no longer routes events or paints.
func (sb *SideButton) Unset() {
	sb.active.Store(false)
	sb.button.ForceReleased()
}

// IsActive reports whether the side button participates in routing and
// painting.
func (sb *SideButton) IsActive() bool {
	return sb.active.Load()
}

// Place lays the wrapped button out against the button row.
func (sb *SideButton) Place(buttonArea display.Rect) {
	sb.button.Place(buttonArea)
}

// Paint draws the wrapped button. Callers are expected to check IsActive
// first; the page never paints an inactive side button.
func (sb *SideButton) Paint(s display.Surface) {
	sb.button.Paint(s)
}

// ForceReleased restores the released visual state without an outcome.
func (sb *SideButton) ForceReleased() {
	sb.button.ForceReleased()
}

// Dirty reports whether the wrapped button needs repainting.
func (sb *SideButton) Dirty() bool {
	return sb.button.Dirty()
}

// ClearDirty resets the repaint flag after a batched redraw.
func (sb *SideButton) ClearDirty() {
	sb.button.ClearDirty()
}

// GotTriggered routes one event into the wrapped button and reports whether
// it produced the qualifying outcome. Each qualifying gesture triggers
// exactly once.
func (sb *SideButton) GotTriggered(ev Event) bool {
	outcome, ok := sb.button.Event(ev)
	if !ok {
		return false
	}
	if sb.button.IsLongPress() {
		return outcome == OutcomeLongPressed
	}
	return outcome == OutcomeClicked
}
