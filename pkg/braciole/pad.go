package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/display"
)

// Pad owns a screen region and clears it to a background color before its
// contents are redrawn. Clear requests are coalesced into a dirty flag so a
// batched redraw fills the region at most once per processed event.
type Pad struct {
	area  display.Rect
	color display.Color
	dirty bool
}

// NewPad creates a pad with the given background color.
func NewPad(color display.Color) *Pad {
	return &Pad{color: color}
}

// Place assigns the pad's region and schedules an initial clear.
func (p *Pad) Place(area display.Rect) {
	p.area = area
	p.dirty = true
}

// Clear schedules the region to be wiped on the next paint.
func (p *Pad) Clear() {
	p.dirty = true
}

// Dirty reports whether a clear is pending.
func (p *Pad) Dirty() bool {
	return p.dirty
}

// Paint fills the region with the background color if a clear is pending.
func (p *Pad) Paint(s display.Surface) {
	if !p.dirty || p.area.IsEmpty() {
		p.dirty = false
		return
	}
	s.FillRect(p.area, p.color)
	p.dirty = false
}
