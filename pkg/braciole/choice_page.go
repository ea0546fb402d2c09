package braciole

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/display"
)

// labelOverrides is a bounded index-to-label map for the select button.
// Its capacity is fixed at construction and is a documented invariant: a
// page with N items never holds more than N overrides.
type labelOverrides struct {
	capacity int
	keys     []int
	labels   []string
}

func newLabelOverrides(capacity int) *labelOverrides {
	return &labelOverrides{
		capacity: capacity,
		keys:     make([]int, 0, capacity),
		labels:   make([]string, 0, capacity),
	}
}

// set stores or replaces an override. It reports false when the map is full
// and the index is not already present.
func (m *labelOverrides) set(index int, label string) bool {
	for i, k := range m.keys {
		if k == index {
			m.labels[i] = label
			return true
		}
	}
	if len(m.keys) >= m.capacity {
		return false
	}
	m.keys = append(m.keys, index)
	m.labels = append(m.labels, label)
	return true
}

func (m *labelOverrides) get(index int) (string, bool) {
	for i, k := range m.keys {
		if k == index {
			return m.labels[i], true
		}
	}
	return "", false
}

// ChoicePage displays a bounded sequence of items one at a time and lets the
// user page through them with the two physical buttons, selecting the
// current item with the combined both-button gesture.
//
// The page owns three core buttons (Prev/Left, Select/Middle, Next/Right)
// and two optional side buttons that take over a boundary position when no
// sibling page exists in that direction. At most one output message is
// produced per processed event.
type ChoicePage struct {
	items     []ChoiceItem
	overrides *labelOverrides

	aggregator *PressAggregator
	pad        *Pad

	prev        *Button
	next        *Button
	sel         *Button
	selectLabel string

	leftmost  *SideButton
	rightmost *SideButton

	font display.Font

	// The button row is retained so a later label change to Select or a
	// side button can be re-laid-out without re-placing the whole page.
	buttonArea  display.Rect
	contentArea display.Rect

	pageCounter int
	dirty       bool
}

// NewChoicePage creates a controller over the given items. The font is used
// for the core button labels and sets the button row height. It returns
// ErrNoChoices for an empty item sequence; the controller requires at least
// one item.
func NewChoicePage(items []ChoiceItem, font display.Font) (*ChoicePage, error) {
	if len(items) == 0 {
		return nil, ErrNoChoices
	}

	labels := DefaultLabels()
	styles := DefaultButtonStyle(font)

	return &ChoicePage{
		items:       items,
		overrides:   newLabelOverrides(len(items)),
		aggregator:  NewPressAggregator(),
		pad:         NewPad(display.Black),
		prev:        NewTextButton(PositionLeft, labels.Prev, styles),
		next:        NewTextButton(PositionRight, labels.Next, styles),
		sel:         NewTextButton(PositionMiddle, labels.Select, styles),
		selectLabel: labels.Select,
		// Side buttons are constructed up front in the inactive state so
		// they can be placed together with the core buttons.
		leftmost:  NewSideButton(PositionLeft, labels.Leftmost, styles),
		rightmost: NewSideButton(PositionRight, labels.Rightmost, styles),
		font:      font,
		dirty:     true,
	}, nil
}

// WithSelectLabel changes the default select button label before placing.
func (p *ChoicePage) WithSelectLabel(text string) *ChoicePage {
	p.selectLabel = text
	p.sel.SetText(text)
	return p
}

// WithPrevLabel changes the previous button label before placing.
func (p *ChoicePage) WithPrevLabel(text string) *ChoicePage {
	p.prev.SetText(text)
	return p
}

// WithNextLabel changes the next button label before placing.
func (p *ChoicePage) WithNextLabel(text string) *ChoicePage {
	p.next.SetText(text)
	return p
}

// WithSelectLabelOverrides registers per-index select button labels.
// Overrides beyond the page's capacity (the item count) are dropped.
func (p *ChoicePage) WithSelectLabelOverrides(overrides map[int]string) *ChoicePage {
	for index, label := range overrides {
		p.SetSelectLabelOverride(index, label)
	}
	return p
}

// SetSelectLabelOverride sets the select button label for one item index.
// It reports false when the bounded override map is full.
func (p *ChoicePage) SetSelectLabelOverride(index int, label string) bool {
	return p.overrides.set(index, label)
}

// Place splits the bounds into the content region and a fixed-height button
// row, lays all five buttons out against the row, and places every item
// that manages its own content layout.
func (p *ChoicePage) Place(bounds display.Rect) display.Rect {
	rowHeight := p.font.LineHeight() + constants.ButtonRowMargin
	// Outlined and armed buttons need the full content height plus the
	// outline padding on both sides, whatever the font says.
	if rowHeight < constants.ButtonHeight {
		rowHeight = constants.ButtonHeight
	}
	contentArea, buttonArea := bounds.SplitBottom(rowHeight)

	p.pad.Place(bounds)
	p.prev.Place(buttonArea)
	p.next.Place(buttonArea)
	p.sel.Place(buttonArea)
	p.leftmost.Place(buttonArea)
	p.rightmost.Place(buttonArea)

	p.buttonArea = buttonArea
	p.contentArea = contentArea
	p.placeItems()
	p.dirty = true
	return bounds
}

func (p *ChoicePage) placeItems() {
	for _, item := range p.items {
		if pl, ok := item.(Placeable); ok {
			pl.PlaceContent(p.contentArea)
		}
	}
}

// ContentArea returns the region above the button row. Valid after Place.
func (p *ChoicePage) ContentArea() display.Rect {
	return p.contentArea
}

// PageCounter returns the current item index.
func (p *ChoicePage) PageCounter() int {
	return p.pageCounter
}

// SetPageCounter moves the page to the given index, clamped into the valid
// range.
func (p *ChoicePage) SetPageCounter(index int) {
	last := p.lastPageIndex()
	if index < 0 {
		index = 0
	} else if index > last {
		index = last
	}
	p.pageCounter = index
	p.dirty = true
}

// Reset swaps in a new item sequence, enabling one controller instance to
// serve multiple unrelated selection flows without reconstruction. The
// flags control whether the page counter is reinitialized to zero and
// whether both side buttons are deactivated. A counter that is kept but no
// longer in range for the new sequence is clamped to the last page.
func (p *ChoicePage) Reset(items []ChoiceItem, resetCounter, resetSideButtons bool) error {
	if len(items) == 0 {
		return ErrNoChoices
	}
	p.items = items
	p.placeItems()
	if resetCounter {
		p.SetPageCounter(0)
	} else {
		p.SetPageCounter(p.pageCounter)
	}
	if resetSideButtons {
		p.leftmost.Unset()
		p.rightmost.Unset()
	}
	p.dirty = true
	return nil
}

// SetLeftmostButton activates the leftmost side button, triggered by click.
func (p *ChoicePage) SetLeftmostButton(text string) {
	p.leftmost.Set(text, 0, p.buttonArea)
	p.dirty = true
}

// SetLeftmostButtonLongPress activates the leftmost side button, triggered
// only by holding past the given duration.
func (p *ChoicePage) SetLeftmostButtonLongPress(text string, d time.Duration) {
	p.leftmost.Set(text, d, p.buttonArea)
	p.dirty = true
}

// SetRightmostButton activates the rightmost side button, triggered by
// click.
func (p *ChoicePage) SetRightmostButton(text string) {
	p.rightmost.Set(text, 0, p.buttonArea)
	p.dirty = true
}

// SetRightmostButtonLongPress activates the rightmost side button,
// triggered only by holding past the given duration.
func (p *ChoicePage) SetRightmostButtonLongPress(text string, d time.Duration) {
	p.rightmost.Set(text, d, p.buttonArea)
	p.dirty = true
}

// UnsetLeftmostButton deactivates the leftmost side button.
func (p *ChoicePage) UnsetLeftmostButton() {
	p.leftmost.Unset()
	p.dirty = true
}

// UnsetRightmostButton deactivates the rightmost side button.
func (p *ChoicePage) UnsetRightmostButton() {
	p.rightmost.Unset()
	p.dirty = true
}

func (p *ChoicePage) lastPageIndex() int {
	return len(p.items) - 1
}

func (p *ChoicePage) hasPreviousChoice() bool {
	return p.pageCounter > 0
}

func (p *ChoicePage) hasNextChoice() bool {
	return p.pageCounter < p.lastPageIndex()
}

// forceNonSelectReleased puts every non-middle button back into the
// released visual state. One of them holds a pressed state from the first
// edge of the combined gesture; this only repaints, it produces no outcome.
func (p *ChoicePage) forceNonSelectReleased() {
	p.prev.ForceReleased()
	p.next.ForceReleased()
	p.leftmost.ForceReleased()
	p.rightmost.ForceReleased()
}

// Event routes one incoming event and returns the resulting message, if
// any. The event first passes through the press aggregator; a combined
// gesture forces the non-select buttons released before routing continues.
// Routing order is prev-or-leftmost, next-or-rightmost, then always select,
// returning the first message produced.
func (p *ChoicePage) Event(ev Event) (ChoiceMsg, bool) {
	resolved, ok := p.aggregator.Resolve(ev)
	if !ok {
		return ChoiceMsg{}, false
	}

	if p.aggregator.BothActive(resolved) {
		p.forceNonSelectReleased()
	}

	// LEFT position: page back, or fire the leftmost side button at the
	// first page.
	if p.hasPreviousChoice() {
		if outcome, ok := p.prev.Event(resolved); ok && outcome == OutcomeClicked {
			p.pageCounter--
			p.dirty = true
			return ChoiceMsg{}, false
		}
	} else if p.leftmost.IsActive() && p.leftmost.GotTriggered(resolved) {
		return ChoiceMsg{Kind: ChoiceLeftMost, Index: p.pageCounter}, true
	}

	// RIGHT position: page forward, or fire the rightmost side button at
	// the last page.
	if p.hasNextChoice() {
		if outcome, ok := p.next.Event(resolved); ok && outcome == OutcomeClicked {
			p.pageCounter++
			p.dirty = true
			return ChoiceMsg{}, false
		}
	} else if p.rightmost.IsActive() && p.rightmost.GotTriggered(resolved) {
		return ChoiceMsg{Kind: ChoiceRightMost, Index: p.pageCounter}, true
	}

	// MIDDLE position: select the current item.
	if outcome, ok := p.sel.Event(resolved); ok && outcome == OutcomeClicked {
		return ChoiceMsg{Kind: ChoiceSelected, Index: p.pageCounter}, true
	}

	return ChoiceMsg{}, false
}

// NeedsPaint reports whether any part of the page changed since the last
// paint. The dispatch loop coalesces repaints into one batched redraw per
// processed event.
func (p *ChoicePage) NeedsPaint() bool {
	return p.dirty ||
		p.prev.Dirty() || p.next.Dirty() || p.sel.Dirty() ||
		p.leftmost.Dirty() || p.rightmost.Dirty()
}

// NextDeadline returns the earliest armed long-press deadline among the
// page's buttons, so the dispatch loop can schedule the next timer-fire
// event.
func (p *ChoicePage) NextDeadline() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, b := range []*Button{p.prev, p.next, p.sel, p.leftmost.button, p.rightmost.button} {
		if d, armed := b.Deadline(); armed && (!found || d.Before(earliest)) {
			earliest = d
			found = true
		}
	}
	return earliest, found
}

// Paint redraws the whole page: the background pad is cleared so only
// relevant widgets remain visible, the current item renders centered with
// its neighbors to either side, then the eligible boundary buttons and the
// select button are painted. The select label override for the current
// index is resolved before drawing.
func (p *ChoicePage) Paint(s display.Surface) {
	p.pad.Clear()
	p.pad.Paint(s)

	// MIDDLE section above the buttons.
	p.items[p.pageCounter].PaintCenter(s)
	if p.hasPreviousChoice() {
		p.items[p.pageCounter-1].PaintLeft(s)
	}
	if p.hasNextChoice() {
		p.items[p.pageCounter+1].PaintRight(s)
	}

	// BOTTOM LEFT position.
	if p.hasPreviousChoice() {
		p.prev.Paint(s)
	} else if p.leftmost.IsActive() {
		p.leftmost.Paint(s)
	}

	// BOTTOM RIGHT position.
	if p.hasNextChoice() {
		p.next.Paint(s)
	} else if p.rightmost.IsActive() {
		p.rightmost.Paint(s)
	}

	// BOTTOM MIDDLE position.
	p.resolveSelectLabel()
	p.sel.Paint(s)

	// Buttons not eligible at the current page keep their state but must
	// not hold the repaint flag up.
	p.prev.ClearDirty()
	p.next.ClearDirty()
	p.leftmost.ClearDirty()
	p.rightmost.ClearDirty()

	p.dirty = false
}

// resolveSelectLabel applies the per-index select label override, falling
// back to the default label, and re-places the button against the retained
// row so the width change takes effect.
func (p *ChoicePage) resolveSelectLabel() {
	label := p.selectLabel
	if override, ok := p.overrides.get(p.pageCounter); ok {
		label = override
	}
	if label != p.sel.text {
		p.sel.SetText(label)
		p.sel.Place(p.buttonArea)
	}
}
