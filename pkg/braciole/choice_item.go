package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/display"
)

// ChoiceItem is the capability a selectable value must provide: rendering
// itself into one of three fixed horizontal slots of the content region.
// Items are supplied by the caller and referenced read-only by the
// controller; each paint may assume the region was already cleared.
type ChoiceItem interface {
	PaintCenter(s display.Surface)
	PaintLeft(s display.Surface)
	PaintRight(s display.Surface)
}

// Placeable is an optional capability for items that lay themselves out
// against the content region. The picker places every item that implements
// it; hand-rolled items are free to manage their own coordinates.
type Placeable interface {
	PlaceContent(area display.Rect)
}

// TextChoiceItem renders a plain string into the three slots. It is the
// stock item used by the picker for string choices.
type TextChoiceItem struct {
	Text string
	Font display.Font
	FG   display.Color
	BG   display.Color

	area display.Rect
}

// NewTextChoiceItem creates a text item drawing white-on-black.
func NewTextChoiceItem(text string, font display.Font) *TextChoiceItem {
	return &TextChoiceItem{Text: text, Font: font, FG: display.White, BG: display.Black}
}

// NewTextChoiceItems wraps a slice of strings into choice items.
func NewTextChoiceItems(texts []string, font display.Font) []ChoiceItem {
	items := make([]ChoiceItem, len(texts))
	for i, t := range texts {
		items[i] = NewTextChoiceItem(t, font)
	}
	return items
}

// PlaceContent assigns the content region the item draws into.
func (t *TextChoiceItem) PlaceContent(area display.Rect) {
	t.area = area
}

// row is the baseline the three slots share: the vertical middle of the
// content region, adjusted for line height.
func (t *TextChoiceItem) row() int {
	return t.area.Y + t.area.H/2 + t.Font.LineHeight()/2
}

// PaintCenter draws the item centered in the content region.
func (t *TextChoiceItem) PaintCenter(s display.Surface) {
	x := t.area.X + (t.area.W-t.Font.TextWidth(t.Text))/2
	s.DrawText(display.Point{X: x, Y: t.row()}, t.Text, t.Font, t.FG, t.BG)
}

// PaintLeft draws the item against the left edge of the content region.
func (t *TextChoiceItem) PaintLeft(s display.Surface) {
	s.DrawText(display.Point{X: t.area.X, Y: t.row()}, t.Text, t.Font, t.FG, t.BG)
}

// PaintRight draws the item against the right edge of the content region.
func (t *TextChoiceItem) PaintRight(s display.Surface) {
	x := t.area.X + t.area.W - t.Font.TextWidth(t.Text)
	s.DrawText(display.Point{X: x, Y: t.row()}, t.Text, t.Font, t.FG, t.BG)
}
