package braciole

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/display"
)

var testBounds = display.Rect{X: 0, Y: 0, W: 128, H: 64}

func newTestPage(t *testing.T, texts ...string) *ChoicePage {
	t.Helper()
	page, err := NewChoicePage(NewTextChoiceItems(texts, testFont), testFont)
	if err != nil {
		t.Fatalf("NewChoicePage: %v", err)
	}
	page.Place(testBounds)
	return page
}

// click feeds a full press/release cycle on one line into the page and
// returns the last message produced.
func click(p *ChoicePage, sig PhysicalSignal) (ChoiceMsg, bool) {
	p.Event(Pressed(sig))
	return p.Event(Released(sig))
}

// clickBoth feeds the combined gesture: both lines down, then both up.
func clickBoth(p *ChoicePage) (ChoiceMsg, bool) {
	p.Event(Pressed(SignalLeft))
	p.Event(Pressed(SignalRight))
	msg, ok := p.Event(Released(SignalRight))
	p.Event(Released(SignalLeft))
	return msg, ok
}

func TestChoicePageRequiresItems(t *testing.T) {
	_, err := NewChoicePage(nil, testFont)
	if !errors.Is(err, ErrNoChoices) {
		t.Fatalf("err = %v, want ErrNoChoices", err)
	}
}

func TestChoicePagePaging(t *testing.T) {
	page := newTestPage(t, "a", "b", "c")

	if msg, ok := click(page, SignalRight); ok {
		t.Fatalf("paging produced message %+v", msg)
	}
	if page.PageCounter() != 1 {
		t.Fatalf("counter = %d, want 1", page.PageCounter())
	}

	click(page, SignalRight)
	if page.PageCounter() != 2 {
		t.Fatalf("counter = %d, want 2", page.PageCounter())
	}

	// Right at the last page without a side button does nothing.
	if msg, ok := click(page, SignalRight); ok {
		t.Fatalf("right at last page produced %+v", msg)
	}
	if page.PageCounter() != 2 {
		t.Fatalf("counter = %d, want 2", page.PageCounter())
	}

	click(page, SignalLeft)
	if page.PageCounter() != 1 {
		t.Fatalf("counter = %d, want 1", page.PageCounter())
	}

	click(page, SignalLeft)
	// Left at the first page without a side button does nothing.
	if msg, ok := click(page, SignalLeft); ok {
		t.Fatalf("left at first page produced %+v", msg)
	}
	if page.PageCounter() != 0 {
		t.Fatalf("counter = %d, want 0", page.PageCounter())
	}
}

func TestChoicePageSelect(t *testing.T) {
	page := newTestPage(t, "a", "b", "c")
	click(page, SignalRight)

	msg, ok := clickBoth(page)
	if !ok || msg.Kind != ChoiceSelected || msg.Index != 1 {
		t.Fatalf("got (%+v, %v), want Selected index 1", msg, ok)
	}
}

func TestChoicePageCombinedGestureDoesNotPage(t *testing.T) {
	page := newTestPage(t, "a", "b", "c")
	click(page, SignalRight) // counter 1, both neighbors exist

	msg, ok := clickBoth(page)
	if !ok || msg.Kind != ChoiceSelected || msg.Index != 1 {
		t.Fatalf("got (%+v, %v), want Selected index 1", msg, ok)
	}
	// Neither the first press nor the drain releases leaked a page turn.
	if page.PageCounter() != 1 {
		t.Fatalf("counter = %d, want 1", page.PageCounter())
	}
}

func TestChoicePageSideButtons(t *testing.T) {
	page := newTestPage(t, "a", "b")
	page.SetLeftmostButton("CANCEL")
	page.SetRightmostButton("DONE")

	// Leftmost fires only at the first page.
	msg, ok := click(page, SignalLeft)
	if !ok || msg.Kind != ChoiceLeftMost {
		t.Fatalf("got (%+v, %v), want LeftMost", msg, ok)
	}

	click(page, SignalRight) // counter 1, last page
	msg, ok = click(page, SignalRight)
	if !ok || msg.Kind != ChoiceRightMost || msg.Index != 1 {
		t.Fatalf("got (%+v, %v), want RightMost index 1", msg, ok)
	}

	// Away from the boundary the core buttons take the position back.
	click(page, SignalLeft)
	if page.PageCounter() != 0 {
		t.Fatalf("counter = %d, want 0", page.PageCounter())
	}
}

func TestChoicePageSideButtonLongPress(t *testing.T) {
	page := newTestPage(t, "only")
	page.SetRightmostButtonLongPress("RESET", 100*time.Millisecond)

	// A quick click must not fire it.
	if msg, ok := click(page, SignalRight); ok {
		t.Fatalf("click fired long-press side button: %+v", msg)
	}

	page.Event(Pressed(SignalRight))
	deadline, armed := page.NextDeadline()
	if !armed {
		t.Fatal("press did not arm a deadline")
	}
	msg, ok := page.Event(TimerFired(deadline))
	if !ok || msg.Kind != ChoiceRightMost {
		t.Fatalf("got (%+v, %v), want RightMost", msg, ok)
	}
	if msg, ok := page.Event(Released(SignalRight)); ok {
		t.Fatalf("release after fire produced %+v", msg)
	}
}

func TestChoicePageSinglePage(t *testing.T) {
	page := newTestPage(t, "only")

	// Neither direction pages; select works.
	if msg, ok := click(page, SignalLeft); ok {
		t.Fatalf("left produced %+v", msg)
	}
	if msg, ok := click(page, SignalRight); ok {
		t.Fatalf("right produced %+v", msg)
	}
	msg, ok := clickBoth(page)
	if !ok || msg.Kind != ChoiceSelected || msg.Index != 0 {
		t.Fatalf("got (%+v, %v), want Selected index 0", msg, ok)
	}
}

func TestChoicePageButtonRowHeight(t *testing.T) {
	page := newTestPage(t, "a")

	// testFont line height 10 + margin 2 = 12, under the 13px floor an
	// outlined button needs.
	if got := page.ContentArea().H; got != testBounds.H-constants.ButtonHeight {
		t.Fatalf("content height = %d, want %d", got, testBounds.H-constants.ButtonHeight)
	}

	tall := fakeFont{charWidth: 6, lineHeight: 20}
	page, err := NewChoicePage(NewTextChoiceItems([]string{"a"}, tall), tall)
	if err != nil {
		t.Fatal(err)
	}
	page.Place(testBounds)
	want := testBounds.H - (tall.LineHeight() + constants.ButtonRowMargin)
	if got := page.ContentArea().H; got != want {
		t.Fatalf("content height = %d, want %d", got, want)
	}
}

func TestChoicePageSetPageCounterClamps(t *testing.T) {
	page := newTestPage(t, "a", "b", "c")

	page.SetPageCounter(99)
	if page.PageCounter() != 2 {
		t.Fatalf("counter = %d, want 2", page.PageCounter())
	}
	page.SetPageCounter(-5)
	if page.PageCounter() != 0 {
		t.Fatalf("counter = %d, want 0", page.PageCounter())
	}
}

func TestChoicePageReset(t *testing.T) {
	page := newTestPage(t, "a", "b", "c")
	page.SetLeftmostButton("CANCEL")
	page.SetPageCounter(2)

	// Kept counter beyond the new range clamps to the last page.
	if err := page.Reset(NewTextChoiceItems([]string{"x", "y"}, testFont), false, false); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if page.PageCounter() != 1 {
		t.Fatalf("counter = %d, want 1", page.PageCounter())
	}
	if !page.leftmost.IsActive() {
		t.Fatal("side button dropped without resetSideButtons")
	}

	// Full reset reinitializes the counter and side buttons.
	if err := page.Reset(NewTextChoiceItems([]string{"p", "q"}, testFont), true, true); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if page.PageCounter() != 0 {
		t.Fatalf("counter = %d, want 0", page.PageCounter())
	}
	if page.leftmost.IsActive() {
		t.Fatal("side button survived resetSideButtons")
	}

	if err := page.Reset(nil, true, true); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("empty reset err = %v, want ErrNoChoices", err)
	}
}

func TestChoicePageSelectLabelOverrides(t *testing.T) {
	page := newTestPage(t, "a", "b")
	page.WithSelectLabelOverrides(map[int]string{1: "CONFIRM"})

	s := &fakeSurface{}
	page.Paint(s)
	if !containsText(s, "SELECT") {
		t.Errorf("default label missing at index 0, calls: %v", s.calls)
	}

	click(page, SignalRight)
	s.reset()
	page.Paint(s)
	if !containsText(s, "CONFIRM") {
		t.Errorf("override missing at index 1, calls: %v", s.calls)
	}

	click(page, SignalLeft)
	s.reset()
	page.Paint(s)
	if !containsText(s, "SELECT") {
		t.Errorf("default label not restored at index 0, calls: %v", s.calls)
	}
}

func TestChoicePageOverrideMapBounded(t *testing.T) {
	page := newTestPage(t, "a", "b")

	if !page.SetSelectLabelOverride(0, "A") {
		t.Fatal("first override rejected")
	}
	if !page.SetSelectLabelOverride(1, "B") {
		t.Fatal("second override rejected")
	}
	// Replacing an existing index always works.
	if !page.SetSelectLabelOverride(0, "A2") {
		t.Fatal("replacement rejected")
	}
	// A new index beyond the capacity is rejected.
	if page.SetSelectLabelOverride(5, "C") {
		t.Fatal("over-capacity override accepted")
	}
}

func TestChoicePagePaintNeighbors(t *testing.T) {
	page := newTestPage(t, "aa", "bb", "cc")
	page.SetPageCounter(1)

	s := &fakeSurface{}
	page.Paint(s)

	if !containsText(s, "aa") || !containsText(s, "bb") || !containsText(s, "cc") {
		t.Errorf("middle page missing a neighbor, calls: %v", s.calls)
	}

	page.SetPageCounter(0)
	s.reset()
	page.Paint(s)
	if containsText(s, "cc") {
		t.Errorf("first page painted a non-neighbor, calls: %v", s.calls)
	}
}

func TestChoicePageNeedsPaintCoalesces(t *testing.T) {
	page := newTestPage(t, "a", "b")
	if !page.NeedsPaint() {
		t.Fatal("fresh page does not need paint")
	}

	page.Paint(&fakeSurface{})
	if page.NeedsPaint() {
		t.Fatal("page dirty right after paint")
	}

	page.Event(Pressed(SignalRight))
	if !page.NeedsPaint() {
		t.Fatal("press did not mark the page dirty")
	}
	page.Event(Released(SignalRight))
	page.Paint(&fakeSurface{})
	if page.NeedsPaint() {
		t.Fatal("page dirty after repaint")
	}
}

func containsText(s *fakeSurface, text string) bool {
	for _, c := range s.calls {
		if strings.HasPrefix(c, "text") && strings.Contains(c, `"`+text+`"`) {
			return true
		}
	}
	return false
}
