package braciole

import (
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole/display"
)

// fakeFont has fixed metrics so layout results are exact in tests.
type fakeFont struct {
	charWidth  int
	lineHeight int
}

func (f fakeFont) TextWidth(text string) int {
	return f.charWidth * len(text)
}

func (f fakeFont) LineHeight() int {
	return f.lineHeight
}

var testFont = fakeFont{charWidth: 6, lineHeight: 10}

// fakeSurface records draw calls as readable strings.
type fakeSurface struct {
	calls []string
}

func (s *fakeSurface) FillRect(r display.Rect, c display.Color) {
	s.calls = append(s.calls, fmt.Sprintf("fill(%d,%d,%d,%d)", r.X, r.Y, r.W, r.H))
}

func (s *fakeSurface) DrawOutline(r display.Rect, fg, bg display.Color) {
	s.calls = append(s.calls, fmt.Sprintf("outline(%d,%d,%d,%d)", r.X, r.Y, r.W, r.H))
}

func (s *fakeSurface) DrawText(origin display.Point, text string, font display.Font, fg, bg display.Color) {
	s.calls = append(s.calls, fmt.Sprintf("text(%d,%d,%q)", origin.X, origin.Y, text))
}

func (s *fakeSurface) DrawIcon(center display.Point, icon *display.Bitmap, fg, bg display.Color) {
	s.calls = append(s.calls, fmt.Sprintf("icon(%d,%d,%dx%d)", center.X, center.Y, icon.W, icon.H))
}

func (s *fakeSurface) reset() {
	s.calls = nil
}

func (s *fakeSurface) contains(call string) bool {
	for _, c := range s.calls {
		if c == call {
			return true
		}
	}
	return false
}
