package display

// Point is a position in absolute screen coordinates.
type Point struct {
	X, Y int
}

// Offset is a relative displacement between points.
type Offset struct {
	X, Y int
}

// Add returns the point displaced by the offset.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Rect is an axis-aligned rectangle in absolute screen coordinates.
type Rect struct {
	X, Y, W, H int
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// LeftCenter returns the midpoint of the left edge.
func (r Rect) LeftCenter() Point {
	return Point{X: r.X, Y: r.Y + r.H/2}
}

// RightCenter returns the midpoint of the right edge.
func (r Rect) RightCenter() Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H/2}
}

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point {
	return Point{X: r.X, Y: r.Y + r.H}
}

// SplitLeft cuts a strip of the given width off the left edge and returns
// the strip together with the remainder.
func (r Rect) SplitLeft(width int) (left, rest Rect) {
	width = clamp(width, 0, r.W)
	left = Rect{X: r.X, Y: r.Y, W: width, H: r.H}
	rest = Rect{X: r.X + width, Y: r.Y, W: r.W - width, H: r.H}
	return left, rest
}

// SplitRight cuts a strip of the given width off the right edge and returns
// the remainder together with the strip.
func (r Rect) SplitRight(width int) (rest, right Rect) {
	width = clamp(width, 0, r.W)
	rest = Rect{X: r.X, Y: r.Y, W: r.W - width, H: r.H}
	right = Rect{X: r.X + r.W - width, Y: r.Y, W: width, H: r.H}
	return rest, right
}

// SplitCenter returns a strip of the given width centered horizontally
// within the rectangle.
func (r Rect) SplitCenter(width int) Rect {
	width = clamp(width, 0, r.W)
	return Rect{X: r.X + (r.W-width)/2, Y: r.Y, W: width, H: r.H}
}

// SplitBottom cuts a strip of the given height off the bottom edge and
// returns the remainder together with the strip.
func (r Rect) SplitBottom(height int) (top, bottom Rect) {
	height = clamp(height, 0, r.H)
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: r.H - height}
	bottom = Rect{X: r.X, Y: r.Y + r.H - height, W: r.W, H: height}
	return top, bottom
}

// ExtendLeft grows the rectangle to the left by the given amount.
func (r Rect) ExtendLeft(by int) Rect {
	return Rect{X: r.X - by, Y: r.Y, W: r.W + by, H: r.H}
}

// ExtendRight grows the rectangle to the right by the given amount.
func (r Rect) ExtendRight(by int) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W + by, H: r.H}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
