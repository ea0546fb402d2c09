package display

import "testing"

func TestHexColor(t *testing.T) {
	c := HexColor(0x1A2B3C)
	want := Color{R: 0x1A, G: 0x2B, B: 0x3C, A: 255}
	if c != want {
		t.Fatalf("HexColor = %+v, want %+v", c, want)
	}
}

func TestNegate(t *testing.T) {
	if White.Negate() != Black {
		t.Error("negated white is not black")
	}
	if Black.Negate() != White {
		t.Error("negated black is not white")
	}
	c := Color{R: 10, G: 20, B: 30, A: 200}
	got := c.Negate()
	if got != (Color{R: 245, G: 235, B: 225, A: 200}) {
		t.Errorf("Negate = %+v", got)
	}
}
