package display

// Bitmap is a 1-bit-per-pixel image. Rows are packed MSB-first, one or more
// bytes per row. Set bits render in the foreground color.
type Bitmap struct {
	W, H int
	Bits []byte
}

// NewBitmap allocates a cleared bitmap of the given dimensions.
func NewBitmap(w, h int) *Bitmap {
	stride := (w + 7) / 8
	return &Bitmap{W: w, H: h, Bits: make([]byte, stride*h)}
}

func (b *Bitmap) stride() int {
	return (b.W + 7) / 8
}

// At reports whether the pixel at (x, y) is set. Out-of-range coordinates
// read as unset.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	byteIdx := y*b.stride() + x/8
	return b.Bits[byteIdx]&(0x80>>uint(x%8)) != 0
}

// Set sets or clears the pixel at (x, y). Out-of-range coordinates are
// ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	byteIdx := y*b.stride() + x/8
	mask := byte(0x80) >> uint(x%8)
	if on {
		b.Bits[byteIdx] |= mask
	} else {
		b.Bits[byteIdx] &^= mask
	}
}

// Arm decorations flanking button content, 6x10 pixels each.
var (
	ArmLeft = &Bitmap{W: 6, H: 10, Bits: []byte{
		0b00110000,
		0b01000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b10000000,
		0b01000000,
		0b00110000,
	}}

	ArmRight = &Bitmap{W: 6, H: 10, Bits: []byte{
		0b00110000,
		0b00001000,
		0b00000100,
		0b00000100,
		0b00000100,
		0b00000100,
		0b00000100,
		0b00000100,
		0b00001000,
		0b00110000,
	}}
)
