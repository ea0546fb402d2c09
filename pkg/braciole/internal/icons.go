package internal

import (
	"fmt"
	"image"

	"github.com/BrandonKowalski/braciole/pkg/braciole/display"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// LoadSVGIcon rasterizes an SVG file into a 1bpp bitmap of the given size,
// suitable for icon button content. Pixels with at least half coverage are
// set; the widgets decide the colors at draw time, so the SVG's own fill
// colors only contribute coverage.
func LoadSVGIcon(path string, size int) (*display.Bitmap, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("read svg %s: %w", path, err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return thresholdAlpha(rgba, size, size), nil
}

// thresholdAlpha reduces a rasterized image to set/unset bits by alpha
// coverage.
func thresholdAlpha(rgba *image.RGBA, w, h int) *display.Bitmap {
	bitmap := display.NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := rgba.At(x, y).RGBA()
			bitmap.Set(x, y, a >= 0x8000)
		}
	}
	return bitmap
}
