package internal

import (
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole/display"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultTextCacheSize = 16

// SDLSurface implements display.Surface over an SDL renderer. Rendered text
// textures are kept in a small LRU cache keyed by text and color, since the
// button row redraws the same handful of labels on every repaint.
type SDLSurface struct {
	renderer *sdl.Renderer

	textures map[string]*sdl.Texture
	order    []string // insertion order for LRU eviction
	maxSize  int
}

var _ display.Surface = (*SDLSurface)(nil)

// NewSurface creates a surface drawing into the given renderer.
func NewSurface(renderer *sdl.Renderer) *SDLSurface {
	return &SDLSurface{
		renderer: renderer,
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, defaultTextCacheSize),
		maxSize:  defaultTextCacheSize,
	}
}

func toSDLColor(c display.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FillRect fills the rectangle with a solid color.
func (s *SDLSurface) FillRect(r display.Rect, c display.Color) {
	s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	s.renderer.FillRect(&sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)})
}

// DrawOutline draws a rounded outline along the rectangle's edge, with the
// corners cut by two pixels, filling the interior with the background
// color.
func (s *SDLSurface) DrawOutline(r display.Rect, fg, bg display.Color) {
	s.FillRect(r, bg)

	s.renderer.SetDrawColor(fg.R, fg.G, fg.B, fg.A)

	x0, y0 := int32(r.X), int32(r.Y)
	x1, y1 := int32(r.X+r.W-1), int32(r.Y+r.H-1)

	s.renderer.DrawLine(x0+2, y0, x1-2, y0)
	s.renderer.DrawLine(x0+2, y1, x1-2, y1)
	s.renderer.DrawLine(x0, y0+2, x0, y1-2)
	s.renderer.DrawLine(x1, y0+2, x1, y1-2)

	s.renderer.DrawPoint(x0+1, y0+1)
	s.renderer.DrawPoint(x1-1, y0+1)
	s.renderer.DrawPoint(x0+1, y1-1)
	s.renderer.DrawPoint(x1-1, y1-1)
}

// DrawText draws a single line of text with its baseline at origin.
func (s *SDLSurface) DrawText(origin display.Point, text string, font display.Font, fg, bg display.Color) {
	if text == "" {
		return
	}
	ttfFont, ok := font.(*TTFFont)
	if !ok {
		return
	}

	texture, w, h := s.textTexture(text, ttfFont, fg, bg)
	if texture == nil {
		return
	}

	top := int32(origin.Y - ttfFont.Ascent())
	s.renderer.Copy(texture, nil, &sdl.Rect{X: int32(origin.X), Y: top, W: w, H: h})
}

// DrawIcon draws a bitmap centered on the given point.
func (s *SDLSurface) DrawIcon(center display.Point, icon *display.Bitmap, fg, bg display.Color) {
	originX := center.X - icon.W/2
	originY := center.Y - icon.H/2

	for y := 0; y < icon.H; y++ {
		for x := 0; x < icon.W; x++ {
			c := bg
			if icon.At(x, y) {
				c = fg
			}
			s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
			s.renderer.DrawPoint(int32(originX+x), int32(originY+y))
		}
	}
}

// textTexture returns a cached texture for the text, rendering and caching
// it on a miss.
func (s *SDLSurface) textTexture(text string, font *TTFFont, fg, bg display.Color) (*sdl.Texture, int32, int32) {
	key := fmt.Sprintf("%p|%02x%02x%02x|%02x%02x%02x|%s", font, fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, text)

	if texture, exists := s.textures[key]; exists {
		s.moveToEnd(key)
		_, _, w, h, err := texture.Query()
		if err == nil {
			return texture, w, h
		}
	}

	surface, err := font.TTF().RenderUTF8Shaded(text, toSDLColor(fg), toSDLColor(bg))
	if err != nil {
		return nil, 0, 0
	}
	defer surface.Free()

	texture, err := s.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0
	}

	if len(s.order) >= s.maxSize {
		s.evictOldest()
	}
	s.textures[key] = texture
	s.order = append(s.order, key)

	return texture, surface.W, surface.H
}

func (s *SDLSurface) moveToEnd(key string) {
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			s.order = append(s.order, key)
			return
		}
	}
}

func (s *SDLSurface) evictOldest() {
	if len(s.order) == 0 {
		return
	}

	oldest := s.order[0]
	s.order = s.order[1:]

	if texture, exists := s.textures[oldest]; exists {
		texture.Destroy()
		delete(s.textures, oldest)
	}
}

// Destroy releases every cached texture.
func (s *SDLSurface) Destroy() {
	for _, texture := range s.textures {
		texture.Destroy()
	}
	s.textures = make(map[string]*sdl.Texture)
	s.order = s.order[:0]
}
