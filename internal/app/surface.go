package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// PixelSurface is an RGBA pixel buffer implementing sim.Surface. Entities
// write pixels during the render phase; Present uploads the buffer to the
// ebiten image that Draw blits to the screen. The buffer is owned here —
// the core never keeps a reference past a render call.
type PixelSurface struct {
	width  int
	height int
	pix    []byte
	img    *ebiten.Image
}

// NewPixelSurface allocates a surface of the given size in pixels.
func NewPixelSurface(width, height int) *PixelSurface {
	return &PixelSurface{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
		img:    ebiten.NewImage(width, height),
	}
}

// SetPixel writes one pixel. Writes outside the buffer are dropped, so a
// shape halfway over an edge renders its visible part only.
func (s *PixelSurface) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.pix[i] = c.R
	s.pix[i+1] = c.G
	s.pix[i+2] = c.B
	s.pix[i+3] = c.A
}

// Clear wipes the buffer to opaque black before a render pass.
func (s *PixelSurface) Clear() {
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i] = 0
		s.pix[i+1] = 0
		s.pix[i+2] = 0
		s.pix[i+3] = 0xff
	}
}

// Present uploads the finished frame. WritePixels cannot fail, but Present
// keeps the error return so the core's loop contract holds for surfaces
// that can.
func (s *PixelSurface) Present() error {
	s.img.WritePixels(s.pix)
	return nil
}

// Image is the most recently presented frame.
func (s *PixelSurface) Image() *ebiten.Image { return s.img }

// Size returns the buffer dimensions in pixels.
func (s *PixelSurface) Size() (int, int) { return s.width, s.height }
