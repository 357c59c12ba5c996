package chart

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageSurface is a CPU-backed Surface over an RGBA image. Pixels
// outside the bounds are silently clipped. Text is drawn with the
// basicfont bitmap face, so output is deterministic across platforms.
type ImageSurface struct {
	img  *image.RGBA
	face font.Face
}

// NewImageSurface allocates a surface of the given pixel dimensions.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: basicfont.Face7x13,
	}
}

// Size reports the surface dimensions in pixels.
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill paints the whole surface with c.
func (s *ImageSurface) Fill(c color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Line draws a straight segment using Bresenham's algorithm.
func (s *ImageSurface) Line(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		s.setPixel(x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Text draws a label anchored at (x, y).
func (s *ImageSurface) Text(x, y int, anchor Anchor, str string, c color.RGBA) {
	width := font.MeasureString(s.face, str).Ceil()
	metrics := s.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	// The drawer's dot sits on the baseline at the left edge of the
	// first glyph; shift it so the anchored corner lands on (x, y).
	dx, dy := x, y
	switch anchor {
	case AnchorTopLeft:
		dy += ascent
	case AnchorTopRight:
		dx -= width
		dy += ascent
	case AnchorBottomLeft:
		dy -= descent
	case AnchorBottomRight:
		dx -= width
		dy -= descent
	case AnchorCenter:
		dx -= width / 2
		dy += (ascent - descent) / 2
	}

	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: s.face,
		Dot:  fixed.P(dx, dy),
	}
	d.DrawString(str)
}

// Image exposes the backing image for presentation or comparison.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// WritePNG encodes the current surface contents as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

func (s *ImageSurface) setPixel(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Bounds()) {
		return
	}
	s.img.SetRGBA(x, y, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
