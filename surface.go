package pixelreveal

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Surface is the drawing target owned by a Controller.
// It is a rectangular RGBA pixel buffer sized from the container's
// content box; dimensions are clamped to at least one pixel per axis so
// geometry derived from them stays finite.
type Surface struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewSurface creates a surface with the given dimensions.
// Dimensions smaller than one pixel are clamped to one.
func NewSurface(width, height int) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Data returns the raw pixel data (RGBA format).
func (s *Surface) Data() []uint8 {
	return s.data
}

// RGBA returns a standard-library view of the surface pixels.
// The view shares the underlying buffer, so draws into it mutate the
// surface directly.
func (s *Surface) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    s.data,
		Stride: s.width * 4,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c color.Color) {
	r, g, b, a := color.RGBAModel.Convert(c).RGBA()
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = uint8(r >> 8)
		s.data[i+1] = uint8(g >> 8)
		s.data[i+2] = uint8(b >> 8)
		s.data[i+3] = uint8(a >> 8)
	}
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	i := (y*s.width + x) * 4
	return color.RGBA{R: s.data[i+0], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// EncodePNG encodes the surface as PNG to the given writer.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.RGBA())
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}

	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
