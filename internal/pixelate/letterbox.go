// Package pixelate implements the letterbox geometry and the
// downscale/upscale draw sequence behind the pixel reveal effect.
package pixelate

// Rect is an axis-aligned rectangle in surface coordinates.
// X and Width may extend beyond the surface when the source is wider
// than the target box; the drawing layer clips the overflow.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Letterbox computes the destination rectangle for drawing a source
// with the given aspect ratio (width/height) onto a surface of
// surfaceW x surfaceH pixels.
//
// The height always fills the surface; the width follows from the
// aspect ratio and is centered horizontally. A source wider than the
// surface yields a negative X and bleeds off both side edges.
func Letterbox(surfaceW, surfaceH int, aspect float64) Rect {
	if surfaceW < 1 {
		surfaceW = 1
	}
	if surfaceH < 1 {
		surfaceH = 1
	}

	w := float64(surfaceH) * aspect
	return Rect{
		X:      (float64(surfaceW) - w) / 2,
		Y:      0,
		Width:  w,
		Height: float64(surfaceH),
	}
}
