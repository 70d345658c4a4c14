package pixelate

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// gradientImage builds an opaque test image where every pixel color
// encodes its own coordinates.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func TestDrawPreservesSurfaceDimensions(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 64, 32))
	src := gradientImage(32, 16)

	for _, scale := range []float64{0.02, 0.25, 0.5, 1.0} {
		Draw(dst, src, 2, scale, color.Black)
		if got := dst.Bounds(); got.Dx() != 64 || got.Dy() != 32 {
			t.Fatalf("scale %v: bounds changed to %v", scale, got)
		}
	}
}

func TestDrawOutsideLetterboxIsBackdrop(t *testing.T) {
	// Square source on a 2:1 surface: the target box spans x in [25, 75)
	// and everything outside it must stay at the backdrop color.
	dst := image.NewRGBA(image.Rect(0, 0, 100, 50))
	src := gradientImage(10, 10)
	backdrop := color.RGBA{R: 200, A: 255}

	Draw(dst, src, 1, 0.1, backdrop)

	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			inside := x >= 25 && x < 75
			if !inside && dst.RGBAAt(x, y) != backdrop {
				t.Fatalf("pixel (%d,%d) outside letterbox = %v, want backdrop %v",
					x, y, dst.RGBAAt(x, y), backdrop)
			}
		}
	}
}

func TestDrawFullClarityMatchesDirectDraw(t *testing.T) {
	// Surface and source share the 2:1 aspect ratio, so scale 1.0 must
	// reproduce the source exactly: zero offsets, no resampling loss.
	src := gradientImage(8, 4)
	dst := image.NewRGBA(image.Rect(0, 0, 8, 4))

	Draw(dst, src, 2, 1.0, color.Black)

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if dst.RGBAAt(x, y) != src.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, dst.RGBAAt(x, y), src.RGBAAt(x, y))
			}
		}
	}
}

func TestDrawIdempotentAtFullClarity(t *testing.T) {
	src := gradientImage(16, 8)
	dst := image.NewRGBA(image.Rect(0, 0, 16, 8))

	Draw(dst, src, 2, 1.0, color.Black)
	first := append([]uint8(nil), dst.Pix...)

	Draw(dst, src, 2, 1.0, color.Black)
	if !bytes.Equal(first, dst.Pix) {
		t.Error("repeated full-clarity draws produced different pixels")
	}
}

func TestDrawProducesUniformBlocks(t *testing.T) {
	// At scale 0.5 a 4x4 surface is sampled through a 2x2 buffer, so the
	// result must consist of four uniform 2x2 blocks.
	src := gradientImage(4, 4)
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))

	Draw(dst, src, 1, 0.5, color.Black)

	for by := 0; by < 2; by++ {
		for bx := 0; bx < 2; bx++ {
			want := dst.RGBAAt(bx*2, by*2)
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					got := dst.RGBAAt(bx*2+dx, by*2+dy)
					if got != want {
						t.Fatalf("block (%d,%d) not uniform: pixel (%d,%d) = %v, want %v",
							bx, by, bx*2+dx, by*2+dy, got, want)
					}
				}
			}
		}
	}
}

func TestDrawClampsSampleBufferToOnePixel(t *testing.T) {
	// floor(10 * 0.001) is zero; the sample buffer is clamped to 1x1 so
	// the whole target box ends up a single flat color.
	src := gradientImage(10, 10)
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))

	Draw(dst, src, 1, 0.001, color.Black)

	want := dst.RGBAAt(0, 0)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if dst.RGBAAt(x, y) != want {
				t.Fatalf("pixel (%d,%d) = %v, want flat %v", x, y, dst.RGBAAt(x, y), want)
			}
		}
	}
}
