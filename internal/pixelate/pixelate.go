// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixelate

import (
	"image"
	"image/color"
	"math"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Draw renders src onto dst at the given clarity scale.
//
// The operation performs the following steps:
//  1. Clear dst with the backdrop color
//  2. Downscale src with nearest-neighbor sampling into a buffer of
//     floor(dstW*scale) x floor(dstH*scale) pixels
//  3. Enlarge that low-resolution buffer onto the letterboxed target
//     rectangle, again with nearest-neighbor sampling
//
// Nearest-neighbor sampling in both passes is what makes the result
// visibly blocky rather than blurred. At scale 1.0 the two passes
// degenerate to an ordinary clear draw, so Draw is idempotent there.
//
// The destination image is modified in place.
func Draw(dst draw.Image, src image.Image, aspect, scale float64, backdrop color.Color) {
	b := dst.Bounds()
	sw, sh := b.Dx(), b.Dy()

	draw.Draw(dst, b, image.NewUniform(backdrop), image.Point{}, draw.Src)

	fw := int(math.Floor(float64(sw) * scale))
	fh := int(math.Floor(float64(sh) * scale))
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}

	// Low-resolution sampling pass. The buffer is surface-shaped, not
	// source-shaped: the source is squashed into it and the letterbox
	// target below stretches it back out.
	small := resize.Resize(uint(fw), uint(fh), src, resize.NearestNeighbor)

	box := Letterbox(sw, sh, aspect)
	target := image.Rect(
		b.Min.X+int(math.Round(box.X)),
		b.Min.Y+int(math.Round(box.Y)),
		b.Min.X+int(math.Round(box.X+box.Width)),
		b.Min.Y+int(math.Round(box.Y+box.Height)),
	)

	draw.NearestNeighbor.Scale(dst, target, small, small.Bounds(), draw.Src, nil)
}
