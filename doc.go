// Package pixelreveal renders a progressive pixelation-to-clarity
// reveal of an image as it scrolls into view.
//
// # Overview
//
// pixelreveal replaces a static image with an owned drawing Surface and
// repaints it at progressively higher resolution over a short timed
// sequence. Each clarity step draws the source image through a small
// nearest-neighbor sample buffer, producing visible pixel blocks that
// sharpen step by step until the final, fully clear draw.
//
// # Quick Start
//
//	import "github.com/gogpu/pixelreveal"
//
//	ctl, err := pixelreveal.New(host, trigger, "hero.jpg")
//	if err != nil {
//	    return err
//	}
//	ctl.Start(ctx)
//
// The host environment supplies layout, visibility, and resize
// notification through the [Host] interface; scroll observation comes
// from an external [ScrollTrigger] service, and the optional parallax
// overlay is animated by an external [Tweener]. Delayed execution runs
// through a [Scheduler], which defaults to the standard library timers.
//
// # Rendering
//
// The letterbox geometry always fills the surface height and centers
// the image horizontally; a source wider than the surface bleeds off
// both side edges rather than shrinking. Sampling is nearest-neighbor
// in both the downscale and upscale passes, which is what produces
// blocky pixelation instead of a blur.
//
// # Lifecycle
//
// A Controller is constructed once per image element, loads its source
// asynchronously, and stays inert if the load fails. Resizes
// are debounced and snap the surface straight to the clear image
// instead of replaying the reveal.
package pixelreveal
