package pixelreveal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/chai2010/webp"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Loader errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("pixelreveal: empty image data")
)

// SourceImage holds the decoded bitmap, its intrinsic dimensions, and
// the aspect ratio computed once after the asynchronous load completes.
// Read-only thereafter; every render pass reads from it.
type SourceImage struct {
	bitmap   image.Image
	width    int
	height   int
	aspect   float64
	backdrop color.Color
}

func newSourceImage(img image.Image) *SourceImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return &SourceImage{
		bitmap: img,
		width:  w,
		height: h,
		// A zero height yields a non-finite ratio; downstream geometry
		// propagates it instead of treating it as fatal.
		aspect:   float64(w) / float64(h),
		backdrop: backdropColor(img),
	}
}

// Bitmap returns the decoded image.
func (s *SourceImage) Bitmap() image.Image { return s.bitmap }

// Width returns the intrinsic width in pixels.
func (s *SourceImage) Width() int { return s.width }

// Height returns the intrinsic height in pixels.
func (s *SourceImage) Height() int { return s.height }

// Aspect returns the intrinsic aspect ratio (width/height).
func (s *SourceImage) Aspect() float64 { return s.aspect }

// Backdrop returns the letterbox clear color for this image.
func (s *SourceImage) Backdrop() color.Color { return s.backdrop }

// backdropColor derives a muted variant of the image's dominant color,
// so the letterbox padding reads as part of the artwork instead of flat
// black.
func backdropColor(img image.Image) color.Color {
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return color.Black
	}
	dom := dominantcolor.Find(img)
	c, ok := colorful.MakeColor(dom)
	if !ok {
		return color.Black
	}
	h, s, l := c.Hsl()
	r, g, bl := colorful.Hsl(h, s*0.4, l*0.25).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

// Loader fetches and decodes the image behind a source URI.
// Load runs off the caller's goroutine; implementations should honor
// ctx cancellation for long fetches.
type Loader interface {
	Load(ctx context.Context, source string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
// Supported formats: PNG, JPEG, WebP.
type FileLoader struct{}

// Load implements the Loader interface.
func (FileLoader) Load(_ context.Context, source string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(source))
	if err != nil {
		return nil, fmt.Errorf("pixelreveal: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return decode(f, filepath.Ext(source))
}

// HTTPLoader fetches images over HTTP(S).
type HTTPLoader struct {
	// Client is the HTTP client used for fetches.
	// If nil, http.DefaultClient is used.
	Client *http.Client
}

// Load implements the Loader interface.
func (l HTTPLoader) Load(ctx context.Context, source string) (image.Image, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("pixelreveal: build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pixelreveal: fetch image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pixelreveal: fetch image: bad status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pixelreveal: read body: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	return decode(bytes.NewReader(data), filepath.Ext(req.URL.Path))
}

// autoLoader picks FileLoader or HTTPLoader from the URI scheme.
// It is the default Loader for a Controller.
type autoLoader struct{}

func (autoLoader) Load(ctx context.Context, source string) (image.Image, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return HTTPLoader{}.Load(ctx, source)
	}
	return FileLoader{}.Load(ctx, source)
}

// decode decodes an image from the given reader, using the extension as
// a format hint and falling back to content detection.
func decode(r io.Reader, ext string) (image.Image, error) {
	switch strings.ToLower(ext) {
	case ".png":
		img, err := png.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("pixelreveal: decode PNG: %w", err)
		}
		return img, nil
	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("pixelreveal: decode JPEG: %w", err)
		}
		return img, nil
	case ".webp":
		img, err := webp.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("pixelreveal: decode WebP: %w", err)
		}
		return img, nil
	default:
		img, _, err := image.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("pixelreveal: decode: %w", err)
		}
		return img, nil
	}
}
