package pixelreveal

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSurfaceClampsDimensions(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"normal", 320, 180, 320, 180},
		{"zero width", 0, 180, 1, 180},
		{"zero height", 320, 0, 320, 1},
		{"both zero", 0, 0, 1, 1},
		{"negative", -5, -7, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(tt.w, tt.h)
			if s.Width() != tt.wantW || s.Height() != tt.wantH {
				t.Errorf("NewSurface(%d, %d) = %dx%d, want %dx%d",
					tt.w, tt.h, s.Width(), s.Height(), tt.wantW, tt.wantH)
			}
			if len(s.Data()) != tt.wantW*tt.wantH*4 {
				t.Errorf("data length = %d, want %d", len(s.Data()), tt.wantW*tt.wantH*4)
			}
		})
	}
}

func TestSurfaceClear(t *testing.T) {
	s := NewSurface(4, 3)
	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	s.Clear(want)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := s.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSurfaceRGBAViewSharesBuffer(t *testing.T) {
	s := NewSurface(8, 8)
	want := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	s.RGBA().SetRGBA(3, 5, want)

	if got := s.At(3, 5); got != want {
		t.Errorf("At(3,5) = %v, want %v (view must share the buffer)", got, want)
	}
}

func TestSurfaceAtOutOfBounds(t *testing.T) {
	s := NewSurface(2, 2)
	s.Clear(color.RGBA{R: 255, A: 255})

	if got := s.At(-1, 0); got != (color.RGBA{}) {
		t.Errorf("At(-1,0) = %v, want zero color", got)
	}
	if got := s.At(2, 2); got != (color.RGBA{}) {
		t.Errorf("At(2,2) = %v, want zero color", got)
	}
}

func TestSurfaceSavePNG(t *testing.T) {
	s := NewSurface(6, 4)
	s.Clear(color.RGBA{R: 40, G: 80, B: 120, A: 255})

	path := filepath.Join(t.TempDir(), "surface.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("saved image = %dx%d, want 6x4", b.Dx(), b.Dy())
	}
}
