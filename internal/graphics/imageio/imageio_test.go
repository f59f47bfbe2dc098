package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}
	return img
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h, max    int
		wantW, wantH int
	}{
		{100, 50, 0, 100, 50},
		{100, 50, 200, 100, 50},
		{2048, 1024, 512, 512, 256},
		{1024, 2048, 512, 256, 512},
		{4000, 1, 100, 100, 1},
	}
	for _, tt := range tests {
		w, h := FitSize(tt.w, tt.h, tt.max)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("FitSize(%d, %d, %d) = %dx%d, want %dx%d", tt.w, tt.h, tt.max, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestDecodeRegisteredFormats(t *testing.T) {
	src := checker(8, 4)
	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
		"tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) },
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf); err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			img, err := Decode(&buf, 0)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if img.Bounds() != image.Rect(0, 0, 8, 4) {
				t.Fatalf("unexpected bounds %v", img.Bounds())
			}
			if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
				t.Errorf("pixel (0,0) = %v, want red", got)
			}
			if got := img.RGBAAt(1, 0); got != (color.RGBA{0, 0, 255, 255}) {
				t.Errorf("pixel (1,0) = %v, want blue", got)
			}
		})
	}
}

func TestLoadScalesDown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, checker(64, 32)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path, 16)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 16, 8) {
		t.Errorf("expected 16x8 after fitting, got %v", img.Bounds())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.jpg"), 0); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	if _, err := Decode(bytes.NewReader([]byte("not an image")), 0); err == nil {
		t.Error("expected decode error")
	}
}
