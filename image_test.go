package drawbot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid PNG and returns its path.
func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.NRGBA{R: 0xff, A: 0xff})

	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() = %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("png.Encode() = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	return path
}

func TestImagePlacement(t *testing.T) {
	path := writeTestPNG(t, 8, 8)

	d, doc := newTestDrawing(t)
	if err := d.Image(path, 10, 10); err != nil {
		t.Fatalf("Image() = %v", err)
	}
	if got := firstPage(t, d, doc).DrawOps(); got != 1 {
		t.Errorf("DrawOps() = %d, want 1", got)
	}
}

func TestImageMissingFile(t *testing.T) {
	d, _ := newTestDrawing(t)
	if err := d.Image(filepath.Join(t.TempDir(), "nope.png"), 0, 0); err == nil {
		t.Error("Image() with missing file = nil, want error")
	}
}

func TestImageCacheReuse(t *testing.T) {
	path := writeTestPNG(t, 4, 4)

	cache := NewImageCache(8)
	a, err := cache.Get(path)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	b, err := cache.Get(path)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if a != b {
		t.Error("second Get() decoded again instead of hitting the cache")
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestImageCacheEviction(t *testing.T) {
	paths := []string{
		writeTestPNG(t, 2, 2),
		writeTestPNG(t, 3, 3),
		writeTestPNG(t, 4, 4),
	}

	cache := NewImageCache(2)
	for _, p := range paths {
		if _, err := cache.Get(p); err != nil {
			t.Fatalf("Get() = %v", err)
		}
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want capacity 2", cache.Len())
	}
}

func TestImageZeroAlphaDrawsNothing(t *testing.T) {
	path := writeTestPNG(t, 4, 4)

	d, doc := newTestDrawing(t)
	if err := d.NewPage(100, 100); err != nil {
		t.Fatalf("NewPage() = %v", err)
	}
	if err := d.Image(path, 0, 0, WithImageAlpha(0)); err != nil {
		t.Fatalf("Image() = %v", err)
	}
	if got := firstPage(t, d, doc).DrawOps(); got != 0 {
		t.Errorf("DrawOps() = %d, want 0", got)
	}
}

func TestImageAlphaOption(t *testing.T) {
	path := writeTestPNG(t, 4, 4)

	d, doc := newTestDrawing(t)
	if err := d.Image(path, 0, 0, WithImageAlpha(0.5)); err != nil {
		t.Fatalf("Image() = %v", err)
	}
	if err := d.EndDrawing(); err != nil {
		t.Fatalf("EndDrawing() = %v", err)
	}

	cc := &countingCanvas{}
	doc.Pictures()[0].Replay(cc)
	if cc.images != 1 {
		t.Fatalf("image draws = %d, want 1", cc.images)
	}
	if got := cc.placements[0].Alpha; got != 0.5 {
		t.Errorf("placement alpha = %g, want 0.5", got)
	}
}
