package service

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestConvertImageToWebPDownscales(t *testing.T) {
	data := pngBytes(t, 3200, 1600)

	out, meta, err := ConvertImageToWebP(data, "timetable.png")
	if err != nil {
		t.Fatalf("ConvertImageToWebP: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty webp output")
	}
	if meta.OriginalWidth != 3200 || meta.OriginalHeight != 1600 {
		t.Errorf("original dims = %dx%d", meta.OriginalWidth, meta.OriginalHeight)
	}
	if meta.StoredWidth != 1600 || meta.StoredHeight != 800 {
		t.Errorf("stored dims = %dx%d, want 1600x800", meta.StoredWidth, meta.StoredHeight)
	}
	if meta.StoredBytes != len(out) || meta.OriginalBytes != len(data) {
		t.Errorf("byte counts off: %+v", meta)
	}
}

func TestConvertImageToWebPKeepsSmallImages(t *testing.T) {
	data := pngBytes(t, 640, 480)

	_, meta, err := ConvertImageToWebP(data, "small.png")
	if err != nil {
		t.Fatalf("ConvertImageToWebP: %v", err)
	}
	if meta.StoredWidth != 640 || meta.StoredHeight != 480 {
		t.Errorf("small image was resized: %dx%d", meta.StoredWidth, meta.StoredHeight)
	}
}

func TestConvertImageToWebPRejectsJunk(t *testing.T) {
	_, _, err := ConvertImageToWebP([]byte("not an image at all, just text"), "notes.txt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("want ErrUnsupportedFormat, got %v", err)
	}

	if _, _, err := ConvertImageToWebP(nil, "empty.png"); err == nil {
		t.Fatal("empty input should fail")
	}
}
