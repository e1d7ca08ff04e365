package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	// Uploaded timetable photos are shrunk to fit this box before storage.
	maxImageDim = 1600

	webpQuality = 80
)

// ErrUnsupportedFormat is returned when the upload is not jpg/png/webp.
var ErrUnsupportedFormat = fmt.Errorf("unsupported image format")

// ImageMeta describes the stored copy next to the original upload.
type ImageMeta struct {
	OriginalWidth  int `json:"original_width"`
	OriginalHeight int `json:"original_height"`
	StoredWidth    int `json:"stored_width"`
	StoredHeight   int `json:"stored_height"`
	OriginalBytes  int `json:"original_bytes"`
	StoredBytes    int `json:"stored_bytes"`
}

// ConvertImageToWebP decodes a jpg/png/webp upload, downscales it to fit
// maxImageDim and re-encodes it as lossy webp.
func ConvertImageToWebP(data []byte, filename string) ([]byte, ImageMeta, error) {
	var meta ImageMeta
	if len(data) == 0 {
		return nil, meta, fmt.Errorf("empty file")
	}

	img, err := decodeImage(data, filename)
	if err != nil {
		return nil, meta, err
	}

	bounds := img.Bounds()
	meta.OriginalWidth = bounds.Dx()
	meta.OriginalHeight = bounds.Dy()
	meta.OriginalBytes = len(data)

	if bounds.Dx() > maxImageDim || bounds.Dy() > maxImageDim {
		img = imaging.Fit(img, maxImageDim, maxImageDim, imaging.Lanczos)
	}
	stored := img.Bounds()
	meta.StoredWidth = stored.Dx()
	meta.StoredHeight = stored.Dy()

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, meta, fmt.Errorf("encode webp: %w", err)
	}
	meta.StoredBytes = buf.Len()
	return buf.Bytes(), meta, nil
}

// decodeImage sniffs the MIME type first and falls back to the filename
// extension, matching what browsers actually send for webp uploads.
func decodeImage(data []byte, filename string) (image.Image, error) {
	ct := http.DetectContentType(data)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(data))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(data))
	case ".png":
		return png.Decode(bytes.NewReader(data))
	case ".webp":
		return webp.Decode(bytes.NewReader(data))
	}
	return nil, ErrUnsupportedFormat
}
