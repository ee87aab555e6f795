package imaging_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"runtime"
	"testing"

	"golang.org/x/image/webp"

	"github.com/BruksfildServices01/valet-reports/internal/infra/imaging"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeScreenshotDownscales(t *testing.T) {
	out, err := imaging.NormalizeScreenshot(pngBytes(t, 3200, 800))
	if err != nil {
		t.Fatalf("NormalizeScreenshot: %v", err)
	}

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	if cfg.Width != imaging.MaxEdge || cfg.Height != 400 {
		t.Fatalf("expected %dx400, got %dx%d", imaging.MaxEdge, cfg.Width, cfg.Height)
	}
}

func TestNormalizeScreenshotKeepsSmallImages(t *testing.T) {
	out, err := imaging.NormalizeScreenshot(pngBytes(t, 300, 600))
	if err != nil {
		t.Fatalf("NormalizeScreenshot: %v", err)
	}

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	if cfg.Width != 300 || cfg.Height != 600 {
		t.Fatalf("expected 300x600, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestNormalizeScreenshotRejectsOtherFiles(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte("%PDF-1.4 not an image"), []byte("GIF89a....")} {
		if _, err := imaging.NormalizeScreenshot(raw); !errors.Is(err, imaging.ErrUnsupportedImage) {
			t.Fatalf("expected ErrUnsupportedImage for %q, got %v", raw, err)
		}
	}
}

// forgeDimensions rewrites the IHDR width and height of a PNG and fixes the
// chunk checksum, leaving the pixel data untouched.
func forgeDimensions(t *testing.T, raw []byte, w, h uint32) []byte {
	t.Helper()
	if len(raw) < 33 || string(raw[12:16]) != "IHDR" {
		t.Fatalf("unexpected png layout")
	}
	out := append([]byte(nil), raw...)
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestNormalizeScreenshotRejectsHugeDimensions(t *testing.T) {
	raw := forgeDimensions(t, pngBytes(t, 1, 1), 30000, 30000)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := imaging.NormalizeScreenshot(raw)
	runtime.ReadMemStats(&after)

	if !errors.Is(err, imaging.ErrUnsupportedImage) {
		t.Fatalf("expected ErrUnsupportedImage, got %v", err)
	}
	if grown := after.TotalAlloc - before.TotalAlloc; grown > 16<<20 {
		t.Fatalf("rejecting the header allocated %d bytes", grown)
	}
}
