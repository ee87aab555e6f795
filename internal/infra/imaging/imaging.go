package imaging

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	cwebp "github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

const (
	MaxEdge     = 1600
	ContentType = "image/webp"
	Extension   = ".webp"

	// MaxPixels bounds width*height before any pixel data is decoded.
	MaxPixels = 40_000_000

	quality = 80
)

var ErrUnsupportedImage = errors.New("screenshot must be png, jpeg, or webp")

// NormalizeScreenshot decodes an uploaded image, shrinks it so neither side
// exceeds MaxEdge and re-encodes it as WebP.
func NormalizeScreenshot(raw []byte) ([]byte, error) {
	switch http.DetectContentType(raw) {
	case "image/png", "image/jpeg", "image/webp":
	default:
		return nil, ErrUnsupportedImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		if cfg, err = webp.DecodeConfig(bytes.NewReader(raw)); err != nil {
			return nil, ErrUnsupportedImage
		}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > MaxPixels {
		return nil, ErrUnsupportedImage
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		decoded, webpErr := webp.Decode(bytes.NewReader(raw))
		if webpErr != nil {
			return nil, ErrUnsupportedImage
		}
		img = decoded
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrUnsupportedImage
	}

	img = fit(img, MaxEdge)

	var out bytes.Buffer
	if err := cwebp.Encode(&out, img, &cwebp.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// fit scales img down proportionally so its longest side is at most edge.
func fit(img image.Image, edge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= edge && h <= edge {
		return img
	}

	if w >= h {
		h = max(1, h*edge/w)
		w = edge
	} else {
		w = max(1, w*edge/h)
		h = edge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
