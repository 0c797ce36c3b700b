// Package signature turns a client-submitted signature payload into a
// document block. A broken payload never fails the document: it becomes a
// visible placeholder paragraph instead.
package signature

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	"onboardpdf/internal/document"
	"onboardpdf/internal/model"
)

// Display box for the signature, 3 in x 0.75 in.
const (
	BoxWidth  = 3 * document.Inch
	BoxHeight = 0.75 * document.Inch
)

// Input limits.
const (
	MaxPayloadBytes = 5 << 20
	MaxPixels       = 4096 * 4096
)

var (
	ErrDecode        = errors.New("invalid base64 payload")
	ErrTooLarge      = errors.New("signature payload too large")
	ErrImage         = errors.New("unsupported image data")
	ErrImageTooLarge = errors.New("signature image dimensions too large")
)

// Result is the outcome of materializing one payload. Block is nil when the
// payload was absent.
type Result struct {
	Block   document.Block
	Outcome model.SignatureOutcome
	Err     error
	Digest  string // hex SHA-256 of the embedded PNG
}

// Materialize decodes payload and returns an Image block sized to the
// signature box, or a placeholder paragraph naming the failure. The decoded
// image only lives in memory for the duration of the call.
func Materialize(payload string) Result {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Result{Outcome: model.SignatureAbsent}
	}

	img, err := decode(stripDataURL(payload))
	if err != nil {
		return Result{
			Block:   Placeholder(err),
			Outcome: model.SignatureFailed,
			Err:     err,
		}
	}
	sum := sha256.Sum256(img.Data)
	return Result{
		Block:   img,
		Outcome: model.SignatureEmbedded,
		Digest:  hex.EncodeToString(sum[:]),
	}
}

// Placeholder returns the paragraph shown in place of a broken signature.
func Placeholder(err error) document.Block {
	return document.Paragraph{
		Text:  document.Text(fmt.Sprintf("[Signature image error: %v]", err)),
		Style: document.StyleItalic,
	}
}

// stripDataURL drops a "data:<mime>;base64," style prefix, i.e. everything up
// to and including the first comma.
func stripDataURL(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		return s[i+1:]
	}
	return s
}

func decode(data string) (document.Image, error) {
	data = strings.Join(strings.Fields(data), "")
	if base64.StdEncoding.DecodedLen(len(data)) > MaxPayloadBytes {
		return document.Image{}, ErrTooLarge
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		var rerr error
		if raw, rerr = base64.RawStdEncoding.DecodeString(data); rerr != nil {
			return document.Image{}, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return document.Image{}, fmt.Errorf("%w: %v", ErrImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > MaxPixels {
		return document.Image{}, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return document.Image{}, fmt.Errorf("%w: %v", ErrImage, err)
	}

	// 8-bit RGBA so the PDF writer never sees 16-bit or paletted PNG.
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return document.Image{}, fmt.Errorf("%w: %v", ErrImage, err)
	}

	w, h := Fit(b.Dx(), b.Dy(), BoxWidth, BoxHeight)
	sum := sha256.Sum256(buf.Bytes())
	return document.Image{
		Name:        "signature-" + hex.EncodeToString(sum[:8]),
		Data:        buf.Bytes(),
		Width:       w,
		Height:      h,
		PixelWidth:  b.Dx(),
		PixelHeight: b.Dy(),
	}, nil
}

// Fit scales a px x py image to the largest size inside boxW x boxH that
// keeps its aspect ratio.
func Fit(px, py int, boxW, boxH float64) (float64, float64) {
	if px <= 0 || py <= 0 {
		return 0, 0
	}
	scale := boxW / float64(px)
	if s := boxH / float64(py); s < scale {
		scale = s
	}
	return float64(px) * scale, float64(py) * scale
}
