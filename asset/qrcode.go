package asset

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QROptions configures QRCode.
type QROptions struct {
	// Level is the error correction level. The zero value is qrcode.Low.
	Level qrcode.RecoveryLevel

	// Scale is the size of a module in pixels. 0 means 1.
	Scale int

	// Border keeps the quiet zone of 4 modules around the symbol.
	Border bool
}

// QRCode encodes payload as a QR code bitmap with a width and height header,
// ready for gfx.Canvas.BitmapWithHeader. Dark modules are lit pixels.
func QRCode(payload string, opts *QROptions) ([]byte, error) {
	if payload == "" {
		return nil, errors.New("asset: empty QR code payload")
	}
	if opts == nil {
		opts = &QROptions{Level: qrcode.Medium}
	}
	scale := max(opts.Scale, 1)

	q, err := qrcode.New(payload, opts.Level)
	if err != nil {
		return nil, fmt.Errorf("asset: failed to encode QR code: %w", err)
	}
	q.DisableBorder = !opts.Border
	modules := q.Bitmap()

	size := len(modules) * scale
	if size > 255 {
		return nil, fmt.Errorf("%w: QR code of %d pixels", ErrTooLarge, size)
	}

	pages := (size + 7) / 8
	out := make([]byte, 2+size*pages)
	out[0], out[1] = byte(size), byte(size)
	bmp := out[2:]
	for y := 0; y < size; y++ {
		row := modules[y/scale]
		for x := 0; x < size; x++ {
			if row[x/scale] {
				bmp[(y/8)*size+x] |= 1 << uint(y&7)
			}
		}
	}
	return out, nil
}
