package asset

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/gift"
)

// BitmapOptions configures Bitmap.
type BitmapOptions struct {
	// Target size. A zero dimension keeps the aspect ratio; both zero keep
	// the source size.
	Width, Height int

	// Threshold is the gray level from which a pixel counts as light.
	// 0 means 0x80.
	Threshold uint8

	// Dark pixels are lit by default, as ink on the panel. Invert lights
	// the light ones instead.
	Invert bool

	// Header prefixes the bitmap with its width and height.
	Header bool
}

// Bitmap converts img into a packed bitmap for gfx.Canvas.Bitmap: bands of 8
// rows, one byte per column, LSB at the top.
//
// The image is resized with Lanczos resampling, turned to grayscale and
// thresholded.
func Bitmap(img image.Image, opts *BitmapOptions) ([]byte, error) {
	if opts == nil {
		opts = &BitmapOptions{}
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = 0x80
	}

	g := gift.New()
	if opts.Width > 0 || opts.Height > 0 {
		g.Add(gift.Resize(opts.Width, opts.Height, gift.LanczosResampling))
	}
	g.Add(gift.Grayscale())
	gray := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(gray, img)

	bw := segment.Threshold(gray, threshold)
	w, h := bw.Bounds().Dx(), bw.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("asset: empty image %dx%d", w, h)
	}
	if opts.Header && (w > 255 || h > 255) {
		return nil, fmt.Errorf("%w: bitmap %dx%d does not fit a header", ErrTooLarge, w, h)
	}

	on := color.Gray{Y: 0}
	if opts.Invert {
		on = color.Gray{Y: 0xff}
	}
	out := Pack(bw, func(c color.Gray) bool { return c == on })
	if opts.Header {
		out = append([]byte{byte(w), byte(h)}, out...)
	}
	return out, nil
}

// Pack packs a gray image into bands of 8 rows, lighting the pixels lit
// reports true for.
func Pack(img *image.Gray, lit func(color.Gray) bool) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, w*((h+7)/8))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if lit(img.GrayAt(b.Min.X+x, b.Min.Y+y)) {
				out[(y/8)*w+x] |= 1 << uint(y&7)
			}
		}
	}
	return out
}
