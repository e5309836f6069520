// Package image1bit provides a 1-bit image format optimized for the ST7567 display.
//
// The ST7567 stores pixels in vertical bytes: one byte covers 8 rows of a
// single column, least significant bit at the top.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a lit (On) or unlit (Off) pixel.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the Bit to standard RGBA. On is white, Off is black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as color.GrayModel, thresholded at half intensity
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image where each byte holds 8 vertically stacked
// pixels, bit 0 being the top one.
type VerticalLSB struct {
	Pix    []byte          // Pixel data, Stride bytes per page
	Stride int             // Bytes per page (the image width)
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// Heights that are not a multiple of 8 round up to a whole page.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	pages := (h + 7) / 8
	return &VerticalLSB{
		Pix:    make([]byte, w*pages),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// Pages returns the number of 8-row pages backing the image.
func (p *VerticalLSB) Pages() int {
	return (p.Rect.Dy() + 7) / 8
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.PixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.PixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// PixOffset returns the byte offset and bit mask for the pixel at (x, y).
// The coordinates must be inside Rect.
func (p *VerticalLSB) PixOffset(x, y int) (offset int, mask byte) {
	dy := y - p.Rect.Min.Y
	offset = (dy/8)*p.Stride + (x - p.Rect.Min.X)
	mask = 1 << uint(dy&7)
	return
}

// Clear turns every pixel off.
func (p *VerticalLSB) Clear() {
	clear(p.Pix)
}

// Region returns a copy of the bytes covering columns [x, x+w) of pages
// [page, page+pages), page by page. The range is clipped to the image.
func (p *VerticalLSB) Region(x, page, w, pages int) []byte {
	if x < 0 {
		w += x
		x = 0
	}
	if page < 0 {
		pages += page
		page = 0
	}
	if x+w > p.Stride {
		w = p.Stride - x
	}
	if n := p.Pages(); page+pages > n {
		pages = n - page
	}
	if w <= 0 || pages <= 0 {
		return nil
	}
	out := make([]byte, 0, w*pages)
	for i := page; i < page+pages; i++ {
		start := i*p.Stride + x
		out = append(out, p.Pix[start:start+w]...)
	}
	return out
}
