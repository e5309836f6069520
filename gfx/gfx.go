// Package gfx rasterizes primitives into a 1-bit page-packed framebuffer.
//
// All coordinates are local to the framebuffer: (0, 0) is the top-left
// pixel. Every operation clips against the framebuffer bounds and silently
// ignores whatever falls outside; nothing in this package returns an error.
//
// The fast line and fill routines work on whole bytes of the page layout
// described in package image1bit: a vertical run touches one byte per 8-row
// page instead of one bit per pixel.
//
// A Canvas is not safe for concurrent use.
package gfx

import (
	"fmt"

	"github.com/flavioheleno/st7567/image1bit"
)

// Color selects how a drawing operation modifies the addressed bits.
type Color uint8

const (
	Clear Color = 0 // turn bits off
	Set   Color = 1 // turn bits on
	XOR   Color = 2 // toggle bits
)

func (c Color) String() string {
	switch c {
	case Clear:
		return "Clear"
	case Set:
		return "Set"
	case XOR:
		return "XOR"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Horizontal placement sentinels accepted by Bitmap and the text renderer in
// place of an x coordinate.
const (
	AlignLeft   = 0
	AlignRight  = -1
	AlignCenter = -2
)

// fromRow[r] has every bit at or below row r of a page set.
var fromRow = [8]byte{0xff, 0xfe, 0xfc, 0xf8, 0xf0, 0xe0, 0xc0, 0x80}

// toRow[r] has every bit at or above row r of a page set.
var toRow = [8]byte{0x01, 0x03, 0x07, 0x0f, 0x1f, 0x3f, 0x7f, 0xff}

// Canvas draws into a VerticalLSB image.
type Canvas struct {
	img     *image1bit.VerticalLSB
	w, h    int
	pattern [4]byte
}

// New returns a Canvas drawing into img. The dither pattern starts as a
// 50% checkerboard.
func New(img *image1bit.VerticalLSB) *Canvas {
	return &Canvas{
		img:     img,
		w:       img.Stride,
		h:       img.Rect.Dy(),
		pattern: [4]byte{0xaa, 0x55, 0xaa, 0x55},
	}
}

// Image returns the framebuffer the canvas draws into.
func (c *Canvas) Image() *image1bit.VerticalLSB {
	return c.img
}

// Width returns the framebuffer width in pixels.
func (c *Canvas) Width() int {
	return c.w
}

// Height returns the framebuffer height in pixels.
func (c *Canvas) Height() int {
	return c.h
}

// Clear zeroes the whole framebuffer.
func (c *Canvas) Clear() {
	c.img.Clear()
}

// apply modifies the bits of mask in the byte at offset.
func (c *Canvas) apply(offset int, mask byte, col Color) {
	switch col {
	case Set:
		c.img.Pix[offset] |= mask
	case Clear:
		c.img.Pix[offset] &^= mask
	case XOR:
		c.img.Pix[offset] ^= mask
	}
}

// Pixel sets, clears or toggles the pixel at (x, y).
func (c *Canvas) Pixel(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.apply((y/8)*c.w+x, 1<<uint(y&7), col)
}

// PixelAt reports whether the pixel at (x, y) is on.
func (c *Canvas) PixelAt(x, y int) bool {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return false
	}
	return c.img.Pix[(y/8)*c.w+x]&(1<<uint(y&7)) != 0
}

// orPixel turns on the pixel at (x, y) if it is inside the framebuffer.
func (c *Canvas) orPixel(x, y int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.img.Pix[(y/8)*c.w+x] |= 1 << uint(y&7)
}

// Align resolves the AlignRight and AlignCenter sentinels for an object w
// pixels wide. Any other negative x is treated as AlignCenter. The result is
// never negative.
func (c *Canvas) Align(x, w int) int {
	if x == AlignRight {
		x = c.w - w
	} else if x < 0 {
		x = (c.w - w) / 2
	}
	if x < 0 {
		x = 0
	}
	return x
}
