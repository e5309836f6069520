// Package st7567 controls a ST7567 128x64 monochrome LCD via SPI.
//
// The ST7567 is a page-addressed controller: its RAM is 8 pages of 8 rows,
// one byte per column, least significant bit at the top.
//
// See the examples for how to use this package.
package st7567

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"

	"github.com/flavioheleno/st7567/gfx"
	"github.com/flavioheleno/st7567/image1bit"
	"github.com/flavioheleno/st7567/propfont"
)

// Display geometry.
const (
	Width  = 128
	Height = 64
	Pages  = Height / 8

	// rotatedColumn is the first visible column of the 132-column RAM when
	// the segments are remapped.
	rotatedColumn = 4
)

// Controller commands.
const (
	CmdBias7        = 0xA3 // LCD bias 1/7
	CmdSegNormal    = 0xA0 // SEG remap normal
	CmdSegRemap     = 0xA1 // SEG remap reverse (flip horizontal)
	CmdComNormal    = 0xC0 // COM remap normal
	CmdComRemap     = 0xC8 // COM remap reverse (flip vertical)
	CmdPowerCtl     = 0x28 // power control, OR with VC|VR|VF
	CmdRegRatio     = 0x20 // regulator resistor ratio, OR with 0..7
	CmdStartLine    = 0x40 // display start line, OR with 0..63
	CmdDisplayOn    = 0xAF
	CmdDisplayOff   = 0xAE
	CmdAllNormal    = 0xA4 // show RAM content
	CmdAllOn        = 0xA5 // all pixels on
	CmdInvertOff    = 0xA6
	CmdInvertOn     = 0xA7
	CmdContrast     = 0x81 // electronic volume, followed by 0..63
	CmdPageAddr     = 0xB0 // OR with page 0..7
	CmdColumnHigh   = 0x10 // OR with column bits 7-4
	CmdColumnLow    = 0x00 // OR with column bits 3-0
	CmdReadModWrite = 0xE0
	CmdNop          = 0xE3
)

var (
	// ErrHalted is returned by operations on a halted device.
	ErrHalted = errors.New("st7567: halted")
	// ErrNoDCPin is returned by NewSPI without a Data/Command pin.
	ErrNoDCPin = errors.New("st7567: DC pin is required")
	// ErrNoTransport is returned by New without a transport.
	ErrNoTransport = errors.New("st7567: transport is required")
	// ErrInvalidBuffer is returned by Write for buffers of the wrong size.
	ErrInvalidBuffer = errors.New("st7567: invalid buffer size")
)

// Opts is the configuration for the ST7567 display.
type Opts struct {
	// 180° rotation
	Rotated bool

	// Initial contrast (0-63)
	Contrast byte

	// Optional hardware pins
	RST gpio.PinOut // Reset pin (nil if not used)
	CS  gpio.PinOut // Chip select (nil if the SPI port drives it)
}

// DefaultOpts is used when nil options are passed.
var DefaultOpts = Opts{Contrast: 7}

// Dev is the device handle for the ST7567 display.
//
// Dev owns the framebuffer. Drawing happens on the Canvas and Text views of
// it; Display sends it to the controller. A Dev is not safe for concurrent
// use.
type Dev struct {
	t Transport

	// Framebuffer and its drawing views
	buf    *image1bit.VerticalLSB
	canvas *gfx.Canvas
	text   *propfont.Renderer

	// Frame last sent to the controller, for differential updates.
	// nil until the first full frame.
	last []byte

	// State
	rotated  bool
	contrast byte
	halted   bool
}

var _ display.Drawer = &Dev{}

// New initializes the controller behind t and returns its Dev.
//
// opts can be nil to use DefaultOpts.
func New(t Transport, opts *Opts) (*Dev, error) {
	if t == nil {
		return nil, ErrNoTransport
	}
	if opts == nil {
		opts = &DefaultOpts
	}

	buf := image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height))
	canvas := gfx.New(buf)
	d := &Dev{
		t:        t,
		buf:      buf,
		canvas:   canvas,
		text:     propfont.NewRenderer(canvas),
		rotated:  opts.Rotated,
		contrast: opts.Contrast & 0x3F,
	}

	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// initCommands returns the power-up sequence for the current rotation.
func (d *Dev) initCommands() []byte {
	seg, com := d.remap()
	return []byte{
		CmdBias7,
		seg, com,
		CmdPowerCtl | 0x4, // VC on
		CmdPowerCtl | 0x6, // VC, VR on
		CmdPowerCtl | 0x7, // VC, VR, VF on
		CmdRegRatio | 0x6,
		CmdStartLine | 0,
		CmdDisplayOn,
		CmdAllNormal,
	}
}

func (d *Dev) remap() (seg, com byte) {
	if d.rotated {
		return CmdSegRemap, CmdComNormal
	}
	return CmdSegNormal, CmdComRemap
}

// init sends the initialization sequence and the stored contrast.
func (d *Dev) init() error {
	if err := d.command(d.initCommands()...); err != nil {
		return fmt.Errorf("st7567: init failed: %w", err)
	}
	if err := d.command(CmdContrast, d.contrast); err != nil {
		return fmt.Errorf("st7567: init failed: %w", err)
	}
	Logger().Info("st7567: initialized", "rotated", d.rotated, "contrast", d.contrast)
	return nil
}

// transfer runs fn between Begin and End. End is called even when fn fails.
func (d *Dev) transfer(fn func() error) error {
	if err := d.t.Begin(); err != nil {
		return err
	}
	err := fn()
	if endErr := d.t.End(); err == nil {
		err = endErr
	}
	return err
}

// command sends cmds in a single transfer.
func (d *Dev) command(cmds ...byte) error {
	return d.transfer(func() error {
		return d.t.Command(cmds...)
	})
}

// writePage addresses column x of page and streams data from there.
func (d *Dev) writePage(page, x int, data []byte) error {
	col := x
	if d.rotated {
		col += rotatedColumn
	}
	err := d.t.Command(
		CmdPageAddr|byte(page),
		CmdColumnHigh|byte(col>>4),
		CmdColumnLow|byte(col&0x0F),
		CmdReadModWrite,
	)
	if err != nil {
		return err
	}
	return d.t.Data(data)
}

// Canvas returns the drawing surface over the framebuffer.
func (d *Dev) Canvas() *gfx.Canvas {
	return d.canvas
}

// Text returns the text renderer drawing on the framebuffer.
func (d *Dev) Text() *propfont.Renderer {
	return d.text
}

// Framebuffer returns the framebuffer image.
func (d *Dev) Framebuffer() *image1bit.VerticalLSB {
	return d.buf
}

// Display sends the whole framebuffer to the controller, page by page.
func (d *Dev) Display() error {
	if d.halted {
		return ErrHalted
	}
	err := d.transfer(func() error {
		for p := 0; p < Pages; p++ {
			if err := d.writePage(p, 0, d.buf.Pix[p*Width:(p+1)*Width]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		d.last = nil
		return err
	}
	if d.last == nil {
		d.last = make([]byte, len(d.buf.Pix))
	}
	copy(d.last, d.buf.Pix)
	Logger().Debug("st7567: frame sent", "pages", Pages)
	return nil
}

// Copy sends columns [x, x+w) of pages [page, page+pages) of the framebuffer
// to the same place on the controller. The area is clipped to the display.
func (d *Dev) Copy(x, page, w, pages int) error {
	if d.halted {
		return ErrHalted
	}
	if x < 0 {
		w += x
		x = 0
	}
	if page < 0 {
		pages += page
		page = 0
	}
	data := d.buf.Region(x, page, w, pages)
	if data == nil {
		return nil
	}
	w = min(w, Width-x)
	pages = len(data) / w

	err := d.transfer(func() error {
		for i := 0; i < pages; i++ {
			if err := d.writePage(page+i, x, data[i*w:(i+1)*w]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		d.last = nil
		return err
	}
	if d.last != nil {
		for i := 0; i < pages; i++ {
			off := (page+i)*Width + x
			copy(d.last[off:off+w], data[i*w:(i+1)*w])
		}
	}
	Logger().Debug("st7567: region sent", "x", x, "page", page, "w", w, "pages", pages)
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// Write replaces the framebuffer with pixels, in VerticalLSB layout, and
// displays it. The data must be exactly Width * Pages bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != len(d.buf.Pix) {
		return 0, ErrInvalidBuffer
	}
	copy(d.buf.Pix, pixels)
	if err := d.Display(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws src into the framebuffer and sends the changed part of every
// page to the controller.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	r := dst
	dst = dst.Intersect(d.Bounds())
	if dst.Empty() {
		return nil
	}
	sp = sp.Add(dst.Min.Sub(r.Min))

	// Fast path: a full frame in the controller layout
	if srcImg, ok := src.(*image1bit.VerticalLSB); ok {
		if dst == d.Bounds() && sp == (image.Point{}) && srcImg.Rect == d.Bounds() {
			copy(d.buf.Pix, srcImg.Pix)
			return d.Display()
		}
	}

	draw.Draw(d.buf, dst, src, sp, draw.Src)

	if d.last == nil {
		return d.Display()
	}
	return d.flushChanges()
}

// flushChanges sends, for every page, the column span that differs from the
// last frame sent.
func (d *Dev) flushChanges() error {
	sent := 0
	err := d.transfer(func() error {
		for p := 0; p < Pages; p++ {
			minX, maxX := d.diffPage(p)
			if minX > maxX {
				continue
			}
			row := p * Width
			if err := d.writePage(p, minX, d.buf.Pix[row+minX:row+maxX+1]); err != nil {
				return err
			}
			copy(d.last[row+minX:row+maxX+1], d.buf.Pix[row+minX:row+maxX+1])
			sent++
		}
		return nil
	})
	if err != nil {
		d.last = nil
		return err
	}
	Logger().Debug("st7567: changes sent", "pages", sent)
	return nil
}

// diffPage returns the first and last columns of page p that differ from
// the last frame sent, or (Width, -1) if none.
func (d *Dev) diffPage(p int) (minX, maxX int) {
	row := p * Width
	minX, maxX = Width, -1
	for x := 0; x < Width; x++ {
		if d.buf.Pix[row+x] != d.last[row+x] {
			minX = min(minX, x)
			maxX = x
		}
	}
	return minX, maxX
}

// SetContrast sets the display contrast (0-63).
func (d *Dev) SetContrast(v byte) error {
	if d.halted {
		return ErrHalted
	}
	d.contrast = v & 0x3F
	return d.command(CmdContrast, d.contrast)
}

// SetScroll sets the RAM line shown at the top of the display (0-63).
func (d *Dev) SetScroll(line byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.command(CmdStartLine | line&0x3F)
}

// Invert inverts the display colors (lit pixels become unlit and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	mode := byte(CmdInvertOff)
	if invert {
		mode = CmdInvertOn
	}
	return d.command(mode)
}

// Show turns the display on or off. The RAM content is kept.
// Show(true) also brings a halted device back.
func (d *Dev) Show(on bool) error {
	if !on {
		if d.halted {
			return ErrHalted
		}
		return d.command(CmdDisplayOff)
	}
	if err := d.command(CmdDisplayOn); err != nil {
		return err
	}
	d.halted = false
	return nil
}

// Mode sends a raw single-byte command such as CmdAllOn or CmdInvertOn.
func (d *Dev) Mode(cmd byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.command(cmd)
}

// SetRotation selects the normal or the 180° rotated orientation. The
// framebuffer must be displayed again to show up in the new orientation.
func (d *Dev) SetRotation(rotated bool) error {
	if d.halted {
		return ErrHalted
	}
	d.rotated = rotated
	d.last = nil
	seg, com := d.remap()
	return d.command(seg, com)
}

// Rotated reports whether the 180° orientation is selected.
func (d *Dev) Rotated() bool {
	return d.rotated
}

// Sleep blanks the framebuffer and the display, then powers the controller
// down into its all-pixels-on state. Wake restores it.
func (d *Dev) Sleep() error {
	if d.halted {
		return ErrHalted
	}
	d.canvas.Clear()
	if err := d.Display(); err != nil {
		return err
	}
	if err := d.command(CmdDisplayOff, CmdAllOn); err != nil {
		return err
	}
	Logger().Info("st7567: sleeping")
	return nil
}

// Wake runs the initialization sequence again, leaving sleep or halt.
func (d *Dev) Wake() error {
	if err := d.init(); err != nil {
		return err
	}
	d.halted = false
	return nil
}

// Halt turns the display off.
// After calling Halt, the display will not respond to further commands
// until Wake or Show(true) is called.
func (d *Dev) Halt() error {
	d.halted = true
	Logger().Info("st7567: halted")
	return d.command(CmdDisplayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7567.Dev{%dx%d}", Width, Height)
}
