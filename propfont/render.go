package propfont

import (
	"github.com/flavioheleno/st7567/charset"
	"github.com/flavioheleno/st7567/gfx"
)

// IsDigit reports whether b is an ASCII digit or a space. It is the default
// digit classifier of a Renderer.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9' || b == ' '
}

// IsDigitExt is IsDigit extended with the sign and decimal point characters,
// for right aligned numbers that change sign.
func IsDigitExt(b byte) bool {
	return IsDigit(b) || b == '-' || b == '+' || b == '.'
}

// Renderer draws text with the selected font onto a gfx.Canvas.
//
// Besides the font it keeps the cursor settings: the gap after each glyph,
// carriage return wrapping, inversion and minimum glyph widths. A Renderer
// is not safe for concurrent use.
type Renderer struct {
	c    *gfx.Canvas
	font *Font
	dec  charset.Decoder

	spacing       int
	wrap          bool
	invert        bool
	minCharWidth  int
	minDigitWidth int
	isDigit       func(byte) bool
}

// NewRenderer returns a Renderer drawing on c. No font is selected.
func NewRenderer(c *gfx.Canvas) *Renderer {
	r := &Renderer{c: c}
	r.reset()
	return r
}

func (r *Renderer) reset() {
	r.spacing = 1
	r.wrap = false
	r.invert = false
	r.minCharWidth = 0
	r.minDigitWidth = 0
	r.isDigit = IsDigit
}

// SetFont selects f and resets spacing to 1, wrapping and inversion off,
// minimum widths to 0 and the digit classifier to IsDigit.
func (r *Renderer) SetFont(f *Font) {
	r.font = f
	r.reset()
}

// Font returns the selected font.
func (r *Renderer) Font() *Font {
	return r.font
}

// FontHeight returns the glyph height of the selected font, or 0.
func (r *Renderer) FontHeight() int {
	if r.font == nil {
		return 0
	}
	return r.font.height
}

// SetSpacing sets the number of blank columns after each glyph.
func (r *Renderer) SetSpacing(n int) {
	r.spacing = max(n, 0)
}

// SetWrap enables carriage return: PrintString continues on the next text
// line once the cursor reaches the right edge.
func (r *Renderer) SetWrap(on bool) {
	r.wrap = on
}

// SetInvert makes PrintString invert the lines it drew.
func (r *Renderer) SetInvert(on bool) {
	r.invert = on
}

// SetMinCharWidth centers narrower glyphs within n columns.
func (r *Renderer) SetMinCharWidth(n int) {
	r.minCharWidth = max(n, 0)
}

// SetMinDigitWidth centers narrower digits within n columns, so numbers keep
// their width while they change. Digits are classified by the function set
// with SetDigitFunc.
func (r *Renderer) SetMinDigitWidth(n int) {
	r.minDigitWidth = max(n, 0)
}

// SetDigitFunc replaces the digit classifier. nil restores IsDigit.
func (r *Renderer) SetDigitFunc(fn func(byte) bool) {
	if fn == nil {
		fn = IsDigit
	}
	r.isDigit = fn
}

// Decoder returns the national character decoder text is fed through.
func (r *Renderer) Decoder() *charset.Decoder {
	return &r.dec
}

// metrics returns the glyph of an already decoded code with its padding.
// The right pad includes the spacing.
func (r *Renderer) metrics(c byte) (wd, padL, padR int, cols []byte) {
	f := r.font
	wd, cols, ok := f.Glyph(c)
	if !ok {
		if c == ' ' {
			return 1 + f.width/2, 0, 0, nil
		}
		return 0, 0, 0, nil
	}
	padR = r.spacing
	minWidth := r.minCharWidth
	if r.minDigitWidth > 0 && r.isDigit(c) {
		minWidth = r.minDigitWidth
	}
	if extra := minWidth - wd; extra > 0 {
		padL = extra / 2
		padR += extra - padL
	}
	return wd, padL, padR, cols
}

// CharWidth feeds ch to the decoder and returns the advance of the
// resulting glyph. When last is false the trailing spacing is left out.
// Codes outside the font measure 0, except space which measures half the
// font width plus one.
func (r *Renderer) CharWidth(ch byte, last bool) int {
	if r.font == nil {
		return 0
	}
	c := r.dec.Feed(ch)
	if c == charset.None {
		return 0
	}
	wd, padL, padR, cols := r.metrics(c)
	if cols != nil && !last {
		padR -= r.spacing
	}
	return wd + padL + padR
}

// StrWidth returns the advance of s, the sum of CharWidth(b, true) over its
// bytes. The decoder state is left as it was.
func (r *Renderer) StrWidth(s string) int {
	saved := r.dec.State()
	defer r.dec.SetState(saved)

	w := 0
	for i := 0; i < len(s); i++ {
		w += r.CharWidth(s[i], true)
	}
	return w
}

// PrintChar feeds ch to the decoder and ORs the resulting glyph into the
// canvas with its top-left corner at (x, y), returning the advance.
//
// A glyph reaching past the right edge is cut: first its right pad, then
// its columns, then its left pad, so the advance never passes the edge.
func (r *Renderer) PrintChar(x, y int, ch byte) int {
	if r.font == nil {
		return 0
	}
	c := r.dec.Feed(ch)
	if c == charset.None || x >= r.c.Width() || y >= r.c.Height() {
		return 0
	}
	wd, padL, padR, cols := r.metrics(c)
	if cols == nil {
		return wd
	}

	w := r.c.Width()
	if x+wd+padL+padR > w {
		padR = max(w-x-padL-wd, 0)
	}
	if x+wd+padL+padR > w {
		wd = max(w-x-padL, 0)
	}
	if x+wd+padL+padR > w {
		padL = max(w-x, 0)
	}

	pages := r.font.Pages()
	for col := 0; col < wd; col++ {
		for p := 0; p < pages; p++ {
			d := cols[col*pages+p]
			rows := min(r.font.height-p*8, 8)
			for b := 0; b < rows && d != 0; b++ {
				if d&1 != 0 {
					r.c.Pixel(x+padL+col, y+p*8+b, gfx.Set)
				}
				d >>= 1
			}
		}
	}
	return wd + padL + padR
}

// PrintString draws s starting at (x, y) and returns the final cursor x.
//
// x may be gfx.AlignRight or gfx.AlignCenter, resolved against StrWidth(s).
// With wrapping on, reaching the right edge moves the cursor to the start of
// the next text line, and back to the top once past the bottom. With
// inversion on, the box covering each drawn line is inverted afterwards.
func (r *Renderer) PrintString(x, y int, s string) int {
	if r.font == nil {
		return x
	}
	if x < 0 {
		x = r.c.Align(x, r.StrWidth(s))
	}
	h := r.font.height

	lineX := x
	for i := 0; i < len(s); i++ {
		x += r.PrintChar(x, y, s[i])
		if r.wrap && x >= r.c.Width() {
			r.invertLine(lineX, y, x)
			x, lineX = 0, 0
			y += h
			if y >= r.c.Height() {
				y = 0
			}
		}
	}
	r.invertLine(lineX, y, x)
	return x
}

func (r *Renderer) invertLine(x0, y, x1 int) {
	if r.invert && x1 > x0 {
		r.c.FillRect(x0, y, x1-x0, r.font.height, gfx.XOR)
	}
}
