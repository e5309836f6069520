// Package propfont draws text from compact column-packed glyph tables.
//
// A font table starts with a four byte header:
//
//	xSize   int8  glyph width; negative means every glyph stores its own
//	              width in front of its data and |xSize| is the widest glyph
//	ySize   uint8 glyph height
//	firstCh uint8 first code in the table
//	lastCh  uint8 last code in the table
//
// followed by one record per code from firstCh to lastCh. A record is an
// optional width byte (variable width fonts only) and |xSize| columns of
// (ySize+7)/8 bytes each, LSB at the top.
//
// Text is fed byte by byte through a charset.Decoder, so tables covering
// codes 128 to 145 render Polish letters from both UTF-8 and Windows-1250
// input.
package propfont

import (
	"errors"
	"fmt"
)

// HeaderSize is the size of the font table header.
const HeaderSize = 4

var (
	// ErrShortHeader is returned by Parse for tables shorter than the header.
	ErrShortHeader = errors.New("propfont: font table shorter than header")
	// ErrShortTable is returned by Parse when glyph records are missing.
	ErrShortTable = errors.New("propfont: font table truncated")
)

// Font is a parsed font table. It does not copy the table.
type Font struct {
	data     []byte
	width    int
	height   int
	variable bool
	first    byte
	last     byte
}

// Parse validates the header of data and the size of its glyph records.
func Parse(data []byte) (*Font, error) {
	if len(data) < HeaderSize {
		return nil, ErrShortHeader
	}
	f := &Font{
		data:   data,
		width:  int(int8(data[0])),
		height: int(data[1]),
		first:  data[2],
		last:   data[3],
	}
	if f.width < 0 {
		f.width = -f.width
		f.variable = true
	}
	if f.width == 0 || f.height == 0 {
		return nil, fmt.Errorf("propfont: invalid glyph size %dx%d", f.width, f.height)
	}
	if f.last < f.first {
		return nil, fmt.Errorf("propfont: invalid code range %d..%d", f.first, f.last)
	}
	if want := HeaderSize + f.glyphs()*f.stride(); len(data) < want {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrShortTable, len(data), want)
	}
	return f, nil
}

// MustParse is like Parse but panics on error. It is meant for tables
// compiled into the program.
func MustParse(data []byte) *Font {
	f, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return f
}

// Width returns the declared glyph width: the fixed width or, for variable
// width fonts, the widest glyph.
func (f *Font) Width() int {
	return f.width
}

// Height returns the glyph height.
func (f *Font) Height() int {
	return f.height
}

// Variable reports whether glyphs carry their own width.
func (f *Font) Variable() bool {
	return f.variable
}

// Range returns the first and last code of the table.
func (f *Font) Range() (first, last byte) {
	return f.first, f.last
}

// Pages returns the number of bytes per glyph column.
func (f *Font) Pages() int {
	return (f.height + 7) / 8
}

func (f *Font) glyphs() int {
	return int(f.last) - int(f.first) + 1
}

func (f *Font) stride() int {
	n := f.width * f.Pages()
	if f.variable {
		n++
	}
	return n
}

// Glyph returns the width and the column data of code c. ok is false for
// codes outside the table.
func (f *Font) Glyph(c byte) (width int, cols []byte, ok bool) {
	if c < f.first || c > f.last {
		return 0, nil, false
	}
	off := HeaderSize + int(c-f.first)*f.stride()
	width = f.width
	if f.variable {
		width = min(int(f.data[off]), f.width)
		off++
	}
	return width, f.data[off : off+width*f.Pages()], true
}
