// Package asset produces the binary tables the display code consumes: font
// tables for propfont, packed bitmaps for gfx, and QR code bitmaps.
//
// It runs on the host, usually through the st7567asset command, and its
// output is compiled into the firmware as byte slices.
package asset

import (
	"errors"
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/flavioheleno/st7567"
	"github.com/flavioheleno/st7567/charset"
	"github.com/flavioheleno/st7567/propfont"
)

// maxGlyphWidth is the widest glyph the signed width byte of the header can
// describe.
const maxGlyphWidth = 127

var (
	// ErrEmptyRange is returned when the code range holds no glyphs.
	ErrEmptyRange = errors.New("asset: empty code range")
	// ErrTooLarge is returned when the output exceeds what its header can
	// describe.
	ErrTooLarge = errors.New("asset: too large")
)

// FontOptions configures FontFromFace.
type FontOptions struct {
	// Fixed emits a fixed width table: every glyph is as wide as the widest
	// and no width byte is stored.
	Fixed bool

	// Threshold is the coverage from which a pixel is lit. 0 means 0x80.
	Threshold uint8
}

// DefaultFace returns the built-in 7x13 face, used when no font file is
// given.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// OpenTypeFace parses a TrueType or OpenType font and returns a face of the
// given size in pixels.
func OpenTypeFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("asset: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("asset: failed to create face: %w", err)
	}
	return face, nil
}

// TrueTypeFace is like OpenTypeFace but rasterizes with freetype.
func TrueTypeFace(data []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("asset: failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// runeFor returns the character a font table code stands for. Codes from
// charset.First to charset.Last are the national letters.
func runeFor(code byte) (rune, bool) {
	if code >= charset.First {
		return charset.Rune(code)
	}
	return rune(code), true
}

// glyph is a rasterized character: its advance and the lit pixels.
type glyph struct {
	width int
	img   *image.Alpha
}

// FontFromFace rasterizes the codes first..last of face into a font table
// readable by propfont.Parse. Glyph columns are cut to the ink, except for
// blank glyphs which keep their advance.
func FontFromFace(face font.Face, first, last byte, opts *FontOptions) ([]byte, error) {
	if face == nil {
		return nil, errors.New("asset: face is required")
	}
	if last < first {
		return nil, ErrEmptyRange
	}
	if opts == nil {
		opts = &FontOptions{}
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = 0x80
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	if height <= 0 || height > 255 {
		return nil, fmt.Errorf("%w: glyph height %d", ErrTooLarge, height)
	}

	glyphs := make([]glyph, 0, int(last)-int(first)+1)
	maxWidth := 0
	for c := int(first); c <= int(last); c++ {
		g := rasterize(face, byte(c), ascent, height, threshold)
		maxWidth = max(maxWidth, g.width)
		glyphs = append(glyphs, g)
	}
	if maxWidth == 0 {
		return nil, fmt.Errorf("%w: face has no glyphs for %d..%d", ErrEmptyRange, first, last)
	}
	if maxWidth > maxGlyphWidth {
		return nil, fmt.Errorf("%w: glyph width %d", ErrTooLarge, maxWidth)
	}

	pages := (height + 7) / 8
	xSize := int8(maxWidth)
	if !opts.Fixed {
		xSize = -xSize
	}
	out := []byte{byte(xSize), byte(height), first, last}
	for _, g := range glyphs {
		if !opts.Fixed {
			out = append(out, byte(g.width))
		}
		out = append(out, columns(g.img, maxWidth, pages)...)
	}

	if _, err := propfont.Parse(out); err != nil {
		return nil, fmt.Errorf("asset: produced an invalid table: %w", err)
	}
	st7567.Logger().Debug("asset: font table built", "first", first, "last", last,
		"width", maxWidth, "height", height, "bytes", len(out))
	return out, nil
}

// rasterize draws code with its baseline at ascent and thresholds the
// coverage. Codes the face lacks give an empty glyph.
func rasterize(face font.Face, code byte, ascent, height int, threshold uint8) glyph {
	r, ok := runeFor(code)
	if !ok {
		return glyph{}
	}
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return glyph{}
	}
	advance := min(adv.Ceil(), maxGlyphWidth+1)
	if advance <= 0 {
		return glyph{}
	}

	img := image.NewAlpha(image.Rect(0, 0, advance, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(string(r))

	ink := 0
	for y := 0; y < height; y++ {
		for x := 0; x < advance; x++ {
			i := img.PixOffset(x, y)
			if img.Pix[i] >= threshold {
				img.Pix[i] = 0xff
				ink = max(ink, x+1)
			} else {
				img.Pix[i] = 0
			}
		}
	}
	if ink == 0 {
		ink = advance
	}
	return glyph{width: ink, img: img}
}

// columns packs the first w columns of img, column by column and page by
// page within a column, LSB at the top.
func columns(img *image.Alpha, w, pages int) []byte {
	out := make([]byte, w*pages)
	if img == nil {
		return out
	}
	b := img.Bounds()
	for x := 0; x < min(w, b.Dx()); x++ {
		for y := 0; y < b.Dy(); y++ {
			if img.AlphaAt(x, y).A != 0 {
				out[x*pages+y/8] |= 1 << uint(y&7)
			}
		}
	}
	return out
}
