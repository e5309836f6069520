package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/flavioheleno/st7567/charset"
	"github.com/flavioheleno/st7567/gfx"
	"github.com/flavioheleno/st7567/image1bit"
	"github.com/flavioheleno/st7567/propfont"
)

func newCanvas() *gfx.Canvas {
	return gfx.New(image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64)))
}

func litCount(c *gfx.Canvas) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.PixelAt(x, y) {
				n++
			}
		}
	}
	return n
}

func TestFontFromFace(t *testing.T) {
	data, err := FontFromFace(DefaultFace(), '0', '9', nil)
	require.NoError(t, err)

	f, err := propfont.Parse(data)
	require.NoError(t, err)
	assert.True(t, f.Variable())
	assert.Equal(t, 13, f.Height())
	assert.LessOrEqual(t, f.Width(), 7)
	first, last := f.Range()
	assert.Equal(t, byte('0'), first)
	assert.Equal(t, byte('9'), last)

	wd, cols, ok := f.Glyph('1')
	require.True(t, ok)
	assert.Positive(t, wd)
	assert.NotEqual(t, make([]byte, len(cols)), cols, "glyph has ink")

	c := newCanvas()
	r := propfont.NewRenderer(c)
	r.SetFont(f)
	assert.Positive(t, r.PrintString(0, 0, "1907"))
	assert.Positive(t, litCount(c))
	for x := 0; x < c.Width(); x++ {
		for y := f.Height(); y < c.Height(); y++ {
			assert.False(t, c.PixelAt(x, y), "pixel (%d,%d) below the glyphs", x, y)
		}
	}
}

func TestFontFromFaceFixed(t *testing.T) {
	data, err := FontFromFace(DefaultFace(), 'A', 'C', &FontOptions{Fixed: true})
	require.NoError(t, err)

	f, err := propfont.Parse(data)
	require.NoError(t, err)
	assert.False(t, f.Variable())
	assert.Len(t, data, propfont.HeaderSize+3*f.Width()*f.Pages())
	for _, ch := range []byte("ABC") {
		wd, _, ok := f.Glyph(ch)
		assert.True(t, ok)
		assert.Equal(t, f.Width(), wd)
	}
}

func TestFontFromFaceBlankGlyph(t *testing.T) {
	data, err := FontFromFace(DefaultFace(), ' ', ' ', nil)
	require.NoError(t, err)

	f, err := propfont.Parse(data)
	require.NoError(t, err)
	wd, cols, ok := f.Glyph(' ')
	require.True(t, ok)
	assert.Equal(t, 7, wd, "blank glyphs keep their advance")
	assert.Equal(t, make([]byte, len(cols)), cols)
}

func TestFontFromFaceNational(t *testing.T) {
	for name, load := range map[string]func([]byte, float64) (font.Face, error){
		"opentype": OpenTypeFace,
		"freetype": TrueTypeFace,
	} {
		t.Run(name, func(t *testing.T) {
			face, err := load(goregular.TTF, 12)
			require.NoError(t, err)

			data, err := FontFromFace(face, charset.First, charset.Last, nil)
			require.NoError(t, err)
			f, err := propfont.Parse(data)
			require.NoError(t, err)

			for code := byte(charset.First); code <= charset.Last; code++ {
				wd, cols, ok := f.Glyph(code)
				require.True(t, ok)
				assert.Positive(t, wd, "code %d", code)
				assert.NotEqual(t, make([]byte, len(cols)), cols, "code %d has ink", code)
			}

			r := propfont.NewRenderer(newCanvas())
			r.SetFont(f)
			assert.Positive(t, r.StrWidth("ŁŻ"))
		})
	}
}

func TestFontFromFaceErrors(t *testing.T) {
	_, err := FontFromFace(DefaultFace(), 'B', 'A', nil)
	assert.ErrorIs(t, err, ErrEmptyRange)

	_, err = FontFromFace(nil, 'A', 'B', nil)
	assert.Error(t, err)

	_, err = OpenTypeFace([]byte("not a font"), 12)
	assert.Error(t, err)
	_, err = TrueTypeFace([]byte("not a font"), 12)
	assert.Error(t, err)
}

func testImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 10, 12))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	img.SetGray(2, 3, color.Gray{})
	img.SetGray(9, 11, color.Gray{})
	return img
}

func TestBitmap(t *testing.T) {
	out, err := Bitmap(testImage(), nil)
	require.NoError(t, err)

	want := make([]byte, 20)
	want[2] = 1 << 3
	want[10+9] = 1 << 3
	assert.Equal(t, want, out)

	out, err = Bitmap(testImage(), &BitmapOptions{Invert: true})
	require.NoError(t, err)
	assert.Equal(t, byte(0xff&^(1<<3)), out[2])
	assert.Equal(t, byte(0xff), out[0])
	assert.Equal(t, byte(0x0f&^(1<<3)), out[10+9], "only 4 rows in the last band")
}

func TestBitmapOnCanvas(t *testing.T) {
	out, err := Bitmap(testImage(), &BitmapOptions{Header: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 12}, out[:2])

	c := newCanvas()
	assert.Equal(t, 10, c.BitmapWithHeader(out, 0, 0))
	assert.True(t, c.PixelAt(2, 3))
	assert.True(t, c.PixelAt(9, 11))
	assert.Equal(t, 2, litCount(c))
}

func TestBitmapResize(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))

	out, err := Bitmap(img, &BitmapOptions{Width: 8})
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 8), out, "aspect ratio kept")

	_, err = Bitmap(image.NewGray(image.Rect(0, 0, 300, 8)), &BitmapOptions{Header: true})
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestQRCode(t *testing.T) {
	out, err := QRCode("hello", &QROptions{Level: qrcode.Medium})
	require.NoError(t, err)
	require.Equal(t, byte(21), out[0])
	assert.Equal(t, out[0], out[1])

	c := newCanvas()
	c.BitmapWithHeader(out, 0, 0)
	// top-left finder pattern
	assert.True(t, c.PixelAt(0, 0))
	assert.True(t, c.PixelAt(6, 6))
	assert.False(t, c.PixelAt(1, 1))
	assert.True(t, c.PixelAt(3, 3))
	assert.False(t, c.PixelAt(7, 7))
}

func TestQRCodeOptions(t *testing.T) {
	out, err := QRCode("hello", &QROptions{Level: qrcode.Medium, Border: true})
	require.NoError(t, err)
	assert.Equal(t, byte(29), out[0])
	c := newCanvas()
	c.BitmapWithHeader(out, 0, 0)
	assert.False(t, c.PixelAt(0, 0))
	assert.True(t, c.PixelAt(4, 4))

	out, err = QRCode("hello", &QROptions{Level: qrcode.Medium, Scale: 2})
	require.NoError(t, err)
	assert.Equal(t, byte(42), out[0])
	assert.Len(t, out, 2+42*6)

	_, err = QRCode("hello", nil)
	assert.NoError(t, err)
	_, err = QRCode("", nil)
	assert.Error(t, err)
	_, err = QRCode("hello", &QROptions{Scale: 20})
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestWriteGo(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteGo(&b, "fonts", "Digits", "Digits is a test table.", []byte{1, 2, 0xff}))
	src := b.String()
	assert.Contains(t, src, "package fonts\n")
	assert.Contains(t, src, "// Digits is a test table.\nvar Digits = []byte{")
	assert.Contains(t, src, "0x01, 0x02, 0xff,")

	assert.Error(t, WriteGo(&b, "not a package", "x", "", nil))
}
