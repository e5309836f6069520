package sim

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavioheleno/st7567"
	"github.com/flavioheleno/st7567/gfx"
	"github.com/flavioheleno/st7567/image1bit"
	"github.com/flavioheleno/st7567/propfont"
)

func newDev(t *testing.T, opts *st7567.Opts) (*st7567.Dev, *Controller) {
	t.Helper()
	c := New()
	c.Strict(true)
	d, err := st7567.New(c, opts)
	require.NoError(t, err)
	return d, c
}

func TestInitState(t *testing.T) {
	_, c := newDev(t, nil)
	st := c.State()
	assert.True(t, st.On)
	assert.False(t, st.AllOn)
	assert.False(t, st.Inverted)
	assert.False(t, st.SegRemap)
	assert.True(t, st.ComRemap)
	assert.True(t, st.Bias7)
	assert.Equal(t, byte(7), st.Power)
	assert.Equal(t, byte(6), st.Ratio)
	assert.Equal(t, byte(7), st.Contrast)
	assert.Equal(t, 0, st.StartLine)
	assert.False(t, st.Selected, "chip left selected")

	_, c = newDev(t, &st7567.Opts{Rotated: true, Contrast: 33})
	st = c.State()
	assert.True(t, st.SegRemap)
	assert.False(t, st.ComRemap)
	assert.Equal(t, byte(33), st.Contrast)
}

func TestDisplayRoundTrip(t *testing.T) {
	d, c := newDev(t, nil)
	cv := d.Canvas()
	cv.FillRect(10, 10, 20, 5, gfx.Set)
	cv.Circle(64, 32, 20, gfx.Set)
	cv.SetDither(5)
	cv.FillTriangleD(0, 63, 60, 40, 127, 63, gfx.XOR)
	require.NoError(t, d.Display())

	assert.Equal(t, d.Framebuffer().Pix, c.Image().Pix)
	for p := 0; p < st7567.Pages; p++ {
		ram := c.RAM(p)
		assert.Equal(t, d.Framebuffer().Pix[p*128:(p+1)*128], ram[:128], "page %d", p)
	}
}

func TestRotatedDisplay(t *testing.T) {
	d, c := newDev(t, &st7567.Opts{Rotated: true})
	d.Canvas().Pixel(0, 0, gfx.Set)
	d.Canvas().Pixel(100, 20, gfx.Set)
	require.NoError(t, d.Display())

	// written at column 4 onwards, shown upside down
	assert.Equal(t, byte(0x01), c.RAM(0)[4])
	img := c.Image()
	assert.Equal(t, image1bit.On, img.BitAt(127, 63))
	assert.Equal(t, image1bit.On, img.BitAt(27, 43))
	assert.Equal(t, image1bit.Off, img.BitAt(0, 0))
}

func TestCopyAndDraw(t *testing.T) {
	d, c := newDev(t, nil)
	require.NoError(t, d.Display())

	d.Canvas().FillRect(0, 0, 128, 64, gfx.Set)
	require.NoError(t, d.Copy(8, 2, 16, 2))
	img := c.Image()
	assert.Equal(t, image1bit.On, img.BitAt(8, 16))
	assert.Equal(t, image1bit.On, img.BitAt(23, 31))
	assert.Equal(t, image1bit.Off, img.BitAt(7, 16))
	assert.Equal(t, image1bit.Off, img.BitAt(8, 32))

	d.Canvas().Clear()
	require.NoError(t, d.Display())
	_, before := c.Counters()
	require.NoError(t, d.Draw(image.Rect(50, 50, 52, 51), image.NewUniform(color.White), image.Point{}))
	_, after := c.Counters()
	assert.Equal(t, 2, after-before, "only the changed columns are sent")
	assert.Equal(t, d.Framebuffer().Pix, c.Image().Pix)
}

func TestRuntimeCommands(t *testing.T) {
	d, c := newDev(t, nil)
	d.Canvas().Pixel(3, 0, gfx.Set)
	require.NoError(t, d.Display())

	require.NoError(t, d.SetScroll(8))
	assert.Equal(t, 8, c.State().StartLine)
	// line 0 is now shown on the last page
	assert.Equal(t, image1bit.On, c.Image().BitAt(3, 56))
	require.NoError(t, d.SetScroll(0))

	require.NoError(t, d.Invert(true))
	assert.Equal(t, image1bit.Off, c.Image().BitAt(3, 0))
	assert.Equal(t, image1bit.On, c.Image().BitAt(4, 0))
	require.NoError(t, d.Invert(false))

	require.NoError(t, d.Mode(st7567.CmdAllOn))
	assert.Equal(t, image1bit.On, c.Image().BitAt(50, 50))
	require.NoError(t, d.Mode(st7567.CmdAllNormal))

	require.NoError(t, d.Show(false))
	assert.Equal(t, image1bit.Off, c.Image().BitAt(3, 0))
	require.NoError(t, d.Show(true))
	assert.Equal(t, image1bit.On, c.Image().BitAt(3, 0))

	require.NoError(t, d.SetContrast(50))
	assert.Equal(t, byte(50), c.State().Contrast)
}

func TestSleepWake(t *testing.T) {
	d, c := newDev(t, nil)
	d.Canvas().FillRect(0, 0, 10, 10, gfx.Set)
	require.NoError(t, d.Display())

	require.NoError(t, d.Sleep())
	st := c.State()
	assert.False(t, st.On)
	assert.True(t, st.AllOn)
	assert.Equal(t, make([]byte, st7567.Width), c.RAM(0)[:st7567.Width], "RAM blanked")

	require.NoError(t, d.Wake())
	st = c.State()
	assert.True(t, st.On)
	assert.False(t, st.AllOn)
}

func TestText(t *testing.T) {
	d, c := newDev(t, nil)
	f := propfont.MustParse([]byte{
		0xfd, 8, 'A', 'A', // variable width, 3 wide
		2, 0xff, 0x81, 0x00,
	})
	d.Text().SetFont(f)
	x := d.Text().PrintString(gfx.AlignRight, 8, "AA")
	assert.Equal(t, 128, x)
	require.NoError(t, d.Display())

	img := c.Image()
	assert.Equal(t, image1bit.On, img.BitAt(122, 8))
	assert.Equal(t, image1bit.On, img.BitAt(125, 15))
	assert.Equal(t, image1bit.Off, img.BitAt(127, 8))
}

func TestControllerDecoding(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Command(st7567.CmdDisplayOn), ErrNotSelected)
	assert.ErrorIs(t, c.Data([]byte{1}), ErrNotSelected)

	require.NoError(t, c.Begin())
	require.NoError(t, c.Command(0xB3, 0x17, 0x0F))
	st := c.State()
	assert.Equal(t, 3, st.Page)
	assert.Equal(t, 0x7F, st.Column)

	require.NoError(t, c.Command(st7567.CmdReadModWrite))
	require.NoError(t, c.Data([]byte{0xAA, 0xBB}))
	assert.Equal(t, 0x81, c.State().Column)
	require.NoError(t, c.Command(0xEE))
	assert.Equal(t, 0x7F, c.State().Column, "end of read-modify-write restores the column")
	assert.Equal(t, []byte{0xAA, 0xBB}, c.RAM(3)[0x7F:0x81])

	// writes stop at the last RAM column
	require.NoError(t, c.Command(0x18, 0x03))
	require.NoError(t, c.Data([]byte{1, 2, 3, 4}))
	assert.Equal(t, RAMColumns, c.State().Column)
	assert.Equal(t, byte(1), c.RAM(3)[0x83])

	assert.NoError(t, c.Command(0x30), "unknown commands are ignored by default")
	c.Strict(true)
	assert.ErrorIs(t, c.Command(0x30), ErrUnknownCommand)

	require.NoError(t, c.Command(0xE2))
	assert.Equal(t, 0, c.State().Column)
	assert.True(t, c.State().Selected)
	require.NoError(t, c.End())

	cmds, data := c.Counters()
	assert.Equal(t, 10, cmds)
	assert.Equal(t, 6, data)
	assert.Nil(t, c.RAM(RAMPages))
}

func TestRender(t *testing.T) {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 4, 2))
	img.SetBit(1, 0, image1bit.On)

	out := Render(img, 3, Ink, Backlight)
	assert.Equal(t, image.Rect(0, 0, 12, 6), out.Bounds())
	assert.Equal(t, Ink, out.RGBAAt(3, 0))
	assert.Equal(t, Ink, out.RGBAAt(5, 2))
	assert.Equal(t, Backlight, out.RGBAAt(6, 0))
	assert.Equal(t, Backlight, out.RGBAAt(0, 3))
}

func TestShowOn(t *testing.T) {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
	img.SetBit(0, 0, image1bit.On)

	screen := image.NewRGBA(image.Rect(0, 0, 300, 200))
	require.NoError(t, showOn(screen, img))
	// scale 2, centered: offset (22, 36)
	assert.Equal(t, Ink, screen.RGBAAt(22, 36))
	assert.Equal(t, Ink, screen.RGBAAt(23, 37))
	assert.Equal(t, Backlight, screen.RGBAAt(24, 36))
	assert.Equal(t, color.RGBA{}, screen.RGBAAt(21, 36))

	assert.Error(t, showOn(image.NewRGBA(image.Rect(0, 0, 100, 100)), img))
}
