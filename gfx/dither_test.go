package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDitherPattern(t *testing.T) {
	assert.Equal(t, [4]byte{}, DitherPattern(0))
	assert.Equal(t, [4]byte{0xff, 0xff, 0xff, 0xff}, DitherPattern(16))
	assert.Equal(t, [4]byte{0x55, 0xaa, 0x55, 0xaa}, DitherPattern(8))

	for k := 1; k <= MaxDither; k++ {
		pos, neg := DitherPattern(k), DitherPattern(-k)
		for i := range pos {
			assert.Equal(t, ^pos[i], neg[i], "level -%d byte %d", k, i)
		}
	}

	assert.Equal(t, DitherPattern(16), DitherPattern(99), "clamped high")
	assert.Equal(t, DitherPattern(-16), DitherPattern(-99), "clamped low")
}

func TestDitherDensityIsMonotonic(t *testing.T) {
	prev := -1
	for level := 0; level <= MaxDither; level++ {
		c := newCanvas()
		c.SetDither(level)
		c.FillRectD(0, 0, 128, 64, Set)
		n := countBits(c)
		assert.Greater(t, n, prev, "level %d", level)
		prev = n
	}
}

func TestDitheredFills(t *testing.T) {
	t.Run("level 0 draws nothing", func(t *testing.T) {
		c := newCanvas()
		c.SetDither(0)
		c.FillRectD(0, 0, 128, 64, Set)
		c.FillCircleD(64, 32, 20, Set)
		c.FillTriangleD(0, 0, 100, 10, 50, 60, Set)
		c.RectD(5, 5, 50, 30, Set)
		assert.Zero(t, countBits(c))
	})

	t.Run("level 16 matches solid", func(t *testing.T) {
		solid, dith := newCanvas(), newCanvas()
		dith.SetDither(16)

		solid.FillRect(3, 5, 40, 30, Set)
		dith.FillRectD(3, 5, 40, 30, Set)
		solid.FillCircle(90, 30, 15, Set)
		dith.FillCircleD(90, 30, 15, Set)
		solid.FillTriangle(0, 63, 60, 40, 127, 63, Set)
		dith.FillTriangleD(0, 63, 60, 40, 127, 63, Set)
		solid.Rect(50, 2, 20, 20, XOR)
		dith.RectD(50, 2, 20, 20, XOR)

		assert.Equal(t, solid.Image().Pix, dith.Image().Pix)
	})

	t.Run("pattern follows column", func(t *testing.T) {
		c := newCanvas()
		c.SetDither(5)
		c.FillRectD(0, 0, 8, 8, Set)
		p := DitherPattern(5)
		for x := 0; x < 8; x++ {
			assert.Equal(t, p[x&3], c.Image().Pix[x], "column %d", x)
		}
	})

	t.Run("dithered clear only clears pattern bits", func(t *testing.T) {
		c := newCanvas()
		c.FillRect(0, 0, 4, 8, Set)
		c.SetDither(8)
		c.FillRectD(0, 0, 4, 8, Clear)
		assert.Equal(t, []byte{0xaa, 0x55, 0xaa, 0x55}, c.Image().Pix[:4])
	})

	t.Run("horizontal line", func(t *testing.T) {
		c := newCanvas()
		c.SetDither(8)
		c.HLineFastD(0, 7, 0, Set)
		// row 0 is bit 0: set where the pattern byte has bit 0
		for x := 0; x < 8; x++ {
			assert.Equal(t, x%2 == 0, c.PixelAt(x, 0), "column %d", x)
		}
	})
}

func TestDefaultPattern(t *testing.T) {
	c := newCanvas()
	assert.Equal(t, [4]byte{0xaa, 0x55, 0xaa, 0x55}, c.Pattern())
	c.SetDither(-16)
	assert.Equal(t, [4]byte{}, c.Pattern())
}
