package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmapSingleColumn(t *testing.T) {
	c := newCanvas()
	next := c.Bitmap([]byte{0xff}, 0, 0, 1, 8)
	assert.Equal(t, 1, next)
	assert.Equal(t, byte(0xff), c.Image().Pix[0])
	assert.Equal(t, 8, countBits(c))
}

func TestBitmapOverlays(t *testing.T) {
	c := newCanvas()
	c.FillRect(0, 0, 2, 8, Set)
	c.Bitmap([]byte{0x00, 0x0f}, 0, 0, 2, 8)
	assert.Equal(t, []byte{0xff, 0xff}, c.Image().Pix[:2], "clear source bits must not erase")
}

func TestBitmapUnalignedRow(t *testing.T) {
	c := newCanvas()
	// 2 columns, 10 rows: two bands
	bmp := []byte{
		0xff, 0x01, // rows 0-7
		0x03, 0x02, // rows 8-9
	}
	c.Bitmap(bmp, 4, 5, 2, 10)

	for y := 5; y < 15; y++ {
		assert.True(t, c.PixelAt(4, y), "column 4 row %d", y)
	}
	assert.True(t, c.PixelAt(5, 5))
	assert.False(t, c.PixelAt(5, 6))
	assert.True(t, c.PixelAt(5, 14))
	assert.False(t, c.PixelAt(5, 13))
	assert.Equal(t, 10+2, countBits(c))
}

func TestBitmapAlignment(t *testing.T) {
	bmp := []byte{0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01}

	tests := []struct {
		name      string
		x         int
		wantStart int
	}{
		{"left", AlignLeft, 0},
		{"right", AlignRight, 120},
		{"center", AlignCenter, 60},
		{"explicit", 17, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCanvas()
			next := c.Bitmap(bmp, tt.x, 0, 8, 1)
			assert.Equal(t, tt.wantStart+8, next)
			assert.True(t, c.PixelAt(tt.wantStart, 0))
			assert.False(t, c.PixelAt(tt.wantStart-1, 0))
			assert.Equal(t, 8, countBits(c))
		})
	}
}

func TestBitmapClipping(t *testing.T) {
	t.Run("right edge", func(t *testing.T) {
		c := newCanvas()
		bmp := make([]byte, 16)
		for i := range bmp {
			bmp[i] = 0xff
		}
		next := c.Bitmap(bmp, 120, 0, 16, 8)
		assert.Equal(t, 128, next)
		assert.Equal(t, 8*8, countBits(c))
	})

	t.Run("bottom edge", func(t *testing.T) {
		c := newCanvas()
		c.Bitmap([]byte{0xff, 0xff}, 0, 60, 1, 16)
		assert.Equal(t, 4, countBits(c))
	})

	t.Run("outside", func(t *testing.T) {
		c := newCanvas()
		assert.Equal(t, 0, c.Bitmap([]byte{0xff}, 128, 0, 1, 8))
		assert.Equal(t, 0, c.Bitmap([]byte{0xff}, 0, 64, 1, 8))
		assert.Equal(t, 0, c.Bitmap([]byte{0xff}, 0, 0, 0, 8))
		assert.Zero(t, countBits(c))
	})

	t.Run("wider than screen", func(t *testing.T) {
		c := newCanvas()
		bmp := make([]byte, 200)
		next := c.Bitmap(bmp, AlignCenter, 0, 200, 8)
		assert.Equal(t, 128, next)
	})

	t.Run("short source", func(t *testing.T) {
		c := newCanvas()
		assert.NotPanics(t, func() { c.Bitmap([]byte{0xff}, 0, 0, 4, 16) })
		assert.Equal(t, 8, countBits(c))
	})
}

func TestBitmapWithHeader(t *testing.T) {
	c := newCanvas()
	next := c.BitmapWithHeader([]byte{2, 3, 0x05, 0x02}, 10, 20)
	assert.Equal(t, 12, next)
	assert.True(t, c.PixelAt(10, 20))
	assert.False(t, c.PixelAt(10, 21))
	assert.True(t, c.PixelAt(10, 22))
	assert.True(t, c.PixelAt(11, 21))
	assert.Equal(t, 3, countBits(c))

	assert.Equal(t, 0, c.BitmapWithHeader([]byte{1}, 0, 0))
}
