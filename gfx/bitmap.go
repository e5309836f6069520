package gfx

// Bitmap ORs a w x h packed bitmap into the framebuffer at (x, y).
//
// The source holds (h+7)/8 bands of w bytes; each byte covers 8 rows of one
// column, LSB at the top. Set bits turn pixels on, clear bits leave the
// framebuffer untouched.
//
// x may be AlignRight or AlignCenter. The bitmap is clipped to the
// framebuffer. Bitmap returns the column just right of the drawn area, or 0
// when nothing could be placed.
func (c *Canvas) Bitmap(bmp []byte, x, y, w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	stride := w
	x = c.Align(x, w)
	if x >= c.w || y >= c.h {
		return 0
	}
	if x+w > c.w {
		w = c.w - x
	}
	if y+h > c.h {
		h = c.h - y
	}

	bands := (h + 7) / 8
	for band := 0; band < bands; band++ {
		rows := min(h-band*8, 8)
		for i := 0; i < w; i++ {
			idx := stride*band + i
			if idx >= len(bmp) {
				break
			}
			d := bmp[idx]
			for b := 0; b < rows && d != 0; b++ {
				if d&1 != 0 {
					c.orPixel(x+i, y+band*8+b)
				}
				d >>= 1
			}
		}
	}
	return x + w
}

// BitmapWithHeader draws a bitmap whose first two bytes hold its width and
// height.
func (c *Canvas) BitmapWithHeader(bmp []byte, x, y int) int {
	if len(bmp) < 2 {
		return 0
	}
	return c.Bitmap(bmp[2:], x, y, int(bmp[0]), int(bmp[1]))
}
