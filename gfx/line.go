package gfx

// Line draws a line from (x0, y0) to (x1, y1), both ends included, with
// Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, col Color) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Pixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err + err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// HLine draws a horizontal line pixel by pixel. HLineFast produces the same
// result faster.
func (c *Canvas) HLine(x0, x1, y int, col Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		c.Pixel(x, y, col)
	}
}

// VLine draws a vertical line pixel by pixel. VLineFast produces the same
// result faster.
func (c *Canvas) VLine(x, y0, y1 int, col Color) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.Pixel(x, y, col)
	}
}

// HLineFast draws a horizontal line from x0 to x1 inclusive on row y,
// addressing the page byte once per column.
func (c *Canvas) HLineFast(x0, x1, y int, col Color) {
	c.hline(x0, x1, y, col, false)
}

// HLineFastD is the dithered twin of HLineFast.
func (c *Canvas) HLineFastD(x0, x1, y int, col Color) {
	c.hline(x0, x1, y, col, true)
}

func (c *Canvas) hline(x0, x1, y int, col Color, dithered bool) {
	if y < 0 || y >= c.h {
		return
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= c.w {
		x1 = c.w - 1
	}
	row := (y / 8) * c.w
	mask := byte(1) << uint(y&7)
	for x := x0; x <= x1; x++ {
		m := mask
		if dithered {
			m &= c.pattern[x&3]
		}
		c.apply(row+x, m, col)
	}
}

// VLineFast draws a vertical line from y0 to y1 inclusive in column x.
//
// The run is split in a partial top page, whole middle pages and a partial
// bottom page, so the cost is proportional to the number of pages touched.
func (c *Canvas) VLineFast(x, y0, y1 int, col Color) {
	c.vline(x, y0, y1, col, 0xff)
}

// VLineFastD is the dithered twin of VLineFast.
func (c *Canvas) VLineFastD(x, y0, y1 int, col Color) {
	if x < 0 {
		return
	}
	c.vline(x, y0, y1, col, c.pattern[x&3])
}

// vline restricts every touched byte to the bits of pm.
func (c *Canvas) vline(x, y0, y1 int, col Color, pm byte) {
	if x < 0 || x >= c.w {
		return
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= c.h {
		y1 = c.h - 1
	}
	if y0 > y1 {
		return
	}
	p0, p1 := y0/8, y1/8
	if p0 == p1 {
		c.apply(p0*c.w+x, fromRow[y0&7]&toRow[y1&7]&pm, col)
		return
	}
	c.apply(p0*c.w+x, fromRow[y0&7]&pm, col)
	for p := p0 + 1; p < p1; p++ {
		c.apply(p*c.w+x, pm, col)
	}
	c.apply(p1*c.w+x, toRow[y1&7]&pm, col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
