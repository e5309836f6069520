package gfx

import "math"

// Rect draws the outline of a w x h rectangle with its top-left corner at
// (x, y). Every pixel of the outline is touched once, so XOR outlines can be
// undone by drawing them again.
func (c *Canvas) Rect(x, y, w, h int, col Color) {
	c.rect(x, y, w, h, col, false)
}

// RectD is the dithered twin of Rect.
func (c *Canvas) RectD(x, y, w, h int, col Color) {
	c.rect(x, y, w, h, col, true)
}

func (c *Canvas) rect(x, y, w, h int, col Color, dithered bool) {
	if w <= 0 || h <= 0 {
		return
	}
	vline := c.VLineFast
	if dithered {
		vline = c.VLineFastD
	}
	c.hline(x, x+w-1, y, col, dithered)
	if h > 1 {
		c.hline(x, x+w-1, y+h-1, col, dithered)
	}
	if h > 2 {
		vline(x, y+1, y+h-2, col)
		if w > 1 {
			vline(x+w-1, y+1, y+h-2, col)
		}
	}
}

// FillRect fills a w x h rectangle with its top-left corner at (x, y), one
// fast vertical run per column.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	c.fillRect(x, y, w, h, col, false)
}

// FillRectD is the dithered twin of FillRect.
func (c *Canvas) FillRectD(x, y, w, h int, col Color) {
	c.fillRect(x, y, w, h, col, true)
}

func (c *Canvas) fillRect(x, y, w, h int, col Color, dithered bool) {
	if w <= 0 || h <= 0 {
		return
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > c.w {
		w = c.w - x
	}
	if y+h > c.h {
		h = c.h - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	for i := x; i < x+w; i++ {
		if dithered {
			c.VLineFastD(i, y, y+h-1, col)
		} else {
			c.VLineFast(i, y, y+h-1, col)
		}
	}
}

// Circle draws the outline of a circle centered on (x0, y0) with the
// midpoint algorithm.
func (c *Canvas) Circle(x0, y0, r int, col Color) {
	if r < 0 {
		return
	}
	nx, ny, fx, fy := c.reach(x0, y0)
	if nx > r || ny > r || r > fx+fy {
		// the ring misses the canvas or runs around it
		return
	}
	if r == 0 {
		c.Pixel(x0, y0, col)
		return
	}
	if r > c.w+c.h {
		c.farCircle(x0, y0, r, col)
		return
	}
	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x, y := 0, r

	c.Pixel(x0, y0+r, col)
	c.Pixel(x0, y0-r, col)
	c.Pixel(x0+r, y0, col)
	c.Pixel(x0-r, y0, col)

	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx
		if x > y {
			// mirror image of the previous step
			break
		}

		c.Pixel(x0+x, y0+y, col)
		c.Pixel(x0-x, y0+y, col)
		c.Pixel(x0+x, y0-y, col)
		c.Pixel(x0-x, y0-y, col)
		if x == y {
			// the diagonal points would be drawn twice
			continue
		}
		c.Pixel(x0+y, y0+x, col)
		c.Pixel(x0-y, y0+x, col)
		c.Pixel(x0+y, y0-x, col)
		c.Pixel(x0-y, y0-x, col)
	}
}

// farCircle draws the arc of a ring much larger than the canvas, one point
// per column and one per row. Points found by both passes are drawn once.
func (c *Canvas) farCircle(x0, y0, r int, col Color) {
	column := func(x int) (int, bool) {
		d := abs(x - x0)
		if d > r {
			return 0, false
		}
		return int(math.Round(chord(r, d))), true
	}
	onColumn := func(x, y int) bool {
		h, ok := column(x)
		return ok && (y == y0-h || y == y0+h)
	}

	for x := 0; x < c.w; x++ {
		h, ok := column(x)
		if !ok {
			continue
		}
		c.Pixel(x, y0-h, col)
		if h != 0 {
			c.Pixel(x, y0+h, col)
		}
	}
	for y := 0; y < c.h; y++ {
		d := abs(y - y0)
		if d > r {
			continue
		}
		h := int(math.Round(chord(r, d)))
		if !onColumn(x0-h, y) {
			c.Pixel(x0-h, y, col)
		}
		if h != 0 && !onColumn(x0+h, y) {
			c.Pixel(x0+h, y, col)
		}
	}
}

// FillCircle fills a circle centered on (x0, y0) with vertical runs.
func (c *Canvas) FillCircle(x0, y0, r int, col Color) {
	c.fillCircle(x0, y0, r, col, false)
}

// FillCircleD is the dithered twin of FillCircle.
func (c *Canvas) FillCircleD(x0, y0, r int, col Color) {
	c.fillCircle(x0, y0, r, col, true)
}

func (c *Canvas) fillCircle(x0, y0, r int, col Color, dithered bool) {
	if r < 0 {
		return
	}
	nx, ny, fx, fy := c.reach(x0, y0)
	if nx > r || ny > r {
		return
	}
	if r >= fx+fy || (r <= c.w+c.h && fx <= r && fy <= r && r*r >= fx*fx+fy*fy) {
		// every corner is inside
		c.fillRect(0, 0, c.w, c.h, col, dithered)
		return
	}

	vline := c.VLineFast
	if dithered {
		vline = c.VLineFastD
	}
	if r > c.w+c.h {
		for x := 0; x < c.w; x++ {
			d := abs(x - x0)
			if d > r {
				continue
			}
			h := int(chord(r, d))
			vline(x, y0-h, y0+h, col)
		}
		return
	}

	// span[dx] is the half height of the column dx pixels away from the
	// center. The midpoint steps revisit columns, so collect the widest span
	// first and emit each column once. Columns beyond fx are off the canvas.
	n := min(r, fx) + 1
	span := make([]int, n)
	span[0] = r
	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x, y := 0, r
	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx
		if x < n {
			span[x] = max(span[x], y)
		}
		if y < n {
			span[y] = max(span[y], x)
		}
	}

	vline(x0, y0-span[0], y0+span[0], col)
	for dx := 1; dx < n; dx++ {
		vline(x0+dx, y0-span[dx], y0+span[dx], col)
		vline(x0-dx, y0-span[dx], y0+span[dx], col)
	}
}

// reach returns the distance from (x0, y0) to the nearest and to the farthest
// canvas column and row.
func (c *Canvas) reach(x0, y0 int) (nx, ny, fx, fy int) {
	nx = max(-x0, x0-(c.w-1), 0)
	ny = max(-y0, y0-(c.h-1), 0)
	fx = max(abs(x0), abs(c.w-1-x0))
	fy = max(abs(y0), abs(c.h-1-y0))
	return nx, ny, fx, fy
}

// chord returns the half length of the chord d pixels away from the center
// of a circle of radius r, for 0 <= d <= r.
func chord(r, d int) float64 {
	return math.Sqrt(float64(r-d) * (float64(r) + float64(d)))
}

// Triangle draws the outline of a triangle.
func (c *Canvas) Triangle(x0, y0, x1, y1, x2, y2 int, col Color) {
	c.Line(x0, y0, x1, y1, col)
	c.Line(x1, y1, x2, y2, col)
	c.Line(x2, y2, x0, y0, col)
}

// FillTriangle fills a triangle column by column.
//
// The vertices are sorted by x. Two running sums interpolate the y of the
// long edge (v0-v2) and of the short edges (v0-v1, then v1-v2); each column
// is filled with a fast vertical run between them.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, col Color) {
	c.fillTriangle(x0, y0, x1, y1, x2, y2, col, c.VLineFast)
}

// FillTriangleD is the dithered twin of FillTriangle.
func (c *Canvas) FillTriangleD(x0, y0, x1, y1, x2, y2 int, col Color) {
	c.fillTriangle(x0, y0, x1, y1, x2, y2, col, c.VLineFastD)
}

func (c *Canvas) fillTriangle(x0, y0, x1, y1, x2, y2 int, col Color, vline func(x, y0, y1 int, col Color)) {
	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	if x0 == x2 {
		a, b := min(y0, y1, y2), max(y0, y1, y2)
		vline(x0, a, b, col)
		return
	}

	dx01, dy01 := x1-x0, y1-y0
	dx02, dy02 := x2-x0, y2-y0
	dx12, dy12 := x2-x1, y2-y1
	sa, sb := 0, 0

	// Include x1 in the first half only when the second half is empty.
	last := x1 - 1
	if x1 == x2 {
		last = x1
	}

	x := x0
	for ; x <= last; x++ {
		a := y0 + sa/dx01
		b := y0 + sb/dx02
		sa += dy01
		sb += dy02
		if a > b {
			a, b = b, a
		}
		vline(x, a, b, col)
	}

	sa = dy12 * (x - x1)
	sb = dy02 * (x - x0)
	for ; x <= x2; x++ {
		a := y1 + sa/dx12
		b := y0 + sb/dx02
		sa += dy12
		sb += dy02
		if a > b {
			a, b = b, a
		}
		vline(x, a, b, col)
	}
}
