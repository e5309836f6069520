package gfx

// MaxDither is the dither level of a fully solid pattern.
const MaxDither = 16

// ditherTab holds one 4-column pattern per gray level. Byte i is the page
// mask used in columns where x%4 == i.
var ditherTab = [MaxDither + 1][4]byte{
	{0x00, 0x00, 0x00, 0x00}, // 0

	{0x00, 0x00, 0x00, 0x88}, // 1
	{0x00, 0x22, 0x00, 0x88}, // 2
	{0x00, 0xaa, 0x00, 0x88}, // 3
	{0x00, 0xaa, 0x00, 0xaa}, // 4
	{0x44, 0xaa, 0x00, 0xaa}, // 5
	{0x44, 0xaa, 0x11, 0xaa}, // 6
	{0x44, 0xaa, 0x55, 0xaa}, // 7

	{0x55, 0xaa, 0x55, 0xaa}, // 8

	{0xdd, 0xaa, 0x55, 0xaa}, // 9
	{0xdd, 0xaa, 0x77, 0xaa}, // 10
	{0xdd, 0xaa, 0xff, 0xaa}, // 11
	{0xff, 0xaa, 0xff, 0xaa}, // 12
	{0xff, 0xee, 0xff, 0xaa}, // 13
	{0xff, 0xee, 0xff, 0xbb}, // 14
	{0xff, 0xee, 0xff, 0xff}, // 15

	{0xff, 0xff, 0xff, 0xff}, // 16
}

// DitherPattern returns the pattern for level, clamped to
// [-MaxDither, MaxDither]. Negative levels are the bitwise complement of the
// matching positive level.
func DitherPattern(level int) [4]byte {
	level = max(-MaxDither, min(level, MaxDither))
	if level >= 0 {
		return ditherTab[level]
	}
	p := ditherTab[-level]
	for i := range p {
		p[i] = ^p[i]
	}
	return p
}

// SetDither selects the pattern used by every dithered (D suffixed) drawing
// call until the next SetDither.
func (c *Canvas) SetDither(level int) {
	c.pattern = DitherPattern(level)
}

// Pattern returns the active dither pattern.
func (c *Canvas) Pattern() [4]byte {
	return c.pattern
}
