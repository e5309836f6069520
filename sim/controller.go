// Package sim emulates a ST7567 controller on the host.
//
// A Controller implements st7567.Transport. It decodes the command and data
// stream into display RAM and controller state, and renders what the panel
// would show. It lets the driver run without hardware, in tests and in
// previews.
package sim

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/flavioheleno/st7567"
	"github.com/flavioheleno/st7567/image1bit"
)

// RAM geometry. The controller has more columns than the panel and a ninth
// page holding a single icon row.
const (
	RAMColumns = 132
	RAMPages   = 9
)

var (
	// ErrNotSelected is returned for transfers outside Begin and End.
	ErrNotSelected = errors.New("sim: chip not selected")
	// ErrUnknownCommand is returned for bytes that decode to no command.
	ErrUnknownCommand = errors.New("sim: unknown command")
)

// State is a snapshot of the controller registers.
type State struct {
	On        bool // display on (0xAF)
	AllOn     bool // all pixels on (0xA5)
	Inverted  bool // inverse display (0xA7)
	SegRemap  bool // columns mirrored (0xA1)
	ComRemap  bool // rows scanned bottom up (0xC8)
	Bias7     bool // 1/7 bias (0xA3)
	StartLine int  // RAM line shown on the first row
	Contrast  byte // electronic volume, 0-63
	Power     byte // power control bits VC|VR|VF
	Ratio     byte // regulator resistor ratio
	Page      int  // page address
	Column    int  // column address
	Selected  bool
}

// Controller is an emulated ST7567. It is safe for concurrent use, so a
// preview can render while the driver writes.
type Controller struct {
	mu  sync.Mutex
	ram [RAMPages][RAMColumns]byte
	st  State

	rmw       bool
	rmwColumn int
	volume    bool // next command byte is the contrast value
	strict    bool

	commands, data int
}

// New returns a controller in its power-on state.
func New() *Controller {
	c := &Controller{}
	c.reset()
	return c
}

// Strict makes unknown commands fail with ErrUnknownCommand instead of being
// ignored.
func (c *Controller) Strict(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.strict = on
}

func (c *Controller) reset() {
	selected := c.st.Selected
	c.st = State{Contrast: 0x20, Selected: selected}
	c.rmw = false
	c.volume = false
}

// Begin selects the chip.
func (c *Controller) Begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Selected = true
	return nil
}

// End releases the chip.
func (c *Controller) End() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Selected = false
	return nil
}

// Command decodes cmds in order. It stops at the first unknown byte in
// strict mode.
func (c *Controller) Command(cmds ...byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.st.Selected {
		return ErrNotSelected
	}
	for _, b := range cmds {
		c.commands++
		if err := c.exec(b); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) exec(b byte) error {
	if c.volume {
		c.volume = false
		c.st.Contrast = b & 0x3F
		return nil
	}

	switch {
	case b <= 0x0F:
		c.st.Column = c.st.Column&0xF0 | int(b&0x0F)
	case b <= 0x1F:
		c.st.Column = c.st.Column&0x0F | int(b&0x0F)<<4
	case b <= 0x27:
		c.st.Ratio = b & 0x07
	case b <= 0x2F:
		c.st.Power = b & 0x07
	case b >= 0x40 && b <= 0x7F:
		c.st.StartLine = int(b & 0x3F)
	case b == st7567.CmdContrast:
		c.volume = true
	case b == st7567.CmdSegNormal, b == st7567.CmdSegRemap:
		c.st.SegRemap = b&1 != 0
	case b == 0xA2, b == st7567.CmdBias7:
		c.st.Bias7 = b&1 != 0
	case b == st7567.CmdAllNormal, b == st7567.CmdAllOn:
		c.st.AllOn = b&1 != 0
	case b == st7567.CmdInvertOff, b == st7567.CmdInvertOn:
		c.st.Inverted = b&1 != 0
	case b == st7567.CmdDisplayOff, b == st7567.CmdDisplayOn:
		c.st.On = b&1 != 0
	case b >= st7567.CmdPageAddr && b <= st7567.CmdPageAddr+RAMPages-1:
		c.st.Page = int(b & 0x0F)
	case b&0xF0 == 0xC0:
		c.st.ComRemap = b&0x08 != 0
	case b == st7567.CmdReadModWrite:
		c.rmw = true
		c.rmwColumn = c.st.Column
	case b == 0xEE: // end read-modify-write
		if c.rmw {
			c.st.Column = c.rmwColumn
			c.rmw = false
		}
	case b == 0xE2: // software reset
		c.reset()
	case b == st7567.CmdNop:
	default:
		st7567.Logger().Debug("sim: unknown command", "cmd", fmt.Sprintf("%#02x", b))
		if c.strict {
			return fmt.Errorf("%w %#02x", ErrUnknownCommand, b)
		}
	}
	return nil
}

// Data writes p to RAM from the current page and column. The column
// advances after every byte and stops at the last RAM column.
func (c *Controller) Data(p []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.st.Selected {
		return ErrNotSelected
	}
	for _, b := range p {
		if c.st.Page < RAMPages && c.st.Column < RAMColumns {
			c.ram[c.st.Page][c.st.Column] = b
			c.st.Column++
		}
	}
	c.data += len(p)
	return nil
}

// State returns a snapshot of the registers.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st
}

// Counters returns the number of command and data bytes received.
func (c *Controller) Counters() (commands, data int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commands, c.data
}

// RAM returns a copy of one RAM page.
func (c *Controller) RAM(page int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 0 || page >= RAMPages {
		return nil
	}
	out := make([]byte, RAMColumns)
	copy(out, c.ram[page][:])
	return out
}

// Image renders the panel as it looks: the 128x64 window of RAM selected by
// the remap and start line registers, with inversion and all-on applied. A
// display that is off renders blank.
//
// Modules are wired so that SEG normal and COM remap show RAM column 0 and
// line 0 at the top-left corner.
func (c *Controller) Image() *image1bit.VerticalLSB {
	c.mu.Lock()
	defer c.mu.Unlock()

	img := image1bit.NewVerticalLSB(image.Rect(0, 0, st7567.Width, st7567.Height))
	if !c.st.On {
		return img
	}
	for y := 0; y < st7567.Height; y++ {
		com := y
		if !c.st.ComRemap {
			com = st7567.Height - 1 - y
		}
		line := (com + c.st.StartLine) % st7567.Height
		for x := 0; x < st7567.Width; x++ {
			col := x
			if c.st.SegRemap {
				col = RAMColumns - 1 - x
			}
			on := c.ram[line/8][col]&(1<<uint(line&7)) != 0
			switch {
			case c.st.AllOn:
				on = true
			case c.st.Inverted:
				on = !on
			}
			img.SetBit(x, y, image1bit.Bit(on))
		}
	}
	return img
}
