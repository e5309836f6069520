package st7567

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Transport carries command and data bytes to the controller.
//
// Begin and End bracket a transfer (chip select). Command sends bytes with
// the data/command line low, Data with it high.
type Transport interface {
	Begin() error
	Command(cmds ...byte) error
	Data(p []byte) error
	End() error
}

// SPIFrequency is the serial clock used by NewSPI.
const SPIFrequency = 4 * physic.MegaHertz

// sleep is replaced in tests.
var sleep = time.Sleep

// spiTransport drives the controller over a 4-wire SPI link.
type spiTransport struct {
	c  conn.Conn   // SPI connection
	dc gpio.PinOut // Data/Command pin
	cs gpio.PinOut // Chip select (optional, nil when the port drives it)
}

func (s *spiTransport) Begin() error {
	if s.cs == nil {
		return nil
	}
	if err := s.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7567: failed to select chip: %w", err)
	}
	return nil
}

func (s *spiTransport) End() error {
	if s.cs == nil {
		return nil
	}
	if err := s.cs.Out(gpio.High); err != nil {
		return fmt.Errorf("st7567: failed to release chip: %w", err)
	}
	return nil
}

func (s *spiTransport) Command(cmds ...byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return err
	}
	return s.c.Tx(cmds, nil)
}

func (s *spiTransport) Data(p []byte) error {
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	return s.c.Tx(p, nil)
}

// reset pulses the reset line: high 50ms, low 500ms, high 10ms.
func reset(rst gpio.PinOut) error {
	if err := rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7567: failed to pull RST high: %w", err)
	}
	sleep(50 * time.Millisecond)

	if err := rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7567: failed to pull RST low: %w", err)
	}
	sleep(500 * time.Millisecond)

	if err := rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7567: failed to pull RST high: %w", err)
	}
	sleep(10 * time.Millisecond)
	return nil
}

// NewSPI returns a Dev connected over SPI.
//
// The port is configured for 4MHz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided and configured as an output.
// When opts.RST is set the controller is reset before initialization; when
// opts.CS is set it is driven around every transfer.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, ErrNoDCPin
	}
	if opts == nil {
		opts = &DefaultOpts
	}

	c, err := p.Connect(SPIFrequency, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7567: failed to connect: %w", err)
	}

	if opts.RST != nil {
		if err := reset(opts.RST); err != nil {
			return nil, err
		}
	}

	return New(&spiTransport{c: c, dc: dc, cs: opts.CS}, opts)
}
