// Package st7567 controls a ST7567 monochrome LCD via SPI.
//
// The ST7567 is a 1-bit LCD controller with a 132x65 RAM, commonly sold as a
// 128x64 module with a backlight. The driver keeps a framebuffer in the
// controller's own page layout, draws into it in memory and sends it to the
// display on request. It implements the display.Drawer interface from
// periph.io.
//
// # Display Characteristics
//
// - 128×64 pixels, 1 bit per pixel
// - 8 pages of 8 rows; one byte per column, least significant bit at the top
// - Adjustable contrast (0-63)
// - Hardware start line scrolling (0-63)
// - Display inversion and all-pixels-on modes
// - 0° and 180° orientation
//
// # Hardware Connection
//
// Connect the ST7567 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	3V3         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDI         → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select, or a GPIO passed as Opts.CS
//	RST         → Optional: GPIO for hardware reset
//	LED         → Backlight, via a resistor
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/st7567"
//		"github.com/flavioheleno/st7567/gfx"
//	)
//
//	func main() {
//		host.Init()
//
//		spiBus, _ := spireg.Open("")
//		dcPin := gpioreg.ByName("GPIO24")
//
//		dev, _ := st7567.NewSPI(spiBus, dcPin, &st7567.Opts{Contrast: 7})
//		defer dev.Halt()
//
//		c := dev.Canvas()
//		c.Rect(0, 0, 128, 64, gfx.Set)
//		c.FillCircle(64, 32, 20, gfx.Set)
//		c.SetDither(6)
//		c.FillRectD(10, 10, 30, 44, gfx.Set)
//
//		dev.Display()
//	}
//
// # Drawing
//
// Canvas returns the primitive rasterizer over the framebuffer (package
// gfx): pixels, lines, rectangles, circles, triangles, dithered fills and
// bitmaps, each with the Set, Clear or XOR color. Text returns the
// proportional font renderer (package propfont). Nothing reaches the display
// until one of:
//
//	dev.Display()           // the whole framebuffer
//	dev.Copy(0, 2, 64, 3)   // columns 0-63 of pages 2-4
//	dev.Draw(r, img, pt)    // any image.Image; only changed columns are sent
//
// # Text
//
//	f := propfont.MustParse(myFont)
//	t := dev.Text()
//	t.SetFont(f)
//	t.SetMinDigitWidth(6)
//	t.PrintString(gfx.AlignCenter, 20, "12:45")
//
// Text is decoded byte by byte, so a font covering the codes 128 to 145
// renders Polish letters from UTF-8 or Windows-1250 strings (package
// charset).
//
// # Power Saving
//
// Sleep blanks the display and puts the controller in its low power
// all-pixels-on state. Wake runs the initialization again. Halt turns the
// display off; further operations return ErrHalted until Wake or Show(true).
//
// # Logging
//
// The driver is silent by default. SetLogger installs a log/slog logger.
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
// Any Transport can be used with New, such as the emulator in package sim.
package st7567
