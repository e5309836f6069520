package sim

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/flavioheleno/st7567/image1bit"
)

// Colors of a typical transflective module with a green backlight.
var (
	Ink       = color.RGBA{R: 0x1c, G: 0x24, B: 0x1c, A: 0xff}
	Backlight = color.RGBA{R: 0x9c, G: 0xbc, B: 0x2c, A: 0xff}
)

// Render paints a 1-bit image with the ink and backlight colors, scaled by
// an integer factor with nearest neighbor sampling so pixels stay square.
func Render(img image.Image, scale int, ink, backlight color.Color) *image.RGBA {
	scale = max(scale, 1)
	b := img.Bounds()

	src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := backlight
			if image1bit.BitModel.Convert(img.At(x, y)) == image1bit.On {
				c = ink
			}
			src.Set(x-b.Min.X, y-b.Min.Y, c)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// ShowOnFramebuffer draws img centered on a Linux framebuffer device such
// as /dev/fb0, scaled by the largest integer factor that fits.
func ShowOnFramebuffer(device string, img image.Image) error {
	dev, err := fb.Open(device)
	if err != nil {
		return fmt.Errorf("sim: failed to open framebuffer: %w", err)
	}
	defer dev.Close()

	return showOn(dev, img)
}

// showOn draws img centered on dst, scaled to fit.
func showOn(dst draw.Image, img image.Image) error {
	b := dst.Bounds()
	ib := img.Bounds()
	if ib.Empty() {
		return nil
	}
	scale := min(b.Dx()/ib.Dx(), b.Dy()/ib.Dy())
	if scale < 1 {
		return fmt.Errorf("sim: framebuffer %dx%d smaller than image %dx%d", b.Dx(), b.Dy(), ib.Dx(), ib.Dy())
	}

	frame := Render(img, scale, Ink, Backlight)
	off := image.Pt((b.Dx()-frame.Rect.Dx())/2, (b.Dy()-frame.Rect.Dy())/2)
	draw.Draw(dst, frame.Rect.Add(b.Min).Add(off), frame, image.Point{}, draw.Src)
	return nil
}
