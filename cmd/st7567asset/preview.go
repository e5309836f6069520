package main

import (
	"image"
	"image/png"
	"io"
	"os"

	errorsGo "github.com/go-errors/errors"
	"github.com/mattn/go-sixel"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flavioheleno/st7567"
	"github.com/flavioheleno/st7567/gfx"
	"github.com/flavioheleno/st7567/propfont"
	"github.com/flavioheleno/st7567/sim"
)

func init() {
	previewCmd.Flags().StringVar(&previewFlags.font, `font`, ``, `binary font table`)
	previewCmd.Flags().StringVar(&previewFlags.text, `text`, `Zażółć gęślą jaźń`, `text printed with the font`)
	previewCmd.Flags().BoolVar(&previewFlags.wrap, `wrap`, true, `wrap text at the right edge`)
	previewCmd.Flags().StringVar(&previewFlags.bitmap, `bitmap`, ``, `binary bitmap with a size header`)
	previewCmd.Flags().BoolVar(&previewFlags.rotated, `rotated`, false, `rotate the display 180°`)
	previewCmd.Flags().IntVar(&previewFlags.scale, `scale`, 4, `pixels per display pixel`)
	previewCmd.Flags().StringVarP(&previewFlags.png, `png`, `o`, ``, `write a PNG file instead of drawing on the terminal`)
	previewCmd.Flags().StringVar(&previewFlags.fb, `fb`, ``, `show on a framebuffer device such as /dev/fb0`)
	rootCmd.AddCommand(previewCmd)
}

var previewFlags struct {
	font, text string
	wrap       bool
	bitmap     string
	rotated    bool
	scale      int
	png, fb    string
}

var previewCmd = &cobra.Command{
	Use:   `preview`,
	Short: `preview assets on an emulated display`,
	Long:  `preview draws a font table or a bitmap through the driver onto an emulated controller and shows the panel`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(preview)
	},
}

func preview() error {
	ctrl := sim.New()
	dev, err := st7567.New(ctrl, &st7567.Opts{Rotated: previewFlags.rotated, Contrast: st7567.DefaultOpts.Contrast})
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}

	y := 0
	if previewFlags.bitmap != `` {
		bmp, err := os.ReadFile(previewFlags.bitmap)
		if err != nil {
			return errorsGo.Wrap(err, 0)
		}
		dev.Canvas().BitmapWithHeader(bmp, gfx.AlignCenter, 0)
		if len(bmp) >= 2 {
			y = int(bmp[1])
		}
	}
	if previewFlags.font != `` {
		data, err := os.ReadFile(previewFlags.font)
		if err != nil {
			return errorsGo.Wrap(err, 0)
		}
		f, err := propfont.Parse(data)
		if err != nil {
			return errorsGo.Wrap(err, 0)
		}
		txt := dev.Text()
		txt.SetFont(f)
		txt.SetWrap(previewFlags.wrap)
		txt.PrintString(0, y, previewFlags.text)
	}
	if err := dev.Display(); err != nil {
		return errorsGo.Wrap(err, 0)
	}

	panel := ctrl.Image()
	if previewFlags.fb != `` {
		return sim.ShowOnFramebuffer(previewFlags.fb, panel)
	}
	img := sim.Render(panel, previewFlags.scale, sim.Ink, sim.Backlight)
	if previewFlags.png != `` {
		return writeFile(previewFlags.png, func(w io.Writer) error {
			return encodePNG(w, img)
		})
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if err := sixel.NewEncoder(os.Stdout).Encode(img); err != nil {
			return errorsGo.Wrap(err, 0)
		}
		return nil
	}
	return encodePNG(os.Stdout, img)
}

func encodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errorsGo.Wrap(err, 0)
	}
	return nil
}
