package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/flavioheleno/st7567/asset"
)

func init() {
	bitmapCmd.Flags().IntVar(&bitmapFlags.width, `width`, 0, `target width (0 keeps the aspect ratio)`)
	bitmapCmd.Flags().IntVar(&bitmapFlags.height, `height`, 0, `target height (0 keeps the aspect ratio)`)
	bitmapCmd.Flags().Uint8Var(&bitmapFlags.threshold, `threshold`, 0x80, `gray level from which a pixel is light`)
	bitmapCmd.Flags().BoolVar(&bitmapFlags.invert, `invert`, false, `light the light pixels instead of the dark ones`)
	bitmapCmd.Flags().BoolVar(&bitmapFlags.noHeader, `no-header`, false, `leave out the width and height bytes`)
	bitmapFlags.out.register(bitmapCmd, `Bitmap`)
	rootCmd.AddCommand(bitmapCmd)
}

var bitmapFlags struct {
	width, height int
	threshold     uint8
	invert        bool
	noHeader      bool
	out           output
}

var bitmapCmd = &cobra.Command{
	Use:   `bitmap /path/to/image.png`,
	Short: `build a bitmap`,
	Long:  `bitmap converts an image into a packed bitmap for gfx.Canvas.Bitmap`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return buildBitmap(args[0]) })
	},
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errorsGo.Wrap(err, 0)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errorsGo.Wrap(err, 0)
	}
	return img, nil
}

func buildBitmap(path string) error {
	img, err := decodeImage(path)
	if err != nil {
		return err
	}
	data, err := asset.Bitmap(img, &asset.BitmapOptions{
		Width:     bitmapFlags.width,
		Height:    bitmapFlags.height,
		Threshold: bitmapFlags.threshold,
		Invert:    bitmapFlags.invert,
		Header:    !bitmapFlags.noHeader,
	})
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}
	return bitmapFlags.out.write(data, fmt.Sprintf(`%s is %s.`, bitmapFlags.out.name, path))
}
