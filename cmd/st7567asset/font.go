package main

import (
	"fmt"
	"os"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"

	"github.com/flavioheleno/st7567/asset"
	"github.com/flavioheleno/st7567/charset"
)

func init() {
	fontCmd.Flags().StringVar(&fontFlags.ttf, `ttf`, ``, `TrueType or OpenType file (default: built-in 7x13)`)
	fontCmd.Flags().Float64Var(&fontFlags.size, `size`, 10, `glyph size in pixels`)
	fontCmd.Flags().StringVar(&fontFlags.engine, `engine`, `opentype`, `rasterizer: opentype or freetype`)
	fontCmd.Flags().Uint8Var(&fontFlags.first, `first`, ' ', `first code`)
	fontCmd.Flags().Uint8Var(&fontFlags.last, `last`, charset.Last, `last code; codes from 128 are the Polish letters`)
	fontCmd.Flags().BoolVar(&fontFlags.fixed, `fixed`, false, `fixed width table`)
	fontCmd.Flags().Uint8Var(&fontFlags.threshold, `threshold`, 0x80, `coverage from which a pixel is lit`)
	fontFlags.out.register(fontCmd, `Font`)
	rootCmd.AddCommand(fontCmd)
}

var fontFlags struct {
	ttf       string
	size      float64
	engine    string
	first     uint8
	last      uint8
	fixed     bool
	threshold uint8
	out       output
}

var fontCmd = &cobra.Command{
	Use:   `font`,
	Short: `build a font table`,
	Long:  `font rasterizes a range of characters into a table for propfont.Parse`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(buildFont)
	},
}

func loadFace() (font.Face, error) {
	if fontFlags.ttf == `` {
		return asset.DefaultFace(), nil
	}
	data, err := os.ReadFile(fontFlags.ttf)
	if err != nil {
		return nil, errorsGo.Wrap(err, 0)
	}
	switch fontFlags.engine {
	case `opentype`:
		return asset.OpenTypeFace(data, fontFlags.size)
	case `freetype`:
		return asset.TrueTypeFace(data, fontFlags.size)
	}
	return nil, errorsGo.Errorf(`unknown engine %q`, fontFlags.engine)
}

func buildFont() error {
	face, err := loadFace()
	if err != nil {
		return err
	}
	defer face.Close()

	data, err := asset.FontFromFace(face, fontFlags.first, fontFlags.last, &asset.FontOptions{
		Fixed:     fontFlags.fixed,
		Threshold: fontFlags.threshold,
	})
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}

	src := fontFlags.ttf
	if src == `` {
		src = `basicfont 7x13`
	}
	comment := fmt.Sprintf(`%s is %s, codes %d to %d.`, fontFlags.out.name, src, fontFlags.first, fontFlags.last)
	return fontFlags.out.write(data, comment)
}
