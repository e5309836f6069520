package main

import (
	"fmt"

	errorsGo "github.com/go-errors/errors"
	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/flavioheleno/st7567/asset"
)

func init() {
	qrCmd.Flags().StringVar(&qrFlags.level, `level`, `medium`, `error correction: low, medium, high or highest`)
	qrCmd.Flags().IntVar(&qrFlags.scale, `scale`, 1, `pixels per module`)
	qrCmd.Flags().BoolVar(&qrFlags.border, `border`, false, `keep the quiet zone`)
	qrFlags.out.register(qrCmd, `QRCode`)
	rootCmd.AddCommand(qrCmd)
}

var qrFlags struct {
	level  string
	scale  int
	border bool
	out    output
}

var qrLevels = map[string]qrcode.RecoveryLevel{
	`low`:     qrcode.Low,
	`medium`:  qrcode.Medium,
	`high`:    qrcode.High,
	`highest`: qrcode.Highest,
}

var qrCmd = &cobra.Command{
	Use:   `qr <payload>`,
	Short: `build a QR code bitmap`,
	Long:  `qr encodes a payload into a QR code bitmap with a size header`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return buildQR(args[0]) })
	},
}

func buildQR(payload string) error {
	level, ok := qrLevels[qrFlags.level]
	if !ok {
		return errorsGo.Errorf(`unknown error correction level %q`, qrFlags.level)
	}
	data, err := asset.QRCode(payload, &asset.QROptions{
		Level:  level,
		Scale:  qrFlags.scale,
		Border: qrFlags.border,
	})
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}
	return qrFlags.out.write(data, fmt.Sprintf(`%s encodes %q.`, qrFlags.out.name, payload))
}
