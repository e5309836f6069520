// Command st7567asset builds the font tables and bitmaps used with the st7567
// package, and previews them on an emulated display.
//
//	st7567asset font --ttf DejaVuSans.ttf --size 10 --first 32 --last 145 -o font.go
//	st7567asset bitmap logo.png --width 64 -o logo.go
//	st7567asset qr "https://example.com" -o qr.bin --format bin
//	st7567asset preview --font font.bin --text "Zażółć gęślą jaźń"
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/flavioheleno/st7567"
)

var rootCmd = &cobra.Command{
	Use:          "st7567asset",
	Short:        "build and preview ST7567 display assets",
	Long:         "st7567asset converts fonts and images into the tables drawn by the st7567 package",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		st7567.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `debug logging and error stacks`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var debug bool

func run(fn func() error) {
	if fn == nil {
		log.Fatal(errorsGo.New("nil command"))
	}
	if err := fn(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
			fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
