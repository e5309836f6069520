package main

import (
	"io"
	"os"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/flavioheleno/st7567/asset"
)

// output holds the flags shared by the commands that produce a table.
type output struct {
	path   string
	format string
	pkg    string
	name   string
}

func (o *output) register(cmd *cobra.Command, name string) {
	cmd.Flags().StringVarP(&o.path, `out`, `o`, ``, `output file (default stdout)`)
	cmd.Flags().StringVar(&o.format, `format`, `go`, `output format: go or bin`)
	cmd.Flags().StringVar(&o.pkg, `pkg`, `assets`, `package name of the generated Go file`)
	cmd.Flags().StringVar(&o.name, `name`, name, `variable name in the generated Go file`)
}

// write emits data in the selected format.
func (o *output) write(data []byte, comment string) error {
	var encode func(w io.Writer) error
	switch o.format {
	case `go`:
		encode = func(w io.Writer) error {
			return asset.WriteGo(w, o.pkg, o.name, comment, data)
		}
	case `bin`:
		encode = func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}
	default:
		return errorsGo.Errorf(`unknown format %q`, o.format)
	}

	if o.path == `` {
		if err := encode(os.Stdout); err != nil {
			return errorsGo.Wrap(err, 0)
		}
		return nil
	}
	return writeFile(o.path, encode)
}

// writeFile creates path and fills it with fn. The file is always closed
// before returning, and a failed close is reported like a failed write.
func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}
	if err := fn(f); err != nil {
		f.Close()
		return errorsGo.Wrap(err, 0)
	}
	if err := f.Close(); err != nil {
		return errorsGo.Wrap(err, 0)
	}
	return nil
}
