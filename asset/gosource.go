package asset

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
)

// WriteGo writes data as a gofmt'ed Go source file declaring
// var name = []byte{...} in package pkg.
func WriteGo(w io.Writer, pkg, name, comment string, data []byte) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by st7567asset. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	if comment != "" {
		fmt.Fprintf(&b, "// %s\n", comment)
	}
	fmt.Fprintf(&b, "var %s = []byte{\n", name)
	for i := 0; i < len(data); i += 16 {
		for _, v := range data[i:min(i+16, len(data))] {
			fmt.Fprintf(&b, "0x%02x, ", v)
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("asset: failed to format source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
