package command

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
)

const bytesPerLine = 16

func newPalette(noColor bool) []*color.Color {
	palette := []*color.Color{
		color.New(color.FgCyan),
		color.New(color.FgYellow),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
	}
	if noColor {
		for _, c := range palette {
			c.DisableColor()
		}
	}

	return palette
}

// hexDump writes data as offset-prefixed rows of hex bytes. Each byte is
// colored after the field it belongs to; offsets are the field start offsets.
func hexDump(w io.Writer, data []byte, offsets []int, palette []*color.Color) {
	var sb strings.Builder
	for start := 0; start < len(data); start += bytesPerLine {
		end := min(start+bytesPerLine, len(data))

		sb.Reset()
		fmt.Fprintf(&sb, "%04x ", start)
		for i := start; i < end; i++ {
			field := sort.SearchInts(offsets, i+1) - 1
			sb.WriteByte(' ')
			sb.WriteString(palette[field%len(palette)].Sprintf("%02x", data[i]))
		}
		fmt.Fprintln(w, sb.String())
	}
}
