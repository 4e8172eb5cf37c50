// Package render turns fire grid snapshots into text.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"wildfire-ca/internal/sims/wildfire"
)

// WriteFrame writes the snapshot as rows of glyphs, each followed by a space,
// with a blank line before and after the grid.
func WriteFrame(w io.Writer, s wildfire.Snapshot) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('\n')
	for row := 0; row < s.Dim(); row++ {
		for col := 0; col < s.Dim(); col++ {
			bw.WriteRune(wildfire.Glyph(s.At(row, col)))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// FrameString renders the snapshot the same way WriteFrame does.
func FrameString(s wildfire.Snapshot) string {
	var b strings.Builder
	_ = WriteFrame(&b, s)
	return b.String()
}

// WriteLegend prints the glyph key.
func WriteLegend(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Key:"); err != nil {
		return err
	}
	for _, e := range wildfire.Legend() {
		if _, err := fmt.Fprintf(w, "%c = %s\n", e.Glyph, e.Label); err != nil {
			return err
		}
	}
	return nil
}
