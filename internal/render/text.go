package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shinji-kodama/mazegen/internal/model"
)

// Charset maps cell states to glyphs.
type Charset struct {
	Wall   rune
	Path   rune
	Marked rune
}

// DefaultCharset draws walls as '#', paths as spaces and marks as '.'.
var DefaultCharset = Charset{Wall: '#', Path: ' ', Marked: '.'}

// Glyph returns the rune for c. Unknown states render as '?'.
func (cs Charset) Glyph(c model.Cell) rune {
	switch c {
	case model.Wall:
		return cs.Wall
	case model.Path:
		return cs.Path
	case model.Marked:
		return cs.Marked
	default:
		return '?'
	}
}

// Lines renders rows into one string per row.
func Lines(rows [][]model.Cell, cs Charset) []string {
	lines := make([]string, 0, len(rows))
	var sb strings.Builder
	for _, row := range rows {
		sb.Reset()
		for _, c := range row {
			sb.WriteRune(cs.Glyph(c))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Write renders rows to w, each line terminated by '\n'.
func Write(w io.Writer, rows [][]model.Cell, cs Charset) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(rows, cs) {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("failed to write maze row: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush maze output: %w", err)
	}
	return nil
}
