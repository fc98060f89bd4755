// Package render turns a directory listing into display lines and style
// spans. Both halves are pure functions over an entry snapshot: Layout
// produces the text, Spans produces the named column ranges the host styles.
// They share the same column arithmetic so styles always land on the fields
// they name.
package render

import (
	"strings"
	"time"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/dirfs"
)

const (
	// TimestampWidth is the number of cells the timestamp field occupies.
	TimestampWidth = 16

	timeLayout = "2006-01-02 15:04"

	// markerWidth is the width of the per-entry prefix marker glyph.
	markerWidth = 1
)

// Bucket maps a viewport width to a coarse layout width. Collapsing widths
// into buckets keeps column alignment stable across minor window resizes.
func Bucket(width int) int {
	switch {
	case width >= 99:
		return 80
	case width <= 40:
		return 40
	default:
		return width - 10
	}
}

// Layout is the rendered text for one directory listing.
type Layout struct {
	// Header is the first line: the current absolute path.
	Header string

	// Lines holds one formatted line per entry, in entry order.
	Lines []string

	// TimestampCol is the cell column where every timestamp field nominally
	// begins (bucket width − TimestampWidth). Shared with Spans.
	TimestampCol int

	// Width is the bucketed width the lines were laid out for.
	Width int
}

// NewLayout formats entries for a viewport of the given width. Each line is
// `" " + name + padding + [size]timestamp` with the timestamp right-aligned
// to end at the bucketed width. Padding is computed from the display width
// of the name (wide runes count double) and clamps at zero: over-long names
// push the timestamp right but never truncate it.
func NewLayout(path string, entries []dirfs.Entry, width int) Layout {
	bucket := Bucket(width)
	tsCol := bucket - TimestampWidth

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = formatLine(e, tsCol)
	}

	return Layout{
		Header:       path,
		Lines:        lines,
		TimestampCol: tsCol,
		Width:        bucket,
	}
}

func formatLine(e dirfs.Entry, tsCol int) string {
	ts := time.Unix(e.MTime, 0).Format(timeLayout)

	nameEnd := markerWidth + runewidth.StringWidth(e.Name)
	pad := tsCol - len(e.Size) - nameEnd
	if pad < 0 {
		pad = 0
	}

	var b strings.Builder
	b.Grow(nameEnd + pad + len(e.Size) + TimestampWidth)
	b.WriteByte(' ')
	b.WriteString(e.Name)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(e.Size)
	b.WriteString(ts)
	return b.String()
}
