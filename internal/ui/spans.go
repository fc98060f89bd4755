package ui

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/render"
)

// RenderSpans applies the computed style spans to one plain listing line.
// Spans address display cells, not bytes; wide runes take the style of their
// first cell. Overlapping spans resolve later-wins, which is how the link
// style layers over a name span.
func RenderSpans(styles Styles, line string, spans []render.Span) string {
	width := runewidth.StringWidth(line)
	if width == 0 {
		return line
	}

	const unstyled = -1
	cells := make([]render.Style, width)
	for i := range cells {
		cells[i] = render.Style(unstyled)
	}
	for _, sp := range spans {
		end := sp.End
		if end == render.EndOfLine || end > width {
			end = width
		}
		for c := sp.Start; c < end && c >= 0; c++ {
			cells[c] = sp.Style
		}
	}

	var b strings.Builder
	b.Grow(len(line) * 2)

	var segment strings.Builder
	segStyle := render.Style(unstyled)
	col := 0

	flush := func() {
		if segment.Len() == 0 {
			return
		}
		if segStyle == render.Style(unstyled) {
			b.WriteString(segment.String())
		} else {
			b.WriteString(styles.StyleFor(segStyle).Render(segment.String()))
		}
		segment.Reset()
	}

	for _, r := range line {
		st := render.Style(unstyled)
		if col < width {
			st = cells[col]
		}
		if st != segStyle {
			flush()
			segStyle = st
		}
		segment.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	flush()

	return b.String()
}
