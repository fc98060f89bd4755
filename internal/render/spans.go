package render

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/dirfs"
)

// Style names a highlight group. The host maps each to a concrete terminal
// style; the core only deals in names and column ranges.
type Style int

const (
	StyleHeader Style = iota
	StyleDirMarker
	StyleFileMarker
	StyleDirName
	StyleFileName
	StyleLink
	StyleSize
	StyleTime
)

// EndOfLine marks a span that extends to the end of its line regardless of
// the line's actual width.
const EndOfLine = -1

// Span is one named style over a half-open cell column range of a line.
type Span struct {
	Style Style
	Start int
	End   int
}

// Spans computes the style ranges for a listing: row 0 covers the header,
// row i+1 covers entries[i]. All spans are recomputed from scratch on every
// call; nothing here is incremental.
//
// tsCol is the shared timestamp column from Layout. When a long name pushes
// the timestamp past tsCol the spans shift right with it, mirroring the
// layout's zero-clamped padding.
func Spans(entries []dirfs.Entry, tsCol int) [][]Span {
	rows := make([][]Span, 0, len(entries)+1)
	rows = append(rows, []Span{{Style: StyleHeader, Start: 0, End: EndOfLine}})

	for _, e := range entries {
		rows = append(rows, entrySpans(e, tsCol))
	}
	return rows
}

func entrySpans(e dirfs.Entry, tsCol int) []Span {
	marker := StyleFileMarker
	name := StyleFileName
	if e.IsDir() {
		marker = StyleDirMarker
		name = StyleDirName
	}

	nameEnd := markerWidth + runewidth.StringWidth(e.Name)

	spans := []Span{
		{Style: marker, Start: 0, End: markerWidth},
		{Style: name, Start: markerWidth, End: nameEnd},
	}

	// Links layer over the name span; the host decides how the two styles
	// combine.
	if e.IsLink() {
		spans = append(spans, Span{Style: StyleLink, Start: markerWidth, End: nameEnd})
	}

	// Size ends exactly at the timestamp column unless the name pushed the
	// right-hand fields over.
	sizeStart := tsCol - len(e.Size)
	if sizeStart < nameEnd {
		sizeStart = nameEnd
	}
	if e.Size != "" {
		spans = append(spans, Span{Style: StyleSize, Start: sizeStart, End: sizeStart + len(e.Size)})
	}

	tsStart := sizeStart + len(e.Size)
	spans = append(spans, Span{Style: StyleTime, Start: tsStart, End: EndOfLine})

	return spans
}
