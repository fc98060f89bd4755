package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/dirfs"
)

func spanFor(t *testing.T, spans []Span, style Style) Span {
	t.Helper()
	for _, s := range spans {
		if s.Style == style {
			return s
		}
	}
	t.Fatalf("no span with style %d in %v", style, spans)
	return Span{}
}

func hasStyle(spans []Span, style Style) bool {
	for _, s := range spans {
		if s.Style == style {
			return true
		}
	}
	return false
}

func TestSpansHeaderRow(t *testing.T) {
	rows := Spans(nil, 64)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 1)
	assert.Equal(t, Span{Style: StyleHeader, Start: 0, End: EndOfLine}, rows[0][0])
}

func TestSpansFileRow(t *testing.T) {
	linkType := dirfs.TypeFile
	entries := []dirfs.Entry{
		{Name: "A/", Type: dirfs.TypeDir},
		{Name: "b.txt", Type: dirfs.TypeFile, Size: "5 B"},
		{Name: "ln", Type: dirfs.TypeFile, Link: &linkType},
	}
	rows := Spans(entries, 64)
	require.Len(t, rows, 4)

	dir := rows[1]
	assert.Equal(t, Span{Style: StyleDirMarker, Start: 0, End: 1}, spanFor(t, dir, StyleDirMarker))
	assert.Equal(t, Span{Style: StyleDirName, Start: 1, End: 3}, spanFor(t, dir, StyleDirName))
	assert.False(t, hasStyle(dir, StyleSize), "directories have no size span")
	assert.Equal(t, Span{Style: StyleTime, Start: 64, End: EndOfLine}, spanFor(t, dir, StyleTime))

	file := rows[2]
	assert.Equal(t, Span{Style: StyleFileMarker, Start: 0, End: 1}, spanFor(t, file, StyleFileMarker))
	assert.Equal(t, Span{Style: StyleFileName, Start: 1, End: 6}, spanFor(t, file, StyleFileName))
	size := spanFor(t, file, StyleSize)
	assert.Equal(t, 64, size.End, "size span ends exactly at the timestamp column")
	assert.Equal(t, 64-len("5 B"), size.Start)
	assert.Equal(t, 64, spanFor(t, file, StyleTime).Start)
	assert.False(t, hasStyle(file, StyleLink))

	link := rows[3]
	name := spanFor(t, link, StyleFileName)
	layered := spanFor(t, link, StyleLink)
	assert.Equal(t, name.Start, layered.Start, "link style layers over the name span")
	assert.Equal(t, name.End, layered.End)
}

func TestSpansWideRuneName(t *testing.T) {
	entries := []dirfs.Entry{
		{Name: "日本語.txt", Type: dirfs.TypeFile},
	}
	rows := Spans(entries, 64)
	name := spanFor(t, rows[1], StyleFileName)
	// 3 wide runes (2 cells each) + ".txt" = 10 cells.
	assert.Equal(t, 1, name.Start)
	assert.Equal(t, 11, name.End)
}

func TestSpansOverflowPushesRightFields(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'n'
	}
	entries := []dirfs.Entry{
		{Name: string(long), Type: dirfs.TypeFile, Size: "1 B"},
	}
	rows := Spans(entries, 64)

	name := spanFor(t, rows[1], StyleFileName)
	size := spanFor(t, rows[1], StyleSize)
	ts := spanFor(t, rows[1], StyleTime)

	assert.Equal(t, 101, name.End)
	assert.Equal(t, name.End, size.Start, "size shifts right with the over-long name")
	assert.Equal(t, size.End, ts.Start)
}

func TestSpansRecomputedPerCall(t *testing.T) {
	entries := []dirfs.Entry{{Name: "a", Type: dirfs.TypeFile}}
	first := Spans(entries, 64)
	second := Spans(entries, 64)
	assert.Equal(t, first, second)
}
