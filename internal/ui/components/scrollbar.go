package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/ui"
)

// RenderScrollbar returns a vertical scrollbar track of the given height.
// The thumb is proportional to the visible portion of the listing and
// positioned by the scroll percentage.
//
// Returns an empty string if the whole listing fits (no scrolling needed).
func RenderScrollbar(styles ui.Styles, height, totalLines, visibleH int, scrollPct float64) string {
	if totalLines <= visibleH || height < 1 {
		return ""
	}

	t := styles.Theme

	thumbSize := int(float64(height) * float64(visibleH) / float64(totalLines))
	if thumbSize < 1 {
		thumbSize = 1
	}
	if thumbSize > height {
		thumbSize = height
	}

	maxOffset := height - thumbSize
	thumbStart := int(scrollPct * float64(maxOffset))
	if thumbStart < 0 {
		thumbStart = 0
	}
	if thumbStart > maxOffset {
		thumbStart = maxOffset
	}

	thumbStyle := lipgloss.NewStyle().Foreground(t.Primary)
	trackStyle := lipgloss.NewStyle().Foreground(t.Border)

	var b strings.Builder
	b.Grow(height * 4)
	for i := 0; i < height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= thumbStart && i < thumbStart+thumbSize {
			b.WriteString(thumbStyle.Render("█"))
		} else {
			b.WriteString(trackStyle.Render("░"))
		}
	}
	return b.String()
}
