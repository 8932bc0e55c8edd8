package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// spliceOverlay replaces a rectangular region of a rendered view with
// overlay content whose top-left corner lands at (anchorX, anchorY).
// Truncation is ANSI-aware, so escape sequences in the view survive on
// both sides of the overlay. The view is padded with blank lines and
// spaces when the overlay reaches past it.
func spliceOverlay(view string, overlay string, anchorX, anchorY int) string {
	if overlay == "" {
		return view
	}
	anchorX = max(anchorX, 0)
	anchorY = max(anchorY, 0)

	viewLines := strings.Split(view, "\n")
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := lipgloss.Width(overlay)

	for len(viewLines) < anchorY+len(overlayLines) {
		viewLines = append(viewLines, "")
	}

	for index, overlayLine := range overlayLines {
		viewLine := viewLines[anchorY+index]
		viewLineWidth := ansi.StringWidth(viewLine)

		var result strings.Builder
		if viewLineWidth < anchorX {
			result.WriteString(viewLine)
			result.WriteString(strings.Repeat(" ", anchorX-viewLineWidth))
		} else if anchorX > 0 {
			result.WriteString(ansi.Truncate(viewLine, anchorX, ""))
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		// Lines of the overlay may be narrower than its widest one.
		result.WriteString(strings.Repeat(" ", max(0, overlayWidth-ansi.StringWidth(overlayLine))))
		result.WriteString("\x1b[0m")

		if suffixStart := anchorX + overlayWidth; suffixStart < viewLineWidth {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[anchorY+index] = result.String()
	}

	return strings.Join(viewLines, "\n")
}
