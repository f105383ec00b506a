package terminal

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis is appended to truncated strings.
const Ellipsis = "..."

// DisplayWidth counts runes, which matches the cell width of the box and
// block glyphs used by this package.
func DisplayWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// TruncateWithEllipsis truncates s to maxWidth runes, adding "..." if truncated.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if DisplayWidth(s) <= maxWidth {
		return s
	}

	if maxWidth <= len(Ellipsis) {
		return strings.Repeat(".", max(maxWidth, 0))
	}

	runes := []rune(s)

	return string(runes[:maxWidth-len(Ellipsis)]) + Ellipsis
}

// PadRight pads s with spaces on the right to reach width.
func PadRight(s string, width int) string {
	n := DisplayWidth(s)
	if n >= width {
		return s
	}

	return s + strings.Repeat(" ", width-n)
}

// PadLeft pads s with spaces on the left to reach width.
func PadLeft(s string, width int) string {
	n := DisplayWidth(s)
	if n >= width {
		return s
	}

	return strings.Repeat(" ", width-n) + s
}
