package terminal

import (
	"fmt"
	"math"
	"strings"
)

// Bar characters.
const (
	ProgressFilled = "█"
	ProgressEmpty  = "░"
)

// SparklineBlocks are the eight sparkline glyphs, lowest first.
const SparklineBlocks = "▁▂▃▄▅▆▇█"

// PercentMultiplier converts 0-1 to 0-100.
const PercentMultiplier = 100

// DrawProgressBar draws a bar of the given width. Value is clamped to [0, 1].
// Example: DrawProgressBar(0.7, 10) returns "███████░░░".
func DrawProgressBar(value float64, width int) string {
	value = max(0, min(value, 1))

	filled := int(math.Round(value * float64(width)))
	empty := width - filled

	return strings.Repeat(ProgressFilled, filled) + strings.Repeat(ProgressEmpty, empty)
}

// DrawPercentBar draws a labeled percentage bar.
// Example: "Jan   ████████████████░░░░  68%  (106)".
func DrawPercentBar(label string, percent float64, count string, labelWidth, barWidth int) string {
	paddedLabel := PadRight(label, labelWidth)
	bar := DrawProgressBar(percent, barWidth)
	pctValue := int(math.Round(percent * PercentMultiplier))

	return fmt.Sprintf("%s %s %3d%%  (%s)", paddedLabel, bar, pctValue, count)
}

// Sparkline draws one block per value, scaled to the largest value.
// An all-zero series draws the lowest block throughout.
func Sparkline(values []int) string {
	blocks := []rune(SparklineBlocks)
	levels := len(blocks)

	peak := 0
	for _, v := range values {
		peak = max(peak, v)
	}

	var sb strings.Builder

	for _, v := range values {
		idx := 0
		if peak > 0 {
			score := float64(v) / float64(peak)
			idx = max(int(math.Min(score*float64(levels), float64(levels-1))), 0)
		}

		sb.WriteRune(blocks[idx])
	}

	return sb.String()
}
