package terminal_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/activityviz/pkg/terminal"
)

func TestDetectWidth(t *testing.T) {
	tests := []struct {
		name    string
		columns string
		want    int
	}{
		{name: "unset", columns: "", want: terminal.DefaultWidth},
		{name: "set", columns: "120", want: 120},
		{name: "invalid", columns: "wide", want: terminal.DefaultWidth},
		{name: "negative", columns: "-4", want: terminal.DefaultWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.columns)

			assert.Equal(t, tt.want, terminal.DetectWidth())
		})
	}
}

func TestNewConfig_NonTerminalWriter(t *testing.T) {
	t.Setenv("COLUMNS", "100")
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer

	cfg := terminal.NewConfig(&buf, terminal.ColorAuto)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 100, cfg.Width)

	cfg = terminal.NewConfig(&buf, terminal.ColorAlways)
	assert.False(t, cfg.NoColor)

	cfg = terminal.NewConfig(&buf, terminal.ColorNever)
	assert.True(t, cfg.NoColor)
}

func TestClampWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, terminal.MinWidth, terminal.ClampWidth(10))
	assert.Equal(t, terminal.MaxWidth, terminal.ClampWidth(1000))
	assert.Equal(t, 100, terminal.ClampWidth(100))
}

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want terminal.ColorMode
	}{
		{in: "", want: terminal.ColorAuto},
		{in: "AUTO", want: terminal.ColorAuto},
		{in: "always", want: terminal.ColorAlways},
		{in: " never ", want: terminal.ColorNever},
	}

	for _, tt := range tests {
		got, err := terminal.ParseColorMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := terminal.ParseColorMode("sometimes")
	require.ErrorIs(t, err, terminal.ErrUnknownColorMode)
}

func TestColorize(t *testing.T) {
	t.Parallel()

	plain := terminal.Config{NoColor: true}
	assert.Equal(t, "hello", plain.Colorize("hello", terminal.ColorGreen))

	colored := terminal.Config{}
	got := colored.Colorize("hello", terminal.ColorGreen)
	assert.Contains(t, got, "hello")
	assert.Contains(t, got, "\x1b[")

	assert.Equal(t, "hello", colored.Colorize("hello", terminal.ColorNone))
}

func TestHeat(t *testing.T) {
	t.Parallel()

	cfg := terminal.Config{NoColor: true}

	for level, glyph := range terminal.HeatGlyphs {
		assert.Equal(t, glyph, cfg.Heat(level))
	}

	assert.Equal(t, terminal.HeatGlyphs[0], cfg.Heat(-1))
	assert.Equal(t, terminal.HeatGlyphs[terminal.HeatLevels-1], cfg.Heat(99))
}

func TestDrawProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		want  string
	}{
		{value: 0, want: "░░░░░░░░░░"},
		{value: 1, want: "██████████"},
		{value: 0.7, want: "███████░░░"},
		{value: -1, want: "░░░░░░░░░░"},
		{value: 2, want: "██████████"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, terminal.DrawProgressBar(tt.value, 10), "value %v", tt.value)
	}
}

func TestDrawPercentBar(t *testing.T) {
	t.Parallel()

	got := terminal.DrawPercentBar("Jan", 0.5, "1,024", 5, 4)

	assert.Equal(t, "Jan   ██░░  50%  (1,024)", got)
}

func TestSparkline(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "▁▅█", terminal.Sparkline([]int{0, 4, 8}))
	assert.Equal(t, "▁▁▁", terminal.Sparkline([]int{0, 0, 0}))
	assert.Empty(t, terminal.Sparkline(nil))
}

func TestPadding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab   ", terminal.PadRight("ab", 5))
	assert.Equal(t, "   ab", terminal.PadLeft("ab", 5))
	assert.Equal(t, "abcdef", terminal.PadRight("abcdef", 3))
	assert.Equal(t, "█░  ", terminal.PadRight("█░", 4))
}

func TestTruncateWithEllipsis(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", terminal.TruncateWithEllipsis("short", 10))
	assert.Equal(t, "exact", terminal.TruncateWithEllipsis("exact", 5))
	assert.Equal(t, "a long...", terminal.TruncateWithEllipsis("a long sentence", 9))
	assert.Equal(t, "..", terminal.TruncateWithEllipsis("abcdef", 2))
}

func TestDrawSeparator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "───", terminal.DrawSeparator(3))
	assert.Empty(t, terminal.DrawSeparator(0))
}

func TestDrawHeader(t *testing.T) {
	t.Parallel()

	got := terminal.DrawHeader("ACTIVITY", "2024", 30)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 3)

	for _, line := range lines {
		assert.Equal(t, 30, terminal.DisplayWidth(line), line)
	}

	assert.Contains(t, lines[1], "ACTIVITY")
	assert.True(t, strings.HasSuffix(lines[1], "2024 ┃"))

	narrow := terminal.DrawHeader("ACTIVITY", "", 4)
	assert.Contains(t, narrow, "ACTIVITY")
}

func TestDrawHeader_TruncatesLongRightText(t *testing.T) {
	t.Parallel()

	got := terminal.DrawHeader("ACTIVITY", "a-very-long-organization/some-repository 2024", 30)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 3)

	for _, line := range lines {
		assert.Equal(t, 30, terminal.DisplayWidth(line), line)
	}

	assert.Contains(t, lines[1], "ACTIVITY")
	assert.True(t, strings.HasSuffix(lines[1], "... ┃"), lines[1])

	// No room for even a truncated name: the header grows instead.
	wide := terminal.DrawHeader("ACTIVITY", "octo/hello 2024", 14)
	assert.Contains(t, wide, "octo/hello 2024")
}
