package terminal

import (
	"github.com/fatih/color"
)

// Color names a terminal color.
type Color int

// Color constants.
const (
	ColorNone Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorRed
	ColorBlue
	ColorGray
	ColorBold
)

var attributes = map[Color][]color.Attribute{
	ColorGreen:       {color.FgGreen},
	ColorBrightGreen: {color.FgHiGreen, color.Bold},
	ColorYellow:      {color.FgYellow},
	ColorRed:         {color.FgRed},
	ColorBlue:        {color.FgBlue, color.Bold},
	ColorGray:        {color.FgHiBlack},
	ColorBold:        {color.Bold},
}

// Colorize applies c to text. If NoColor is set, text is returned unchanged.
func (cfg Config) Colorize(text string, c Color) string {
	attrs, ok := attributes[c]
	if cfg.NoColor || !ok {
		return text
	}

	painter := color.New(attrs...)
	painter.EnableColor()

	return painter.Sprint(text)
}

// Heat shades, from no activity to peak activity.
var (
	HeatGlyphs = []string{"·", "░", "▒", "▓", "█"}
	heatColors = []Color{ColorGray, ColorGreen, ColorGreen, ColorBrightGreen, ColorBrightGreen}
)

// HeatLevels is the number of heat shades, including the zero shade.
const HeatLevels = 5

// Heat renders one calendar cell for a shade level in [0, HeatLevels).
func (cfg Config) Heat(level int) string {
	level = max(0, min(level, HeatLevels-1))

	return cfg.Colorize(HeatGlyphs[level], heatColors[level])
}
