package plotpage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/activityviz/pkg/levenshtein"
)

// Theme represents a color theme for pages and charts.
type Theme string

const (
	// ThemeLight is the light color theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color theme.
	ThemeDark Theme = "dark"
)

// ErrUnknownTheme is returned by ParseTheme.
var ErrUnknownTheme = errors.New("unknown theme")

// ParseTheme resolves a theme name. The empty string selects ThemeLight.
func ParseTheme(name string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(name))) {
	case "", ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: %q%s", ErrUnknownTheme, name, levenshtein.Hint(name, string(ThemeLight), string(ThemeDark)))
	}
}

// ThemeConfig holds theme-specific styling values.
type ThemeConfig struct {
	Background string
	Surface    string
	Border     string

	TextPrimary   string
	TextSecondary string
	TextMuted     string

	Accent string

	ChartBackground string
	ChartGrid       string
	ChartAxis       string
	ChartText       string
	ChartTextMuted  string

	// HeatScale runs from "no activity" to "peak activity".
	HeatScale []string

	// Series are the line colors, in assignment order.
	Series []string
}

// GetThemeConfig returns the configuration for a theme. Unknown themes fall
// back to light.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

var lightTheme = ThemeConfig{
	Background: "#fafaf9", // stone-50.
	Surface:    "#ffffff",
	Border:     "#e7e5e4", // stone-200.

	TextPrimary:   "#1c1917", // stone-900.
	TextSecondary: "#44403c", // stone-700.
	TextMuted:     "#78716c", // stone-500.

	Accent: "#216e39",

	ChartBackground: "transparent",
	ChartGrid:       "#e7e5e4",
	ChartAxis:       "#a8a29e", // stone-400.
	ChartText:       "#44403c",
	ChartTextMuted:  "#78716c",

	HeatScale: []string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"},
	Series:    []string{"#30a14e", "#0369a1", "#a16207"},
}

var darkTheme = ThemeConfig{
	Background: "#0c0a09", // stone-950.
	Surface:    "#1c1917", // stone-900.
	Border:     "#44403c", // stone-700.

	TextPrimary:   "#fafaf9",
	TextSecondary: "#d6d3d1", // stone-300.
	TextMuted:     "#a8a29e",

	Accent: "#39d353",

	ChartBackground: "transparent",
	ChartGrid:       "#44403c",
	ChartAxis:       "#57534e", // stone-600.
	ChartText:       "#d6d3d1",
	ChartTextMuted:  "#a8a29e",

	HeatScale: []string{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"},
	Series:    []string{"#39d353", "#38bdf8", "#fbbf24"},
}
