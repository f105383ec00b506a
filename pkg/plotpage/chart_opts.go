package plotpage

import (
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartOpts provides chart options styled for one theme.
type ChartOpts struct {
	theme ThemeConfig
}

// NewChartOpts creates ChartOpts for the given theme.
func NewChartOpts(theme Theme) *ChartOpts {
	return &ChartOpts{theme: GetThemeConfig(theme)}
}

// DefaultChartOpts returns light-theme chart options.
func DefaultChartOpts() *ChartOpts {
	return NewChartOpts(ThemeLight)
}

func (c *ChartOpts) Init(width, height string) opts.Initialization {
	return opts.Initialization{
		Width:           width,
		Height:          height,
		BackgroundColor: c.theme.ChartBackground,
	}
}

func (c *ChartOpts) Title(title, subtitle string) opts.Title {
	return opts.Title{
		Title:         title,
		Subtitle:      subtitle,
		Left:          "center",
		TitleStyle:    &opts.TextStyle{Color: c.theme.ChartText},
		SubtitleStyle: &opts.TextStyle{Color: c.theme.ChartTextMuted},
	}
}

// CategoryXAxis returns a category x-axis over labels.
func (c *ChartOpts) CategoryXAxis(name string, labels []string) opts.XAxis {
	return opts.XAxis{
		Name:      name,
		Type:      "category",
		Data:      labels,
		AxisLabel: &opts.AxisLabel{Color: c.theme.ChartTextMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
	}
}

func (c *ChartOpts) YAxis(name string) opts.YAxis {
	return opts.YAxis{
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: c.theme.ChartTextMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(true),
			LineStyle: &opts.LineStyle{Color: c.theme.ChartGrid},
		},
	}
}

// CategoryYAxis returns a category y-axis over labels. Inverse puts the
// first label at the top.
func (c *ChartOpts) CategoryYAxis(labels []string, inverse bool) opts.YAxis {
	return opts.YAxis{
		Type:      "category",
		Data:      labels,
		Inverse:   opts.Bool(inverse),
		AxisLabel: &opts.AxisLabel{Color: c.theme.ChartTextMuted},
		AxisLine:  &opts.AxisLine{Show: opts.Bool(false)},
		SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
	}
}

func (c *ChartOpts) Grid() opts.Grid {
	return opts.Grid{
		Top:          "15%",
		Bottom:       "10%",
		Left:         "4%",
		Right:        "4%",
		ContainLabel: opts.Bool(true),
	}
}

func (c *ChartOpts) Tooltip(trigger string) opts.Tooltip {
	return opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}
}

// HeatVisualMap maps values in [minVal,maxVal] onto the theme heat scale.
func (c *ChartOpts) HeatVisualMap(minVal, maxVal float32) opts.VisualMap {
	return opts.VisualMap{
		Show:    opts.Bool(false),
		Min:     minVal,
		Max:     maxVal,
		InRange: &opts.VisualMapInRange{Color: c.theme.HeatScale},
	}
}

// SeriesColor returns the i-th line color, cycling through the palette.
func (c *ChartOpts) SeriesColor(i int) string {
	return c.theme.Series[i%len(c.theme.Series)]
}
