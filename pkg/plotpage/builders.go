package plotpage

import (
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth       = "100%"
	lineChartHeight  = "320px"
	heatMapRowHeight = 22
	heatMapPadding   = 70
)

// LineSeries is one line on a line chart.
type LineSeries struct {
	Name        string
	Data        []int
	Color       string  // Optional, uses the theme palette if empty.
	Smooth      bool    // Optional, draws a smoothed curve.
	AreaOpacity float32 // Optional, fills the area under the line.
}

// BuildLineChart builds a category line chart. Each series must have one
// value per label. If cOpts is nil, DefaultChartOpts() is used.
func BuildLineChart(cOpts *ChartOpts, labels []string, series []LineSeries, yAxisLabel string) *charts.Line {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(chartWidth, lineChartHeight)),
		charts.WithTooltipOpts(cOpts.Tooltip("axis")),
		charts.WithGridOpts(cOpts.Grid()),
		charts.WithXAxisOpts(cOpts.CategoryXAxis("", labels)),
		charts.WithYAxisOpts(cOpts.YAxis(yAxisLabel)),
	)

	line.SetXAxis(labels)

	for i, s := range series {
		lineData := make([]opts.LineData, len(s.Data))
		for j, v := range s.Data {
			lineData[j] = opts.LineData{Value: v}
		}

		color := s.Color
		if color == "" {
			color = cOpts.SeriesColor(i)
		}

		seriesOpts := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: color}),
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(s.Smooth)}),
		}

		if s.AreaOpacity > 0 {
			seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(s.AreaOpacity)}))
		}

		line.AddSeries(s.Name, lineData, seriesOpts...)
	}

	return line
}

// HeatCell is one colored cell of a category heat map.
type HeatCell struct {
	X, Y  int
	Value float64
	Name  string // Tooltip label.
}

// HeatMap describes a category heat map: columns along x, rows along y.
// Values are expected in [0,1].
type HeatMap struct {
	Name    string
	XLabels []string
	YLabels []string
	Cells   []HeatCell
}

// BuildHeatMap builds a category heat map colored by the theme heat scale.
// Rows are drawn top to bottom in YLabels order. Positions without a cell
// are left blank. If cOpts is nil, DefaultChartOpts() is used.
func BuildHeatMap(cOpts *ChartOpts, hm HeatMap) *charts.HeatMap {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	height := len(hm.YLabels)*heatMapRowHeight + heatMapPadding

	chart := charts.NewHeatMap()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init(chartWidth, px(height))),
		charts.WithTooltipOpts(cOpts.Tooltip("item")),
		charts.WithGridOpts(opts.Grid{Top: "30", Bottom: "10", Left: "40", Right: "10", ContainLabel: opts.Bool(true)}),
		charts.WithXAxisOpts(cOpts.CategoryXAxis("", hm.XLabels)),
		charts.WithYAxisOpts(cOpts.CategoryYAxis(hm.YLabels, true)),
		charts.WithVisualMapOpts(cOpts.HeatVisualMap(0, 1)),
	)

	data := make([]opts.HeatMapData, 0, len(hm.Cells))
	for _, c := range hm.Cells {
		data = append(data, opts.HeatMapData{Name: c.Name, Value: []any{c.X, c.Y, c.Value}})
	}

	chart.AddSeries(hm.Name, data, charts.WithItemStyleOpts(opts.ItemStyle{
		BorderColor: cOpts.theme.Surface,
		BorderWidth: 2,
	}))

	return chart
}

func px(n int) string {
	return strconv.Itoa(n) + "px"
}
