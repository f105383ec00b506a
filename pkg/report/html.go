// Package report renders activity visualizations as HTML dashboards and
// terminal reports.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
	"github.com/Sumatoshi-tech/activityviz/pkg/plotpage"
)

// Rendering constants.
const (
	trendAreaOpacity = 0.25
	columnLabel      = "Jan 2"
)

// PageOptions configures BuildPage.
type PageOptions struct {
	// Title overrides the page title. Defaults to "<Name> activity <year>".
	Title string
	// Name identifies the repository or person the counts belong to.
	Name  string
	Theme plotpage.Theme
	// HideThemeToggle removes the light/dark switch from the page header.
	HideThemeToggle bool
}

// BuildPage lays out a visualization as a dashboard page: headline stats,
// the calendar heat map and the three trend charts.
func BuildPage(vis *activity.Visualization, po PageOptions) *plotpage.Page {
	theme := po.Theme
	if theme == "" {
		theme = plotpage.ThemeLight
	}

	page := plotpage.NewPage(pageTitle(vis, po), fmt.Sprintf(
		"Commit activity for %d, intensities compressed with %s scaling", vis.Year, vis.Transform)).WithTheme(theme)
	page.ShowThemeToggle = !po.HideThemeToggle

	co := plotpage.NewChartOpts(theme)

	page.Add(
		plotpage.Section{
			Title:    "Overview",
			Subtitle: "Headline numbers for the year",
			Chart:    statGrid(vis.Summary),
		},
		plotpage.Section{
			Title:    "Contribution Calendar",
			Subtitle: "One cell per day, weeks run left to right",
			Chart:    plotpage.WrapChart(plotpage.BuildHeatMap(co, CalendarHeatMap(vis.Grid))),
			Hint: plotpage.Hint{
				Title: "How to read",
				Items: []string{
					"Darker cells mean more commits on that day.",
					fmt.Sprintf("Colors use %s compression so a few busy days do not wash out the rest.", vis.Transform),
					"Blank cells fall outside the year.",
				},
			},
		},
		plotpage.Section{
			Title:    "Hour of Day",
			Subtitle: "Commits per hour, wrapping from 23 back to 0",
			Chart:    plotpage.WrapChart(trendChart(co, "Commits per hour", vis.Trends.Hourly, 0)),
		},
		plotpage.Section{
			Title:    "Day of Week",
			Subtitle: "Commits per weekday, wrapping from Sunday back to Monday",
			Chart:    plotpage.WrapChart(trendChart(co, "Commits per weekday", vis.Trends.Weekday, 1)),
		},
		plotpage.Section{
			Title:    "Month",
			Subtitle: "Commits per month",
			Chart:    plotpage.WrapChart(trendChart(co, "Commits per month", vis.Trends.Monthly, 2)),
		},
	)

	return page
}

// WriteHTML renders vis as a standalone HTML page.
func WriteHTML(w io.Writer, vis *activity.Visualization, po PageOptions) error {
	err := BuildPage(vis, po).Render(w)
	if err != nil {
		return fmt.Errorf("render html report: %w", err)
	}

	return nil
}

// CalendarHeatMap converts a calendar grid to heat map cells. Columns are
// labeled with the first in-year date they hold; padding cells are omitted.
func CalendarHeatMap(grid *activity.CalendarGrid) plotpage.HeatMap {
	xLabels := make([]string, grid.Columns)
	for col := range grid.Columns {
		first := max(col*activity.DaysPerWeek-grid.FirstWeekday, 0)
		xLabels[col] = activity.DateOf(grid.Year, first).Format(columnLabel)
	}

	cells := make([]plotpage.HeatCell, 0, grid.DaysInYear)

	for row := range grid.Rows {
		for col := range grid.Columns {
			c := grid.Cell(row, col)
			if c.Empty {
				continue
			}

			cells = append(cells, plotpage.HeatCell{
				X:     col,
				Y:     row,
				Value: c.Intensity,
				Name:  fmt.Sprintf("%s: %s", c.Date, commitsLabel(c.Count)),
			})
		}
	}

	return plotpage.HeatMap{
		Name:    "Commits",
		XLabels: xLabels,
		YLabels: activity.WeekdayLabels,
		Cells:   cells,
	}
}

func trendChart(co *plotpage.ChartOpts, name string, s activity.Series, colorIdx int) plotpage.Renderable {
	return plotpage.BuildLineChart(co, s.Labels, []plotpage.LineSeries{{
		Name:        name,
		Data:        s.Values,
		Color:       co.SeriesColor(colorIdx),
		Smooth:      true,
		AreaOpacity: trendAreaOpacity,
	}}, "Commits")
}

func statGrid(s activity.Summary) *plotpage.StatGrid {
	streakDetail := ""
	if s.LongestStreakFrom != "" {
		streakDetail = "from " + s.LongestStreakFrom
	}

	return plotpage.NewStatGrid(
		plotpage.Stat{Label: "Total commits", Value: humanize.Comma(int64(s.Total))},
		plotpage.Stat{
			Label:  "Active days",
			Value:  humanize.Comma(int64(s.ActiveDays)),
			Detail: humanize.FormatFloat("#,###.##", s.AveragePerDay) + " commits per day",
		},
		plotpage.Stat{Label: "Longest streak", Value: daysLabel(s.LongestStreak), Detail: streakDetail},
		plotpage.Stat{Label: "Longest break", Value: daysLabel(s.LongestBreak)},
		plotpage.Stat{Label: "Busiest day", Value: humanize.Comma(int64(s.MaxPerDay)), Detail: s.BusiestDate},
		plotpage.Stat{
			Label:  "Peak times",
			Value:  orDash(s.MostActiveWeekday),
			Detail: peakDetail(s),
		},
	)
}

func pageTitle(vis *activity.Visualization, po PageOptions) string {
	if po.Title != "" {
		return po.Title
	}

	if po.Name != "" {
		return fmt.Sprintf("%s activity %d", po.Name, vis.Year)
	}

	return fmt.Sprintf("Activity %d", vis.Year)
}

func peakDetail(s activity.Summary) string {
	if s.MostActiveHour == "" && s.MostActiveMonth == "" {
		return ""
	}

	return fmt.Sprintf("hour %s, month %s", orDash(s.MostActiveHour), orDash(s.MostActiveMonth))
}

func commitsLabel(n int) string {
	if n == 1 {
		return "1 commit"
	}

	return humanize.Comma(int64(n)) + " commits"
}

func daysLabel(n int) string {
	if n == 1 {
		return "1 day"
	}

	return strconv.Itoa(n) + " days"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
