package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
	"github.com/Sumatoshi-tech/activityviz/pkg/plotpage"
	"github.com/Sumatoshi-tech/activityviz/pkg/report"
	"github.com/Sumatoshi-tech/activityviz/pkg/terminal"
)

func sampleVisualization(t *testing.T) *activity.Visualization {
	t.Helper()

	daily := make([]int, 365)
	daily[10], daily[11], daily[12] = 1, 1, 1
	daily[40] = 5

	hourly := make([]int, 24)
	hourly[14] = 6
	hourly[22] = 2

	vis, err := activity.New(activity.Options{}).Visualize(activity.Input{
		Year:    2023,
		Daily:   daily,
		Hourly:  hourly,
		Weekday: []int{1, 0, 0, 5, 2, 0, 0},
		Monthly: []int{3, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	return vis
}

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		intensity float64
		want      int
	}{
		{intensity: 0, want: 0},
		{intensity: -0.5, want: 0},
		{intensity: 0.01, want: 1},
		{intensity: 0.25, want: 1},
		{intensity: 0.26, want: 2},
		{intensity: 0.5, want: 2},
		{intensity: 0.99, want: 4},
		{intensity: 1, want: 4},
		{intensity: 3, want: 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, report.Level(tt.intensity, 5), "intensity %v", tt.intensity)
	}

	assert.Zero(t, report.Level(1, 1))
}

func TestCalendarHeatMap(t *testing.T) {
	t.Parallel()

	vis := sampleVisualization(t)
	hm := report.CalendarHeatMap(vis.Grid)

	assert.Len(t, hm.Cells, 365)
	assert.Len(t, hm.XLabels, vis.Grid.Columns)
	assert.Equal(t, "Jan 1", hm.XLabels[0])
	assert.Equal(t, "Jan 2", hm.XLabels[1])
	assert.Equal(t, activity.WeekdayLabels, hm.YLabels)

	row, col, ok := vis.Grid.Locate(40)
	require.True(t, ok)

	var peak *plotpage.HeatCell

	for i := range hm.Cells {
		if hm.Cells[i].X == col && hm.Cells[i].Y == row {
			peak = &hm.Cells[i]
		}
	}

	require.NotNil(t, peak)
	assert.InDelta(t, 1.0, peak.Value, 1e-12)
	assert.Equal(t, "2023-02-10: 5 commits", peak.Name)
}

func TestBuildPage(t *testing.T) {
	t.Parallel()

	vis := sampleVisualization(t)

	page := report.BuildPage(vis, report.PageOptions{})
	assert.Equal(t, "Activity 2023", page.Title)
	assert.Equal(t, plotpage.ThemeLight, page.Theme)
	assert.True(t, page.ShowThemeToggle)
	require.Len(t, page.Sections, 5)

	named := report.BuildPage(vis, report.PageOptions{Name: "octo", Theme: plotpage.ThemeDark, HideThemeToggle: true})
	assert.Equal(t, "octo activity 2023", named.Title)
	assert.Equal(t, plotpage.ThemeDark, named.Theme)
	assert.False(t, named.ShowThemeToggle)

	titled := report.BuildPage(vis, report.PageOptions{Name: "octo", Title: "Custom"})
	assert.Equal(t, "Custom", titled.Title)
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.WriteHTML(&buf, sampleVisualization(t), report.PageOptions{Name: "octo"}))

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "octo activity 2023")
	assert.Contains(t, html, "Contribution Calendar")
	assert.Contains(t, html, "Hour of Day")
	assert.Contains(t, html, "2023-02-10: 5 commits")
	assert.Contains(t, html, "Total commits")
	assert.NotContains(t, html, `<div class="container">`)
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := report.WriteText(&buf, sampleVisualization(t), report.TextOptions{
		Name:   "octo",
		Config: terminal.Config{Width: 120, NoColor: true},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "COMMIT ACTIVITY")
	assert.Contains(t, out, "octo 2023")
	assert.Contains(t, out, "Total commits")
	assert.Contains(t, out, "3 days from 2023-01-11")
	assert.Contains(t, out, "5 on 2023-02-10")
	assert.NotContains(t, out, "\x1b[")

	lines := strings.Split(out, "\n")

	legend := -1

	for i, line := range lines {
		if strings.Contains(line, "Less") {
			legend = i

			break
		}
	}

	require.GreaterOrEqual(t, legend, 8)

	header := lines[legend-8]
	assert.Contains(t, header, "Jan")
	assert.Contains(t, header, "Dec")

	glyphs := map[rune]int{}

	for i, label := range activity.WeekdayLabels {
		row := lines[legend-7+i]
		require.True(t, strings.HasPrefix(row, "  "+label), row)

		for _, r := range row[2+len(label):] {
			if r != ' ' {
				glyphs[r]++
			}
		}
	}

	assert.Equal(t, 361, glyphs['·'])
	assert.Equal(t, 3, glyphs['▒'])
	assert.Equal(t, 1, glyphs['█'])
}

func TestWriteText_NarrowUsesSingleCells(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.WriteText(&buf, sampleVisualization(t), report.TextOptions{
		Config: terminal.Config{Width: 70, NoColor: true},
	}))

	for line := range strings.SplitSeq(buf.String(), "\n") {
		if strings.HasPrefix(line, "  Mon ") && strings.Contains(line, "·") {
			assert.NotContains(t, line, "· ·")
		}
	}
}

func TestWriteText_Colored(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.WriteText(&buf, sampleVisualization(t), report.TextOptions{
		Config: terminal.Config{Width: 80},
	}))

	assert.Contains(t, buf.String(), "\x1b[")
}
