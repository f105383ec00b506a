package plotpage_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/activityviz/pkg/plotpage"
)

func TestPageRender_LightDefault(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Activity 2024", "Commits per day")
	page.Add(plotpage.Section{
		Title:    "Calendar",
		Subtitle: "One cell per day",
		Hint:     plotpage.Hint{Title: "Reading", Items: []string{"Darker is busier"}},
	})

	var buf bytes.Buffer

	require.NoError(t, page.Render(&buf))

	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.NotContains(t, html, `class="dark"`)
	assert.Contains(t, html, "echarts.min.js")
	assert.Contains(t, html, "Activity 2024")
	assert.Contains(t, html, "Commits per day")
	assert.Contains(t, html, "Calendar")
	assert.Contains(t, html, "Darker is busier")
	assert.Contains(t, html, "theme-toggle")
}

func TestPageRender_Dark(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Dark", "").WithTheme(plotpage.ThemeDark)
	page.ShowThemeToggle = false

	var buf bytes.Buffer

	require.NoError(t, page.Render(&buf))

	assert.Contains(t, buf.String(), `class="dark"`)
	assert.Contains(t, buf.String(), plotpage.GetThemeConfig(plotpage.ThemeDark).Background)
	assert.NotContains(t, buf.String(), `id="theme-toggle"`)
}

func TestPageRender_EscapesText(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("<script>alert(1)</script>", "")

	var buf bytes.Buffer

	require.NoError(t, page.Render(&buf))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}

type failingChart struct{}

func (failingChart) Render(io.Writer) error { return errors.New("broken") }

func TestPageRender_ChartError(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Broken", "")
	page.Add(plotpage.Section{Title: "Bad", Chart: failingChart{}})

	err := page.Render(io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestWrapChart_StripsPageShell(t *testing.T) {
	t.Parallel()

	chart := plotpage.BuildLineChart(nil, []string{"a", "b"}, []plotpage.LineSeries{{Name: "s", Data: []int{1, 2}}}, "")

	var buf bytes.Buffer

	require.NoError(t, plotpage.WrapChart(chart).Render(&buf))

	html := buf.String()

	assert.Contains(t, html, `class="echart-box"`)
	assert.Contains(t, html, "echarts.init")
	assert.NotContains(t, html, "<!DOCTYPE")
	assert.NotContains(t, html, "<head>")
	assert.NotContains(t, html, "<style>")
}

func TestStatGrid(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	grid := plotpage.NewStatGrid(
		plotpage.Stat{Label: "Total", Value: "1,204"},
		plotpage.Stat{Label: "Longest streak", Value: "12 days", Detail: "from 2024-03-02"},
	)

	require.NoError(t, grid.Render(&buf))

	assert.Contains(t, buf.String(), "1,204")
	assert.Contains(t, buf.String(), "from 2024-03-02")

	buf.Reset()
	require.NoError(t, plotpage.NewStatGrid().Render(&buf))
	assert.Empty(t, buf.String())
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	theme, err := plotpage.ParseTheme("")
	require.NoError(t, err)
	assert.Equal(t, plotpage.ThemeLight, theme)

	theme, err = plotpage.ParseTheme("Dark")
	require.NoError(t, err)
	assert.Equal(t, plotpage.ThemeDark, theme)

	_, err = plotpage.ParseTheme("sepia")
	require.ErrorIs(t, err, plotpage.ErrUnknownTheme)

	_, err = plotpage.ParseTheme("drak")
	require.ErrorIs(t, err, plotpage.ErrUnknownTheme)
	assert.Contains(t, err.Error(), `did you mean "dark"?`)
}
