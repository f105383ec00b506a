package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
	"github.com/Sumatoshi-tech/activityviz/pkg/alg/stats"
	"github.com/Sumatoshi-tech/activityviz/pkg/terminal"
)

// Terminal layout constants.
const (
	headerTitle    = "COMMIT ACTIVITY"
	rowLabelWidth  = 4
	barLabelWidth  = 6
	minBarWidth    = 10
	maxBarWidth    = 40
	barReserve     = 24
	wideCellGlyphs = 2
)

// TextOptions configures WriteText.
type TextOptions struct {
	// Name is shown in the report header next to the year.
	Name   string
	Config terminal.Config
}

// Level maps an intensity in [0,1] to one of levels shades. Level 0 is
// reserved for days without activity; any positive intensity maps to at
// least level 1 and intensity 1 maps to levels-1.
func Level(intensity float64, levels int) int {
	if intensity <= 0 || levels < 2 {
		return 0
	}

	level := int(math.Ceil(intensity * float64(levels-1)))

	return max(1, min(level, levels-1))
}

// WriteText writes a terminal report: the calendar, a summary table and the
// trend series.
func WriteText(w io.Writer, vis *activity.Visualization, to TextOptions) error {
	cfg := to.Config
	if cfg.Width <= 0 {
		cfg.Width = terminal.DefaultWidth
	}

	var sb strings.Builder

	right := fmt.Sprint(vis.Year)
	if to.Name != "" {
		right = to.Name + " " + right
	}

	sb.WriteString(terminal.DrawHeader(headerTitle, right, cfg.Width))
	sb.WriteString("\n\n")

	renderCalendarSection(&sb, cfg, vis.Grid)
	renderSummarySection(&sb, cfg, vis.Summary)
	renderHourlySection(&sb, cfg, vis.Trends.Hourly)
	renderDistributionSection(&sb, cfg, "Day of Week", vis.Trends.Weekday, true)
	renderDistributionSection(&sb, cfg, "Month", vis.Trends.Monthly, false)

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("write text report: %w", err)
	}

	return nil
}

func renderSectionTitle(sb *strings.Builder, cfg terminal.Config, title string) {
	sb.WriteString(cfg.Colorize(fmt.Sprintf("  %s\n", title), terminal.ColorBlue))
	sb.WriteString("  ")
	sb.WriteString(terminal.DrawSeparator(cfg.Width - 2))
	sb.WriteString("\n")
}

func renderCalendarSection(sb *strings.Builder, cfg terminal.Config, grid *activity.CalendarGrid) {
	renderSectionTitle(sb, cfg, "Calendar")

	cellWidth := 1
	if rowLabelWidth+2+grid.Columns*wideCellGlyphs <= cfg.Width {
		cellWidth = wideCellGlyphs
	}

	sb.WriteString("  ")
	sb.WriteString(monthHeader(grid, cellWidth))
	sb.WriteString("\n")

	for row := range grid.Rows {
		sb.WriteString("  ")
		sb.WriteString(terminal.PadRight(activity.WeekdayLabels[row], rowLabelWidth))

		for col := range grid.Columns {
			c := grid.Cell(row, col)

			glyph := " "
			if !c.Empty {
				glyph = cfg.Heat(Level(c.Intensity, terminal.HeatLevels))
			}

			sb.WriteString(glyph)

			if cellWidth > 1 {
				sb.WriteString(" ")
			}
		}

		sb.WriteString("\n")
	}

	legend := make([]string, 0, terminal.HeatLevels)
	for level := range terminal.HeatLevels {
		legend = append(legend, cfg.Heat(level))
	}

	fmt.Fprintf(sb, "  %sLess %s More\n\n", strings.Repeat(" ", rowLabelWidth), strings.Join(legend, " "))
}

// monthHeader places each month label above the column holding its first
// day, skipping labels that would overlap the previous one.
func monthHeader(grid *activity.CalendarGrid, cellWidth int) string {
	line := []rune(strings.Repeat(" ", rowLabelWidth+grid.Columns*cellWidth))
	nextFree := 0

	for m, col := range grid.MonthColumns() {
		pos := rowLabelWidth + col*cellWidth
		label := []rune(activity.MonthLabels[m])

		if pos < nextFree || pos+len(label) > len(line) {
			continue
		}

		copy(line[pos:], label)
		nextFree = pos + len(label) + 1
	}

	return strings.TrimRight(string(line), " ")
}

func renderSummarySection(sb *strings.Builder, cfg terminal.Config, s activity.Summary) {
	renderSectionTitle(sb, cfg, "Summary")

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false

	streak := daysLabel(s.LongestStreak)
	if s.LongestStreakFrom != "" {
		streak += " from " + s.LongestStreakFrom
	}

	busiest := humanize.Comma(int64(s.MaxPerDay))
	if s.BusiestDate != "" {
		busiest += " on " + s.BusiestDate
	}

	tbl.AppendRows([]table.Row{
		{"Total commits", humanize.Comma(int64(s.Total))},
		{"Active days", humanize.Comma(int64(s.ActiveDays))},
		{"Average per day", humanize.FormatFloat("#,###.##", s.AveragePerDay)},
		{"Longest streak", streak},
		{"Longest break", daysLabel(s.LongestBreak)},
		{"Busiest day", busiest},
		{"Most active hour", orDash(s.MostActiveHour)},
		{"Most active weekday", orDash(s.MostActiveWeekday)},
		{"Most active month", orDash(s.MostActiveMonth)},
	})

	for line := range strings.SplitSeq(tbl.Render(), "\n") {
		fmt.Fprintf(sb, "  %s\n", line)
	}

	sb.WriteString("\n")
}

func renderHourlySection(sb *strings.Builder, cfg terminal.Config, s activity.Series) {
	renderSectionTitle(sb, cfg, "Hour of Day")

	values, labels := openCycle(s)
	if len(values) == 0 {
		sb.WriteString("\n")

		return
	}

	fmt.Fprintf(sb, "  %s\n", cfg.Colorize(terminal.Sparkline(values), terminal.ColorGreen))

	gap := max(len(values)-terminal.DisplayWidth(labels[0])-terminal.DisplayWidth(labels[len(labels)-1]), 1)
	fmt.Fprintf(sb, "  %s%s%s\n\n",
		cfg.Colorize(labels[0], terminal.ColorGray),
		strings.Repeat(" ", gap),
		cfg.Colorize(labels[len(labels)-1], terminal.ColorGray))
}

func renderDistributionSection(sb *strings.Builder, cfg terminal.Config, title string, s activity.Series, cyclic bool) {
	renderSectionTitle(sb, cfg, title)

	values, labels := s.Values, s.Labels
	if cyclic {
		values, labels = openCycle(s)
	}

	total := stats.Sum(values)

	barWidth := max(minBarWidth, min(cfg.Width-barReserve, maxBarWidth))

	for i, v := range values {
		pct := 0.0
		if total > 0 {
			pct = float64(v) / float64(total)
		}

		bar := terminal.DrawPercentBar("  "+labels[i], pct, humanize.Comma(int64(v)), barLabelWidth, barWidth)
		sb.WriteString(cfg.Colorize(bar, terminal.ColorGreen))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
}

// openCycle drops the closing point of a closed cyclic series.
func openCycle(s activity.Series) ([]int, []string) {
	n := s.Len()
	if n < 2 {
		return s.Values, s.Labels
	}

	return s.Values[:n-1], s.Labels[:n-1]
}
