package activity

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/activityviz/pkg/levenshtein"
)

// HourLabelStyle selects how hour-of-day axis labels are written.
type HourLabelStyle int

const (
	// HourLabelsNumeric writes hours as "0".."23". It is the default.
	HourLabelsNumeric HourLabelStyle = iota
	// HourLabelsClock writes hours as "00:00".."23:00".
	HourLabelsClock
)

// ParseHourLabelStyle resolves a label style name. The empty string selects the default.
func ParseHourLabelStyle(name string) (HourLabelStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "numeric":
		return HourLabelsNumeric, nil
	case "clock", "time":
		return HourLabelsClock, nil
	default:
		return 0, fmt.Errorf("%w: %q%s", ErrUnknownHourLabelStyle, name, levenshtein.Hint(name, "numeric", "clock"))
	}
}

// String returns the configuration name of the style.
func (s HourLabelStyle) String() string {
	if s == HourLabelsClock {
		return "clock"
	}

	return "numeric"
}

// WeekdayLabels are the Monday-first weekday names.
var WeekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MonthLabels are the month names, January first.
var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// HourLabels returns the 24 hour-of-day labels in the given style.
func HourLabels(style HourLabelStyle) []string {
	labels := make([]string, HoursPerDay)

	for h := range HoursPerDay {
		if style == HourLabelsClock {
			labels[h] = fmt.Sprintf("%02d:00", h)
		} else {
			labels[h] = strconv.Itoa(h)
		}
	}

	return labels
}

// Series is a {labels, values} pair ready for a line-chart renderer.
type Series struct {
	Labels []string `json:"labels" toml:"labels" yaml:"labels"`
	Values []int    `json:"values" toml:"values" yaml:"values"`
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.Values)
}

// CloseSeries returns a copy of s with its first point repeated at the end,
// so a line chart of a cyclic quantity loops back to its start. Empty series
// are returned unchanged.
func CloseSeries(s Series) Series {
	out := Series{
		Labels: slices.Clone(s.Labels),
		Values: slices.Clone(s.Values),
	}

	if len(out.Values) > 0 {
		out.Values = append(out.Values, out.Values[0])
	}

	if len(out.Labels) > 0 {
		out.Labels = append(out.Labels, out.Labels[0])
	}

	return out
}

// TrendSeries holds the three trend charts. Hourly and Weekday are closed;
// Monthly is acyclic and kept as given.
type TrendSeries struct {
	Hourly  Series `json:"hourly"  toml:"hourly"  yaml:"hourly"`
	Weekday Series `json:"weekday" toml:"weekday" yaml:"weekday"`
	Monthly Series `json:"monthly" toml:"monthly" yaml:"monthly"`
}

// PrepareTrendSeries validates the three series and returns them paired with
// their labels, closing the hourly and weekday loops.
func PrepareTrendSeries(hourly, weekday, monthly []int, style HourLabelStyle) (TrendSeries, error) {
	err := checkLength("hourly", hourly, HoursPerDay)
	if err != nil {
		return TrendSeries{}, err
	}

	err = checkLength("weekday", weekday, DaysPerWeek)
	if err != nil {
		return TrendSeries{}, err
	}

	err = checkLength("monthly", monthly, MonthsPerYear)
	if err != nil {
		return TrendSeries{}, err
	}

	return TrendSeries{
		Hourly:  CloseSeries(Series{Labels: HourLabels(style), Values: hourly}),
		Weekday: CloseSeries(Series{Labels: WeekdayLabels, Values: weekday}),
		Monthly: Series{Labels: slices.Clone(MonthLabels), Values: slices.Clone(monthly)},
	}, nil
}
