package activity

import (
	"fmt"
)

// Input is one immutable snapshot of the count series for a single render.
type Input struct {
	Year    int
	Daily   []int
	Hourly  []int
	Weekday []int
	Monthly []int
}

// Validate checks the year, every series length, and that no count is negative.
func (in Input) Validate() error {
	err := ValidateYear(in.Year)
	if err != nil {
		return err
	}

	checks := []struct {
		name   string
		series []int
		want   int
	}{
		{"daily", in.Daily, DaysInYear(in.Year)},
		{"hourly", in.Hourly, HoursPerDay},
		{"weekday", in.Weekday, DaysPerWeek},
		{"monthly", in.Monthly, MonthsPerYear},
	}

	for _, c := range checks {
		lenErr := checkLength(c.name, c.series, c.want)
		if lenErr != nil {
			return lenErr
		}

		for i, v := range c.series {
			if v < 0 {
				return fmt.Errorf("%w: %s[%d] = %d", ErrNegativeCount, c.name, i, v)
			}
		}
	}

	return nil
}

// Options configures a Visualizer. The zero value selects square-root
// compression and numeric hour labels.
type Options struct {
	Transform  Transform
	HourLabels HourLabelStyle
}

// Visualization is everything a renderer needs for one year of activity.
type Visualization struct {
	Year      int           `json:"year"      toml:"year"      yaml:"year"`
	Transform Transform     `json:"transform" toml:"transform" yaml:"transform"`
	Grid      *CalendarGrid `json:"grid"      toml:"grid"      yaml:"grid"`
	Trends    TrendSeries   `json:"trends"    toml:"trends"    yaml:"trends"`
	Summary   Summary       `json:"summary"   toml:"summary"   yaml:"summary"`
}

// Visualizer builds Visualizations. It holds only its options and is safe
// for concurrent use.
type Visualizer struct {
	opts Options
}

// New creates a Visualizer with the given options.
func New(opts Options) *Visualizer {
	return &Visualizer{opts: opts}
}

// Options returns the visualizer's options.
func (v *Visualizer) Options() Options {
	return v.opts
}

// Visualize validates in and derives the calendar grid, trend series and summary.
func (v *Visualizer) Visualize(in Input) (*Visualization, error) {
	err := in.Validate()
	if err != nil {
		return nil, err
	}

	grid, err := BuildCalendarGrid(in.Year, in.Daily, v.opts.Transform)
	if err != nil {
		return nil, fmt.Errorf("build calendar grid: %w", err)
	}

	trends, err := PrepareTrendSeries(in.Hourly, in.Weekday, in.Monthly, v.opts.HourLabels)
	if err != nil {
		return nil, fmt.Errorf("prepare trend series: %w", err)
	}

	return &Visualization{
		Year:      in.Year,
		Transform: v.opts.Transform,
		Grid:      grid,
		Trends:    trends,
		Summary:   Summarize(in, v.opts.HourLabels),
	}, nil
}
