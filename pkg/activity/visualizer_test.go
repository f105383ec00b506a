package activity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
)

func sampleInput(year int) activity.Input {
	daily := make([]int, activity.DaysInYear(year))
	daily[10], daily[11], daily[12] = 1, 1, 1
	daily[40] = 5

	hourly := make([]int, 24)
	hourly[14] = 6
	hourly[22] = 2

	weekday := []int{1, 0, 0, 5, 2, 0, 0}
	monthly := []int{3, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	return activity.Input{Year: year, Daily: daily, Hourly: hourly, Weekday: weekday, Monthly: monthly}
}

func TestVisualize(t *testing.T) {
	t.Parallel()

	v := activity.New(activity.Options{})

	got, err := v.Visualize(sampleInput(2023))
	require.NoError(t, err)

	assert.Equal(t, 2023, got.Year)
	assert.Equal(t, activity.SquareRootCompression, got.Transform)
	assert.Equal(t, 53, got.Grid.Columns)
	assert.Len(t, got.Trends.Hourly.Values, 25)
	assert.Len(t, got.Trends.Weekday.Values, 8)
	assert.Len(t, got.Trends.Monthly.Values, 12)

	row, col, ok := got.Grid.Locate(40)
	require.True(t, ok)
	assert.Equal(t, 1.0, got.Grid.Cell(row, col).Intensity)
}

func TestVisualize_Idempotent(t *testing.T) {
	t.Parallel()

	v := activity.New(activity.Options{Transform: activity.LogarithmicCompression})
	in := sampleInput(2024)

	a, err := v.Visualize(in)
	require.NoError(t, err)

	b, err := v.Visualize(in)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestVisualize_Validation(t *testing.T) {
	t.Parallel()

	v := activity.New(activity.Options{})

	tests := []struct {
		name   string
		mutate func(in *activity.Input)
		want   error
	}{
		{name: "bad_year", mutate: func(in *activity.Input) { in.Year = -3 }, want: activity.ErrInvalidYear},
		{name: "short_daily", mutate: func(in *activity.Input) { in.Daily = in.Daily[:364] }, want: activity.ErrInvalidSeriesLength},
		{name: "leap_mismatch", mutate: func(in *activity.Input) { in.Daily = append(in.Daily, 0) }, want: activity.ErrInvalidSeriesLength},
		{name: "empty_daily", mutate: func(in *activity.Input) { in.Daily = nil }, want: activity.ErrInvalidSeriesLength},
		{name: "short_hourly", mutate: func(in *activity.Input) { in.Hourly = in.Hourly[:12] }, want: activity.ErrInvalidSeriesLength},
		{name: "negative", mutate: func(in *activity.Input) { in.Weekday = []int{0, 0, -1, 0, 0, 0, 0} }, want: activity.ErrNegativeCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := sampleInput(2023)
			tt.mutate(&in)

			_, err := v.Visualize(in)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVisualize_AllZeroRendersBlank(t *testing.T) {
	t.Parallel()

	in := activity.Input{
		Year:    2024,
		Daily:   make([]int, 366),
		Hourly:  make([]int, 24),
		Weekday: make([]int, 7),
		Monthly: make([]int, 12),
	}

	got, err := activity.New(activity.Options{}).Visualize(in)
	require.NoError(t, err)

	for _, c := range got.Grid.Days() {
		require.Zero(t, c.Intensity)
	}

	assert.Zero(t, got.Summary.Total)
	assert.Empty(t, got.Summary.BusiestDate)
	assert.Empty(t, got.Summary.MostActiveMonth)
}

func TestVisualization_JSON(t *testing.T) {
	t.Parallel()

	got, err := activity.New(activity.Options{Transform: activity.LogarithmicCompression}).Visualize(sampleInput(2023))
	require.NoError(t, err)

	data, err := json.Marshal(got)
	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "log", decoded["transform"])
	assert.Contains(t, decoded, "grid")
	assert.Contains(t, decoded, "trends")
	assert.Contains(t, decoded, "summary")
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	got := activity.Summarize(sampleInput(2023), activity.HourLabelsClock)

	assert.Equal(t, 8, got.Total)
	assert.Equal(t, 4, got.ActiveDays)
	assert.Equal(t, 3, got.LongestStreak)
	assert.Equal(t, "2023-01-11", got.LongestStreakFrom)
	assert.Equal(t, 324, got.LongestBreak)
	assert.Equal(t, 5, got.MaxPerDay)
	assert.Equal(t, "2023-02-10", got.BusiestDate)
	assert.InDelta(t, 8.0/365.0, got.AveragePerDay, 1e-9)
	assert.Equal(t, "14:00", got.MostActiveHour)
	assert.Equal(t, "Thu", got.MostActiveWeekday)
	assert.Equal(t, "Feb", got.MostActiveMonth)
}
