package activity

import (
	"github.com/Sumatoshi-tech/activityviz/pkg/alg/stats"
)

// Summary holds headline numbers for one year of activity.
// Peak fields are empty when the corresponding series has no activity.
type Summary struct {
	Total             int     `json:"total"                         toml:"total"                         yaml:"total"`
	ActiveDays        int     `json:"active_days"                   toml:"active_days"                   yaml:"active_days"`
	LongestStreak     int     `json:"longest_streak"                toml:"longest_streak"                yaml:"longest_streak"`
	LongestStreakFrom string  `json:"longest_streak_from,omitempty" toml:"longest_streak_from,omitempty" yaml:"longest_streak_from,omitempty"`
	LongestBreak      int     `json:"longest_break"                 toml:"longest_break"                 yaml:"longest_break"`
	MaxPerDay         int     `json:"max_per_day"                   toml:"max_per_day"                   yaml:"max_per_day"`
	BusiestDate       string  `json:"busiest_date,omitempty"        toml:"busiest_date,omitempty"        yaml:"busiest_date,omitempty"`
	AveragePerDay     float64 `json:"average_per_day"               toml:"average_per_day"               yaml:"average_per_day"`
	MostActiveHour    string  `json:"most_active_hour,omitempty"    toml:"most_active_hour,omitempty"    yaml:"most_active_hour,omitempty"`
	MostActiveWeekday string  `json:"most_active_weekday,omitempty" toml:"most_active_weekday,omitempty" yaml:"most_active_weekday,omitempty"`
	MostActiveMonth   string  `json:"most_active_month,omitempty"   toml:"most_active_month,omitempty"   yaml:"most_active_month,omitempty"`
}

// Summarize computes the headline numbers of a validated input.
func Summarize(in Input, style HourLabelStyle) Summary {
	active := func(c int) bool { return c > 0 }
	idle := func(c int) bool { return c == 0 }

	s := Summary{
		Total:         stats.Sum(in.Daily),
		ActiveDays:    stats.CountIf(in.Daily, active),
		MaxPerDay:     stats.Max(in.Daily),
		AveragePerDay: stats.Mean(in.Daily),
	}

	var streakStart int

	s.LongestStreak, streakStart = stats.LongestRun(in.Daily, active)
	if streakStart >= 0 {
		s.LongestStreakFrom = DateOf(in.Year, streakStart).Format(dateLayout)
	}

	s.LongestBreak, _ = stats.LongestRun(in.Daily, idle)

	if s.MaxPerDay > 0 {
		s.BusiestDate = DateOf(in.Year, stats.ArgMax(in.Daily)).Format(dateLayout)
	}

	s.MostActiveHour = peakLabel(in.Hourly, HourLabels(style))
	s.MostActiveWeekday = peakLabel(in.Weekday, WeekdayLabels)
	s.MostActiveMonth = peakLabel(in.Monthly, MonthLabels)

	return s
}

func peakLabel(values []int, labels []string) string {
	if stats.Max(values) <= 0 {
		return ""
	}

	idx := stats.ArgMax(values)
	if idx >= len(labels) {
		return ""
	}

	return labels[idx]
}
