// Package activity turns per-day, per-hour, per-weekday and per-month commit
// counts into renderable structures: a calendar heat-map grid with normalized
// intensities and closed line-chart series.
//
// Weekdays are numbered Monday = 0 through Sunday = 6 throughout the package,
// both in grid rows and in WeekdayLabels.
package activity

import (
	"fmt"
	"time"
)

// Calendar constants.
const (
	DaysPerWeek   = 7
	HoursPerDay   = 24
	MonthsPerYear = 12

	daysInLeapYear   = 366
	daysInCommonYear = 365
)

// Supported year range.
const (
	MinYear = 1
	MaxYear = 9999
)

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return daysInLeapYear
	}

	return daysInCommonYear
}

// FirstWeekday returns the Monday-based weekday (0..6) of January 1 of year.
func FirstWeekday(year int) int {
	return MondayIndex(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MondayIndex converts a [time.Weekday] (Sunday = 0) to the Monday-based index.
func MondayIndex(wd time.Weekday) int {
	return (int(wd) + DaysPerWeek - 1) % DaysPerWeek
}

// DateOf returns the calendar date of the zero-based day index within year.
func DateOf(year, index int) time.Time {
	return time.Date(year, time.January, 1+index, 0, 0, 0, 0, time.UTC)
}

// ValidateYear checks that year lies within the supported range.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidYear, year, MinYear, MaxYear)
	}

	return nil
}
