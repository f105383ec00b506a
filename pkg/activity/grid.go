package activity

import (
	"fmt"
	"time"
)

// dateLayout is the ISO date format used for cell dates.
const dateLayout = time.DateOnly

// Cell is one position of a CalendarGrid. Padding positions before January 1
// and after December 31 are Empty, with Index -1 and zero intensity.
type Cell struct {
	Index     int     `json:"index"           toml:"index"           yaml:"index"`
	Date      string  `json:"date,omitempty"  toml:"date,omitempty"  yaml:"date,omitempty"`
	Count     int     `json:"count"           toml:"count"           yaml:"count"`
	Intensity float64 `json:"intensity"       toml:"intensity"       yaml:"intensity"`
	Empty     bool    `json:"empty,omitempty" toml:"empty,omitempty" yaml:"empty,omitempty"`
}

// emptyCell is the padding cell.
var emptyCell = Cell{Index: -1, Empty: true}

// CalendarGrid is a Rows x Columns matrix of day cells, one row per weekday
// (Monday first) and one column per week. Cells is indexed [row][col].
type CalendarGrid struct {
	Year         int      `json:"year"          toml:"year"          yaml:"year"`
	Rows         int      `json:"rows"          toml:"rows"          yaml:"rows"`
	Columns      int      `json:"columns"       toml:"columns"       yaml:"columns"`
	FirstWeekday int      `json:"first_weekday" toml:"first_weekday" yaml:"first_weekday"`
	DaysInYear   int      `json:"days_in_year"  toml:"days_in_year"  yaml:"days_in_year"`
	Cells        [][]Cell `json:"cells"         toml:"cells"         yaml:"cells"`
}

// GridColumns returns the number of week columns needed for year.
func GridColumns(year int) int {
	return ceilDiv(DaysInYear(year)+FirstWeekday(year), DaysPerWeek)
}

// BuildCalendarGrid lays out daily counts of year on a weekday x week grid,
// attaching the intensity produced by Normalize(daily, t) to every day cell.
// daily must hold exactly DaysInYear(year) values.
func BuildCalendarGrid(year int, daily []int, t Transform) (*CalendarGrid, error) {
	err := ValidateYear(year)
	if err != nil {
		return nil, err
	}

	err = checkLength("daily", daily, DaysInYear(year))
	if err != nil {
		return nil, err
	}

	intensity := Normalize(daily, t)
	first := FirstWeekday(year)
	days := DaysInYear(year)
	columns := ceilDiv(days+first, DaysPerWeek)

	grid := &CalendarGrid{
		Year:         year,
		Rows:         DaysPerWeek,
		Columns:      columns,
		FirstWeekday: first,
		DaysInYear:   days,
		Cells:        make([][]Cell, DaysPerWeek),
	}

	for row := range DaysPerWeek {
		grid.Cells[row] = make([]Cell, columns)

		for col := range columns {
			day := row + col*DaysPerWeek - first + 1
			if day < 1 || day > days {
				grid.Cells[row][col] = emptyCell

				continue
			}

			idx := day - 1
			grid.Cells[row][col] = Cell{
				Index:     idx,
				Date:      DateOf(year, idx).Format(dateLayout),
				Count:     daily[idx],
				Intensity: intensity[idx],
			}
		}
	}

	return grid, nil
}

// Cell returns the cell at (row, col), or an empty cell when out of range.
func (g *CalendarGrid) Cell(row, col int) Cell {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Columns {
		return emptyCell
	}

	return g.Cells[row][col]
}

// Locate returns the grid position of the zero-based day index.
func (g *CalendarGrid) Locate(index int) (row, col int, ok bool) {
	if index < 0 || index >= g.DaysInYear {
		return 0, 0, false
	}

	offset := index + g.FirstWeekday

	return offset % DaysPerWeek, offset / DaysPerWeek, true
}

// Days returns the non-empty cells in day order.
func (g *CalendarGrid) Days() []Cell {
	out := make([]Cell, g.DaysInYear)

	for row := range g.Cells {
		for _, c := range g.Cells[row] {
			if !c.Empty {
				out[c.Index] = c
			}
		}
	}

	return out
}

// MonthColumns returns, for each month, the column holding its first day.
func (g *CalendarGrid) MonthColumns() [MonthsPerYear]int {
	var cols [MonthsPerYear]int

	for m := range MonthsPerYear {
		first := time.Date(g.Year, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
		_, col, _ := g.Locate(first.YearDay() - 1)
		cols[m] = col
	}

	return cols
}

func checkLength(name string, series []int, want int) error {
	if len(series) != want {
		return fmt.Errorf("%w: %s has %d values, want %d", ErrInvalidSeriesLength, name, len(series), want)
	}

	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
