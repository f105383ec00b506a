package plotpage

import (
	"fmt"
	"io"
)

// Stat is one headline number.
type Stat struct {
	Label  string
	Value  string
	Detail string
}

// StatGrid renders a row of stat cards.
type StatGrid struct {
	Stats []Stat
}

// NewStatGrid creates a stat grid.
func NewStatGrid(stats ...Stat) *StatGrid {
	return &StatGrid{Stats: stats}
}

// Render writes the grid HTML. An empty grid writes nothing.
func (g *StatGrid) Render(w io.Writer) error {
	if len(g.Stats) == 0 {
		return nil
	}

	html, err := renderTemplate("stats.html", g.Stats)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, string(html))
	if err != nil {
		return fmt.Errorf("writing stat grid: %w", err)
	}

	return nil
}
