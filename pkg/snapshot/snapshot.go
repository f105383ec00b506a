// Package snapshot reads, writes and validates the count snapshots the
// visualizer renders. A snapshot is the explicit input for one render: the
// year plus its daily, hourly, weekday and monthly commit counts.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
)

// Sentinel errors.
var (
	ErrUnknownFormat   = errors.New("unknown snapshot format")
	ErrSchemaViolation = errors.New("snapshot does not match schema")
)

// StdinPath is the path that makes Load read JSON from standard input.
const StdinPath = "-"

// Snapshot is one year of commit counts.
type Snapshot struct {
	Name              string `json:"name,omitempty"                toml:"name,omitempty"                yaml:"name,omitempty"`
	Year              int    `json:"year"                          toml:"year"                          yaml:"year"`
	CommitsPerDay     []int  `json:"commits_per_day,omitempty"     toml:"commits_per_day,omitempty"     yaml:"commits_per_day,omitempty"`
	CommitsPerHour    []int  `json:"commits_per_hour,omitempty"    toml:"commits_per_hour,omitempty"    yaml:"commits_per_hour,omitempty"`
	CommitsPerWeekday []int  `json:"commits_per_weekday,omitempty" toml:"commits_per_weekday,omitempty" yaml:"commits_per_weekday,omitempty"`
	CommitsPerMonth   []int  `json:"commits_per_month,omitempty"   toml:"commits_per_month,omitempty"   yaml:"commits_per_month,omitempty"`
}

// Input converts the snapshot into visualizer input.
func (s *Snapshot) Input() activity.Input {
	return activity.Input{
		Year:    s.Year,
		Daily:   s.CommitsPerDay,
		Hourly:  s.CommitsPerHour,
		Weekday: s.CommitsPerWeekday,
		Monthly: s.CommitsPerMonth,
	}
}

// Load reads, decodes and schema-validates the snapshot at path. The format
// follows the file extension; StdinPath reads JSON from standard input.
func Load(path string) (*Snapshot, error) {
	if path == StdinPath {
		return Read(os.Stdin, Format{Encoding: EncodingJSON})
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	return Read(f, format)
}

// Read decodes a snapshot from r and validates it against the schema.
func Read(r io.Reader, format Format) (*Snapshot, error) {
	snap, err := Decode(r, format)
	if err != nil {
		return nil, err
	}

	err = Validate(snap)
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// Save encodes snap to path using the format implied by its extension.
func Save(path string, snap *Snapshot) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	encErr := Encode(f, snap, format)
	closeErr := f.Close()

	return errors.Join(encErr, closeErr)
}
