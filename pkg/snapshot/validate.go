package snapshot

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
)

//go:embed snapshot.schema.json
var schemaJSON []byte

// Schema returns the JSON Schema snapshots are validated against.
func Schema() []byte {
	return schemaJSON
}

// Violation is one schema failure.
type Violation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// SchemaError lists every violation found in a snapshot.
type SchemaError struct {
	Violations []Violation
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Description)
	}

	return fmt.Sprintf("%s: %s", ErrSchemaViolation, strings.Join(parts, "; "))
}

// Unwrap makes errors.Is(err, ErrSchemaViolation) hold.
func (e *SchemaError) Unwrap() error {
	return ErrSchemaViolation
}

// Validate checks snap against the embedded schema and that the daily series
// matches the length of its year. All violations are reported together.
func Validate(snap *Snapshot) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewGoLoader(snap),
	)
	if err != nil {
		return fmt.Errorf("run schema validation: %w", err)
	}

	var violations []Violation

	for _, re := range result.Errors() {
		violations = append(violations, Violation{Field: re.Field(), Description: re.Description()})
	}

	if len(snap.CommitsPerDay) > 0 && activity.ValidateYear(snap.Year) == nil {
		if want := activity.DaysInYear(snap.Year); len(snap.CommitsPerDay) != want {
			violations = append(violations, Violation{
				Field:       "commits_per_day",
				Description: fmt.Sprintf("%d has %d days, got %d values", snap.Year, want, len(snap.CommitsPerDay)),
			})
		}
	}

	if len(violations) > 0 {
		return &SchemaError{Violations: violations}
	}

	return nil
}
