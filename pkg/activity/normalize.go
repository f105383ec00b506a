package activity

import (
	"fmt"
	"math"
	"strings"

	"github.com/Sumatoshi-tech/activityviz/pkg/alg/stats"
	"github.com/Sumatoshi-tech/activityviz/pkg/levenshtein"
)

// Transform is the compressive function applied to counts before they are
// scaled into [0,1]. Both transforms are strictly increasing for counts >= 0
// and map 0 to 0.
type Transform int

const (
	// SquareRootCompression maps c to sqrt(c+1)-1. It is the default.
	SquareRootCompression Transform = iota
	// LogarithmicCompression maps c to ln(c+1).
	LogarithmicCompression
)

// Transform names used in configuration and on the command line.
const (
	TransformNameSqrt = "sqrt"
	TransformNameLog  = "log"
)

// ParseTransform resolves a transform name. The empty string selects the default.
func ParseTransform(name string) (Transform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", TransformNameSqrt, "square-root", "squareroot":
		return SquareRootCompression, nil
	case TransformNameLog, "ln", "logarithmic":
		return LogarithmicCompression, nil
	default:
		return 0, fmt.Errorf("%w: %q%s", ErrUnknownTransform, name,
			levenshtein.Hint(name, TransformNameSqrt, TransformNameLog, "logarithmic"))
	}
}

// String returns the configuration name of the transform.
func (t Transform) String() string {
	switch t {
	case LogarithmicCompression:
		return TransformNameLog
	case SquareRootCompression:
		return TransformNameSqrt
	default:
		return fmt.Sprintf("Transform(%d)", int(t))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (t Transform) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Transform) UnmarshalText(text []byte) error {
	parsed, err := ParseTransform(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Compress applies the transform to a single count. Negative counts are
// treated as zero.
func (t Transform) Compress(count int) float64 {
	c := float64(max(count, 0))

	switch t {
	case LogarithmicCompression:
		return math.Log(c + 1)
	default:
		return math.Sqrt(c+1) - 1
	}
}

// Normalize compresses counts with t and scales them by the compressed
// maximum, so every result lies in [0,1] and each maximum maps to exactly 1.
// An all-zero or empty series has no maximum to scale by and yields zeros.
func Normalize(counts []int, t Transform) []float64 {
	out := make([]float64, len(counts))

	for i, c := range counts {
		out[i] = t.Compress(c)
	}

	peak := stats.Max(out)
	if peak <= 0 {
		clear(out)

		return out
	}

	for i, v := range out {
		out[i] = stats.Clamp(v/peak, 0, 1)
	}

	return out
}
