// Package terminal provides rendering helpers for terminal reports.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/Sumatoshi-tech/activityviz/pkg/levenshtein"
)

// Width bounds.
const (
	DefaultWidth = 80
	MinWidth     = 60
	MaxWidth     = 160
)

// ColorMode selects when ANSI colors are written.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ErrUnknownColorMode is returned by ParseColorMode.
var ErrUnknownColorMode = errors.New("unknown color mode")

// ParseColorMode resolves a color mode name. The empty string selects ColorAuto.
func ParseColorMode(name string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("%w: %q%s", ErrUnknownColorMode, name,
			levenshtein.Hint(name, string(ColorAuto), string(ColorAlways), string(ColorNever)))
	}
}

// Config holds terminal rendering configuration.
type Config struct {
	Width   int
	NoColor bool
}

// NewConfig derives a Config for output written to w. Colors follow mode;
// in auto mode they are enabled only when w is a terminal and NO_COLOR is unset.
func NewConfig(w io.Writer, mode ColorMode) Config {
	fd, isTTY := fileDescriptor(w)

	var noColor bool

	switch mode {
	case ColorAlways:
		noColor = false
	case ColorNever:
		noColor = true
	default:
		noColor = !isTTY || os.Getenv("NO_COLOR") != ""
	}

	width := DetectWidth()
	if isTTY {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
			width = cols
		}
	}

	return Config{Width: ClampWidth(width), NoColor: noColor}
}

// DetectWidth returns the terminal width from the COLUMNS environment
// variable, or DefaultWidth if it is unset or invalid.
func DetectWidth() int {
	columnsEnv := os.Getenv("COLUMNS")
	if columnsEnv == "" {
		return DefaultWidth
	}

	width, err := strconv.Atoi(columnsEnv)
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return width
}

// ClampWidth restricts width to [MinWidth, MaxWidth].
func ClampWidth(width int) int {
	return max(MinWidth, min(width, MaxWidth))
}

func fileDescriptor(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}

	fd := int(f.Fd()) //nolint:gosec // File descriptors fit in int.

	return fd, term.IsTerminal(fd)
}
