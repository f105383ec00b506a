package activity

import "errors"

// Sentinel validation errors. All of them are input-contract violations: the
// core performs no I/O, so nothing here is retryable.
var (
	// ErrInvalidSeriesLength indicates a count series does not match its
	// calendar or cycle length.
	ErrInvalidSeriesLength = errors.New("invalid series length")
	// ErrNegativeCount indicates a count series contains a negative value.
	ErrNegativeCount = errors.New("negative count")
	// ErrInvalidYear indicates the activity year is outside [MinYear, MaxYear].
	ErrInvalidYear = errors.New("invalid activity year")
	// ErrUnknownTransform indicates an unrecognized intensity transform name.
	ErrUnknownTransform = errors.New("unknown intensity transform")
	// ErrUnknownHourLabelStyle indicates an unrecognized hour label style name.
	ErrUnknownHourLabelStyle = errors.New("unknown hour label style")
)
