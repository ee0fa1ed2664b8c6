package vecbench

import (
	"errors"
)

var (
	// ErrInvalidConfig is returned when a Config fails validation. The
	// wrapping error names the offending field and value; match with
	// errors.Is.
	ErrInvalidConfig = errors.New("invalid configuration")
)
