package config

import (
	"fmt"
	"math"
	"strings"
)

// MissingCredentialsFileError is returned when the Firebase credentials path
// does not reference an existing file at construction time.
type MissingCredentialsFileError struct {
	Path string
}

func (e *MissingCredentialsFileError) Error() string {
	return fmt.Sprintf("firebase credentials not found at %s", e.Path)
}

// InvalidEnumValueError is returned when a value falls outside a closed
// enumeration such as the supported exchange ids or logging levels.
type InvalidEnumValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// RangeViolationError is returned when a numeric field falls outside its
// inclusive bounds. Max is +Inf for fields bounded only from below.
type RangeViolationError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeViolationError) Error() string {
	if math.IsInf(e.Max, 1) {
		return fmt.Sprintf("%s: %g below minimum %g", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s: %g outside inclusive range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// InvalidNumericFormatError is returned when an environment string cannot be
// parsed as the integer its variable requires.
type InvalidNumericFormatError struct {
	Variable string
	Value    string
}

func (e *InvalidNumericFormatError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q as integer", e.Variable, e.Value)
}
