/*
errors.go - Centralized error types for the calendar package

PURPOSE:

	All error types in one place for consistency and discoverability.
	Higher layers (schedule, api) wrap these errors with additional context.

ERROR CATEGORIES:
 1. Format errors   - Unparseable date text
 2. Argument errors - Out-of-range numeric parameters
 3. Capability gaps - Features that are explicit failures, never silent
    wrong answers

USAGE:

	Callers should match with errors.Is():

	  if errors.Is(err, calendar.ErrInvalidFormat) {
	      // reject the input
	  }

SEE ALSO:
  - date.go: ParseDDMMYYYY returns ParseError
  - queries.go: FormatLocalized returns ErrNotImplemented
*/
package calendar

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidFormat is returned when date text cannot be parsed.
	ErrInvalidFormat = errors.New("invalid date format")

	// ErrInvalidArgument is returned when a numeric parameter is out of its
	// allowed range (e.g. a non-positive work-day count).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPeriod is returned when a period is malformed beyond the
	// tolerated inverted case (e.g. an unparseable boundary).
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrNotImplemented is returned for capabilities intentionally left
	// unfinished. An explicit failure, never a silent wrong answer.
	ErrNotImplemented = errors.New("not implemented")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ParseError describes why a piece of date text was rejected.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidFormat
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrInvalidPeriod)
}

// IsNotImplemented returns true if the error marks an unfinished capability.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
