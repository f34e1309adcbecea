package engine

import (
	"github.com/cockroachdb/errors"
)

// Error kinds surfaced by the engine facets and the packages built on top
// of them. Callers classify failures with errors.Is against these
// references; the wrapped error keeps the original diagnostic text.
var (
	// ErrInvalidArgument reports a wrong kind of value supplied by the caller.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange reports a value outside its allowed domain.
	ErrOutOfRange = errors.New("out of range")
	// ErrEngineFailure reports a failed call into the simulation engine,
	// for example a missing farfield monitor or a broken automation link.
	ErrEngineFailure = errors.New("engine failure")
	// ErrIncompleteResults reports that the engine answered with fewer
	// components than the caller requested.
	ErrIncompleteResults = errors.New("incomplete results")
	// ErrParseFailure reports that the engine answer could not be coerced
	// into the expected scalars.
	ErrParseFailure = errors.New("parse failure")
)

// InvalidArgumentf returns a new type-mismatch error.
func InvalidArgumentf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidArgument)
}

// OutOfRangef returns a new range-violation error.
func OutOfRangef(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrOutOfRange)
}

// IncompleteResultsf returns a new data-shape mismatch error.
func IncompleteResultsf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrIncompleteResults)
}

// ParseFailuref returns a new result-extraction error.
func ParseFailuref(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrParseFailure)
}

// WrapEngineFailure marks err as an engine failure, preserving its
// diagnostic text. Returns nil if err is nil.
func WrapEngineFailure(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, msg), ErrEngineFailure)
}
