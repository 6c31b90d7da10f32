package goduration

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a duration string was rejected.
type ErrorKind int

const (
	// InvalidDuration covers empty or malformed input and values outside
	// the int64 nanosecond range.
	InvalidDuration ErrorKind = iota + 1
	// MissingUnit means a number was not followed by any unit text.
	MissingUnit
	// UnknownUnit means the text after a number is not a known unit.
	UnknownUnit
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidDuration:
		return "InvalidDuration"
	case MissingUnit:
		return "MissingUnit"
	case UnknownUnit:
		return "UnknownUnit"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is returned by the parser. Unit holds the offending unit
// text, as written, and is only set for UnknownUnit.
type ParseError struct {
	Kind ErrorKind
	Unit string
}

var (
	ErrInvalidDuration = &ParseError{Kind: InvalidDuration}
	ErrMissingUnit     = &ParseError{Kind: MissingUnit}
	// ErrUnknownUnit matches an UnknownUnit error for any unit text.
	ErrUnknownUnit = &ParseError{Kind: UnknownUnit}
)

// ErrInvalidType is returned by decoders when a token of the wrong type
// is presented, e.g. a float or a bool where a duration string is expected.
var ErrInvalidType = errors.New("invalid type")

func (e *ParseError) Error() string {
	switch e.Kind {
	case MissingUnit:
		return "time: missing unit in duration"
	case UnknownUnit:
		return fmt.Sprintf("time: unknown unit %q in duration", e.Unit)
	default:
		return "time: invalid duration"
	}
}

// Is reports whether target is a *ParseError of the same kind. A target
// carrying a unit only matches an error with that exact unit.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Unit == "" || t.Unit == e.Unit)
}

func unknownUnit(unit string) error {
	return &ParseError{Kind: UnknownUnit, Unit: unit}
}
