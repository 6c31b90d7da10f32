// Package goduration converts between Go-style duration strings such as
// "1h30m0s", "500ms" or "-2µs" and a signed 64-bit nanosecond count.
//
// Parsing and formatting follow the rules of the standard library's
// time.ParseDuration and time.Duration.String, including the accepted
// microsecond aliases and the int64 overflow boundaries.
package goduration

import (
	"math"
	"time"
)

// Duration is a signed count of nanoseconds.
type Duration int64

const (
	Zero        Duration = 0
	MinDuration Duration = math.MinInt64
	MaxDuration Duration = math.MaxInt64
)

const (
	Nanosecond  Duration = 1
	Microsecond          = 1000 * Nanosecond
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
)

// FromStd converts a time.Duration. Both types count nanoseconds, so the
// conversion is lossless.
func FromStd(d time.Duration) Duration {
	return Duration(d)
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) Nanoseconds() int64 {
	return int64(d)
}

// Abs returns the absolute value of d. MinDuration saturates to MaxDuration.
func (d Duration) Abs() Duration {
	switch {
	case d >= 0:
		return d
	case d == MinDuration:
		return MaxDuration
	default:
		return -d
	}
}

// Compare returns -1, 0 or +1 depending on whether d is less than, equal
// to or greater than other.
func (d Duration) Compare(other Duration) int {
	switch {
	case d < other:
		return -1
	case d > other:
		return 1
	default:
		return 0
	}
}

// magnitude returns |d| as an unsigned value; MinDuration maps to 1<<63.
func (d Duration) magnitude() uint64 {
	if d < 0 {
		return -uint64(d)
	}
	return uint64(d)
}
