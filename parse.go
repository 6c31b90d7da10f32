package goduration

import (
	"errors"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// unitTable maps every accepted unit spelling to its nanosecond multiplier.
var unitTable = map[string]uint64{
	"ns": uint64(Nanosecond),
	"us": uint64(Microsecond),
	"µs": uint64(Microsecond), // U+00B5 micro sign
	"μs": uint64(Microsecond), // U+03BC Greek mu
	"ms": uint64(Millisecond),
	"s":  uint64(Second),
	"m":  uint64(Minute),
	"h":  uint64(Hour),
}

// errNoNumber marks a segment that does not start with a number. It never
// leaves this file: the first segment turns it into ErrInvalidDuration,
// later segments treat it as the end of the duration.
var errNoNumber = errors.New("no number")

// Parse parses a duration string such as "300ms", "-1.5h" or "2h45m".
// The whole input must be consumed. Valid units are "ns", "us" (or "µs"
// or "μs"), "ms", "s", "m" and "h".
func Parse(s string) (Duration, error) {
	d, rest, err := ParsePrefix(s)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, ErrInvalidDuration
	}
	return d, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(`goduration: Parse(` + strconv.Quote(s) + `): ` + err.Error())
	}
	return d
}

// ParsePrefix parses a duration at the start of s and returns the
// unconsumed remainder, so it can be embedded in a larger grammar.
//
// Parsing stops before the first segment whose number cannot be read.
// Once a number has been read its unit must resolve: a missing or unknown
// unit fails the whole parse. Because unit text extends up to the next
// digit or '.', the remainder is either empty or starts with one of those.
// On error the returned remainder is s.
func ParsePrefix(s string) (Duration, string, error) {
	negative, rest := sign(s)

	total, rest, err := segment(rest)
	if err != nil {
		if err == errNoNumber {
			err = ErrInvalidDuration
		}
		return 0, s, err
	}

	for rest != "" {
		nanos, next, err := segment(rest)
		if err == errNoNumber {
			break
		}
		if err != nil {
			return 0, s, err
		}
		total = addSaturating(total, nanos)
		rest = next
	}

	d, err := applySign(total, negative)
	if err != nil {
		return 0, s, err
	}
	return d, rest, nil
}

// sign consumes an optional leading '+' or '-'.
func sign(s string) (negative bool, rest string) {
	if s == "" {
		return false, s
	}
	switch s[0] {
	case '-':
		return true, s[1:]
	case '+':
		return false, s[1:]
	}
	return false, s
}

// segment parses one number followed by its unit and returns its value in
// nanoseconds, saturated at math.MaxUint64.
func segment(s string) (uint64, string, error) {
	whole, frac, rest, ok := number(s)
	if !ok {
		return 0, s, errNoNumber
	}
	scale, rest, err := unit(rest)
	if err != nil {
		return 0, s, err
	}
	nanos := addSaturating(mulSaturating(whole, scale), fraction(frac, scale))
	return nanos, rest, nil
}

// number reads either ".digits" or "digits[.[digits]]". The integer part
// must fit in a uint64.
func number(s string) (whole uint64, frac, rest string, ok bool) {
	if strings.HasPrefix(s, ".") {
		frac = leadingDigits(s[1:])
		if frac == "" {
			return 0, "", s, false
		}
		return 0, frac, s[1+len(frac):], true
	}

	digits := leadingDigits(s)
	if digits == "" {
		return 0, "", s, false
	}
	whole, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, "", s, false
	}
	rest = s[len(digits):]
	if strings.HasPrefix(rest, ".") {
		frac = leadingDigits(rest[1:])
		rest = rest[1+len(frac):]
	}
	return whole, frac, rest, true
}

// unit takes everything up to the next digit or '.' as the unit text and
// looks it up in unitTable.
func unit(s string) (uint64, string, error) {
	end := strings.IndexFunc(s, func(r rune) bool {
		return isDigit(r) || r == '.'
	})
	if end < 0 {
		end = len(s)
	}
	text := s[:end]
	if text == "" {
		return 0, s, ErrMissingUnit
	}
	scale, ok := unitTable[text]
	if !ok {
		return 0, s, unknownUnit(text)
	}
	return scale, s[end:], nil
}

// fraction evaluates the digits after the decimal point in units of scale,
// truncating toward zero.
func fraction(digits string, scale uint64) uint64 {
	var total float64
	step := float64(scale)
	for i := 0; i < len(digits); i++ {
		step /= 10
		// The explicit conversion rounds the product before the sum and
		// rules out a fused multiply-add.
		total += float64(step * float64(digits[i]-'0'))
	}
	return uint64(total)
}

func applySign(total uint64, negative bool) (Duration, error) {
	if !negative {
		if total > math.MaxInt64 {
			return 0, ErrInvalidDuration
		}
		return Duration(total), nil
	}
	switch {
	case total > 1<<63:
		return 0, ErrInvalidDuration
	case total == 1<<63:
		return MinDuration, nil
	default:
		return -Duration(total), nil
	}
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func addSaturating(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func mulSaturating(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
