package goduration

import (
	"strconv"
	"strings"
)

// Format returns the canonical string for d, e.g. "72h3m0.5s". The
// leading unit is chosen by magnitude; durations under one second use a
// smaller unit ("ms", "µs" or "ns") so the leading digit is non-zero. The
// zero duration formats as "0s".
func Format(d Duration) string {
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
	}

	u := d.magnitude()
	switch {
	case u >= uint64(Hour):
		writeUint(&b, u/uint64(Hour), "h")
		u %= uint64(Hour)
		writeUint(&b, u/uint64(Minute), "m")
		writeDecimal(&b, u%uint64(Minute), uint64(Second), "s")
	case u >= uint64(Minute):
		writeUint(&b, u/uint64(Minute), "m")
		writeDecimal(&b, u%uint64(Minute), uint64(Second), "s")
	case u >= uint64(Second):
		writeDecimal(&b, u, uint64(Second), "s")
	case u >= uint64(Millisecond):
		writeDecimal(&b, u, uint64(Millisecond), "ms")
	case u >= uint64(Microsecond):
		writeDecimal(&b, u, uint64(Microsecond), "µs")
	case u > 0:
		writeUint(&b, u, "ns")
	default:
		return "0s"
	}
	return b.String()
}

// String implements fmt.Stringer using Format.
func (d Duration) String() string {
	return Format(d)
}

func writeUint(b *strings.Builder, v uint64, unit string) {
	b.WriteString(strconv.FormatUint(v, 10))
	b.WriteString(unit)
}

// writeDecimal writes nanos/scale with the fewest digits that identify the
// float64 quotient, so whole values carry no fractional part.
func writeDecimal(b *strings.Builder, nanos, scale uint64, unit string) {
	b.WriteString(strconv.FormatFloat(float64(nanos)/float64(scale), 'f', -1, 64))
	b.WriteString(unit)
}
