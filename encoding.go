package goduration

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

const (
	expectDurationString = "Go-style duration string"
	expectNanoseconds    = "integer nanoseconds"
)

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(Format(d)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Text is always parsed
// as a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON encodes d as a duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(Format(d))
}

// UnmarshalJSON accepts a duration string or, for compatibility with
// encoders that wrote raw time.Duration values, an integer count of
// nanoseconds. null leaves d unchanged.
func (d *Duration) UnmarshalJSON(data []byte) error {
	switch {
	case string(data) == "null":
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return d.UnmarshalText([]byte(s))
	}
	v, err := jsonInteger(data, expectDurationString)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return Format(d), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same rules as
// UnmarshalJSON.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	v, err := yamlValue(raw, true, expectDurationString)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Nanoseconds is a Duration that is encoded as a plain integer count of
// nanoseconds instead of a duration string. Declare a struct field with
// this type to opt that field into the numeric encoding.
type Nanoseconds Duration

// Nanos converts d for numeric encoding.
func (d Duration) Nanos() Nanoseconds {
	return Nanoseconds(d)
}

func (n Nanoseconds) Duration() Duration {
	return Duration(n)
}

func (n Nanoseconds) String() string {
	return Format(Duration(n))
}

func (n Nanoseconds) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(n), 10), nil
}

// UnmarshalJSON accepts only an integer.
func (n *Nanoseconds) UnmarshalJSON(data []byte) error {
	switch {
	case string(data) == "null":
		return nil
	case len(data) > 0 && data[0] == '"':
		return invalidType("string "+string(data), expectNanoseconds)
	}
	v, err := jsonInteger(data, expectNanoseconds)
	if err != nil {
		return err
	}
	*n = Nanoseconds(v)
	return nil
}

func (n Nanoseconds) MarshalYAML() (interface{}, error) {
	return int64(n), nil
}

// UnmarshalYAML accepts only an integer.
func (n *Nanoseconds) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	v, err := yamlValue(raw, false, expectNanoseconds)
	if err != nil {
		return err
	}
	*n = Nanoseconds(v)
	return nil
}

func jsonInteger(data []byte, expecting string) (Duration, error) {
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return 0, invalidType(describeJSON(data), expecting)
	}
	return integer(num.String(), expecting)
}

// integer converts a decimal integer token. Unsigned values beyond the
// int64 range are out of range rather than of the wrong type.
func integer(s, expecting string) (Duration, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Duration(v), nil
	}
	if _, err := strconv.ParseUint(s, 10, 64); err == nil {
		return 0, ErrInvalidDuration
	}
	return 0, invalidType("number "+s, expecting)
}

func yamlValue(raw interface{}, acceptString bool, expecting string) (Duration, error) {
	switch v := raw.(type) {
	case string:
		if !acceptString {
			return 0, invalidType(fmt.Sprintf("string %q", v), expecting)
		}
		return Parse(v)
	case int:
		return Duration(v), nil
	case int64:
		return Duration(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, ErrInvalidDuration
		}
		return Duration(v), nil
	case float64:
		return 0, invalidType("float "+strconv.FormatFloat(v, 'g', -1, 64), expecting)
	case bool:
		return 0, invalidType("boolean "+strconv.FormatBool(v), expecting)
	default:
		return 0, invalidType(fmt.Sprintf("%T", v), expecting)
	}
}

func describeJSON(data []byte) string {
	if len(data) == 0 {
		return "empty input"
	}
	switch data[0] {
	case 't', 'f':
		return "boolean " + string(data)
	case '{':
		return "map"
	case '[':
		return "sequence"
	default:
		return string(data)
	}
}

func invalidType(got, expecting string) error {
	return fmt.Errorf("%w: %s, expected %s", ErrInvalidType, got, expecting)
}
