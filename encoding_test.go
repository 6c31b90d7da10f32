package goduration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

type record struct {
	Dur   Duration    `json:"dur" yaml:"dur"`
	Nanos Nanoseconds `json:"nanos" yaml:"nanos"`
}

func TestJSON(t *testing.T) {
	var got record
	require.NoError(t, json.Unmarshal([]byte(`{"dur":"20ns","nanos": 17}`), &got))
	assert.Equal(t, record{Dur: 20, Nanos: 17}, got)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dur":"20ns","nanos":17}`, string(out))
	assert.Equal(t, `{"dur":"20ns","nanos":17}`, string(out))
}

func TestJSON_Duration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Duration
		wantErr error
	}{
		{name: "string", input: `"90s"`, want: 90 * Second},
		{name: "micro sign", input: `"1.5µs"`, want: 1500},
		{name: "integer nanoseconds", input: `11`, want: 11},
		{name: "negative integer", input: `-11`, want: -11},
		{name: "max int64", input: `9223372036854775807`, want: MaxDuration},
		{name: "beyond int64", input: `18446744073709551615`, wantErr: ErrInvalidDuration},
		{name: "missing unit", input: `"0"`, wantErr: ErrMissingUnit},
		{name: "unknown unit", input: `"10z"`, wantErr: &ParseError{Kind: UnknownUnit, Unit: "z"}},
		{name: "float", input: `1.5`, wantErr: ErrInvalidType},
		{name: "bool", input: `true`, wantErr: ErrInvalidType},
		{name: "object", input: `{}`, wantErr: ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestJSON_Null(t *testing.T) {
	d := Second
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Equal(t, Second, d)

	n := Nanoseconds(5)
	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.Equal(t, Nanoseconds(5), n)
}

func TestJSON_Nanoseconds(t *testing.T) {
	var n Nanoseconds
	require.NoError(t, json.Unmarshal([]byte(`9000000`), &n))
	assert.Equal(t, 9*Millisecond, n.Duration())

	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, `9000000`, string(out))

	err = json.Unmarshal([]byte(`"2s"`), &n)
	assert.ErrorIs(t, err, ErrInvalidType)
	assert.EqualError(t, err, `invalid type: string "2s", expected integer nanoseconds`)

	err = json.Unmarshal([]byte(`18446744073709551615`), &n)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestJSON_ErrorMessage(t *testing.T) {
	var got record
	err := json.Unmarshal([]byte(`{"dur":"0s","nanos":"2s"}`), &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid type: string "2s", expected integer nanoseconds`)

	err = json.Unmarshal([]byte(`{"dur":1.5,"nanos":0}`), &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid type: number 1.5, expected Go-style duration string")
}

func TestText(t *testing.T) {
	text, err := (90 * Second).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))

	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1h30m")))
	assert.Equal(t, 90*Minute, d)

	// Text carries no type information, so digits alone are not a duration.
	assert.ErrorIs(t, d.UnmarshalText([]byte("11")), ErrMissingUnit)

	// Map keys go through the text encoding.
	out, err := json.Marshal(map[Duration]int{Second: 1})
	require.NoError(t, err)
	assert.Equal(t, `{"1s":1}`, string(out))
}

func TestYAML(t *testing.T) {
	var got record
	require.NoError(t, yaml.Unmarshal([]byte("dur: 1h30m\nnanos: 9000000\n"), &got))
	assert.Equal(t, record{Dur: 90 * Minute, Nanos: 9000000}, got)

	out, err := yaml.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, "dur: 1h30m0s\nnanos: 9000000\n", string(out))
}

func TestYAML_Duration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Duration
		wantErr error
	}{
		{name: "string", input: "dur: 90s", want: 90 * Second},
		{name: "quoted string", input: `dur: "-2us"`, want: -2 * Microsecond},
		{name: "integer", input: "dur: 42", want: 42},
		{name: "beyond int64", input: "dur: 18446744073709551615", wantErr: ErrInvalidDuration},
		{name: "missing unit", input: `dur: "10"`, wantErr: ErrMissingUnit},
		{name: "float", input: "dur: 1.5", wantErr: ErrInvalidType},
		{name: "bool", input: "dur: true", wantErr: ErrInvalidType},
		{name: "sequence", input: "dur: [1s]", wantErr: ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got record
			err := yaml.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Dur)
		})
	}
}

func TestYAML_Nanoseconds(t *testing.T) {
	var got record
	err := yaml.Unmarshal([]byte("nanos: 2s\n"), &got)
	assert.ErrorIs(t, err, ErrInvalidType)

	err = yaml.Unmarshal([]byte("nanos: 18446744073709551615\n"), &got)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	require.NoError(t, yaml.Unmarshal([]byte("nanos: -17\n"), &got))
	assert.Equal(t, Nanoseconds(-17), got.Nanos)
}
