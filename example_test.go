package goduration_test

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/babarot/goduration"
)

func Example() {
	d := goduration.Duration(0)
	fmt.Println(d.Nanoseconds())
	fmt.Println(d)

	d = goduration.Duration(42)
	fmt.Println(d)

	d, err := goduration.Parse("4000ns")
	fmt.Println(int64(d), err)
	fmt.Println(d)

	d = goduration.MustParse("60m")
	fmt.Println(d)
	// Output:
	// 0
	// 0s
	// 42ns
	// 4000 <nil>
	// 4µs
	// 1h0m0s
}

func ExampleParse_errors() {
	for _, s := range []string{"", "0", "0z", "9223372036854775808ns"} {
		_, err := goduration.Parse(s)
		fmt.Println(err)
	}
	// Output:
	// time: invalid duration
	// time: missing unit in duration
	// time: unknown unit "z" in duration
	// time: invalid duration
}

func ExampleParsePrefix() {
	// Durations separated by spaces: cut each field out first, because
	// unit text runs up to the next digit and would swallow the space.
	var ds []goduration.Duration
	for _, field := range strings.Fields("10ns 30ms 1m 1m30s") {
		d, rest, err := goduration.ParsePrefix(field)
		if err != nil || rest != "" {
			fmt.Println("bad field:", field)
			return
		}
		ds = append(ds, d)
	}
	fmt.Println(ds)

	d, rest, _ := goduration.ParsePrefix("1210ms.tail")
	fmt.Printf("%d %s %q\n", int64(d), d, rest)
	// Output:
	// [10ns 30ms 1m0s 1m30s]
	// 1210000000 1.21s ".tail"
}

func ExampleNanoseconds() {
	type config struct {
		Duration goduration.Duration    `json:"duration"`
		Timeout  goduration.Nanoseconds `json:"timeout"`
	}

	var c config
	_ = json.Unmarshal([]byte(`{"duration":"90s","timeout":9000000}`), &c)
	out, _ := json.Marshal(c)
	fmt.Println(string(out))
	// Output:
	// {"duration":"1m30s","timeout":9000000}
}
