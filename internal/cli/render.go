package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/babarot/goduration"
	"github.com/docker/go-units"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type renderer interface {
	Render(w io.Writer, results []Result) error
}

func (c CLI) renderer() renderer {
	switch c.config.Output.Format {
	case "table":
		return tableRenderer{}
	case "json":
		return jsonRenderer{
			nanoseconds: c.option.Nanos || c.config.Output.Encoding == "nanoseconds",
		}
	default:
		return plainRenderer{nanos: c.option.Nanos, color: c.useColor()}
	}
}

func (c CLI) useColor() bool {
	switch c.config.Output.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := c.stdout.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// plainRenderer prints one line per input.
type plainRenderer struct {
	nanos bool
	color bool
}

func (r plainRenderer) Render(w io.Writer, results []Result) error {
	red := color.New(color.FgRed)
	if r.color {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	failure := red.SprintfFunc()

	for _, res := range results {
		var err error
		switch {
		case res.Err != nil:
			_, err = fmt.Fprintln(w, failure("%s: %v", res.Input, res.Err))
		case r.nanos:
			_, err = fmt.Fprintln(w, res.Duration.Nanoseconds())
		default:
			_, err = fmt.Fprintln(w, res.Duration)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type tableRenderer struct{}

func (tableRenderer) Render(w io.Writer, results []Result) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Input", "Duration", "Nanoseconds", "Approx", "Error"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.AppendBulk(lo.Map(results, func(r Result, _ int) []string {
		return r.row()
	}))
	table.Render()
	return nil
}

func (r Result) row() []string {
	if r.Err != nil {
		return []string{r.Input, "", "", "", r.Err.Error()}
	}
	return []string{
		r.Input,
		r.Duration.String(),
		humanize.Comma(r.Duration.Nanoseconds()),
		approx(r.Duration),
		"",
	}
}

// approx describes d in words, e.g. "About a minute".
func approx(d goduration.Duration) string {
	s := units.HumanDuration(d.Abs().Std())
	return lo.Ternary(d < 0, "-"+s, s)
}

// jsonRenderer prints one JSON object per line.
type jsonRenderer struct {
	nanoseconds bool
}

type jsonRecord struct {
	Input    string         `json:"input"`
	Duration json.Marshaler `json:"duration,omitempty"`
	Error    string         `json:"error,omitempty"`
}

func (r jsonRenderer) Render(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	for _, res := range results {
		rec := jsonRecord{Input: res.Input}
		switch {
		case res.Err != nil:
			rec.Error = res.Err.Error()
		case r.nanoseconds:
			rec.Duration = res.Duration.Nanos()
		default:
			rec.Duration = res.Duration
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
