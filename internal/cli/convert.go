package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/babarot/goduration"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

var ErrNoInput = errors.New("no durations given: pass them as arguments or on stdin")

// Result is the outcome of converting a single input.
type Result struct {
	Input    string
	Duration goduration.Duration
	Err      error
}

// Convert converts every argument, or every non-blank stdin line when
// there are no arguments, and renders the results in input order. A bad
// input does not stop the others; it is reported in the output and makes
// Convert return an error at the end.
func (c CLI) Convert(ctx context.Context, args []string) error {
	slog.Debug("cli.convert started")
	defer slog.Debug("cli.convert finished")

	inputs := args
	if len(inputs) == 0 {
		var err error
		inputs, err = readInputs(c.stdin)
		if err != nil {
			return fmt.Errorf("read inputs: %w", err)
		}
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}

	if timeout := c.config.Core.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout.Std())
		defer cancel()
	}

	results, err := convertAll(ctx, inputs, c.option.FromNanos, c.config.Core.Concurrency)
	if err != nil {
		return err
	}

	if err := c.renderer().Render(c.stdout, results); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	failed := lo.CountBy(results, func(r Result) bool {
		return r.Err != nil
	})
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be converted", failed, len(results))
	}
	return nil
}

func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs, scanner.Err()
}

// convertAll converts inputs with at most limit conversions in flight.
// The only error it returns is ctx's.
func convertAll(ctx context.Context, inputs []string, fromNanos bool, limit int) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for i, input := range inputs {
		i, input := i, input // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = convert(input, fromNanos)
			slog.Debug("converted",
				"input", input,
				"nanoseconds", results[i].Duration.Nanoseconds(),
				"error", results[i].Err,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	return results, nil
}

func convert(input string, fromNanos bool) Result {
	r := Result{Input: input}
	if !fromNanos {
		r.Duration, r.Err = goduration.Parse(input)
		return r
	}

	n, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		r.Err = fmt.Errorf("%q is not an integer number of nanoseconds: %w", input, goduration.ErrInvalidDuration)
		return r
	}
	r.Duration = goduration.Duration(n)
	return r
}
