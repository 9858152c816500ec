package benchmark

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/time/rate"

	"gospeed/progress"
	"gospeed/report"
)

// Case is one labeled loop of the suite.
type Case struct {
	Label string
	Run   func(*Tester) (Result, error)
}

// Sections returns the benchmarks in the order they run, grouped the way the
// report separates them with blank lines.
func Sections() [][]Case {
	return [][]Case{
		{
			{"reflIntMath", (*Tester).ReflIntMath},
			{"reflFloatMath", (*Tester).ReflFloatMath},
		},
		{
			{"intMath", (*Tester).IntMath},
			{"floatMath", (*Tester).FloatMath},
		},
		{
			{"localAccesses", (*Tester).LocalAccesses},
			{"localSets", (*Tester).LocalSets},
		},
		{
			{"slotAccesses", (*Tester).SlotAccesses},
			{"slotSets", (*Tester).SlotSets},
		},
		{
			{"blockActivations", (*Tester).BlockActivations},
			{"instantiations", (*Tester).Instantiations},
		},
	}
}

// CaseCount returns the number of benchmarks in the suite.
func CaseCount() int {
	n := 0
	for _, section := range Sections() {
		n += len(section)
	}
	return n
}

// RunSuite runs every benchmark in order and writes the report to printer.
// It stops between sections when ctx is cancelled.
func RunSuite(ctx context.Context, params BenchmarkParams, printer *report.Printer, bar *progress.ProgressBar, logger hclog.Logger) ([]Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	defer bar.Done()

	tester := NewTester(params.Iterations)
	results := make([]Result, 0, CaseCount())
	start := time.Now()

	if err := printer.Blank(); err != nil {
		return results, err
	}
	sections := Sections()
	var pause *rate.Limiter
	for i, section := range sections {
		if i > 0 {
			if err := printer.Blank(); err != nil {
				return results, err
			}
		}
		if pause != nil {
			if err := pause.Wait(ctx); err != nil {
				return results, fmt.Errorf("waiting for cooldown: %w", err)
			}
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		for _, c := range section {
			bar.Step(c.Label)
			res, err := c.Run(tester)
			if err != nil {
				return results, err
			}
			// Throughput is reported against the configured count, not res.Ops.
			if err := printer.Result(res.Label, params.Iterations, res.Elapsed); err != nil {
				return results, err
			}
			logger.Debug("benchmark finished", "label", res.Label, "ops", res.Ops, "elapsed", res.Elapsed)
			results = append(results, res)
			bar.Advance()
		}
		if params.Cooldown > 0 && i < len(sections)-1 {
			pause = cooldown(params.Cooldown)
		}
	}

	if err := printer.Version(); err != nil {
		return results, err
	}
	if err := printer.Blank(); err != nil {
		return results, err
	}
	if err := printer.Footer(); err != nil {
		return results, err
	}
	if err := printer.Blank(); err != nil {
		return results, err
	}

	logger.Info("suite finished", "benchmarks", len(results), "elapsed", time.Since(start))
	return results, nil
}

// cooldown returns a limiter whose next Wait blocks for the full pause d,
// counted from now.
func cooldown(d time.Duration) *rate.Limiter {
	limiter := rate.NewLimiter(rate.Every(d), 1)
	limiter.Allow()
	return limiter
}
