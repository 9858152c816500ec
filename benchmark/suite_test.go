package benchmark

import (
	"bytes"
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gospeed/progress"
	"gospeed/report"
)

var resultLine = regexp.MustCompile(`^Go (\w+)\t+ := (\d+\.\d{2})$`)

func runSuite(t *testing.T, params BenchmarkParams) ([]Result, []string) {
	t.Helper()
	var out bytes.Buffer
	results, err := RunSuite(context.Background(), params, report.NewPrinter(&out, false), nil, hclog.NewNullLogger())
	require.NoError(t, err)
	return results, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

// shape replaces every figure with a placeholder so two runs can be compared.
func shape(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if m := resultLine.FindStringSubmatch(line); m != nil {
			out[i] = m[1]
			continue
		}
		out[i] = line
	}
	return out
}

func TestRunSuite_OutputOrder(t *testing.T) {
	results, lines := runSuite(t, BenchmarkParams{Iterations: 8, PinCPU: -1})

	want := []string{
		"",
		"reflIntMath",
		"reflFloatMath",
		"",
		"intMath",
		"floatMath",
		"",
		"localAccesses",
		"localSets",
		"",
		"slotAccesses",
		"slotSets",
		"",
		"blockActivations",
		"instantiations",
	}
	require.Len(t, lines, len(want)+4)
	assert.Equal(t, want, shape(lines[:len(want)]))

	assert.True(t, strings.HasPrefix(lines[15], "Go version\t\t := \"go"), lines[15])
	assert.Equal(t, "", lines[16])
	assert.Equal(t, "// values in millions per second", lines[17])
	assert.Equal(t, "", lines[18])

	require.Len(t, results, CaseCount())
	for _, res := range results {
		assert.Equal(t, 8, res.Ops, res.Label)
	}
}

func TestRunSuite_ValuesAreFinite(t *testing.T) {
	_, lines := runSuite(t, BenchmarkParams{Iterations: 64, PinCPU: -1})

	count := 0
	for _, line := range lines {
		m := resultLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		count++
		value, err := strconv.ParseFloat(m[2], 64)
		require.NoError(t, err)
		assert.False(t, math.IsInf(value, 0), line)
		assert.False(t, math.IsNaN(value), line)
		assert.GreaterOrEqual(t, value, 0.0, line)
	}
	assert.Equal(t, CaseCount(), count)
}

func TestRunSuite_StructureIsRepeatable(t *testing.T) {
	params := BenchmarkParams{Iterations: 16, PinCPU: -1}
	_, first := runSuite(t, params)
	_, second := runSuite(t, params)

	assert.Equal(t, shape(first), shape(second))
}

func TestRunSuite_Cooldown(t *testing.T) {
	start := time.Now()
	results, _ := runSuite(t, BenchmarkParams{Iterations: 8, Cooldown: 10 * time.Millisecond, PinCPU: -1})

	assert.Len(t, results, CaseCount())
	// A full pause follows each of the first four sections.
	assert.GreaterOrEqual(t, time.Since(start), 38*time.Millisecond)
}

func TestCooldown_FullPauseFromNow(t *testing.T) {
	pause := cooldown(20 * time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	start := time.Now()
	require.NoError(t, pause.Wait(context.Background()))
	waited := time.Since(start)

	// Only the time already spent since the pause began is subtracted.
	assert.GreaterOrEqual(t, waited, 13*time.Millisecond)
}

func TestCooldown_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cooldown(time.Hour).Wait(ctx)
	assert.Error(t, err)
}

func TestRunSuite_InvalidParams(t *testing.T) {
	var out bytes.Buffer
	_, err := RunSuite(context.Background(), BenchmarkParams{Iterations: 7}, report.NewPrinter(&out, false), nil, hclog.NewNullLogger())
	assert.ErrorIs(t, err, ErrInvalidIterations)
	assert.Empty(t, out.String())
}

func TestRunSuite_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	results, err := RunSuite(ctx, BenchmarkParams{Iterations: 8}, report.NewPrinter(&out, false), nil, hclog.NewNullLogger())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.NotContains(t, out.String(), report.Footer)
}

func TestRunSuite_CancelledFinishesProgressBar(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, bars bytes.Buffer
	bar := progress.NewProgressBar(int64(CaseCount()), &bars)
	_, err := RunSuite(ctx, BenchmarkParams{Iterations: 8}, report.NewPrinter(&out, false), bar, hclog.NewNullLogger())
	require.ErrorIs(t, err, context.Canceled)

	assert.True(t, bar.Finished())
	assert.Contains(t, bars.String(), "done")
}

func TestRunSuite_ProgressBarCountsBenchmarks(t *testing.T) {
	var out, bars bytes.Buffer
	bar := progress.NewProgressBar(int64(CaseCount()), &bars)
	_, err := RunSuite(context.Background(), BenchmarkParams{Iterations: 8}, report.NewPrinter(&out, false), bar, hclog.NewNullLogger())
	require.NoError(t, err)

	assert.True(t, bar.Finished())
	assert.Equal(t, int64(CaseCount()), bar.Current())
}

func TestSections(t *testing.T) {
	assert.Equal(t, 10, CaseCount())

	seen := map[string]bool{}
	for _, section := range Sections() {
		assert.Len(t, section, 2)
		for _, c := range section {
			assert.False(t, seen[c.Label], "duplicate label %s", c.Label)
			seen[c.Label] = true
		}
	}
}
