package benchmark

import (
	"errors"
	"fmt"
	"time"
)

// BatchSize is the number of unrolled operations in one loop iteration
const BatchSize = 8

// DefaultIterations is the operation count each benchmark runs by default
const DefaultIterations = 5000000

var (
	ErrInvalidIterations = errors.New("iterations must be a positive multiple of 8")
	ErrInvalidCooldown   = errors.New("cooldown must not be negative")
)

// BenchmarkParams holds the parameters for all benchmarks
type BenchmarkParams struct {
	Iterations int           // Operations per benchmark
	Cooldown   time.Duration // Pause between benchmark sections
	PinCPU     int           // CPU to pin the benchmark thread to, -1 to leave scheduling alone
	Progress   bool          // Show a progress bar on stderr
	Color      bool          // Colour the labels in the report
}

// DefaultParams returns five million iterations with no cooldown or pinning.
func DefaultParams() BenchmarkParams {
	return BenchmarkParams{
		Iterations: DefaultIterations,
		PinCPU:     -1,
	}
}

// Validate checks the parameters before any benchmark runs.
func (p BenchmarkParams) Validate() error {
	if p.Iterations <= 0 || p.Iterations%BatchSize != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, p.Iterations)
	}
	if p.Cooldown < 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidCooldown, p.Cooldown)
	}
	return nil
}

// Batches returns how many unrolled iterations each loop runs.
func (p BenchmarkParams) Batches() int {
	return p.Iterations / BatchSize
}
