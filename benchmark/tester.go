package benchmark

import (
	"fmt"
	"time"
)

// Result is the outcome of one timed loop.
type Result struct {
	Label   string
	Ops     int           // Operations the loop was asked to run
	Elapsed time.Duration // Wall-clock time of the loop
	Value   float64       // Running total the operations built up, one contribution per operation
}

// Tester holds the timer and the memory the benchmarks read and write.
type Tester struct {
	Timer

	batches int
	serial  int // numbered by the instantiation benchmark
	data    *operands
}

// operands is filled in by NewTester, outside any timed loop, so the loops
// only ever see these values through memory.
type operands struct {
	ints   [BatchSize]int     // all 5
	floats [BatchSize]float64 // all 5.0
	ones   [BatchSize]int     // all 1
	attrs  [BatchSize]int     // read by slotAccesses, all 1
	sets   [BatchSize]int     // written by slotSets
	made   [BatchSize]*Tester // written by instantiations
	sink   int
}

// NewTester creates a tester running the given number of operations per benchmark.
func NewTester(iterations int) *Tester {
	data := &operands{}
	for k := 0; k < BatchSize; k++ {
		data.ints[k] = 5
		data.floats[k] = 5.0
		data.ones[k] = 1
		data.attrs[k] = 1
	}
	return &Tester{
		batches: iterations / BatchSize,
		data:    data,
	}
}

// foo is the no-op method the call benchmark invokes.
//
//go:noinline
func (t *Tester) foo() int {
	return 1
}

// beginTimer starts timing a loop.
func (t *Tester) beginTimer() {
	t.Start()
}

// EndTimer stops timing and returns the result for a loop that ran ops operations.
func (t *Tester) EndTimer(label string, ops int) (Result, error) {
	elapsed, err := t.Elapsed()
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", label, err)
	}
	t.Reset()
	return Result{Label: label, Ops: ops, Elapsed: elapsed}, nil
}
