package benchmark

import (
	"errors"
	"time"
)

var ErrTimerNotStarted = errors.New("timer was not started")

// Timer measures one timed section.
type Timer struct {
	start time.Time
}

// Start records the current monotonic time.
func (t *Timer) Start() {
	t.start = time.Now()
}

// Elapsed returns the time since Start.
func (t *Timer) Elapsed() (time.Duration, error) {
	if t.start.IsZero() {
		return 0, ErrTimerNotStarted
	}
	return time.Since(t.start), nil
}

// Reset clears the start time.
func (t *Timer) Reset() {
	t.start = time.Time{}
}
