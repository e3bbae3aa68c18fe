package engine

import (
	"time"
)

// Metrics is the cost report of one algorithm invocation. Comparisons
// counts element-pair (or probe) evaluations, never swaps or shifts.
// Elapsed is measured around the algorithm body only, input and output
// are never included.
type Metrics struct {
	Comparisons uint64        `json:"comparisons"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Clock provides the timestamps around each algorithm run. Tests inject
// a fake to assert on Elapsed without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
