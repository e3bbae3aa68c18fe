package engine

import (
	"github.com/sortlab/sortlab/registry"
)

// NotFound is the index returned by SearchByName when no record matches.
const NotFound = -1

// SearchByName runs a binary search for key over records, charging one
// comparison per midpoint probe. It returns the matching index or
// NotFound once the interval empties.
//
// Precondition: records must already be sorted ascending by name under
// CompareFold. The engine does not verify it, the caller tracks that
// state; results on an unsorted sequence are unspecified.
func (e *Engine) SearchByName(records []registry.Record, key string) (int, Metrics) {

	m := Metrics{}
	t0 := e.clock.Now()

	index := NotFound
	low, high := 0, len(records)-1
	for low <= high {
		mid := low + (high-low)/2
		m.Comparisons++
		cmp := CompareFold(records[mid].Name, key)
		if cmp == 0 {
			index = mid
			break
		}
		if cmp < 0 {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	m.Elapsed = e.clock.Now().Sub(t0)
	return index, m
}
