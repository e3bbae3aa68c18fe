package engine

import (
	"github.com/sortlab/sortlab/registry"
)

// Engine runs the instrumented algorithms over a record sequence. Each
// sort reorders the slice in place and returns its Metrics. Every
// algorithm is specialized to one field on purpose, there is no generic
// sort framework here.
type Engine struct {
	clock Clock
}

func New() *Engine {
	return NewWithClock(systemClock{})
}

func NewWithClock(clock Clock) *Engine {
	return &Engine{
		clock: clock,
	}
}

// SortByName orders records by case-insensitive name, ascending, with a
// bubble sort: repeated passes over adjacent pairs, one comparison
// charged per pair examined. A pass without swaps terminates early, its
// comparisons still count. Stable by construction.
func (e *Engine) SortByName(records []registry.Record) Metrics {

	m := Metrics{}
	t0 := e.clock.Now()

	n := len(records)
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for i := 0; i < n-1-pass; i++ {
			m.Comparisons++
			if CompareFold(records[i].Name, records[i+1].Name) > 0 {
				records[i], records[i+1] = records[i+1], records[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	m.Elapsed = e.clock.Now().Sub(t0)
	return m
}

// SortByCategory orders records by case-insensitive category, ascending,
// with an insertion sort. The comparison that stops the shift is counted
// before breaking; reaching the head of the slice charges nothing.
// Stable by construction.
func (e *Engine) SortByCategory(records []registry.Record) Metrics {

	m := Metrics{}
	t0 := e.clock.Now()

	n := len(records)
	for i := 1; i < n; i++ {
		key := records[i]
		j := i - 1
		for j >= 0 {
			m.Comparisons++
			if CompareFold(records[j].Category, key.Category) > 0 {
				records[j+1] = records[j]
				j--
			} else {
				break
			}
		}
		records[j+1] = key
	}

	m.Elapsed = e.clock.Now().Sub(t0)
	return m
}

// SortByPriority orders records by priority, descending, with a selection
// sort: one comparison per scanned candidate, so always n(n-1)/2 for
// n >= 1. The swap happens only when the maximum moved. Not stable, equal
// priorities may change relative order.
func (e *Engine) SortByPriority(records []registry.Record) Metrics {

	m := Metrics{}
	t0 := e.clock.Now()

	n := len(records)
	for i := 0; i < n-1; i++ {
		max := i
		for j := i + 1; j < n; j++ {
			m.Comparisons++
			if records[j].Priority > records[max].Priority {
				max = j
			}
		}
		if max != i {
			records[i], records[max] = records[max], records[i]
		}
	}

	m.Elapsed = e.clock.Now().Sub(t0)
	return m
}
