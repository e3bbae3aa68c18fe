package main

import (
	"fmt"

	"github.com/sortlab/sortlab/engine"
	"github.com/sortlab/sortlab/registry"
)

func TestSortByName(c Config) {
	runSort(c, "NAME (bubble)", func(e *engine.Engine, records []registry.Record) engine.Metrics {
		return e.SortByName(records)
	})
}

func TestSortByCategory(c Config) {
	runSort(c, "CATEGORY (insertion)", func(e *engine.Engine, records []registry.Record) engine.Metrics {
		return e.SortByCategory(records)
	})
}

func TestSortByPriority(c Config) {
	runSort(c, "PRIORITY (selection)", func(e *engine.Engine, records []registry.Record) engine.Metrics {
		return e.SortByPriority(records)
	})
}

func runSort(c Config, name string, sort func(*engine.Engine, []registry.Record) engine.Metrics) {

	fmt.Printf("\n=== sort by %s, n = %d, bound = %d ===\n", name, c.N, quadraticBound(c.N))

	e := engine.New()
	records := GenerateRecords(c.N, c.Seed)

	for run := 0; run < c.Runs; run++ {
		m := sort(e, CopyRecords(records))
		fmt.Printf("run %d: comparisons = %d, time = %s\n", run+1, m.Comparisons, m.Elapsed)
	}

	// One more round over already sorted input to show the best case.
	sorted := CopyRecords(records)
	sort(e, sorted)
	m := sort(e, sorted)
	fmt.Printf("sorted input: comparisons = %d, time = %s\n", m.Comparisons, m.Elapsed)
}
