package main

import (
	"fmt"

	"github.com/sortlab/sortlab/engine"
)

func TestSearch(c Config) {

	fmt.Printf("\n=== binary search by NAME, n = %d, bound = %d ===\n", c.N, logBound(c.N))

	e := engine.New()
	records := GenerateRecords(c.N, c.Seed)
	e.SortByName(records)

	worst := uint64(0)
	for _, record := range records {
		index, m := e.SearchByName(records, record.Name)
		if index == engine.NotFound {
			fmt.Printf("BUG: '%s' not found in its own registry\n", record.Name)
		}
		if m.Comparisons > worst {
			worst = m.Comparisons
		}
	}
	fmt.Printf("present keys: %d searches, worst = %d comparisons\n", len(records), worst)

	index, m := e.SearchByName(records, "zzzzzzzzzzzz-absent")
	fmt.Printf("absent key: index = %d, comparisons = %d, time = %s\n", index, m.Comparisons, m.Elapsed)
}
