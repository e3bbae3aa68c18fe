package engine

import (
	"testing"
	"time"

	. "github.com/fulldump/biff"

	"github.com/sortlab/sortlab/registry"
)

func sortedRecords() []registry.Record {
	return []registry.Record{
		{Name: "Alpha", Category: "y", Priority: 5},
		{Name: "Mu", Category: "x", Priority: 3},
		{Name: "Zeta", Category: "x", Priority: 1},
	}
}

func TestSearchByName(t *testing.T) {

	// First probe lands on the middle element
	index, m := New().SearchByName(sortedRecords(), "mu")

	AssertEqual(index, 1)
	AssertEqual(m.Comparisons, uint64(1))
}

func TestSearchByName_CaseInsensitive(t *testing.T) {

	records := sortedRecords()
	e := New()

	index, _ := e.SearchByName(records, "ZETA")
	AssertEqual(index, 2)

	index, _ = e.SearchByName(records, "alpha")
	AssertEqual(index, 0)
}

func TestSearchByName_NotFound(t *testing.T) {

	index, m := New().SearchByName(sortedRecords(), "Omega")

	AssertEqual(index, NotFound)
	// probes Mu (go right), then Zeta (go left), interval empties
	AssertEqual(m.Comparisons, uint64(2))
}

func TestSearchByName_Empty(t *testing.T) {

	index, m := New().SearchByName([]registry.Record{}, "anything")

	AssertEqual(index, NotFound)
	AssertEqual(m.Comparisons, uint64(0))
}

func TestSearchByName_SingleElement(t *testing.T) {

	records := []registry.Record{{Name: "Solo"}}
	e := New()

	index, m := e.SearchByName(records, "solo")
	AssertEqual(index, 0)
	AssertEqual(m.Comparisons, uint64(1))

	index, m = e.SearchByName(records, "other")
	AssertEqual(index, NotFound)
	AssertEqual(m.Comparisons, uint64(1))
}

func TestSearchByName_EveryKeyWithinBound(t *testing.T) {

	records := []registry.Record{}
	for c := byte('a'); c <= 't'; c++ { // full capacity, 20 names
		records = append(records, registry.Record{Name: string([]byte{c, c, c})})
	}
	e := New()

	bound := uint64(5) // ceil(log2(20+1))
	for i, record := range records {
		index, m := e.SearchByName(records, record.Name)
		AssertEqual(index, i)
		AssertTrue(m.Comparisons <= bound)
	}

	index, m := e.SearchByName(records, "zzz")
	AssertEqual(index, NotFound)
	AssertTrue(m.Comparisons <= bound)
}

func TestSearchByName_ElapsedUsesClock(t *testing.T) {

	clock := &steppingClock{step: time.Second}
	_, m := NewWithClock(clock).SearchByName(sortedRecords(), "Mu")

	AssertEqual(m.Elapsed, time.Second)
}
