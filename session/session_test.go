package session

import (
	"testing"
	"time"

	"github.com/fulldump/biff"

	"github.com/sortlab/sortlab/engine"
	"github.com/sortlab/sortlab/registry"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.now = c.now.Add(time.Microsecond)
	return c.now
}

func exampleRecords() []registry.Record {
	return []registry.Record{
		{Name: "Zeta", Category: "x", Priority: 1},
		{Name: "Alpha", Category: "y", Priority: 5},
		{Name: "Mu", Category: "x", Priority: 3},
	}
}

func TestSession(t *testing.T) {

	biff.Alternative("Load records", func(a *biff.A) {

		s := NewWithEngine(engine.NewWithClock(&testClock{}))

		biff.AssertNil(s.Load(exampleRecords()))
		biff.AssertEqual(s.Len(), 3)
		biff.AssertFalse(s.SortedByName())

		a.Alternative("Sort by name enables search", func(a *biff.A) {

			result, err := s.SortByName()
			biff.AssertNil(err)
			biff.AssertEqual(result.Operation, OpSortByName)
			biff.AssertEqual(result.Comparisons, uint64(3))
			biff.AssertTrue(s.SortedByName())

			records := s.Records()
			biff.AssertEqual(records[0].Name, "Alpha")
			biff.AssertEqual(records[2].Name, "Zeta")

			a.Alternative("Search present key", func(a *biff.A) {
				search, err := s.Search("mu")
				biff.AssertNil(err)
				biff.AssertTrue(search.Found)
				biff.AssertEqual(search.Index, 1)
				biff.AssertEqual(search.Record.Name, "Mu")
				biff.AssertEqual(search.Result.Comparisons, uint64(1))
			})

			a.Alternative("Search absent key", func(a *biff.A) {
				search, err := s.Search("Omega")
				biff.AssertNil(err)
				biff.AssertFalse(search.Found)
				biff.AssertEqual(search.Index, engine.NotFound)
				biff.AssertNil(search.Record)
			})

			a.Alternative("Other sorts invalidate the name order", func(a *biff.A) {
				_, err := s.SortByCategory()
				biff.AssertNil(err)
				biff.AssertFalse(s.SortedByName())

				_, err = s.Search("Mu")
				biff.AssertEqual(err, ErrorNotSortedByName)
			})

			a.Alternative("Reload invalidates the name order", func(a *biff.A) {
				biff.AssertNil(s.Load(exampleRecords()))
				biff.AssertFalse(s.SortedByName())
			})
		})

		a.Alternative("Sort by priority", func(a *biff.A) {

			result, err := s.SortByPriority()
			biff.AssertNil(err)
			biff.AssertEqual(result.Comparisons, uint64(3))

			records := s.Records()
			biff.AssertEqual(records[0].Priority, 5)
			biff.AssertEqual(records[1].Priority, 3)
			biff.AssertEqual(records[2].Priority, 1)
		})

		a.Alternative("Search before sorting", func(a *biff.A) {
			_, err := s.Search("Mu")
			biff.AssertEqual(err, ErrorNotSortedByName)
		})
	})
}

func TestSession_EmptyRegistry(t *testing.T) {

	s := New()

	_, err := s.SortByName()
	biff.AssertEqual(err, ErrorEmptyRegistry)

	_, err = s.SortByCategory()
	biff.AssertEqual(err, ErrorEmptyRegistry)

	_, err = s.SortByPriority()
	biff.AssertEqual(err, ErrorEmptyRegistry)

	_, err = s.Search("anything")
	biff.AssertEqual(err, ErrorEmptyRegistry)
}

func TestSession_Journal(t *testing.T) {

	s := NewWithEngine(engine.NewWithClock(&testClock{}))
	biff.AssertNil(s.Load(exampleRecords()))

	s.SortByName()     // 3 comparisons
	s.Search("mu")     // 1 comparison
	s.SortByPriority() // 3 comparisons

	results := s.Results()
	biff.AssertEqual(len(results), 3)
	biff.AssertEqual(results[0].Operation, OpSortByName)
	biff.AssertEqual(results[1].Operation, OpSearchByName)
	biff.AssertEqual(results[2].Operation, OpSortByPriority)
	for _, result := range results {
		biff.AssertNotEqual(result.ID, "")
	}

	leaderboard := s.Leaderboard()
	biff.AssertEqual(len(leaderboard), 3)
	biff.AssertEqual(leaderboard[0].Operation, OpSearchByName)
	// ties keep their journal order
	biff.AssertEqual(leaderboard[1].Operation, OpSortByName)
	biff.AssertEqual(leaderboard[2].Operation, OpSortByPriority)
}

func TestSession_LoadValidation(t *testing.T) {

	s := New()

	err := s.Load([]registry.Record{{Name: "bad", Category: "x", Priority: 0}})
	biff.AssertNotNil(err)
	biff.AssertEqual(s.Len(), 0)
}
