package session

import (
	"time"

	"github.com/google/btree"
	"github.com/google/uuid"

	"github.com/sortlab/sortlab/engine"
	"github.com/sortlab/sortlab/registry"
)

const (
	OpSortByName     = "sort:name"
	OpSortByCategory = "sort:category"
	OpSortByPriority = "sort:priority"
	OpSearchByName   = "search:name"
)

// Result is one journal entry: the cost of one algorithm invocation.
type Result struct {
	ID          string        `json:"id"`
	Operation   string        `json:"operation"`
	Comparisons uint64        `json:"comparisons"`
	Elapsed     time.Duration `json:"elapsed"`
	Timestamp   int64         `json:"timestamp"`

	seq uint64 // btree tie break, insertion order
}

type SearchResult struct {
	Key    string           `json:"key"`
	Index  int              `json:"index"`
	Found  bool             `json:"found"`
	Record *registry.Record `json:"record,omitempty"`
	Result *Result          `json:"result"`
}

// journal keeps every Result twice: a slice in chronological order and a
// btree ordered by comparison count, so the leaderboard comes out sorted
// without re-sorting on every read.
type journal struct {
	entries []*Result
	cost    *btree.BTreeG[*Result]
	seq     uint64
}

func newJournal() *journal {
	return &journal{
		entries: []*Result{},
		cost: btree.NewG(8, func(a, b *Result) bool {
			if a.Comparisons != b.Comparisons {
				return a.Comparisons < b.Comparisons
			}
			return a.seq < b.seq
		}),
	}
}

func (j *journal) add(operation string, metrics engine.Metrics) *Result {

	j.seq++
	result := &Result{
		ID:          uuid.New().String(),
		Operation:   operation,
		Comparisons: metrics.Comparisons,
		Elapsed:     metrics.Elapsed,
		Timestamp:   time.Now().UnixNano(),
		seq:         j.seq,
	}

	j.entries = append(j.entries, result)
	j.cost.ReplaceOrInsert(result)

	return result
}

func (j *journal) chronological() []*Result {
	results := make([]*Result, len(j.entries))
	copy(results, j.entries)
	return results
}

func (j *journal) byCost() []*Result {
	results := make([]*Result, 0, j.cost.Len())
	j.cost.Ascend(func(r *Result) bool {
		results = append(results, r)
		return true
	})
	return results
}
