package session

import (
	"errors"
	"sync"

	"github.com/sortlab/sortlab/engine"
	"github.com/sortlab/sortlab/registry"
)

var (
	ErrorEmptyRegistry   = errors.New("registry is empty")
	ErrorNotSortedByName = errors.New("registry is not sorted by name")
)

// Session is the controller that owns the working registry. It tracks the
// sorted-by-name precondition, routes each operation to the engine and
// journals the metrics of every run. One session, one logical actor: the
// mutex only exists because the HTTP API can reach the same session the
// console owns.
type Session struct {
	mutex        sync.Mutex
	registry     *registry.Registry
	engine       *engine.Engine
	sortedByName bool
	journal      *journal
}

func New() *Session {
	return NewWithEngine(engine.New())
}

func NewWithEngine(e *engine.Engine) *Session {
	return &Session{
		registry: registry.New(),
		engine:   e,
		journal:  newJournal(),
	}
}

// Load replaces the whole collection, like a fresh registration in the
// menu. It always clears the sorted-by-name flag, even when the new rows
// happen to arrive ordered.
func (s *Session) Load(records []registry.Record) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.registry.Load(records)
	if err != nil {
		return err
	}

	s.sortedByName = false
	return nil
}

func (s *Session) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.registry.Len()
}

func (s *Session) Records() []registry.Record {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.registry.Records()
}

func (s *Session) SortedByName() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.sortedByName
}

func (s *Session) SortByName() (*Result, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.registry.Len() == 0 {
		return nil, ErrorEmptyRegistry
	}

	metrics := s.engine.SortByName(s.registry.Rows)
	s.sortedByName = true

	return s.journal.add(OpSortByName, metrics), nil
}

func (s *Session) SortByCategory() (*Result, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.registry.Len() == 0 {
		return nil, ErrorEmptyRegistry
	}

	metrics := s.engine.SortByCategory(s.registry.Rows)
	s.sortedByName = false

	return s.journal.add(OpSortByCategory, metrics), nil
}

func (s *Session) SortByPriority() (*Result, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.registry.Len() == 0 {
		return nil, ErrorEmptyRegistry
	}

	metrics := s.engine.SortByPriority(s.registry.Rows)
	s.sortedByName = false

	return s.journal.add(OpSortByPriority, metrics), nil
}

// Search runs the binary search. The sorted-by-name precondition is
// enforced here, on the caller side of the engine contract: an unsorted
// registry returns ErrorNotSortedByName instead of garbage.
func (s *Session) Search(key string) (*SearchResult, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.registry.Len() == 0 {
		return nil, ErrorEmptyRegistry
	}
	if !s.sortedByName {
		return nil, ErrorNotSortedByName
	}

	index, metrics := s.engine.SearchByName(s.registry.Rows, key)
	result := s.journal.add(OpSearchByName, metrics)

	search := &SearchResult{
		Key:    key,
		Index:  index,
		Found:  index != engine.NotFound,
		Result: result,
	}
	if search.Found {
		record := s.registry.Rows[index]
		search.Record = &record
	}

	return search, nil
}

// Results returns every journaled run in chronological order.
func (s *Session) Results() []*Result {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.journal.chronological()
}

// Leaderboard returns every journaled run ordered by comparison count,
// cheapest first.
func (s *Session) Leaderboard() []*Result {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.journal.byCost()
}
