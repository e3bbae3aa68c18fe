package registry

import (
	"fmt"
)

// Capacity is the fixed maximum number of records a registry can hold.
const Capacity = 20

// Registry is the bounded in-memory collection of records. It lives for
// the duration of one session, there is no persistence. Rows is exposed
// so the engines can reorder it in place.
type Registry struct {
	Rows []Record
}

func New() *Registry {
	return &Registry{
		Rows: []Record{},
	}
}

// Load validates and replaces the whole registry content. Any previous
// rows are discarded, even on partial input: either every record is
// accepted or none is.
func (r *Registry) Load(records []Record) error {

	if len(records) > Capacity {
		return fmt.Errorf("too many records: %d, capacity is %d", len(records), Capacity)
	}

	rows := make([]Record, 0, len(records))
	for i, record := range records {
		clean, err := Sanitize(record)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		rows = append(rows, clean)
	}

	r.Rows = rows

	return nil
}

func (r *Registry) Len() int {
	return len(r.Rows)
}

// Records returns a copy, safe to render while the engines mutate Rows.
func (r *Registry) Records() []Record {
	records := make([]Record, len(r.Rows))
	copy(records, r.Rows)
	return records
}
