package registry

import (
	"fmt"
	"strings"
)

const (
	// MaxNameLen and MaxCategoryLen bound the visible length of each text
	// field. Longer input is truncated, never rejected.
	MaxNameLen     = 29
	MaxCategoryLen = 19

	MinPriority = 1
	MaxPriority = 10
)

const (
	DefaultName     = "SEM_NOME"
	DefaultCategory = "GENERIC"
)

type Record struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Priority int    `json:"priority"`
}

// Sanitize normalizes a record before it enters the registry: text fields
// are trimmed and truncated to their maximum length, empty ones are
// replaced by the sentinel defaults. A priority outside [1,10] is an
// error, there is no sensible default for it.
func Sanitize(r Record) (Record, error) {

	r.Name = truncate(strings.TrimSpace(r.Name), MaxNameLen)
	if r.Name == "" {
		r.Name = DefaultName
	}

	r.Category = truncate(strings.TrimSpace(r.Category), MaxCategoryLen)
	if r.Category == "" {
		r.Category = DefaultCategory
	}

	if r.Priority < MinPriority || r.Priority > MaxPriority {
		return r, fmt.Errorf("priority %d out of range [%d,%d]", r.Priority, MinPriority, MaxPriority)
	}

	return r, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
