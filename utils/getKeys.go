package utils

import (
	"sort"
)

// GetKeys returns the keys of m sorted alphabetically, handy for stable
// error messages.
func GetKeys[T any](m map[string]T) []string {
	keys := []string{}
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
