package main

import (
	"math/rand"
	"strings"

	"github.com/sortlab/sortlab/registry"
)

var categories = []string{
	"control", "support", "propulsion", "structure", "energy",
}

func GenerateRecords(n int, seed int64) []registry.Record {

	r := rand.New(rand.NewSource(seed))

	records := make([]registry.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, registry.Record{
			Name:     randomName(r),
			Category: categories[r.Intn(len(categories))],
			Priority: registry.MinPriority + r.Intn(registry.MaxPriority-registry.MinPriority+1),
		})
	}

	return records
}

func randomName(r *rand.Rand) string {
	b := strings.Builder{}
	length := 3 + r.Intn(10)
	for i := 0; i < length; i++ {
		b.WriteByte(byte('a' + r.Intn(26)))
	}
	return b.String()
}

func CopyRecords(records []registry.Record) []registry.Record {
	c := make([]registry.Record, len(records))
	copy(c, records)
	return c
}

// quadraticBound is the comparison ceiling n(n-1)/2 shared by all three
// sorts.
func quadraticBound(n int) uint64 {
	if n < 2 {
		return 0
	}
	return uint64(n) * uint64(n-1) / 2
}

// logBound is the probe ceiling of a binary search over n elements.
func logBound(n int) uint64 {
	bound := uint64(0)
	for interval := n; interval > 0; interval /= 2 {
		bound++
	}
	return bound
}
