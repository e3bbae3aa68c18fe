package main

import (
	"log"
	"strings"

	"github.com/fulldump/goconfig"

	"github.com/sortlab/sortlab/registry"
	"github.com/sortlab/sortlab/utils"
)

type Config struct {
	Test string `usage:"name of the test: ALL | NAME | CATEGORY | PRIORITY | SEARCH"`
	N    int    `usage:"number of records"`
	Seed int64  `usage:"random seed"`
	Runs int    `usage:"repetitions per test"`
}

func main() {

	c := Config{
		Test: "ALL",
		N:    registry.Capacity,
		Seed: 42,
		Runs: 1,
	}
	goconfig.Read(&c)

	if c.N < 0 {
		c.N = 0
	}
	if c.N > registry.Capacity {
		c.N = registry.Capacity
	}
	if c.Runs < 1 {
		c.Runs = 1
	}

	tests := map[string]func(Config){
		"NAME":     TestSortByName,
		"CATEGORY": TestSortByCategory,
		"PRIORITY": TestSortByPriority,
		"SEARCH":   TestSearch,
	}

	name := strings.ToUpper(c.Test)
	if name == "ALL" {
		for _, k := range utils.GetKeys(tests) {
			tests[k](c)
		}
		return
	}

	test, exists := tests[name]
	if !exists {
		log.Fatalf("Unknown test %s, must be ALL | %s", c.Test, strings.Join(utils.GetKeys(tests), " | "))
	}
	test(c)
}
