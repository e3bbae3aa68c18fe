package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sortlab/sortlab/registry"
	"github.com/sortlab/sortlab/session"
)

// Console is the interactive menu around one session. It reads lines and
// writes prompts on the given pair, so tests can drive a whole dialogue
// with a couple of buffers.
type Console struct {
	session *session.Session
	in      *bufio.Scanner
	out     io.Writer
}

func New(s *session.Session, in io.Reader, out io.Writer) *Console {
	return &Console{
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

func (c *Console) Run() {

	for {
		fmt.Fprint(c.out, `
========== SORTLAB ==========
1 - Register records
2 - Sort by NAME (bubble sort)
3 - Sort by CATEGORY (insertion sort)
4 - Sort by PRIORITY (selection sort, descending)
5 - Search record by NAME (binary search) [requires sort by NAME]
6 - Show records
7 - Show results
0 - Exit
Choice: `)

		line, ok := c.readLine()
		if !ok {
			return
		}

		option, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input.")
			continue
		}

		switch option {
		case 0:
			fmt.Fprintln(c.out, "Bye.")
			return
		case 1:
			c.register()
			c.showRecords()
		case 2:
			c.sort("NAME", c.session.SortByName)
		case 3:
			c.sort("CATEGORY", c.session.SortByCategory)
		case 4:
			c.sort("PRIORITY", c.session.SortByPriority)
		case 5:
			c.search()
		case 6:
			c.showRecords()
		case 7:
			c.showResults()
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) register() {

	fmt.Fprintf(c.out, "\nHow many records? (1-%d): ", registry.Capacity)
	line, ok := c.readLine()
	if !ok {
		return
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || quantity < 1 {
		fmt.Fprintln(c.out, "Invalid input, registration aborted.")
		return
	}
	if quantity > registry.Capacity {
		quantity = registry.Capacity
	}

	records := make([]registry.Record, 0, quantity)
	for i := 0; i < quantity; i++ {
		fmt.Fprintf(c.out, "\n--- Record %d ---\n", i+1)

		fmt.Fprint(c.out, "Name: ")
		name, ok := c.readLine()
		if !ok {
			return
		}

		fmt.Fprint(c.out, "Category (ex: control, support, propulsion): ")
		category, ok := c.readLine()
		if !ok {
			return
		}

		priority, ok := c.readPriority()
		if !ok {
			return
		}

		records = append(records, registry.Record{
			Name:     name,
			Category: category,
			Priority: priority,
		})
	}

	err = c.session.Load(records)
	if err != nil {
		fmt.Fprintln(c.out, "Registration failed:", err.Error())
		return
	}

	fmt.Fprintf(c.out, "\nRegistration complete: %d records.\n", c.session.Len())
}

func (c *Console) readPriority() (int, bool) {
	for {
		fmt.Fprintf(c.out, "Priority (%d-%d): ", registry.MinPriority, registry.MaxPriority)
		line, ok := c.readLine()
		if !ok {
			return 0, false
		}
		priority, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || priority < registry.MinPriority || priority > registry.MaxPriority {
			fmt.Fprintln(c.out, "Invalid value. Try again.")
			continue
		}
		return priority, true
	}
}

func (c *Console) sort(field string, run func() (*session.Result, error)) {

	result, err := run()
	if err == session.ErrorEmptyRegistry {
		fmt.Fprintln(c.out, "No records registered.")
		return
	}
	if err != nil {
		fmt.Fprintln(c.out, "Sort failed:", err.Error())
		return
	}

	fmt.Fprintf(c.out, "\nSort by %s done: comparisons = %d, time = %s\n", field, result.Comparisons, result.Elapsed)
	c.showRecords()
}

func (c *Console) search() {

	if c.session.Len() == 0 {
		fmt.Fprintln(c.out, "No records registered.")
		return
	}

	if !c.session.SortedByName() {
		fmt.Fprintln(c.out, "Binary search requires records sorted by NAME.")
		fmt.Fprint(c.out, "Run the name sort now? (y/n): ")
		answer, ok := c.readLine()
		if !ok {
			return
		}
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			fmt.Fprintln(c.out, "Search cancelled. Sort by NAME before searching.")
			return
		}
		c.sort("NAME", c.session.SortByName)
	}

	fmt.Fprint(c.out, "Name to search: ")
	key, ok := c.readLine()
	if !ok {
		return
	}

	search, err := c.session.Search(strings.TrimSpace(key))
	if err != nil {
		fmt.Fprintln(c.out, "Search failed:", err.Error())
		return
	}

	if search.Found {
		fmt.Fprintf(c.out, "\nRecord found at position %d (ID %d):\n", search.Index, search.Index+1)
		fmt.Fprintf(c.out, "Name: %s | Category: %s | Priority: %d\n", search.Record.Name, search.Record.Category, search.Record.Priority)
	} else {
		fmt.Fprintf(c.out, "\nRecord '%s' not found.\n", search.Key)
	}
	fmt.Fprintf(c.out, "Binary search: comparisons = %d, time = %s\n", search.Result.Comparisons, search.Result.Elapsed)
}

func (c *Console) showRecords() {

	records := c.session.Records()

	fmt.Fprintf(c.out, "\n--- Records (total: %d) ---\n", len(records))
	if len(records) == 0 {
		fmt.Fprintln(c.out, "[empty]")
		return
	}

	fmt.Fprintf(c.out, "%-3s | %-29s | %-19s | %s\n", "ID", "NAME", "CATEGORY", "PRIORITY")
	fmt.Fprintln(c.out, "----+-------------------------------+---------------------+---------")
	for i, record := range records {
		fmt.Fprintf(c.out, "%-3d | %-29s | %-19s | %-8d\n", i+1, record.Name, record.Category, record.Priority)
	}
}

func (c *Console) showResults() {

	results := c.session.Leaderboard()

	fmt.Fprintf(c.out, "\n--- Results, cheapest first (total: %d) ---\n", len(results))
	if len(results) == 0 {
		fmt.Fprintln(c.out, "[empty]")
		return
	}

	for _, result := range results {
		fmt.Fprintf(c.out, "%-15s | comparisons = %-6d | time = %s\n", result.Operation, result.Comparisons, result.Elapsed)
	}
}
