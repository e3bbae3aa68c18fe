package console

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/sortlab/sortlab/session"
)

func run(s *session.Session, script ...string) string {
	out := &bytes.Buffer{}
	New(s, strings.NewReader(strings.Join(script, "\n")+"\n"), out).Run()
	return out.String()
}

func TestConsole_RegisterAndSort(t *testing.T) {

	s := session.New()
	output := run(s,
		"1", // register
		"2", // quantity
		"Zeta", "support", "1",
		"Alpha", "control", "5",
		"2", // sort by name
		"0", // exit
	)

	AssertTrue(strings.Contains(output, "Registration complete: 2 records."))
	AssertTrue(strings.Contains(output, "Sort by NAME done"))
	AssertTrue(s.SortedByName())

	records := s.Records()
	AssertEqual(records[0].Name, "Alpha")
	AssertEqual(records[1].Name, "Zeta")
}

func TestConsole_RegisterDefaultsAndRetries(t *testing.T) {

	s := session.New()
	output := run(s,
		"1",
		"1",
		"",   // empty name -> sentinel
		"",   // empty category -> sentinel
		"99", // invalid priority, retried
		"7",
		"0",
	)

	AssertTrue(strings.Contains(output, "Invalid value. Try again."))

	records := s.Records()
	AssertEqual(records[0].Name, "SEM_NOME")
	AssertEqual(records[0].Category, "GENERIC")
	AssertEqual(records[0].Priority, 7)
}

func TestConsole_SearchOffersNameSort(t *testing.T) {

	s := session.New()
	output := run(s,
		"1",
		"2",
		"Zeta", "support", "1",
		"Mu", "control", "3",
		"5",  // search without sorting first
		"y",  // accept running the name sort
		"mu", // key
		"0",
	)

	AssertTrue(strings.Contains(output, "Binary search requires records sorted by NAME."))
	AssertTrue(strings.Contains(output, "Record found at position 0 (ID 1):"))
	AssertTrue(s.SortedByName())
}

func TestConsole_SearchCancelled(t *testing.T) {

	s := session.New()
	output := run(s,
		"1",
		"1",
		"Solo", "control", "1",
		"5",
		"n",
		"0",
	)

	AssertTrue(strings.Contains(output, "Search cancelled."))
	AssertFalse(s.SortedByName())
}

func TestConsole_SearchNotFound(t *testing.T) {

	s := session.New()
	output := run(s,
		"1",
		"1",
		"Solo", "control", "1",
		"2", // sort by name first
		"5",
		"Omega",
		"0",
	)

	AssertTrue(strings.Contains(output, "Record 'Omega' not found."))
}

func TestConsole_EmptyRegistry(t *testing.T) {

	s := session.New()
	output := run(s, "2", "5", "6", "0")

	AssertTrue(strings.Contains(output, "No records registered."))
	AssertTrue(strings.Contains(output, "[empty]"))
}

func TestConsole_InvalidInput(t *testing.T) {

	s := session.New()
	output := run(s, "x", "42", "0")

	AssertTrue(strings.Contains(output, "Invalid input."))
	AssertTrue(strings.Contains(output, "Invalid option."))
}

func TestConsole_Results(t *testing.T) {

	s := session.New()
	output := run(s,
		"1",
		"2",
		"Zeta", "support", "1",
		"Alpha", "control", "5",
		"2", // sort by name
		"4", // sort by priority
		"7", // show results
		"0",
	)

	AssertTrue(strings.Contains(output, "--- Results, cheapest first (total: 2) ---"))
	AssertTrue(strings.Contains(output, session.OpSortByName))
	AssertTrue(strings.Contains(output, session.OpSortByPriority))
}
