// Package alias implements the interpreter's bounded alias table and its
// on-disk format.
package alias

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

// DefaultLimit is the table capacity used when none is configured.
const DefaultLimit = 10

var (
	// ErrNotFound is returned when no entry matches the requested name.
	ErrNotFound = errors.New("alias not found")
	// ErrCapacity is returned when defining an alias into a full table.
	ErrCapacity = errors.New("maximum number of aliases reached")
)

// Alias maps a new command name onto an existing one. Only the command name
// is rewritten at dispatch; an alias never carries arguments.
type Alias struct {
	New string
	Old string
}

// Table is an ordered, bounded collection of aliases. Duplicate names are
// allowed; the earliest-inserted entry wins on lookup and removal. Table
// owns copies of its strings, independent of any input buffer.
type Table struct {
	limit   int
	entries []Alias
}

// NewTable returns an empty table holding at most limit entries.
// Non-positive limits fall back to DefaultLimit.
func NewTable(limit int) *Table {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Table{limit: limit}
}

// Len reports the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Limit reports the table capacity.
func (t *Table) Limit() int { return t.limit }

// Define appends a new entry. A duplicate name appends rather than
// replaces, so the earlier definition keeps winning on lookup.
func (t *Table) Define(newName, oldName string) error {
	if len(t.entries) >= t.limit {
		return ErrCapacity
	}
	t.entries = append(t.entries, Alias{New: newName, Old: oldName})
	return nil
}

// Undefine removes the first entry whose name matches, preserving the
// relative order of the rest.
func (t *Table) Undefine(newName string) error {
	for i, a := range t.entries {
		if a.New == newName {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Resolve returns the target of the first entry whose name matches,
// scanning in insertion order.
func (t *Table) Resolve(name string) (string, bool) {
	for _, a := range t.entries {
		if a.New == name {
			return a.Old, true
		}
	}
	return "", false
}

// All returns the entries in insertion order.
func (t *Table) All() []Alias {
	out := make([]Alias, len(t.entries))
	copy(out, t.entries)
	return out
}

// Save writes one "<new> <old>" line per entry. The format has no escaping,
// so names containing whitespace will not round-trip.
func (t *Table) Save(fs afero.Fs, path string) error {
	fd, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	for _, a := range t.entries {
		if _, err := fmt.Fprintf(fd, "%s %s\n", a.New, a.Old); err != nil {
			return err
		}
	}
	return nil
}

// Load reads whitespace-delimited token pairs from path and appends each
// under the same capacity rule as Define. Reading stops when a full pair
// can't be formed; pairs past capacity are dropped.
func (t *Table) Load(fs afero.Fs, path string) error {
	fd, err := fs.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		newName := scanner.Text()
		if !scanner.Scan() {
			break // dangling name, no pair to form
		}
		_ = t.Define(newName, scanner.Text())
	}
	return scanner.Err()
}
