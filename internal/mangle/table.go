package mangle

import (
	"sort"

	"github.com/maruel/natural"
)

// Table is a unit's mangled-symbol table: mangled name to the originally
// declared name, as produced by a pass that mangles every Def/GenericDef.
type Table struct {
	entries map[string]string
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{entries: make(map[string]string)}
}

// Add records mangled as the encoding of declaredName.
func (t *Table) Add(mangled, declaredName string) {
	t.entries[mangled] = declaredName
}

// Entry is one row of a listed symbol table.
type Entry struct {
	Mangled  string
	Declared string
}

// List returns every entry in the table ordered by declared name using
// natural sort (so `add2` sorts before `add10`), the ordering a human
// expects from a generated symbol table that may contain
// numerically-suffixed overloads.
func (t *Table) List() []Entry {
	entries := make([]Entry, 0, len(t.entries))
	for mangled, declared := range t.entries {
		entries = append(entries, Entry{Mangled: mangled, Declared: declared})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Declared == entries[j].Declared {
			return entries[i].Mangled < entries[j].Mangled
		}
		return natural.Less(entries[i].Declared, entries[j].Declared)
	})
	return entries
}
