// Package typemapper implements the process-wide (per compilation unit)
// name-to-Type registry seeded with Rhea's built-in type names.
package typemapper

import "github.com/rhea-lang/rhea/internal/types"

// Mapper is a name -> Type registry. It is not safe for concurrent use;
// the spec's concurrency model gives each compilation unit its own Mapper.
type Mapper struct {
	names map[string]types.Type
}

// New constructs a Mapper seeded with the thirteen built-in type names.
//
// The seeding faithfully corrects the historical bug documented in the
// original TypeMapper::insert_builtin_types, which assigned NothingType to
// the key "ulong" after already binding it to an integer type, silently
// overwriting the real "ulong" entry. "nothing" and "ulong" are bound here
// as two separate, correct entries.
func New() *Mapper {
	m := &Mapper{names: make(map[string]types.Type, 12)}
	builtins := []struct {
		name  string
		basic types.BasicType
	}{
		{"integer", types.Integer},
		{"byte", types.Byte},
		{"float", types.Float},
		{"double", types.Double},
		{"long", types.Long},
		{"uinteger", types.UnsignedInteger},
		{"ubyte", types.UnsignedByte},
		{"ulong", types.UnsignedLong},
		{"boolean", types.Boolean},
		{"string", types.String},
		{"symbol", types.Symbol},
	}
	for _, b := range builtins {
		m.names[b.name] = types.NewSimple(b.basic)
	}
	m.names["any"] = types.AnyType{}
	m.names["nothing"] = types.NothingType{}
	return m
}

// Wildcard is the reserved generic-parameter typename spelled
// "{name: *}" in source and written `$$wildcard$$` internally — must
// match ast.WildcardTypename. It resolves to AnyType directly in Get
// without ever occupying a slot in names, so it needs no seeding in
// New and can never be shadowed by a user declaration going through Add.
const Wildcard = "$$wildcard$$"

// Get returns the Type bound to name, or UnknownType{} if name is absent.
// An absent name is a source-level error for the caller to raise, not an
// error raised by the mapper itself.
func (m *Mapper) Get(name string) types.Type {
	if name == Wildcard {
		return types.AnyType{}
	}
	if t, ok := m.names[name]; ok {
		return t
	}
	return types.UnknownType{}
}

// Has reports whether name is bound, distinguishing "bound to Unknown"
// (which cannot happen via Add) from "absent". Wildcard is always
// reported bound, matching Get's unconditional resolution of it.
func (m *Mapper) Has(name string) bool {
	if name == Wildcard {
		return true
	}
	_, ok := m.names[name]
	return ok
}

// Add binds name to t. It fails if name is already bound — built-ins, and
// any name added earlier, cannot be redefined — or if name is the
// reserved Wildcard spelling, which no declaration may shadow.
func (m *Mapper) Add(name string, t types.Type) error {
	if name == Wildcard {
		return &ReservedNameError{Name: name}
	}
	if _, exists := m.names[name]; exists {
		return &DuplicateNameError{Name: name}
	}
	m.names[name] = t
	return nil
}

// ReservedNameError reports an Add of a name the mapper reserves for
// internal use and never allows a declaration to bind.
type ReservedNameError struct {
	Name string
}

func (e *ReservedNameError) Error() string {
	return "typemapper: reserved name cannot be bound: " + e.Name
}

// Remove deletes name's binding and returns the prior Type, or
// (nil, false) if name was not bound. This supports test and
// alias-retraction scenarios.
func (m *Mapper) Remove(name string) (types.Type, bool) {
	t, ok := m.names[name]
	if ok {
		delete(m.names, name)
	}
	return t, ok
}

// DuplicateNameError reports an Add of a name that is already bound.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return "typemapper: name already bound: " + e.Name
}
