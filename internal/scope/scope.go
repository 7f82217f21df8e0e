// Package scope implements Rhea's scope tree: a rooted tree of symbol
// tables built while walking the AST, supporting parent-chain lookup and
// duplicate-declaration diagnostics.
package scope

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/token"
)

// DeclarationType classifies what kind of thing a Symbol names. Every kind
// except Function is non-overloadable: declaring the same name twice in
// one scope with any other kind is a DuplicateDeclaration error.
type DeclarationType int

const (
	Variable DeclarationType = iota
	Constant
	Function
	Generic
	Structure
	Enum
	Alias
	Concept
)

func (k DeclarationType) overloadable() bool { return k == Function }

// Symbol is a scope entry: the defining AST node plus the kind under which
// it was declared.
type Symbol struct {
	Name string
	Node ast.Node
	Kind DeclarationType
	Pos  token.Position
}

// Scope is one node of the scope tree: a name, a non-owning parent
// back-reference, owned child scopes, and a symbol table.
type Scope struct {
	Name     string
	Parent   *Scope
	Children []*Scope
	symbols  map[string]*Symbol
}

func newScope(name string, parent *Scope) *Scope {
	return &Scope{Name: name, Parent: parent, symbols: make(map[string]*Symbol)}
}

// Tree is the scope tree plus a cursor tracking the scope currently being
// populated. The root is the module's global scope.
type Tree struct {
	Root   *Scope
	cursor *Scope
}

// New creates a scope tree with an empty root scope as its cursor.
func New() *Tree {
	root := newScope("", nil)
	return &Tree{Root: root, cursor: root}
}

// Current returns the scope the cursor currently points at.
func (t *Tree) Current() *Scope { return t.cursor }

// Begin pushes a new child scope under the cursor and moves the cursor to
// it, returning the new scope.
func (t *Tree) Begin(name string) *Scope {
	child := newScope(name, t.cursor)
	t.cursor.Children = append(t.cursor.Children, child)
	t.cursor = child
	return child
}

// End moves the cursor to the parent of the current scope. The child scope
// remains attached to the tree for later queries. Calling End at the root
// is a no-op.
func (t *Tree) End() {
	if t.cursor.Parent != nil {
		t.cursor = t.cursor.Parent
	}
}

// Declare records name in the current scope. If name already exists in the
// current scope (not an ancestor) and either the existing or the new kind
// is non-overloadable, it returns a DuplicateDeclaration error naming the
// position of the first declaration.
func (t *Tree) Declare(name string, node ast.Node, kind DeclarationType, source string) error {
	if existing, ok := t.cursor.symbols[name]; ok {
		if !(kind.overloadable() && existing.Kind.overloadable()) {
			return compilerrors.NewDuplicateDeclaration(node.Pos(), source, name, existing.Pos)
		}
	}
	t.cursor.symbols[name] = &Symbol{Name: name, Node: node, Kind: kind, Pos: node.Pos()}
	return nil
}

// Lookup walks the parent chain starting at the current scope and returns
// the nearest matching Symbol, or false if none is found.
func (t *Tree) Lookup(name string) (*Symbol, bool) {
	return lookupFrom(t.cursor, name)
}

func lookupFrom(s *Scope, name string) (*Symbol, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if sym, ok := cur.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupFrom walks the parent chain starting at s, the scope active at the
// point a reference occurred, rather than the tree's current cursor. The
// inference engine's lazy thunks resolve identifiers this way: a thunk may
// be forced long after the cursor has moved past the scope where the name
// was written, so it snapshots that scope at install time and looks up
// through it directly.
func (t *Tree) LookupFrom(s *Scope, name string) (*Symbol, bool) {
	return lookupFrom(s, name)
}

// IsLocal reports whether name is declared in the current scope,
// independent of any ancestor declaration.
func (t *Tree) IsLocal(name string) bool {
	_, ok := t.cursor.symbols[name]
	return ok
}
