// Package inference implements Rhea's type inference engine: a visitor
// that installs a lazy thunk per AST node into an identity-keyed table, so
// a node's type is computed on demand and may itself resolve other nodes'
// thunks, permitting forward references between declarations.
package inference

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/scope"
	"github.com/rhea-lang/rhea/internal/typemapper"
	"github.com/rhea-lang/rhea/internal/types"
)

// LazyType is a thunk producing a Type when resolved against an Engine. It
// mirrors the source's InferredType: a function object capturing no state
// of its own beyond what its closure carries, stored by value in a plain
// map rather than requiring a function-pointer-compatible signature.
type LazyType struct {
	fn func(*Engine) types.Type
}

// Resolve invokes the thunk, or returns Unknown for a zero-value LazyType.
func (lt LazyType) Resolve(e *Engine) types.Type {
	if lt.fn == nil {
		return types.UnknownType{}
	}
	return lt.fn(e)
}

// constantType builds a LazyType that always resolves to t, for node
// families whose type never depends on another node (literals, Boolean,
// type checks, and similar fixed results).
func constantType(t types.Type) LazyType {
	return LazyType{fn: func(*Engine) types.Type { return t }}
}

// Engine owns one compilation unit's scope tree, type mapper, and
// inference table. It is not safe for concurrent use, matching the scope
// and type mapper it wraps.
type Engine struct {
	Scope  *scope.Tree
	Mapper *typemapper.Mapper

	source     string
	sourceName string

	table    map[ast.Node]LazyType
	resolved map[ast.Node]types.Type
	order    []ast.Node
	errs     []error
}

// New builds an Engine for a single unit's source, with a fresh scope tree
// and a type mapper seeded with the built-in names.
func New(source, sourceName string) *Engine {
	return &Engine{
		Scope:      scope.New(),
		Mapper:     typemapper.New(),
		source:     source,
		sourceName: sourceName,
		table:      make(map[ast.Node]LazyType),
		resolved:   make(map[ast.Node]types.Type),
	}
}

// install records the thunk that computes n's type. A node visited twice
// (which should not happen in a well-formed single pass) overwrites its
// earlier thunk and invalidates any already-resolved cache entry for it.
func (e *Engine) install(n ast.Node, lt LazyType) {
	e.table[n] = lt
	delete(e.resolved, n)
	e.order = append(e.order, n)
}

// TypeOf forces and memoizes n's type. A node with no installed thunk
// (one the visitor never reached, or nil) reports Unknown rather than
// panicking, since a partially-built tree is a legitimate caller state
// during error recovery.
func (e *Engine) TypeOf(n ast.Node) types.Type {
	if n == nil {
		return types.UnknownType{}
	}
	if t, ok := e.resolved[n]; ok {
		return t
	}
	lt, ok := e.table[n]
	if !ok {
		return types.UnknownType{}
	}
	t := lt.Resolve(e)
	e.resolved[n] = t
	return t
}

// errorf appends err to the engine's accumulated error list. Errors never
// abort a pass: the visitor keeps walking so a single unit reports every
// type error it can find, matching internal/parsetree and internal/astbuild's
// accumulate-and-continue style.
func (e *Engine) errorf(err error) {
	e.errs = append(e.errs, err)
}

// resolveTypename resolves a Typename to a Type via the mapper, ignoring
// any generic argument list (the closed Type sum has no parameterized
// container representation yet — see DESIGN.md) and the array-dimension
// expression (array shape is not tracked by the type system either).
func (e *Engine) resolveTypename(n *ast.Typename) types.Type {
	if n == nil {
		return types.UnknownType{}
	}
	return e.Mapper.Get(identifierName(n.Name))
}

func (e *Engine) resolveVariant(n *ast.VariantTypename) types.Type {
	alts := make([]types.Type, len(n.Children))
	for i, c := range n.Children {
		alts[i] = e.resolveTypename(c)
	}
	return types.VariantType{Alternatives: alts}
}

func (e *Engine) resolveOptional(n *ast.OptionalTypename) types.Type {
	return types.OptionalType{Inner: e.resolveTypename(n.Inner)}
}

// identifierName flattens any AnyIdentifier shape into the dotted name the
// type mapper and scope tree key their tables by.
func identifierName(id ast.AnyIdentifier) string {
	switch v := id.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.FullyQualified:
		name := ""
		for i, s := range v.Segments {
			if i > 0 {
				name += ":"
			}
			name += s.Name
		}
		return name
	case *ast.RelativeIdentifier:
		return identifierName(v.Identifier)
	default:
		return ""
	}
}

// Infer runs the inference visitor over root, hoisting top-level
// declarations first so forward references resolve, then forces every
// installed thunk in install order, and returns every error accumulated
// along the way.
func Infer(root ast.Node, source, sourceName string) (*Engine, []error) {
	e := New(source, sourceName)
	hoist(e, root)
	v := &visitor{engine: e}
	root.Accept(v)
	for _, n := range e.order {
		e.TypeOf(n)
	}
	return e, e.errs
}
