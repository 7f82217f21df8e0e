package inference

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/scope"
)

// hoist pre-declares top-level Def/GenericDef/Extern/Structure/Enum/
// Alias/ConceptDecl names into the root scope before the main visitor
// walk starts, so one top-level declaration can refer to another declared
// later in the same unit. It only looks at the unit's immediate
// declaration list, matching the language's module-level-only forward
// reference rule; nothing nested inside a function body is hoisted.
func hoist(e *Engine, root ast.Node) {
	var decls []ast.Statement
	switch n := root.(type) {
	case *ast.Program:
		decls = n.Declarations
	case *ast.Module:
		decls = n.Declarations
	default:
		return
	}

	for _, d := range decls {
		hoistOne(e, d)
	}
}

func hoistOne(e *Engine, d ast.Statement) {
	switch n := d.(type) {
	case *ast.Def:
		declare(e, n.Name, n, scope.Function)
	case *ast.GenericDef:
		declare(e, n.Def.Name, n, scope.Function)
	case *ast.Extern:
		declare(e, n.Name, n, scope.Function)
	case *ast.Structure:
		declare(e, n.Name.Name, n, scope.Structure)
	case *ast.Enum:
		declare(e, n.Name.Name, n, scope.Enum)
	case *ast.Alias:
		declare(e, n.AliasName.Name, n, scope.Alias)
	case *ast.ConceptDecl:
		declare(e, n.Name.Name, n, scope.Concept)
	}
}

func declare(e *Engine, name string, node ast.Node, kind scope.DeclarationType) {
	if err := e.Scope.Declare(name, node, kind, e.source); err != nil {
		e.errorf(err)
	}
}
