package ast

import (
	"strings"

	"github.com/rhea-lang/rhea/internal/token"
)

// ModuleDef is the `module Name;` header naming the current compilation
// unit.
type ModuleDef struct {
	base
	Name AnyIdentifier
}

func NewModuleDef(pos token.Position, name AnyIdentifier) *ModuleDef {
	return &ModuleDef{base: base{pos}, Name: name}
}

func (*ModuleDef) statementNode() {}
func (n *ModuleDef) String() string        { return "(ModuleDef," + n.Name.String() + ")" }
func (n *ModuleDef) Accept(v Visitor) any { return v.VisitModuleDef(n) }

// Use brings another unit's exported names into scope by module name,
// e.g. `use collections;`.
type Use struct {
	base
	Module AnyIdentifier
}

func NewUse(pos token.Position, module AnyIdentifier) *Use {
	return &Use{base: base{pos}, Module: module}
}

func (*Use) statementNode() {}
func (n *Use) String() string        { return "(Use," + n.Module.String() + ")" }
func (n *Use) Accept(v Visitor) any { return v.VisitUse(n) }

// Import brings specific names from another module into scope,
// e.g. `import {parse, render} from text:format;`.
type Import struct {
	base
	Names  []*Identifier
	Module AnyIdentifier
}

func NewImport(pos token.Position, names []*Identifier, module AnyIdentifier) *Import {
	return &Import{base: base{pos}, Names: names, Module: module}
}

func (*Import) statementNode() {}
func (n *Import) String() string {
	var sb strings.Builder
	sb.WriteString("(Import,")
	sb.WriteString(n.Module.String())
	for _, name := range n.Names {
		sb.WriteString(",")
		sb.WriteString(name.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *Import) Accept(v Visitor) any { return v.VisitImport(n) }

// Export re-exposes a set of this unit's names to importers.
type Export struct {
	base
	Names []*Identifier
}

func NewExport(pos token.Position, names []*Identifier) *Export {
	return &Export{base: base{pos}, Names: names}
}

func (*Export) statementNode() {}
func (n *Export) String() string {
	var sb strings.Builder
	sb.WriteString("(Export")
	for _, name := range n.Names {
		sb.WriteString(",")
		sb.WriteString(name.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *Export) Accept(v Visitor) any { return v.VisitExport(n) }

// Module is a full compilation unit: its header, its use clauses, and its
// top-level declarations.
type Module struct {
	base
	Header       *ModuleDef
	Uses         []*Use
	Declarations []Statement
}

func NewModule(pos token.Position, header *ModuleDef, uses []*Use, decls []Statement) *Module {
	return &Module{base: base{pos}, Header: header, Uses: uses, Declarations: decls}
}

func (*Module) statementNode() {}
func (n *Module) String() string {
	var sb strings.Builder
	sb.WriteString("(Module,")
	sb.WriteString(n.Header.String())
	for _, u := range n.Uses {
		sb.WriteString(",")
		sb.WriteString(u.String())
	}
	for _, d := range n.Declarations {
		sb.WriteString(",")
		sb.WriteString(d.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *Module) Accept(v Visitor) any { return v.VisitModule(n) }

// Program is the root node for a unit with no module header: a bare
// sequence of top-level declarations, as a script file allows.
type Program struct {
	base
	Declarations []Statement
}

func NewProgram(pos token.Position, decls []Statement) *Program {
	return &Program{base: base{pos}, Declarations: decls}
}

func (*Program) statementNode() {}
func (n *Program) String() string {
	var sb strings.Builder
	sb.WriteString("(Program")
	for _, d := range n.Declarations {
		sb.WriteString(",")
		sb.WriteString(d.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *Program) Accept(v Visitor) any { return v.VisitProgram(n) }
