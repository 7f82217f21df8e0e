// Package rhea is the front-end/mid-end compiler façade: one Compile call
// takes a unit's source text through lexing, parsing, AST construction,
// scope and type resolution, and symbol mangling, returning either a fully
// resolved Unit or a structured CompileError identifying which stage
// failed.
package rhea

import (
	"fmt"
	"strings"

	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/astbuild"
	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/config"
	"github.com/rhea-lang/rhea/internal/inference"
	"github.com/rhea-lang/rhea/internal/mangle"
	"github.com/rhea-lang/rhea/internal/parsetree"
	"github.com/rhea-lang/rhea/internal/scope"
	"github.com/rhea-lang/rhea/internal/token"
	"github.com/rhea-lang/rhea/internal/types"
)

// Severity classifies a Diagnostic. Every diagnostic this package produces
// is currently SeverityError: the front end has no warning-producing pass.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Diagnostic is one structured error surfaced by a failed compile stage.
type Diagnostic struct {
	Message  string
	Line     int
	Column   int
	Severity Severity
}

func (d *Diagnostic) IsError() bool   { return d.Severity == SeverityError }
func (d *Diagnostic) IsWarning() bool { return d.Severity == SeverityWarning }

// CompileError reports that Compile stopped during Stage, carrying every
// Diagnostic that stage accumulated. Stage is one of "parsing",
// "building", "inference", or "mangling", matching Compile's pipeline
// order.
type CompileError struct {
	Stage  string
	Errors []*Diagnostic
}

func (e *CompileError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, d := range e.Errors {
		msgs[i] = d.Message
	}
	return fmt.Sprintf("%s: %s", e.Stage, strings.Join(msgs, "; "))
}

// Symbol is one top-level def's resolved signature: its argument and
// return types plus the mangled linker name Compile assigned it.
type Symbol struct {
	Name       string
	Mangled    string
	ArgTypes   []string
	ReturnType string
}

// Unit is the result of successfully compiling one source file through
// every front-end/mid-end stage.
type Unit struct {
	SourceName string
	Program    *ast.Program
	Scope      *scope.Tree
	Engine     *inference.Engine
	Symbols    []Symbol
}

// Option configures a Compile call.
type Option func(*options)

type options struct {
	cfg *config.Config
}

// WithConfig applies a loaded unit config's settings (presently, the
// source name a caller did not pass explicitly) to the compile.
func WithConfig(c *config.Config) Option {
	return func(o *options) { o.cfg = c }
}

// Compile runs source through the full front-end/mid-end pipeline. On
// success, Unit.Engine's TypeOf can still be queried for any node in
// Unit.Program; on failure, the returned error is always a *CompileError.
func Compile(source, sourceName string, opts ...Option) (*Unit, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.cfg != nil && sourceName == "" {
		sourceName = o.cfg.SourceName
	}

	root, perrs := parsetree.ParseUnit(source, sourceName)
	if len(perrs) > 0 {
		return nil, &CompileError{Stage: "parsing", Errors: toDiagnostics(perrs)}
	}

	built, berrs := astbuild.Build(root, source, sourceName)
	if len(berrs) > 0 {
		return nil, &CompileError{Stage: "building", Errors: toDiagnostics(berrs)}
	}
	prog, ok := built.(*ast.Program)
	if !ok {
		return nil, &CompileError{Stage: "building", Errors: []*Diagnostic{{Message: "builder did not produce a Program"}}}
	}

	engine, ierrs := inference.Infer(prog, source, sourceName)
	if len(ierrs) > 0 {
		return nil, &CompileError{Stage: "inference", Errors: toDiagnostics(ierrs)}
	}

	symbols, merrs := mangleSymbols(prog, engine, source)
	if len(merrs) > 0 {
		return nil, &CompileError{Stage: "mangling", Errors: toDiagnostics(merrs)}
	}

	return &Unit{
		SourceName: sourceName,
		Program:    prog,
		Scope:      engine.Scope,
		Engine:     engine,
		Symbols:    symbols,
	}, nil
}

// mangleSymbols mangles every top-level Def and GenericDef's signature,
// using the inference engine's already-resolved argument and return
// types. A GenericDef's own Def is mangled the same way as a plain one:
// mangle.Mangle encodes the concrete types its arguments were declared
// with, not the generic parameter names.
func mangleSymbols(prog *ast.Program, engine *inference.Engine, source string) ([]Symbol, []error) {
	var symbols []Symbol
	var errs []error
	for _, decl := range prog.Declarations {
		def := defOf(decl)
		if def == nil {
			continue
		}
		var params []*ast.TypePair
		if def.Args != nil {
			params = def.Args.Params
		}
		argTypes := make([]types.Type, len(params))
		argLabels := make([]string, len(params))
		for i, p := range params {
			argTypes[i] = engine.TypeOf(p)
			argLabels[i] = argTypes[i].String() + " " + p.Name
		}
		retType := engine.TypeOf(def)

		sig := mangle.Signature{
			Kind:       def.Kind,
			Name:       def.Name,
			ArgTypes:   argTypes,
			ReturnType: retType,
		}
		mangled, err := mangle.Mangle(def.Pos(), source, sig)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		symbols = append(symbols, Symbol{
			Name:       def.Name,
			Mangled:    mangled,
			ArgTypes:   argLabels,
			ReturnType: retType.String(),
		})
	}
	return symbols, errs
}

func defOf(decl ast.Statement) *ast.Def {
	switch v := decl.(type) {
	case *ast.Def:
		return v
	case *ast.GenericDef:
		return v.Def
	default:
		return nil
	}
}

// toDiagnostics wraps each raw error from a pipeline stage as a
// Diagnostic, carrying its source position when the error is one of
// compilerrors's located kinds.
func toDiagnostics(errs []error) []*Diagnostic {
	out := make([]*Diagnostic, len(errs))
	for i, err := range errs {
		d := &Diagnostic{Message: err.Error(), Severity: SeverityError}
		if pos, ok := positionOf(err); ok {
			d.Line = pos.Line
			d.Column = pos.Column
		}
		out[i] = d
	}
	return out
}

func positionOf(err error) (token.Position, bool) {
	switch v := err.(type) {
	case *compilerrors.ParseError:
		return v.Pos, true
	case *compilerrors.UnimplementedTag:
		return v.Pos, true
	case *compilerrors.SyntaxError:
		return v.Pos, true
	case *compilerrors.TypeMismatch:
		return v.Pos, true
	case *compilerrors.DuplicateDeclaration:
		return v.Pos, true
	case *compilerrors.UndefinedName:
		return v.Pos, true
	case *compilerrors.MangleError:
		return v.Pos, true
	default:
		return token.Position{}, false
	}
}
