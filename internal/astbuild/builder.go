// Package astbuild converts a internal/parsetree raw parse tree into
// internal/ast's semantic tree: one builder function per grammar tag,
// dispatched from the tag-switches in this file. Every shape decision the
// parser deferred (predicate-call receiver rewriting, dictionary-key
// restriction, and so on) is made
// here, where the full postfix/chain shape is available at once.
package astbuild

import (
	"fmt"

	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/parsetree"
	"github.com/rhea-lang/rhea/internal/token"
)

// Builder walks one unit's raw parse tree and accumulates the errors found
// along the way, mirroring internal/parsetree.Parser's own
// accumulate-and-continue error style.
type Builder struct {
	source     string
	sourceName string
	errs       []error
}

// Build converts root (the result of parsetree.ParseUnit) into its semantic
// AST. Errors found while building are returned alongside a best-effort
// tree; callers should still check the returned error slice.
func Build(root *parsetree.Node, source, sourceName string) (ast.Node, []error) {
	b := &Builder{source: source, sourceName: sourceName}
	n := b.buildUnit(root)
	return n, b.errs
}

func (b *Builder) errorf(pos token.Position, format string, args ...any) {
	b.errs = append(b.errs, compilerrors.NewSyntaxError(pos, b.source, fmt.Sprintf(format, args...)))
}

func (b *Builder) unimplemented(n *parsetree.Node) {
	b.errs = append(b.errs, compilerrors.NewUnimplementedTag(n.Pos(), b.source, n.Tag))
}
