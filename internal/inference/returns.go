package inference

import (
	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/types"
)

// returnCollector walks a function body collecting the type of every
// Return it finds, without descending into a nested Def or GenericDef's
// own body (a return there belongs to that inner function). It exists as
// a separate partial visitor, per the framework's "return-collection" use
// case, because return statements may be arbitrarily nested inside
// blocks, conditionals, loops, and match/try bodies.
type returnCollector struct {
	ast.DefaultVisitor
	engine  *Engine
	returns []types.Type
}

func (c *returnCollector) VisitReturn(n *ast.Return) any {
	c.returns = append(c.returns, c.engine.TypeOf(n))
	return nil
}

func (c *returnCollector) VisitBlock(n *ast.Block) any {
	for _, s := range n.Statements {
		s.Accept(c)
	}
	return nil
}

func (c *returnCollector) VisitIf(n *ast.If) any {
	if n.Then != nil {
		n.Then.Accept(c)
	}
	if n.Else != nil {
		n.Else.Accept(c)
	}
	return nil
}

func (c *returnCollector) VisitWhile(n *ast.While) any {
	n.Body.Accept(c)
	return nil
}

func (c *returnCollector) VisitFor(n *ast.For) any {
	n.Body.Accept(c)
	return nil
}

func (c *returnCollector) VisitWith(n *ast.With) any {
	n.Body.Accept(c)
	return nil
}

func (c *returnCollector) VisitMatch(n *ast.Match) any {
	for _, m := range n.Cases {
		m.Accept(c)
	}
	if n.Default != nil {
		n.Default.Accept(c)
	}
	return nil
}

func (c *returnCollector) VisitOn(n *ast.On) any {
	n.Body.Accept(c)
	return nil
}

func (c *returnCollector) VisitWhen(n *ast.When) any {
	n.Body.Accept(c)
	return nil
}

func (c *returnCollector) VisitTypeCase(n *ast.TypeCase) any {
	n.Body.Accept(c)
	return nil
}

func (c *returnCollector) VisitDefault(n *ast.Default) any {
	n.Body.Accept(c)
	return nil
}

func (c *returnCollector) VisitTry(n *ast.Try) any {
	n.Body.Accept(c)
	for _, cat := range n.Catches {
		cat.Accept(c)
	}
	if n.Finally != nil {
		n.Finally.Accept(c)
	}
	return nil
}

func (c *returnCollector) VisitCatch(n *ast.Catch) any {
	n.Body.Accept(c)
	return nil
}

func (c *returnCollector) VisitFinally(n *ast.Finally) any {
	n.Body.Accept(c)
	return nil
}

// inferReturnType drives a returnCollector over n's body and reduces the
// collected types: no returns means the function implicitly returns
// Nothing, one distinct type wins outright, and disagreeing types are a
// TypeMismatch against the first return found.
func (e *Engine) inferReturnType(n *ast.Def) types.Type {
	if n.Body == nil {
		return types.NothingType{}
	}
	c := &returnCollector{engine: e}
	n.Body.Accept(c)
	if len(c.returns) == 0 {
		return types.NothingType{}
	}
	first := c.returns[0]
	for _, t := range c.returns[1:] {
		if !types.Equal(first, t) {
			e.errorf(compilerrors.NewTypeMismatch(n.Pos(), e.source, "return type of "+n.Name, first, t))
		}
	}
	return first
}
