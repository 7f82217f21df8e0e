package ast

import (
	"fmt"
	"strconv"

	"github.com/rhea-lang/rhea/internal/token"
	"github.com/rhea-lang/rhea/internal/types"
)

// Integral is a typed integer literal at one of the widths
// {8,32,64} x {signed,unsigned}. The printed BasicType code matches
// types.BasicType's stable integer values.
type Integral struct {
	base
	Value int64
	Basic types.BasicType
}

func NewIntegral(pos token.Position, value int64, basic types.BasicType) *Integral {
	return &Integral{base: base{pos}, Value: value, Basic: basic}
}

func (*Integral) expressionNode() {}
func (n *Integral) String() string {
	return fmt.Sprintf("(Integral,%d,%d)", n.Value, int(n.Basic))
}
func (n *Integral) Accept(v Visitor) any { return v.VisitIntegral(n) }

// FloatingPoint is a floating-point literal, width {32,64}.
type FloatingPoint struct {
	base
	Value float64
	Basic types.BasicType
}

func NewFloatingPoint(pos token.Position, value float64, basic types.BasicType) *FloatingPoint {
	return &FloatingPoint{base: base{pos}, Value: value, Basic: basic}
}

func (*FloatingPoint) expressionNode() {}
func (n *FloatingPoint) String() string {
	return fmt.Sprintf("(FloatingPoint,%s,%d)", strconv.FormatFloat(n.Value, 'g', -1, 64), int(n.Basic))
}
func (n *FloatingPoint) Accept(v Visitor) any { return v.VisitFloatingPoint(n) }

// Boolean is a boolean literal.
type Boolean struct {
	base
	Value bool
}

func NewBoolean(pos token.Position, value bool) *Boolean {
	return &Boolean{base: base{pos}, Value: value}
}

func (*Boolean) expressionNode() {}
func (n *Boolean) String() string        { return fmt.Sprintf("(Boolean,%t)", n.Value) }
func (n *Boolean) Accept(v Visitor) any { return v.VisitBoolean(n) }

// String is a string literal. The AST stores the raw bytes including
// escape sequences; un-escaping is deferred to codegen.
type String struct {
	base
	Value string
}

func NewString(pos token.Position, value string) *String {
	return &String{base: base{pos}, Value: value}
}

func (*String) expressionNode() {}
func (n *String) String() string        { return fmt.Sprintf("(String,\"%s\")", n.Value) }
func (n *String) Accept(v Visitor) any { return v.VisitString(n) }

// Symbol is an interned-identifier literal.
type Symbol struct {
	base
	Value string
}

func NewSymbol(pos token.Position, value string) *Symbol {
	return &Symbol{base: base{pos}, Value: value}
}

func (*Symbol) expressionNode() {}
func (n *Symbol) String() string        { return fmt.Sprintf("(Symbol,%s)", n.Value) }
func (n *Symbol) Accept(v Visitor) any { return v.VisitSymbol(n) }

// Nothing is the unit-value literal.
type Nothing struct {
	base
}

func NewNothing(pos token.Position) *Nothing {
	return &Nothing{base: base{pos}}
}

func (*Nothing) expressionNode() {}
func (n *Nothing) String() string        { return "(Nothing)" }
func (n *Nothing) Accept(v Visitor) any { return v.VisitNothing(n) }
