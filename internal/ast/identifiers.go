package ast

import (
	"strings"

	"github.com/rhea-lang/rhea/internal/token"
	"github.com/rhea-lang/rhea/internal/types"
)

// AnyIdentifier is the family of identifier node shapes: simple,
// fully-qualified, and relative.
type AnyIdentifier interface {
	Expression
	anyIdentifierNode()
}

// Identifier is a simple name: x, myVar, Foo.
type Identifier struct {
	base
	Name string
	// Type is the inferred expression type, filled in by the inference
	// engine; it starts Unknown.
	Type types.Type
}

func NewIdentifier(pos token.Position, name string) *Identifier {
	return &Identifier{base: base{pos}, Name: name, Type: types.UnknownType{}}
}

func (*Identifier) expressionNode()    {}
func (*Identifier) anyIdentifierNode() {}
func (n *Identifier) String() string        { return "(Identifier," + n.Name + ")" }
func (n *Identifier) Accept(v Visitor) any { return v.VisitIdentifier(n) }

// FullyQualified is a dotted/colon-joined chain, e.g. a:b:c.
type FullyQualified struct {
	base
	Segments []*Identifier
	Type     types.Type
}

func NewFullyQualified(pos token.Position, segments []*Identifier) *FullyQualified {
	return &FullyQualified{base: base{pos}, Segments: segments, Type: types.UnknownType{}}
}

func (*FullyQualified) expressionNode()    {}
func (*FullyQualified) anyIdentifierNode() {}
func (n *FullyQualified) String() string {
	var sb strings.Builder
	sb.WriteString("(FullyQualified")
	for _, s := range n.Segments {
		sb.WriteString(",")
		sb.WriteString(s.Name)
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *FullyQualified) Accept(v Visitor) any { return v.VisitFullyQualified(n) }

// RelativeIdentifier wraps a simple or fully-qualified identifier that was
// spelled with a leading ':', meaning "relative to the current module".
type RelativeIdentifier struct {
	base
	Identifier AnyIdentifier
	Type       types.Type
}

func NewRelativeIdentifier(pos token.Position, id AnyIdentifier) *RelativeIdentifier {
	return &RelativeIdentifier{base: base{pos}, Identifier: id, Type: types.UnknownType{}}
}

func (*RelativeIdentifier) expressionNode()    {}
func (*RelativeIdentifier) anyIdentifierNode() {}
func (n *RelativeIdentifier) String() string {
	return "(RelativeIdentifier," + n.Identifier.String() + ")"
}
func (n *RelativeIdentifier) Accept(v Visitor) any { return v.VisitRelativeIdentifier(n) }
