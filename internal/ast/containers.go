package ast

import (
	"strings"

	"github.com/rhea-lang/rhea/internal/token"
)

// Array is a fixed-size container literal, `[1, 2, 3]`.
type Array struct {
	base
	Elements []Expression
}

func NewArray(pos token.Position, elements []Expression) *Array {
	return &Array{base: base{pos}, Elements: elements}
}

func (*Array) expressionNode() {}
func (n *Array) String() string { return wrapElements("Array", n.Elements) }
func (n *Array) Accept(v Visitor) any { return v.VisitArray(n) }

// List is a growable container literal.
type List struct {
	base
	Elements []Expression
}

func NewList(pos token.Position, elements []Expression) *List {
	return &List{base: base{pos}, Elements: elements}
}

func (*List) expressionNode() {}
func (n *List) String() string { return wrapElements("List", n.Elements) }
func (n *List) Accept(v Visitor) any { return v.VisitList(n) }

// Tuple is a fixed-arity heterogeneous container literal.
type Tuple struct {
	base
	Elements []Expression
}

func NewTuple(pos token.Position, elements []Expression) *Tuple {
	return &Tuple{base: base{pos}, Elements: elements}
}

func (*Tuple) expressionNode() {}
func (n *Tuple) String() string { return wrapElements("Tuple", n.Elements) }
func (n *Tuple) Accept(v Visitor) any { return v.VisitTuple(n) }

func wrapElements(tag string, elements []Expression) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(tag)
	for _, e := range elements {
		sb.WriteString(",")
		sb.WriteString(e.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// DictionaryEntry pairs a key with a value inside a Dictionary literal. Key
// is restricted by the builder to an Integral, String, or Symbol literal;
// the restriction is not expressible in the Go type of Key because the
// grammar parses an arbitrary expression there and the builder rejects
// anything else with a SyntaxError.
type DictionaryEntry struct {
	base
	Key   Expression
	Value Expression
}

func NewDictionaryEntry(pos token.Position, key, value Expression) *DictionaryEntry {
	return &DictionaryEntry{base: base{pos}, Key: key, Value: value}
}

func (n *DictionaryEntry) String() string {
	return "(DictionaryEntry," + n.Key.String() + "," + n.Value.String() + ")"
}

// Dictionary is a key/value container literal.
type Dictionary struct {
	base
	Entries []*DictionaryEntry
}

func NewDictionary(pos token.Position, entries []*DictionaryEntry) *Dictionary {
	return &Dictionary{base: base{pos}, Entries: entries}
}

func (*Dictionary) expressionNode() {}
func (n *Dictionary) String() string {
	var sb strings.Builder
	sb.WriteString("(Dictionary")
	for _, e := range n.Entries {
		sb.WriteString(",")
		sb.WriteString(e.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *Dictionary) Accept(v Visitor) any { return v.VisitDictionary(n) }

// Structure declares a named record type as an ordered list of fields,
// e.g. `type Person = { name: string, age: int }`.
type Structure struct {
	base
	Name   *Identifier
	Fields []*TypePair
}

func NewStructure(pos token.Position, name *Identifier, fields []*TypePair) *Structure {
	return &Structure{base: base{pos}, Name: name, Fields: fields}
}

func (*Structure) statementNode() {}
func (n *Structure) String() string {
	var sb strings.Builder
	sb.WriteString("(Structure,")
	sb.WriteString(n.Name.String())
	for _, f := range n.Fields {
		sb.WriteString(",")
		sb.WriteString(f.String())
	}
	sb.WriteString(")")
	return sb.String()
}
func (n *Structure) Accept(v Visitor) any { return v.VisitStructure(n) }
