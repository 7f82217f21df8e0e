package types

import "strings"

// Type is the closed sum described in the data model: Unknown, Simple,
// Nothing, Any, Function, Optional, Variant, Structure. Every concrete
// type below implements this interface; there is no other implementation
// outside this package, matching the "closed sum" invariant.
type Type interface {
	isType()
	// String renders a debug form, not the canonical S-expression (that
	// lives on the AST nodes that carry a Type, in package ast).
	String() string
}

// NamedType is an ordered (name, Type) pair used for Function argument
// lists and Structure field lists, both of which are order-sensitive.
type NamedType struct {
	Name string
	Type Type
}

// UnknownType is the placeholder/error type. It is compatible with itself
// only.
type UnknownType struct{}

func (UnknownType) isType()        {}
func (UnknownType) String() string { return "Unknown" }

// SimpleType wraps one of the scalar BasicType kinds, along with the
// numeric/integral flags the inference engine consults so it need not
// re-derive them from Basic on every check.
type SimpleType struct {
	Basic      BasicType
	IsNumeric  bool
	IsIntegral bool
}

func (SimpleType) isType() {}
func (s SimpleType) String() string {
	return "Simple(" + s.Basic.String() + ")"
}

// NewSimple builds a SimpleType with IsNumeric/IsIntegral derived from Basic.
func NewSimple(basic BasicType) SimpleType {
	return SimpleType{Basic: basic, IsNumeric: IsNumericBasic(basic), IsIntegral: IsIntegralBasic(basic)}
}

// NothingType is the unit type — the type of a value-less expression.
type NothingType struct{}

func (NothingType) isType()        {}
func (NothingType) String() string { return "Nothing" }

// AnyType is compatible with any type when it appears on the left-hand
// side of a compatibility check.
type AnyType struct{}

func (AnyType) isType()        {}
func (AnyType) String() string { return "Any" }

// FunctionType is an ordered argument list plus a return type.
type FunctionType struct {
	Args   []NamedType
	Return Type
}

func (FunctionType) isType() {}
func (f FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString("Function(")
	for i, a := range f.Args {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(a.Name)
		sb.WriteString(":")
		sb.WriteString(a.Type.String())
	}
	sb.WriteString(")->")
	sb.WriteString(f.Return.String())
	return sb.String()
}

// OptionalType wraps an inner type, denoting "may be absent".
type OptionalType struct {
	Inner Type
}

func (OptionalType) isType()        {}
func (o OptionalType) String() string { return "Optional(" + o.Inner.String() + ")" }

// VariantType is an ordered sequence of alternative types. Order is
// significant: it preserves source spelling, so Variant equality is
// sequence equality, not set equality.
type VariantType struct {
	Alternatives []Type
}

func (VariantType) isType() {}
func (v VariantType) String() string {
	var sb strings.Builder
	sb.WriteString("Variant(")
	for i, t := range v.Alternatives {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(t.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// StructureType is an ordered mapping of field name to Type.
type StructureType struct {
	Fields []NamedType
}

func (StructureType) isType() {}
func (s StructureType) String() string {
	var sb strings.Builder
	sb.WriteString("Structure(")
	for i, f := range s.Fields {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(f.Name)
		sb.WriteString(":")
		sb.WriteString(f.Type.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Equal reports structural equality between two types. Function equality
// compares ordered argument types and return types (argument names are
// ignored); Structure equality
// compares ordered field sequences; Variant equality is sequence equality.
func Equal(a, b Type) bool {
	switch av := a.(type) {
	case UnknownType:
		_, ok := b.(UnknownType)
		return ok
	case NothingType:
		_, ok := b.(NothingType)
		return ok
	case AnyType:
		_, ok := b.(AnyType)
		return ok
	case SimpleType:
		bv, ok := b.(SimpleType)
		return ok && av.Basic == bv.Basic
	case OptionalType:
		bv, ok := b.(OptionalType)
		return ok && Equal(av.Inner, bv.Inner)
	case FunctionType:
		bv, ok := b.(FunctionType)
		if !ok || len(av.Args) != len(bv.Args) || !Equal(av.Return, bv.Return) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i].Type, bv.Args[i].Type) {
				return false
			}
		}
		return true
	case VariantType:
		bv, ok := b.(VariantType)
		if !ok || len(av.Alternatives) != len(bv.Alternatives) {
			return false
		}
		for i := range av.Alternatives {
			if !Equal(av.Alternatives[i], bv.Alternatives[i]) {
				return false
			}
		}
		return true
	case StructureType:
		bv, ok := b.(StructureType)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			if av.Fields[i].Name != bv.Fields[i].Name || !Equal(av.Fields[i].Type, bv.Fields[i].Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compatible implements the compatible(T1, T2) relation from the spec:
//
//   - compatible(T, T) holds for any T (structural equality).
//   - Any on the left is compatible with anything.
//   - Optional(T) is compatible with T and with Optional(T).
//   - Unknown is compatible with nothing but Unknown.
//
// The relation is not symmetric: Compatible(lhs, rhs) checks lhs against
// rhs in that order, matching "Any — compatible with any RHS when it
// appears on the LHS".
func Compatible(lhs, rhs Type) bool {
	if _, ok := lhs.(UnknownType); ok {
		_, ok := rhs.(UnknownType)
		return ok
	}
	if _, ok := lhs.(AnyType); ok {
		return true
	}
	if opt, ok := lhs.(OptionalType); ok {
		if Equal(opt, rhs) {
			return true
		}
		return Compatible(opt.Inner, rhs)
	}
	return Equal(lhs, rhs)
}
