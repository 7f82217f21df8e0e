package types

import "testing"

func TestCompatibleReflexive(t *testing.T) {
	tt := NewSimple(Integer)
	if !Compatible(tt, tt) {
		t.Fatalf("expected compatible(T,T) to hold")
	}
}

func TestCompatibleAnyOnLeft(t *testing.T) {
	if !Compatible(AnyType{}, NewSimple(String)) {
		t.Fatalf("expected Any on the left to be compatible with anything")
	}
	if Compatible(NewSimple(String), AnyType{}) {
		t.Fatalf("did not expect Any on the right to make String compatible")
	}
}

func TestCompatibleOptional(t *testing.T) {
	inner := NewSimple(Integer)
	opt := OptionalType{Inner: inner}
	if !Compatible(opt, inner) {
		t.Fatalf("expected Optional(T) compatible with T")
	}
	if !Compatible(opt, opt) {
		t.Fatalf("expected Optional(T) compatible with Optional(T)")
	}
}

func TestCompatibleUnknown(t *testing.T) {
	if Compatible(UnknownType{}, NewSimple(Integer)) {
		t.Fatalf("expected Unknown incompatible with non-Unknown")
	}
	if !Compatible(UnknownType{}, UnknownType{}) {
		t.Fatalf("expected Unknown compatible with itself")
	}
}

func TestEqualFunction(t *testing.T) {
	f1 := FunctionType{
		Args:   []NamedType{{Name: "x", Type: NewSimple(Integer)}},
		Return: NothingType{},
	}
	f2 := FunctionType{
		Args:   []NamedType{{Name: "y", Type: NewSimple(Integer)}},
		Return: NothingType{},
	}
	if !Equal(f1, f2) {
		t.Fatalf("expected Function equality to ignore argument names")
	}
}

func TestEqualVariantOrderSensitive(t *testing.T) {
	v1 := VariantType{Alternatives: []Type{NewSimple(Integer), NewSimple(String)}}
	v2 := VariantType{Alternatives: []Type{NewSimple(String), NewSimple(Integer)}}
	if Equal(v1, v2) {
		t.Fatalf("expected Variant equality to be order-sensitive")
	}
}

func TestEqualStructure(t *testing.T) {
	s1 := StructureType{Fields: []NamedType{{Name: "name", Type: NewSimple(String)}, {Name: "age", Type: NewSimple(Integer)}}}
	s2 := StructureType{Fields: []NamedType{{Name: "name", Type: NewSimple(String)}, {Name: "age", Type: NewSimple(Integer)}}}
	if !Equal(s1, s2) {
		t.Fatalf("expected identical structures to be equal")
	}
}

func TestSignedCounterpart(t *testing.T) {
	cases := map[BasicType]BasicType{
		UnsignedByte:    Byte,
		UnsignedInteger: Integer,
		UnsignedLong:    Long,
	}
	for u, s := range cases {
		got, ok := SignedCounterpart(u)
		if !ok || got != s {
			t.Fatalf("SignedCounterpart(%v) = %v, %v; want %v, true", u, got, ok, s)
		}
	}
	if _, ok := SignedCounterpart(Integer); ok {
		t.Fatalf("did not expect a signed counterpart for an already-signed type")
	}
}
