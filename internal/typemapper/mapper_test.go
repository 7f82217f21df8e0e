package typemapper

import (
	"testing"

	"github.com/rhea-lang/rhea/internal/types"
)

func TestNewSeedsBuiltins(t *testing.T) {
	m := New()
	want := []string{"integer", "byte", "float", "double", "long", "uinteger",
		"ubyte", "ulong", "boolean", "string", "symbol", "any", "nothing"}
	for _, name := range want {
		if !m.Has(name) {
			t.Errorf("expected builtin %q to be seeded", name)
		}
	}
}

func TestUlongAndNothingAreDistinct(t *testing.T) {
	m := New()
	ulong := m.Get("ulong")
	s, ok := ulong.(types.SimpleType)
	if !ok || s.Basic != types.UnsignedLong {
		t.Fatalf("expected \"ulong\" to bind to Simple(UnsignedLong), got %v", ulong)
	}
	if _, ok := m.Get("nothing").(types.NothingType); !ok {
		t.Fatalf("expected \"nothing\" to bind to NothingType, got %v", m.Get("nothing"))
	}
}

func TestGetAbsentReturnsUnknown(t *testing.T) {
	m := New()
	if _, ok := m.Get("frobnicate").(types.UnknownType); !ok {
		t.Fatalf("expected absent name to resolve to Unknown")
	}
}

func TestAddRejectsExisting(t *testing.T) {
	m := New()
	if err := m.Add("integer", types.NewSimple(types.Integer)); err == nil {
		t.Fatalf("expected Add to reject an already-bound name")
	}
	if err := m.Add("Point", types.StructureType{}); err != nil {
		t.Fatalf("unexpected error adding a new name: %v", err)
	}
}

func TestRemoveReturnsPriorBinding(t *testing.T) {
	m := New()
	prior, ok := m.Remove("integer")
	if !ok {
		t.Fatalf("expected Remove of a bound name to succeed")
	}
	if _, ok := prior.(types.SimpleType); !ok {
		t.Fatalf("expected prior binding to be returned")
	}
	if _, ok := m.Remove("integer"); ok {
		t.Fatalf("expected second Remove to report absence")
	}
	if _, ok := m.Get("integer").(types.UnknownType); !ok {
		t.Fatalf("expected removed name to resolve to Unknown")
	}
}

func TestWildcardResolvesToAnyAndCannotBeAdded(t *testing.T) {
	m := New()
	if !m.Has(Wildcard) {
		t.Fatalf("expected wildcard to report bound")
	}
	if _, ok := m.Get(Wildcard).(types.AnyType); !ok {
		t.Fatalf("expected wildcard to resolve to AnyType, got %v", m.Get(Wildcard))
	}
	if err := m.Add(Wildcard, types.NewSimple(types.Integer)); err == nil {
		t.Fatalf("expected Add to reject the reserved wildcard name")
	}
}
