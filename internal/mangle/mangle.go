// Package mangle implements Rhea's deterministic symbol-name encoding:
// linker-safe names built from a function's kind, name, return type, and
// argument types.
package mangle

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/token"
	"github.com/rhea-lang/rhea/internal/types"
)

// Signature is everything Mangle needs to encode one declaration.
type Signature struct {
	Kind       ast.FunctionKind
	Name       string
	ArgTypes   []types.Type
	ReturnType types.Type
}

// Mangle encodes sig into a linker-safe symbol name. Unchecked functions
// are returned unmangled (the bare declared name), per spec: they accept
// no pre/postconditions and carry no overload set to disambiguate.
func Mangle(pos token.Position, source string, sig Signature) (string, error) {
	if sig.Kind == ast.UncheckedFunction {
		return sig.Name, nil
	}

	var kindCode string
	switch sig.Kind {
	case ast.BasicFunction:
		kindCode = "f"
	case ast.PredicateFunction:
		kindCode = "p"
	case ast.OperatorFunction:
		kindCode = "o"
	}

	var sb strings.Builder
	sb.WriteString("_R")
	sb.WriteString(kindCode)

	if sig.Kind == ast.OperatorFunction {
		sb.WriteString(sig.Name)
	} else {
		sb.WriteString(strconv.Itoa(len(sig.Name)))
		sb.WriteString(sig.Name)
	}

	retCode, err := typeCode(sig.ReturnType)
	if err != nil {
		return "", compilerrors.NewMangleError(pos, source, sig.Name, sig.ReturnType)
	}
	sb.WriteString(retCode)

	if len(sig.ArgTypes) == 0 {
		sb.WriteString("0")
	} else {
		for _, arg := range sig.ArgTypes {
			code, err := typeCode(arg)
			if err != nil {
				return "", compilerrors.NewMangleError(pos, source, sig.Name, arg)
			}
			sb.WriteString(code)
		}
	}

	return sb.String(), nil
}

var simpleCodes = map[types.BasicType]string{
	types.Integer:         "i",
	types.Byte:            "c",
	types.Long:            "l",
	types.UnsignedInteger: "I",
	types.UnsignedByte:    "C",
	types.UnsignedLong:    "L",
	types.Float:           "Df",
	types.Double:          "Dd",
	types.Boolean:         "b",
	types.Symbol:          "Sy",
	types.String:          "s",
	types.Any:             "a",
	types.Nothing:         "v",
}

// errUnmangleable marks a type with no defined code: an Unknown type, a
// reserved-for-future-extension shape (structure, function), or any other
// BasicType the table above does not cover. Mangle wraps it into a
// compilerrors.MangleError naming the offending type before returning.
var errUnmangleable = errors.New("unmangleable type")

func typeCode(t types.Type) (string, error) {
	switch v := t.(type) {
	case types.UnknownType:
		return "", errUnmangleable
	case types.NothingType:
		return "v", nil
	case types.AnyType:
		return "a", nil
	case types.SimpleType:
		if code, ok := simpleCodes[v.Basic]; ok {
			return code, nil
		}
		return "", errUnmangleable
	case types.OptionalType:
		inner, err := typeCode(v.Inner)
		if err != nil {
			return "", err
		}
		return "Op" + inner, nil
	case types.VariantType:
		var sb strings.Builder
		sb.WriteString("V")
		sb.WriteString(strconv.Itoa(len(v.Alternatives)))
		for _, alt := range v.Alternatives {
			code, err := typeCode(alt)
			if err != nil {
				return "", err
			}
			sb.WriteString(code)
		}
		return sb.String(), nil
	case types.FunctionType, types.StructureType:
		// Reserved for future extension per the mangling table; no code
		// is defined yet, so this is always a mangler error today.
		return "", errUnmangleable
	default:
		return "", errUnmangleable
	}
}
