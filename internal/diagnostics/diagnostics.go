// Package diagnostics renders a pass's accumulated compiler errors as a
// JSON document, for driver-facing consumption such as the rheac CLI's
// "--json" output mode.
package diagnostics

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/rhea-lang/rhea/internal/compilerrors"
	"github.com/rhea-lang/rhea/internal/token"
)

// ToJSON renders errs as a JSON array, one object per error, each carrying
// a "kind" discriminator, the formatted "message", and position fields
// when the error type exposes one. The document is built incrementally
// with sjson.Set rather than a struct marshal, since the error kinds in
// compilerrors are a closed but heterogeneous set and sjson lets each
// entry's shape vary by kind without a parallel wrapper type for each one.
func ToJSON(errs []error) (string, error) {
	doc := "[]"
	for i, e := range errs {
		path := indexPath(i)
		var err error
		doc, err = sjson.Set(doc, path+".kind", kindOf(e))
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, path+".message", e.Error())
		if err != nil {
			return "", err
		}
		if pos, ok := positionOf(e); ok {
			doc, err = sjson.Set(doc, path+".line", pos.Line)
			if err != nil {
				return "", err
			}
			doc, err = sjson.Set(doc, path+".column", pos.Column)
			if err != nil {
				return "", err
			}
			if pos.SourceName != "" {
				doc, err = sjson.Set(doc, path+".source", pos.SourceName)
				if err != nil {
					return "", err
				}
			}
		}
	}
	return doc, nil
}

func indexPath(i int) string {
	return strconv.Itoa(i)
}

// kindOf returns the stable discriminator string for one of
// compilerrors's error kinds, or "error" for anything else (a plain
// fmt.Errorf wrapping one of them, say).
func kindOf(e error) string {
	switch e.(type) {
	case *compilerrors.ParseError:
		return "parse_error"
	case *compilerrors.UnimplementedTag:
		return "unimplemented_tag"
	case *compilerrors.SyntaxError:
		return "syntax_error"
	case *compilerrors.TypeMismatch:
		return "type_mismatch"
	case *compilerrors.DuplicateDeclaration:
		return "duplicate_declaration"
	case *compilerrors.UndefinedName:
		return "undefined_name"
	case *compilerrors.MangleError:
		return "mangle_error"
	default:
		return "error"
	}
}

// positionOf extracts the source position carried by e, for the error
// kinds that embed one.
func positionOf(e error) (token.Position, bool) {
	switch v := e.(type) {
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

// Count returns the number of entries in a document produced by ToJSON,
// via a plain gjson array length query.
func Count(doc string) int {
	return int(gjson.Get(doc, "#").Int())
}

// Kinds returns the "kind" field of every entry in doc, in order.
func Kinds(doc string) []string {
	result := gjson.Get(doc, "#.kind")
	kinds := make([]string, 0, len(result.Array()))
	for _, r := range result.Array() {
		kinds = append(kinds, r.String())
	}
	return kinds
}
