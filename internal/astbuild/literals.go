package astbuild

import (
	"strconv"
	"strings"

	"github.com/rhea-lang/rhea/internal/ast"
	"github.com/rhea-lang/rhea/internal/parsetree"
	"github.com/rhea-lang/rhea/internal/types"
)

// intSuffixBasic maps an integer literal's suffix to its BasicType. No
// suffix in the map ends with another, so at most one can match. No
// suffix means a 32-bit signed integer.
var intSuffixBasic = map[string]types.BasicType{
	"_ub": types.UnsignedByte,
	"_ul": types.UnsignedLong,
	"_b":  types.Byte,
	"_l":  types.Long,
	"_u":  types.UnsignedInteger,
}

func (b *Builder) buildIntegral(n *parsetree.Node) *ast.Integral {
	lit := n.Token.Literal
	basic := types.Integer
	digits := lit
	for suffix, bt := range intSuffixBasic {
		if strings.HasSuffix(lit, suffix) {
			basic = bt
			digits = strings.TrimSuffix(lit, suffix)
			break
		}
	}
	// A value that overflows even 64 bits parses as the wrapped uint64
	// ParseUint reports alongside its error; truncateToBasic narrows it to
	// the literal's actual width either way, matching the documented
	// silent-truncation behavior.
	value, _ := strconv.ParseUint(digits, 10, 64)
	return ast.NewIntegral(n.Pos(), truncateToBasic(int64(value), basic), basic)
}

// truncateToBasic reproduces the target width's wraparound by round-tripping
// through the matching fixed-width Go integer type.
func truncateToBasic(v int64, basic types.BasicType) int64 {
	switch basic {
	case types.Byte:
		return int64(int8(v))
	case types.UnsignedByte:
		return int64(uint8(v))
	case types.Integer:
		return int64(int32(v))
	case types.UnsignedInteger:
		return int64(uint32(v))
	default:
		return v
	}
}

// buildHex parses a hex literal (always unsigned; width by digit count, not
// by value, per spec.md's explicit rule).
func (b *Builder) buildHex(n *parsetree.Node) *ast.Integral {
	lit := n.Token.Literal
	digits := strings.TrimPrefix(strings.TrimPrefix(lit, "0x"), "0X")
	value, _ := strconv.ParseUint(digits, 16, 64)
	basic := types.UnsignedInteger
	if len(digits) > 8 {
		basic = types.UnsignedLong
	}
	if basic == types.UnsignedInteger {
		value = uint64(uint32(value))
	}
	return ast.NewIntegral(n.Pos(), int64(value), basic)
}

func (b *Builder) buildFloatingPoint(n *parsetree.Node) *ast.FloatingPoint {
	lit := n.Token.Literal
	basic := types.Double
	digits := lit
	if strings.HasSuffix(lit, "_f") {
		basic = types.Float
		digits = strings.TrimSuffix(lit, "_f")
	}
	value, _ := strconv.ParseFloat(digits, 64)
	if basic == types.Float {
		value = float64(float32(value))
	}
	return ast.NewFloatingPoint(n.Pos(), value, basic)
}

func (b *Builder) buildString(n *parsetree.Node) *ast.String {
	return ast.NewString(n.Pos(), n.Token.Literal)
}

func (b *Builder) buildSymbol(n *parsetree.Node) *ast.Symbol {
	return ast.NewSymbol(n.Pos(), n.Token.Literal)
}

func (b *Builder) buildBoolean(n *parsetree.Node) *ast.Boolean {
	return ast.NewBoolean(n.Pos(), n.Token.Literal == "true")
}

func (b *Builder) buildNothing(n *parsetree.Node) *ast.Nothing {
	return ast.NewNothing(n.Pos())
}
