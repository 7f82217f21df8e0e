// Package types implements Rhea's closed type sum: the variant type
// representation, structural equality, and the compatible() relation used
// by the inference engine.
package types

// BasicType enumerates the scalar kinds a SimpleType can carry. The integer
// values are a stable public contract: they appear verbatim in the
// canonical S-expression printer output, so the ordering must never change.
type BasicType int

const (
	Integer BasicType = iota
	Byte
	Float
	Double
	Long
	UnsignedInteger
	UnsignedByte
	UnsignedLong
	Boolean
	String
	Symbol
	Any
	Nothing
	Other
	Promoted
)

// Unknown is the BasicType used by the Unknown Type variant. It sits
// outside the normal enumeration, matching the source's -1 sentinel.
const UnknownBasic BasicType = -1

var basicNames = map[BasicType]string{
	Integer:         "integer",
	Byte:            "byte",
	Float:           "float",
	Double:          "double",
	Long:            "long",
	UnsignedInteger: "uinteger",
	UnsignedByte:    "ubyte",
	UnsignedLong:    "ulong",
	Boolean:         "boolean",
	String:          "string",
	Symbol:          "symbol",
	Any:             "any",
	Nothing:         "nothing",
	Other:           "other",
	Promoted:        "promoted",
	UnknownBasic:    "unknown",
}

func (b BasicType) String() string {
	if name, ok := basicNames[b]; ok {
		return name
	}
	return "other"
}

// signedCounterpart maps an unsigned simple basic type to its signed
// equivalent, used by the inference engine's unary-minus rule.
var signedCounterpart = map[BasicType]BasicType{
	UnsignedByte:    Byte,
	UnsignedInteger: Integer,
	UnsignedLong:    Long,
}

// SignedCounterpart reports the signed BasicType corresponding to an
// unsigned one, and whether a mapping exists.
func SignedCounterpart(b BasicType) (BasicType, bool) {
	s, ok := signedCounterpart[b]
	return s, ok
}

// IsNumericBasic reports whether basic denotes a numeric scalar.
func IsNumericBasic(b BasicType) bool {
	switch b {
	case Integer, Byte, Long, UnsignedInteger, UnsignedByte, UnsignedLong, Float, Double:
		return true
	default:
		return false
	}
}

// IsIntegralBasic reports whether basic denotes an integral (non-floating) numeric scalar.
func IsIntegralBasic(b BasicType) bool {
	switch b {
	case Integer, Byte, Long, UnsignedInteger, UnsignedByte, UnsignedLong:
		return true
	default:
		return false
	}
}
