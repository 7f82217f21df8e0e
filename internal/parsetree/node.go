// Package parsetree implements Rhea's PEG-shaped grammar: a hand-written
// recursive-descent/precedence-climbing parser that recognizes Rhea source
// and produces a raw parse tree whose shape mirrors the grammar rules that
// produced it, plus the rewrite passes that reshape that raw tree into an
// operator-rooted form ready for internal/astbuild.
//
// The raw tree is intentionally generic (a Tag plus ordered Children plus an
// optional carried Token) rather than a family of named Go types: grammar
// rules that match flat repetitions (`a op b op c op d`) naturally produce
// flat multi-child nodes, and the rewrite passes are what turn those into
// the left-leaning or right-leaning trees the AST builder expects one
// operator at a time.
package parsetree

import "github.com/rhea-lang/rhea/internal/token"

// Node is one raw parse-tree node. Tag identifies which grammar rule (or
// rewrite step) produced it; Token carries the matched terminal for leaf and
// operator nodes (zero value when Tag is a pure composite rule).
type Node struct {
	Tag      string
	Token    token.Token
	Children []*Node
}

// New builds a Node with the given tag and children.
func New(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// NewLeaf builds a childless Node carrying a scanned token.
func NewLeaf(tag string, tok token.Token) *Node {
	return &Node{Tag: tag, Token: tok}
}

// Pos returns the node's source position: its own token's, or failing that
// the first child's, recursively. A Node with no token and no children has
// the zero Position.
func (n *Node) Pos() token.Position {
	if n == nil {
		return token.Position{}
	}
	if n.Token.Type != 0 || n.Token.Literal != "" {
		return n.Token.Pos
	}
	for _, c := range n.Children {
		if c != nil {
			return c.Pos()
		}
	}
	return token.Position{}
}

// Raw grammar-rule tags. Composite "Chain" tags name nodes before a rewrite
// pass has rotated them; everything else survives into the AST builder
// largely as-is.
const (
	TagInteger  = "Integer"
	TagHex      = "Hex"
	TagFloat    = "Float"
	TagString   = "String"
	TagSymbol   = "Symbol"
	TagBoolean  = "Boolean"
	TagNothing  = "Nothing"
	TagIdentifier = "Identifier"
	TagFullyQualified   = "FullyQualified"
	TagRelativeIdentifier = "RelativeIdentifier"

	TagTypename        = "Typename"
	TagVariantTypename = "VariantTypename"
	TagOptionalTypename = "OptionalTypename"
	TagTypePair        = "TypePair"
	TagWildcard        = "Wildcard"

	TagTernaryChain   = "TernaryChain"
	TagTypecheckChain = "TypecheckChain"
	TagCastChain      = "CastChain"
	TagBinaryChain    = "BinaryChain"
	TagBinOpTok       = "BinOpTok"
	TagUnaryChain     = "UnaryChain"
	TagUnOpTok        = "UnOpTok"
	TagPostfixChain   = "PostfixChain"
	TagSubscriptStep  = "SubscriptStep"
	TagMemberStep     = "MemberStep"
	TagCallStep       = "CallStep"
	TagPredicateCallStep = "PredicateCallStep"
	TagElseMarker     = "ElseMarker"
	TagEmpty          = "Empty" // discarded lookahead artifact

	TagPositionalArgs = "PositionalArgs"
	TagNamedArgs      = "NamedArgs"
	TagNamedArg       = "NamedArg"

	TagArray      = "Array"
	TagList       = "List"
	TagTuple      = "Tuple"
	TagDictionary = "Dictionary"
	TagDictEntry  = "DictEntry"
	TagSymbolList = "SymbolList"
	TagStructure  = "Structure"
	TagEnum       = "Enum"
	TagAlias      = "Alias"

	TagBareExpression   = "BareExpression"
	TagBlock            = "Block"
	TagAssign           = "Assign"
	TagCompoundAssign   = "CompoundAssign"
	TagTypeDeclaration  = "TypeDeclaration"
	TagVariable         = "Variable"
	TagConstant         = "Constant"
	TagDo               = "Do"
	TagIf               = "If"
	TagWhile            = "While"
	TagFor              = "For"
	TagWith             = "With"
	TagBreak            = "Break"
	TagContinue         = "Continue"
	TagMatch            = "Match"
	TagOnCase           = "OnCase"
	TagWhenCase         = "WhenCase"
	TagTypeCase         = "TypeCase"
	TagDefaultCase      = "DefaultCase"
	TagThrow            = "Throw"
	TagTry              = "Try"
	TagCatch            = "Catch"
	TagFinally          = "Finally"
	TagReturn           = "Return"
	TagExtern           = "Extern"

	TagArguments        = "Arguments"
	TagCondition        = "Condition"
	TagConditions       = "Conditions"
	TagDef              = "Def"
	TagGenericDef       = "GenericDef"
	TagGenericParams    = "GenericParams"
	TagGenericTypeArgs  = "GenericTypenameArgs"

	TagConceptMatch  = "ConceptMatch"
	TagMemberCheck   = "MemberCheck"
	TagFunctionCheck = "FunctionCheck"
	TagConceptDecl   = "ConceptDecl"

	TagProgram  = "Program"
	TagModule   = "Module"
	TagModuleDef = "ModuleDef"
	TagUse      = "Use"
	TagImport   = "Import"
	TagExport   = "Export"
)
