// Package ast defines the syntax tree node model that is the external
// parser's contract: a Kind tag, Start/End/FullStart byte offsets,
// ordered children, and kind-specific accessors. internal/tsparser is
// the only producer of these nodes; internal/erase is (almost) the only
// consumer — this package is the seam between them, kept as a separate
// concern even though both sides now live in the same module.
package ast

// Kind tags a Node with the syntax construct it represents. Only a
// few dozen variants drive erasure decisions directly; the rest exist
// so the tree can represent a complete program and so unlisted kinds
// fall through to generic child recursion in the visitor's dispatch
// rule.
type Kind uint8

const (
	KindUnknown Kind = iota

	// Module-boundary
	KindSourceFile
	KindImportDeclaration
	KindImportEqualsDeclaration
	KindExportDeclaration
	KindExportAssignment

	// Declarations
	KindVariableStatement
	KindVariableDeclaration
	KindVariableDeclarationList
	KindTypeAliasDeclaration
	KindInterfaceDeclaration
	KindIndexSignature
	KindClassDeclaration
	KindClassExpression
	KindPropertyDeclaration
	KindEnumDeclaration
	KindModuleDeclaration

	// Function-like
	KindFunctionDeclaration
	KindFunctionExpression
	KindArrowFunction
	KindMethodDeclaration
	KindConstructor
	KindGetAccessor
	KindSetAccessor
	KindParameter
	KindDecorator

	// Expressions
	KindIdentifier
	KindCallExpression
	KindNewExpression
	KindTaggedTemplateExpression
	KindExpressionWithTypeArguments
	KindNonNullExpression
	KindAsExpression
	KindSatisfiesExpression
	KindTypeAssertionExpression
	KindParenthesizedExpression
	KindBinaryExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindUnaryExpression
	KindPostfixUnaryExpression
	KindPropertyAccessExpression
	KindElementAccessExpression
	KindArrayLiteralExpression
	KindObjectLiteralExpression
	KindPropertyAssignment
	KindSpreadElement
	KindTemplateExpression
	KindJSXElement

	// Literals
	KindNumericLiteral
	KindStringLiteral
	KindNoSubstitutionTemplateLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindRegularExpressionLiteral

	// Statements
	KindBlock
	KindExpressionStatement
	KindReturnStatement
	KindIfStatement
	KindForStatement
	KindForOfStatement
	KindForInStatement
	KindWhileStatement
	KindDoStatement
	KindTryStatement
	KindThrowStatement
	KindBreakStatement
	KindContinueStatement
	KindLabeledStatement
	KindSwitchStatement
	KindEmptyStatement

	// Types (erased as opaque spans; the parser does not build a full
	// type-expression tree, only records the span so the visitor can
	// blank it — see tsparser's parseType).
	KindTypeNode

	// Heritage
	KindHeritageClause

	// Misc
	KindQualifiedName
)

// Modifier is a single keyword modifier attached to a declaration,
// parameter, or class member.
type Modifier struct {
	Text  string
	Start int
	End   int
}

// Node is the concrete syntax tree node. Not every field is meaningful for
// every Kind; accessor methods below document which Kind each applies to.
type Node struct {
	Kind     Kind
	Start    int // first non-trivia byte
	End      int // one past the last byte
	FullStart int // start of leading trivia; tsparser does not set it, so it is always 0

	Text string // Identifier name, string/number literal raw text, modifier keyword text

	Modifiers  []Modifier
	Decorators []*Node

	// Declarations
	Name           *Node
	Type           *Node // type annotation node, or nil
	ColonStart     int   // offset of the leading ':' before Type, if any
	Initializer    *Node
	ExclamationPos int // offset of a trailing '!' if present, else -1
	QuestionPos    int // offset of a trailing '?' if present, else -1

	TypeParameters *TypeArgList // <T, U> on a declaration
	TypeArguments  *TypeArgList // <T, U> on an expression (call/new/tagged template/heritage)

	HeritageClauses []*Node // ClassDeclaration/ClassExpression only
	IsExtends       bool    // HeritageClause only: true for extends, false for implements
	Expression      *Node   // HeritageClause's single listed type, AsExpression/SatisfiesExpression/NonNullExpression/ExpressionStatement's expression, CallExpression/NewExpression/TaggedTemplateExpression's callee/tag

	Members    []*Node // ClassDeclaration/ClassExpression members (an InterfaceDeclaration's body is skipped, not parsed into members)
	Parameters []*Node // function-like parameter list
	Body       *Node   // function-like body: Block or a concise-body expression
	ReturnType *Node
	ParenEnd   int // offset just past the parameter list's ')', for arrow functions

	Arguments []*Node // CallExpression/NewExpression arguments

	ImportClause   *ImportExportClause
	ExportClause   *ImportExportClause
	IsTypeOnly     bool // "import type" / "export type" / a type-only named element
	IsExportEquals bool // "export =" form

	Declare bool

	Elements []*Node // array/object literal elements, template spans, block statements, etc.

	children []*Node // generic fallback child list for kinds with no dedicated fields above
}

// TypeArgList records a `<...>` list attached to a declaration or
// expression. Start is the offset of the '<'; the parser does not record
// the offset of the matching '>' (the scanner adapter locates it), so End
// is left zero.
type TypeArgList struct {
	Start    int // offset of '<'
	End      int // offset just past '>'; tsparser never sets it, so it is 0
	Elements []*Node
}

// ImportExportClause is the `{ a, type b as c }` named-bindings clause of
// an import or export declaration.
type ImportExportClause struct {
	Start    int
	End      int
	Elements []*NamedBindingElement
}

// NamedBindingElement is one element of a named import/export clause.
type NamedBindingElement struct {
	Start      int
	End        int // end of the element itself, before any trailing comma
	IsTypeOnly bool
}

// AddChild appends to the generic fallback child list. Kind-specific
// fields above are populated directly by the parser instead, but a handful
// of statement kinds (Block, SourceFile, switch/try bodies, etc.) only need
// "list of children in order" and use this instead of a dedicated field.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// Children invokes visit on each direct child of n, in a fixed field order
// (the fields below, then the generic child list). That is source order for
// statement lists and most expressions, but not for every kind: an
// AsExpression's Type is visited before its Expression, and a function's
// Body before its ReturnType. This is the single traversal hook the erasure engine's fallback recursion
// uses for any Kind it has no specific rule for.
func (n *Node) Children(visit func(*Node)) {
	for _, d := range n.Decorators {
		visit(d)
	}
	if n.Name != nil {
		visit(n.Name)
	}
	if n.Type != nil {
		visit(n.Type)
	}
	if n.Initializer != nil {
		visit(n.Initializer)
	}
	for _, h := range n.HeritageClauses {
		visit(h)
	}
	if n.Expression != nil {
		visit(n.Expression)
	}
	for _, m := range n.Members {
		visit(m)
	}
	for _, p := range n.Parameters {
		visit(p)
	}
	if n.Body != nil {
		visit(n.Body)
	}
	if n.ReturnType != nil {
		visit(n.ReturnType)
	}
	for _, a := range n.Arguments {
		visit(a)
	}
	for _, e := range n.Elements {
		visit(e)
	}
	for _, c := range n.children {
		visit(c)
	}
}

// HasModifier reports whether the node carries a modifier keyword with the
// given text (e.g. "declare", "abstract", "public").
func (n *Node) HasModifier(text string) bool {
	for _, m := range n.Modifiers {
		if m.Text == text {
			return true
		}
	}
	return false
}

// IsFunctionLike reports whether Kind is one of the function-like kinds
// that share a single erasure rule: declarations, expressions, arrows,
// methods, accessors, and constructors.
func (n *Node) IsFunctionLike() bool {
	switch n.Kind {
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunction,
		KindMethodDeclaration, KindConstructor, KindGetAccessor, KindSetAccessor:
		return true
	}
	return false
}
