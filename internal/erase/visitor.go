package erase

import (
	"github.com/zfben/ts-blank-space/internal/ast"
	"github.com/zfben/ts-blank-space/internal/lexer"
)

// visit dispatches on n.Kind and returns whether any runtime JS survived
// n's span. Any kind with no rule below falls through to generic child
// recursion: any kind not listed here just recurses into its children.
func (c *Context) visit(n *ast.Node) Result {
	if n == nil {
		return BLANKED
	}

	switch n.Kind {
	case ast.KindImportDeclaration:
		return c.visitImport(n)
	case ast.KindExportDeclaration:
		return c.visitExport(n)
	case ast.KindExportAssignment:
		// Always the "export =" form (see tsparser's constructor); the
		// target module system has no equivalent.
		c.OnError(n)
		return EMITTED_JS
	case ast.KindImportEqualsDeclaration:
		c.OnError(n)
		return EMITTED_JS

	case ast.KindIdentifier:
		return EMITTED_JS

	case ast.KindNumericLiteral, ast.KindStringLiteral, ast.KindBooleanLiteral,
		ast.KindNullLiteral, ast.KindNoSubstitutionTemplateLiteral,
		ast.KindRegularExpressionLiteral:
		// Leaf literal nodes have no children for visitGeneric to recurse
		// into, but they are always runtime JS in their own right.
		return EMITTED_JS

	case ast.KindTypeNode:
		c.blank.Blank(n.Start, n.End)
		return BLANKED

	case ast.KindTypeAliasDeclaration, ast.KindInterfaceDeclaration:
		c.blankStatement(n)
		return BLANKED

	case ast.KindIndexSignature:
		c.blank.Blank(n.Start, n.End)
		return BLANKED

	case ast.KindVariableStatement:
		if n.HasModifier("declare") {
			c.blankStatement(n)
			return BLANKED
		}
		for _, el := range n.Elements {
			c.visit(el)
		}
		return EMITTED_JS

	case ast.KindVariableDeclaration:
		return c.visitVariableDeclaration(n)

	case ast.KindCallExpression, ast.KindNewExpression:
		return c.visitCallOrNew(n)

	case ast.KindTaggedTemplateExpression:
		return c.visitTaggedTemplate(n)

	case ast.KindExpressionWithTypeArguments:
		c.visit(n.Expression)
		c.blankTypeArgs(n.TypeArguments, n.End)
		return EMITTED_JS

	case ast.KindClassDeclaration, ast.KindClassExpression:
		return c.visitClass(n)

	case ast.KindPropertyDeclaration:
		return c.visitPropertyDeclaration(n)

	case ast.KindNonNullExpression:
		result := c.visit(n.Expression)
		c.blank.Blank(n.End-1, n.End)
		return result

	case ast.KindAsExpression, ast.KindSatisfiesExpression:
		return c.visitAsSatisfies(n)

	case ast.KindTypeAssertionExpression:
		c.OnError(n)
		return c.visit(n.Expression)

	case ast.KindFunctionDeclaration, ast.KindFunctionExpression, ast.KindArrowFunction,
		ast.KindMethodDeclaration, ast.KindConstructor, ast.KindGetAccessor, ast.KindSetAccessor:
		return c.visitFunctionLike(n)

	case ast.KindEnumDeclaration, ast.KindModuleDeclaration:
		if n.Declare {
			c.blankStatement(n)
			return BLANKED
		}
		c.OnError(n)
		return EMITTED_JS

	case ast.KindExpressionStatement:
		return c.visitExpressionStatement(n)

	case ast.KindBlock:
		return c.visitBlock(n)

	default:
		return c.visitGeneric(n)
	}
}

// visitList walks a sequential run of statements (a SourceFile's or
// Block's direct children), threading seenJS across them in source order —
// it is the only place seenJS is ever set to true, since that is the one
// state the ASI-preserving blankStatement rule consults.
func (c *Context) visitList(stmts []*ast.Node) Result {
	agg := BLANKED
	for _, s := range stmts {
		if c.visit(s) == EMITTED_JS {
			c.seenJS = true
			agg = EMITTED_JS
		}
	}
	return agg
}

// visitGeneric recurses into every child field ast.Node.Children knows
// about and aggregates their results, for any kind with no rule of its
// own — expressions like binary/conditional/array/object literals whose
// only erasure work, if any, happens inside a child this same dispatch
// will reach.
func (c *Context) visitGeneric(n *ast.Node) Result {
	agg := BLANKED
	n.Children(func(child *ast.Node) {
		if c.visit(child) == EMITTED_JS {
			agg = EMITTED_JS
		}
	})
	return agg
}

// blankStatement blanks a statement that erases to nothing while still
// guarding against it silently fusing with whatever follows via automatic
// semicolon insertion. A leading ';' is only needed — but always safe —
// once runtime JS has already appeared earlier in this statement sequence.
func (c *Context) blankStatement(n *ast.Node) {
	if c.seenJS {
		c.blank.BlankButStartWithSemi(n.Start, n.End)
	} else {
		c.blank.Blank(n.Start, n.End)
	}
}

// blankTypeArgs blanks a "<...>" list's full span. The parser never
// records where the list's own closing '>' actually is, so the scanner
// adapter locates it by scanning forward from the '<' to searchEnd (an
// offset known to lie at or after the real close).
func (c *Context) blankTypeArgs(args *ast.TypeArgList, searchEnd int) {
	if args == nil {
		return
	}
	end := c.scan.ScanForGreaterThan(args.Start, searchEnd)
	c.blank.Blank(args.Start, end)
}

// blankElementAndComma blanks [start,end) and, if a comma immediately
// follows, consumes it too — used wherever a single list element
// disappears and a dangling ", ," would otherwise remain (named import/
// export bindings, a type-only "this" parameter).
func (c *Context) blankElementAndComma(start, end int) {
	if c.scan.ResetAtAndPeek(end) == lexer.TComma {
		end = c.scan.ScanForToken(end, end+1, lexer.TComma)
	}
	c.blank.Blank(start, end)
}

func (c *Context) visitVariableDeclaration(n *ast.Node) Result {
	c.visit(n.Name)
	if n.ExclamationPos >= 0 {
		c.blank.Blank(n.ExclamationPos, n.ExclamationPos+1)
	}
	if n.Type != nil {
		c.blank.Blank(n.ColonStart, n.Type.End)
	}
	if n.Initializer != nil {
		c.visit(n.Initializer)
	}
	return EMITTED_JS
}

func (c *Context) visitCallOrNew(n *ast.Node) Result {
	c.visit(n.Expression)
	if n.TypeArguments != nil {
		c.blankTypeArgs(n.TypeArguments, n.End)
	}
	for _, a := range n.Arguments {
		c.visit(a)
	}
	// A call or "new" always survives as runtime code: the callee and
	// argument list are never purely type syntax.
	return EMITTED_JS
}

func (c *Context) visitTaggedTemplate(n *ast.Node) Result {
	c.visit(n.Expression) // the tag
	if n.TypeArguments != nil {
		c.blankTypeArgs(n.TypeArguments, n.End)
	}
	for _, e := range n.Elements { // the template itself, held as a single element
		c.visit(e)
	}
	return EMITTED_JS
}

// visitImport erases type-only imports and type-only import specifiers.
func (c *Context) visitImport(n *ast.Node) Result {
	if n.IsTypeOnly {
		c.blankStatement(n)
		return BLANKED
	}
	if n.ImportClause != nil {
		for _, el := range n.ImportClause.Elements {
			if el.IsTypeOnly {
				c.blankElementAndComma(el.Start, el.End)
			}
		}
	}
	return EMITTED_JS
}

// visitExport erases type-only exports. A few sub-forms (export default,
// "export * from", bare "export {...} from") never carry an IsTypeOnly
// flag from the parser and always leave runtime JS behind.
func (c *Context) visitExport(n *ast.Node) Result {
	if n.IsTypeOnly {
		c.blankStatement(n)
		return BLANKED
	}
	if n.ExportClause != nil {
		for _, el := range n.ExportClause.Elements {
			if el.IsTypeOnly {
				c.blankElementAndComma(el.Start, el.End)
			}
		}
	}
	if n.Expression != nil && c.visit(n.Expression) == BLANKED {
		switch n.Expression.Kind {
		case ast.KindTypeAliasDeclaration, ast.KindInterfaceDeclaration, ast.KindVariableStatement,
			ast.KindClassDeclaration, ast.KindFunctionDeclaration, ast.KindEnumDeclaration,
			ast.KindModuleDeclaration:
			// "export type T = ...", "export interface I {}", "export declare
			// ...": the exported declaration erased to nothing, so the
			// "export" keyword goes with it.
			c.blankStatement(n)
			return BLANKED
		}
	}
	return EMITTED_JS
}

func (c *Context) visitAsSatisfies(n *ast.Node) Result {
	c.visit(n.Expression)
	if n.End == c.missingSemiPos {
		c.blank.BlankButStartWithSemi(n.Expression.End, n.End)
	} else {
		c.blank.Blank(n.Expression.End, n.End)
	}
	return EMITTED_JS
}

func (c *Context) visitExpressionStatement(n *ast.Node) Result {
	if n.End >= len(c.source.Contents) || c.source.Contents[n.End] != ';' {
		c.missingSemiPos = n.End
	}
	return c.visit(n.Expression)
}

// visitBlock handles both ordinary statement blocks and the handful of
// other constructs tsparser represents with KindBlock: a try statement's
// catch clause (Name/Type set, one child — the real block) and a switch
// clause (Expression set to the case test, children the clause's
// statements). Routing all three through one statement-sequence walk is
// what keeps seenJS threaded correctly across a case clause's statements.
func (c *Context) visitBlock(n *ast.Node) Result {
	if n.Type != nil {
		// catch (e: T) — T is pure type syntax with no runtime meaning.
		c.blank.Blank(n.ColonStart, n.Type.End)
	}
	return c.visitList(childrenOf(n))
}

// visitClass erases a class declaration's visibility/ambient modifiers,
// type parameters, and implements clauses, then recurses into members.
func (c *Context) visitClass(n *ast.Node) Result {
	if n.Declare {
		c.blankStatement(n)
		return BLANKED
	}
	for _, m := range n.Modifiers {
		switch m.Text {
		case "private", "protected", "public", "abstract", "override", "declare", "readonly":
			c.blank.Blank(m.Start, m.End)
		}
	}
	for _, d := range n.Decorators {
		c.visit(d)
	}
	if n.TypeParameters != nil {
		searchEnd := n.End
		if len(n.HeritageClauses) > 0 {
			searchEnd = n.HeritageClauses[0].Start
		} else if len(n.Members) > 0 {
			searchEnd = n.Members[0].Start
		}
		c.blankTypeArgs(n.TypeParameters, searchEnd)
	}
	for _, h := range n.HeritageClauses {
		if h.IsExtends {
			c.visit(h.Expression)
		} else {
			c.blank.Blank(h.Start, h.End)
		}
	}
	for _, m := range n.Members {
		c.visit(m)
	}
	return EMITTED_JS
}

// visitPropertyDeclaration erases an ambient/abstract member outright, or
// its modifiers and type annotation otherwise.
func (c *Context) visitPropertyDeclaration(n *ast.Node) Result {
	if n.Declare || n.HasModifier("abstract") {
		c.blank.Blank(n.Start, n.End)
		return BLANKED
	}
	for _, m := range n.Modifiers {
		switch m.Text {
		case "private", "protected", "public", "abstract", "override", "declare", "readonly":
			c.blank.Blank(m.Start, m.End)
		}
	}
	for _, d := range n.Decorators {
		c.visit(d)
	}
	if n.ExclamationPos >= 0 {
		c.blank.Blank(n.ExclamationPos, n.ExclamationPos+1)
	}
	if n.QuestionPos >= 0 {
		c.blank.Blank(n.QuestionPos, n.QuestionPos+1)
	}
	if n.Type != nil {
		c.blank.Blank(n.ColonStart, n.Type.End)
	}
	c.visit(n.Name)
	if n.Initializer != nil {
		c.visit(n.Initializer)
	}
	return EMITTED_JS
}

// visitFunctionLike erases type parameters, parameter annotations, and
// return types; shared by every function-like kind: declarations,
// expressions, arrows, methods, accessors, and constructors.
func (c *Context) visitFunctionLike(n *ast.Node) Result {
	if n.Body == nil {
		// An ambient declaration ("declare function f(): void;") or a bare
		// overload signature — either way nothing runs at this position.
		if n.HasModifier("declare") {
			c.blankStatement(n)
		} else {
			c.blank.Blank(n.Start, n.End)
		}
		return BLANKED
	}

	for _, m := range n.Modifiers {
		switch m.Text {
		case "private", "protected", "public", "abstract", "override", "declare", "readonly":
			c.blank.Blank(m.Start, m.End)
		}
	}
	c.visit(n.Name)

	if n.TypeParameters != nil {
		c.blankTypeArgs(n.TypeParameters, n.End)
	}
	if n.QuestionPos >= 0 {
		c.blank.Blank(n.QuestionPos, n.QuestionPos+1)
	}

	for i, param := range n.Parameters {
		if i == 0 && param.Name != nil && param.Name.Kind == ast.KindIdentifier && param.Name.Text == "this" {
			c.blankElementAndComma(param.Start, param.End)
			continue
		}
		for _, m := range param.Modifiers {
			switch m.Text {
			case "public", "private", "protected", "readonly":
				c.OnError(param)
			}
		}
		c.visit(param.Name)
		if param.QuestionPos >= 0 {
			c.blank.Blank(param.QuestionPos, param.QuestionPos+1)
		}
		if param.Type != nil {
			c.blank.Blank(param.ColonStart, param.Type.End)
		}
		if param.Initializer != nil {
			c.visit(param.Initializer)
		}
	}

	if n.ReturnType != nil {
		if n.Kind == ast.KindArrowFunction && n.ParenEnd > 0 {
			// Blanking the return type alone would leave the arrow's "=>"
			// separated from its parameter list by dead space; if a
			// newline also sits in that gap, ASI would insert a semicolon
			// right before "=>" and break the function. Shifting the ")"
			// to the end of the blanked range keeps it glued to "=>". When
			// "=>" starts its own line, the ")" stops short of the line
			// break in front of it so that newline survives.
			end := n.ReturnType.End
			for end-1 > n.ParenEnd-1 && c.source.Contents[end-1] == '\n' {
				end--
			}
			c.blank.BlankButEndWithCloseParen(n.ParenEnd-1, end)
		} else {
			c.blank.Blank(n.ColonStart, n.ReturnType.End)
		}
	}

	if n.Body.Kind == ast.KindBlock {
		saved := c.seenJS
		c.seenJS = false
		c.visitList(childrenOf(n.Body))
		c.seenJS = saved
	} else {
		c.visit(n.Body) // concise-body arrow
	}
	return EMITTED_JS
}
