// Package tsparser is the syntax-tree builder treated as an external
// collaborator. It drives internal/lexer with a recursive-descent
// grammar scoped to exactly the constructs internal/erase needs
// positions for, and deliberately does NOT attempt a fully general,
// standards-precise TypeScript grammar — type expressions in particular
// are never built into a structured subtree; they are scanned as an
// opaque balanced-token span (parseType/skipType below), since the
// erasure engine only ever needs a type's byte range, never its shape
// (internal/blank's BlankString operates on ranges, not ASTs).
//
// Known simplifications, each grounded in a construct treated as out of
// scope or edge-case:
//   - JSX elements are not parsed; a leading "<Identifier" in expression
//     position is always treated as a legacy type-assertion span (the
//     same ambiguity that makes TypeAssertionExpression ambiguous with
//     JSX in the first place).
//   - A type embedded inside a larger expression via "as"/"satisfies"
//     (e.g. "a as A | B === c") may over-consume past the "|" into what a
//     full TS grammar would parse as a union type continuing the type,
//     not a bitwise-or operator resuming the expression; parenthesizing
//     the assertion disambiguates, same as in upstream TypeScript when the
//     checker's own grammar is ambiguous.
//   - Labeled statements are not distinguished from a bare identifier
//     expression statement; "label: stmt" parses as an expression
//     statement over "label", then gets confused by a leftover ":" token.
//     Labeled statements are rare in typed-superset sources under test.
package tsparser

import (
	"fmt"

	"github.com/zfben/ts-blank-space/internal/ast"
	"github.com/zfben/ts-blank-space/internal/lexer"
	"github.com/zfben/ts-blank-space/internal/logger"
)

// Parse builds a KindSourceFile root node from source. A malformed input
// surfaces as an error rather than a panic — parse failures are the
// parser's responsibility, and the core (internal/erase) is never asked
// to recover from one.
func Parse(source logger.Source) (root *ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(parseError); ok {
				err = pe.err
				return
			}
			panic(r)
		}
	}()

	l := lexer.NewLexer(source)
	p := &parser{lex: &l, source: source}
	root = p.parseSourceFile()
	return root, nil
}

type parseError struct{ err error }

type parser struct {
	lex    *lexer.Lexer
	source logger.Source
}

func (p *parser) fail(format string, args ...interface{}) {
	loc := p.lex.Loc()
	line, col, _ := p.source.LineColumn(loc.Start)
	msg := fmt.Sprintf(format, args...)
	panic(parseError{fmt.Errorf("%s:%d:%d: %s", p.source.FileName, line, col+1, msg)})
}

func (p *parser) mark() lexer.Lexer  { return *p.lex }
func (p *parser) reset(m lexer.Lexer) { *p.lex = m }

func (p *parser) next() { p.lex.Next() }

func (p *parser) is(word string) bool {
	return p.lex.Token == lexer.TIdentifier && p.lex.Identifier == word
}

func (p *parser) isAny(words ...string) bool {
	for _, w := range words {
		if p.is(w) {
			return true
		}
	}
	return false
}

func (p *parser) eatWord(word string) bool {
	if p.is(word) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expectToken(t lexer.T, what string) {
	if p.lex.Token != t {
		p.fail("expected %s", what)
	}
	p.next()
}

func (p *parser) expectWord(word string) {
	if !p.eatWord(word) {
		p.fail("expected %q", word)
	}
}

// consumeSemicolonOrASI eats a trailing ";" if present; otherwise leaves
// the lexer where it is, matching automatic semicolon insertion. Returns
// the start of the following token, so a statement's span runs through its
// ';' (if any) and the whitespace or comments after it.
func (p *parser) consumeSemicolonOrASI() int {
	if p.lex.Token == lexer.TSemicolon {
		p.next()
		return int(p.lex.Loc().Start)
	}
	return int(p.lex.Loc().Start)
}

// endOfLastToken returns the start offset of the current token. That equals
// the end of the token just consumed only when no whitespace or comment
// separates the two; callers that need an exact end record it before
// advancing instead.
func (p *parser) endOfLastToken() int {
	return int(p.lex.Range().Loc.Start)
}

// ---- top level ----

func (p *parser) parseSourceFile() *ast.Node {
	root := &ast.Node{Kind: ast.KindSourceFile, Start: 0}
	for p.lex.Token != lexer.TEndOfFile {
		root.AddChild(p.parseStatement())
	}
	root.End = len(p.source.Contents)
	return root
}

func (p *parser) parseBlock() *ast.Node {
	start := int(p.lex.Loc().Start)
	p.expectToken(lexer.TOpenBrace, "'{'")
	blk := &ast.Node{Kind: ast.KindBlock, Start: start}
	for p.lex.Token != lexer.TCloseBrace && p.lex.Token != lexer.TEndOfFile {
		blk.AddChild(p.parseStatement())
	}
	blk.End = int(p.lex.Range().End())
	p.expectToken(lexer.TCloseBrace, "'}'")
	return blk
}

func (p *parser) parseStatement() *ast.Node {
	start := int(p.lex.Loc().Start)

	switch {
	case p.lex.Token == lexer.TSemicolon:
		p.next()
		return &ast.Node{Kind: ast.KindEmptyStatement, Start: start, End: start + 1}

	case p.lex.Token == lexer.TAt:
		decs := p.parseDecorators()
		n := p.parseStatement()
		attachDecorators(n, decs)
		return n

	case p.lex.Token == lexer.TOpenBrace:
		return p.parseBlock()

	case p.is("import"):
		return p.parseImportDeclaration()

	case p.is("export"):
		return p.parseExportDeclarationOrAssignment()

	case p.is("declare"):
		snap := p.mark()
		p.next()
		if p.canStartDeclareTarget() {
			return p.parseDeclareStatement(start)
		}
		p.reset(snap)
		return p.parseExpressionStatement()

	case p.is("const") && p.peekIsConstEnum():
		return p.parseEnumDeclaration(start, false)

	case p.isAny("const", "let", "var"):
		return p.parseVariableStatement(start, nil)

	case p.is("function"):
		return p.parseFunctionLike(start, nil, ast.KindFunctionDeclaration)

	case p.is("async"):
		snap := p.mark()
		p.next()
		if p.is("function") {
			return p.parseFunctionLike(start, []ast.Modifier{{Text: "async", Start: start, End: start + 5}}, ast.KindFunctionDeclaration)
		}
		p.reset(snap)
		return p.parseExpressionStatement()

	case p.is("class"):
		return p.parseClassLike(start, nil, ast.KindClassDeclaration)

	case p.is("abstract"):
		snap := p.mark()
		p.next()
		if p.is("class") {
			return p.parseClassLike(start, []ast.Modifier{{Text: "abstract", Start: start, End: start + 8}}, ast.KindClassDeclaration)
		}
		p.reset(snap)
		return p.parseExpressionStatement()

	case p.is("interface"):
		return p.parseInterfaceDeclaration(start)

	case p.isTypeAliasStart():
		return p.parseTypeAliasDeclaration(start)

	case p.isAny("enum"):
		return p.parseEnumDeclaration(start, false)

	case p.isAny("namespace", "module") && p.isModuleDeclarationStart():
		return p.parseModuleDeclaration(start, false)

	case p.is("if"):
		return p.parseIfStatement(start)

	case p.is("for"):
		return p.parseForStatement(start)

	case p.is("while"):
		return p.parseWhileStatement(start)

	case p.is("do"):
		return p.parseDoStatement(start)

	case p.is("try"):
		return p.parseTryStatement(start)

	case p.is("throw"):
		p.next()
		expr := p.parseExpr(LLowest)
		end := p.consumeSemicolonOrASI()
		return &ast.Node{Kind: ast.KindThrowStatement, Start: start, End: end, Expression: expr}

	case p.is("return"):
		p.next()
		n := &ast.Node{Kind: ast.KindReturnStatement, Start: start}
		if p.lex.Token != lexer.TSemicolon && p.lex.Token != lexer.TCloseBrace && p.lex.Token != lexer.TEndOfFile && !p.lex.HasNewlineBefore {
			n.Expression = p.parseExpr(LLowest)
		}
		n.End = p.consumeSemicolonOrASI()
		return n

	case p.is("break"):
		p.next()
		if p.lex.Token == lexer.TIdentifier && !p.lex.HasNewlineBefore {
			p.next()
		}
		end := p.consumeSemicolonOrASI()
		return &ast.Node{Kind: ast.KindBreakStatement, Start: start, End: end}

	case p.is("continue"):
		p.next()
		if p.lex.Token == lexer.TIdentifier && !p.lex.HasNewlineBefore {
			p.next()
		}
		end := p.consumeSemicolonOrASI()
		return &ast.Node{Kind: ast.KindContinueStatement, Start: start, End: end}

	case p.is("switch"):
		return p.parseSwitchStatement(start)
	}

	return p.parseExpressionStatement()
}

// peekIsConstEnum reports whether the current "const" token is followed by
// "enum", i.e. this is a "const enum" declaration rather than a variable
// statement whose declared name happens to be "enum".
func (p *parser) peekIsConstEnum() bool {
	snap := p.mark()
	defer p.reset(snap)
	p.next()
	return p.is("enum")
}

// attachDecorators records decorators parsed ahead of a class declaration
// onto the class node itself, unwrapping an "export"/"export default"
// wrapper first since the decorator belongs to the class, not the export.
func attachDecorators(n *ast.Node, decs []*ast.Node) {
	if n.Kind == ast.KindExportDeclaration && n.Expression != nil {
		n.Expression.Decorators = append(n.Expression.Decorators, decs...)
		return
	}
	n.Decorators = append(n.Decorators, decs...)
}

func (p *parser) canStartDeclareTarget() bool {
	return p.isAny("const", "let", "var", "function", "class", "enum", "namespace", "module", "global", "abstract", "async")
}

func (p *parser) parseDeclareStatement(start int) *ast.Node {
	mod := []ast.Modifier{{Text: "declare", Start: start, End: start + 7}}
	switch {
	case p.is("const") && p.peekIsConstEnum():
		n := p.parseEnumDeclaration(start, false)
		n.Declare = true
		return n
	case p.isAny("const", "let", "var"):
		return p.parseVariableStatement(start, mod)
	case p.is("function"):
		return p.parseFunctionLike(start, mod, ast.KindFunctionDeclaration)
	case p.is("class"):
		return p.parseClassLike(start, mod, ast.KindClassDeclaration)
	case p.is("abstract"):
		p.next()
		mod = append(mod, ast.Modifier{Text: "abstract"})
		return p.parseClassLike(start, mod, ast.KindClassDeclaration)
	case p.is("enum"):
		return p.parseEnumDeclaration(start, true)
	case p.isAny("namespace", "module", "global"):
		return p.parseModuleDeclaration(start, true)
	}
	p.fail("unexpected token after 'declare'")
	return nil
}

// ---- variable statements/declarations ----

func (p *parser) parseVariableStatement(start int, mods []ast.Modifier) *ast.Node {
	kind := p.lex.Identifier // const|let|var
	p.next()

	n := &ast.Node{Kind: ast.KindVariableStatement, Start: start, Modifiers: mods, Text: kind}
	for {
		n.Elements = append(n.Elements, p.parseVariableDeclaration())
		if p.lex.Token == lexer.TComma {
			p.next()
			continue
		}
		break
	}
	n.End = p.consumeSemicolonOrASI()
	for _, m := range mods {
		if m.Text == "declare" {
			n.Declare = true
		}
	}
	return n
}

func (p *parser) parseVariableDeclaration() *ast.Node {
	start := int(p.lex.Loc().Start)
	name := p.parseBindingTarget()

	n := &ast.Node{Kind: ast.KindVariableDeclaration, Start: start, Name: name, ExclamationPos: -1, QuestionPos: -1}

	if p.lex.Token == lexer.TExclamation {
		n.ExclamationPos = int(p.lex.Loc().Start)
		p.next()
	}

	if p.lex.Token == lexer.TColon {
		n.ColonStart = int(p.lex.Loc().Start)
		p.next()
		n.Type = p.parseType(stopVarType, true)
	}

	if p.lex.Token == lexer.TEquals {
		p.next()
		n.Initializer = p.parseExpr(LAssign)
	}

	n.End = int(p.lex.Loc().Start)
	return n
}

var stopVarType = ts(lexer.TEquals, lexer.TSemicolon, lexer.TComma)

// parseBindingTarget parses an identifier, or (superficially) an array/
// object destructuring pattern. Patterns are only walked far enough to
// find their extent; they carry no erasable type-only syntax themselves.
func (p *parser) parseBindingTarget() *ast.Node {
	start := int(p.lex.Loc().Start)
	switch p.lex.Token {
	case lexer.TOpenBracket:
		p.next()
		n := &ast.Node{Kind: ast.KindArrayLiteralExpression, Start: start}
		for p.lex.Token != lexer.TCloseBracket && p.lex.Token != lexer.TEndOfFile {
			if p.lex.Token == lexer.TComma {
				p.next()
				continue
			}
			if p.lex.Token == lexer.TDotDotDot {
				p.next()
			}
			el := p.parseBindingTarget()
			if p.lex.Token == lexer.TEquals {
				p.next()
				el = &ast.Node{Kind: ast.KindAssignmentExpression, Start: el.Start, Elements: []*ast.Node{el, p.parseExpr(LAssign)}}
				el.End = el.Elements[1].End
			}
			n.Elements = append(n.Elements, el)
			if p.lex.Token == lexer.TComma {
				p.next()
			}
		}
		n.End = int(p.lex.Range().End())
		p.expectToken(lexer.TCloseBracket, "']'")
		return n

	case lexer.TOpenBrace:
		p.next()
		n := &ast.Node{Kind: ast.KindObjectLiteralExpression, Start: start}
		for p.lex.Token != lexer.TCloseBrace && p.lex.Token != lexer.TEndOfFile {
			if p.lex.Token == lexer.TDotDotDot {
				p.next()
			}
			prop := p.parseBindingTarget()
			if p.lex.Token == lexer.TColon {
				p.next()
				prop = p.parseBindingTarget()
			}
			if p.lex.Token == lexer.TEquals {
				p.next()
				prop = &ast.Node{Kind: ast.KindAssignmentExpression, Start: prop.Start, Elements: []*ast.Node{prop, p.parseExpr(LAssign)}}
				prop.End = prop.Elements[1].End
			}
			n.Elements = append(n.Elements, prop)
			if p.lex.Token == lexer.TComma {
				p.next()
			}
		}
		n.End = int(p.lex.Range().End())
		p.expectToken(lexer.TCloseBrace, "'}'")
		return n

	case lexer.TIdentifier:
		text := p.lex.Identifier
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindIdentifier, Start: start, End: end, Text: text}

	default:
		p.fail("expected a binding name")
		return nil
	}
}

// ---- type alias / interface ----

// isTypeAliasStart disambiguates "type T = ..." from a variable or
// expression statement that merely starts with the identifier "type"
// (itself a valid, if discouraged, identifier name).
func (p *parser) isTypeAliasStart() bool {
	if !p.is("type") {
		return false
	}
	snap := p.mark()
	defer p.reset(snap)
	p.next()
	if p.lex.Token != lexer.TIdentifier {
		return false
	}
	p.next()
	return p.lex.Token == lexer.TEquals || p.lex.Token == lexer.TLessThan
}

func (p *parser) parseTypeAliasDeclaration(start int) *ast.Node {
	p.next() // 'type'
	name := &ast.Node{Kind: ast.KindIdentifier, Start: int(p.lex.Loc().Start), End: int(p.lex.Range().End()), Text: p.lex.Identifier}
	p.next()

	n := &ast.Node{Kind: ast.KindTypeAliasDeclaration, Start: start, Name: name}
	if p.lex.Token == lexer.TLessThan {
		n.TypeParameters = p.parseTypeParameterList()
	}
	p.expectToken(lexer.TEquals, "'='")
	p.skipType(stopStmtType, true)
	n.End = p.consumeSemicolonOrASI()
	return n
}

var stopStmtType = ts(lexer.TSemicolon)

func (p *parser) parseInterfaceDeclaration(start int) *ast.Node {
	p.next() // 'interface'
	name := &ast.Node{Kind: ast.KindIdentifier, Start: int(p.lex.Loc().Start), End: int(p.lex.Range().End()), Text: p.lex.Identifier}
	p.next()

	n := &ast.Node{Kind: ast.KindInterfaceDeclaration, Start: start, Name: name}
	if p.lex.Token == lexer.TLessThan {
		n.TypeParameters = p.parseTypeParameterList()
	}
	if p.is("extends") {
		p.next()
		for {
			p.skipType(ts(lexer.TComma, lexer.TOpenBrace), false)
			if p.lex.Token == lexer.TComma {
				p.next()
				continue
			}
			break
		}
	}
	// Body is itself type-only syntax end-to-end; skip the whole balanced
	// "{ ... }" as one opaque span rather than parsing members.
	p.expectToken(lexer.TOpenBrace, "'{'")
	depth := 1
	for depth > 0 && p.lex.Token != lexer.TEndOfFile {
		switch p.lex.Token {
		case lexer.TOpenBrace:
			depth++
		case lexer.TCloseBrace:
			depth--
		}
		p.next()
	}
	n.End = int(p.lex.Loc().Start)
	return n
}

func (p *parser) parseEnumDeclaration(start int, declare bool) *ast.Node {
	isConst := p.eatWord("const")
	p.expectWord("enum")
	name := p.lex.Identifier
	p.next()
	n := &ast.Node{Kind: ast.KindEnumDeclaration, Start: start, Declare: declare, Text: name}
	if isConst {
		n.Modifiers = append(n.Modifiers, ast.Modifier{Text: "const"})
	}
	p.expectToken(lexer.TOpenBrace, "'{'")
	depth := 1
	for depth > 0 && p.lex.Token != lexer.TEndOfFile {
		switch p.lex.Token {
		case lexer.TOpenBrace:
			depth++
		case lexer.TCloseBrace:
			depth--
		}
		p.next()
	}
	n.End = int(p.lex.Loc().Start)
	return n
}

func (p *parser) isModuleDeclarationStart() bool {
	snap := p.mark()
	defer p.reset(snap)
	p.next()
	return p.lex.Token == lexer.TIdentifier || p.lex.Token == lexer.TStringLiteral || p.lex.Token == lexer.TOpenBrace
}

func (p *parser) parseModuleDeclaration(start int, declare bool) *ast.Node {
	p.next() // namespace|module|global
	if p.lex.Token == lexer.TIdentifier || p.lex.Token == lexer.TStringLiteral {
		p.next()
		for p.lex.Token == lexer.TDot {
			p.next()
			p.next()
		}
	}
	n := &ast.Node{Kind: ast.KindModuleDeclaration, Start: start, Declare: declare}
	if p.lex.Token == lexer.TOpenBrace {
		p.expectToken(lexer.TOpenBrace, "'{'")
		depth := 1
		for depth > 0 && p.lex.Token != lexer.TEndOfFile {
			switch p.lex.Token {
			case lexer.TOpenBrace:
				depth++
			case lexer.TCloseBrace:
				depth--
			}
			p.next()
		}
		n.End = int(p.lex.Loc().Start)
	} else {
		n.End = p.consumeSemicolonOrASI()
	}
	return n
}

// ---- import / export ----

func (p *parser) parseImportDeclaration() *ast.Node {
	start := int(p.lex.Loc().Start)
	p.next() // 'import'

	n := &ast.Node{Kind: ast.KindImportDeclaration, Start: start}

	if p.is("type") {
		snap := p.mark()
		p.next()
		if !(p.lex.Token == lexer.TComma || p.is("from")) {
			n.IsTypeOnly = true
		} else {
			p.reset(snap)
		}
	}

	clause := &ast.ImportExportClause{}
	if p.lex.Token == lexer.TIdentifier {
		p.next() // default import binding, or an "import X = ..." name
		if p.lex.Token == lexer.TEquals {
			p.next()
			expr := p.parseExpr(LLowest)
			end := p.consumeSemicolonOrASI()
			return &ast.Node{Kind: ast.KindImportEqualsDeclaration, Start: start, End: end, Expression: expr}
		}
		if p.lex.Token == lexer.TComma {
			p.next()
		}
	}
	if p.lex.Token == lexer.TAsterisk {
		p.next()
		p.expectWord("as")
		p.next()
	} else if p.lex.Token == lexer.TOpenBrace {
		clause.Start = int(p.lex.Loc().Start)
		p.next()
		for p.lex.Token != lexer.TCloseBrace && p.lex.Token != lexer.TEndOfFile {
			el := p.parseNamedBindingElement()
			clause.Elements = append(clause.Elements, el)
			if p.lex.Token == lexer.TComma {
				p.next()
			}
		}
		clause.End = int(p.lex.Range().End())
		p.expectToken(lexer.TCloseBrace, "'}'")
		n.ImportClause = clause
	}

	if p.is("from") {
		p.next()
	}
	if p.lex.Token == lexer.TStringLiteral {
		p.next()
	}
	n.End = p.consumeSemicolonOrASI()
	return n
}

func (p *parser) parseNamedBindingElement() *ast.NamedBindingElement {
	start := int(p.lex.Loc().Start)
	isTypeOnly := false
	if p.is("type") {
		snap := p.mark()
		p.next()
		if p.lex.Token == lexer.TIdentifier && !p.is("as") {
			isTypeOnly = true
		} else if p.is("as") {
			snap2 := p.mark()
			p.next()
			if p.lex.Token == lexer.TIdentifier {
				// "type as X" - ambiguous; treat "type" as the element name
				p.reset(snap2)
				p.reset(snap)
			} else {
				p.reset(snap)
			}
		} else {
			p.reset(snap)
		}
	}
	p.next() // identifier (name, or "as" clause start already consumed if typeOnly path advanced)
	if p.is("as") {
		p.next()
		p.next()
	}
	end := int(p.lex.Loc().Start)
	return &ast.NamedBindingElement{Start: start, End: end, IsTypeOnly: isTypeOnly}
}

func (p *parser) parseExportDeclarationOrAssignment() *ast.Node {
	start := int(p.lex.Loc().Start)
	p.next() // 'export'

	if p.lex.Token == lexer.TEquals {
		p.next()
		expr := p.parseExpr(LLowest)
		end := p.consumeSemicolonOrASI()
		return &ast.Node{Kind: ast.KindExportAssignment, Start: start, End: end, Expression: expr, IsExportEquals: true}
	}

	if p.is("default") {
		p.next()
		// export default <expr-or-decl>;
		switch {
		case p.is("function"):
			fstart := int(p.lex.Loc().Start)
			return p.parseFunctionLike(fstart, nil, ast.KindFunctionDeclaration)
		case p.is("class"):
			cstart := int(p.lex.Loc().Start)
			return p.parseClassLike(cstart, nil, ast.KindClassDeclaration)
		default:
			expr := p.parseExpr(LAssign)
			end := p.consumeSemicolonOrASI()
			return &ast.Node{Kind: ast.KindExportDeclaration, Start: start, End: end, Expression: expr}
		}
	}

	n := &ast.Node{Kind: ast.KindExportDeclaration, Start: start}

	if p.is("type") {
		snap := p.mark()
		p.next()
		if p.lex.Token == lexer.TOpenBrace || p.lex.Token == lexer.TAsterisk {
			n.IsTypeOnly = true
		} else {
			p.reset(snap)
		}
	}

	switch {
	case p.lex.Token == lexer.TAsterisk:
		p.next()
		if p.is("as") {
			p.next()
			p.next()
		}
		if p.is("from") {
			p.next()
			p.next()
		}
		n.End = p.consumeSemicolonOrASI()
		return n

	case p.lex.Token == lexer.TOpenBrace:
		clause := &ast.ImportExportClause{Start: int(p.lex.Loc().Start)}
		p.next()
		for p.lex.Token != lexer.TCloseBrace && p.lex.Token != lexer.TEndOfFile {
			el := p.parseNamedBindingElement()
			clause.Elements = append(clause.Elements, el)
			if p.lex.Token == lexer.TComma {
				p.next()
			}
		}
		clause.End = int(p.lex.Range().End())
		p.expectToken(lexer.TCloseBrace, "'}'")
		n.ExportClause = clause
		if p.is("from") {
			p.next()
			p.next()
		}
		n.End = p.consumeSemicolonOrASI()
		return n

	default:
		// "export const x = 1", "export function f(){}", "export class C{}",
		// "export interface I{}", "export type T = ...", "export enum E{}"
		n.Expression = p.parseStatement()
		n.End = n.Expression.End
		return n
	}
}

// ---- class ----

var classModifierWords = []string{"public", "private", "protected", "readonly", "abstract", "override", "declare", "static", "accessor"}

func (p *parser) parseModifiers(words []string) []ast.Modifier {
	var mods []ast.Modifier
	for {
		matched := false
		for _, w := range words {
			if !p.is(w) {
				continue
			}
			snap := p.mark()
			start := int(p.lex.Loc().Start)
			end := int(p.lex.Range().End())
			p.next()
			// If the word is immediately followed by a token that can only
			// start a member/parameter body, it was actually the name, not
			// a modifier (e.g. a method literally called "static").
			if p.lex.Token == lexer.TOpenParen || p.lex.Token == lexer.TEquals ||
				p.lex.Token == lexer.TColon || p.lex.Token == lexer.TSemicolon ||
				p.lex.Token == lexer.TComma || p.lex.Token == lexer.TCloseParen ||
				p.lex.Token == lexer.TQuestion || p.lex.Token == lexer.TExclamation {
				p.reset(snap)
				return mods
			}
			mods = append(mods, ast.Modifier{Text: w, Start: start, End: end})
			matched = true
			break
		}
		if !matched {
			return mods
		}
	}
}

func (p *parser) parseDecorators() []*ast.Node {
	var decs []*ast.Node
	for p.lex.Token == lexer.TAt {
		start := int(p.lex.Loc().Start)
		p.next()
		expr := p.parseLeftHandSideExpression()
		decs = append(decs, &ast.Node{Kind: ast.KindDecorator, Start: start, End: expr.End, Expression: expr})
	}
	return decs
}

func (p *parser) parseClassLike(start int, mods []ast.Modifier, kind ast.Kind) *ast.Node {
	p.next() // 'class'
	n := &ast.Node{Kind: kind, Start: start, Modifiers: mods}
	if p.lex.Token == lexer.TIdentifier && !p.is("extends") && !p.is("implements") {
		n.Name = &ast.Node{Kind: ast.KindIdentifier, Start: int(p.lex.Loc().Start), End: int(p.lex.Range().End()), Text: p.lex.Identifier}
		p.next()
	}
	if p.lex.Token == lexer.TLessThan {
		n.TypeParameters = p.parseTypeParameterList()
	}

	for p.is("extends") || p.is("implements") {
		isExtends := p.is("extends")
		hstart := int(p.lex.Loc().Start)
		p.next()
		h := &ast.Node{Kind: ast.KindHeritageClause, Start: hstart, IsExtends: isExtends}
		if isExtends {
			base := p.parseLeftHandSideExpression()
			if p.lex.Token == lexer.TLessThan {
				// "extends Base<T>" — a heritage clause's own generics are
				// never followed by a call or template, so the general
				// postfix-chain parser already gave up on this "<" and left
				// it unconsumed; it is unambiguously a type-argument list
				// here.
				ta := p.parseTypeArgumentsForced()
				base = &ast.Node{Kind: ast.KindExpressionWithTypeArguments, Start: base.Start, End: int(p.lex.Loc().Start), Expression: base, TypeArguments: ta}
			}
			h.Expression = base
			h.End = h.Expression.End
		} else {
			for {
				p.skipType(ts(lexer.TComma, lexer.TOpenBrace), false)
				if p.lex.Token == lexer.TComma {
					p.next()
					continue
				}
				break
			}
			h.End = int(p.lex.Loc().Start)
		}
		n.HeritageClauses = append(n.HeritageClauses, h)
	}

	for _, m := range mods {
		if m.Text == "declare" {
			n.Declare = true
		}
	}

	p.expectToken(lexer.TOpenBrace, "'{'")
	for p.lex.Token != lexer.TCloseBrace && p.lex.Token != lexer.TEndOfFile {
		if p.lex.Token == lexer.TSemicolon {
			p.next()
			continue
		}
		n.Members = append(n.Members, p.parseClassMember())
	}
	n.End = int(p.lex.Range().End())
	p.expectToken(lexer.TCloseBrace, "'}'")
	return n
}

func (p *parser) parseClassMember() *ast.Node {
	start := int(p.lex.Loc().Start)
	decorators := p.parseDecorators()
	mods := p.parseModifiers(classModifierWords)

	isAsync := false
	if p.is("async") {
		snap := p.mark()
		mstart := int(p.lex.Loc().Start)
		mend := int(p.lex.Range().End())
		p.next()
		if p.lex.Token != lexer.TOpenParen && p.lex.Token != lexer.TEquals && p.lex.Token != lexer.TColon {
			mods = append(mods, ast.Modifier{Text: "async", Start: mstart, End: mend})
			isAsync = true
		} else {
			p.reset(snap)
		}
	}

	isGenerator := false
	if p.lex.Token == lexer.TAsterisk {
		p.next()
		isGenerator = true
	}

	if p.is("get") || p.is("set") {
		snap := p.mark()
		accessor := p.lex.Identifier
		p.next()
		if p.lex.Token == lexer.TIdentifier || p.lex.Token == lexer.TStringLiteral || p.lex.Token == lexer.TOpenBracket || p.lex.Token == lexer.TNumericLiteral {
			kind := ast.KindGetAccessor
			if accessor == "set" {
				kind = ast.KindSetAccessor
			}
			return p.parseMethodTail(start, decorators, mods, kind)
		}
		p.reset(snap)
	}

	if p.lex.Token == lexer.TOpenBracket {
		// index signature: "[key: string]: T" — blanked wholesale.
		return p.parseIndexSignature(start, mods)
	}

	if p.is("constructor") {
		p.next()
		return p.parseMethodTail(start, decorators, mods, ast.KindConstructor)
	}

	_ = isGenerator
	_ = isAsync

	name := p.parsePropertyName()

	if p.lex.Token == lexer.TOpenParen || p.lex.Token == lexer.TLessThan {
		n := p.parseMethodTailWithName(start, decorators, mods, ast.KindMethodDeclaration, name)
		return n
	}

	// property declaration
	n := &ast.Node{Kind: ast.KindPropertyDeclaration, Start: start, Decorators: decorators, Modifiers: mods, Name: name, ExclamationPos: -1, QuestionPos: -1}
	for _, m := range mods {
		if m.Text == "abstract" || m.Text == "declare" {
			n.Declare = n.Declare || m.Text == "declare"
		}
	}
	if p.lex.Token == lexer.TExclamation {
		n.ExclamationPos = int(p.lex.Loc().Start)
		p.next()
	} else if p.lex.Token == lexer.TQuestion {
		n.QuestionPos = int(p.lex.Loc().Start)
		p.next()
	}
	if p.lex.Token == lexer.TColon {
		n.ColonStart = int(p.lex.Loc().Start)
		p.next()
		n.Type = p.parseType(stopVarType, true)
	}
	if p.lex.Token == lexer.TEquals {
		p.next()
		n.Initializer = p.parseExpr(LAssign)
	}
	n.End = p.consumeSemicolonOrASI()
	return n
}

func (p *parser) parseIndexSignature(start int, mods []ast.Modifier) *ast.Node {
	p.expectToken(lexer.TOpenBracket, "'['")
	for p.lex.Token != lexer.TCloseBracket && p.lex.Token != lexer.TEndOfFile {
		p.next()
	}
	p.expectToken(lexer.TCloseBracket, "']'")
	if p.lex.Token == lexer.TColon {
		p.next()
		p.skipType(stopVarType, true)
	}
	end := p.consumeSemicolonOrASI()
	return &ast.Node{Kind: ast.KindIndexSignature, Start: start, End: end, Modifiers: mods}
}

func (p *parser) parsePropertyName() *ast.Node {
	start := int(p.lex.Loc().Start)
	switch p.lex.Token {
	case lexer.TOpenBracket:
		p.next()
		expr := p.parseExpr(LAssign)
		p.expectToken(lexer.TCloseBracket, "']'")
		return expr
	case lexer.TStringLiteral, lexer.TNumericLiteral:
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindStringLiteral, Start: start, End: end}
	case lexer.TPrivateIdentifier:
		text := p.lex.Raw()
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindIdentifier, Start: start, End: end, Text: text}
	default:
		text := p.lex.Identifier
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindIdentifier, Start: start, End: end, Text: text}
	}
}

func (p *parser) parseMethodTail(start int, decorators []*ast.Node, mods []ast.Modifier, kind ast.Kind) *ast.Node {
	return p.parseMethodTailWithName(start, decorators, mods, kind, nil)
}

func (p *parser) parseMethodTailWithName(start int, decorators []*ast.Node, mods []ast.Modifier, kind ast.Kind, name *ast.Node) *ast.Node {
	n := &ast.Node{Kind: kind, Start: start, Decorators: decorators, Modifiers: mods, Name: name, QuestionPos: -1}
	if p.lex.Token == lexer.TQuestion {
		n.QuestionPos = int(p.lex.Loc().Start)
		p.next()
	}
	p.parseFunctionRest(n)
	return n
}

// ---- functions ----

func (p *parser) parseFunctionLike(start int, mods []ast.Modifier, kind ast.Kind) *ast.Node {
	p.next() // 'function'
	if p.lex.Token == lexer.TAsterisk {
		p.next()
	}
	n := &ast.Node{Kind: kind, Start: start, Modifiers: mods, QuestionPos: -1}
	for _, m := range mods {
		if m.Text == "declare" {
			n.Declare = true
		}
	}
	if p.lex.Token == lexer.TIdentifier {
		n.Name = &ast.Node{Kind: ast.KindIdentifier, Start: int(p.lex.Loc().Start), End: int(p.lex.Range().End()), Text: p.lex.Identifier}
		p.next()
	}
	p.parseFunctionRest(n)
	return n
}

// parseFunctionRest parses [<T>](params)[: ReturnType] and then either a
// block body or nothing (an overload/ambient signature), shared by
// function declarations, methods, constructors, and accessors. Arrow
// functions have their own entry points (parseParenOrArrow and
// tryParseArrow) since their parameter list may be a single bare identifier.
func (p *parser) parseFunctionRest(n *ast.Node) {
	if p.lex.Token == lexer.TLessThan {
		n.TypeParameters = p.parseTypeParameterList()
	}

	p.expectToken(lexer.TOpenParen, "'('")
	for p.lex.Token != lexer.TCloseParen && p.lex.Token != lexer.TEndOfFile {
		n.Parameters = append(n.Parameters, p.parseParameter())
		if p.lex.Token == lexer.TComma {
			p.next()
		}
	}
	n.ParenEnd = int(p.lex.Range().End())
	p.expectToken(lexer.TCloseParen, "')'")

	if p.lex.Token == lexer.TColon {
		n.ColonStart = int(p.lex.Loc().Start)
		p.next()
		n.ReturnType = p.parseType(ts(lexer.TOpenBrace, lexer.TSemicolon), false)
	}

	if p.lex.Token == lexer.TOpenBrace {
		n.Body = p.parseBlock()
		n.End = n.Body.End
	} else {
		n.End = p.consumeSemicolonOrASI()
	}
}

func (p *parser) parseParameter() *ast.Node {
	start := int(p.lex.Loc().Start)
	decorators := p.parseDecorators()
	mods := p.parseModifiers([]string{"public", "private", "protected", "readonly"})

	if p.lex.Token == lexer.TDotDotDot {
		p.next()
	}

	name := p.parseBindingTarget()
	n := &ast.Node{Kind: ast.KindParameter, Start: start, Decorators: decorators, Modifiers: mods, Name: name, ExclamationPos: -1, QuestionPos: -1}

	if p.lex.Token == lexer.TQuestion {
		n.QuestionPos = int(p.lex.Loc().Start)
		p.next()
	}
	if p.lex.Token == lexer.TColon {
		n.ColonStart = int(p.lex.Loc().Start)
		p.next()
		n.Type = p.parseType(ts(lexer.TComma, lexer.TEquals), false)
	}
	if p.lex.Token == lexer.TEquals {
		p.next()
		n.Initializer = p.parseExpr(LAssign)
	}
	n.End = int(p.lex.Loc().Start)
	return n
}

// ---- type parameter lists ----

func (p *parser) parseTypeParameterList() *ast.TypeArgList {
	start := int(p.lex.Loc().Start)
	p.expectToken(lexer.TLessThan, "'<'")
	list := &ast.TypeArgList{Start: start}
	for p.lex.Token != lexer.TEndOfFile {
		pstart := int(p.lex.Loc().Start)
		if p.lex.Token != lexer.TIdentifier {
			break
		}
		p.next()
		if p.is("extends") {
			p.next()
			p.skipType(ts(lexer.TComma, lexer.TEquals), false)
		}
		if p.lex.Token == lexer.TEquals {
			p.next()
			p.skipType(ts(lexer.TComma), false)
		}
		pend := int(p.lex.Loc().Start)
		list.Elements = append(list.Elements, &ast.Node{Kind: ast.KindTypeNode, Start: pstart, End: pend})
		if p.lex.Token == lexer.TComma {
			p.next()
			continue
		}
		break
	}
	p.consumeGreaterThan()
	return list
}

func (p *parser) consumeGreaterThan() bool {
	switch p.lex.Token {
	case lexer.TGreaterThan:
		p.next()
		return true
	case lexer.TGreaterThanEquals, lexer.TGreaterThanGreaterThan,
		lexer.TGreaterThanGreaterThanEquals, lexer.TGreaterThanGreaterThanGreaterThan,
		lexer.TGreaterThanGreaterThanGreaterThanEquals:
		start := int(p.lex.Loc().Start)
		p.lex.SetRange(start + 1)
		return true
	default:
		return false
	}
}

// tryParseTypeArguments speculatively parses a "<...>" type-argument list
// after a call/new callee or tagged-template tag: the
// CallExpression/NewExpression/TaggedTemplateExpression case. It only
// commits if what follows can only be a call (so "a < b" parses as a
// comparison, never as an empty type-argument list).
func (p *parser) tryParseTypeArguments() *ast.TypeArgList {
	if p.lex.Token != lexer.TLessThan {
		return nil
	}
	snap := p.mark()
	start := int(p.lex.Loc().Start)
	p.next()

	list := &ast.TypeArgList{Start: start}
	ok := true
	for {
		if p.lex.Token == lexer.TEndOfFile {
			ok = false
			break
		}
		estart := int(p.lex.Loc().Start)
		p.skipType(ts(lexer.TComma, lexer.TGreaterThan, lexer.TGreaterThanGreaterThan, lexer.TGreaterThanGreaterThanGreaterThan), false)
		eend := int(p.lex.Loc().Start)
		if eend == estart {
			ok = false
			break
		}
		list.Elements = append(list.Elements, &ast.Node{Kind: ast.KindTypeNode, Start: estart, End: eend})
		if p.lex.Token == lexer.TComma {
			p.next()
			continue
		}
		break
	}

	if ok {
		ok = p.consumeGreaterThan()
	}

	if ok && (p.lex.Token == lexer.TOpenParen || p.lex.Token == lexer.TNoSubstitutionTemplateLiteral || p.lex.Token == lexer.TTemplateHead) {
		return list
	}
	p.reset(snap)
	return nil
}

// parseTypeArgumentsForced parses a "<...>" list in a context where it is
// unambiguously type arguments (heritage clauses), never speculative.
func (p *parser) parseTypeArgumentsForced() *ast.TypeArgList {
	start := int(p.lex.Loc().Start)
	p.expectToken(lexer.TLessThan, "'<'")
	list := &ast.TypeArgList{Start: start}
	for p.lex.Token != lexer.TEndOfFile {
		estart := int(p.lex.Loc().Start)
		p.skipType(ts(lexer.TComma, lexer.TGreaterThan, lexer.TGreaterThanGreaterThan, lexer.TGreaterThanGreaterThanGreaterThan), false)
		eend := int(p.lex.Loc().Start)
		list.Elements = append(list.Elements, &ast.Node{Kind: ast.KindTypeNode, Start: estart, End: eend})
		if p.lex.Token == lexer.TComma {
			p.next()
			continue
		}
		break
	}
	p.consumeGreaterThan()
	return list
}

// ---- opaque type scanning ----

type stopSet map[lexer.T]bool

func ts(tokens ...lexer.T) stopSet {
	m := make(stopSet, len(tokens))
	for _, t := range tokens {
		m[t] = true
	}
	return m
}

// skipType consumes a balanced-token span starting at the current token
// (the first token of a type expression) and returns the start offset of
// the token it stopped at, so the span also covers any whitespace or
// comments after the type's last token. It never builds a structured type tree (see
// package doc) — only the byte range is ever needed.
func (p *parser) skipType(stop stopSet, stopOnNewlineAtDepth0 bool) int {
	depth := 0
	for {
		if p.lex.Token == lexer.TEndOfFile {
			return int(p.lex.Loc().Start)
		}
		if depth == 0 {
			if stop[p.lex.Token] {
				return int(p.lex.Loc().Start)
			}
			if stopOnNewlineAtDepth0 && p.lex.HasNewlineBefore {
				return int(p.lex.Loc().Start)
			}
		}
		switch p.lex.Token {
		case lexer.TOpenParen, lexer.TOpenBracket, lexer.TOpenBrace, lexer.TLessThan:
			depth++
		case lexer.TCloseParen, lexer.TCloseBracket, lexer.TCloseBrace:
			if depth == 0 {
				return int(p.lex.Loc().Start)
			}
			depth--
		case lexer.TGreaterThan:
			if depth == 0 {
				return int(p.lex.Loc().Start)
			}
			depth--
		case lexer.TGreaterThanGreaterThan:
			if depth < 2 {
				return int(p.lex.Loc().Start)
			}
			depth -= 2
		case lexer.TGreaterThanGreaterThanGreaterThan:
			if depth < 3 {
				return int(p.lex.Loc().Start)
			}
			depth -= 3
		}
		p.next()
	}
}

// parseType wraps skipType's span in a KindTypeNode.
func (p *parser) parseType(stop stopSet, stopOnNewlineAtDepth0 bool) *ast.Node {
	start := int(p.lex.Loc().Start)
	end := p.skipType(stop, stopOnNewlineAtDepth0)
	return &ast.Node{Kind: ast.KindTypeNode, Start: start, End: end}
}
