package tsparser

import (
	"github.com/zfben/ts-blank-space/internal/ast"
	"github.com/zfben/ts-blank-space/internal/lexer"
)

// Level is an operator-precedence tier, used by parseExpr's precedence
// climb. Named and ordered the way esbuild's js_ast.L table is, scoped
// down to exactly the operators this grammar needs to disambiguate.
type Level int

const (
	LLowest Level = iota
	LComma
	LAssign
	LConditional
	LNullishCoalescing
	LLogicalOr
	LLogicalAnd
	LBitwiseOr
	LBitwiseXor
	LBitwiseAnd
	LEquals
	LCompare
	LShift
	LAdd
	LMultiply
	LExponentiation
	LPrefix
	LPostfix
)

var binaryPrecedence = map[lexer.T]Level{
	lexer.TBarBar:                         LLogicalOr,
	lexer.TQuestionQuestion:                LNullishCoalescing,
	lexer.TAmpersandAmpersand:              LLogicalAnd,
	lexer.TBar:                             LBitwiseOr,
	lexer.TCaret:                           LBitwiseXor,
	lexer.TAmpersand:                       LBitwiseAnd,
	lexer.TEqualsEquals:                    LEquals,
	lexer.TExclamationEquals:               LEquals,
	lexer.TEqualsEqualsEquals:              LEquals,
	lexer.TExclamationEqualsEquals:         LEquals,
	lexer.TLessThan:                        LCompare,
	lexer.TGreaterThan:                     LCompare,
	lexer.TLessThanEquals:                  LCompare,
	lexer.TGreaterThanEquals:                LCompare,
	lexer.TLessThanLessThan:                LShift,
	lexer.TGreaterThanGreaterThan:          LShift,
	lexer.TGreaterThanGreaterThanGreaterThan: LShift,
	lexer.TPlus:                            LAdd,
	lexer.TMinus:                           LAdd,
	lexer.TAsterisk:                        LMultiply,
	lexer.TSlash:                           LMultiply,
	lexer.TPercent:                         LMultiply,
	lexer.TAsteriskAsterisk:                LExponentiation,
}

var assignmentOps = map[lexer.T]bool{
	lexer.TEquals: true, lexer.TPlusEquals: true, lexer.TMinusEquals: true,
	lexer.TAsteriskEquals: true, lexer.TAsteriskAsteriskEquals: true, lexer.TSlashEquals: true,
	lexer.TPercentEquals: true, lexer.TLessThanLessThanEquals: true,
	lexer.TGreaterThanGreaterThanEquals: true, lexer.TGreaterThanGreaterThanGreaterThanEquals: true,
	lexer.TAmpersandEquals: true, lexer.TBarEquals: true, lexer.TCaretEquals: true,
	lexer.TAmpersandAmpersandEquals: true, lexer.TBarBarEquals: true, lexer.TQuestionQuestionEquals: true,
}

// parseExpr is the precedence-climbing entry point shared by every
// expression-bearing construct (initializers, arguments, statement
// expressions, decorator targets).
func (p *parser) parseExpr(minLevel Level) *ast.Node {
	left := p.parseUnary()

	for {
		// "as" / "satisfies" type expressions.
		if (p.is("as") || p.is("satisfies")) && minLevel <= LCompare && !p.lex.HasNewlineBefore {
			kind := ast.KindAsExpression
			if p.is("satisfies") {
				kind = ast.KindSatisfiesExpression
			}
			p.next()
			if p.is("const") {
				// "x as const" — no type expression to speak of; treat
				// "const" itself as the (trivial) type span.
				tstart := int(p.lex.Loc().Start)
				p.next()
				tend := int(p.lex.Loc().Start)
				left = &ast.Node{Kind: kind, Start: left.Start, End: tend, Expression: left, Type: &ast.Node{Kind: ast.KindTypeNode, Start: tstart, End: tend}}
				continue
			}
			typ := p.parseType(stopAsSatisfiesType, true)
			left = &ast.Node{Kind: kind, Start: left.Start, End: typ.End, Expression: left, Type: typ}
			continue
		}

		if p.lex.Token == lexer.TQuestion && minLevel <= LConditional {
			p.next()
			whenTrue := p.parseExpr(LAssign)
			p.expectToken(lexer.TColon, "':'")
			whenFalse := p.parseExpr(LAssign)
			n := &ast.Node{Kind: ast.KindConditionalExpression, Start: left.Start, End: whenFalse.End, Elements: []*ast.Node{left, whenTrue, whenFalse}}
			left = n
			continue
		}

		if assignmentOps[p.lex.Token] && minLevel <= LAssign {
			p.next()
			right := p.parseExpr(LAssign)
			n := &ast.Node{Kind: ast.KindAssignmentExpression, Start: left.Start, End: right.End, Elements: []*ast.Node{left, right}}
			left = n
			continue
		}

		if lvl, ok := binaryPrecedence[p.lex.Token]; ok && lvl >= minLevel {
			p.next()
			nextMin := lvl + 1
			if p.lex.Token == lexer.TAsteriskAsterisk {
				nextMin = lvl // right-associative
			}
			right := p.parseExpr(nextMin)
			n := &ast.Node{Kind: ast.KindBinaryExpression, Start: left.Start, End: right.End, Elements: []*ast.Node{left, right}}
			left = n
			continue
		}

		if p.isAny("instanceof", "in") && minLevel <= LCompare {
			p.next()
			right := p.parseExpr(LShift)
			left = &ast.Node{Kind: ast.KindBinaryExpression, Start: left.Start, End: right.End, Elements: []*ast.Node{left, right}}
			continue
		}

		if p.lex.Token == lexer.TComma && minLevel <= LComma {
			p.next()
			right := p.parseExpr(LAssign)
			left = &ast.Node{Kind: ast.KindBinaryExpression, Start: left.Start, End: right.End, Elements: []*ast.Node{left, right}}
			continue
		}

		break
	}

	return left
}

// stopAsSatisfiesType intentionally omits binary/logical operator tokens —
// see the package doc's note on "as"/"satisfies" scanning simplifications.
var stopAsSatisfiesType = ts(
	lexer.TComma, lexer.TSemicolon, lexer.TCloseParen, lexer.TCloseBracket, lexer.TCloseBrace,
	lexer.TEqualsGreaterThan,
)

func (p *parser) parseUnary() *ast.Node {
	start := int(p.lex.Loc().Start)

	switch {
	case p.lex.Token == lexer.TExclamation, p.lex.Token == lexer.TTilde,
		p.lex.Token == lexer.TPlus, p.lex.Token == lexer.TMinus,
		p.lex.Token == lexer.TPlusPlus, p.lex.Token == lexer.TMinusMinus:
		p.next()
		expr := p.parseExpr(LPrefix)
		return &ast.Node{Kind: ast.KindUnaryExpression, Start: start, End: expr.End, Expression: expr}

	case p.isAny("typeof", "void", "delete", "await"):
		p.next()
		expr := p.parseExpr(LPrefix)
		return &ast.Node{Kind: ast.KindUnaryExpression, Start: start, End: expr.End, Expression: expr}

	case p.is("yield"):
		p.next()
		if p.lex.Token == lexer.TAsterisk {
			p.next()
		}
		if p.canStartExpr() && !p.lex.HasNewlineBefore {
			expr := p.parseExpr(LAssign)
			return &ast.Node{Kind: ast.KindUnaryExpression, Start: start, End: expr.End, Expression: expr}
		}
		return &ast.Node{Kind: ast.KindUnaryExpression, Start: start, End: int(p.lex.Loc().Start)}
	}

	expr := p.parseLeftHandSideExpression()

	if (p.lex.Token == lexer.TPlusPlus || p.lex.Token == lexer.TMinusMinus) && !p.lex.HasNewlineBefore {
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindPostfixUnaryExpression, Start: expr.Start, End: end, Expression: expr}
	}
	return expr
}

func (p *parser) canStartExpr() bool {
	switch p.lex.Token {
	case lexer.TSemicolon, lexer.TCloseParen, lexer.TCloseBrace, lexer.TCloseBracket,
		lexer.TComma, lexer.TColon, lexer.TEndOfFile:
		return false
	}
	return true
}

// parseLeftHandSideExpression parses a primary expression followed by any
// chain of member access, optional-chaining, non-null assertions, calls,
// and tagged templates.
func (p *parser) parseLeftHandSideExpression() *ast.Node {
	expr := p.parsePrimary()
	return p.parsePostfixChain(expr)
}

func (p *parser) parsePostfixChain(expr *ast.Node) *ast.Node {
	for {
		switch p.lex.Token {
		case lexer.TDot:
			p.next()
			name := p.lex.Identifier
			if p.lex.Token == lexer.TPrivateIdentifier {
				name = p.lex.Raw()
			}
			end := int(p.lex.Range().End())
			p.next()
			expr = &ast.Node{Kind: ast.KindPropertyAccessExpression, Start: expr.Start, End: end, Expression: expr, Text: name}

		case lexer.TQuestionDot:
			p.next()
			if p.lex.Token == lexer.TOpenParen {
				expr = p.parseCallArguments(expr, nil)
				continue
			}
			if p.lex.Token == lexer.TOpenBracket {
				p.next()
				idx := p.parseExpr(LLowest)
				end := int(p.lex.Range().End())
				p.expectToken(lexer.TCloseBracket, "']'")
				expr = &ast.Node{Kind: ast.KindElementAccessExpression, Start: expr.Start, End: end, Expression: expr, Initializer: idx}
				continue
			}
			name := p.lex.Identifier
			end := int(p.lex.Range().End())
			p.next()
			expr = &ast.Node{Kind: ast.KindPropertyAccessExpression, Start: expr.Start, End: end, Expression: expr, Text: name}

		case lexer.TOpenBracket:
			p.next()
			idx := p.parseExpr(LLowest)
			end := int(p.lex.Range().End())
			p.expectToken(lexer.TCloseBracket, "']'")
			expr = &ast.Node{Kind: ast.KindElementAccessExpression, Start: expr.Start, End: end, Expression: expr, Initializer: idx}

		case lexer.TExclamation:
			if p.lex.HasNewlineBefore {
				return expr
			}
			end := int(p.lex.Range().End())
			p.next()
			expr = &ast.Node{Kind: ast.KindNonNullExpression, Start: expr.Start, End: end, Expression: expr}

		case lexer.TOpenParen:
			expr = p.parseCallArguments(expr, nil)

		case lexer.TLessThan:
			snap := p.mark()
			typeArgs := p.tryParseTypeArguments()
			if typeArgs == nil {
				p.reset(snap)
				return expr
			}
			if p.lex.Token == lexer.TOpenParen {
				expr = p.parseCallArguments(expr, typeArgs)
			} else if p.lex.Token == lexer.TNoSubstitutionTemplateLiteral || p.lex.Token == lexer.TTemplateHead {
				tmpl := p.parseTemplate()
				expr = &ast.Node{Kind: ast.KindTaggedTemplateExpression, Start: expr.Start, End: tmpl.End, Expression: expr, TypeArguments: typeArgs, Elements: []*ast.Node{tmpl}}
			} else {
				p.reset(snap)
				return expr
			}

		case lexer.TNoSubstitutionTemplateLiteral, lexer.TTemplateHead:
			tmpl := p.parseTemplate()
			expr = &ast.Node{Kind: ast.KindTaggedTemplateExpression, Start: expr.Start, End: tmpl.End, Expression: expr, Elements: []*ast.Node{tmpl}}

		default:
			return expr
		}
	}
}

func (p *parser) parseCallArguments(callee *ast.Node, typeArgs *ast.TypeArgList) *ast.Node {
	p.expectToken(lexer.TOpenParen, "'('")
	var args []*ast.Node
	for p.lex.Token != lexer.TCloseParen && p.lex.Token != lexer.TEndOfFile {
		if p.lex.Token == lexer.TDotDotDot {
			sstart := int(p.lex.Loc().Start)
			p.next()
			e := p.parseExpr(LAssign)
			args = append(args, &ast.Node{Kind: ast.KindSpreadElement, Start: sstart, End: e.End, Expression: e})
		} else {
			args = append(args, p.parseExpr(LAssign))
		}
		if p.lex.Token == lexer.TComma {
			p.next()
		}
	}
	end := int(p.lex.Range().End())
	p.expectToken(lexer.TCloseParen, "')'")
	return &ast.Node{Kind: ast.KindCallExpression, Start: callee.Start, End: end, Expression: callee, Arguments: args, TypeArguments: typeArgs}
}

func (p *parser) parsePrimary() *ast.Node {
	start := int(p.lex.Loc().Start)

	switch p.lex.Token {
	case lexer.TNumericLiteral:
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindNumericLiteral, Start: start, End: end}

	case lexer.TStringLiteral:
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindStringLiteral, Start: start, End: end}

	case lexer.TNoSubstitutionTemplateLiteral, lexer.TTemplateHead:
		return p.parseTemplate()

	case lexer.TSlash, lexer.TSlashEquals:
		p.lex.RescanSlashAsRegExp()
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindRegularExpressionLiteral, Start: start, End: end}

	case lexer.TOpenParen:
		return p.parseParenOrArrow()

	case lexer.TOpenBracket:
		return p.parseArrayLiteral()

	case lexer.TOpenBrace:
		return p.parseObjectLiteral()

	case lexer.TLessThan:
		// Legacy type assertion "<T>expr" (unsupported for erasure —
		// reported by the erasure engine, not here; the parser's job is
		// only to produce correct positions).
		p.next()
		p.skipType(ts(lexer.TGreaterThan), false)
		p.consumeGreaterThan()
		expr := p.parseExpr(LPrefix)
		return &ast.Node{Kind: ast.KindTypeAssertionExpression, Start: start, End: expr.End, Expression: expr}

	case lexer.TPrivateIdentifier:
		text := p.lex.Raw()
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindIdentifier, Start: start, End: end, Text: text}

	case lexer.TIdentifier:
		return p.parseIdentifierPrimary()

	default:
		p.fail("unexpected token")
		return nil
	}
}

func (p *parser) parseIdentifierPrimary() *ast.Node {
	start := int(p.lex.Loc().Start)
	text := p.lex.Identifier

	switch text {
	case "true", "false":
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindBooleanLiteral, Start: start, End: end, Text: text}
	case "null":
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindNullLiteral, Start: start, End: end}
	case "this", "super":
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindIdentifier, Start: start, End: end, Text: text}
	case "new":
		p.next()
		if p.lex.Token == lexer.TDot { // new.target
			p.next()
			end := int(p.lex.Range().End())
			p.next()
			return &ast.Node{Kind: ast.KindIdentifier, Start: start, End: end}
		}
		callee := p.parseLeftHandSideNoCall()
		typeArgs := p.tryParseTypeArguments()
		n := &ast.Node{Kind: ast.KindNewExpression, Start: start, Expression: callee, TypeArguments: typeArgs}
		if p.lex.Token == lexer.TOpenParen {
			call := p.parseCallArguments(callee, nil)
			n.Arguments = call.Arguments
			n.End = call.End
		} else {
			n.End = int(p.lex.Loc().Start)
		}
		return n
	case "function":
		return p.parseFunctionExpr(start)
	case "async":
		snap := p.mark()
		p.next()
		if p.is("function") {
			return p.parseFunctionExpr(start)
		}
		if !p.lex.HasNewlineBefore {
			if arrow := p.tryParseArrow(start, true); arrow != nil {
				return arrow
			}
			if p.lex.Token == lexer.TOpenParen {
				if params, parenEnd, ok := p.tryParseArrowParams(); ok {
					var returnType *ast.Node
					if p.lex.Token == lexer.TColon {
						p.next()
						returnType = p.parseType(ts(lexer.TEqualsGreaterThan), false)
					}
					if p.lex.Token == lexer.TEqualsGreaterThan {
						n := p.finishArrow(start, params, returnType, true)
						n.ParenEnd = parenEnd
						return n
					}
				}
			}
		}
		p.reset(snap)
	case "class":
		return p.parseClassLike(start, nil, ast.KindClassExpression)
	}

	// Possible single-identifier arrow function: "x => ..."
	if arrow := p.tryParseArrow(start, false); arrow != nil {
		return arrow
	}

	end := int(p.lex.Range().End())
	p.next()
	return &ast.Node{Kind: ast.KindIdentifier, Start: start, End: end, Text: text}
}

func (p *parser) parseLeftHandSideNoCall() *ast.Node {
	expr := p.parsePrimary()
	for {
		switch p.lex.Token {
		case lexer.TDot:
			p.next()
			name := p.lex.Identifier
			end := int(p.lex.Range().End())
			p.next()
			expr = &ast.Node{Kind: ast.KindPropertyAccessExpression, Start: expr.Start, End: end, Expression: expr, Text: name}
		case lexer.TOpenBracket:
			p.next()
			idx := p.parseExpr(LLowest)
			end := int(p.lex.Range().End())
			p.expectToken(lexer.TCloseBracket, "']'")
			expr = &ast.Node{Kind: ast.KindElementAccessExpression, Start: expr.Start, End: end, Expression: expr, Initializer: idx}
		default:
			return expr
		}
	}
}

func (p *parser) tryParseArrow(start int, isAsync bool) *ast.Node {
	if p.lex.Token == lexer.TIdentifier {
		snap := p.mark()
		name := p.lex.Identifier
		nstart := int(p.lex.Loc().Start)
		nend := int(p.lex.Range().End())
		p.next()
		if p.lex.Token == lexer.TEqualsGreaterThan && !p.lex.HasNewlineBefore {
			p.next()
			param := &ast.Node{Kind: ast.KindParameter, Start: nstart, End: nend, Name: &ast.Node{Kind: ast.KindIdentifier, Start: nstart, End: nend, Text: name}, ExclamationPos: -1, QuestionPos: -1}
			return p.finishArrow(start, []*ast.Node{param}, nil, isAsync)
		}
		p.reset(snap)
	}
	return nil
}

// parseParenOrArrow handles "(" at expression-primary position, which is
// ambiguous between a parenthesized expression and an arrow function's
// parameter list until we see what follows the matching ")".
func (p *parser) parseParenOrArrow() *ast.Node {
	start := int(p.lex.Loc().Start)
	snap := p.mark()

	if params, parenEnd, ok := p.tryParseArrowParams(); ok {
		var returnType *ast.Node
		if p.lex.Token == lexer.TColon {
			p.next()
			returnType = p.parseType(ts(lexer.TEqualsGreaterThan), false)
		}
		if p.lex.Token == lexer.TEqualsGreaterThan {
			n := p.finishArrow(start, params, returnType, false)
			n.ParenEnd = parenEnd
			return n
		}
	}

	p.reset(snap)
	p.expectToken(lexer.TOpenParen, "'('")
	expr := p.parseExpr(LLowest)
	end := int(p.lex.Range().End())
	p.expectToken(lexer.TCloseParen, "')'")
	return &ast.Node{Kind: ast.KindParenthesizedExpression, Start: start, End: end, Expression: expr}
}

// tryParseArrowParams speculatively parses "(params)" and reports whether
// it looks like an arrow parameter list (caller still checks for the
// following "=>", since "(a, b)" alone is also a valid parenthesized
// comma expression), along with the offset just past the closing ")".
func (p *parser) tryParseArrowParams() (params []*ast.Node, parenEnd int, ok bool) {
	snap := p.mark()
	defer func() {
		if r := recover(); r != nil {
			p.reset(snap)
			ok = false
		}
	}()

	p.expectToken(lexer.TOpenParen, "'('")
	for p.lex.Token != lexer.TCloseParen && p.lex.Token != lexer.TEndOfFile {
		params = append(params, p.parseParameter())
		if p.lex.Token == lexer.TComma {
			p.next()
		}
	}
	parenEnd = int(p.lex.Range().End())
	p.expectToken(lexer.TCloseParen, "')'")
	return params, parenEnd, true
}

func (p *parser) finishArrow(start int, params []*ast.Node, returnType *ast.Node, isAsync bool) *ast.Node {
	p.expectToken(lexer.TEqualsGreaterThan, "'=>'")
	n := &ast.Node{Kind: ast.KindArrowFunction, Start: start, Parameters: params, ReturnType: returnType, QuestionPos: -1}
	if isAsync {
		n.Modifiers = append(n.Modifiers, ast.Modifier{Text: "async"})
	}
	if p.lex.Token == lexer.TOpenBrace {
		n.Body = p.parseBlock()
	} else {
		n.Body = p.parseExpr(LAssign)
	}
	n.End = n.Body.End
	return n
}

func (p *parser) parseFunctionExpr(start int) *ast.Node {
	p.next() // 'function'
	if p.lex.Token == lexer.TAsterisk {
		p.next()
	}
	n := &ast.Node{Kind: ast.KindFunctionExpression, Start: start, QuestionPos: -1}
	if p.lex.Token == lexer.TIdentifier {
		n.Name = &ast.Node{Kind: ast.KindIdentifier, Start: int(p.lex.Loc().Start), End: int(p.lex.Range().End()), Text: p.lex.Identifier}
		p.next()
	}
	p.parseFunctionRest(n)
	return n
}

func (p *parser) parseArrayLiteral() *ast.Node {
	start := int(p.lex.Loc().Start)
	p.next()
	n := &ast.Node{Kind: ast.KindArrayLiteralExpression, Start: start}
	for p.lex.Token != lexer.TCloseBracket && p.lex.Token != lexer.TEndOfFile {
		if p.lex.Token == lexer.TComma {
			p.next()
			continue
		}
		if p.lex.Token == lexer.TDotDotDot {
			sstart := int(p.lex.Loc().Start)
			p.next()
			e := p.parseExpr(LAssign)
			n.Elements = append(n.Elements, &ast.Node{Kind: ast.KindSpreadElement, Start: sstart, End: e.End, Expression: e})
		} else {
			n.Elements = append(n.Elements, p.parseExpr(LAssign))
		}
		if p.lex.Token == lexer.TComma {
			p.next()
		}
	}
	n.End = int(p.lex.Range().End())
	p.expectToken(lexer.TCloseBracket, "']'")
	return n
}

func (p *parser) parseObjectLiteral() *ast.Node {
	start := int(p.lex.Loc().Start)
	p.next()
	n := &ast.Node{Kind: ast.KindObjectLiteralExpression, Start: start}
	for p.lex.Token != lexer.TCloseBrace && p.lex.Token != lexer.TEndOfFile {
		pstart := int(p.lex.Loc().Start)
		if p.lex.Token == lexer.TDotDotDot {
			p.next()
			e := p.parseExpr(LAssign)
			n.Elements = append(n.Elements, &ast.Node{Kind: ast.KindSpreadElement, Start: pstart, End: e.End, Expression: e})
			if p.lex.Token == lexer.TComma {
				p.next()
			}
			continue
		}
		if p.is("async") || p.is("get") || p.is("set") || p.lex.Token == lexer.TAsterisk {
			snap := p.mark()
			p.next()
			if p.lex.Token != lexer.TColon && p.lex.Token != lexer.TComma && p.lex.Token != lexer.TCloseBrace && p.lex.Token != lexer.TOpenParen {
				// method shorthand with a get/set/async prefix
				name := p.parsePropertyName()
				m := &ast.Node{Kind: ast.KindMethodDeclaration, Start: pstart, Name: name, QuestionPos: -1}
				p.parseFunctionRest(m)
				n.Elements = append(n.Elements, m)
				if p.lex.Token == lexer.TComma {
					p.next()
				}
				continue
			}
			p.reset(snap)
		}

		name := p.parsePropertyName()
		switch p.lex.Token {
		case lexer.TColon:
			p.next()
			val := p.parseExpr(LAssign)
			n.Elements = append(n.Elements, &ast.Node{Kind: ast.KindPropertyAssignment, Start: pstart, End: val.End, Name: name, Initializer: val})
		case lexer.TOpenParen, lexer.TLessThan:
			m := &ast.Node{Kind: ast.KindMethodDeclaration, Start: pstart, Name: name, QuestionPos: -1}
			p.parseFunctionRest(m)
			n.Elements = append(n.Elements, m)
		case lexer.TEquals:
			// shorthand with default, only valid in destructuring, but
			// harmless to accept positionally here too.
			p.next()
			val := p.parseExpr(LAssign)
			n.Elements = append(n.Elements, &ast.Node{Kind: ast.KindPropertyAssignment, Start: pstart, End: val.End, Name: name, Initializer: val})
		default:
			n.Elements = append(n.Elements, &ast.Node{Kind: ast.KindPropertyAssignment, Start: pstart, End: name.End, Name: name})
		}
		if p.lex.Token == lexer.TComma {
			p.next()
		}
	}
	n.End = int(p.lex.Range().End())
	p.expectToken(lexer.TCloseBrace, "'}'")
	return n
}

func (p *parser) parseTemplate() *ast.Node {
	start := int(p.lex.Loc().Start)
	if p.lex.Token == lexer.TNoSubstitutionTemplateLiteral {
		end := int(p.lex.Range().End())
		p.next()
		return &ast.Node{Kind: ast.KindNoSubstitutionTemplateLiteral, Start: start, End: end}
	}
	n := &ast.Node{Kind: ast.KindTemplateExpression, Start: start}
	p.next() // template head
	for {
		n.Elements = append(n.Elements, p.parseExpr(LLowest))
		p.lex.RescanCloseBraceAsTemplateToken()
		if p.lex.Token == lexer.TTemplateTail {
			n.End = int(p.lex.Range().End())
			p.next()
			return n
		}
		// TTemplateMiddle: continue
		p.next()
	}
}

// ---- expression statement ----

func (p *parser) parseExpressionStatement() *ast.Node {
	start := int(p.lex.Loc().Start)
	expr := p.parseExpr(LLowest)
	end := expr.End // deliberately excludes a trailing ';' — see erase.Context.missingSemiPos
	p.consumeSemicolonOrASI()
	return &ast.Node{Kind: ast.KindExpressionStatement, Start: start, End: end, Expression: expr}
}
