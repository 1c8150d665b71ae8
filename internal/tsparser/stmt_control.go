package tsparser

import (
	"github.com/zfben/ts-blank-space/internal/ast"
	"github.com/zfben/ts-blank-space/internal/lexer"
)

func (p *parser) parseIfStatement(start int) *ast.Node {
	p.next() // 'if'
	p.expectToken(lexer.TOpenParen, "'('")
	cond := p.parseExpr(LLowest)
	p.expectToken(lexer.TCloseParen, "')'")
	then := p.parseStatement()
	n := &ast.Node{Kind: ast.KindIfStatement, Start: start, End: then.End, Expression: cond}
	n.AddChild(then)
	if p.is("else") {
		p.next()
		els := p.parseStatement()
		n.AddChild(els)
		n.End = els.End
	}
	return n
}

func (p *parser) parseWhileStatement(start int) *ast.Node {
	p.next()
	p.expectToken(lexer.TOpenParen, "'('")
	cond := p.parseExpr(LLowest)
	p.expectToken(lexer.TCloseParen, "')'")
	body := p.parseStatement()
	n := &ast.Node{Kind: ast.KindWhileStatement, Start: start, End: body.End, Expression: cond}
	n.AddChild(body)
	return n
}

func (p *parser) parseDoStatement(start int) *ast.Node {
	p.next()
	body := p.parseStatement()
	p.expectWord("while")
	p.expectToken(lexer.TOpenParen, "'('")
	cond := p.parseExpr(LLowest)
	p.expectToken(lexer.TCloseParen, "')'")
	end := p.consumeSemicolonOrASI()
	n := &ast.Node{Kind: ast.KindDoStatement, Start: start, End: end, Expression: cond}
	n.AddChild(body)
	return n
}

func (p *parser) parseForStatement(start int) *ast.Node {
	p.next() // 'for'
	if p.is("await") {
		p.next()
	}
	p.expectToken(lexer.TOpenParen, "'('")

	var initNode *ast.Node
	if p.lex.Token != lexer.TSemicolon {
		if p.isAny("const", "let", "var") {
			vstart := int(p.lex.Loc().Start)
			kind := p.lex.Identifier
			p.next()
			decl := p.parseVariableDeclarationForHeader()
			initNode = &ast.Node{Kind: ast.KindVariableStatement, Start: vstart, Text: kind, Elements: []*ast.Node{decl}}
		} else {
			initNode = p.parseExpr(LLowest)
		}
	}

	if p.isAny("of", "in") {
		isOf := p.is("of")
		p.next()
		iter := p.parseExpr(LAssign)
		p.expectToken(lexer.TCloseParen, "')'")
		body := p.parseStatement()
		kind := ast.KindForInStatement
		if isOf {
			kind = ast.KindForOfStatement
		}
		n := &ast.Node{Kind: kind, Start: start, End: body.End, Expression: iter}
		if initNode != nil {
			n.AddChild(initNode)
		}
		n.AddChild(body)
		return n
	}

	p.expectToken(lexer.TSemicolon, "';'")
	var cond *ast.Node
	if p.lex.Token != lexer.TSemicolon {
		cond = p.parseExpr(LLowest)
	}
	p.expectToken(lexer.TSemicolon, "';'")
	var post *ast.Node
	if p.lex.Token != lexer.TCloseParen {
		post = p.parseExpr(LLowest)
	}
	p.expectToken(lexer.TCloseParen, "')'")
	body := p.parseStatement()

	n := &ast.Node{Kind: ast.KindForStatement, Start: start, End: body.End}
	if initNode != nil {
		n.AddChild(initNode)
	}
	if cond != nil {
		n.AddChild(cond)
	}
	if post != nil {
		n.AddChild(post)
	}
	n.AddChild(body)
	return n
}

// parseVariableDeclarationForHeader parses a single declarator inside a
// "for (let x ... )" header, where a type annotation must stop at "in"/
// "of" as well as the usual terminators.
func (p *parser) parseVariableDeclarationForHeader() *ast.Node {
	start := int(p.lex.Loc().Start)
	name := p.parseBindingTarget()
	n := &ast.Node{Kind: ast.KindVariableDeclaration, Start: start, Name: name, ExclamationPos: -1, QuestionPos: -1}
	if p.lex.Token == lexer.TColon {
		n.ColonStart = int(p.lex.Loc().Start)
		p.next()
		n.Type = p.parseType(ts(lexer.TEquals, lexer.TSemicolon), false)
	}
	if p.lex.Token == lexer.TEquals {
		p.next()
		n.Initializer = p.parseExpr(LAssign)
	}
	n.End = int(p.lex.Loc().Start)
	return n
}

func (p *parser) parseTryStatement(start int) *ast.Node {
	p.next()
	block := p.parseBlock()
	n := &ast.Node{Kind: ast.KindTryStatement, Start: start, End: block.End}
	n.AddChild(block)

	if p.is("catch") {
		cstart := int(p.lex.Loc().Start)
		p.next()
		cn := &ast.Node{Kind: ast.KindBlock, Start: cstart}
		if p.lex.Token == lexer.TOpenParen {
			p.next()
			name := p.parseBindingTarget()
			cn.Name = name
			if p.lex.Token == lexer.TColon {
				cn.ColonStart = int(p.lex.Loc().Start)
				p.next()
				cn.Type = p.parseType(ts(lexer.TCloseParen), false)
			}
			p.expectToken(lexer.TCloseParen, "')'")
		}
		body := p.parseBlock()
		cn.AddChild(body)
		cn.End = body.End
		n.AddChild(cn)
		n.End = cn.End
	}

	if p.is("finally") {
		p.next()
		fb := p.parseBlock()
		n.AddChild(fb)
		n.End = fb.End
	}
	return n
}

func (p *parser) parseSwitchStatement(start int) *ast.Node {
	p.next()
	p.expectToken(lexer.TOpenParen, "'('")
	disc := p.parseExpr(LLowest)
	p.expectToken(lexer.TCloseParen, "')'")
	p.expectToken(lexer.TOpenBrace, "'{'")
	n := &ast.Node{Kind: ast.KindSwitchStatement, Start: start, Expression: disc}
	for p.lex.Token != lexer.TCloseBrace && p.lex.Token != lexer.TEndOfFile {
		cstart := int(p.lex.Loc().Start)
		var caseExpr *ast.Node
		if p.is("case") {
			p.next()
			caseExpr = p.parseExpr(LLowest)
		} else {
			p.expectWord("default")
		}
		p.expectToken(lexer.TColon, "':'")
		clause := &ast.Node{Kind: ast.KindBlock, Start: cstart, Expression: caseExpr}
		for !p.isAny("case", "default") && p.lex.Token != lexer.TCloseBrace && p.lex.Token != lexer.TEndOfFile {
			clause.AddChild(p.parseStatement())
		}
		clause.End = int(p.lex.Loc().Start)
		n.AddChild(clause)
	}
	n.End = int(p.lex.Range().End())
	p.expectToken(lexer.TCloseBrace, "'}'")
	return n
}
