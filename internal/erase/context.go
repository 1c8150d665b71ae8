// Package erase implements the recursive syntax-directed visitor:
// given a parsed tree and a same-length BlankString, it walks every node
// once and blanks the byte ranges that are pure type syntax, leaving
// runtime JavaScript untouched. This is the core of the port; everything
// else in the module exists to feed it a tree or expose its output.
package erase

import (
	"github.com/zfben/ts-blank-space/internal/ast"
	"github.com/zfben/ts-blank-space/internal/blank"
	"github.com/zfben/ts-blank-space/internal/logger"
	"github.com/zfben/ts-blank-space/internal/scanner"
)

// Result reports whether a visited node left any runtime JavaScript behind,
// which the ASI bookkeeping in blankStatement (below) needs to know before
// deciding whether the next blanked statement needs a leading ';'.
type Result uint8

const (
	// BLANKED means the node's entire source span became whitespace (plus,
	// for non-suffixed ranges, newlines).
	BLANKED Result = iota
	// EMITTED_JS means at least one byte of the node's span survived as
	// runtime JavaScript.
	EMITTED_JS
)

// Context holds the mutable state threaded through one Transform call.
// Every call gets a fresh one — there is no shared state across
// concurrent invocations.
type Context struct {
	source logger.Source
	blank  *blank.String
	scan   scanner.Adapter

	// seenJS is true once any runtime JS has been emitted before the
	// current position in the statement sequence currently being walked.
	// blankStatement consults it to decide whether a fully-blanked
	// statement needs a leading ';' to keep automatic semicolon insertion
	// from fusing it with the next line.
	seenJS bool

	// missingSemiPos records the offset of the most recent expression
	// statement's end when that statement had no explicit trailing ';'.
	// A type-assertion/as/satisfies rule at exactly that offset needs to
	// know this to decide whether blanking its suffix could reintroduce a
	// missing semicolon.
	missingSemiPos int

	// OnError receives a node for every construct treated as an
	// unsupported runtime feature rather than erasable type syntax (legacy
	// type-assertion expressions, parameter properties, "import = "
	// declarations, "export =", enum/namespace declarations without `declare`).
	// It is never nil; New installs a no-op default.
	OnError func(*ast.Node)
}

// New constructs a Context ready to walk source's tree into out.
func New(source logger.Source, out *blank.String, onError func(*ast.Node)) *Context {
	if onError == nil {
		onError = func(*ast.Node) {}
	}
	return &Context{
		source:         source,
		blank:          out,
		scan:           scanner.New(source),
		missingSemiPos: -1,
		OnError:        onError,
	}
}

// Run walks root (a SourceFile) and blanks every type-only span it finds.
func (c *Context) Run(root *ast.Node) {
	c.visitList(childrenOf(root))
}

// childrenOf collects n's direct children in source order, using
// ast.Node.Children so callers never need the unexported child-list field
// SourceFile and Block statements are attached through.
func childrenOf(n *ast.Node) []*ast.Node {
	var out []*ast.Node
	n.Children(func(child *ast.Node) { out = append(out, child) })
	return out
}
