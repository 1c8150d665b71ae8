// Package scanner implements a scanner adapter: a thin wrapper over
// internal/lexer used to locate a specific token inside a byte range
// that the syntax tree does not expose directly — most importantly, the
// closing ">" of a generic argument/parameter list, whose position
// tsparser deliberately does not record (see internal/tsparser's package
// doc), since the parse tree only exposes the start of the first
// argument and the end of the last.
package scanner

import (
	"github.com/zfben/ts-blank-space/internal/lexer"
	"github.com/zfben/ts-blank-space/internal/logger"
)

// Adapter binds a lexer to one source for repeated sub-range scans.
type Adapter struct {
	source logger.Source
}

// New constructs an Adapter over source. Adapters are cheap; internal/erase
// creates one per Transform call — there is no shared scanner state
// across concurrent invocations.
func New(source logger.Source) Adapter {
	return Adapter{source: source}
}

// ScanForToken positions a fresh lexer at start, scans forward token by
// token, and returns the end offset of the first token matching kind. If
// no such token appears before end (or before EOF), it returns start
// unchanged — a documented fallback that keeps a caller that misjudged a
// range from corrupting unrelated text; such a case only arises on
// ill-formed input.
func (a Adapter) ScanForToken(start, end int, kind lexer.T) int {
	l := lexer.NewLexer(a.source)
	l.SetRange(start)
	for l.Token != lexer.TEndOfFile && int(l.Loc().Start) < end {
		if l.Token == kind {
			return int(l.Range().End())
		}
		l.Next()
	}
	return start
}

// ScanForGreaterThan is ScanForToken specialized for the "<...>" closing
// delimiter, which may appear merged into a compound token like ">>" or
// ">=" when two generic lists close back to back or a comparison follows
// immediately. It returns the offset just past a single logical '>'.
func (a Adapter) ScanForGreaterThan(start, end int) int {
	l := lexer.NewLexer(a.source)
	l.SetRange(start)
	for l.Token != lexer.TEndOfFile && int(l.Loc().Start) < end {
		switch l.Token {
		case lexer.TGreaterThan:
			return int(l.Range().End())
		case lexer.TGreaterThanEquals, lexer.TGreaterThanGreaterThan,
			lexer.TGreaterThanGreaterThanEquals, lexer.TGreaterThanGreaterThanGreaterThan,
			lexer.TGreaterThanGreaterThanGreaterThanEquals:
			return int(l.Loc().Start) + 1
		}
		l.Next()
	}
	return start
}

// ResetAtAndPeek repositions at offset and reports the token kind found
// there, used to detect a trailing comma after an erased element.
func (a Adapter) ResetAtAndPeek(offset int) lexer.T {
	l := lexer.NewLexer(a.source)
	l.SetRange(offset)
	return l.Token
}
