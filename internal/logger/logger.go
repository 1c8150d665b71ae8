// Package logger carries source positions and diagnostic messages between
// the parser, the erasure engine, and the CLI driver. It mirrors esbuild's
// own logger package in shape (Loc/Range/Source, a Msg list) but is scoped
// down to a single-file, single-pass transform: no concurrent message
// streaming, no terminal-width wrapping.
package logger

import (
	"fmt"
	"strings"
)

// Loc is a 0-based byte offset into a Source's Contents.
type Loc struct {
	Start int32
}

// Range is a Loc plus a byte length.
type Range struct {
	Loc Loc
	Len int32
}

// End returns the offset one past the last byte of the range.
func (r Range) End() int32 {
	return r.Loc.Start + r.Len
}

// Source is an input file: its name (for diagnostics) and byte contents.
type Source struct {
	FileName string
	Contents string
}

// LineColumn converts a byte offset into a 1-based line and 0-based column,
// and returns the text of that line for caret rendering.
func (s Source) LineColumn(offset int32) (line int, column int, lineText string) {
	line = 1
	lineStart := 0
	for i := 0; i < int(offset) && i < len(s.Contents); i++ {
		if s.Contents[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(s.Contents)
	if idx := strings.IndexByte(s.Contents[lineStart:], '\n'); idx >= 0 {
		lineEnd = lineStart + idx
	}
	column = int(offset) - lineStart
	if column < 0 {
		column = 0
	}
	return line, column, s.Contents[lineStart:lineEnd]
}

// MsgKind distinguishes a hard error from an advisory warning.
type MsgKind uint8

const (
	Warning MsgKind = iota
	Error
)

func (k MsgKind) String() string {
	if k == Error {
		return "error"
	}
	return "warning"
}

// Msg is one diagnostic, already resolved to a line/column against a Source.
type Msg struct {
	Kind     MsgKind
	Text     string
	FileName string
	Line     int
	Column   int
	LineText string
}

// String renders a Msg the way esbuild renders compiler diagnostics:
// "file:line:col: kind: text" followed by the offending source line and a
// caret underneath the start column.
func (m Msg) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: %s: %s\n", m.FileName, m.Line, m.Column+1, m.Kind, m.Text)
	b.WriteString("    ")
	b.WriteString(m.LineText)
	b.WriteString("\n    ")
	for i := 0; i < m.Column && i < len(m.LineText); i++ {
		if m.LineText[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	return b.String()
}

// List collects messages produced over the course of one Transform call.
type List struct {
	Msgs []Msg
}

// Add resolves loc against source and appends the resulting message.
func (l *List) Add(source Source, kind MsgKind, loc Loc, text string) {
	line, column, lineText := source.LineColumn(loc.Start)
	l.Msgs = append(l.Msgs, Msg{
		Kind:     kind,
		Text:     text,
		FileName: source.FileName,
		Line:     line,
		Column:   column,
		LineText: lineText,
	})
}

// HasErrors reports whether any message in the list is MsgKind Error.
func (l List) HasErrors() bool {
	for _, m := range l.Msgs {
		if m.Kind == Error {
			return true
		}
	}
	return false
}
