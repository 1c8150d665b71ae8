package lexer

import (
	"testing"

	"github.com/zfben/ts-blank-space/internal/logger"
)

func lexAll(t *testing.T, contents string) []T {
	t.Helper()
	l := NewLexer(logger.Source{FileName: "<test>", Contents: contents})
	var out []T
	for l.Token != TEndOfFile {
		out = append(out, l.Token)
		l.Next()
	}
	return out
}

func expectTokens(t *testing.T, contents string, expected ...T) {
	t.Helper()
	got := lexAll(t, contents)
	if len(got) != len(expected) {
		t.Fatalf("%q: got %d tokens %v, want %d %v", contents, len(got), got, len(expected), expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("%q: token %d: got %v, want %v", contents, i, got[i], expected[i])
		}
	}
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, ">>>=", TGreaterThanGreaterThanGreaterThanEquals)
	expectTokens(t, ">>>", TGreaterThanGreaterThanGreaterThan)
	expectTokens(t, ">>=", TGreaterThanGreaterThanEquals)
	expectTokens(t, ">>", TGreaterThanGreaterThan)
	expectTokens(t, ">=", TGreaterThanEquals)
	expectTokens(t, ">", TGreaterThan)
	expectTokens(t, "=>", TEqualsGreaterThan)
	expectTokens(t, "?.", TQuestionDot)
	expectTokens(t, "??=", TQuestionQuestionEquals)
	expectTokens(t, "...", TDotDotDot)
}

func TestIdentifierAndKeyword(t *testing.T) {
	expectTokens(t, "foo", TIdentifier)
	expectTokens(t, "#priv", TPrivateIdentifier)
	expectTokens(t, "const x", TIdentifier, TIdentifier)
}

func TestStringAndNumber(t *testing.T) {
	expectTokens(t, `"a\"b"`, TStringLiteral)
	expectTokens(t, `'a'`, TStringLiteral)
	expectTokens(t, "123", TNumericLiteral)
	expectTokens(t, "0x1F", TNumericLiteral)
	expectTokens(t, "1_000n", TNumericLiteral)
}

func TestTemplate(t *testing.T) {
	l := NewLexer(logger.Source{FileName: "<test>", Contents: "`a${b}c`"})
	if l.Token != TTemplateHead {
		t.Fatalf("got %v, want TTemplateHead", l.Token)
	}
	l.Next()
	if l.Token != TIdentifier {
		t.Fatalf("got %v, want TIdentifier", l.Token)
	}
	l.Next()
	l.RescanCloseBraceAsTemplateToken()
	if l.Token != TTemplateTail {
		t.Fatalf("got %v, want TTemplateTail", l.Token)
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	expectTokens(t, "a // comment\n+ b", TIdentifier, TPlus, TIdentifier)
	expectTokens(t, "a /* multi\nline */ + b", TIdentifier, TPlus, TIdentifier)
}

func TestHasNewlineBefore(t *testing.T) {
	l := NewLexer(logger.Source{FileName: "<test>", Contents: "a\nb"})
	if l.HasNewlineBefore {
		t.Fatalf("first token should not report a leading newline")
	}
	l.Next()
	if !l.HasNewlineBefore {
		t.Fatalf("second token should report a leading newline")
	}
}

func TestSetRange(t *testing.T) {
	l := NewLexer(logger.Source{FileName: "<test>", Contents: "a, b, c"})
	l.SetRange(3)
	if l.Token != TIdentifier || l.Raw() != "b" {
		t.Fatalf("SetRange(3): got %v %q, want TIdentifier \"b\"", l.Token, l.Raw())
	}
}
