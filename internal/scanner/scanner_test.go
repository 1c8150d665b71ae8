package scanner

import (
	"testing"

	"github.com/zfben/ts-blank-space/internal/lexer"
	"github.com/zfben/ts-blank-space/internal/logger"
)

func TestScanForGreaterThanSimple(t *testing.T) {
	src := "Array<T>"
	a := New(logger.Source{FileName: "<test>", Contents: src})
	end := a.ScanForGreaterThan(5, len(src))
	if got, want := src[5:end], "<T>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScanForGreaterThanSplitsCompoundToken(t *testing.T) {
	// Two generic lists closing back to back lex as one ">>" token; the
	// adapter must treat it as a single logical '>' so a second,
	// independent scan starting right after can still find its own close.
	src := "a<T>>b"
	a := New(logger.Source{FileName: "<test>", Contents: src})
	first := a.ScanForGreaterThan(1, len(src))
	if got, want := src[:first], "a<T>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if first != 4 {
		t.Fatalf("got end %d, want 4 (one past the first '>')", first)
	}
}

func TestScanForGreaterThanHandlesGreaterEquals(t *testing.T) {
	src := "a<b>=c"
	a := New(logger.Source{FileName: "<test>", Contents: src})
	end := a.ScanForGreaterThan(1, len(src))
	if got, want := src[:end], "a<b>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScanForTokenNotFoundReturnsStart(t *testing.T) {
	src := "a b c"
	a := New(logger.Source{FileName: "<test>", Contents: src})
	got := a.ScanForToken(0, len(src), lexer.TSemicolon)
	if got != 0 {
		t.Fatalf("got %d, want start (0) when token is absent", got)
	}
}

func TestResetAtAndPeek(t *testing.T) {
	src := "a, b"
	a := New(logger.Source{FileName: "<test>", Contents: src})
	if tok := a.ResetAtAndPeek(1); tok != lexer.TComma {
		t.Fatalf("got %v, want TComma", tok)
	}
	if tok := a.ResetAtAndPeek(0); tok != lexer.TIdentifier {
		t.Fatalf("got %v, want TIdentifier", tok)
	}
}
