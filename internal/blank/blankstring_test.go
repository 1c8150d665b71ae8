package blank

import "testing"

func TestBlankPreservesLengthAndNewlines(t *testing.T) {
	src := "let x: number\n= 1"
	b := New(src)
	b.Blank(5, 13)
	got := b.String()
	if len(got) != len(src) {
		t.Fatalf("length changed: got %d, want %d", len(got), len(src))
	}
	want := "let x        \n= 1"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBlankKeepsEmbeddedNewline(t *testing.T) {
	b := New("a\nb")
	b.Blank(0, 3)
	if got, want := b.String(), " \n "; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBlankButStartWithSemi(t *testing.T) {
	b := New("type T = 1")
	b.BlankButStartWithSemi(0, len("type T = 1"))
	got := b.String()
	if got[0] != ';' {
		t.Fatalf("got %q, want leading ';'", got)
	}
	if len(got) != len("type T = 1") {
		t.Fatalf("length changed: got %d", len(got))
	}
}

func TestBlankButEndWithCloseParen(t *testing.T) {
	b := New("(): T => 1")
	b.BlankButEndWithCloseParen(1, 6)
	got := b.String()
	if got[5] != ')' {
		t.Fatalf("got %q, want ')' at index 5", got)
	}
}

func TestBlankIsIdempotentOnPlainSpaces(t *testing.T) {
	b := New("   ")
	b.Blank(0, 3)
	if got := b.String(); got != "   " {
		t.Fatalf("got %q", got)
	}
}
