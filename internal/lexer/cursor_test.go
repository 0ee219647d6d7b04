package lexer

import (
	"testing"
	"unicode/utf8"

	"rpncalc/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rpn", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "1\n+" → 1, \n, +, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("1\n+"))

	for _, want := range []byte{'1', '\n', '+'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek() = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump() = %q, want %q", got, want)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Peek/Bump at EOF must return 0")
	}
}

func TestMarkSpanFrom(t *testing.T) {
	file := createFile("13 4 -")
	cursor := NewCursor(file)

	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 || sp.File != file.ID {
		t.Fatalf("SpanFrom = %v", sp)
	}
}

func TestCursorLimit(t *testing.T) {
	cursor := NewCursor(createFile("1 2 +"))
	cursor.Limit = 1
	cursor.Bump()
	if !cursor.EOF() {
		t.Fatal("cursor must stop at Limit")
	}
}

func TestIsSpaceRune(t *testing.T) {
	spaces := []rune{' ', '\t', '\n', '\v', '\f', '\r', '\u0085', '\u00a0', '\u2003', '\u3000'}
	for _, r := range spaces {
		if !isSpaceRune(r, 1) {
			t.Errorf("%U must be space", r)
		}
	}
	for _, r := range []rune{'1', '+', 'a', '\u200b'} {
		if isSpaceRune(r, 1) {
			t.Errorf("%U must not be space", r)
		}
	}
	if isSpaceRune(utf8.RuneError, 1) {
		t.Error("invalid UTF-8 byte must not be space")
	}
}
