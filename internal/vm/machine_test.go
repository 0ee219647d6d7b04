package vm

import (
	"errors"
	"testing"

	"rpncalc/internal/source"
	"rpncalc/internal/token"
)

func tok(kind token.Kind, text string, start, end uint32) token.Token {
	return token.Token{Kind: kind, Text: text, Span: source.Span{Start: start, End: end}}
}

func TestMachineOnStep(t *testing.T) {
	tokens := []token.Token{
		tok(token.Number, "2", 0, 1),
		tok(token.Number, "3", 2, 3),
		tok(token.Star, "*", 4, 5),
	}
	var steps []Step
	m := Machine{OnStep: func(s Step) { steps = append(steps, s) }}

	got, err := m.Run(tokens)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 6 {
		t.Fatalf("Run = %v, want 6", got)
	}

	want := []struct {
		value float64
		depth int
	}{{2, 1}, {3, 2}, {6, 1}}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(steps), len(want))
	}
	for i, w := range want {
		if steps[i].Index != i || steps[i].Value != w.value || steps[i].Depth != w.depth {
			t.Fatalf("step %d = %+v, want value %v depth %d", i, steps[i], w.value, w.depth)
		}
	}
}

func TestMachineErrorCarriesSpan(t *testing.T) {
	tokens := []token.Token{
		tok(token.Number, "1", 0, 1),
		tok(token.Plus, "+", 2, 3),
	}
	var m Machine
	_, err := m.Run(tokens)

	var evalErr *EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("error %v is not *EvalError", err)
	}
	if !errors.Is(err, ErrArity) {
		t.Fatalf("error = %v, want ErrArity", err)
	}
	if evalErr.Token.Span.Start != 2 || evalErr.Token.Span.End != 3 {
		t.Fatalf("span = %v, want 2-3", evalErr.Token.Span)
	}
	if evalErr.Depth != 1 {
		t.Fatalf("depth = %d, want 1", evalErr.Depth)
	}
}

func TestMachineRejectsUnparsableNumber(t *testing.T) {
	// A Number token whose text is not digit-only can only come from a caller
	// that skipped Classify; the parser's rejection must still surface.
	var m Machine
	_, err := m.Run([]token.Token{tok(token.Number, "1x", 0, 2)})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("error = %v, want ErrInvalidToken", err)
	}
}

func TestMachineNilReceiver(t *testing.T) {
	var m *Machine
	got, err := m.Run([]token.Token{tok(token.Number, "5", 0, 1)})
	if err != nil || got != 5 {
		t.Fatalf("Run = %v, %v; want 5, nil", got, err)
	}
}

func TestLookupCoversOperators(t *testing.T) {
	cases := map[token.Kind]float64{
		token.Plus:  8,
		token.Minus: 4,
		token.Star:  12,
		token.Slash: 3,
	}
	for kind, want := range cases {
		fn, ok := Lookup(kind)
		if !ok {
			t.Fatalf("Lookup(%v) missing", kind)
		}
		if got := fn(6, 2); got != want {
			t.Fatalf("%v(6, 2) = %v, want %v", kind, got, want)
		}
	}
	if _, ok := Lookup(token.Number); ok {
		t.Fatal("Lookup(Number) reported an operator")
	}
}
