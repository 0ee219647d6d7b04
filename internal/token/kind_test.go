package token_test

import (
	"testing"

	"rpncalc/internal/source"
	"rpncalc/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want token.Kind
	}{
		{"0", token.Number},
		{"7", token.Number},
		{"13", token.Number},
		{"007", token.Number},
		{"12345678901234567890", token.Number},
		{"+", token.Plus},
		{"-", token.Minus},
		{"*", token.Star},
		{"/", token.Slash},
		{"", token.Invalid},
		{"a", token.Invalid},
		{"-1", token.Invalid},
		{"+1", token.Invalid},
		{"1.5", token.Invalid},
		{"1e3", token.Invalid},
		{"++", token.Invalid},
		{"%", token.Invalid},
		{"(", token.Invalid},
		{"12a", token.Invalid},
		{"٣", token.Invalid}, // арабская цифра, не ASCII
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := token.Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsOperator(t *testing.T) {
	ops := []token.Kind{token.Plus, token.Minus, token.Star, token.Slash}
	for _, k := range ops {
		if !tok(k).IsOperator() {
			t.Fatalf("%v should be operator", k)
		}
		if k.Symbol() == "" {
			t.Fatalf("%v must have a symbol", k)
		}
		if token.Classify(k.Symbol()) != k {
			t.Fatalf("Classify(%q) must round-trip to %v", k.Symbol(), k)
		}
	}
	non := []token.Kind{token.Invalid, token.EOF, token.Number}
	for _, k := range non {
		if tok(k).IsOperator() {
			t.Fatalf("%v must NOT be operator", k)
		}
		if k.Symbol() != "" {
			t.Fatalf("%v must not have a symbol", k)
		}
	}
}

func TestKindString(t *testing.T) {
	if token.Number.String() != "Number" {
		t.Errorf("Number.String() = %q", token.Number.String())
	}
	if token.Slash.String() != "Slash" {
		t.Errorf("Slash.String() = %q", token.Slash.String())
	}
	if token.Kind(200).String() != "Kind(?)" {
		t.Errorf("unknown kind String() = %q", token.Kind(200).String())
	}
}
