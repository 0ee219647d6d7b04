package token

import (
	"rpncalc/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsNumber reports whether the token is a digit-only literal.
func (t Token) IsNumber() bool { return t.Kind == Number }

// IsOperator reports whether the token is one of + - * /.
func (t Token) IsOperator() bool { return t.Kind.IsOperator() }

// IsInvalid reports whether the token failed classification.
func (t Token) IsInvalid() bool { return t.Kind == Invalid }
