package vm

import (
	"errors"

	"rpncalc/internal/token"
)

var (
	// ErrArity is returned when an operator finds fewer than two values on the
	// stack, or when the final stack depth is not exactly one.
	ErrArity = errors.New("incorrect number of arguments")
	// ErrInvalidToken is returned for a token that is neither an operator nor
	// a digit-only literal.
	ErrInvalidToken = errors.New("invalid number")
)

// EvalError carries the failure kind plus where evaluation stopped.
// Error() is exactly the message of the wrapped sentinel, so callers compare
// with errors.Is and read positions through errors.As.
type EvalError struct {
	Err   error       // ErrArity or ErrInvalidToken
	Index int         // index of the offending token, -1 for the final depth check
	Token token.Token // offending token; zero value at end of input
	Depth int         // stack depth at the moment of failure
}

func (e *EvalError) Error() string { return e.Err.Error() }

func (e *EvalError) Unwrap() error { return e.Err }

// AtEnd reports whether the failure came from the end-of-input depth check.
func (e *EvalError) AtEnd() bool { return e.Index < 0 }

func arityError(index int, tok token.Token, depth int) *EvalError {
	return &EvalError{Err: ErrArity, Index: index, Token: tok, Depth: depth}
}

func invalidTokenError(index int, tok token.Token, depth int) *EvalError {
	return &EvalError{Err: ErrInvalidToken, Index: index, Token: tok, Depth: depth}
}
