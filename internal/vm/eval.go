package vm

import (
	"rpncalc/internal/lexer"
	"rpncalc/internal/token"
)

// Evaluate computes the value of an RPN expression such as "3 4 + 5 6 + *".
//
// Failures are *EvalError values wrapping ErrArity or ErrInvalidToken.
// Evaluate has no shared state and is safe for concurrent use.
func Evaluate(input string) (float64, error) {
	return EvaluateTokens(lexer.Tokenize(input))
}

// EvaluateTokens classifies raw token texts and evaluates them.
func EvaluateTokens(texts []string) (float64, error) {
	tokens := make([]token.Token, len(texts))
	for i, text := range texts {
		tokens[i] = token.Token{Kind: token.Classify(text), Text: text}
	}
	var m Machine
	return m.Run(tokens)
}
