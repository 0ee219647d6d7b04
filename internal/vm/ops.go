package vm

import "rpncalc/internal/token"

// BinaryFunc applies an operator to (first, second) where first was pushed
// earlier and second is the former top of the stack.
type BinaryFunc func(first, second float64) float64

func add(first, second float64) float64 { return first + second }
func sub(first, second float64) float64 { return first - second }
func mul(first, second float64) float64 { return first * second }

// div follows IEEE-754: x/0 is ±Inf and 0/0 is NaN.
func div(first, second float64) float64 { return first / second }

var operators = map[token.Kind]BinaryFunc{
	token.Plus:  add,
	token.Minus: sub,
	token.Star:  mul,
	token.Slash: div,
}

// Lookup returns the binary function bound to an operator kind.
func Lookup(kind token.Kind) (BinaryFunc, bool) {
	fn, ok := operators[kind]
	return fn, ok
}
