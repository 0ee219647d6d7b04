package vm

import (
	"rpncalc/internal/number"
	"rpncalc/internal/token"
)

// Step describes one consumed token; it is handed to Machine.OnStep.
type Step struct {
	Index int
	Token token.Token
	Value float64 // value pushed by this step
	Depth int     // stack depth after the step
}

// Machine evaluates classified token sequences. The zero value is ready to
// use. A Machine holds no evaluation state, so one instance may serve
// concurrent Run calls as long as OnStep is safe for that.
type Machine struct {
	// OnStep, when set, is called after every successfully consumed token.
	OnStep func(Step)
}

// Run folds tokens left to right over a fresh stack and returns the single
// remaining value. It stops at the first failing token; later tokens are
// never inspected.
func (m *Machine) Run(tokens []token.Token) (float64, error) {
	var stack Stack[float64]

	for i, tok := range tokens {
		var pushed float64
		switch {
		case tok.IsOperator():
			operands, ok := stack.PopN(2)
			if !ok {
				return 0, arityError(i, tok, stack.Len())
			}
			fn, _ := Lookup(tok.Kind)
			pushed = fn(operands[0], operands[1])
		case tok.IsNumber():
			v, ok := number.ParseUnsigned(tok.Text)
			if !ok {
				// Classify такое не выдаёт; сюда попадают токены, собранные вручную
				return 0, invalidTokenError(i, tok, stack.Len())
			}
			pushed = v
		default:
			return 0, invalidTokenError(i, tok, stack.Len())
		}
		stack.Push(pushed)

		if m != nil && m.OnStep != nil {
			m.OnStep(Step{Index: i, Token: tok, Value: pushed, Depth: stack.Len()})
		}
	}

	if stack.Len() != 1 {
		return 0, arityError(-1, token.Token{}, stack.Len())
	}
	result, _ := stack.Pop()
	return result, nil
}
