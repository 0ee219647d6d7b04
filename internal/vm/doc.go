// Package vm is the RPN stack machine.
//
// Tokens are consumed left to right. A number is parsed with
// number.ParseUnsigned and pushed; an operator pops two values (first pushed
// earlier, second on top) and pushes op(first, second); anything else stops
// evaluation with ErrInvalidToken. An operator seeing fewer than two values,
// or a final stack depth other than one, stops evaluation with ErrArity.
//
// The package does no IO and no logging; callers that want to observe
// evaluation set Machine.OnStep.
package vm
