// Package token defines lexical token kinds and trivia for RPN expressions.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - A token is a maximal run of non-space runes; whitespace never appears in
//     the main token stream, only as leading Trivia.
//   - Classification is purely textual (see Classify): Number is a non-empty
//     run of ASCII digits, operators are the single bytes + - * /, anything
//     else is Invalid. Signs, decimals and parentheses are not recognised.
package token
