package lexer

import (
	"rpncalc/internal/token"
)

// collectLeadingTrivia собирает подряд идущие пробельные символы перед значимым токеном.
// - любые пробелы кроме '\n' коалесцируются в один TriviaSpace
// - каждый '\n' отдельный TriviaNewline
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()

		if lx.cursor.Peek() == '\n' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaNewline, Span: sp, Text: "\n"})
			continue
		}

		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			r, sz := lx.peekRune()
			if !isSpaceRune(r, sz) {
				break
			}
			lx.bumpRune()
		}
		if lx.cursor.Mark() == start {
			return
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaSpace,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
	}
}
