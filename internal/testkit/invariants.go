// Package testkit holds invariant checks shared by tests of several packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"rpncalc/internal/source"
	"rpncalc/internal/token"
)

// CheckTokenSpans runs the span invariants every token stream over sf must hold:
// 1) each token span is non-empty, in sf and within its content
// 2) the span slices back to exactly the token text
// 3) spans are ordered and do not overlap
// 4) leading trivia sits between the previous token and the token itself
// 5) an EOF token, if present, is last and has an empty span
func CheckTokenSpans(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent || sp.Start > sp.End {
			return fmt.Errorf("token %d span %v is outside content of %d bytes", i, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous token ending at %d", i, sp, prevEnd)
		}

		// trivia идёт по порядку и не залезает на токены
		triviaEnd := prevEnd
		for j, tr := range tok.Leading {
			if tr.Span.Start < triviaEnd || tr.Span.End > sp.Start {
				return fmt.Errorf("token %d trivia %d span %v is outside %d-%d", i, j, tr.Span, triviaEnd, sp.Start)
			}
			triviaEnd = tr.Span.End
		}

		if tok.Kind == token.EOF {
			if !sp.Empty() {
				return fmt.Errorf("EOF span is not empty: %v", sp)
			}
			if i != len(tokens)-1 {
				return fmt.Errorf("EOF at %d is followed by %d tokens", i, len(tokens)-1-i)
			}
			continue
		}
		if sp.Empty() {
			return fmt.Errorf("empty span for token %d %q", i, tok.Text)
		}
		if got := sf.Slice(sp); got != tok.Text {
			return fmt.Errorf("token %d span %v covers %q, text is %q", i, sp, got, tok.Text)
		}
		prevEnd = sp.End
	}
	return nil
}
