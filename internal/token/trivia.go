package token

import "rpncalc/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	}
	return "Trivia(?)"
}

// Trivia is whitespace preceding a token. Runs of horizontal space collapse
// into one TriviaSpace; each line break is its own TriviaNewline.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
