package lexer

import (
	"fmt"

	"rpncalc/internal/diag"
	"rpncalc/internal/source"
	"rpncalc/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// NewRange creates a lexer restricted to sp (which must belong to file).
// The driver uses it to lex one line of a multi-expression file while keeping
// file-relative spans.
func NewRange(file *source.File, sp source.Span, opts Options) *Lexer {
	lx := New(file, opts)
	lx.cursor.Off = sp.Start
	lx.cursor.Limit = sp.End
	return lx
}

// Next возвращает следующий значимый токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	// Leading из hold к EOF не приклеиваем
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	tok := lx.scanWord()
	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// scanWord читает максимальную последовательность непробельных рун.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		r, sz := lx.peekRune()
		if isSpaceRune(r, sz) {
			break
		}
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if lx.opts.MaxTokenLen > 0 && sp.Len() > lx.opts.MaxTokenLen {
		lx.report(diag.LexTokenTooLong, diag.SevWarning, sp,
			fmt.Sprintf("token is %d bytes long (limit %d)", sp.Len(), lx.opts.MaxTokenLen))
	}

	return token.Token{Kind: token.Classify(text), Span: sp, Text: text}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// Lex collects every token of file up to (not including) EOF.
func Lex(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	return drain(lx)
}

// LexRange is Lex restricted to sp.
func LexRange(file *source.File, sp source.Span, opts Options) []token.Token {
	return drain(NewRange(file, sp, opts))
}

func drain(lx *Lexer) []token.Token {
	tokens := make([]token.Token, 0, 8)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Tokenize splits input on runs of whitespace and returns the raw token
// texts in order. It never fails; empty or all-space input yields an empty
// slice. The split rule matches strings.Fields.
func Tokenize(input string) []string {
	file := &source.File{Content: []byte(input)}
	toks := Lex(file, Options{})
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Text
	}
	return out
}
