package lexer

import (
	"rpncalc/internal/diag"
	"rpncalc/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда диагностики игнорируем
	// MaxTokenLen reports tokens longer than this many bytes as LEX1002
	// warnings. Zero disables the check. The token itself is still produced.
	MaxTokenLen uint32
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}
