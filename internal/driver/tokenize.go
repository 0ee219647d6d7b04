package driver

import (
	"fmt"

	"rpncalc/internal/diag"
	"rpncalc/internal/lexer"
	"rpncalc/internal/source"
	"rpncalc/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // terminated by EOF
	Bag     *diag.Bag
}

// TokenizeString lexes input as a virtual file named name.
func TokenizeString(name, input string, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenize(fs, fs.AddVirtual(name, []byte(input)), opts)
}

// TokenizeFile lexes the file at path.
func TokenizeFile(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenize(fs, id, opts), nil
}

func tokenize(fs *source.FileSet, id source.FileID, opts Options) *TokenizeResult {
	file := fs.Get(id)
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	lx := lexer.New(file, lexer.Options{Reporter: reporter, MaxTokenLen: opts.MaxTokenLen})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
		if tok.IsInvalid() {
			diag.ReportInfo(reporter, diag.LexTokenInfo, tok.Span,
				fmt.Sprintf("%q is not a number or an operator", tok.Text)).Emit()
		}
	}
	bag.Sort()

	return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}
}
